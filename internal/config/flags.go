package config

import (
	"flag"
	"os"

	"github.com/eaportal/bucketlist/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-s string    storage backend: file, sqlite or memory
//	-d string    data directory
//	-n string    sqlite database file
//
// The function filters os.Args to the flags it knows about, using
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-d", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Backend, "s", cfg.Backend, "storage backend (file, sqlite, memory)")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.DatabaseDSN, "n", cfg.DatabaseDSN, "sqlite database file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
