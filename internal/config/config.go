// Package config loads runtime settings for the bucketlist CLI in three
// layers: built-in defaults, then an optional JSON file, then command-line
// flags. Later sources take precedence.
package config

// Config holds runtime settings.
//
// Fields:
//   - Backend: storage backend name ("file", "sqlite" or "memory").
//   - DataDir: directory for the file backend, imported photos, and
//     relative SQLite paths.
//   - DatabaseDSN: SQLite database file name or DSN.
type Config struct {
	Backend     string
	DataDir     string
	DatabaseDSN string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Backend = "file"
	c.DataDir = ".bucketlist"
	c.DatabaseDSN = "bucketlist.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
