package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	assert.Equal(t, "file", cfg.Backend)
	assert.Equal(t, ".bucketlist", cfg.DataDir)
	assert.Equal(t, "bucketlist.db", cfg.DatabaseDSN)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-s", "sqlite", "-d", "/tmp/bl"}
	cfg := LoadConfig()

	assert.Equal(t, "sqlite", cfg.Backend)
	assert.Equal(t, "/tmp/bl", cfg.DataDir)
	assert.Equal(t, "bucketlist.db", cfg.DatabaseDSN)
}

func TestLoadConfig_JsonOverlayAndFlagPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"backend":"sqlite","database_dsn":"other.db"}`), 0o600))

	// flags beat the JSON file, JSON beats defaults
	os.Args = []string{"testbin", "-c", path, "-s", "memory"}
	cfg := LoadConfig()

	assert.Equal(t, "memory", cfg.Backend)
	assert.Equal(t, "other.db", cfg.DatabaseDSN)
	assert.Equal(t, ".bucketlist", cfg.DataDir)
}

func TestParseJson_MissingFilePanics(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-c", "/does/not/exist.json"}

	var cfg Config
	cfg.LoadDefaults()
	require.Panics(t, func() { parseJson(&cfg) })
}
