package config

import (
	"encoding/json"
	"os"

	"github.com/eaportal/bucketlist/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent
// fields stay empty and do not override earlier layers.
type JsonConfig struct {
	Backend     string `json:"backend"`
	DataDir     string `json:"data_dir"`
	DatabaseDSN string `json:"database_dsn"`
}

// parseJson overlays cfg with values from the JSON file named by the
// -c/-config flags. When no file is given the function is a no-op; read or
// unmarshal errors panic, matching the fail-fast startup policy.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.Backend != "" {
		cfg.Backend = jc.Backend
	}
	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
}
