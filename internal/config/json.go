package config

import (
	"encoding/json"
	"os"

	"animegallery/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling; empty fields
// leave the current Config value in place.
type JsonConfig struct {
	DatabasePath string `json:"database_path"`
	SessionDir   string `json:"session_dir"`
	SecretKey    string `json:"secret_key"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// No flag means no JSON layer. Read or unmarshal errors panic; the caller
// sees a broken config file immediately at startup.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.SessionDir != "" {
		cfg.SessionDir = jc.SessionDir
	}
	if jc.SecretKey != "" {
		cfg.SecretKey = jc.SecretKey
	}
}
