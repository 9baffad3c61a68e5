// Package config loads runtime settings for the gallery CLI. Values are
// resolved in three layers, later ones winning: built-in defaults, an
// optional JSON file (-c/-config), then command-line flags.
package config

import (
	"os"
	"path/filepath"
)

// Config holds runtime settings for the gallery CLI.
//
// Fields:
//   - DatabasePath: path of the sqlite file backing durable storage.
//   - SessionDir: directory holding the session slot.
//   - SecretKey: HMAC key for session tokens. When empty, a random key is
//     generated at startup and sessions do not survive a restart.
type Config struct {
	DatabasePath string
	SessionDir   string
	SecretKey    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "gallery.db"
	c.SessionDir = filepath.Join(os.TempDir(), "anime-gallery")
	c.SecretKey = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a file was given) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
