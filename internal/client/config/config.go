package config

import "time"

// Config holds runtime settings for the catalog CLI.
//
// Fields:
//   - DatabasePath: sqlite file holding the key-value store.
//   - ModelVersion: product model the form edits ("v1" or "v2").
//   - NotificationTTL: how long the last notification stays in the prompt.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	DatabasePath    string
	ModelVersion    string
	NotificationTTL time.Duration
	LogLevel        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "catalog.db"
	c.ModelVersion = "v2"
	c.NotificationTTL = 3 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the config file (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
