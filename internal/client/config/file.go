package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/catalogkeeper/internal/flagx"
	"github.com/dmitrijs2005/catalogkeeper/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for config file unmarshalling.
type FileConfig struct {
	DatabasePath    string         `json:"database_path" yaml:"database_path"`
	ModelVersion    string         `json:"model_version" yaml:"model_version"`
	NotificationTTL timex.Duration `json:"notification_ttl" yaml:"notification_ttl"`
	LogLevel        string         `json:"log_level" yaml:"log_level"`
}

// parseFile overlays cfg with the file named by -c or -config. It panics
// on read or decode errors.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	if isYAML(path) {
		err = yaml.Unmarshal(data, &fc)
	} else {
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func (fc FileConfig) apply(cfg *Config) {
	if fc.DatabasePath != "" {
		cfg.DatabasePath = fc.DatabasePath
	}
	if fc.ModelVersion != "" {
		cfg.ModelVersion = fc.ModelVersion
	}
	if fc.NotificationTTL.Duration > 0 {
		cfg.NotificationTTL = fc.NotificationTTL.Duration
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
}
