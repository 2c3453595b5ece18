// Package config loads runtime configuration for the catalog CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected via -c or -config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path of the sqlite database
//	-m string   product model version (v1 or v2)
//	-t int      notification lifetime (seconds)
//	-l string   log level
//
// # File schema
//
// Durations use timex.Duration, so they may be strings like "3s" or integer
// nanoseconds:
//
//	{
//	  "database_path": "catalog.db",
//	  "model_version": "v2",
//	  "notification_ttl": "3s",
//	  "log_level": "info"
//	}
//
// Empty values in the file leave the earlier value in place.
package config
