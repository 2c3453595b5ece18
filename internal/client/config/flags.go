package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/catalogkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   database path
//	-m string   model version
//	-t int      notification lifetime in seconds
//	-l string   log level
//
// os.Args is filtered with flagx.FilterArgs first, so -c/-config and
// anything else owned by other components is ignored here.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-m", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the sqlite database")
	fs.StringVar(&cfg.ModelVersion, "m", cfg.ModelVersion, "product model version (v1 or v2)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	ttl := fs.Int("t", int(cfg.NotificationTTL.Seconds()), "notification lifetime (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.NotificationTTL = time.Duration(*ttl) * time.Second
}
