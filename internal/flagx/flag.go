// Package flagx lets independent packages parse only the command-line flags
// they own, so the config loader and the config-file lookup never trip over
// each other's flags.
package flagx

import (
	"flag"
	"strings"
)

// flagName returns the flag name of arg with leading dashes normalised to one
// ("--config=x" and "-config" both yield "-config"), or "" if arg is not a flag.
func flagName(arg string) string {
	if len(arg) < 2 || arg[0] != '-' {
		return ""
	}
	name := "-" + strings.TrimLeft(arg, "-")
	if i := strings.IndexByte(name, '='); i >= 0 {
		name = name[:i]
	}
	if name == "-" {
		return ""
	}
	return name
}

// FilterArgs returns the subset of args that belongs to allowedFlags,
// keeping their values. Both "-f value" and "-f=value" forms are supported,
// and a double-dash spelling matches its single-dash entry.
//
// A token that follows an allowed flag is taken as its value unless it looks
// like a flag itself. The result is never nil.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[flagName(f)] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name := flagName(arg)
		if name == "" {
			continue
		}
		if _, ok := allowed[name]; !ok {
			continue
		}
		filtered = append(filtered, arg)
		if strings.Contains(arg, "=") {
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}
	return filtered
}

// ConfigFileFlag extracts the config file path given via -c or -config.
// The last occurrence wins; "" means no config file was requested.
func ConfigFileFlag(args []string) string {
	var path string

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return path
}
