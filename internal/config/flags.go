package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names.
const (
	FlagConfig     = "config"
	FlagDataDir    = "data-dir"
	FlagFormat     = "format"
	FlagLogLevel   = "log-level"
	FlagLogBackend = "log-backend"
	FlagLogFormat  = "log-format"
	FlagRecover    = "recover"
)

// RegisterFlags defines the configuration flags on fs. Defaults shown in help
// come from LoadDefaults.
func RegisterFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP(FlagConfig, "c", "", "path to a JSON or YAML config file")
	fs.StringP(FlagDataDir, "d", d.DataDir, "directory holding account data")
	fs.StringP(FlagFormat, "f", d.StorageFormat, "account storage format: tsv, msgpack or sqlite")
	fs.String(FlagLogLevel, d.LogLevel, "log level: debug, info, warn, error")
	fs.String(FlagLogBackend, d.LogBackend, "log backend: slog or zap")
	fs.String(FlagLogFormat, d.LogFormat, "log format: text or json")
	fs.Bool(FlagRecover, d.Recover, "move corrupt account data aside and start empty")
}

// parseFlags overlays cfg with every flag the user set explicitly.
func parseFlags(cfg *Config, fs *pflag.FlagSet) error {
	strs := []struct {
		name string
		dst  *string
	}{
		{FlagDataDir, &cfg.DataDir},
		{FlagFormat, &cfg.StorageFormat},
		{FlagLogLevel, &cfg.LogLevel},
		{FlagLogBackend, &cfg.LogBackend},
		{FlagLogFormat, &cfg.LogFormat},
	}

	for _, s := range strs {
		if !fs.Changed(s.name) {
			continue
		}
		v, err := fs.GetString(s.name)
		if err != nil {
			return fmt.Errorf("flag --%s: %w", s.name, err)
		}
		*s.dst = v
	}

	if fs.Changed(FlagRecover) {
		v, err := fs.GetBool(FlagRecover)
		if err != nil {
			return fmt.Errorf("flag --%s: %w", FlagRecover, err)
		}
		cfg.Recover = v
	}
	return nil
}

// LoadConfig builds a Config from defaults, then the config file named by
// --config (if any), then explicitly set flags. Later sources take
// precedence. fs must have been populated by RegisterFlags and parsed.
func LoadConfig(fs *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	path, err := fs.GetString(FlagConfig)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := parseFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := parseFlags(cfg, fs); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
