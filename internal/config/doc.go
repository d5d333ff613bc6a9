// Package config loads runtime configuration for the homeowner CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c/--config. Files ending in .yaml
//     or .yml are parsed as YAML, everything else as JSON.
//  3. Command-line flags that were set explicitly, which override earlier
//     values.
//
// Supported flags
//
//	-c, --config string     JSON or YAML config file
//	-d, --data-dir string   directory holding account data (default "HomeOwnerFiles")
//	-f, --format string     tsv, msgpack or sqlite (default "tsv")
//	    --log-level string  debug, info, warn, error (default "info")
//	    --log-backend string slog or zap (default "slog")
//	    --log-format string text or json (default "text")
//	    --recover           move corrupt account data aside and start empty
//
// # File schema
//
// Every key is optional:
//
//	data_dir: HomeOwnerFiles
//	storage_format: sqlite
//	log_level: debug
//	log_backend: zap
//	log_format: json
//	recover: false
package config
