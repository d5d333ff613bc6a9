package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk form of Config. Pointer fields distinguish
// "absent" from "zero" so a partial file only overrides what it names.
type FileConfig struct {
	DataDir       *string `json:"data_dir" yaml:"data_dir"`
	StorageFormat *string `json:"storage_format" yaml:"storage_format"`
	LogLevel      *string `json:"log_level" yaml:"log_level"`
	LogBackend    *string `json:"log_backend" yaml:"log_backend"`
	LogFormat     *string `json:"log_format" yaml:"log_format"`
	Recover       *bool   `json:"recover" yaml:"recover"`
}

// parseFile overlays cfg with values from path. Files ending in .yaml or
// .yml are read as YAML, anything else as JSON.
func parseFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc *FileConfig) apply(cfg *Config) {
	setIf(&cfg.DataDir, fc.DataDir)
	setIf(&cfg.StorageFormat, fc.StorageFormat)
	setIf(&cfg.LogLevel, fc.LogLevel)
	setIf(&cfg.LogBackend, fc.LogBackend)
	setIf(&cfg.LogFormat, fc.LogFormat)
	setIf(&cfg.Recover, fc.Recover)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
