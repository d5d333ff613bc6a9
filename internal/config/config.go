package config

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/dmitrijs2005/homeowner/internal/common"
	"github.com/dmitrijs2005/homeowner/internal/logging"
	"github.com/dmitrijs2005/homeowner/internal/repositories/accounts"
	"github.com/dmitrijs2005/homeowner/internal/rooms"
)

// Config holds runtime settings for the homeowner CLI.
//
// Fields:
//   - DataDir: directory holding the account file and the floor plan.
//   - StorageFormat: account file encoding, one of accounts.Formats.
//   - LogLevel, LogBackend, LogFormat: see logging.Options.
//   - Recover: move corrupt account data aside instead of failing.
type Config struct {
	DataDir       string
	StorageFormat string
	LogLevel      string
	LogBackend    string
	LogFormat     string
	Recover       bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = common.DefaultDataDir
	c.StorageFormat = accounts.FormatTSV
	c.LogLevel = "info"
	c.LogBackend = logging.BackendSlog
	c.LogFormat = logging.FormatText
	c.Recover = false
}

// Validate rejects values no component can work with.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data dir must not be empty")
	}
	if !slices.Contains(accounts.Formats, c.StorageFormat) {
		return fmt.Errorf("unknown storage format %q (want one of %v)", c.StorageFormat, accounts.Formats)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.LogBackend != logging.BackendSlog && c.LogBackend != logging.BackendZap {
		return fmt.Errorf("unknown log backend %q", c.LogBackend)
	}
	if c.LogFormat != logging.FormatText && c.LogFormat != logging.FormatJSON {
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

// Logging returns the logger options described by c.
func (c *Config) Logging() logging.Options {
	return logging.Options{Backend: c.LogBackend, Level: c.LogLevel, Format: c.LogFormat}
}

// Repository builds the account repository described by c.
func (c *Config) Repository() (accounts.Repository, error) {
	return accounts.New(c.StorageFormat, c.DataDir)
}

// UsersFile is the path of the account file for the configured format.
func (c *Config) UsersFile() string {
	r, err := c.Repository()
	if err != nil {
		return ""
	}
	return r.Path()
}

// HouseFile is the path of the floor plan.
func (c *Config) HouseFile() string {
	return filepath.Join(c.DataDir, rooms.HouseFileName)
}
