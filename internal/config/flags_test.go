package config

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("homeowner", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(newFlagSet(t))
	require.NoError(t, err)

	var want Config
	want.LoadDefaults()
	assert.Empty(t, cmp.Diff(&want, cfg))
}

func TestLoadConfig_Flags(t *testing.T) {
	cfg, err := LoadConfig(newFlagSet(t,
		"-d", "/tmp/ho", "-f", "sqlite", "--log-level", "debug",
		"--log-backend", "zap", "--log-format", "json", "--recover"))
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(&Config{
		DataDir: "/tmp/ho", StorageFormat: "sqlite", LogLevel: "debug",
		LogBackend: "zap", LogFormat: "json", Recover: true,
	}, cfg))
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := writeFile(t, "cfg.yaml", "data_dir: from-file\nstorage_format: msgpack\n")

	cfg, err := LoadConfig(newFlagSet(t, "--config", path, "--format", "sqlite"))
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.DataDir)
	assert.Equal(t, "sqlite", cfg.StorageFormat)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(newFlagSet(t, "-f", "xml"))
	assert.ErrorContains(t, err, "unknown storage format")

	_, err = LoadConfig(newFlagSet(t, "-c", filepath.Join(t.TempDir(), "nope.json")))
	assert.ErrorContains(t, err, "read config")

	// a flag set without RegisterFlags
	_, err = LoadConfig(pflag.NewFlagSet("bare", pflag.ContinueOnError))
	assert.Error(t, err)
}
