package config

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestInitializeConfigDefaults(t *testing.T) {
	// Run from an empty directory so no stray config.yaml is picked up.
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.NotEmpty(t, cfg.Data.Directory)
	assert.Equal(t, int64(10*1024*1024), cfg.Import.MaxFileBytes)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FINSIGHT_LOG_LEVEL", "debug")
	t.Setenv("FINSIGHT_DATA_DIRECTORY", "/tmp/finsight-test")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/finsight-test", cfg.Data.Directory)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Log.Level = "info"
		cfg.Log.Format = "text"
		cfg.Data.Directory = "/tmp/data"
		cfg.Import.MaxFileBytes = 1024
		cfg.CSV.Delimiter = ","
		return cfg
	}

	tests := []struct {
		name          string
		mutate        func(*Config)
		expectedError bool
	}{
		{"valid", func(c *Config) {}, false},
		{"bad log level", func(c *Config) { c.Log.Level = "noisy" }, true},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"empty data dir", func(c *Config) { c.Data.Directory = "" }, true},
		{"zero size limit", func(c *Config) { c.Import.MaxFileBytes = 0 }, true},
		{"multi-char delimiter", func(c *Config) { c.CSV.Delimiter = ",," }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			err := validateConfig(cfg)
			if tc.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}
