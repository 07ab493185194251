package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vals map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vals[k]
		return v, ok
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, FormatText, cfg.Output)
	assert.True(t, cfg.Color)
	assert.False(t, cfg.Strict)
	assert.Equal(t, 256, cfg.CacheSize)
}

func TestFromLookup_Overrides(t *testing.T) {
	cfg, err := fromLookup(env(map[string]string{
		"FUZZSCORE_LOG_LEVEL":  "DEBUG",
		"FUZZSCORE_LOG_FORMAT": "json",
		"FUZZSCORE_OUTPUT":     "json",
		"FUZZSCORE_COLOR":      "false",
		"FUZZSCORE_STRICT":     "1",
		"FUZZSCORE_CACHE_SIZE": "0",
	}))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, FormatJSON, cfg.LogFormat)
	assert.Equal(t, FormatJSON, cfg.Output)
	assert.False(t, cfg.Color)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 0, cfg.CacheSize)
}

func TestFromLookup_NoColor(t *testing.T) {
	cfg, err := fromLookup(env(map[string]string{"NO_COLOR": "1"}))
	require.NoError(t, err)
	assert.False(t, cfg.Color)
}

func TestFromLookup_EmptyValuesKeepDefaults(t *testing.T) {
	cfg, err := fromLookup(env(map[string]string{"FUZZSCORE_OUTPUT": "", "FUZZSCORE_CACHE_SIZE": ""}))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestFromLookup_Malformed(t *testing.T) {
	tests := []struct {
		key, val string
	}{
		{"FUZZSCORE_COLOR", "maybe"},
		{"FUZZSCORE_STRICT", "yes please"},
		{"FUZZSCORE_CACHE_SIZE", "lots"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			_, err := fromLookup(env(map[string]string{tt.key: tt.val}))
			assert.ErrorContains(t, err, tt.key)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"log level", func(c *Config) { c.LogLevel = "trace" }, "unknown log level"},
		{"log format", func(c *Config) { c.LogFormat = "xml" }, "unknown log format"},
		{"output", func(c *Config) { c.Output = "yaml" }, "unknown output format"},
		{"cache size", func(c *Config) { c.CacheSize = -1 }, "cache size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}
}
