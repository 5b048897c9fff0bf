package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), defaultConfigFile), false)
	require.NoError(t, err)
	assert.Equal(t, defaultScript, cfg.Script)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "auto", cfg.Color)
	assert.Empty(t, cfg.Inputs)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "byn.yaml")
	data := "script: other.byn\nlog_level: debug\ninputs: [\"1\", \"two\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path, true)
	require.NoError(t, err)
	assert.Equal(t, "other.byn", cfg.Script)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, []string{"1", "two"}, cfg.Inputs)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		errContains string
	}{
		{name: "bad yaml", data: "script: [", errContains: "failed to parse config file"},
		{name: "bad level", data: "log_level: loud\n", errContains: `unknown log level "loud"`},
		{name: "bad color", data: "color: pink\n", errContains: "color must be"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "byn.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0o644))
			_, err := LoadConfig(path, false)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"":        slog.LevelError,
	}
	for input, want := range tests {
		got, err := parseLevel(input)
		require.NoError(t, err)
		assert.Equal(t, want, got, input)
	}
}
