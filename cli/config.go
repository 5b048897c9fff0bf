package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFile = "byn.yaml"
	defaultScript     = "main.byn"
)

// Config is read from byn.yaml and then overridden by command-line options.
type Config struct {
	Script   string   `yaml:"script,omitempty"`
	LogLevel string   `yaml:"log_level,omitempty"`
	Color    string   `yaml:"color,omitempty"`
	Inputs   []string `yaml:"inputs,omitempty"`
}

func defaultConfig() *Config {
	return &Config{
		Script:   defaultScript,
		LogLevel: "error",
		Color:    "auto",
	}
}

// LoadConfig decodes the YAML file at path over the defaults. A missing file
// is only an error when the caller asked for that file explicitly.
func LoadConfig(path string, explicit bool) (*Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error", "":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}
