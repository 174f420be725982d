// Package config loads sdlc settings from TOML files and the environment.
package config

import (
	"log/slog"
	"strings"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

const (
	DefaultColor    = ColorAuto
	DefaultLogLevel = "warn"
)

// Config holds user-tunable settings. ExportDir is where project files go
// when no path is given; empty means the working directory. Overwrite is the
// default for replacing existing project files. LogCalls enables use-case
// telemetry on stderr.
type Config struct {
	ExportDir string `toml:"export_dir"`
	Overwrite bool   `toml:"overwrite"`
	Color     string `toml:"color"`
	LogLevel  string `toml:"log_level"`
	LogCalls  bool   `toml:"log_calls"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

func setDefaults(cfg *Config) {
	cfg.ExportDir = ""
	cfg.Overwrite = true
	cfg.Color = DefaultColor
	cfg.LogLevel = DefaultLogLevel
	cfg.LogCalls = false
}

// SlogLevel maps LogLevel to a slog level, falling back to warn.
func (c *Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return lvl
}

// normalize replaces invalid values with defaults.
func normalize(cfg *Config) {
	cfg.Color = strings.ToLower(strings.TrimSpace(cfg.Color))
	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		cfg.Color = DefaultColor
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		cfg.LogLevel = DefaultLogLevel
	}

	cfg.ExportDir = expandPath(strings.TrimSpace(cfg.ExportDir))
}
