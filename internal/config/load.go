package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Environment variables that override file settings.
const (
	EnvExportDir = "SDLC_EXPORT_DIR"
	EnvOverwrite = "SDLC_OVERWRITE"
	EnvColor     = "SDLC_COLOR"
	EnvLogLevel  = "SDLC_LOG_LEVEL"
	EnvLogCalls  = "SDLC_LOG_CALLS"
	EnvConfig    = "SDLC_CONFIG"
)

// Load reads configuration in priority order:
// 1. Defaults
// 2. User config file ($SDLC_CONFIG or <user config dir>/sdlc/sdlc.toml)
// 3. Project config file (sdlc.toml or .sdlc.toml in the working directory)
// 4. Environment variables
func Load() (*Config, error) {
	return LoadFiles(findUserConfigFile(), findProjectConfigFile("."))
}

// LoadFiles applies defaults, then each existing file in order, then the
// environment. Empty paths and missing files are skipped.
func LoadFiles(paths ...string) (*Config, error) {
	cfg := Default()

	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := loadConfigFile(cfg, path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	loadFromEnv(cfg)
	normalize(cfg)
	return cfg, nil
}

func loadConfigFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

func loadFromEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvExportDir); ok {
		cfg.ExportDir = v
	}
	if v := os.Getenv(EnvOverwrite); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Overwrite = b
		}
	}
	if v := os.Getenv(EnvColor); v != "" {
		cfg.Color = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvLogCalls); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogCalls = b
		}
	}
}

func findUserConfigFile() string {
	if v := os.Getenv(EnvConfig); v != "" {
		return expandPath(v)
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "sdlc", "sdlc.toml")
}

func findProjectConfigFile(dir string) string {
	for _, name := range []string{"sdlc.toml", ".sdlc.toml"} {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// expandPath expands environment variables and a leading ~ in p.
func expandPath(p string) string {
	if p == "" {
		return p
	}
	expanded := os.ExpandEnv(p)
	if expanded == "~" || strings.HasPrefix(expanded, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return expanded
		}
		return filepath.Join(home, strings.TrimPrefix(expanded[1:], "/"))
	}
	return expanded
}
