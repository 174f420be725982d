package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTOML(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvExportDir, EnvOverwrite, EnvColor, EnvLogLevel, EnvLogCalls, EnvConfig} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "", cfg.ExportDir)
	assert.True(t, cfg.Overwrite)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.False(t, cfg.LogCalls)
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
}

func TestLoadFiles_NoFiles(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFiles("", filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFiles_ProjectOverridesUser(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	user := writeTOML(t, dir, "user.toml", "export_dir = \"/tmp/user\"\ncolor = \"never\"\n")
	proj := writeTOML(t, dir, "proj.toml", "export_dir = \"/tmp/proj\"\noverwrite = false\n")

	cfg, err := LoadFiles(user, proj)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/proj", cfg.ExportDir)
	assert.False(t, cfg.Overwrite)
	assert.Equal(t, ColorNever, cfg.Color)
}

func TestLoadFiles_EnvOverridesFiles(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	file := writeTOML(t, dir, "sdlc.toml", "overwrite = false\nlog_level = \"info\"\n")

	t.Setenv(EnvOverwrite, "true")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogCalls, "1")
	t.Setenv(EnvColor, "ALWAYS")

	cfg, err := LoadFiles(file)
	require.NoError(t, err)
	assert.True(t, cfg.Overwrite)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.True(t, cfg.LogCalls)
	assert.Equal(t, ColorAlways, cfg.Color)
}

func TestLoadFiles_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	file := writeTOML(t, t.TempDir(), "sdlc.toml", "color = \"rainbow\"\nlog_level = \"loud\"\n")
	t.Setenv(EnvOverwrite, "maybe")

	cfg, err := LoadFiles(file)
	require.NoError(t, err)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.True(t, cfg.Overwrite)
}

func TestLoadFiles_MalformedTOML(t *testing.T) {
	clearEnv(t)
	file := writeTOML(t, t.TempDir(), "sdlc.toml", "export_dir = \n")

	_, err := LoadFiles(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sdlc.toml")
}

func TestFindProjectConfigFile(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, "", findProjectConfigFile(dir))

	writeTOML(t, dir, ".sdlc.toml", "")
	assert.Equal(t, filepath.Join(dir, ".sdlc.toml"), findProjectConfigFile(dir))

	writeTOML(t, dir, "sdlc.toml", "")
	assert.Equal(t, filepath.Join(dir, "sdlc.toml"), findProjectConfigFile(dir))
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("SDLC_TEST_DIR", "/srv/projects")

	assert.Equal(t, "", expandPath(""))
	assert.Equal(t, home, expandPath("~"))
	assert.Equal(t, filepath.Join(home, "exports"), expandPath("~/exports"))
	assert.Equal(t, "/srv/projects/out", expandPath("$SDLC_TEST_DIR/out"))
}
