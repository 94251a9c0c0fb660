package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/softglow/internal/input/shortcut"
	"github.com/dshills/softglow/internal/logging"
)

type mapLoader map[string]any

func (m mapLoader) Load() (map[string]any, error) { return m, nil }

type failingLoader struct{ err error }

func (f failingLoader) Load() (map[string]any, error) { return nil, f.err }

func TestDefault(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")

	cfg := Default()
	assert.Equal(t, 50, cfg.History.MaxSize)
	assert.True(t, cfg.History.KeyboardShortcuts)
	assert.Equal(t, "both", cfg.History.Modifier)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "/data/softglow/softglow.db", cfg.Storage.Path)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, ":9464", cfg.Metrics.Address)
	assert.NoError(t, cfg.Validate())
}

func TestLoadLayers(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")

	file := mapLoader{
		"history": map[string]any{"maxSize": 20, "modifier": "ctrl"},
		"logging": map[string]any{"level": "debug"},
	}
	env := mapLoader{
		"history": map[string]any{"modifier": "meta"},
		"metrics": map[string]any{"enabled": true},
	}

	cfg, err := load(file, env)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.History.MaxSize)
	assert.True(t, cfg.History.KeyboardShortcuts, "unset keys keep defaults")
	assert.Equal(t, shortcut.ModeMeta, cfg.Modifier())
	assert.Equal(t, logging.LevelDebug, cfg.LogLevel())
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, ":9464", cfg.Metrics.Address)
}

func TestLoadErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := load(failingLoader{boom})
	assert.ErrorIs(t, err, boom)

	_, err = load(mapLoader{"history": map[string]any{"maxSize": "lots"}})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero max size", func(c *Config) { c.History.MaxSize = 0 }},
		{"unknown modifier", func(c *Config) { c.History.Modifier = "hyper" }},
		{"unknown level", func(c *Config) { c.Logging.Level = "loud" }},
		{"empty storage path", func(c *Config) { c.Storage.Path = "" }},
		{"metrics without address", func(c *Config) {
			c.Metrics.Enabled = true
			c.Metrics.Address = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("SOFTGLOW_HISTORY_MAX_SIZE", "30")
	t.Setenv("SOFTGLOW_LOG_LEVEL", "warn")

	path := filepath.Join(dir, "config.yaml")
	content := "history:\n  maxSize: 10\n  keyboardShortcuts: false\nstorage:\n  path: $XDG_DATA_HOME/custom.db\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.History.MaxSize, "environment overrides the file")
	assert.False(t, cfg.History.KeyboardShortcuts)
	assert.Equal(t, logging.LevelWarn, cfg.LogLevel())
	assert.Equal(t, filepath.Join(dir, "custom.db"), cfg.Storage.Path)
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("history: [\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
