package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/softglow/internal/config"
	"github.com/dshills/softglow/internal/effect"
	"github.com/dshills/softglow/internal/engine/history"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Storage.Path = filepath.Join(t.TempDir(), "softglow.db")
	cfg.History.MaxSize = 5
	return &cfg
}

func newTestApp(t *testing.T, cfg *config.Config) *Application {
	t.Helper()
	app, err := New(Options{
		Config:    cfg,
		LogOutput: io.Discard,
		Screen:    tcell.NewSimulationScreen("UTF-8"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Shutdown() })
	return app
}

func TestNew(t *testing.T) {
	cfg := testConfig(t)
	app := newTestApp(t, cfg)

	assert.Equal(t, *cfg, app.Config())
	assert.Equal(t, effect.Default(), app.Editor().State())
	assert.Equal(t, effect.DefaultTheme(), app.Theme())
	assert.NotEmpty(t, app.Catalog().All())
	assert.False(t, app.IsRunning())
}

func TestNewOverrides(t *testing.T) {
	app := newTestApp(t, testConfig(t))
	assert.Equal(t, "info", app.Config().Logging.Level)

	cfg := testConfig(t)
	app, err := New(Options{Config: cfg, Debug: true, LogOutput: io.Discard})
	require.NoError(t, err)
	defer app.Shutdown()
	assert.Equal(t, "debug", app.Config().Logging.Level)
}

func TestNewInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.History.MaxSize = 0

	_, err := New(Options{Config: cfg, LogOutput: io.Discard})
	var initErr *InitError
	require.ErrorAs(t, err, &initErr)
	assert.Equal(t, "config", initErr.Component)
	assert.ErrorIs(t, err, config.ErrInvalid)

	cfg = testConfig(t)
	_, err = New(Options{Config: cfg, LogLevel: "loud", LogOutput: io.Discard})
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestNewStorageFailure(t *testing.T) {
	cfg := testConfig(t)
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))
	cfg.Storage.Path = filepath.Join(blocker, "softglow.db")

	_, err := New(Options{Config: cfg, LogOutput: io.Discard})
	var initErr *InitError
	require.ErrorAs(t, err, &initErr)
	assert.Equal(t, "storage", initErr.Component)
}

func TestLoadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	db := filepath.Join(dir, "state.db")
	require.NoError(t, os.WriteFile(path, []byte("history:\n  maxSize: 7\nstorage:\n  path: "+db+"\n"), 0o600))

	app, err := New(Options{ConfigPath: path, LogOutput: io.Discard})
	require.NoError(t, err)
	defer app.Shutdown()

	assert.Equal(t, 7, app.Config().History.MaxSize)
	assert.Equal(t, db, app.Config().Storage.Path)
}

func TestStatePersists(t *testing.T) {
	cfg := testConfig(t)

	app, err := New(Options{Config: cfg, LogOutput: io.Discard})
	require.NoError(t, err)
	app.Editor().TogglePower()
	app.Editor().CycleThemeMode()
	require.NoError(t, app.Shutdown())

	app = newTestApp(t, cfg)
	got := app.Editor().State()
	assert.False(t, got.PowerOn)
	assert.Equal(t, effect.ThemeLight, got.ThemeMode)
	assert.False(t, app.Editor().CanUndo(), "history starts empty")
}

func TestShutdownIdempotent(t *testing.T) {
	app, err := New(Options{Config: testConfig(t), LogOutput: io.Discard})
	require.NoError(t, err)

	require.NoError(t, app.Shutdown())
	require.NoError(t, app.Shutdown())
	assert.ErrorIs(t, app.Run(context.Background()), ErrClosed)
}

func TestRunStopsOnCancel(t *testing.T) {
	app := newTestApp(t, testConfig(t))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
	assert.False(t, app.IsRunning())
}

func TestMetricsObserveEditor(t *testing.T) {
	app := newTestApp(t, testConfig(t))

	app.Editor().TogglePower()
	require.NoError(t, app.Editor().Undo())

	m := app.Metrics()
	assert.Equal(t, 1.0, counterValue(t, m.events.WithLabelValues(history.EventPushed.String())))
	assert.Equal(t, 1.0, counterValue(t, m.events.WithLabelValues(history.EventUndone.String())))
	assert.Equal(t, 0.0, counterValue(t, m.past))
	assert.Equal(t, 1.0, counterValue(t, m.future))
}

func TestApplyScriptFile(t *testing.T) {
	app := newTestApp(t, testConfig(t))

	path := filepath.Join(t.TempDir(), "dim.lua")
	require.NoError(t, os.WriteFile(path, []byte(`
function transform(s)
  s.powerOn = false
  s.glowSettings.lightness = 40
  return s
end
`), 0o600))

	require.NoError(t, app.ApplyScriptFile(path))
	got := app.Editor().State()
	assert.False(t, got.PowerOn)
	assert.Equal(t, 40.0, got.Glow.Lightness)
	assert.Equal(t, 1, app.Editor().Stats().PastCount)

	err := app.ApplyScriptFile(filepath.Join(t.TempDir(), "missing.lua"))
	var opErr *OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "script", opErr.Op)
}

func TestImportExport(t *testing.T) {
	app := newTestApp(t, testConfig(t))
	app.Editor().TogglePower()

	data, err := app.Export()
	require.NoError(t, err)

	other := newTestApp(t, testConfig(t))
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	require.NoError(t, other.ImportFile(path))
	assert.Equal(t, app.Editor().State(), other.Editor().State())

	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
	assert.ErrorIs(t, other.ImportFile(path), effect.ErrInvalidJSON)

	err = other.ImportFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSavePreset(t *testing.T) {
	cfg := testConfig(t)
	app, err := New(Options{Config: cfg, LogOutput: io.Discard})
	require.NoError(t, err)

	p, err := app.SavePreset("Mine", "")
	require.NoError(t, err)
	require.NoError(t, app.Shutdown())

	app = newTestApp(t, cfg)
	got, ok := app.Catalog().Find(p.ID)
	require.True(t, ok)
	assert.Equal(t, "Mine", got.Name)

	_, err = app.SavePreset("  ", "")
	assert.Error(t, err)
}

func TestReloadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	db := filepath.Join(dir, "state.db")
	write := func(body string) {
		require.NoError(t, os.WriteFile(path, []byte(body+"storage:\n  path: "+db+"\n"), 0o600))
	}
	write("history:\n  maxSize: 10\n")

	app, err := New(Options{ConfigPath: path, LogOutput: io.Discard})
	require.NoError(t, err)
	defer app.Shutdown()

	for i := 0; i < 4; i++ {
		app.Editor().TogglePower()
	}

	write("history:\n  maxSize: 2\nlogging:\n  level: debug\n")
	app.reloadConfig()

	assert.Equal(t, 2, app.Config().History.MaxSize)
	assert.Equal(t, "debug", app.Config().Logging.Level)
	assert.Equal(t, 2, app.Editor().Stats().PastCount)

	m := app.Metrics()
	assert.Equal(t, 2.0, counterValue(t, m.evicted))
	assert.Equal(t, 1.0, counterValue(t, m.events.WithLabelValues(history.EventResized.String())))
	assert.Equal(t, 2.0, counterValue(t, m.past))

	app.Editor().TogglePower()
	assert.Equal(t, 2, app.Editor().Stats().PastCount)

	write("history:\n  maxSize: 0\n")
	app.reloadConfig()
	assert.Equal(t, 2, app.Config().History.MaxSize, "invalid file is ignored")
}

func TestReloadConfigKeepsDebugOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "logging:\n  level: warn\nstorage:\n  path: " + filepath.Join(dir, "state.db") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	app, err := New(Options{ConfigPath: path, Debug: true, LogOutput: io.Discard})
	require.NoError(t, err)
	defer app.Shutdown()
	assert.Equal(t, "debug", app.Config().Logging.Level)

	app.reloadConfig()
	assert.Equal(t, "debug", app.Config().Logging.Level)
	assert.NoError(t, app.Config().Validate())
}
