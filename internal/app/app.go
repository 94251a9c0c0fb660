package app

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/softglow/internal/config"
	"github.com/dshills/softglow/internal/editor"
	"github.com/dshills/softglow/internal/effect"
	"github.com/dshills/softglow/internal/input/shortcut"
	"github.com/dshills/softglow/internal/logging"
	"github.com/dshills/softglow/internal/preset"
	"github.com/dshills/softglow/internal/script"
	"github.com/dshills/softglow/internal/storage"
	"github.com/dshills/softglow/internal/tui"
	"github.com/dshills/softglow/internal/watch"
)

// shutdownTimeout bounds stopping the metrics server.
const shutdownTimeout = 5 * time.Second

// Options configures the application.
type Options struct {
	// ConfigPath is the YAML config file. Empty selects config.DefaultPath.
	ConfigPath string

	// Config, when set, is used instead of loading ConfigPath.
	Config *config.Config

	// LogLevel overrides logging.level when set.
	LogLevel string

	// Debug forces the debug log level.
	Debug bool

	// LogOutput receives log entries when no log file is configured.
	// Defaults to os.Stderr.
	LogOutput io.Writer

	// Screen is the terminal used by Run. Defaults to tcell.NewScreen.
	Screen tcell.Screen
}

// Application owns the long lived components of softglow.
type Application struct {
	mu sync.Mutex

	opts       Options
	configPath string
	config     config.Config
	logger  *logging.Logger
	db      *storage.DB
	catalog *preset.Catalog
	theme   effect.Theme
	metrics *Metrics
	editor  *editor.Editor

	metricsSrv *metricsServer

	running atomic.Bool
	closed  bool
}

// New loads configuration and opens every component. On error the
// components opened so far are closed again.
func New(opts Options) (*Application, error) {
	app := &Application{opts: opts}
	if err := newBootstrapper(app).bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// Run starts the terminal UI and blocks until the user quits or ctx is done.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if app.isClosed() {
		return ErrClosed
	}

	screen := app.opts.Screen
	if screen == nil {
		var err error
		if screen, err = tcell.NewScreen(); err != nil {
			return &InitError{Component: "screen", Err: err}
		}
	}
	if err := screen.Init(); err != nil {
		return &InitError{Component: "screen", Err: err}
	}
	defer screen.Fini()

	app.startMetrics()

	if app.configPath != "" {
		w, err := watch.New(watch.WithLogger(app.logger))
		if err != nil {
			app.logger.WithError(err).Warn("config reload disabled")
		} else {
			defer w.Close()
			if err := w.Watch(app.configPath, app.reloadConfig); err != nil {
				app.logger.WithError(err).Warn("config reload disabled")
			}
		}
	}

	opts := []tui.Option{
		tui.WithCatalog(app.catalog),
		tui.WithLogger(app.logger),
	}
	if app.config.History.KeyboardShortcuts {
		binding := shortcut.DefaultBinding()
		binding.Mode = app.config.Modifier()
		opts = append(opts, tui.WithBinding(binding))
	}

	app.logger.Info("starting UI")
	return tui.New(screen, app.editor, opts...).Run(ctx)
}

// reloadConfig applies the settings that can change while running: the
// history size bound and the log level. An invalid file is ignored.
func (app *Application) reloadConfig() {
	cfg, err := config.Load(app.configPath)
	if err != nil {
		app.logger.WithError(err).Warn("config reload failed")
		return
	}
	if app.opts.LogLevel != "" {
		cfg.Logging.Level = app.opts.LogLevel
	}
	if app.opts.Debug {
		cfg.Logging.Level = logging.LevelDebug.Name()
	}

	app.mu.Lock()
	app.config.History.MaxSize = cfg.History.MaxSize
	app.config.Logging.Level = cfg.Logging.Level
	app.mu.Unlock()

	app.editor.SetMaxSize(cfg.History.MaxSize)
	app.logger.SetLevel(cfg.LogLevel())
	app.logger.WithFields(map[string]any{
		"maxSize": cfg.History.MaxSize,
		"level":   cfg.Logging.Level,
	}).Info("config reloaded")
}

func (app *Application) startMetrics() {
	app.mu.Lock()
	defer app.mu.Unlock()

	if !app.config.Metrics.Enabled || app.metricsSrv != nil {
		return
	}
	app.metricsSrv = startMetricsServer(app.config.Metrics.Address, app.metrics)
	app.logger.WithField("address", app.config.Metrics.Address).Info("serving metrics")
}

// ApplyScriptFile runs the Lua transform in path against the present state
// as a single undo step.
func (app *Application) ApplyScriptFile(path string) error {
	t, err := script.Load(path)
	if err != nil {
		return NewOperationError("script", path, err)
	}
	defer t.Close()

	if err := app.editor.ApplyScript(t.Name(), t); err != nil {
		return NewOperationError("script", path, err)
	}
	app.logger.WithField("script", t.Name()).Info("script applied")
	return nil
}

// ImportFile replaces the state with the JSON document in path.
func (app *Application) ImportFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return NewOperationError("import", path, err)
	}
	if err := app.editor.ImportState(data); err != nil {
		return NewOperationError("import", path, err)
	}
	return nil
}

// Export returns the present state as indented JSON.
func (app *Application) Export() ([]byte, error) {
	data, err := app.editor.ExportState()
	if err != nil {
		return nil, NewOperationError("export", "", err)
	}
	return data, nil
}

// SavePreset captures the present state as a custom preset.
func (app *Application) SavePreset(name, description string) (preset.Preset, error) {
	p, err := preset.Capture(app.editor.State(), name, description)
	if err != nil {
		return preset.Preset{}, NewOperationError("save preset", name, err)
	}
	if err := app.catalog.Add(p); err != nil {
		return preset.Preset{}, NewOperationError("save preset", name, err)
	}
	return p, nil
}

// Shutdown saves the state and theme and closes every component.
// It is safe to call more than once.
func (app *Application) Shutdown() error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.closed {
		return nil
	}
	app.closed = true

	var errs ErrorList
	if app.metricsSrv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		errs.Add(app.metricsSrv.shutdown(ctx))
		cancel()
	}
	errs.Add(app.db.SaveState(app.editor.State()))
	errs.Add(app.db.SaveTheme(app.theme))
	errs.Add(app.db.Close())

	if err := errs.AsError(); err != nil {
		app.logger.WithError(err).Error("shutdown")
	} else {
		app.logger.Info("shutdown complete")
	}
	errs.Add(app.logger.Close())
	return errs.AsError()
}

func (app *Application) isClosed() bool {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.closed
}

// IsRunning returns true while Run is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the loaded configuration.
func (app *Application) Config() config.Config {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.config
}

// Editor returns the effect editor.
func (app *Application) Editor() *editor.Editor {
	return app.editor
}

// Catalog returns the preset catalog.
func (app *Application) Catalog() *preset.Catalog {
	return app.catalog
}

// Theme returns the stored theme.
func (app *Application) Theme() effect.Theme {
	return app.theme
}

// Metrics returns the metrics collectors.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// Logger returns the application logger.
func (app *Application) Logger() *logging.Logger {
	return app.logger
}

// logLoadError logs recoverable load failures such as a corrupt document.
func (app *Application) logLoadError(what string, err error) {
	if err == nil {
		return
	}
	l := app.logger.WithError(err)
	if errors.Is(err, storage.ErrCorrupt) {
		l.Warn("%s was corrupt, using defaults", what)
		return
	}
	l.Warn("failed to load %s", what)
}
