package app

import (
	"os"

	"github.com/dshills/softglow/internal/config"
	"github.com/dshills/softglow/internal/editor"
	"github.com/dshills/softglow/internal/logging"
	"github.com/dshills/softglow/internal/preset"
	"github.com/dshills/softglow/internal/storage"
)

// bootstrapper handles component initialization with proper cleanup on failure.
type bootstrapper struct {
	app       *Application
	opts      Options
	initOrder []string
}

func newBootstrapper(app *Application) *bootstrapper {
	return &bootstrapper{
		app:       app,
		opts:      app.opts,
		initOrder: make([]string, 0, 5),
	}
}

// bootstrap initializes all components in dependency order.
// On failure, it cleans up already-initialized components.
func (b *bootstrapper) bootstrap() error {
	steps := []func() error{
		b.initConfig,
		b.initLogger,
		b.initStorage,
		b.initMetrics,
		b.initEditor,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			b.cleanup()
			return err
		}
	}
	return nil
}

func (b *bootstrapper) initConfig() error {
	if b.opts.Config != nil {
		if err := b.opts.Config.Validate(); err != nil {
			return &InitError{Component: "config", Err: err}
		}
		b.app.config = *b.opts.Config
	} else {
		path := b.opts.ConfigPath
		if path == "" {
			path = config.DefaultPath()
		}
		cfg, err := config.Load(path)
		if err != nil {
			return &InitError{Component: "config", Err: err}
		}
		b.app.config = cfg
		b.app.configPath = path
	}

	if b.opts.LogLevel != "" {
		b.app.config.Logging.Level = b.opts.LogLevel
	}
	if b.opts.Debug {
		b.app.config.Logging.Level = logging.LevelDebug.Name()
	}
	if err := b.app.config.Validate(); err != nil {
		return &InitError{Component: "config", Err: err}
	}
	b.initOrder = append(b.initOrder, "config")
	return nil
}

func (b *bootstrapper) initLogger() error {
	out := b.opts.LogOutput
	if out == nil {
		out = os.Stderr
	}
	logger, err := logging.New(logging.Config{
		Level:  b.app.config.LogLevel(),
		Output: out,
		File:   b.app.config.Logging.File,
		Name:   "softglow",
	})
	if err != nil {
		return &InitError{Component: "logger", Err: err}
	}
	b.app.logger = logger
	b.initOrder = append(b.initOrder, "logger")
	return nil
}

func (b *bootstrapper) initStorage() error {
	db, err := storage.Open(b.app.config.Storage.Path)
	if err != nil {
		return &InitError{Component: "storage", Err: err}
	}
	b.app.db = db
	b.initOrder = append(b.initOrder, "storage")

	theme, err := db.LoadTheme()
	b.app.logLoadError("theme", err)
	b.app.theme = theme

	catalog, err := preset.NewCatalog(db)
	b.app.logLoadError("custom presets", err)
	b.app.catalog = catalog
	return nil
}

func (b *bootstrapper) initMetrics() error {
	b.app.metrics = NewMetrics()
	b.initOrder = append(b.initOrder, "metrics")
	return nil
}

func (b *bootstrapper) initEditor() error {
	state, err := b.app.db.LoadState()
	b.app.logLoadError("effect state", err)

	b.app.editor = editor.New(state,
		editor.WithMaxSize(b.app.config.History.MaxSize),
		editor.WithLogger(b.app.logger),
		editor.WithPersister(b.app.db),
	)
	b.app.editor.Observe(b.app.metrics.Observe)
	b.initOrder = append(b.initOrder, "editor")

	b.app.logger.WithFields(map[string]any{
		"db":      b.app.db.Path(),
		"maxSize": b.app.config.History.MaxSize,
	}).Debug("editor ready")
	return nil
}

// cleanup closes components in reverse initialization order.
func (b *bootstrapper) cleanup() {
	for i := len(b.initOrder) - 1; i >= 0; i-- {
		switch b.initOrder[i] {
		case "storage":
			if b.app.db != nil {
				_ = b.app.db.Close()
				b.app.db = nil
			}
		case "logger":
			if b.app.logger != nil {
				_ = b.app.logger.Close()
				b.app.logger = nil
			}
		}
	}
}
