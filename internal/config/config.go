// Package config loads softglow settings.
//
// Settings are layered, later layers overriding earlier ones key by key:
//
//	built-in defaults
//	YAML file (~/.config/softglow/config.yaml or -config)
//	SOFTGLOW_* environment variables
//
// SOFTGLOW_HISTORY_MAX_SIZE sets history.maxSize and so on. LOG_LEVEL,
// LOG_FILE, DB and UNDO_KEYS are accepted as short aliases.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dshills/softglow/internal/config/layer"
	"github.com/dshills/softglow/internal/config/loader"
	"github.com/dshills/softglow/internal/engine/history"
	"github.com/dshills/softglow/internal/input/shortcut"
	"github.com/dshills/softglow/internal/logging"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "SOFTGLOW_"

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all settings.
type Config struct {
	History HistoryConfig `yaml:"history"`
	Logging LoggingConfig `yaml:"logging"`
	Storage StorageConfig `yaml:"storage"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// HistoryConfig configures undo history.
type HistoryConfig struct {
	MaxSize           int    `yaml:"maxSize"`
	KeyboardShortcuts bool   `yaml:"keyboardShortcuts"`
	Modifier          string `yaml:"modifier"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// StorageConfig configures the database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Address string `yaml:"address"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		History: HistoryConfig{
			MaxSize:           history.DefaultMaxSize,
			KeyboardShortcuts: true,
			Modifier:          shortcut.ModeBoth.String(),
		},
		Logging: LoggingConfig{Level: "info"},
		Storage: StorageConfig{Path: filepath.Join(dataDir(), "softglow", "softglow.db")},
		Metrics: MetricsConfig{Address: ":9464"},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "softglow", "config.yaml")
}

func dataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// Load layers the defaults, the YAML file at path and the environment,
// then validates the result. A missing file is not an error.
func Load(path string) (Config, error) {
	return load(loader.NewYAMLLoader(path), loader.NewEnvLoader(EnvPrefix))
}

func load(loaders ...loader.Loader) (Config, error) {
	base, err := toMap(Default())
	if err != nil {
		return Config{}, err
	}

	layers := []map[string]any{base}
	for _, l := range loaders {
		m, err := l.Load()
		if err != nil {
			return Config{}, err
		}
		layers = append(layers, m)
	}

	cfg, err := fromMap(layer.Merge(layers...))
	if err != nil {
		return Config{}, err
	}
	cfg.Storage.Path = expandPath(cfg.Storage.Path)
	cfg.Logging.File = expandPath(cfg.Logging.File)
	return cfg, cfg.Validate()
}

// toMap and fromMap round-trip through YAML so the layers share one
// representation.
func toMap(cfg Config) (map[string]any, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode defaults: %w", err)
	}
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("encode defaults: %w", err)
	}
	return m, nil
}

func fromMap(m map[string]any) (Config, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return cfg, nil
}

func expandPath(p string) string {
	if p == "" {
		return p
	}
	p = os.ExpandEnv(p)
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, p[1:])
		}
	}
	return p
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.History.MaxSize < 1 {
		return fmt.Errorf("%w: history.maxSize must be at least 1, got %d", ErrInvalid, c.History.MaxSize)
	}
	if _, err := shortcut.ParseMode(c.History.Modifier); err != nil {
		return fmt.Errorf("%w: history.modifier: %w", ErrInvalid, err)
	}
	if _, ok := logging.ParseLevel(c.Logging.Level); !ok {
		return fmt.Errorf("%w: logging.level %q", ErrInvalid, c.Logging.Level)
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("%w: storage.path is empty", ErrInvalid)
	}
	if c.Metrics.Enabled && c.Metrics.Address == "" {
		return fmt.Errorf("%w: metrics.address is empty", ErrInvalid)
	}
	return nil
}

// Modifier returns the parsed history.modifier.
func (c Config) Modifier() shortcut.Mode {
	m, _ := shortcut.ParseMode(c.History.Modifier)
	return m
}

// LogLevel returns the parsed logging.level.
func (c Config) LogLevel() logging.Level {
	l, _ := logging.ParseLevel(c.Logging.Level)
	return l
}
