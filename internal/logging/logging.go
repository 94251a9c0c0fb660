// Package logging provides the structured logger used across softglow.
// It wraps zap with a small leveled API and printf style messages.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level represents the severity level of a log message.
type Level int

const (
	// LevelDebug is for detailed debugging information.
	LevelDebug Level = iota
	// LevelInfo is for general informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Name returns the lowercase name used in configuration files.
func (l Level) Name() string {
	return strings.ToLower(l.String())
}

func (l Level) zap() zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// ParseLevel parses a level name. Unknown names yield LevelInfo and false.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	default:
		return LevelInfo, false
	}
}

// Config configures a Logger.
type Config struct {
	// Level is the minimum log level to output.
	Level Level
	// Output is where logs are written. Defaults to os.Stderr.
	Output io.Writer
	// File, when set, is opened for appending and used instead of Output.
	File string
	// Name is attached to every entry.
	Name string
}

// DefaultConfig returns the default logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:  LevelInfo,
		Output: os.Stderr,
		Name:   "softglow",
	}
}

// Logger provides leveled, structured logging.
type Logger struct {
	z     *zap.Logger
	level zap.AtomicLevel
	close func() error
}

// New creates a logger writing console encoded entries.
func New(cfg Config) (*Logger, error) {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	closeFn := func() error { return nil }

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02T15:04:05.000")
	encCfg.EncodeCaller = nil
	encCfg.CallerKey = ""

	level := zap.NewAtomicLevelAt(cfg.Level.zap())
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(out), level)

	z := zap.New(core)
	if cfg.Name != "" {
		z = z.Named(cfg.Name)
	}
	return &Logger{z: z, level: level, close: closeFn}, nil
}

// Nop returns a logger that discards all output.
func Nop() *Logger {
	return &Logger{
		z:     zap.NewNop(),
		level: zap.NewAtomicLevelAt(zapcore.InfoLevel),
		close: func() error { return nil },
	}
}

// Zap returns the underlying zap logger.
func (l *Logger) Zap() *zap.Logger {
	return l.z
}

// WithField returns a new logger with the given field added.
func (l *Logger) WithField(key string, value any) *Logger {
	return l.with(zap.Any(key, value))
}

// WithFields returns a new logger with the given fields added.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	zf := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zf = append(zf, zap.Any(k, v))
	}
	return l.with(zf...)
}

// WithComponent returns a new logger with the component field set.
func (l *Logger) WithComponent(component string) *Logger {
	return l.with(zap.String("component", component))
}

// WithError returns a new logger with the error field set.
func (l *Logger) WithError(err error) *Logger {
	return l.with(zap.Error(err))
}

func (l *Logger) with(fields ...zap.Field) *Logger {
	return &Logger{z: l.z.With(fields...), level: l.level, close: l.close}
}

// SetLevel sets the minimum log level. It affects every logger derived
// from the same root.
func (l *Logger) SetLevel(level Level) {
	l.level.SetLevel(level.zap())
}

// Enabled reports whether messages at level are written.
func (l *Logger) Enabled(level Level) bool {
	return l.z.Core().Enabled(level.zap())
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	l.z.Debug(format(msg, args))
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...any) {
	l.z.Info(format(msg, args))
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.z.Warn(format(msg, args))
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) {
	l.z.Error(format(msg, args))
}

// Close flushes buffered entries and closes the log file, if any.
func (l *Logger) Close() error {
	_ = l.z.Sync()
	return l.close()
}

func format(msg string, args []any) string {
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}
