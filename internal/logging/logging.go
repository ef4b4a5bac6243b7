// Package logging provides a leveled, structured logger backed by log/slog.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

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

func (l Level) slog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel parses a log level string. Unknown values map to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Config controls logger construction.
type Config struct {
	Level  Level
	Format string    // "text" (default) or "json"
	Output io.Writer // defaults to os.Stderr
}

// Logger is a leveled logger with key/value attributes.
// Attributes follow slog conventions: alternating keys and values.
type Logger struct {
	l *slog.Logger
}

// New creates a new logger.
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: cfg.Level.slog()}

	var h slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}

	return &Logger{l: slog.New(h)}
}

// Enabled reports whether messages at level would be written.
func (l *Logger) Enabled(level Level) bool {
	return l.l.Enabled(context.Background(), level.slog())
}

// With returns a logger that adds attrs to every message.
func (l *Logger) With(attrs ...any) *Logger {
	return &Logger{l: l.l.With(attrs...)}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, attrs ...any) {
	l.l.Debug(msg, attrs...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, attrs ...any) {
	l.l.Info(msg, attrs...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, attrs ...any) {
	l.l.Warn(msg, attrs...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, attrs ...any) {
	l.l.Error(msg, attrs...)
}

// Discard returns a logger that discards all output.
func Discard() *Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelError + 1}
	return &Logger{l: slog.New(slog.NewTextHandler(io.Discard, opts))}
}

// OpenFile opens path for appending log lines, creating it if needed.
func OpenFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
