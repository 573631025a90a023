// Package logging builds the structured loggers used across cute-borders.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ParseLevel converts a --log-level flag value to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %q (expected debug, info, warn, or error)", s)
	}
}

// New returns a text logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *slog.Logger {
	return New(io.Discard, slog.LevelError+1)
}

// Open appends to the log file at path, creating its directory if needed.
// If the file cannot be opened the returned logger writes to stderr and the
// open error is logged through it.
func Open(path string, level slog.Level) (*slog.Logger, io.Closer) {
	if path == "" {
		return New(os.Stderr, level), nopCloser{}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			return New(f, level), f
		}
		logger := New(os.Stderr, level)
		logger.Warn("failed to open log file, logging to stderr", "path", path, "error", err)
		return logger, nopCloser{}
	}
	logger := New(os.Stderr, level)
	logger.Warn("failed to create log directory, logging to stderr", "path", filepath.Dir(path))
	return logger, nopCloser{}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
