// Package logger wraps log/slog for the pac command.
package logger

import (
	"io"
	"log/slog"
)

// Logger is a slog.Logger writing human-readable text lines.
type Logger struct {
	*slog.Logger
}

// NewLogger returns a Logger writing to w at the given level.
func NewLogger(level slog.Level, w io.Writer) *Logger {
	return &Logger{slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))}
}

// Err returns err as an "error" attribute.
func Err(err error) slog.Attr {
	return slog.Any("error", err)
}
