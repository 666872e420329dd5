// Package logger wraps slog with a numeric level and a Fatal helper.
package logger

import (
	"log/slog"
	"os"
)

// Logger is the application-wide structured logger.
type Logger struct {
	*slog.Logger
}

// New creates a Logger writing text records to stdout at the given slog
// level.
func New(level int) *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.Level(level)})),
	}
}

// Fatal logs at error level and exits the process.
func (l *Logger) Fatal(msg string, args ...any) {
	l.Logger.Error(msg, args...)
	os.Exit(1)
}
