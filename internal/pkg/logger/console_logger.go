package logger

import (
	"io"
	"log/slog"
	"os"
)

// ConsoleLogger is an implementation of Logger that logs text records to stderr.
type ConsoleLogger struct {
	slogLogger
}

// NewConsoleLogger creates a new console logger with the specified log level.
func NewConsoleLogger(level string) Logger {
	return newConsoleLogger(os.Stderr, level)
}

func newConsoleLogger(w io.Writer, level string) *ConsoleLogger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	handler := slog.NewTextHandler(w, opts)

	return &ConsoleLogger{slogLogger{logger: slog.New(handler)}}
}
