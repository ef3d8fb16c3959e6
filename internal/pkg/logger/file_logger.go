package logger

import (
	"io"
	"log/slog"
	"math"

	"github.com/natefinch/lumberjack"
)

// FileLogger is an implementation of Logger that logs JSON records to a rotated file.
type FileLogger struct {
	slogLogger
}

// NewFileLogger creates a new file logger with rotation settings.
func NewFileLogger(level string, filePath string, maxSize int, maxBackups int, maxAge int) Logger {
	writer := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}

	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	handler := slog.NewJSONHandler(writer, opts)

	return &FileLogger{slogLogger{logger: slog.New(handler)}}
}

// NopLogger returns a Logger that discards every record.
func NopLogger() Logger {
	return &slogLogger{logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))}
}
