package logger

import (
	"log/slog"
	"os"
)

// slogLogger adapts a *slog.Logger to Logger
type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) Debug(msg string, keyvals ...any) {
	l.logger.Debug(msg, keyvals...)
}

func (l *slogLogger) Info(msg string, keyvals ...any) {
	l.logger.Info(msg, keyvals...)
}

func (l *slogLogger) Warn(msg string, keyvals ...any) {
	l.logger.Warn(msg, keyvals...)
}

func (l *slogLogger) Error(msg string, keyvals ...any) {
	l.logger.Error(msg, keyvals...)
}

// Fatal logs at error level and exits.
func (l *slogLogger) Fatal(msg string, keyvals ...any) {
	l.logger.Error(msg, keyvals...)
	os.Exit(1)
}

// Panic logs at error level and panics with msg.
func (l *slogLogger) Panic(msg string, keyvals ...any) {
	l.logger.Error(msg, keyvals...)
	panic(msg)
}

func (l *slogLogger) With(keyvals ...any) Logger {
	return &slogLogger{logger: l.logger.With(keyvals...)}
}
