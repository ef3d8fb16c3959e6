package logger

// Logger defines the logging interface.
// Messages are followed by alternating key/value pairs, as with log/slog.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
	Fatal(msg string, keyvals ...any)
	Panic(msg string, keyvals ...any)
	// With returns a Logger that adds keyvals to every record.
	With(keyvals ...any) Logger
}
