package config

// Log level constants. Helpers log successful encryption operations at debug,
// so info keeps CLI output limited to command results.
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Log type constants
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Rotation bounds accepted for the file logger
const (
	MaxLogFileSizeMB  = 100
	MaxLogFileBackups = 10
	MaxLogFileAgeDays = 365
)
