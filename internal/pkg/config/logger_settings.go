package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// LoggerSettings holds configuration settings for logging, including log level, type and file path
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=info debug error warning critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// DefaultLoggerSettings returns console logging at info level
func DefaultLoggerSettings() LoggerSettings {
	return LoggerSettings{
		LogLevel: LogLevelInfo,
		LogType:  LogTypeConsole,
	}
}

// Validate checks that all fields in LoggerSettings are valid
func (s *LoggerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}

	// Rotation settings only matter for the file logger
	if s.LogType == LogTypeFile {
		if s.FilePath == "" {
			return fmt.Errorf("file path is required for file logger")
		}
		if s.MaxSize < 1 || s.MaxSize > MaxLogFileSizeMB {
			return fmt.Errorf("max size must be between 1 and %d MB", MaxLogFileSizeMB)
		}
		if s.MaxBackups < 1 || s.MaxBackups > MaxLogFileBackups {
			return fmt.Errorf("max backups must be between 1 and %d", MaxLogFileBackups)
		}
		if s.MaxAge < 1 || s.MaxAge > MaxLogFileAgeDays {
			return fmt.Errorf("max age must be between 1 and %d days", MaxLogFileAgeDays)
		}
	}

	return nil
}
