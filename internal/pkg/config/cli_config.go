package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding CLI configuration
const EnvPrefix = "ENCRYPTION_TOOLS"

// CLIConfig is the configuration of the encryption-tools CLI
type CLIConfig struct {
	Logger     LoggerSettings     `mapstructure:"logger"`
	Encryption EncryptionSettings `mapstructure:"encryption"`
}

// Validate validates every section of the configuration
func (c *CLIConfig) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.Encryption.Validate()
}

// InitializeCLIConfig loads the CLI configuration from path (YAML), environment variables
// (ENCRYPTION_TOOLS_ prefix, e.g. ENCRYPTION_TOOLS_ENCRYPTION_DEFAULT_METHOD) and built-in defaults.
// An empty path skips the file.
func InitializeCLIConfig(path string) (*CLIConfig, error) {
	v := newViperInstance()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg CLIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults registers every key so AutomaticEnv can resolve it during Unmarshal
func setDefaults(v *viper.Viper) {
	logger := DefaultLoggerSettings()
	v.SetDefault("logger.log_level", logger.LogLevel)
	v.SetDefault("logger.log_type", logger.LogType)
	v.SetDefault("logger.file_path", logger.FilePath)
	v.SetDefault("logger.max_size", logger.MaxSize)
	v.SetDefault("logger.max_backups", logger.MaxBackups)
	v.SetDefault("logger.max_age", logger.MaxAge)

	encryption := DefaultEncryptionSettings()
	v.SetDefault("encryption.default_method", encryption.DefaultMethod)
	v.SetDefault("encryption.key_size", encryption.KeySize)
	v.SetDefault("encryption.codec", encryption.Codec)
}
