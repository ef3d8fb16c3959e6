//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cli.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeCLIConfig_Defaults(t *testing.T) {
	cfg, err := InitializeCLIConfig("")
	require.NoError(t, err)

	assert.Equal(t, DefaultLoggerSettings(), cfg.Logger)
	assert.Equal(t, DefaultEncryptionSettings(), cfg.Encryption)
}

func TestInitializeCLIConfig_File(t *testing.T) {
	path := writeConfigFile(t, `
logger:
  log_level: debug
  log_type: console
encryption:
  default_method: aes-128-gcm
  key_size: 3072
  codec: yaml
`)

	cfg, err := InitializeCLIConfig(path)
	require.NoError(t, err)

	assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, "aes-128-gcm", cfg.Encryption.DefaultMethod)
	assert.Equal(t, 3072, cfg.Encryption.KeySize)
	assert.Equal(t, "yaml", cfg.Encryption.Codec)
}

func TestInitializeCLIConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfigFile(t, `
encryption:
  default_method: chacha20
`)

	cfg, err := InitializeCLIConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "chacha20", cfg.Encryption.DefaultMethod)
	assert.Equal(t, 2048, cfg.Encryption.KeySize)
	assert.Equal(t, "json", cfg.Encryption.Codec)
	assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
}

func TestInitializeCLIConfig_EnvOverride(t *testing.T) {
	t.Setenv("ENCRYPTION_TOOLS_ENCRYPTION_DEFAULT_METHOD", "aes-128-cbc")
	t.Setenv("ENCRYPTION_TOOLS_ENCRYPTION_KEY_SIZE", "4096")

	cfg, err := InitializeCLIConfig("")
	require.NoError(t, err)

	assert.Equal(t, "aes-128-cbc", cfg.Encryption.DefaultMethod)
	assert.Equal(t, 4096, cfg.Encryption.KeySize)
}

func TestInitializeCLIConfig_Invalid(t *testing.T) {
	path := writeConfigFile(t, `
encryption:
  default_method: unknown-method
`)

	_, err := InitializeCLIConfig(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestInitializeCLIConfig_MissingFile(t *testing.T) {
	_, err := InitializeCLIConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
