package config

import (
	"fmt"

	"github.com/MGTheTrain/encryption-tools/internal/domain/crypto"
	"github.com/MGTheTrain/encryption-tools/internal/pkg/validators"
)

// EncryptionSettings holds the defaults the encryption helpers are constructed with
type EncryptionSettings struct {
	DefaultMethod string `mapstructure:"default_method" validate:"required,ciphermethod"`
	KeySize       int    `mapstructure:"key_size" validate:"required,rsakeysize"`
	Codec         string `mapstructure:"codec" validate:"required,oneof=json yaml"`
}

// DefaultEncryptionSettings returns aes-256-cbc, 2048-bit RSA keys and the JSON codec
func DefaultEncryptionSettings() EncryptionSettings {
	return EncryptionSettings{
		DefaultMethod: crypto.DefaultMethod,
		KeySize:       crypto.DefaultKeySize,
		Codec:         crypto.DefaultCodec,
	}
}

// Validate checks that all fields in EncryptionSettings are valid
func (s *EncryptionSettings) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for EncryptionSettings: %w", err)
	}

	return nil
}
