package crypto

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// KeyPair holds an RSA key pair exported as PEM strings. Ownership lies with the caller.
type KeyPair struct {
	PrivateKey string `validate:"required"`
	PublicKey  string `validate:"required"`
}

// Validate for validating KeyPair struct
func (k *KeyPair) Validate() error {
	validate := validator.New()

	err := validate.Struct(k)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// LargeEnvelope bundles a symmetrically encrypted payload with the asymmetric envelope
// of the one-time secret it was encrypted under.
type LargeEnvelope struct {
	EncryptedKey     []byte
	EncryptedPayload []byte
}
