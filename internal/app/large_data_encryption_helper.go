package app

import (
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/MGTheTrain/encryption-tools/internal/domain/crypto"
	"github.com/MGTheTrain/encryption-tools/internal/pkg/logger"
)

// largeDataEncryptionHelper implements the LargeDataHelper interface.
// The payload is sealed by the symmetric helper under a one-time secret and
// only that secret goes through RSA.
type largeDataEncryptionHelper struct {
	symmetric  crypto.SymmetricHelper
	asymmetric crypto.AsymmetricHelper
	logger     logger.Logger
}

// NewLargeDataEncryptionHelper creates a new largeDataEncryptionHelper instance
func NewLargeDataEncryptionHelper(
	symmetric crypto.SymmetricHelper,
	asymmetric crypto.AsymmetricHelper,
	logger logger.Logger,
) (crypto.LargeDataHelper, error) {
	if symmetric == nil || asymmetric == nil || logger == nil {
		return nil, errors.New("symmetric helper, asymmetric helper and logger are required")
	}
	return &largeDataEncryptionHelper{
		symmetric:  symmetric,
		asymmetric: asymmetric,
		logger:     logger.With("component", "large_data"),
	}, nil
}

// GenerateKeyPair generates a key pair through the asymmetric helper
func (h *largeDataEncryptionHelper) GenerateKeyPair() (*crypto.KeyPair, error) {
	return h.asymmetric.GenerateKeyPair()
}

// EncryptByPrivateKey encrypts value of any size, protecting the one-time secret with privateKey
func (h *largeDataEncryptionHelper) EncryptByPrivateKey(value any, privateKey string) ([]byte, error) {
	return h.encrypt(value, func(secret []byte) ([]byte, error) {
		return h.asymmetric.EncryptByPrivateKey(secret, privateKey)
	})
}

// EncryptByPublicKey encrypts value of any size, protecting the one-time secret with publicKey
func (h *largeDataEncryptionHelper) EncryptByPublicKey(value any, publicKey string) ([]byte, error) {
	return h.encrypt(value, func(secret []byte) ([]byte, error) {
		return h.asymmetric.EncryptByPublicKey(secret, publicKey)
	})
}

// DecryptByPublicKey decrypts an envelope produced by EncryptByPrivateKey into out
func (h *largeDataEncryptionHelper) DecryptByPublicKey(envelope []byte, publicKey string, out any) error {
	return h.decrypt(envelope, out, func(encryptedKey []byte, secret *[]byte) error {
		return h.asymmetric.DecryptByPublicKey(encryptedKey, publicKey, secret)
	})
}

// DecryptByPrivateKey decrypts an envelope produced by EncryptByPublicKey into out
func (h *largeDataEncryptionHelper) DecryptByPrivateKey(envelope []byte, privateKey string, out any) error {
	return h.decrypt(envelope, out, func(encryptedKey []byte, secret *[]byte) error {
		return h.asymmetric.DecryptByPrivateKey(encryptedKey, privateKey, secret)
	})
}

func (h *largeDataEncryptionHelper) encrypt(value any, wrapSecret func([]byte) ([]byte, error)) ([]byte, error) {
	secret := make([]byte, crypto.LargeDataSecretSize)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("large.encrypt: failed to generate secret: %w", err)
	}

	// Wrap first so a bad key fails before the payload is processed
	encryptedKey, err := wrapSecret(secret)
	if err != nil {
		return nil, err
	}

	encryptedPayload, err := h.symmetric.Encrypt(value, string(secret))
	if err != nil {
		return nil, err
	}

	envelope, err := encodeLargeEnvelope(&crypto.LargeEnvelope{
		EncryptedKey:     encryptedKey,
		EncryptedPayload: encryptedPayload,
	})
	if err != nil {
		return nil, fmt.Errorf("large.encrypt: %w", err)
	}

	h.logger.Debug("large data encryption succeeded", "envelope_size", len(envelope))
	return envelope, nil
}

func (h *largeDataEncryptionHelper) decrypt(envelope []byte, out any, unwrapSecret func([]byte, *[]byte) error) error {
	env, err := decodeLargeEnvelope(envelope)
	if err != nil {
		return crypto.NewError(crypto.KindCannotDecrypt, "large.decrypt", err)
	}

	var secret []byte
	if err := unwrapSecret(env.EncryptedKey, &secret); err != nil {
		return err
	}
	if len(secret) != crypto.LargeDataSecretSize {
		return crypto.NewError(crypto.KindCannotDecrypt, "large.decrypt",
			fmt.Errorf("recovered secret is %d bytes", len(secret)))
	}

	if err := h.symmetric.Decrypt(env.EncryptedPayload, string(secret), out); err != nil {
		return err
	}

	h.logger.Debug("large data decryption succeeded")
	return nil
}
