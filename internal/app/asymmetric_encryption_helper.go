package app

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/encryption-tools/internal/domain/crypto"
	"github.com/MGTheTrain/encryption-tools/internal/domain/cryptoalg"
	"github.com/MGTheTrain/encryption-tools/internal/pkg/logger"
	"github.com/MGTheTrain/encryption-tools/internal/pkg/validators"
)

// asymmetricEncryptionHelper implements the AsymmetricHelper interface
type asymmetricEncryptionHelper struct {
	rsaProcessor cryptoalg.RSAProcessor
	codec        crypto.Codec
	keySize      int
	logger       logger.Logger
}

// NewAsymmetricEncryptionHelper creates a new asymmetricEncryptionHelper instance.
// keySize is the modulus size in bits used by GenerateKeyPair.
func NewAsymmetricEncryptionHelper(
	rsaProcessor cryptoalg.RSAProcessor,
	codec crypto.Codec,
	keySize int,
	logger logger.Logger,
) (crypto.AsymmetricHelper, error) {
	if rsaProcessor == nil || codec == nil || logger == nil {
		return nil, errors.New("rsa processor, codec and logger are required")
	}

	validate, err := validators.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create validator: %w", err)
	}
	if err := validate.Var(keySize, validators.RSAKeySizeTag); err != nil {
		return nil, fmt.Errorf("invalid RSA key size %d: %w", keySize, err)
	}

	return &asymmetricEncryptionHelper{
		rsaProcessor: rsaProcessor,
		codec:        codec,
		keySize:      keySize,
		logger:       logger.With("component", "asymmetric"),
	}, nil
}

// GenerateKeyPair generates an RSA key pair and exports it as PEM strings
func (h *asymmetricEncryptionHelper) GenerateKeyPair() (*crypto.KeyPair, error) {
	privateKey, publicKey, err := h.rsaProcessor.GenerateKeys(h.keySize)
	if err != nil {
		return nil, fmt.Errorf("asymmetric.generate: %w", err)
	}

	privatePEM, err := h.rsaProcessor.MarshalPrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("asymmetric.generate: %w", err)
	}
	publicPEM, err := h.rsaProcessor.MarshalPublicKey(publicKey)
	if err != nil {
		return nil, fmt.Errorf("asymmetric.generate: %w", err)
	}

	h.logger.Debug("generated key pair", "bits", h.keySize)
	return &crypto.KeyPair{PrivateKey: privatePEM, PublicKey: publicPEM}, nil
}

// EncryptByPrivateKey encrypts value so that it can be decrypted with the matching public key
func (h *asymmetricEncryptionHelper) EncryptByPrivateKey(value any, privateKey string) ([]byte, error) {
	const op = "asymmetric.encrypt_by_private_key"

	key, err := h.rsaProcessor.ParsePrivateKey(privateKey)
	if err != nil {
		return nil, crypto.NewError(crypto.KindInvalidKeyFormat, op, err)
	}

	plaintext, err := h.marshalWithinLimit(op, value, h.rsaProcessor.MaxPlaintextSize(&key.PublicKey))
	if err != nil {
		return nil, err
	}

	ciphertext, err := h.rsaProcessor.EncryptWithPrivateKey(plaintext, key)
	if err != nil {
		return nil, encryptError(op, err)
	}

	h.logger.Debug("asymmetric encryption succeeded", "key", crypto.KeyTypePrivate)
	return ciphertext, nil
}

// EncryptByPublicKey encrypts value so that it can be decrypted with the matching private key
func (h *asymmetricEncryptionHelper) EncryptByPublicKey(value any, publicKey string) ([]byte, error) {
	const op = "asymmetric.encrypt_by_public_key"

	key, err := h.rsaProcessor.ParsePublicKey(publicKey)
	if err != nil {
		return nil, crypto.NewError(crypto.KindInvalidKeyFormat, op, err)
	}

	plaintext, err := h.marshalWithinLimit(op, value, h.rsaProcessor.MaxPlaintextSize(key))
	if err != nil {
		return nil, err
	}

	ciphertext, err := h.rsaProcessor.EncryptWithPublicKey(plaintext, key)
	if err != nil {
		return nil, encryptError(op, err)
	}

	h.logger.Debug("asymmetric encryption succeeded", "key", crypto.KeyTypePublic)
	return ciphertext, nil
}

// DecryptByPublicKey decrypts ciphertext produced by EncryptByPrivateKey into out
func (h *asymmetricEncryptionHelper) DecryptByPublicKey(ciphertext []byte, publicKey string, out any) error {
	const op = "asymmetric.decrypt_by_public_key"

	key, err := h.rsaProcessor.ParsePublicKey(publicKey)
	if err != nil {
		return crypto.NewError(crypto.KindInvalidKeyFormat, op, err)
	}

	plaintext, err := h.rsaProcessor.DecryptWithPublicKey(ciphertext, key)
	if err != nil {
		return crypto.NewError(crypto.KindCannotDecrypt, op, err)
	}

	return h.unmarshal(op, plaintext, out)
}

// DecryptByPrivateKey decrypts ciphertext produced by EncryptByPublicKey into out
func (h *asymmetricEncryptionHelper) DecryptByPrivateKey(ciphertext []byte, privateKey string, out any) error {
	const op = "asymmetric.decrypt_by_private_key"

	key, err := h.rsaProcessor.ParsePrivateKey(privateKey)
	if err != nil {
		return crypto.NewError(crypto.KindInvalidKeyFormat, op, err)
	}

	plaintext, err := h.rsaProcessor.DecryptWithPrivateKey(ciphertext, key)
	if err != nil {
		return crypto.NewError(crypto.KindCannotDecrypt, op, err)
	}

	return h.unmarshal(op, plaintext, out)
}

// Sign signs the serialized value with privateKey
func (h *asymmetricEncryptionHelper) Sign(value any, privateKey string) ([]byte, error) {
	const op = "asymmetric.sign"

	key, err := h.rsaProcessor.ParsePrivateKey(privateKey)
	if err != nil {
		return nil, crypto.NewError(crypto.KindInvalidKeyFormat, op, err)
	}

	data, err := h.codec.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	signature, err := h.rsaProcessor.Sign(data, key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return signature, nil
}

// Verify checks signature against the serialized value with publicKey
func (h *asymmetricEncryptionHelper) Verify(value any, signature []byte, publicKey string) error {
	const op = "asymmetric.verify"

	key, err := h.rsaProcessor.ParsePublicKey(publicKey)
	if err != nil {
		return crypto.NewError(crypto.KindInvalidKeyFormat, op, err)
	}

	data, err := h.codec.Marshal(value)
	if err != nil {
		return crypto.NewError(crypto.KindCannotVerify, op, err)
	}

	valid, err := h.rsaProcessor.Verify(data, signature, key)
	if err != nil {
		return crypto.NewError(crypto.KindCannotVerify, op, err)
	}
	if !valid {
		return crypto.NewError(crypto.KindCannotVerify, op, nil)
	}

	h.logger.Debug("signature verified")
	return nil
}

// MaxPlaintextSize returns the serialized plaintext ceiling for publicKey
func (h *asymmetricEncryptionHelper) MaxPlaintextSize(publicKey string) (int, error) {
	key, err := h.rsaProcessor.ParsePublicKey(publicKey)
	if err != nil {
		return 0, crypto.NewError(crypto.KindInvalidKeyFormat, "asymmetric.max_plaintext_size", err)
	}
	return h.rsaProcessor.MaxPlaintextSize(key), nil
}

func (h *asymmetricEncryptionHelper) marshalWithinLimit(op string, value any, limit int) ([]byte, error) {
	plaintext, err := h.codec.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(plaintext) > limit {
		return nil, crypto.NewError(crypto.KindCannotEncrypt, op,
			fmt.Errorf("serialized plaintext is %d bytes, max %d", len(plaintext), limit))
	}
	return plaintext, nil
}

func (h *asymmetricEncryptionHelper) unmarshal(op string, plaintext []byte, out any) error {
	if err := h.codec.Unmarshal(plaintext, out); err != nil {
		return crypto.NewError(crypto.KindCannotDecrypt, op, err)
	}
	h.logger.Debug("asymmetric decryption succeeded")
	return nil
}

func encryptError(op string, err error) error {
	if errors.Is(err, cryptoalg.ErrMessageTooLong) {
		return crypto.NewError(crypto.KindCannotEncrypt, op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
