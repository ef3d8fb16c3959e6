package app

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"github.com/MGTheTrain/encryption-tools/internal/domain/crypto"
	"github.com/MGTheTrain/encryption-tools/internal/domain/cryptoalg"
	"github.com/MGTheTrain/encryption-tools/internal/pkg/logger"

	"golang.org/x/crypto/hkdf"
)

const keyDerivationInfoPrefix = "encryption-tools:"

// symmetricEncryptionHelper implements the SymmetricHelper interface
type symmetricEncryptionHelper struct {
	cipher        cryptoalg.SymmetricCipher
	codec         crypto.Codec
	defaultMethod string
	logger        logger.Logger
}

// NewSymmetricEncryptionHelper creates a new symmetricEncryptionHelper instance.
// defaultMethod is used by Encrypt and Decrypt and must be supported by cipher.
func NewSymmetricEncryptionHelper(
	cipher cryptoalg.SymmetricCipher,
	codec crypto.Codec,
	defaultMethod string,
	logger logger.Logger,
) (crypto.SymmetricHelper, error) {
	if cipher == nil || codec == nil || logger == nil {
		return nil, errors.New("cipher, codec and logger are required")
	}

	h := &symmetricEncryptionHelper{
		cipher:        cipher,
		codec:         codec,
		defaultMethod: defaultMethod,
		logger:        logger.With("component", "symmetric"),
	}
	if _, _, err := h.methodParams("symmetric.new", defaultMethod); err != nil {
		return nil, err
	}
	return h, nil
}

// Encrypt encrypts value under secret with the default method
func (h *symmetricEncryptionHelper) Encrypt(value any, secret string) ([]byte, error) {
	return h.EncryptWithMethod(value, secret, h.defaultMethod)
}

// EncryptWithMethod serializes value and seals it in a symmetric envelope
func (h *symmetricEncryptionHelper) EncryptWithMethod(value any, secret, method string) ([]byte, error) {
	const op = "symmetric.encrypt"

	keyLen, ivLen, err := h.methodParams(op, method)
	if err != nil {
		return nil, err
	}

	plaintext, err := h.codec.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	iv := make([]byte, ivLen)
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("%s: failed to generate IV: %w", op, err)
	}

	encKey, macKey, err := deriveKeys(secret, iv, method, keyLen)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ciphertext, err := h.cipher.Encrypt(plaintext, encKey, iv, method)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	envelope := sealSymmetricEnvelope(iv, ciphertext, macKey)
	h.logger.Debug("symmetric encryption succeeded", "method", method, "envelope_size", len(envelope))
	return envelope, nil
}

// Decrypt decrypts an envelope sealed with the default method into out
func (h *symmetricEncryptionHelper) Decrypt(envelope []byte, secret string, out any) error {
	return h.DecryptWithMethod(envelope, secret, h.defaultMethod, out)
}

// DecryptWithMethod authenticates and decrypts envelope, then decodes the plaintext into out
func (h *symmetricEncryptionHelper) DecryptWithMethod(envelope []byte, secret, method string, out any) error {
	const op = "symmetric.decrypt"

	keyLen, ivLen, err := h.methodParams(op, method)
	if err != nil {
		return err
	}

	env, err := parseSymmetricEnvelope(envelope)
	if err != nil {
		return crypto.NewError(crypto.KindCannotDecrypt, op, err)
	}
	if len(env.iv) != ivLen {
		return crypto.NewError(crypto.KindCannotDecrypt, op, fmt.Errorf("IV length %d does not match %s", len(env.iv), method))
	}

	encKey, macKey, err := deriveKeys(secret, env.iv, method, keyLen)
	if err != nil {
		return crypto.NewError(crypto.KindCannotDecrypt, op, err)
	}
	if err := env.verify(macKey); err != nil {
		return crypto.NewError(crypto.KindCannotDecrypt, op, err)
	}

	plaintext, err := h.cipher.Decrypt(env.ciphertext, encKey, env.iv, method)
	if err != nil {
		return crypto.NewError(crypto.KindCannotDecrypt, op, err)
	}

	if err := h.codec.Unmarshal(plaintext, out); err != nil {
		return crypto.NewError(crypto.KindCannotDecrypt, op, err)
	}

	h.logger.Debug("symmetric decryption succeeded", "method", method)
	return nil
}

// methodParams resolves the key and IV lengths of method from the cipher provider,
// rejecting names it does not support
func (h *symmetricEncryptionHelper) methodParams(op, method string) (int, int, error) {
	keyLen, err := h.cipher.KeyLength(method)
	if err != nil {
		return 0, 0, unsupportedMethodError(op, method, err)
	}
	ivLen, err := h.cipher.IVLength(method)
	if err != nil {
		return 0, 0, unsupportedMethodError(op, method, err)
	}
	return keyLen, ivLen, nil
}

func unsupportedMethodError(op, method string, err error) error {
	if errors.Is(err, cryptoalg.ErrUnsupportedMethod) {
		return crypto.NewError(crypto.KindUnknownMethod, op, err)
	}
	return fmt.Errorf("%s: %s: %w", op, method, err)
}

// deriveKeys expands secret with HKDF-SHA256 into a cipher key of keyLen bytes and a MAC key.
// The IV salts the derivation and the method name is bound into the info string.
func deriveKeys(secret string, iv []byte, method string, keyLen int) ([]byte, []byte, error) {
	r := hkdf.New(sha256.New, []byte(secret), iv, []byte(keyDerivationInfoPrefix+method))

	material := make([]byte, keyLen+macSize)
	if _, err := io.ReadFull(r, material); err != nil {
		return nil, nil, fmt.Errorf("failed to derive keys: %w", err)
	}
	return material[:keyLen], material[keyLen:], nil
}
