package cryptography

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"
	"strings"

	cryptoDomain "github.com/MGTheTrain/encryption-tools/internal/domain/crypto"
	"github.com/MGTheTrain/encryption-tools/internal/domain/cryptoalg"
	"github.com/MGTheTrain/encryption-tools/internal/pkg/logger"
)

// PEM block types
const (
	pemTypeRSAPrivateKey = "RSA PRIVATE KEY"
	pemTypePrivateKey    = "PRIVATE KEY"
	pemTypeRSAPublicKey  = "RSA PUBLIC KEY"
	pemTypePublicKey     = "PUBLIC KEY"
)

// rsaProcessor struct that implements the RSAProcessor interface
type rsaProcessor struct {
	logger logger.Logger
}

// NewRSAProcessor creates and returns a new instance of rsaProcessor
func NewRSAProcessor(logger logger.Logger) (cryptoalg.RSAProcessor, error) {
	return &rsaProcessor{
		logger: logger,
	}, nil
}

// GenerateKeys generates an RSA key pair with the specified bit size.
// Recommended sizes: 2048 (minimum), 3072, 4096 bits.
func (r *rsaProcessor) GenerateKeys(keySize int) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, keySize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA keys: %w", err)
	}
	publicKey := &privateKey.PublicKey
	r.logger.Debug("generated RSA key pair", "bits", keySize)
	return privateKey, publicKey, nil
}

// MaxPlaintextSize returns the largest plaintext one block can hold.
// For a 2048-bit key it's 245 bytes after accounting for PKCS#1 v1.5 padding.
func (r *rsaProcessor) MaxPlaintextSize(publicKey *rsa.PublicKey) int {
	if publicKey == nil || publicKey.N == nil {
		return 0
	}
	return publicKey.Size() - cryptoDomain.PKCS1v15Overhead
}

func (r *rsaProcessor) checkSize(plainText []byte, publicKey *rsa.PublicKey) error {
	if limit := r.MaxPlaintextSize(publicKey); len(plainText) > limit {
		return fmt.Errorf("%w: got %d bytes, max %d", cryptoalg.ErrMessageTooLong, len(plainText), limit)
	}
	return nil
}

// EncryptWithPublicKey encrypts a single block using PKCS#1 v1.5 with the public key.
func (r *rsaProcessor) EncryptWithPublicKey(plainText []byte, publicKey *rsa.PublicKey) ([]byte, error) {
	if publicKey == nil {
		return nil, errors.New("public key cannot be nil")
	}
	if err := r.checkSize(plainText, publicKey); err != nil {
		return nil, err
	}

	encrypted, err := rsa.EncryptPKCS1v15(rand.Reader, publicKey, plainText)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}

	r.logger.Debug("RSA public key encryption succeeded")
	return encrypted, nil
}

// DecryptWithPrivateKey decrypts a block produced by EncryptWithPublicKey.
func (r *rsaProcessor) DecryptWithPrivateKey(ciphertext []byte, privateKey *rsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, errors.New("private key cannot be nil")
	}
	if len(ciphertext) != privateKey.Size() {
		return nil, fmt.Errorf("%w: ciphertext length %d does not match key size %d", cryptoalg.ErrDecryption, len(ciphertext), privateKey.Size())
	}

	decrypted, err := rsa.DecryptPKCS1v15(rand.Reader, privateKey, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoalg.ErrDecryption, err)
	}

	r.logger.Debug("RSA private key decryption succeeded")
	return decrypted, nil
}

// EncryptWithPrivateKey encrypts a single block using the PKCS#1 v1.5 type 1 (0xff) padding
// with the private key. Anyone holding the public key can decrypt the result.
func (r *rsaProcessor) EncryptWithPrivateKey(plainText []byte, privateKey *rsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, errors.New("private key cannot be nil")
	}
	if err := r.checkSize(plainText, &privateKey.PublicKey); err != nil {
		return nil, err
	}

	// A zero hash makes SignPKCS1v15 pad the raw input: 00 01 ff..ff 00 || data
	encrypted, err := rsa.SignPKCS1v15(rand.Reader, privateKey, crypto.Hash(0), plainText)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}

	r.logger.Debug("RSA private key encryption succeeded")
	return encrypted, nil
}

// DecryptWithPublicKey decrypts a block produced by EncryptWithPrivateKey.
func (r *rsaProcessor) DecryptWithPublicKey(ciphertext []byte, publicKey *rsa.PublicKey) ([]byte, error) {
	if publicKey == nil {
		return nil, errors.New("public key cannot be nil")
	}

	k := publicKey.Size()
	if len(ciphertext) != k {
		return nil, fmt.Errorf("%w: ciphertext length %d does not match key size %d", cryptoalg.ErrDecryption, len(ciphertext), k)
	}

	c := new(big.Int).SetBytes(ciphertext)
	if c.Cmp(publicKey.N) >= 0 {
		return nil, fmt.Errorf("%w: ciphertext out of range", cryptoalg.ErrDecryption)
	}
	m := new(big.Int).Exp(c, big.NewInt(int64(publicKey.E)), publicKey.N)
	em := m.FillBytes(make([]byte, k))

	plainText, err := unpadType1(em)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("RSA public key decryption succeeded")
	return plainText, nil
}

// unpadType1 strips a PKCS#1 v1.5 type 1 block: 00 01 PS(ff, >= 8 bytes) 00 M
func unpadType1(em []byte) ([]byte, error) {
	if len(em) < cryptoDomain.PKCS1v15Overhead || em[0] != 0x00 || em[1] != 0x01 {
		return nil, fmt.Errorf("%w: invalid block type", cryptoalg.ErrDecryption)
	}

	i := 2
	for i < len(em) && em[i] == 0xff {
		i++
	}
	if i == len(em) || em[i] != 0x00 || i-2 < 8 {
		return nil, fmt.Errorf("%w: invalid padding", cryptoalg.ErrDecryption)
	}

	return em[i+1:], nil
}

// Sign creates a PKCS#1 v1.5 signature over the SHA-256 digest of data.
// Returns the signature bytes or an error if signing fails.
func (r *rsaProcessor) Sign(data []byte, privateKey *rsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, errors.New("private key cannot be nil")
	}

	hashed := sha256.Sum256(data)

	signature, err := rsa.SignPKCS1v15(rand.Reader, privateKey, crypto.SHA256, hashed[:])
	if err != nil {
		return nil, fmt.Errorf("failed to sign data: %w", err)
	}

	r.logger.Debug("RSA signing succeeded")
	return signature, nil
}

// Verify verifies a signature created by Sign using the public key.
// Returns true if the signature is valid, false otherwise.
func (r *rsaProcessor) Verify(data []byte, signature []byte, publicKey *rsa.PublicKey) (bool, error) {
	if publicKey == nil {
		return false, errors.New("public key cannot be nil")
	}

	hashed := sha256.Sum256(data)

	err := rsa.VerifyPKCS1v15(publicKey, crypto.SHA256, hashed[:], signature)
	if err != nil {
		return false, fmt.Errorf("failed to verify signature: %w", err)
	}

	r.logger.Debug("RSA signature verified successfully")
	return true, nil
}

// MarshalPrivateKey exports the RSA private key as a PEM-encoded PKCS#1 block.
func (r *rsaProcessor) MarshalPrivateKey(privateKey *rsa.PrivateKey) (string, error) {
	if privateKey == nil {
		return "", errors.New("private key cannot be nil")
	}

	privKeyPem := &pem.Block{
		Type:  pemTypeRSAPrivateKey,
		Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
	}
	return string(pem.EncodeToMemory(privKeyPem)), nil
}

// MarshalPublicKey exports the RSA public key as a PEM-encoded PKIX block.
func (r *rsaProcessor) MarshalPublicKey(publicKey *rsa.PublicKey) (string, error) {
	if publicKey == nil {
		return "", errors.New("public key cannot be nil")
	}

	pubKeyBytes, err := x509.MarshalPKIXPublicKey(publicKey)
	if err != nil {
		return "", fmt.Errorf("failed to marshal public key: %w", err)
	}

	pubKeyPem := &pem.Block{
		Type:  pemTypePublicKey,
		Bytes: pubKeyBytes,
	}
	return string(pem.EncodeToMemory(pubKeyPem)), nil
}

// decodeSingleBlock decodes exactly one PEM block; surrounding whitespace is allowed, other trailing data is not
func decodeSingleBlock(pemData, kind string) (*pem.Block, error) {
	block, rest := pem.Decode([]byte(strings.TrimSpace(pemData)))
	if block == nil {
		return nil, fmt.Errorf("%w: failed to parse PEM block containing the %s key", cryptoalg.ErrMalformedKey, kind)
	}
	if len(strings.TrimSpace(string(rest))) != 0 {
		return nil, fmt.Errorf("%w: unexpected data after the %s key PEM block", cryptoalg.ErrMalformedKey, kind)
	}
	if len(block.Headers) != 0 {
		return nil, fmt.Errorf("%w: encrypted or annotated PEM blocks are not supported", cryptoalg.ErrMalformedKey)
	}
	return block, nil
}

// ParsePrivateKey parses a PEM-encoded PKCS#1 or PKCS#8 RSA private key.
func (r *rsaProcessor) ParsePrivateKey(pemData string) (*rsa.PrivateKey, error) {
	block, err := decodeSingleBlock(pemData, cryptoDomain.KeyTypePrivate)
	if err != nil {
		return nil, err
	}

	switch block.Type {
	case pemTypeRSAPrivateKey:
		privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: unable to parse PKCS#1 private key: %v", cryptoalg.ErrMalformedKey, err)
		}
		return privateKey, nil
	case pemTypePrivateKey:
		privateKeyInterface, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: unable to parse PKCS#8 private key: %v", cryptoalg.ErrMalformedKey, err)
		}
		privateKey, ok := privateKeyInterface.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: private key is not of type RSA", cryptoalg.ErrMalformedKey)
		}
		return privateKey, nil
	default:
		return nil, fmt.Errorf("%w: unexpected PEM block type %q for a private key", cryptoalg.ErrMalformedKey, block.Type)
	}
}

// ParsePublicKey parses a PEM-encoded PKIX or PKCS#1 RSA public key.
func (r *rsaProcessor) ParsePublicKey(pemData string) (*rsa.PublicKey, error) {
	block, err := decodeSingleBlock(pemData, cryptoDomain.KeyTypePublic)
	if err != nil {
		return nil, err
	}

	switch block.Type {
	case pemTypePublicKey:
		pubKeyInterface, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: unable to parse PKIX public key: %v", cryptoalg.ErrMalformedKey, err)
		}
		publicKey, ok := pubKeyInterface.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: public key is not of type RSA", cryptoalg.ErrMalformedKey)
		}
		return publicKey, nil
	case pemTypeRSAPublicKey:
		publicKey, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: unable to parse PKCS#1 public key: %v", cryptoalg.ErrMalformedKey, err)
		}
		return publicKey, nil
	default:
		return nil, fmt.Errorf("%w: unexpected PEM block type %q for a public key", cryptoalg.ErrMalformedKey, block.Type)
	}
}
