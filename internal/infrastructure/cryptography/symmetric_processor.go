package cryptography

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/subtle"
	"fmt"

	cryptoDomain "github.com/MGTheTrain/encryption-tools/internal/domain/crypto"
	"github.com/MGTheTrain/encryption-tools/internal/domain/cryptoalg"
	"github.com/MGTheTrain/encryption-tools/internal/pkg/logger"

	"github.com/dgryski/go-camellia"
	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/chacha20poly1305"
)

// Block cipher modes
const (
	modeCBC              = "cbc"
	modeCFB              = "cfb"
	modeOFB              = "ofb"
	modeCTR              = "ctr"
	modeGCM              = "gcm"
	modeChaCha20         = "chacha20"
	modeChaCha20Poly1305 = "chacha20-poly1305"
)

// camelliaBlockSize is the Camellia block size in bytes
const camelliaBlockSize = 16

type blockConstructor func(key []byte) (cipher.Block, error)

type methodSpec struct {
	mode     string
	keyLen   int
	ivLen    int
	newBlock blockConstructor
}

func aesSpec(mode string, keyLen, ivLen int) methodSpec {
	return methodSpec{mode: mode, keyLen: keyLen, ivLen: ivLen, newBlock: aes.NewCipher}
}

func camelliaSpec(mode string, keyLen int) methodSpec {
	return methodSpec{mode: mode, keyLen: keyLen, ivLen: camelliaBlockSize, newBlock: camellia.New}
}

var methodSpecs = map[string]methodSpec{
	cryptoDomain.MethodAES128CBC:        aesSpec(modeCBC, 16, aes.BlockSize),
	cryptoDomain.MethodAES192CBC:        aesSpec(modeCBC, 24, aes.BlockSize),
	cryptoDomain.MethodAES256CBC:        aesSpec(modeCBC, 32, aes.BlockSize),
	cryptoDomain.MethodAES128CFB:        aesSpec(modeCFB, 16, aes.BlockSize),
	cryptoDomain.MethodAES192CFB:        aesSpec(modeCFB, 24, aes.BlockSize),
	cryptoDomain.MethodAES256CFB:        aesSpec(modeCFB, 32, aes.BlockSize),
	cryptoDomain.MethodAES128OFB:        aesSpec(modeOFB, 16, aes.BlockSize),
	cryptoDomain.MethodAES192OFB:        aesSpec(modeOFB, 24, aes.BlockSize),
	cryptoDomain.MethodAES256OFB:        aesSpec(modeOFB, 32, aes.BlockSize),
	cryptoDomain.MethodAES128CTR:        aesSpec(modeCTR, 16, aes.BlockSize),
	cryptoDomain.MethodAES192CTR:        aesSpec(modeCTR, 24, aes.BlockSize),
	cryptoDomain.MethodAES256CTR:        aesSpec(modeCTR, 32, aes.BlockSize),
	cryptoDomain.MethodAES128GCM:        aesSpec(modeGCM, 16, 12),
	cryptoDomain.MethodAES192GCM:        aesSpec(modeGCM, 24, 12),
	cryptoDomain.MethodAES256GCM:        aesSpec(modeGCM, 32, 12),
	cryptoDomain.MethodCamellia128CBC:   camelliaSpec(modeCBC, 16),
	cryptoDomain.MethodCamellia192CBC:   camelliaSpec(modeCBC, 24),
	cryptoDomain.MethodCamellia256CBC:   camelliaSpec(modeCBC, 32),
	cryptoDomain.MethodCamellia128CFB:   camelliaSpec(modeCFB, 16),
	cryptoDomain.MethodCamellia192CFB:   camelliaSpec(modeCFB, 24),
	cryptoDomain.MethodCamellia256CFB:   camelliaSpec(modeCFB, 32),
	cryptoDomain.MethodCamellia128OFB:   camelliaSpec(modeOFB, 16),
	cryptoDomain.MethodCamellia192OFB:   camelliaSpec(modeOFB, 24),
	cryptoDomain.MethodCamellia256OFB:   camelliaSpec(modeOFB, 32),
	cryptoDomain.MethodCamellia128CTR:   camelliaSpec(modeCTR, 16),
	cryptoDomain.MethodCamellia192CTR:   camelliaSpec(modeCTR, 24),
	cryptoDomain.MethodCamellia256CTR:   camelliaSpec(modeCTR, 32),
	cryptoDomain.MethodChaCha20:         {mode: modeChaCha20, keyLen: chacha20.KeySize, ivLen: chacha20.NonceSize},
	cryptoDomain.MethodChaCha20Poly1305: {mode: modeChaCha20Poly1305, keyLen: chacha20poly1305.KeySize, ivLen: chacha20poly1305.NonceSize},
}

// symmetricProcessor struct that implements the SymmetricCipher interface
type symmetricProcessor struct {
	logger logger.Logger
}

// NewSymmetricProcessor creates and returns a new instance of symmetricProcessor
func NewSymmetricProcessor(logger logger.Logger) (cryptoalg.SymmetricCipher, error) {
	return &symmetricProcessor{
		logger: logger,
	}, nil
}

// Methods returns the supported method names
func (p *symmetricProcessor) Methods() []string {
	known := cryptoDomain.SupportedMethods()
	methods := make([]string, 0, len(known))
	for _, m := range known {
		if _, ok := methodSpecs[m]; ok {
			methods = append(methods, m)
		}
	}
	return methods
}

func lookupMethod(method string) (methodSpec, error) {
	spec, ok := methodSpecs[method]
	if !ok {
		return methodSpec{}, fmt.Errorf("%w: %q", cryptoalg.ErrUnsupportedMethod, method)
	}
	return spec, nil
}

// IVLength returns the IV length in bytes required by method
func (p *symmetricProcessor) IVLength(method string) (int, error) {
	spec, err := lookupMethod(method)
	if err != nil {
		return 0, err
	}
	return spec.ivLen, nil
}

// KeyLength returns the key length in bytes required by method
func (p *symmetricProcessor) KeyLength(method string) (int, error) {
	spec, err := lookupMethod(method)
	if err != nil {
		return 0, err
	}
	return spec.keyLen, nil
}

func checkParams(spec methodSpec, key, iv []byte) error {
	if len(key) != spec.keyLen {
		return fmt.Errorf("%w: got %d, want %d", cryptoalg.ErrInvalidKeySize, len(key), spec.keyLen)
	}
	if len(iv) != spec.ivLen {
		return fmt.Errorf("%w: got %d, want %d", cryptoalg.ErrInvalidIVSize, len(iv), spec.ivLen)
	}
	return nil
}

// Encrypt encrypts plaintext with key and iv using method
func (p *symmetricProcessor) Encrypt(plaintext, key, iv []byte, method string) ([]byte, error) {
	spec, err := lookupMethod(method)
	if err != nil {
		return nil, err
	}
	if err := checkParams(spec, key, iv); err != nil {
		return nil, err
	}

	var ciphertext []byte
	switch spec.mode {
	case modeChaCha20:
		stream, err := chacha20.NewUnauthenticatedCipher(key, iv)
		if err != nil {
			return nil, fmt.Errorf("failed to create chacha20 cipher: %w", err)
		}
		ciphertext = make([]byte, len(plaintext))
		stream.XORKeyStream(ciphertext, plaintext)
	case modeChaCha20Poly1305:
		aead, err := chacha20poly1305.New(key)
		if err != nil {
			return nil, fmt.Errorf("failed to create chacha20-poly1305 cipher: %w", err)
		}
		ciphertext = aead.Seal(nil, iv, plaintext, nil)
	default:
		block, err := spec.newBlock(key)
		if err != nil {
			return nil, fmt.Errorf("failed to create cipher: %w", err)
		}
		ciphertext, err = encryptBlockMode(block, spec.mode, plaintext, iv)
		if err != nil {
			return nil, err
		}
	}

	p.logger.Debug("symmetric encryption succeeded", "method", method)
	return ciphertext, nil
}

// Decrypt decrypts ciphertext with key and iv using method
func (p *symmetricProcessor) Decrypt(ciphertext, key, iv []byte, method string) ([]byte, error) {
	spec, err := lookupMethod(method)
	if err != nil {
		return nil, err
	}
	if err := checkParams(spec, key, iv); err != nil {
		return nil, err
	}

	var plaintext []byte
	switch spec.mode {
	case modeChaCha20:
		stream, err := chacha20.NewUnauthenticatedCipher(key, iv)
		if err != nil {
			return nil, fmt.Errorf("failed to create chacha20 cipher: %w", err)
		}
		plaintext = make([]byte, len(ciphertext))
		stream.XORKeyStream(plaintext, ciphertext)
	case modeChaCha20Poly1305:
		aead, err := chacha20poly1305.New(key)
		if err != nil {
			return nil, fmt.Errorf("failed to create chacha20-poly1305 cipher: %w", err)
		}
		plaintext, err = aead.Open(nil, iv, ciphertext, nil)
		if err != nil {
			return nil, cryptoalg.ErrDecryption
		}
	default:
		block, err := spec.newBlock(key)
		if err != nil {
			return nil, fmt.Errorf("failed to create cipher: %w", err)
		}
		plaintext, err = decryptBlockMode(block, spec.mode, ciphertext, iv)
		if err != nil {
			return nil, err
		}
	}

	p.logger.Debug("symmetric decryption succeeded", "method", method)
	return plaintext, nil
}

func encryptBlockMode(block cipher.Block, mode string, plaintext, iv []byte) ([]byte, error) {
	switch mode {
	case modeCBC:
		padded := pkcs7Pad(plaintext, block.BlockSize())
		ciphertext := make([]byte, len(padded))
		cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)
		return ciphertext, nil
	case modeCFB:
		ciphertext := make([]byte, len(plaintext))
		cipher.NewCFBEncrypter(block, iv).XORKeyStream(ciphertext, plaintext)
		return ciphertext, nil
	case modeOFB:
		ciphertext := make([]byte, len(plaintext))
		cipher.NewOFB(block, iv).XORKeyStream(ciphertext, plaintext)
		return ciphertext, nil
	case modeCTR:
		ciphertext := make([]byte, len(plaintext))
		cipher.NewCTR(block, iv).XORKeyStream(ciphertext, plaintext)
		return ciphertext, nil
	case modeGCM:
		gcm, err := cipher.NewGCM(block)
		if err != nil {
			return nil, fmt.Errorf("failed to create GCM: %w", err)
		}
		return gcm.Seal(nil, iv, plaintext, nil), nil
	default:
		return nil, fmt.Errorf("%w: mode %q", cryptoalg.ErrUnsupportedMethod, mode)
	}
}

func decryptBlockMode(block cipher.Block, mode string, ciphertext, iv []byte) ([]byte, error) {
	switch mode {
	case modeCBC:
		if len(ciphertext) == 0 || len(ciphertext)%block.BlockSize() != 0 {
			return nil, fmt.Errorf("%w: ciphertext is not a multiple of the block size", cryptoalg.ErrDecryption)
		}
		padded := make([]byte, len(ciphertext))
		cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)
		return pkcs7Unpad(padded, block.BlockSize())
	case modeCFB:
		plaintext := make([]byte, len(ciphertext))
		cipher.NewCFBDecrypter(block, iv).XORKeyStream(plaintext, ciphertext)
		return plaintext, nil
	case modeOFB:
		plaintext := make([]byte, len(ciphertext))
		cipher.NewOFB(block, iv).XORKeyStream(plaintext, ciphertext)
		return plaintext, nil
	case modeCTR:
		plaintext := make([]byte, len(ciphertext))
		cipher.NewCTR(block, iv).XORKeyStream(plaintext, ciphertext)
		return plaintext, nil
	case modeGCM:
		gcm, err := cipher.NewGCM(block)
		if err != nil {
			return nil, fmt.Errorf("failed to create GCM: %w", err)
		}
		plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
		if err != nil {
			return nil, cryptoalg.ErrDecryption
		}
		return plaintext, nil
	default:
		return nil, fmt.Errorf("%w: mode %q", cryptoalg.ErrUnsupportedMethod, mode)
	}
}

// pkcs7Pad appends 1..blockSize bytes, each holding the pad length
func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(append(make([]byte, 0, len(data)+n), data...), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("%w: invalid padded length", cryptoalg.ErrDecryption)
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, fmt.Errorf("%w: invalid padding", cryptoalg.ErrDecryption)
	}
	expected := bytes.Repeat([]byte{byte(n)}, n)
	if subtle.ConstantTimeCompare(data[len(data)-n:], expected) != 1 {
		return nil, fmt.Errorf("%w: invalid padding", cryptoalg.ErrDecryption)
	}
	return data[:len(data)-n], nil
}
