package app

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/MGTheTrain/encryption-tools/internal/domain/crypto"
)

// Envelope format versions
const (
	symmetricEnvelopeVersion byte = 1
	largeEnvelopeVersion     byte = 1
)

const (
	macSize = sha256.Size

	// version | ivLen
	symmetricHeaderSize = 2

	// version | uint16 keyLen
	largeHeaderSize = 3
)

var (
	errEnvelopeTooShort   = errors.New("envelope too short")
	errEnvelopeVersion    = errors.New("unsupported envelope version")
	errEnvelopeAuth       = errors.New("envelope authentication failed")
	errEnvelopeKeyTooLong = errors.New("encrypted key too long for envelope")
)

// symmetricEnvelope is a parsed view over a sealed symmetric envelope:
// version | ivLen | iv | ciphertext | HMAC-SHA256(all preceding bytes)
type symmetricEnvelope struct {
	iv         []byte
	ciphertext []byte
	signed     []byte
	tag        []byte
}

func sealSymmetricEnvelope(iv, ciphertext, macKey []byte) []byte {
	out := make([]byte, 0, symmetricHeaderSize+len(iv)+len(ciphertext)+macSize)
	out = append(out, symmetricEnvelopeVersion, byte(len(iv)))
	out = append(out, iv...)
	out = append(out, ciphertext...)

	mac := hmac.New(sha256.New, macKey)
	mac.Write(out)
	return mac.Sum(out)
}

func parseSymmetricEnvelope(data []byte) (*symmetricEnvelope, error) {
	if len(data) < symmetricHeaderSize+macSize {
		return nil, errEnvelopeTooShort
	}
	if data[0] != symmetricEnvelopeVersion {
		return nil, fmt.Errorf("%w: %d", errEnvelopeVersion, data[0])
	}

	ivLen := int(data[1])
	bodyEnd := len(data) - macSize
	if symmetricHeaderSize+ivLen > bodyEnd {
		return nil, errEnvelopeTooShort
	}

	return &symmetricEnvelope{
		iv:         data[symmetricHeaderSize : symmetricHeaderSize+ivLen],
		ciphertext: data[symmetricHeaderSize+ivLen : bodyEnd],
		signed:     data[:bodyEnd],
		tag:        data[bodyEnd:],
	}, nil
}

// verify checks the tag in constant time
func (e *symmetricEnvelope) verify(macKey []byte) error {
	mac := hmac.New(sha256.New, macKey)
	mac.Write(e.signed)
	if !hmac.Equal(mac.Sum(nil), e.tag) {
		return errEnvelopeAuth
	}
	return nil
}

// encodeLargeEnvelope lays out version | uint16 BE keyLen | encryptedKey | encryptedPayload
func encodeLargeEnvelope(env *crypto.LargeEnvelope) ([]byte, error) {
	if len(env.EncryptedKey) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d bytes", errEnvelopeKeyTooLong, len(env.EncryptedKey))
	}

	out := make([]byte, largeHeaderSize, largeHeaderSize+len(env.EncryptedKey)+len(env.EncryptedPayload))
	out[0] = largeEnvelopeVersion
	binary.BigEndian.PutUint16(out[1:largeHeaderSize], uint16(len(env.EncryptedKey)))
	out = append(out, env.EncryptedKey...)
	out = append(out, env.EncryptedPayload...)
	return out, nil
}

func decodeLargeEnvelope(data []byte) (*crypto.LargeEnvelope, error) {
	if len(data) < largeHeaderSize {
		return nil, errEnvelopeTooShort
	}
	if data[0] != largeEnvelopeVersion {
		return nil, fmt.Errorf("%w: %d", errEnvelopeVersion, data[0])
	}

	keyLen := int(binary.BigEndian.Uint16(data[1:largeHeaderSize]))
	if largeHeaderSize+keyLen > len(data) {
		return nil, errEnvelopeTooShort
	}

	return &crypto.LargeEnvelope{
		EncryptedKey:     data[largeHeaderSize : largeHeaderSize+keyLen],
		EncryptedPayload: data[largeHeaderSize+keyLen:],
	}, nil
}
