//go:build unit
// +build unit

package app

import (
	"bytes"
	"testing"

	"github.com/MGTheTrain/encryption-tools/internal/domain/crypto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymmetricEnvelope(t *testing.T) {
	iv := bytes.Repeat([]byte{0x01}, 16)
	ciphertext := []byte("ciphertext")
	macKey := bytes.Repeat([]byte{0x02}, macSize)

	sealed := sealSymmetricEnvelope(iv, ciphertext, macKey)
	require.Len(t, sealed, symmetricHeaderSize+len(iv)+len(ciphertext)+macSize)
	assert.Equal(t, symmetricEnvelopeVersion, sealed[0])
	assert.Equal(t, byte(len(iv)), sealed[1])

	t.Run("Parse", func(t *testing.T) {
		env, err := parseSymmetricEnvelope(sealed)
		require.NoError(t, err)
		assert.Equal(t, iv, env.iv)
		assert.Equal(t, ciphertext, env.ciphertext)
		assert.NoError(t, env.verify(macKey))
	})

	t.Run("WrongMACKey", func(t *testing.T) {
		env, err := parseSymmetricEnvelope(sealed)
		require.NoError(t, err)
		assert.ErrorIs(t, env.verify(bytes.Repeat([]byte{0x03}, macSize)), errEnvelopeAuth)
	})

	t.Run("TamperedBody", func(t *testing.T) {
		tampered := append([]byte(nil), sealed...)
		tampered[symmetricHeaderSize+len(iv)] ^= 0xff
		env, err := parseSymmetricEnvelope(tampered)
		require.NoError(t, err)
		assert.ErrorIs(t, env.verify(macKey), errEnvelopeAuth)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := parseSymmetricEnvelope(nil)
		assert.ErrorIs(t, err, errEnvelopeTooShort)

		_, err = parseSymmetricEnvelope(sealed[:macSize])
		assert.ErrorIs(t, err, errEnvelopeTooShort)

		wrongVersion := append([]byte(nil), sealed...)
		wrongVersion[0] = 9
		_, err = parseSymmetricEnvelope(wrongVersion)
		assert.ErrorIs(t, err, errEnvelopeVersion)

		oversizedIV := append([]byte(nil), sealed...)
		oversizedIV[1] = 0xff
		_, err = parseSymmetricEnvelope(oversizedIV)
		assert.ErrorIs(t, err, errEnvelopeTooShort)
	})
}

func TestLargeEnvelope(t *testing.T) {
	in := &crypto.LargeEnvelope{
		EncryptedKey:     bytes.Repeat([]byte{0xaa}, 256),
		EncryptedPayload: []byte("payload"),
	}

	encoded, err := encodeLargeEnvelope(in)
	require.NoError(t, err)
	assert.Equal(t, largeEnvelopeVersion, encoded[0])
	assert.Equal(t, []byte{0x01, 0x00}, encoded[1:3])

	out, err := decodeLargeEnvelope(encoded)
	require.NoError(t, err)
	assert.Equal(t, in.EncryptedKey, out.EncryptedKey)
	assert.Equal(t, in.EncryptedPayload, out.EncryptedPayload)

	t.Run("KeyTooLong", func(t *testing.T) {
		_, err := encodeLargeEnvelope(&crypto.LargeEnvelope{EncryptedKey: make([]byte, 1<<16)})
		assert.ErrorIs(t, err, errEnvelopeKeyTooLong)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := decodeLargeEnvelope([]byte{largeEnvelopeVersion, 0x00})
		assert.ErrorIs(t, err, errEnvelopeTooShort)

		_, err = decodeLargeEnvelope([]byte{0x02, 0x00, 0x00})
		assert.ErrorIs(t, err, errEnvelopeVersion)

		_, err = decodeLargeEnvelope(encoded[:100])
		assert.ErrorIs(t, err, errEnvelopeTooShort)
	})
}
