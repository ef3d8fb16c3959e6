package cryptoalg

import "errors"

var (
	// ErrUnsupportedMethod is returned when a symmetric method is not registered.
	ErrUnsupportedMethod = errors.New("unsupported cipher method")

	// ErrMalformedKey is returned when key material cannot be parsed as the expected kind.
	// Providers wrap it so callers can tell malformed input apart from cryptographic failure.
	ErrMalformedKey = errors.New("malformed key")

	// ErrInvalidKeySize is returned when a key has the wrong length for a method.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidIVSize is returned when an IV has the wrong length for a method.
	ErrInvalidIVSize = errors.New("invalid iv size")

	// ErrMessageTooLong is returned when a plaintext does not fit in one RSA block.
	ErrMessageTooLong = errors.New("message too long for RSA key size")

	// ErrDecryption is returned when a ciphertext does not decrypt to a well-formed plaintext.
	ErrDecryption = errors.New("decryption error")
)
