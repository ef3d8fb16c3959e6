package cryptoalg

// SymmetricCipher handles symmetric encryption operations addressed by method name
// (e.g. "aes-256-cbc"). Callers supply the key and IV; the cipher does not authenticate.
type SymmetricCipher interface {
	// Methods returns the supported method names.
	Methods() []string

	// IVLength returns the IV (or nonce) length in bytes required by method.
	// Returns ErrUnsupportedMethod for unknown methods.
	IVLength(method string) (int, error)

	// KeyLength returns the key length in bytes required by method.
	KeyLength(method string) (int, error)

	// Encrypt encrypts plaintext with key and iv using method.
	Encrypt(plaintext, key, iv []byte, method string) ([]byte, error)

	// Decrypt decrypts ciphertext with key and iv using method.
	// Returns ErrDecryption when the plaintext is malformed (e.g. bad padding).
	Decrypt(ciphertext, key, iv []byte, method string) ([]byte, error)
}
