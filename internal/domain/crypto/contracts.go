package crypto

// Codec turns arbitrary structured values into bytes and back.
// Unmarshal(Marshal(v)) must restore v for every supported value shape.
type Codec interface {
	// Name returns the codec identifier, e.g. "json".
	Name() string

	// Marshal serializes v.
	Marshal(v any) ([]byte, error)

	// Unmarshal restores the value encoded in data into the value pointed to by v.
	Unmarshal(data []byte, v any) error
}

// SymmetricHelper encrypts values under a shared secret.
// Envelopes are self-describing: they carry the IV and an authentication tag.
type SymmetricHelper interface {
	// Encrypt encrypts value under secret with the helper's default method.
	Encrypt(value any, secret string) ([]byte, error)

	// EncryptWithMethod encrypts value under secret with the named method.
	// Returns an ErrUnknownMethod error if method is not supported.
	EncryptWithMethod(value any, secret, method string) ([]byte, error)

	// Decrypt decrypts an envelope produced by Encrypt into out.
	Decrypt(envelope []byte, secret string, out any) error

	// DecryptWithMethod decrypts an envelope produced by EncryptWithMethod into out.
	// Returns ErrUnknownMethod for unsupported methods and ErrCannotDecrypt when
	// the envelope does not authenticate or decode.
	DecryptWithMethod(envelope []byte, secret, method string, out any) error
}

// AsymmetricHelper encrypts, decrypts, signs and verifies small values with RSA key pairs.
type AsymmetricHelper interface {
	// GenerateKeyPair generates a key pair with the helper's configured key size.
	GenerateKeyPair() (*KeyPair, error)

	// EncryptByPrivateKey encrypts value so that only the matching public key can decrypt it.
	EncryptByPrivateKey(value any, privateKey string) ([]byte, error)

	// EncryptByPublicKey encrypts value so that only the matching private key can decrypt it.
	EncryptByPublicKey(value any, publicKey string) ([]byte, error)

	// DecryptByPublicKey decrypts ciphertext produced by EncryptByPrivateKey into out.
	DecryptByPublicKey(ciphertext []byte, publicKey string, out any) error

	// DecryptByPrivateKey decrypts ciphertext produced by EncryptByPublicKey into out.
	DecryptByPrivateKey(ciphertext []byte, privateKey string, out any) error

	// Sign signs the serialized value with privateKey.
	Sign(value any, privateKey string) ([]byte, error)

	// Verify checks signature against the serialized value with publicKey.
	// Returns ErrCannotVerify on mismatch and ErrInvalidKeyFormat for malformed keys.
	Verify(value any, signature []byte, publicKey string) error

	// MaxPlaintextSize returns the largest serialized plaintext publicKey can encrypt.
	MaxPlaintextSize(publicKey string) (int, error)
}

// LargeDataHelper encrypts values of any size with RSA key pairs by wrapping
// a one-time symmetric secret.
type LargeDataHelper interface {
	// GenerateKeyPair generates a key pair with the configured key size.
	GenerateKeyPair() (*KeyPair, error)

	// EncryptByPrivateKey encrypts value, protecting the one-time secret with privateKey.
	EncryptByPrivateKey(value any, privateKey string) ([]byte, error)

	// EncryptByPublicKey encrypts value, protecting the one-time secret with publicKey.
	EncryptByPublicKey(value any, publicKey string) ([]byte, error)

	// DecryptByPublicKey decrypts a large envelope produced by EncryptByPrivateKey into out.
	DecryptByPublicKey(envelope []byte, publicKey string, out any) error

	// DecryptByPrivateKey decrypts a large envelope produced by EncryptByPublicKey into out.
	DecryptByPrivateKey(envelope []byte, privateKey string, out any) error
}
