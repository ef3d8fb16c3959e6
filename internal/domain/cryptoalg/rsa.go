package cryptoalg

import "crypto/rsa"

// RSAProcessor handles RSA asymmetric cryptographic operations.
// RSA supports both encryption/decryption AND digital signatures.
// Plaintexts are bound to a single block: key size in bytes minus PKCS#1 v1.5 overhead.
type RSAProcessor interface {
	// GenerateKeys generates an RSA key pair with the specified bit size.
	// Recommended sizes: 2048 (minimum), 3072, 4096 bits.
	GenerateKeys(keySize int) (*rsa.PrivateKey, *rsa.PublicKey, error)

	// MaxPlaintextSize returns the largest plaintext a single block of publicKey holds.
	MaxPlaintextSize(publicKey *rsa.PublicKey) int

	// EncryptWithPublicKey encrypts a single block using PKCS#1 v1.5 (type 2) with the public key.
	EncryptWithPublicKey(plainText []byte, publicKey *rsa.PublicKey) ([]byte, error)

	// DecryptWithPrivateKey decrypts a block produced by EncryptWithPublicKey.
	DecryptWithPrivateKey(ciphertext []byte, privateKey *rsa.PrivateKey) ([]byte, error)

	// EncryptWithPrivateKey encrypts a single block using PKCS#1 v1.5 (type 1) with the private key.
	EncryptWithPrivateKey(plainText []byte, privateKey *rsa.PrivateKey) ([]byte, error)

	// DecryptWithPublicKey decrypts a block produced by EncryptWithPrivateKey.
	DecryptWithPublicKey(ciphertext []byte, publicKey *rsa.PublicKey) ([]byte, error)

	// Sign creates a PKCS#1 v1.5 signature over the SHA-256 digest of data.
	Sign(data []byte, privateKey *rsa.PrivateKey) ([]byte, error)

	// Verify verifies a signature created by Sign.
	// Returns true if the signature is valid, false otherwise.
	Verify(data []byte, signature []byte, publicKey *rsa.PublicKey) (bool, error)

	// MarshalPrivateKey exports the private key as a PEM-encoded PKCS#1 block.
	MarshalPrivateKey(privateKey *rsa.PrivateKey) (string, error)

	// MarshalPublicKey exports the public key as a PEM-encoded PKIX block.
	MarshalPublicKey(publicKey *rsa.PublicKey) (string, error)

	// ParsePrivateKey parses a PEM-encoded PKCS#1 or PKCS#8 RSA private key.
	// Errors wrap ErrMalformedKey.
	ParsePrivateKey(pemData string) (*rsa.PrivateKey, error)

	// ParsePublicKey parses a PEM-encoded PKIX or PKCS#1 RSA public key.
	// Errors wrap ErrMalformedKey.
	ParsePublicKey(pemData string) (*rsa.PublicKey, error)
}
