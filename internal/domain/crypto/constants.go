package crypto

// Symmetric cipher methods
const (
	MethodAES128CBC        = "aes-128-cbc"
	MethodAES192CBC        = "aes-192-cbc"
	MethodAES256CBC        = "aes-256-cbc"
	MethodAES128CFB        = "aes-128-cfb"
	MethodAES192CFB        = "aes-192-cfb"
	MethodAES256CFB        = "aes-256-cfb"
	MethodAES128OFB        = "aes-128-ofb"
	MethodAES192OFB        = "aes-192-ofb"
	MethodAES256OFB        = "aes-256-ofb"
	MethodAES128CTR        = "aes-128-ctr"
	MethodAES192CTR        = "aes-192-ctr"
	MethodAES256CTR        = "aes-256-ctr"
	MethodAES128GCM        = "aes-128-gcm"
	MethodAES192GCM        = "aes-192-gcm"
	MethodAES256GCM        = "aes-256-gcm"
	MethodCamellia128CBC   = "camellia-128-cbc"
	MethodCamellia192CBC   = "camellia-192-cbc"
	MethodCamellia256CBC   = "camellia-256-cbc"
	MethodCamellia128CFB   = "camellia-128-cfb"
	MethodCamellia192CFB   = "camellia-192-cfb"
	MethodCamellia256CFB   = "camellia-256-cfb"
	MethodCamellia128OFB   = "camellia-128-ofb"
	MethodCamellia192OFB   = "camellia-192-ofb"
	MethodCamellia256OFB   = "camellia-256-ofb"
	MethodCamellia128CTR   = "camellia-128-ctr"
	MethodCamellia192CTR   = "camellia-192-ctr"
	MethodCamellia256CTR   = "camellia-256-ctr"
	MethodChaCha20         = "chacha20"
	MethodChaCha20Poly1305 = "chacha20-poly1305"
)

// DefaultMethod is the symmetric method used when none is given
const DefaultMethod = MethodAES256CBC

var knownMethods = []string{
	MethodAES128CBC, MethodAES192CBC, MethodAES256CBC,
	MethodAES128CFB, MethodAES192CFB, MethodAES256CFB,
	MethodAES128OFB, MethodAES192OFB, MethodAES256OFB,
	MethodAES128CTR, MethodAES192CTR, MethodAES256CTR,
	MethodAES128GCM, MethodAES192GCM, MethodAES256GCM,
	MethodCamellia128CBC, MethodCamellia192CBC, MethodCamellia256CBC,
	MethodCamellia128CFB, MethodCamellia192CFB, MethodCamellia256CFB,
	MethodCamellia128OFB, MethodCamellia192OFB, MethodCamellia256OFB,
	MethodCamellia128CTR, MethodCamellia192CTR, MethodCamellia256CTR,
	MethodChaCha20, MethodChaCha20Poly1305,
}

// SupportedMethods returns every known symmetric method name, in a stable order.
// The returned slice is a copy owned by the caller.
func SupportedMethods() []string {
	return append([]string(nil), knownMethods...)
}

// IsSupportedMethod reports whether method names a known symmetric method.
// A cipher provider decides what it actually implements.
func IsSupportedMethod(method string) bool {
	for _, m := range knownMethods {
		if m == method {
			return true
		}
	}
	return false
}

// RSA key sizes in bits
const (
	RSAKeySize2048 = 2048
	RSAKeySize3072 = 3072
	RSAKeySize4096 = 4096
)

// DefaultKeySize is the RSA modulus size used for generated key pairs
const DefaultKeySize = RSAKeySize2048

// PKCS1v15Overhead is the number of bytes PKCS#1 v1.5 padding takes from an RSA block
const PKCS1v15Overhead = 11

// LargeDataSecretSize is the size of the one-time secret protecting a large payload
const LargeDataSecretSize = 32

// Codec names
const (
	CodecJSON = "json"
	CodecYAML = "yaml"
)

// DefaultCodec is the codec used when none is configured
const DefaultCodec = CodecJSON

// KeyTypePrivate represents a private key
const KeyTypePrivate = "private"

// KeyTypePublic represents a public key
const KeyTypePublic = "public"
