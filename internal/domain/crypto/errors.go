package crypto

import (
	"errors"
	"fmt"
)

// Kind categorizes an encryption helper failure
type Kind int

// Error kinds
const (
	KindUnknown Kind = iota
	KindUnknownMethod
	KindCannotDecrypt
	KindCannotEncrypt
	KindInvalidKeyFormat
	KindCannotVerify
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindUnknownMethod:
		return "UnknownMethod"
	case KindCannotDecrypt:
		return "CannotDecrypt"
	case KindCannotEncrypt:
		return "CannotEncrypt"
	case KindInvalidKeyFormat:
		return "InvalidKeyFormat"
	case KindCannotVerify:
		return "CannotVerify"
	default:
		return "Unknown"
	}
}

// Sentinel errors for errors.Is() checks, one per kind
var (
	// ErrUnknownMethod is returned when a symmetric method is not supported.
	ErrUnknownMethod = errors.New("unknown cipher method")

	// ErrCannotDecrypt is returned when decryption does not yield a valid plaintext.
	ErrCannotDecrypt = errors.New("cannot decrypt")

	// ErrCannotEncrypt is returned when a plaintext exceeds the RSA size ceiling.
	ErrCannotEncrypt = errors.New("cannot encrypt")

	// ErrInvalidKeyFormat is returned when a key cannot be parsed as the expected kind.
	ErrInvalidKeyFormat = errors.New("invalid key format")

	// ErrCannotVerify is returned when a signature does not match.
	ErrCannotVerify = errors.New("cannot verify signature")
)

func (k Kind) sentinel() error {
	switch k {
	case KindUnknownMethod:
		return ErrUnknownMethod
	case KindCannotDecrypt:
		return ErrCannotDecrypt
	case KindCannotEncrypt:
		return ErrCannotEncrypt
	case KindInvalidKeyFormat:
		return ErrInvalidKeyFormat
	case KindCannotVerify:
		return ErrCannotVerify
	default:
		return nil
	}
}

// Error is the typed error returned by the encryption helpers.
type Error struct {
	Kind Kind
	Op   string // e.g. "symmetric.decrypt"
	Err  error
}

// NewError creates an Error of the given kind for op, wrapping err (which may be nil)
func NewError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	msg := "encryption error"
	if s := e.Kind.sentinel(); s != nil {
		msg = s.Error()
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf returns the Kind carried by err, or KindUnknown if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
