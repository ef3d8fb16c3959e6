package codec

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/encryption-tools/internal/domain/crypto"
)

// ErrUnsupportedCodec is returned by NewCodec for unknown codec names
var ErrUnsupportedCodec = errors.New("unsupported codec")

// NewCodec returns the codec registered under name
func NewCodec(name string) (crypto.Codec, error) {
	switch name {
	case crypto.CodecJSON:
		return NewJSONCodec(), nil
	case crypto.CodecYAML:
		return NewYAMLCodec(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCodec, name)
	}
}
