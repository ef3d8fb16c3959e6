package codec

import (
	"encoding/json"
	"fmt"

	"github.com/MGTheTrain/encryption-tools/internal/domain/crypto"
)

// jsonCodec struct that implements the Codec interface with encoding/json.
// Byte slices are encoded as base64 strings.
type jsonCodec struct{}

// NewJSONCodec creates and returns a new JSON codec
func NewJSONCodec() crypto.Codec {
	return &jsonCodec{}
}

func (c *jsonCodec) Name() string {
	return crypto.CodecJSON
}

func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal json: %w", err)
	}
	return data, nil
}

func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal json: %w", err)
	}
	return nil
}
