package codec

import (
	"fmt"

	"github.com/MGTheTrain/encryption-tools/internal/domain/crypto"

	"gopkg.in/yaml.v3"
)

type yamlCodec struct{}

// NewYAMLCodec creates and returns a new YAML codec backed by gopkg.in/yaml.v3
func NewYAMLCodec() crypto.Codec {
	return &yamlCodec{}
}

func (c *yamlCodec) Name() string {
	return crypto.CodecYAML
}

func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal yaml: %w", err)
	}
	return data, nil
}

func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal yaml: %w", err)
	}
	return nil
}
