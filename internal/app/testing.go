//go:build unit
// +build unit

package app

import (
	"testing"

	"github.com/MGTheTrain/encryption-tools/internal/domain/crypto"
	"github.com/MGTheTrain/encryption-tools/internal/infrastructure/codec"
	"github.com/MGTheTrain/encryption-tools/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/encryption-tools/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestHelpers holds all encryption helpers and their collaborators for testing
type TestHelpers struct {
	Codec      crypto.Codec
	Symmetric  crypto.SymmetricHelper
	Asymmetric crypto.AsymmetricHelper
	LargeData  crypto.LargeDataHelper
}

// SetupTestHelpers wires the helpers over the real processors using the named codec
func SetupTestHelpers(t *testing.T, codecName string) *TestHelpers {
	t.Helper()

	logger := testutil.SetupTestLogger(t)

	c, err := codec.NewCodec(codecName)
	require.NoError(t, err)

	symmetricProcessor, err := cryptography.NewSymmetricProcessor(logger)
	require.NoError(t, err)
	rsaProcessor, err := cryptography.NewRSAProcessor(logger)
	require.NoError(t, err)

	symmetric, err := NewSymmetricEncryptionHelper(symmetricProcessor, c, crypto.DefaultMethod, logger)
	require.NoError(t, err)
	asymmetric, err := NewAsymmetricEncryptionHelper(rsaProcessor, c, crypto.DefaultKeySize, logger)
	require.NoError(t, err)
	largeData, err := NewLargeDataEncryptionHelper(symmetric, asymmetric, logger)
	require.NoError(t, err)

	return &TestHelpers{
		Codec:      c,
		Symmetric:  symmetric,
		Asymmetric: asymmetric,
		LargeData:  largeData,
	}
}

// GenerateTestKeyPair generates a key pair through the asymmetric helper
func (h *TestHelpers) GenerateTestKeyPair(t *testing.T) *crypto.KeyPair {
	t.Helper()

	keyPair, err := h.Asymmetric.GenerateKeyPair()
	require.NoError(t, err)
	require.NoError(t, keyPair.Validate())
	return keyPair
}
