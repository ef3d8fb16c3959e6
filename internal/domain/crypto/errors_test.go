//go:build unit
// +build unit

package crypto

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		kind     Kind
		sentinel error
		name     string
	}{
		{KindUnknownMethod, ErrUnknownMethod, "UnknownMethod"},
		{KindCannotDecrypt, ErrCannotDecrypt, "CannotDecrypt"},
		{KindCannotEncrypt, ErrCannotEncrypt, "CannotEncrypt"},
		{KindInvalidKeyFormat, ErrInvalidKeyFormat, "InvalidKeyFormat"},
		{KindCannotVerify, ErrCannotVerify, "CannotVerify"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewError(tt.kind, "test.op", nil)

			assert.Equal(t, tt.name, tt.kind.String())
			assert.ErrorIs(t, err, tt.sentinel)
			assert.Equal(t, tt.kind, KindOf(err))
			assert.Contains(t, err.Error(), "test.op")
			assert.Contains(t, err.Error(), tt.sentinel.Error())

			for _, other := range tests {
				if other.kind != tt.kind {
					assert.NotErrorIs(t, err, other.sentinel)
				}
			}
		})
	}
}

func TestError_WrapsCause(t *testing.T) {
	cause := errors.New("bad padding")
	err := NewError(KindCannotDecrypt, "symmetric.decrypt", cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrCannotDecrypt)
	assert.Equal(t, "symmetric.decrypt: cannot decrypt: bad padding", err.Error())
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("outer: %w", NewError(KindCannotVerify, "asymmetric.verify", nil))

	assert.Equal(t, KindCannotVerify, KindOf(err))
	assert.ErrorIs(t, err, ErrCannotVerify)
}

func TestKindOf_PlainError(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
	assert.Equal(t, "Unknown", KindUnknown.String())

	err := NewError(KindUnknown, "", nil)
	require.Error(t, err)
	assert.Equal(t, "encryption error", err.Error())
}
