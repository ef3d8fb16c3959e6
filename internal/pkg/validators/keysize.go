package validators

import (
	"github.com/MGTheTrain/encryption-tools/internal/domain/crypto"

	"github.com/go-playground/validator/v10"
)

// RSAKeySizeTag is the validation tag for RSA modulus sizes in bits
const RSAKeySizeTag = "rsakeysize"

// CipherMethodTag is the validation tag for symmetric cipher method names
const CipherMethodTag = "ciphermethod"

// RSAKeySizeValidation validates the RSA key size in bits.
func RSAKeySizeValidation(fl validator.FieldLevel) bool {
	switch fl.Field().Int() {
	case crypto.RSAKeySize2048, crypto.RSAKeySize3072, crypto.RSAKeySize4096:
		return true
	default:
		return false
	}
}

// CipherMethodValidation validates that the field names a supported symmetric method.
func CipherMethodValidation(fl validator.FieldLevel) bool {
	return crypto.IsSupportedMethod(fl.Field().String())
}

// New returns a validator with the custom encryption rules registered.
func New() (*validator.Validate, error) {
	validate := validator.New()

	if err := validate.RegisterValidation(RSAKeySizeTag, RSAKeySizeValidation); err != nil {
		return nil, err
	}
	if err := validate.RegisterValidation(CipherMethodTag, CipherMethodValidation); err != nil {
		return nil, err
	}

	return validate, nil
}
