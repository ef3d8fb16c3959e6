// Package crypto defines the core contracts, models and error taxonomy for encrypting arbitrary
// serializable values with a shared secret or an RSA key pair, including the large-data envelope variant.
package crypto
