// Package cryptoalg defines the cipher provider contracts the encryption helpers build on:
// symmetric ciphers addressed by method name and RSA key pair primitives.
package cryptoalg
