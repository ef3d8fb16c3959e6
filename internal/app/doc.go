// Package app implements the encryption helpers on top of the cipher
// processors and a codec.
//
// The symmetric helper seals values under a shared secret, the asymmetric
// helper works on RSA key pairs and the large-data helper combines both so
// payloads are not bounded by the RSA block size.
package app
