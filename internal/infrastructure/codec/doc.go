// Package codec provides the serialization codecs used by the encryption helpers.
//
// JSON is the default. YAML is available for callers that already exchange
// YAML documents.
package codec
