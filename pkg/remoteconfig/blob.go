// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package remoteconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SignatureScheme discriminates the two supported signature cases.
type SignatureScheme string

const (
	// SchemeHMACSHA256 is a 32-byte raw HMAC-SHA-256 over the payload.
	SchemeHMACSHA256 SignatureScheme = "hmac_sha256"

	// SchemePublicKey is an ECDSA signature over SHA-256 of the payload in
	// IEEE X9.62 DER encoding.
	SchemePublicKey SignatureScheme = "public_key"
)

// SignatureType tags a blob with its scheme and the identifier of the secret
// or key that signed it.
type SignatureType struct {
	Scheme SignatureScheme `json:"scheme"`
	ID     string          `json:"id"`
}

// HMACSHA256 builds the signature type for an HMAC-signed blob.
func HMACSHA256(secretID string) SignatureType {
	return SignatureType{Scheme: SchemeHMACSHA256, ID: secretID}
}

// PublicKey builds the signature type for an ECDSA-signed blob.
func PublicKey(keyID string) SignatureType {
	return SignatureType{Scheme: SchemePublicKey, ID: keyID}
}

// Blob is a signed remote configuration record. The payload is opaque until
// a verifier accepts the signature.
type Blob struct {
	Payload   []byte        `json:"payload"`
	Signature []byte        `json:"signature"`
	Type      SignatureType `json:"signatureType"`
}

// Equal reports field-wise byte equality of two blobs.
func (b Blob) Equal(other Blob) bool {
	return bytes.Equal(b.Payload, other.Payload) &&
		bytes.Equal(b.Signature, other.Signature) &&
		b.Type == other.Type
}

// EncodeBlob serialises a blob to its JSON wire form. Byte fields encode as
// standard base64.
func EncodeBlob(b Blob) ([]byte, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBlob, err)
	}
	return data, nil
}

// DecodeBlob parses a blob from its JSON wire form.
func DecodeBlob(data []byte) (Blob, error) {
	var b Blob
	if err := json.Unmarshal(data, &b); err != nil {
		return Blob{}, fmt.Errorf("%w: %w", ErrInvalidBlob, err)
	}
	switch b.Type.Scheme {
	case SchemeHMACSHA256, SchemePublicKey:
	default:
		return Blob{}, fmt.Errorf("%w: unknown signature scheme %q", ErrInvalidBlob, b.Type.Scheme)
	}
	return b, nil
}
