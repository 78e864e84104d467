// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package remoteconfig

import (
	"crypto/ecdsa"
	"crypto/hmac"
	"crypto/sha256"
)

// Verifier decides whether a blob's signature is authentic. Implementations
// return false for every failure mode without distinguishing a missing key
// from a bad signature, and never panic.
type Verifier interface {
	Verify(blob Blob) bool
}

// SecretResolver returns the HMAC secret registered under id, or false when
// none exists.
type SecretResolver func(id string) ([]byte, bool)

// KeyResolver returns the ECDSA public key registered under id, or false
// when none exists.
type KeyResolver func(id string) (*ecdsa.PublicKey, bool)

// HMACVerifier verifies blobs signed with HMAC-SHA-256. Comparison is
// constant time.
type HMACVerifier struct {
	Secrets SecretResolver
}

// Verify implements Verifier.
func (v HMACVerifier) Verify(blob Blob) bool {
	if blob.Type.Scheme != SchemeHMACSHA256 || v.Secrets == nil {
		return false
	}
	secret, ok := v.Secrets(blob.Type.ID)
	if !ok {
		return false
	}
	return hmac.Equal(blob.Signature, SignHMAC(secret, blob.Payload))
}

// SignHMAC computes the 32-byte raw HMAC-SHA-256 signature of payload.
func SignHMAC(secret, payload []byte) []byte {
	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	return mac.Sum(nil)
}

// ECDSAVerifier verifies blobs signed with ECDSA over SHA-256, signatures in
// X9.62 ASN.1 DER form. P-256, P-384 and P-521 keys are supported.
type ECDSAVerifier struct {
	Keys KeyResolver
}

// Verify implements Verifier.
func (v ECDSAVerifier) Verify(blob Blob) bool {
	if blob.Type.Scheme != SchemePublicKey || v.Keys == nil {
		return false
	}
	key, ok := v.Keys(blob.Type.ID)
	if !ok || key == nil {
		return false
	}
	digest := sha256.Sum256(blob.Payload)
	return ecdsa.VerifyASN1(key, digest[:], blob.Signature)
}

// MultiVerifier accepts a blob when any of its verifiers does. An empty list
// rejects everything.
type MultiVerifier []Verifier

// Verify implements Verifier.
func (v MultiVerifier) Verify(blob Blob) bool {
	for _, verifier := range v {
		if verifier != nil && verifier.Verify(blob) {
			return true
		}
	}
	return false
}

// StaticSecrets adapts a fixed secret map to a SecretResolver.
func StaticSecrets(secrets map[string][]byte) SecretResolver {
	return func(id string) ([]byte, bool) {
		secret, ok := secrets[id]
		return secret, ok
	}
}

// StaticKeys adapts a fixed key map to a KeyResolver.
func StaticKeys(keys map[string]*ecdsa.PublicKey) KeyResolver {
	return func(id string) (*ecdsa.PublicKey, bool) {
		key, ok := keys[id]
		return key, ok
	}
}
