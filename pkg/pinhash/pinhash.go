// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package pinhash

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

// Digest returns the canonical pin form of data: standard base64 (with
// padding) of its SHA-256 digest.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return base64.StdEncoding.EncodeToString(sum[:])
}

// CertificateHash computes the pin hash of a DER-encoded certificate.
func CertificateHash(der []byte) string {
	return Digest(der)
}

// SPKIHashFromDER computes the pin hash of an already-encoded
// SubjectPublicKeyInfo structure, such as a certificate's
// RawSubjectPublicKeyInfo.
func SPKIHashFromDER(spki []byte) string {
	return Digest(spki)
}

// AssembleSPKI builds the DER SubjectPublicKeyInfo
// SEQUENCE{AlgorithmIdentifier, BIT STRING(keyBytes)} for a key's external
// representation. keyBytes is the PKCS#1 structure for RSA keys and the
// uncompressed 0x04 || X || Y point for EC keys.
func AssembleSPKI(keyType KeyType, sizeBits int, keyBytes []byte) ([]byte, error) {
	if len(keyBytes) == 0 {
		return nil, ErrEmptyKey
	}
	algID, err := algorithmIdentifier(keyType, sizeBits)
	if err != nil {
		return nil, err
	}

	b := cryptobyte.NewBuilder(nil)
	b.AddASN1(asn1.SEQUENCE, func(seq *cryptobyte.Builder) {
		seq.AddBytes(algID)
		seq.AddASN1BitString(keyBytes)
	})
	spki, err := b.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedKeyType, err)
	}
	return spki, nil
}

// SPKIHash computes the pin hash of the SubjectPublicKeyInfo assembled from
// the key's algorithm, size and external representation. It fails with
// ErrUnsupportedKeyType when the algorithm/size pair has no registered
// AlgorithmIdentifier.
func SPKIHash(keyType KeyType, sizeBits int, keyBytes []byte) (string, error) {
	spki, err := AssembleSPKI(keyType, sizeBits, keyBytes)
	if err != nil {
		return "", err
	}
	return Digest(spki), nil
}
