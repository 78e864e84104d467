// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package pinhash

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rsaTestKeyBytes builds the PKCS#1 external representation of the reference
// RSA-2048 key: SEQUENCE{INTEGER(0x01 x 256), INTEGER(0x01 x 3)}. The
// modulus's top bit is clear, so no leading 0x00 octet is encoded.
func rsaTestKeyBytes() []byte {
	modulus := bytes.Repeat([]byte{0x01}, 256)
	var inner []byte
	inner = append(inner, 0x02, 0x82, 0x01, 0x00)
	inner = append(inner, modulus...)
	inner = append(inner, 0x02, 0x03, 0x01, 0x01, 0x01)

	out := []byte{0x30, 0x82}
	out = append(out, byte(len(inner)>>8), byte(len(inner)))
	return append(out, inner...)
}

func TestCertificateHash(t *testing.T) {
	der := []byte("not really DER, but bytes are bytes")

	hash := CertificateHash(der)

	sum := sha256.Sum256(der)
	assert.Equal(t, base64.StdEncoding.EncodeToString(sum[:]), hash)
	assert.Len(t, hash, 44)
}

func TestCertificateHash_DistinctInputs(t *testing.T) {
	assert.NotEqual(t, CertificateHash([]byte{0x01}), CertificateHash([]byte{0x02}))
}

func TestSPKIHash_RSAReferenceVector(t *testing.T) {
	hash, err := SPKIHash(KeyTypeRSA, 2048, rsaTestKeyBytes())
	require.NoError(t, err)

	assert.Equal(t, "Y7EKzelfzqmyMnNRDIX8cecAf6wj1nk7nT25ws/qnVo=", hash)
}

func TestSPKIHash_LengthIsAlways44(t *testing.T) {
	cases := []struct {
		name     string
		keyType  KeyType
		sizeBits int
		keyLen   int
	}{
		{"rsa-2048", KeyTypeRSA, 2048, 270},
		{"rsa-4096", KeyTypeRSA, 4096, 526},
		{"ec-p256", KeyTypeEC, 256, 65},
		{"ec-p384", KeyTypeEC, 384, 97},
		{"ec-p521", KeyTypeEC, 521, 133},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			keyBytes := bytes.Repeat([]byte{0xab}, tc.keyLen)
			keyBytes[0] = 0x04

			hash, err := SPKIHash(tc.keyType, tc.sizeBits, keyBytes)
			require.NoError(t, err)
			assert.Len(t, hash, 44)
		})
	}
}

func TestSPKIHash_UnsupportedKeyType(t *testing.T) {
	_, err := SPKIHash(KeyType("Ed25519"), 256, []byte{0x01})
	assert.ErrorIs(t, err, ErrUnsupportedKeyType)

	_, err = SPKIHash(KeyTypeEC, 224, []byte{0x04})
	assert.ErrorIs(t, err, ErrUnsupportedKeyType)
}

func TestSPKIHash_EmptyKey(t *testing.T) {
	_, err := SPKIHash(KeyTypeRSA, 2048, nil)
	assert.ErrorIs(t, err, ErrEmptyKey)
}

func TestAssembleSPKI_MatchesX509ForEC(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	ecdhKey, err := key.PublicKey.ECDH()
	require.NoError(t, err)

	spki, err := AssembleSPKI(KeyTypeEC, 256, ecdhKey.Bytes())
	require.NoError(t, err)

	pkix, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	// The synthetic SPKI must be byte-identical to the platform encoding.
	assert.Equal(t, pkix, spki)
}

func TestAssembleSPKI_MatchesX509ForRSA(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	spki, err := AssembleSPKI(KeyTypeRSA, 2048, x509.MarshalPKCS1PublicKey(&key.PublicKey))
	require.NoError(t, err)

	pkix, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	assert.Equal(t, pkix, spki)
}

func TestSPKIHash_Deterministic(t *testing.T) {
	keyBytes := bytes.Repeat([]byte{0x5a}, 97)
	keyBytes[0] = 0x04

	h1, err := SPKIHash(KeyTypeEC, 384, keyBytes)
	require.NoError(t, err)
	h2, err := SPKIHash(KeyTypeEC, 384, keyBytes)
	require.NoError(t, err)

	assert.Equal(t, h1, h2)
}
