// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package remoteconfig

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hmacBlob(secretID string, secret, payload []byte) Blob {
	return Blob{
		Payload:   payload,
		Signature: SignHMAC(secret, payload),
		Type:      HMACSHA256(secretID),
	}
}

func ecdsaBlob(t *testing.T, keyID string, key *ecdsa.PrivateKey, payload []byte) Blob {
	t.Helper()
	digest := sha256.Sum256(payload)
	sig, err := ecdsa.SignASN1(rand.Reader, key, digest[:])
	require.NoError(t, err)
	return Blob{Payload: payload, Signature: sig, Type: PublicKey(keyID)}
}

func newECDSAKey(t *testing.T, curve elliptic.Curve) *ecdsa.PrivateKey {
	t.Helper()
	key, err := ecdsa.GenerateKey(curve, rand.Reader)
	require.NoError(t, err)
	return key
}

func TestHMACRoundTrip(t *testing.T) {
	payload := []byte(`{"v":1}`)
	secret := []byte("demo-secret-key")

	verifier := HMACVerifier{Secrets: StaticSecrets(map[string][]byte{
		"demo": secret,
	})}

	blob := hmacBlob("demo", secret, payload)
	assert.True(t, verifier.Verify(blob))

	mutated := blob
	mutated.Signature = append([]byte{}, blob.Signature...)
	mutated.Signature[0] ^= 0x01
	assert.False(t, verifier.Verify(mutated))
}

func TestHMACPayloadTamperFails(t *testing.T) {
	secret := []byte("demo-secret-key")
	verifier := HMACVerifier{Secrets: StaticSecrets(map[string][]byte{"demo": secret})}

	blob := hmacBlob("demo", secret, []byte(`{"v":1}`))
	blob.Payload = []byte(`{"v":2}`)
	assert.False(t, verifier.Verify(blob))
}

func TestHMACMissingSecretFails(t *testing.T) {
	secret := []byte("demo-secret-key")
	verifier := HMACVerifier{Secrets: StaticSecrets(map[string][]byte{"demo": secret})}

	blob := hmacBlob("unknown", secret, []byte(`{"v":1}`))
	assert.False(t, verifier.Verify(blob))
}

func TestHMACNilResolverFails(t *testing.T) {
	blob := hmacBlob("demo", []byte("k"), []byte("p"))
	assert.False(t, HMACVerifier{}.Verify(blob))
}

func TestECDSAVerifies(t *testing.T) {
	curves := map[string]elliptic.Curve{
		"p256": elliptic.P256(),
		"p384": elliptic.P384(),
		"p521": elliptic.P521(),
	}

	for name, curve := range curves {
		t.Run(name, func(t *testing.T) {
			key := newECDSAKey(t, curve)
			verifier := ECDSAVerifier{Keys: StaticKeys(map[string]*ecdsa.PublicKey{
				"signer": &key.PublicKey,
			})}

			blob := ecdsaBlob(t, "signer", key, []byte(`{"v":1}`))
			assert.True(t, verifier.Verify(blob))

			blob.Payload = []byte(`{"v":2}`)
			assert.False(t, verifier.Verify(blob))
		})
	}
}

func TestECDSASignatureTamperFails(t *testing.T) {
	key := newECDSAKey(t, elliptic.P256())
	verifier := ECDSAVerifier{Keys: StaticKeys(map[string]*ecdsa.PublicKey{"signer": &key.PublicKey})}

	blob := ecdsaBlob(t, "signer", key, []byte(`{"v":1}`))
	blob.Signature[len(blob.Signature)-1] ^= 0x01
	assert.False(t, verifier.Verify(blob))
}

func TestECDSAMissingKeyFails(t *testing.T) {
	key := newECDSAKey(t, elliptic.P256())
	verifier := ECDSAVerifier{Keys: StaticKeys(nil)}

	blob := ecdsaBlob(t, "signer", key, []byte(`{"v":1}`))
	assert.False(t, verifier.Verify(blob))
}

func TestECDSAWrongKeyFails(t *testing.T) {
	signer := newECDSAKey(t, elliptic.P256())
	other := newECDSAKey(t, elliptic.P256())
	verifier := ECDSAVerifier{Keys: StaticKeys(map[string]*ecdsa.PublicKey{"signer": &other.PublicKey})}

	blob := ecdsaBlob(t, "signer", signer, []byte(`{"v":1}`))
	assert.False(t, verifier.Verify(blob))
}

func TestCrossSchemeForgeriesFail(t *testing.T) {
	secret := []byte("demo-secret-key")
	key := newECDSAKey(t, elliptic.P256())

	hmacVerifier := HMACVerifier{Secrets: StaticSecrets(map[string][]byte{"id": secret})}
	ecdsaVerifier := ECDSAVerifier{Keys: StaticKeys(map[string]*ecdsa.PublicKey{"id": &key.PublicKey})}

	hm := hmacBlob("id", secret, []byte(`{"v":1}`))
	ec := ecdsaBlob(t, "id", key, []byte(`{"v":1}`))

	assert.False(t, ecdsaVerifier.Verify(hm))
	assert.False(t, hmacVerifier.Verify(ec))
}

func TestMultiVerifier(t *testing.T) {
	secret := []byte("demo-secret-key")
	key := newECDSAKey(t, elliptic.P256())

	multi := MultiVerifier{
		HMACVerifier{Secrets: StaticSecrets(map[string][]byte{"id": secret})},
		ECDSAVerifier{Keys: StaticKeys(map[string]*ecdsa.PublicKey{"id": &key.PublicKey})},
	}

	assert.True(t, multi.Verify(hmacBlob("id", secret, []byte("p"))))
	assert.True(t, multi.Verify(ecdsaBlob(t, "id", key, []byte("p"))))
	assert.False(t, multi.Verify(hmacBlob("id", []byte("wrong"), []byte("p"))))
	assert.False(t, MultiVerifier{}.Verify(hmacBlob("id", secret, []byte("p"))))
}

func TestBlobCodecRoundTrip(t *testing.T) {
	blob := hmacBlob("demo", []byte("k"), []byte(`{"v":1}`))

	data, err := EncodeBlob(blob)
	require.NoError(t, err)

	decoded, err := DecodeBlob(data)
	require.NoError(t, err)
	assert.True(t, blob.Equal(decoded))
}

func TestDecodeBlobRejectsUnknownScheme(t *testing.T) {
	_, err := DecodeBlob([]byte(`{"payload":"cA==","signature":"cA==","signatureType":{"scheme":"pgp","id":"x"}}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidBlob)
}

func TestDecodeBlobRejectsGarbage(t *testing.T) {
	_, err := DecodeBlob([]byte("not json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidBlob)
}

func TestBlobEqual(t *testing.T) {
	a := hmacBlob("id", []byte("k"), []byte("p"))
	b := hmacBlob("id", []byte("k"), []byte("p"))
	assert.True(t, a.Equal(b))

	c := b
	c.Type = HMACSHA256("other")
	assert.False(t, a.Equal(c))
}
