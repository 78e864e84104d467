// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package main

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jeremyhahn/go-pinguard/pkg/hostmatch"
	"github.com/jeremyhahn/go-pinguard/pkg/pinpolicy"
)

// createTestCert generates a self-signed certificate for a hostname.
func createTestCert(t *testing.T, host string) *x509.Certificate {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber: big.NewInt(time.Now().UnixNano()),
		Subject: pkix.Name{
			CommonName:   host,
			Organization: []string{"Test"},
		},
		DNSNames:  []string{host},
		NotBefore: time.Now(),
		NotAfter:  time.Now().Add(24 * time.Hour),
	}

	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)

	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)
	return cert
}

// createTestCertFile writes a self-signed certificate to a temp PEM file.
func createTestCertFile(t *testing.T) string {
	t.Helper()
	return writeCertPEM(t, createTestCert(t, "test.example.com"))
}

// writeCertPEM writes certificates to a temp PEM file and returns its path.
func writeCertPEM(t *testing.T, certs ...*x509.Certificate) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cert.pem")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	for _, cert := range certs {
		require.NoError(t, pem.Encode(f, &pem.Block{Type: "CERTIFICATE", Bytes: cert.Raw}))
	}
	return path
}

// writePolicyFile writes a policy set to a temp JSON file and returns its path.
func writePolicyFile(t *testing.T, set *pinpolicy.PolicySet) string {
	t.Helper()

	data, err := pinpolicy.EncodeJSON(set)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "policy.json")
	require.NoError(t, os.WriteFile(path, data, 0600))
	return path
}

// pinnedPolicyFile writes a policy file pinning the certificate's SPKI for
// its hostname.
func pinnedPolicyFile(t *testing.T, host string, cert *x509.Certificate) string {
	t.Helper()

	return writePolicyFile(t, &pinpolicy.PolicySet{
		Policies: []pinpolicy.HostPolicy{
			{
				Pattern: hostmatch.Exact(host),
				Policy: pinpolicy.Policy{
					Pins: []pinpolicy.Pin{
						pinpolicy.NewSPKIPin(cert, pinpolicy.PinRolePrimary, pinpolicy.ScopeLeaf),
					},
					FailStrategy: pinpolicy.FailStrict,
				},
			},
		},
	})
}
