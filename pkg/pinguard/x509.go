// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package pinguard

import (
	"crypto/ecdsa"
	"crypto/rsa"
	"crypto/x509"
	"fmt"

	"github.com/jeremyhahn/go-pinguard/pkg/pinhash"
)

// x509Certificate adapts a parsed crypto/x509 certificate to the engine's
// Certificate interface.
type x509Certificate struct {
	cert *x509.Certificate
}

// FromX509 wraps a parsed certificate in the chain adaptor interface.
func FromX509(cert *x509.Certificate) Certificate {
	return x509Certificate{cert: cert}
}

// NewChain adapts a parsed certificate chain, leaf first.
func NewChain(certs []*x509.Certificate) []Certificate {
	chain := make([]Certificate, 0, len(certs))
	for _, cert := range certs {
		chain = append(chain, FromX509(cert))
	}
	return chain
}

// ChainFromRaw adapts raw DER certificates as presented during a TLS
// handshake. Certificates that fail to parse are kept as opaque DER-only
// entries: their full-certificate hash still participates in pin matching,
// their SPKI hash records as empty.
func ChainFromRaw(rawCerts [][]byte) []Certificate {
	chain := make([]Certificate, 0, len(rawCerts))
	for _, raw := range rawCerts {
		if cert, err := x509.ParseCertificate(raw); err == nil {
			chain = append(chain, FromX509(cert))
			continue
		}
		chain = append(chain, opaqueCertificate{der: raw})
	}
	return chain
}

func (c x509Certificate) DER() []byte {
	return c.cert.Raw
}

func (c x509Certificate) SubjectSummary() string {
	return c.cert.Subject.CommonName
}

func (c x509Certificate) PublicKeyInfo() (PublicKeyInfo, error) {
	switch pub := c.cert.PublicKey.(type) {
	case *rsa.PublicKey:
		return PublicKeyInfo{
			Type: pinhash.KeyTypeRSA,
			Bits: pub.N.BitLen(),
			Raw:  x509.MarshalPKCS1PublicKey(pub),
		}, nil
	case *ecdsa.PublicKey:
		key, err := pub.ECDH()
		if err != nil {
			return PublicKeyInfo{}, fmt.Errorf("%w: %w", pinhash.ErrUnsupportedKeyType, err)
		}
		return PublicKeyInfo{
			Type: pinhash.KeyTypeEC,
			Bits: pub.Curve.Params().BitSize,
			Raw:  key.Bytes(),
		}, nil
	default:
		return PublicKeyInfo{}, fmt.Errorf("%w: %T", pinhash.ErrUnsupportedKeyType, pub)
	}
}

// opaqueCertificate carries DER bytes that did not parse as X.509.
type opaqueCertificate struct {
	der []byte
}

func (c opaqueCertificate) DER() []byte { return c.der }

func (c opaqueCertificate) SubjectSummary() string { return "" }

func (c opaqueCertificate) PublicKeyInfo() (PublicKeyInfo, error) {
	return PublicKeyInfo{}, fmt.Errorf("%w: unparseable certificate", pinhash.ErrUnsupportedKeyType)
}
