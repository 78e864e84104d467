// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package pinpolicy

import (
	"crypto/x509"

	"github.com/jeremyhahn/go-pinguard/pkg/pinhash"
)

// NewSPKIPin computes the canonical SPKI pin for a parsed certificate.
func NewSPKIPin(cert *x509.Certificate, role PinRole, scope PinScope) Pin {
	return Pin{
		Type:  PinTypeSPKI,
		Hash:  pinhash.SPKIHashFromDER(cert.RawSubjectPublicKeyInfo),
		Role:  role,
		Scope: scope,
	}
}

// NewCertificatePin computes the canonical full-certificate pin for a parsed
// certificate.
func NewCertificatePin(cert *x509.Certificate, role PinRole, scope PinScope) Pin {
	return Pin{
		Type:  PinTypeCertificate,
		Hash:  pinhash.CertificateHash(cert.Raw),
		Role:  role,
		Scope: scope,
	}
}

// NewCAPin computes a CA pin for a parsed CA certificate. CA pins only ever
// match intermediate or root chain positions, whatever scope they carry.
func NewCAPin(cert *x509.Certificate, role PinRole, scope PinScope) Pin {
	return Pin{
		Type:  PinTypeCA,
		Hash:  pinhash.CertificateHash(cert.Raw),
		Role:  role,
		Scope: scope,
	}
}
