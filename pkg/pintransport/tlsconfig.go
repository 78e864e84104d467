// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package pintransport

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"

	"github.com/jeremyhahn/go-pinguard/pkg/pinguard"
)

// VerifyOptions tunes how NewTLSConfig derives the system trust outcome
// before handing the chain to the registry.
type VerifyOptions struct {
	// Roots overrides the root pool used for the platform verification step.
	// Nil selects the system roots.
	Roots *x509.CertPool
}

// NewTLSConfig returns a TLS configuration whose peer verification is
// delegated to the registry's pinning decision for host. The standard chain
// verification is disabled and replaced: the platform trust check runs first
// and its outcome feeds the pinning state machine, so permissive policies and
// system-trust fallback behave exactly as they do elsewhere in the engine.
func NewTLSConfig(registry *pinguard.Registry, host string, opts VerifyOptions) (*tls.Config, error) {
	if registry == nil {
		return nil, ErrNoRegistry
	}

	return &tls.Config{
		MinVersion:         tls.VersionTLS12,
		ServerName:         host,
		InsecureSkipVerify: true, //nolint:gosec // Standard verification replaced by the pinning decision below.
		VerifyPeerCertificate: func(rawCerts [][]byte, _ [][]*x509.Certificate) error {
			if len(rawCerts) == 0 {
				return ErrNoCertificates
			}
			outcome := systemTrust(rawCerts, host, opts.Roots)
			chain := pinguard.ChainFromRaw(rawCerts)
			decision := registry.EvaluateOutcome(chain, outcome, host)
			if !decision.Trusted {
				return fmt.Errorf("%w: %s", ErrPinningRejected, decision.Reason)
			}
			return nil
		},
	}, nil
}

// systemTrust runs the platform-equivalent chain verification so the engine
// receives a real trust outcome rather than an assertion.
func systemTrust(rawCerts [][]byte, host string, roots *x509.CertPool) pinguard.SystemTrustOutcome {
	certs := make([]*x509.Certificate, 0, len(rawCerts))
	for _, raw := range rawCerts {
		cert, err := x509.ParseCertificate(raw)
		if err != nil {
			return pinguard.SystemTrustOutcome{Error: err.Error()}
		}
		certs = append(certs, cert)
	}

	intermediates := x509.NewCertPool()
	for _, cert := range certs[1:] {
		intermediates.AddCert(cert)
	}

	_, err := certs[0].Verify(x509.VerifyOptions{
		DNSName:       host,
		Roots:         roots,
		Intermediates: intermediates,
	})
	if err != nil {
		return pinguard.SystemTrustOutcome{Error: err.Error()}
	}
	return pinguard.SystemTrustOutcome{Trusted: true}
}
