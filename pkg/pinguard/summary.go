// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package pinguard

import "github.com/jeremyhahn/go-pinguard/pkg/certinfo"

// ChainSummary is redacted, best-effort telemetry about a presented chain.
// Common names are reduced to "*." plus their last two labels; names with
// fewer than two labels record as empty.
type ChainSummary struct {
	LeafCommonName   string
	IssuerCommonName string
	SANCount         uint32
}

// Summarize extracts the chain summary for the leaf certificate. The issuer
// common name comes from the certificate following the leaf in the chain,
// falling back to the leaf's own subject when no issuer can be identified.
func Summarize(chain []Certificate) ChainSummary {
	if len(chain) == 0 {
		return ChainSummary{}
	}
	leaf := chain[0]

	ders := make([][]byte, len(chain))
	for i, cert := range chain {
		ders[i] = cert.DER()
	}

	issuerSummary := leaf.SubjectSummary()
	if idx := certinfo.IssuerIndex(leaf.DER(), ders); idx >= 0 {
		issuerSummary = chain[idx].SubjectSummary()
	}

	return ChainSummary{
		LeafCommonName:   certinfo.Redact(leaf.SubjectSummary()),
		IssuerCommonName: certinfo.Redact(issuerSummary),
		SANCount:         uint32(certinfo.CountSubjectAltNames(leaf.DER())),
	}
}
