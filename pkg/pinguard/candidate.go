// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package pinguard

import (
	"github.com/jeremyhahn/go-pinguard/pkg/pinhash"
	"github.com/jeremyhahn/go-pinguard/pkg/pinpolicy"
)

// Candidate is one chain element prepared for pin matching: its position in
// the chain plus its two digests. SPKIHash is empty when the public key
// could not be extracted or hashed; an empty hash can never equal a pin.
type Candidate struct {
	Scope           pinpolicy.PinScope
	SPKIHash        string
	CertificateHash string
}

// DeriveCandidates maps a chain to its matching candidates. Index 0 is the
// leaf, the last index the root, everything between an intermediate. A
// one-element chain is a single leaf; the root rule does not apply to it.
func DeriveCandidates(chain []Certificate) []Candidate {
	candidates := make([]Candidate, 0, len(chain))
	for i, cert := range chain {
		var scope pinpolicy.PinScope
		switch {
		case i == 0:
			scope = pinpolicy.ScopeLeaf
		case i == len(chain)-1:
			scope = pinpolicy.ScopeRoot
		default:
			scope = pinpolicy.ScopeIntermediate
		}

		spkiHash := ""
		if info, err := cert.PublicKeyInfo(); err == nil {
			if h, err := pinhash.SPKIHash(info.Type, info.Bits, info.Raw); err == nil {
				spkiHash = h
			}
		}

		candidates = append(candidates, Candidate{
			Scope:           scope,
			SPKIHash:        spkiHash,
			CertificateHash: pinhash.CertificateHash(cert.DER()),
		})
	}
	return candidates
}
