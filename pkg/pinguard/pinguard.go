// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

// Package pinguard is the certificate-pinning trust engine. Given a server
// certificate chain, the host platform's system-trust outcome and a target
// hostname, it resolves the applicable pinning policy and produces a
// deterministic TrustDecision with an ordered event log.
//
// The engine consumes chains through the Certificate adaptor interface, so
// it depends on no TLS APIs beyond what the host hands it. Policy data is
// immutable value data held in a Registry and replaced wholesale via atomic
// swap; evaluation is synchronous and allocation-local, safe to call from
// any goroutine.
package pinguard

import "github.com/jeremyhahn/go-pinguard/pkg/pinhash"

// PublicKeyInfo is a public key's algorithm, size and external
// representation as exposed by the chain adaptor: the PKCS#1
// SEQUENCE{modulus, exponent} for RSA keys, the uncompressed
// 0x04 || X || Y point for EC keys.
type PublicKeyInfo struct {
	Type pinhash.KeyType
	Bits int
	Raw  []byte
}

// Certificate is the chain adaptor contract: the minimal view of one
// certificate the engine requires from the host platform.
type Certificate interface {
	// DER returns the certificate's DER encoding.
	DER() []byte

	// PublicKeyInfo returns the public key's algorithm, size and external
	// representation, or an error when the key cannot be extracted.
	PublicKeyInfo() (PublicKeyInfo, error)

	// SubjectSummary returns a human-readable subject string, or "" when
	// none is available. It is telemetry input only, never a trust input.
	SubjectSummary() string
}

// SystemTrustOutcome is the result of the host platform's native chain
// verification against its built-in trust store.
type SystemTrustOutcome struct {
	Trusted bool
	Error   string
}

// SystemTrustEvaluator is the boundary contract for the platform's system
// trust check. The engine only ever consumes its outcome.
type SystemTrustEvaluator interface {
	Evaluate(chain []Certificate, host string) SystemTrustOutcome
}

// SystemTrustFunc adapts a function to the SystemTrustEvaluator interface.
type SystemTrustFunc func(chain []Certificate, host string) SystemTrustOutcome

// Evaluate implements SystemTrustEvaluator.
func (f SystemTrustFunc) Evaluate(chain []Certificate, host string) SystemTrustOutcome {
	return f(chain, host)
}

// EventSink receives engine events synchronously, on the evaluating
// goroutine, in emission order. Sinks may be invoked concurrently from
// different goroutines and are responsible for their own synchronisation.
type EventSink func(Event)
