// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package pinguard

import "github.com/jeremyhahn/go-pinguard/pkg/pinpolicy"

// EventKind discriminates the engine's event variants.
type EventKind string

const (
	EventKindPolicyMissing                EventKind = "policy_missing"
	EventKindSystemTrustEvaluated         EventKind = "system_trust_evaluated"
	EventKindSystemTrustFailed            EventKind = "system_trust_failed"
	EventKindSystemTrustFailedPermissive  EventKind = "system_trust_failed_permissive"
	EventKindChainSummary                 EventKind = "chain_summary"
	EventKindPinMatched                   EventKind = "pin_matched"
	EventKindPinMismatch                  EventKind = "pin_mismatch"
	EventKindPinMismatchAllowedByFallback EventKind = "pin_mismatch_allowed_by_fallback"
	EventKindPinMismatchPermissive        EventKind = "pin_mismatch_permissive"
	EventKindPinSetEmpty                  EventKind = "pin_set_empty"
	EventKindMTLSIdentityUsed             EventKind = "mtls_identity_used"
	EventKindMTLSIdentityMissing          EventKind = "mtls_identity_missing"
)

// Event is one entry of the evaluator's ordered event log. The concrete
// variants below are the complete set; switch on Kind or type-assert to
// reach variant payloads.
type Event interface {
	Kind() EventKind

	// Hostname returns the normalised host the event concerns.
	Hostname() string
}

// PolicyMissing records that no policy applied to the host.
type PolicyMissing struct {
	Host string
}

// SystemTrustEvaluated records the platform trust outcome consumed by the
// evaluation.
type SystemTrustEvaluated struct {
	Host    string
	Trusted bool
}

// SystemTrustFailed records a fail-closed rejection after a negative system
// trust outcome.
type SystemTrustFailed struct {
	Host  string
	Error string
}

// SystemTrustFailedPermissive records a fail-open acceptance after a
// negative system trust outcome under a permissive policy.
type SystemTrustFailedPermissive struct {
	Host string
}

// ChainSummarized carries the redacted chain telemetry.
type ChainSummarized struct {
	Host    string
	Summary ChainSummary
}

// PinMatched records the pins that matched at least one chain candidate.
type PinMatched struct {
	Host string
	Pins []pinpolicy.Pin
}

// PinMismatch records that no pin matched and no fallback applied.
type PinMismatch struct {
	Host string
}

// PinMismatchAllowedByFallback records acceptance of an unpinned but
// system-trusted chain under allowSystemTrustFallback.
type PinMismatchAllowedByFallback struct {
	Host string
}

// PinMismatchPermissive records acceptance of an unpinned but
// system-trusted chain under a permissive fail strategy.
type PinMismatchPermissive struct {
	Host string
}

// PinSetEmpty records that the resolved policy declared no pins.
type PinSetEmpty struct {
	Host string
}

// MTLSIdentityUsed records that a client identity was supplied for the host.
type MTLSIdentityUsed struct {
	Host string
}

// MTLSIdentityMissing records that no client identity was available for the
// host.
type MTLSIdentityMissing struct {
	Host string
}

func (e PolicyMissing) Kind() EventKind { return EventKindPolicyMissing }
func (e PolicyMissing) Hostname() string { return e.Host }

func (e SystemTrustEvaluated) Kind() EventKind { return EventKindSystemTrustEvaluated }
func (e SystemTrustEvaluated) Hostname() string { return e.Host }

func (e SystemTrustFailed) Kind() EventKind { return EventKindSystemTrustFailed }
func (e SystemTrustFailed) Hostname() string { return e.Host }

func (e SystemTrustFailedPermissive) Kind() EventKind { return EventKindSystemTrustFailedPermissive }
func (e SystemTrustFailedPermissive) Hostname() string { return e.Host }

func (e ChainSummarized) Kind() EventKind { return EventKindChainSummary }
func (e ChainSummarized) Hostname() string { return e.Host }

func (e PinMatched) Kind() EventKind { return EventKindPinMatched }
func (e PinMatched) Hostname() string { return e.Host }

func (e PinMismatch) Kind() EventKind { return EventKindPinMismatch }
func (e PinMismatch) Hostname() string { return e.Host }

func (e PinMismatchAllowedByFallback) Kind() EventKind { return EventKindPinMismatchAllowedByFallback }
func (e PinMismatchAllowedByFallback) Hostname() string { return e.Host }

func (e PinMismatchPermissive) Kind() EventKind { return EventKindPinMismatchPermissive }
func (e PinMismatchPermissive) Hostname() string { return e.Host }

func (e PinSetEmpty) Kind() EventKind { return EventKindPinSetEmpty }
func (e PinSetEmpty) Hostname() string { return e.Host }

func (e MTLSIdentityUsed) Kind() EventKind { return EventKindMTLSIdentityUsed }
func (e MTLSIdentityUsed) Hostname() string { return e.Host }

func (e MTLSIdentityMissing) Kind() EventKind { return EventKindMTLSIdentityMissing }
func (e MTLSIdentityMissing) Hostname() string { return e.Host }
