// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package pinguard

import (
	"github.com/jeremyhahn/go-pinguard/pkg/hostmatch"
	"github.com/jeremyhahn/go-pinguard/pkg/pinpolicy"
)

// Evaluate runs the pinning state machine for a presented chain. The host is
// normalised once; every emitted event carries the normalised form. Events
// are appended to the decision's log and delivered to sink, when non-nil, in
// the same order on the calling goroutine.
func Evaluate(set *pinpolicy.PolicySet, chain []Certificate, outcome SystemTrustOutcome, host string, sink EventSink) TrustDecision {
	h := hostmatch.Normalize(host)

	events := make([]Event, 0, 4)
	emit := func(e Event) {
		events = append(events, e)
		if sink != nil {
			sink(e)
		}
	}
	decide := func(trusted bool, reason Reason) TrustDecision {
		return TrustDecision{Trusted: trusted, Reason: reason, Events: events}
	}

	policy := set.Resolve(h)
	if policy == nil {
		emit(PolicyMissing{Host: h})
		return decide(false, ReasonPolicyMissing)
	}

	emit(SystemTrustEvaluated{Host: h, Trusted: outcome.Trusted})

	if policy.RequireSystemTrust && !outcome.Trusted {
		if policy.FailStrategy == pinpolicy.FailPermissive {
			emit(SystemTrustFailedPermissive{Host: h})
			return decide(true, ReasonSystemTrustFailedPermissive)
		}
		emit(SystemTrustFailed{Host: h, Error: outcome.Error})
		return decide(false, ReasonTrustFailed)
	}

	emit(ChainSummarized{Host: h, Summary: Summarize(chain)})

	if len(policy.Pins) == 0 {
		emit(PinSetEmpty{Host: h})
	}

	candidates := DeriveCandidates(chain)
	matched := matchPins(policy.Pins, candidates)
	if len(matched) > 0 {
		emit(PinMatched{Host: h, Pins: matched})
		return decide(true, ReasonPinMatch)
	}

	if policy.AllowSystemTrustFallback && outcome.Trusted {
		emit(PinMismatchAllowedByFallback{Host: h})
		return decide(true, ReasonPinMismatchAllowedByFallback)
	}
	if policy.FailStrategy == pinpolicy.FailPermissive && outcome.Trusted {
		emit(PinMismatchPermissive{Host: h})
		return decide(true, ReasonPinMismatchPermissive)
	}

	emit(PinMismatch{Host: h})
	return decide(false, ReasonPinningFailed)
}

// matchPins returns the pins that matched at least one candidate, in policy
// order. Each pin stops scanning at its first matching candidate.
func matchPins(pins []pinpolicy.Pin, candidates []Candidate) []pinpolicy.Pin {
	var matched []pinpolicy.Pin
	for _, pin := range pins {
		for _, cand := range candidates {
			if !cand.Scope.Contains(pin.Scope) {
				continue
			}
			if pinMatches(pin, cand) {
				matched = append(matched, pin)
				break
			}
		}
	}
	return matched
}

func pinMatches(pin pinpolicy.Pin, cand Candidate) bool {
	switch pin.Type {
	case pinpolicy.PinTypeSPKI:
		return cand.SPKIHash != "" && cand.SPKIHash == pin.Hash
	case pinpolicy.PinTypeCertificate:
		return cand.CertificateHash == pin.Hash
	case pinpolicy.PinTypeCA:
		return cand.Scope.IsCA() && cand.CertificateHash == pin.Hash
	default:
		return false
	}
}
