// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package pinpolicy

import "github.com/jeremyhahn/go-pinguard/pkg/hostmatch"

// PinType identifies what a pin's hash covers.
type PinType string

const (
	// PinTypeSPKI pins the SHA-256 of a certificate's SubjectPublicKeyInfo.
	PinTypeSPKI PinType = "spki"

	// PinTypeCertificate pins the SHA-256 of the full DER certificate.
	PinTypeCertificate PinType = "certificate"

	// PinTypeCA pins the SHA-256 of a CA certificate; it can only match
	// intermediate or root chain positions.
	PinTypeCA PinType = "ca"
)

// PinRole is advisory metadata distinguishing primary pins from backups held
// for key rotation. It never affects matching.
type PinRole string

const (
	// PinRolePrimary marks the pin for the currently deployed key.
	PinRolePrimary PinRole = "primary"

	// PinRoleBackup marks a standby pin kept for rotation.
	PinRoleBackup PinRole = "backup"
)

// PinScope restricts which chain position a pin may match.
type PinScope string

const (
	// ScopeLeaf matches only the end-entity certificate.
	ScopeLeaf PinScope = "leaf"

	// ScopeIntermediate matches only intermediate CA positions.
	ScopeIntermediate PinScope = "intermediate"

	// ScopeRoot matches only the chain's trust-anchor position.
	ScopeRoot PinScope = "root"

	// ScopeAny matches every chain position.
	ScopeAny PinScope = "any"
)

// Contains reports whether a chain candidate holding the receiver scope is
// eligible to match a pin with the given scope.
func (s PinScope) Contains(pin PinScope) bool {
	return pin == ScopeAny || pin == s
}

// IsCA reports whether the scope denotes a certificate-authority chain
// position.
func (s PinScope) IsCA() bool {
	return s == ScopeIntermediate || s == ScopeRoot
}

// FailStrategy selects fail-closed or fail-open behaviour when system trust
// or pin checks fail.
type FailStrategy string

const (
	// FailStrict fails closed: trust failures reject the connection.
	FailStrict FailStrategy = "strict"

	// FailPermissive fails open: trust failures are reported but allowed.
	FailPermissive FailStrategy = "permissive"
)

// Pin is an immutable trust anchor: a base64-encoded SHA-256 digest of a
// certificate or public key, scoped to eligible chain positions.
type Pin struct {
	Type  PinType  `json:"type"`
	Hash  string   `json:"hash"`
	Role  PinRole  `json:"role"`
	Scope PinScope `json:"scope"`
}

// Policy is a pinning policy: an ordered pin list plus the knobs controlling
// behaviour when system trust fails or no pin matches.
type Policy struct {
	Pins                     []Pin        `json:"pins"`
	FailStrategy             FailStrategy `json:"failStrategy"`
	RequireSystemTrust       bool         `json:"requireSystemTrust"`
	AllowSystemTrustFallback bool         `json:"allowSystemTrustFallback"`
}

// HostPolicy binds a host pattern to a pinning policy.
type HostPolicy struct {
	Pattern hostmatch.Pattern `json:"pattern"`
	Policy  Policy            `json:"policy"`
}

// PolicySet is an ordered collection of host policies with an optional
// default applied when no pattern matches. Order is significant: the first
// matching exact pattern wins, and ties between equally specific wildcards
// break in declaration order.
type PolicySet struct {
	Policies      []HostPolicy `json:"policies"`
	DefaultPolicy *Policy      `json:"defaultPolicy,omitempty"`
}

// Empty returns a policy set with no host policies and no default.
func Empty() *PolicySet {
	return &PolicySet{}
}
