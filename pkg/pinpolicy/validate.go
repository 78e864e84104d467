// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package pinpolicy

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// Validate checks that the pin's hash is standard base64 of exactly 32 bytes
// and that its type, role and scope are known values.
func (p Pin) Validate() error {
	raw, err := base64.StdEncoding.DecodeString(p.Hash)
	if err != nil {
		return fmt.Errorf("%w: hash %q is not base64", ErrInvalidPin, p.Hash)
	}
	if len(raw) != sha256.Size {
		return fmt.Errorf("%w: hash decodes to %d bytes, want %d",
			ErrInvalidPin, len(raw), sha256.Size)
	}
	switch p.Type {
	case PinTypeSPKI, PinTypeCertificate, PinTypeCA:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidPin, p.Type)
	}
	switch p.Role {
	case PinRolePrimary, PinRoleBackup:
	default:
		return fmt.Errorf("%w: unknown role %q", ErrInvalidPin, p.Role)
	}
	switch p.Scope {
	case ScopeLeaf, ScopeIntermediate, ScopeRoot, ScopeAny:
	default:
		return fmt.Errorf("%w: unknown scope %q", ErrInvalidPin, p.Scope)
	}
	return nil
}

// Validate checks every pin in the policy and rejects pins that share type,
// hash and scope. Two pins may share type and hash as long as their scopes
// differ. An empty pin list is legal.
func (p Policy) Validate() error {
	switch p.FailStrategy {
	case FailStrict, FailPermissive:
	default:
		return fmt.Errorf("%w: unknown fail strategy %q", ErrInvalidPolicy, p.FailStrategy)
	}
	type pinKey struct {
		typ   PinType
		hash  string
		scope PinScope
	}
	seen := make(map[pinKey]struct{}, len(p.Pins))
	for _, pin := range p.Pins {
		if err := pin.Validate(); err != nil {
			return err
		}
		key := pinKey{pin.Type, pin.Hash, pin.Scope}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: %s %s scope %s", ErrDuplicatePin, pin.Type, pin.Hash, pin.Scope)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// Validate checks every host policy and the default policy, if present.
func (s *PolicySet) Validate() error {
	for i, hp := range s.Policies {
		if err := hp.Policy.Validate(); err != nil {
			return fmt.Errorf("policy %d (%s): %w", i, hp.Pattern, err)
		}
	}
	if s.DefaultPolicy != nil {
		if err := s.DefaultPolicy.Validate(); err != nil {
			return fmt.Errorf("default policy: %w", err)
		}
	}
	return nil
}
