// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

// Package pinpolicy defines the pinning policy model: pins, per-host
// policies, host patterns bound to policies, and policy sets, together with
// the resolver that picks the single policy applying to a hostname and the
// JSON/YAML codecs for policy data.
package pinpolicy

import "errors"

var (
	// ErrInvalidPin indicates a pin hash that is not standard base64 of
	// exactly 32 bytes, or a pin with an unknown type, role or scope.
	ErrInvalidPin = errors.New("pinpolicy: invalid pin")

	// ErrDuplicatePin indicates two pins in one policy sharing type, hash and
	// scope.
	ErrDuplicatePin = errors.New("pinpolicy: duplicate pin")

	// ErrInvalidPolicy indicates a policy with an unknown fail strategy.
	ErrInvalidPolicy = errors.New("pinpolicy: invalid policy")

	// ErrDecodeFailed indicates policy data that could not be decoded.
	ErrDecodeFailed = errors.New("pinpolicy: decode failed")
)
