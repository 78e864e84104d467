// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

// Package remoteconfig verifies signed policy blobs and ingests them into a
// pinning registry. Verification always runs before the payload is parsed;
// an unverified blob never reaches configuration.
package remoteconfig

import "errors"

var (
	// ErrVerificationFailed indicates a blob whose signature did not verify.
	// The error deliberately carries no detail about why.
	ErrVerificationFailed = errors.New("remoteconfig: verification failed")

	// ErrDecodeFailed indicates a verified blob whose payload could not be
	// decoded into a policy set.
	ErrDecodeFailed = errors.New("remoteconfig: decode failed")

	// ErrInvalidBlob indicates blob bytes that could not be decoded.
	ErrInvalidBlob = errors.New("remoteconfig: invalid blob")
)
