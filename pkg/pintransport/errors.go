// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

// Package pintransport wires the pinning registry into the TLS client stack.
// It builds tls.Config values whose peer verification delegates to the
// registry's trust decision and an HTTP client for fetching resources over a
// pinned connection.
package pintransport

import "errors"

var (
	// ErrPinningRejected is returned when the registry's trust decision rejects the presented chain.
	ErrPinningRejected = errors.New("pintransport: pinning rejected chain")

	// ErrNoCertificates is returned when no certificates are presented during TLS verification.
	ErrNoCertificates = errors.New("pintransport: no certificates presented")

	// ErrNoRegistry is returned when no registry is provided.
	ErrNoRegistry = errors.New("pintransport: no registry configured")

	// ErrFetchFailed is returned when a pinned fetch request fails.
	ErrFetchFailed = errors.New("pintransport: fetch failed")

	// ErrEmptyResponse is returned when the server returns an empty response body.
	ErrEmptyResponse = errors.New("pintransport: empty response")
)
