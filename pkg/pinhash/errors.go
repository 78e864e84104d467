// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

// Package pinhash computes the SHA-256 digests used as certificate pins:
// full-certificate hashes over DER bytes and SPKI (SubjectPublicKeyInfo)
// hashes assembled from an algorithm identifier plus the key's external
// representation. All digests are returned in the canonical pin form,
// standard base64 with padding (44 characters for SHA-256).
package pinhash

import "errors"

var (
	// ErrUnsupportedKeyType is returned when no SPKI algorithm identifier
	// exists for the given key algorithm and size.
	ErrUnsupportedKeyType = errors.New("pinhash: unsupported key type")

	// ErrEmptyKey is returned when the key's external representation is empty.
	ErrEmptyKey = errors.New("pinhash: empty key representation")
)
