// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package main

import "errors"

// Exit codes for the CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitOperationFailed indicates an evaluation, signing or verification failure.
	ExitOperationFailed = 1

	// ExitConfigError indicates a configuration or input validation error.
	ExitConfigError = 2
)

// Sentinel errors for CLI operations.
var (
	// ErrInvalidInput is returned when required input parameters are missing or invalid.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPolicyLoad is returned when a policy file cannot be loaded or validated.
	ErrPolicyLoad = errors.New("policy load failed")

	// ErrCertificateLoad is returned when certificate material cannot be parsed.
	ErrCertificateLoad = errors.New("certificate load failed")

	// ErrSignFailed is returned when blob signing fails.
	ErrSignFailed = errors.New("sign failed")

	// ErrVerifyFailed is returned when blob verification fails.
	ErrVerifyFailed = errors.New("verification failed")

	// ErrFileOperation is returned when a file read or write operation fails.
	ErrFileOperation = errors.New("file operation failed")
)
