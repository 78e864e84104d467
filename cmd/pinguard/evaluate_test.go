// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate_MissingFlags(t *testing.T) {
	cmd := evaluateCmd
	cmd.Flags().Set("chain-file", "")
	cmd.Flags().Set("policy-file", "x")
	cmd.Flags().Set("host", "api.example.com")

	err := runEvaluate(cmd, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEvaluate_PinMatch(t *testing.T) {
	cert := createTestCert(t, "api.example.com")
	chainFile := writeCertPEM(t, cert)
	policyFile := pinnedPolicyFile(t, "api.example.com", cert)

	cmd := evaluateCmd
	cmd.Flags().Set("chain-file", chainFile)
	cmd.Flags().Set("policy-file", policyFile)
	cmd.Flags().Set("host", "api.example.com")
	cmd.Flags().Set("system-trusted", "true")

	err := runEvaluate(cmd, nil)
	assert.NoError(t, err)
}

func TestEvaluate_PinMismatchFails(t *testing.T) {
	presented := createTestCert(t, "api.example.com")
	pinned := createTestCert(t, "api.example.com")

	chainFile := writeCertPEM(t, presented)
	policyFile := pinnedPolicyFile(t, "api.example.com", pinned)

	cmd := evaluateCmd
	cmd.Flags().Set("chain-file", chainFile)
	cmd.Flags().Set("policy-file", policyFile)
	cmd.Flags().Set("host", "api.example.com")
	cmd.Flags().Set("system-trusted", "true")

	err := runEvaluate(cmd, nil)
	assert.ErrorIs(t, err, ErrVerifyFailed)
}

func TestEvaluate_NoPolicyForHost(t *testing.T) {
	cert := createTestCert(t, "api.example.com")
	chainFile := writeCertPEM(t, cert)
	policyFile := pinnedPolicyFile(t, "api.example.com", cert)

	cmd := evaluateCmd
	cmd.Flags().Set("chain-file", chainFile)
	cmd.Flags().Set("policy-file", policyFile)
	cmd.Flags().Set("host", "unrelated.test")
	cmd.Flags().Set("system-trusted", "true")

	err := runEvaluate(cmd, nil)
	assert.ErrorIs(t, err, ErrVerifyFailed)
}

func TestEvaluateCmd_HasExpectedFlags(t *testing.T) {
	assert.NotNil(t, evaluateCmd.Flags().Lookup("chain-file"))
	assert.NotNil(t, evaluateCmd.Flags().Lookup("policy-file"))
	assert.NotNil(t, evaluateCmd.Flags().Lookup("host"))
	assert.NotNil(t, evaluateCmd.Flags().Lookup("system-trusted"))
}
