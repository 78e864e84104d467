// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-pinguard/pkg/pinpolicy"
)

// policyCmd is the parent command for policy file operations.
var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Policy file operations",
	Long: `Tools for working with pinning policy files.

Subcommands:
  validate - Validate a policy file
  resolve  - Show the policy a hostname resolves to`,
}

// policyValidateCmd validates a policy file.
var policyValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a policy file",
	Long: `Load a JSON or YAML policy file and validate every pin hash, type, role,
scope and fail strategy in it. Exits non-zero on the first violation.`,
	RunE: runPolicyValidate,
}

// policyResolveCmd resolves a hostname against a policy file.
var policyResolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Show the policy a hostname resolves to",
	Long: `Load a policy file and run its resolver for a hostname: exact patterns
beat wildcards, the longest wildcard suffix wins, and the default policy
applies when nothing matches.`,
	RunE: runPolicyResolve,
}

func init() {
	policyCmd.AddCommand(policyValidateCmd)
	policyCmd.AddCommand(policyResolveCmd)

	policyValidateCmd.Flags().String("policy-file", "", "path to JSON or YAML policy file (required)")

	policyResolveCmd.Flags().String("policy-file", "", "path to JSON or YAML policy file (required)")
	policyResolveCmd.Flags().String("host", "", "hostname to resolve (required)")
}

// runPolicyValidate loads and validates a policy file.
func runPolicyValidate(cmd *cobra.Command, args []string) error {
	policyFile, _ := cmd.Flags().GetString("policy-file")

	if policyFile == "" {
		return fmt.Errorf("%w: --policy-file is required", ErrInvalidInput)
	}

	set, err := loadPolicySet(policyFile)
	if err != nil {
		return err
	}

	slog.Info("policy file valid",
		"path", policyFile,
		"policies", len(set.Policies),
		"has_default", set.DefaultPolicy != nil)
	return nil
}

// runPolicyResolve resolves a hostname against a policy file.
func runPolicyResolve(cmd *cobra.Command, args []string) error {
	policyFile, _ := cmd.Flags().GetString("policy-file")
	host, _ := cmd.Flags().GetString("host")

	if policyFile == "" {
		return fmt.Errorf("%w: --policy-file is required", ErrInvalidInput)
	}
	if host == "" {
		return fmt.Errorf("%w: --host is required", ErrInvalidInput)
	}

	set, err := loadPolicySet(policyFile)
	if err != nil {
		return err
	}

	policy := set.Resolve(host)
	if policy == nil {
		fmt.Printf("No policy applies to %s\n", host)
		return nil
	}

	fmt.Printf("Host:                  %s\n", host)
	fmt.Printf("Fail strategy:         %s\n", policy.FailStrategy)
	fmt.Printf("Require system trust:  %t\n", policy.RequireSystemTrust)
	fmt.Printf("Allow trust fallback:  %t\n", policy.AllowSystemTrustFallback)
	fmt.Printf("Pins:                  %d\n", len(policy.Pins))
	for _, pin := range policy.Pins {
		fmt.Printf("  %-12s %-8s %-13s %s\n", pin.Type, pin.Role, pin.Scope, pin.Hash)
	}
	return nil
}

// loadPolicySet reads, decodes and validates a policy file. YAML is selected
// by file extension; everything else decodes as JSON.
func loadPolicySet(path string) (*pinpolicy.PolicySet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileOperation, err)
	}

	var set *pinpolicy.PolicySet
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		set, err = pinpolicy.DecodeYAML(data)
	} else {
		set, err = pinpolicy.DecodeJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPolicyLoad, err)
	}

	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPolicyLoad, err)
	}
	return set, nil
}
