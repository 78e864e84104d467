// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-pinguard/pkg/pinguard"
	"github.com/jeremyhahn/go-pinguard/pkg/telemetry"
)

// evaluateCmd evaluates a stored chain against a policy file.
var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a certificate chain against a policy file",
	Long: `Run the pinning state machine for a certificate chain stored in a PEM
file, leaf first, against the policy a hostname resolves to. The system
trust outcome is supplied with --system-trusted since no live handshake is
involved. Every engine event is logged; the exit status reflects the
decision.`,
	RunE: runEvaluate,
}

func init() {
	evaluateCmd.Flags().String("chain-file", "", "path to PEM chain file, leaf first (required)")
	evaluateCmd.Flags().String("policy-file", "", "path to JSON or YAML policy file (required)")
	evaluateCmd.Flags().String("host", "", "target hostname (required)")
	evaluateCmd.Flags().Bool("system-trusted", false, "treat the chain as trusted by the platform store")
}

// runEvaluate evaluates a stored chain and reports the trust decision.
func runEvaluate(cmd *cobra.Command, args []string) error {
	chainFile, _ := cmd.Flags().GetString("chain-file")
	policyFile, _ := cmd.Flags().GetString("policy-file")
	host, _ := cmd.Flags().GetString("host")
	systemTrusted, _ := cmd.Flags().GetBool("system-trusted")

	if chainFile == "" {
		return fmt.Errorf("%w: --chain-file is required", ErrInvalidInput)
	}
	if policyFile == "" {
		return fmt.Errorf("%w: --policy-file is required", ErrInvalidInput)
	}
	if host == "" {
		return fmt.Errorf("%w: --host is required", ErrInvalidInput)
	}

	certs, err := loadCertificates(chainFile)
	if err != nil {
		return err
	}
	set, err := loadPolicySet(policyFile)
	if err != nil {
		return err
	}

	outcome := pinguard.SystemTrustOutcome{Trusted: systemTrusted}
	if !systemTrusted {
		outcome.Error = "system trust not asserted"
	}

	decision := pinguard.Evaluate(set, pinguard.NewChain(certs), outcome, host,
		telemetry.SlogSink(slog.Default()))

	fmt.Printf("Host:     %s\n", host)
	fmt.Printf("Trusted:  %t\n", decision.Trusted)
	fmt.Printf("Reason:   %s\n", decision.Reason)

	if !decision.Trusted {
		return fmt.Errorf("%w: %s", ErrVerifyFailed, decision.Reason)
	}
	return nil
}
