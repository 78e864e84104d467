// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-pinguard/pkg/pinguard"
	"github.com/jeremyhahn/go-pinguard/pkg/pintransport"
	"github.com/jeremyhahn/go-pinguard/pkg/telemetry"
)

// defaultFetchTimeout is the default timeout for a pinned fetch.
const defaultFetchTimeout = 15 * time.Second

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch a resource over a pinned TLS connection",
	Long: `Perform an HTTPS GET whose peer verification is delegated to the pinning
engine. The policy file is loaded into a fresh registry, the hostname
resolves to its policy, and the handshake succeeds only if the engine's
trust decision accepts the presented chain. Every engine event is logged.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("server-url", "", "server base URL (e.g., https://api.example.com:8443) (required)")
	fetchCmd.Flags().String("host", "", "hostname the policy resolves against (required)")
	fetchCmd.Flags().String("policy-file", "", "path to JSON or YAML policy file (required)")
	fetchCmd.Flags().String("path", "/", "request path relative to the server URL")
	fetchCmd.Flags().Duration("timeout", defaultFetchTimeout, "request timeout")
}

// runFetch performs a pinned HTTPS GET and writes the response body.
func runFetch(cmd *cobra.Command, args []string) error {
	serverURL, _ := cmd.Flags().GetString("server-url")
	host, _ := cmd.Flags().GetString("host")
	policyFile, _ := cmd.Flags().GetString("policy-file")
	path, _ := cmd.Flags().GetString("path")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	if serverURL == "" {
		return fmt.Errorf("%w: --server-url is required", ErrInvalidInput)
	}
	if host == "" {
		return fmt.Errorf("%w: --host is required", ErrInvalidInput)
	}
	if policyFile == "" {
		return fmt.Errorf("%w: --policy-file is required", ErrInvalidInput)
	}
	if timeout <= 0 {
		return fmt.Errorf("%w: --timeout must be positive", ErrInvalidInput)
	}

	set, err := loadPolicySet(policyFile)
	if err != nil {
		return err
	}

	registry := pinguard.NewRegistry()
	registry.Configure(func(b *pinguard.Builder) {
		b.SetEnvironment(pinguard.EnvProd, pinguard.EnvironmentConfig{PolicySet: set})
		b.SetTelemetrySink(telemetry.SlogSink(slog.Default()))
	})

	client, err := pintransport.NewClient(&pintransport.ClientConfig{
		ServerURL:      serverURL,
		Host:           host,
		Registry:       registry,
		ConnectTimeout: timeout,
		Logger:         slog.Default(),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrVerifyFailed, err)
	}
	defer client.Close()

	sigCtx, sigStop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer sigStop()

	ctx, cancel := context.WithTimeout(sigCtx, timeout)
	defer cancel()

	body, err := client.Fetch(ctx, path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrVerifyFailed, err)
	}

	return writeOutput(body)
}
