// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package main

import (
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-pinguard/pkg/pinhash"
)

// pinCmd is the parent command for pin computation.
var pinCmd = &cobra.Command{
	Use:   "pin",
	Short: "Pin computation",
	Long: `Tools for computing certificate pins.

Subcommands:
  show - Compute and display the SPKI and certificate pins of a certificate file`,
}

// pinShowCmd computes and displays the pins of a certificate file.
var pinShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show SPKI and certificate pins of a certificate file",
	Long: `Compute and display the base64-encoded SHA-256 pins of every certificate
in a PEM or DER file: the SubjectPublicKeyInfo pin used for SPKI pinning and
the full-certificate pin used for certificate pinning.`,
	RunE: runPinShow,
}

func init() {
	pinCmd.AddCommand(pinShowCmd)

	pinShowCmd.Flags().String("cert-file", "", "path to PEM or DER certificate file (required)")
}

// runPinShow computes and displays the pins for every certificate in the file.
func runPinShow(cmd *cobra.Command, args []string) error {
	certFile, _ := cmd.Flags().GetString("cert-file")

	if certFile == "" {
		return fmt.Errorf("%w: --cert-file is required", ErrInvalidInput)
	}

	certs, err := loadCertificates(certFile)
	if err != nil {
		return err
	}

	for i, cert := range certs {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("Subject:          %s\n", cert.Subject.String())
		fmt.Printf("Issuer:           %s\n", cert.Issuer.String())
		fmt.Printf("SPKI SHA-256:     %s\n", pinhash.SPKIHashFromDER(cert.RawSubjectPublicKeyInfo))
		fmt.Printf("Cert SHA-256:     %s\n", pinhash.CertificateHash(cert.Raw))
	}
	return nil
}

// loadCertificates reads every certificate from a PEM file, falling back to
// a single raw DER certificate when the file holds no PEM blocks.
func loadCertificates(path string) ([]*x509.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileOperation, err)
	}

	var certs []*x509.Certificate
	rest := data
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		if block.Type != "CERTIFICATE" {
			continue
		}
		cert, parseErr := x509.ParseCertificate(block.Bytes)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrCertificateLoad, parseErr)
		}
		certs = append(certs, cert)
	}

	if len(certs) == 0 {
		cert, parseErr := x509.ParseCertificate(data)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: no certificates in %s", ErrCertificateLoad, path)
		}
		certs = append(certs, cert)
	}
	return certs, nil
}
