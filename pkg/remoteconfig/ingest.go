// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package remoteconfig

import (
	"fmt"
	"log/slog"

	"github.com/jeremyhahn/go-pinguard/pkg/pinguard"
	"github.com/jeremyhahn/go-pinguard/pkg/pinpolicy"
)

// Ingestor verifies signed policy blobs and installs the decoded policy set
// into one environment of a registry.
type Ingestor struct {
	registry *pinguard.Registry
	verifier Verifier
	logger   *slog.Logger
}

// NewIngestor builds an ingestor for registry using verifier. A nil logger
// falls back to slog's default.
func NewIngestor(registry *pinguard.Registry, verifier Verifier, logger *slog.Logger) *Ingestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ingestor{
		registry: registry,
		verifier: verifier,
		logger:   logger.With("component", "remoteconfig"),
	}
}

// Ingest verifies the blob, decodes its payload as a JSON policy set,
// validates it and installs it for env. Verification strictly precedes
// parsing; an unverified payload is never decoded.
func (i *Ingestor) Ingest(env pinguard.Environment, blob Blob) error {
	if i.verifier == nil || !i.verifier.Verify(blob) {
		i.logger.Warn("rejected policy blob",
			"environment", string(env),
			"scheme", string(blob.Type.Scheme),
			"id", blob.Type.ID)
		return ErrVerificationFailed
	}

	set, err := pinpolicy.DecodeJSON(blob.Payload)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}
	if err := set.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}

	i.registry.Configure(func(b *pinguard.Builder) {
		cfg := b.Environment(env)
		cfg.PolicySet = set
		b.SetEnvironment(env, cfg)
	})

	i.logger.Info("installed policy set",
		"environment", string(env),
		"policies", len(set.Policies))
	return nil
}

// IngestBytes decodes raw blob bytes and ingests the result.
func (i *Ingestor) IngestBytes(env pinguard.Environment, data []byte) error {
	blob, err := DecodeBlob(data)
	if err != nil {
		return err
	}
	return i.Ingest(env, blob)
}
