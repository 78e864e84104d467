// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

// Package telemetry provides ready-made event sinks for the pinning engine:
// a structured-logging sink, a Prometheus metrics sink and a fan-out
// combinator. All sinks are safe for concurrent use.
package telemetry

import (
	"context"
	"log/slog"

	"github.com/jeremyhahn/go-pinguard/pkg/pinguard"
)

// Fanout delivers every event to each sink in order. Nil sinks are skipped.
func Fanout(sinks ...pinguard.EventSink) pinguard.EventSink {
	return func(e pinguard.Event) {
		for _, sink := range sinks {
			if sink != nil {
				sink(e)
			}
		}
	}
}

// SlogSink logs every engine event through logger at info level, mismatch
// and failure events at warn. A nil logger falls back to slog's default.
func SlogSink(logger *slog.Logger) pinguard.EventSink {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "pinguard")

	return func(e pinguard.Event) {
		attrs := []any{
			"kind", string(e.Kind()),
			"host", e.Hostname(),
		}

		level := slog.LevelInfo
		switch event := e.(type) {
		case pinguard.SystemTrustEvaluated:
			attrs = append(attrs, "trusted", event.Trusted)
		case pinguard.SystemTrustFailed:
			level = slog.LevelWarn
			if event.Error != "" {
				attrs = append(attrs, "error", event.Error)
			}
		case pinguard.SystemTrustFailedPermissive:
			level = slog.LevelWarn
		case pinguard.ChainSummarized:
			attrs = append(attrs,
				"leaf_cn", event.Summary.LeafCommonName,
				"issuer_cn", event.Summary.IssuerCommonName,
				"san_count", event.Summary.SANCount)
		case pinguard.PinMatched:
			attrs = append(attrs, "matched_pins", len(event.Pins))
		case pinguard.PinMismatch,
			pinguard.PinMismatchAllowedByFallback,
			pinguard.PinMismatchPermissive,
			pinguard.PinSetEmpty,
			pinguard.MTLSIdentityMissing:
			level = slog.LevelWarn
		}

		logger.Log(context.Background(), level, "trust event", attrs...)
	}
}
