// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package telemetry

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jeremyhahn/go-pinguard/pkg/pinguard"
)

// Metrics exports the engine's trust telemetry as Prometheus counters.
type Metrics struct {
	DecisionsTotal *prometheus.CounterVec
	EventsTotal    *prometheus.CounterVec
}

// NewMetrics builds the counter set and registers it with registerer. A nil
// registerer registers with the default registry.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		DecisionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pinguard_decisions_total",
				Help: "Total number of trust decisions, by reason and outcome.",
			},
			[]string{"reason", "trusted"},
		),
		EventsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pinguard_events_total",
				Help: "Total number of engine events, by kind.",
			},
			[]string{"kind"},
		),
	}
	registerer.MustRegister(m.DecisionsTotal, m.EventsTotal)
	return m
}

// Sink returns an event sink that counts every event by kind.
func (m *Metrics) Sink() pinguard.EventSink {
	return func(e pinguard.Event) {
		m.EventsTotal.WithLabelValues(string(e.Kind())).Inc()
	}
}

// ObserveDecision counts one trust decision.
func (m *Metrics) ObserveDecision(decision pinguard.TrustDecision) {
	m.DecisionsTotal.WithLabelValues(
		string(decision.Reason),
		strconv.FormatBool(decision.Trusted),
	).Inc()
}
