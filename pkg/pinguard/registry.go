// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package pinguard

import (
	"sync"
	"sync/atomic"

	"github.com/jeremyhahn/go-pinguard/pkg/pinpolicy"
)

// Environment selects one of the registry's named configuration slots.
type Environment string

const (
	EnvDev  Environment = "dev"
	EnvUAT  Environment = "uat"
	EnvProd Environment = "prod"
)

// EnvironmentConfig is the per-environment configuration payload.
type EnvironmentConfig struct {
	PolicySet         *pinpolicy.PolicySet
	MTLSProvider      IdentityProvider
	OnRenewalRequired func(host string)
}

// Configuration is the registry's complete state. It is replaced wholesale
// on every update; callers must never mutate a Configuration they received
// from the registry.
type Configuration struct {
	Environments  map[Environment]EnvironmentConfig
	Current       Environment
	TelemetrySink EventSink
}

func (c *Configuration) clone() *Configuration {
	next := &Configuration{
		Environments:  make(map[Environment]EnvironmentConfig, len(c.Environments)),
		Current:       c.Current,
		TelemetrySink: c.TelemetrySink,
	}
	for env, cfg := range c.Environments {
		next.Environments[env] = cfg
	}
	return next
}

// Registry holds the live pinning configuration. Reads take a single atomic
// snapshot; updates serialise on a mutex and publish via pointer swap, so
// evaluations in flight keep the configuration they started with.
type Registry struct {
	mu     sync.Mutex
	config atomic.Pointer[Configuration]
}

// NewRegistry returns a registry with an empty configuration selecting the
// production environment.
func NewRegistry() *Registry {
	r := &Registry{}
	r.config.Store(&Configuration{
		Environments: map[Environment]EnvironmentConfig{},
		Current:      EnvProd,
	})
	return r
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Update replaces the registry's configuration. The supplied value is cloned
// before publication.
func (r *Registry) Update(config *Configuration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.config.Store(config.clone())
}

// CurrentConfiguration returns a copy of the live configuration.
func (r *Registry) CurrentConfiguration() *Configuration {
	return r.config.Load().clone()
}

// Builder mutates a pending configuration inside Configure.
type Builder struct {
	config *Configuration
}

// SetCurrent selects the active environment.
func (b *Builder) SetCurrent(env Environment) {
	b.config.Current = env
}

// SetEnvironment installs the configuration for one environment.
func (b *Builder) SetEnvironment(env Environment, cfg EnvironmentConfig) {
	b.config.Environments[env] = cfg
}

// Environment returns the pending configuration for one environment, zero
// when none is registered.
func (b *Builder) Environment(env Environment) EnvironmentConfig {
	return b.config.Environments[env]
}

// SetTelemetrySink installs the sink that receives every engine event.
func (b *Builder) SetTelemetrySink(sink EventSink) {
	b.config.TelemetrySink = sink
}

// Configure applies fn to a copy of the live configuration and publishes the
// result. Concurrent Configure calls serialise; each sees the effects of the
// previous.
func (r *Registry) Configure(fn func(*Builder)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := r.config.Load().clone()
	fn(&Builder{config: next})
	r.config.Store(next)
}

// ActivePolicySet returns the policy set of the current environment, or the
// empty set when none is configured.
func (r *Registry) ActivePolicySet() *pinpolicy.PolicySet {
	config := r.config.Load()
	if cfg, ok := config.Environments[config.Current]; ok && cfg.PolicySet != nil {
		return cfg.PolicySet
	}
	return pinpolicy.Empty()
}

// Evaluate runs the pinning state machine against the current environment's
// policy set using a boolean system trust outcome. The whole evaluation
// observes one configuration snapshot.
func (r *Registry) Evaluate(chain []Certificate, systemTrusted bool, host string) TrustDecision {
	return r.EvaluateOutcome(chain, SystemTrustOutcome{Trusted: systemTrusted}, host)
}

// EvaluateOutcome is Evaluate with a full system trust outcome, carrying the
// platform's error text into fail-closed events.
func (r *Registry) EvaluateOutcome(chain []Certificate, outcome SystemTrustOutcome, host string) TrustDecision {
	config := r.config.Load()
	set := pinpolicy.Empty()
	if cfg, ok := config.Environments[config.Current]; ok && cfg.PolicySet != nil {
		set = cfg.PolicySet
	}
	return Evaluate(set, chain, outcome, host, config.TelemetrySink)
}
