// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package pinguard

import "github.com/jeremyhahn/go-pinguard/pkg/hostmatch"

// ProvideStatus is the outcome of a client identity lookup.
type ProvideStatus string

const (
	ProvideSuccess         ProvideStatus = "success"
	ProvideRenewalRequired ProvideStatus = "renewal_required"
	ProvideUnavailable     ProvideStatus = "unavailable"
)

// IdentityResponse is a provider's answer for one host. Identity is an
// opaque handle the host platform understands; Chain optionally carries the
// identity's certificate chain in DER, leaf first.
type IdentityResponse struct {
	Status   ProvideStatus
	Identity any
	Chain    [][]byte
}

// IdentityProvider supplies the client identity to present to a host during
// mutual TLS. Providers are invoked on the evaluating goroutine.
type IdentityProvider func(host string) IdentityResponse

// ProvideClientIdentity asks the current environment's provider for the
// identity to present to host. A renewal-required response triggers the
// environment's renewal callback before reporting the identity missing.
func (r *Registry) ProvideClientIdentity(host string) IdentityResponse {
	config := r.config.Load()
	h := hostmatch.Normalize(host)

	missing := func() IdentityResponse {
		if config.TelemetrySink != nil {
			config.TelemetrySink(MTLSIdentityMissing{Host: h})
		}
		return IdentityResponse{Status: ProvideUnavailable}
	}

	env, ok := config.Environments[config.Current]
	if !ok || env.MTLSProvider == nil {
		return missing()
	}

	resp := env.MTLSProvider(h)
	switch resp.Status {
	case ProvideSuccess:
		if config.TelemetrySink != nil {
			config.TelemetrySink(MTLSIdentityUsed{Host: h})
		}
		return resp
	case ProvideRenewalRequired:
		if env.OnRenewalRequired != nil {
			env.OnRenewalRequired(h)
		}
		return missing()
	default:
		return missing()
	}
}
