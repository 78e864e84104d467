// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package pinpolicy

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jeremyhahn/go-pinguard/pkg/hostmatch"
)

// EncodeJSON renders the policy set in the canonical JSON policy-data
// encoding. Host patterns serialise as their raw string form.
func EncodeJSON(s *PolicySet) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("pinpolicy: encode: %w", err)
	}
	return data, nil
}

// DecodeJSON parses a policy set from its canonical JSON encoding. The
// result is not validated; call Validate to reject malformed pins eagerly.
func DecodeJSON(data []byte) (*PolicySet, error) {
	var s PolicySet
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}
	return &s, nil
}

// YAML wire form. Field names mirror the JSON encoding through explicit yaml
// tags, and host patterns pass through an explicit string field.
type yamlPin struct {
	Type  string `yaml:"type"`
	Hash  string `yaml:"hash"`
	Role  string `yaml:"role"`
	Scope string `yaml:"scope"`
}

type yamlPolicy struct {
	Pins                     []yamlPin `yaml:"pins"`
	FailStrategy             string    `yaml:"failStrategy"`
	RequireSystemTrust       bool      `yaml:"requireSystemTrust"`
	AllowSystemTrustFallback bool      `yaml:"allowSystemTrustFallback"`
}

type yamlHostPolicy struct {
	Pattern string     `yaml:"pattern"`
	Policy  yamlPolicy `yaml:"policy"`
}

type yamlPolicySet struct {
	Policies      []yamlHostPolicy `yaml:"policies"`
	DefaultPolicy *yamlPolicy      `yaml:"defaultPolicy,omitempty"`
}

// DecodeYAML parses a policy set from its YAML file form.
func DecodeYAML(data []byte) (*PolicySet, error) {
	var w yamlPolicySet
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}
	s := &PolicySet{}
	for _, hp := range w.Policies {
		s.Policies = append(s.Policies, HostPolicy{
			Pattern: hostmatch.Parse(hp.Pattern),
			Policy:  hp.Policy.policy(),
		})
	}
	if w.DefaultPolicy != nil {
		def := w.DefaultPolicy.policy()
		s.DefaultPolicy = &def
	}
	return s, nil
}

// EncodeYAML renders the policy set in its YAML file form.
func EncodeYAML(s *PolicySet) ([]byte, error) {
	w := yamlPolicySet{}
	for _, hp := range s.Policies {
		w.Policies = append(w.Policies, yamlHostPolicy{
			Pattern: hp.Pattern.RawValue(),
			Policy:  toYAMLPolicy(hp.Policy),
		})
	}
	if s.DefaultPolicy != nil {
		def := toYAMLPolicy(*s.DefaultPolicy)
		w.DefaultPolicy = &def
	}
	data, err := yaml.Marshal(&w)
	if err != nil {
		return nil, fmt.Errorf("pinpolicy: encode: %w", err)
	}
	return data, nil
}

func (p yamlPolicy) policy() Policy {
	out := Policy{
		FailStrategy:             FailStrategy(p.FailStrategy),
		RequireSystemTrust:       p.RequireSystemTrust,
		AllowSystemTrustFallback: p.AllowSystemTrustFallback,
	}
	for _, pin := range p.Pins {
		out.Pins = append(out.Pins, Pin{
			Type:  PinType(pin.Type),
			Hash:  pin.Hash,
			Role:  PinRole(pin.Role),
			Scope: PinScope(pin.Scope),
		})
	}
	return out
}

func toYAMLPolicy(p Policy) yamlPolicy {
	out := yamlPolicy{
		FailStrategy:             string(p.FailStrategy),
		RequireSystemTrust:       p.RequireSystemTrust,
		AllowSystemTrustFallback: p.AllowSystemTrustFallback,
	}
	for _, pin := range p.Pins {
		out.Pins = append(out.Pins, yamlPin{
			Type:  string(pin.Type),
			Hash:  pin.Hash,
			Role:  string(pin.Role),
			Scope: string(pin.Scope),
		})
	}
	return out
}
