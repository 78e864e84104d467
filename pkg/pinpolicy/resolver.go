// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package pinpolicy

import "github.com/jeremyhahn/go-pinguard/pkg/hostmatch"

// Resolve picks the single policy applying to the given hostname:
// the first matching exact pattern; otherwise the matching wildcard with the
// longest suffix (first declared wins ties); otherwise the set's default
// policy. Returns nil for an empty hostname or when nothing applies and no
// default is set.
func (s *PolicySet) Resolve(host string) *Policy {
	if s == nil {
		return nil
	}
	h := hostmatch.Normalize(host)
	if h == "" {
		return nil
	}

	var best *HostPolicy
	for i := range s.Policies {
		hp := &s.Policies[i]
		if !hp.Pattern.Matches(h) {
			continue
		}
		if !hp.Pattern.IsWildcard() {
			return &hp.Policy
		}
		if best == nil || hp.Pattern.Specificity() > best.Pattern.Specificity() {
			best = hp
		}
	}
	if best != nil {
		return &best.Policy
	}
	return s.DefaultPolicy
}
