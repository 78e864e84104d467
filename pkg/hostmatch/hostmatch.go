// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

// Package hostmatch normalises hostnames and matches them against exact and
// single-level wildcard patterns. A wildcard pattern "*.example.com" matches
// exactly one additional left-most label: "api.example.com" matches,
// "example.com" and "a.b.example.com" do not.
package hostmatch

import "strings"

// Normalize lowercases a hostname and strips all leading and trailing dots.
func Normalize(host string) string {
	return strings.Trim(strings.ToLower(host), ".")
}

// Pattern is an exact hostname or a single-level wildcard. The zero value is
// an exact pattern for the empty string, which matches nothing.
type Pattern struct {
	suffix   string
	wildcard bool
}

// Exact returns a pattern that matches only the normalised form of s.
func Exact(s string) Pattern {
	return Pattern{suffix: Normalize(s)}
}

// Wildcard returns a pattern that matches hosts with exactly one label
// prepended to the normalised suffix s.
func Wildcard(s string) Pattern {
	return Pattern{suffix: Normalize(s), wildcard: true}
}

// Parse builds a Pattern from its raw string form. A leading "*." on the raw
// input marks a wildcard; the remainder is then normalised as the suffix, so
// a degenerate input like "*.." yields a wildcard with an empty suffix, which
// matches nothing. Anything else is an exact pattern on the normalised input.
func Parse(raw string) Pattern {
	if rest, ok := strings.CutPrefix(raw, "*."); ok {
		return Wildcard(rest)
	}
	return Exact(raw)
}

// IsWildcard reports whether the pattern is a wildcard.
func (p Pattern) IsWildcard() bool {
	return p.wildcard
}

// Suffix returns the normalised host-label string the pattern was built
// from: the full hostname for exact patterns, the part after "*." for
// wildcards.
func (p Pattern) Suffix() string {
	return p.suffix
}

// Specificity orders wildcard patterns: longer suffixes are more specific.
func (p Pattern) Specificity() int {
	return len(p.suffix)
}

// RawValue returns the canonical string form: the suffix for exact patterns,
// "*." plus the suffix for wildcards.
func (p Pattern) RawValue() string {
	if p.wildcard {
		return "*." + p.suffix
	}
	return p.suffix
}

// String implements fmt.Stringer.
func (p Pattern) String() string {
	return p.RawValue()
}

// Matches reports whether the pattern matches the given hostname. The empty
// hostname matches nothing; a wildcard with an empty suffix matches nothing.
func (p Pattern) Matches(host string) bool {
	h := Normalize(host)
	if h == "" {
		return false
	}
	if !p.wildcard {
		return p.suffix == h
	}
	if p.suffix == "" {
		return false
	}
	suffixLabels := strings.Split(p.suffix, ".")
	hostLabels := strings.Split(h, ".")
	if len(hostLabels) != len(suffixLabels)+1 {
		return false
	}
	for i, label := range suffixLabels {
		if hostLabels[i+1] != label {
			return false
		}
	}
	return true
}

// MarshalText encodes the pattern as its canonical raw value.
func (p Pattern) MarshalText() ([]byte, error) {
	return []byte(p.RawValue()), nil
}

// UnmarshalText parses the pattern from its raw string form.
func (p *Pattern) UnmarshalText(text []byte) error {
	*p = Parse(string(text))
	return nil
}
