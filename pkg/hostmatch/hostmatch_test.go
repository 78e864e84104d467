// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package hostmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "example.com", Normalize("EXAMPLE.COM"))
	assert.Equal(t, "example.com", Normalize(".example.com"))
	assert.Equal(t, "example.com", Normalize("example.com."))
	assert.Equal(t, "example.com", Normalize("...Example.Com..."))
	assert.Equal(t, "", Normalize("..."))
	assert.Equal(t, "", Normalize(""))
}

func TestWildcard_MatchesOneExtraLabel(t *testing.T) {
	p := Wildcard("example.com")

	assert.True(t, p.Matches("api.example.com"))
	assert.False(t, p.Matches("example.com"))
	assert.False(t, p.Matches("a.b.example.com"))
	assert.False(t, p.Matches("api.example.org"))
}

func TestExact_CaseInsensitive(t *testing.T) {
	p := Exact("api.example.com")

	assert.True(t, p.Matches("API.EXAMPLE.COM"))
	assert.True(t, p.Matches("api.example.com"))
	assert.False(t, p.Matches("www.example.com"))
}

func TestMatches_DotVariantsEquivalent(t *testing.T) {
	for _, p := range []Pattern{Exact("example.com"), Wildcard("com")} {
		want := p.Matches("example.com")
		assert.Equal(t, want, p.Matches(".example.com"), "pattern %s", p)
		assert.Equal(t, want, p.Matches("example.com."), "pattern %s", p)
	}
}

func TestMatches_EmptyHost(t *testing.T) {
	assert.False(t, Exact("").Matches(""))
	assert.False(t, Exact("example.com").Matches("..."))
	assert.False(t, Wildcard("example.com").Matches(""))
}

func TestWildcard_EmptySuffixMatchesNothing(t *testing.T) {
	p := Parse("*..")

	assert.True(t, p.IsWildcard())
	assert.False(t, p.Matches("example"))
	assert.False(t, p.Matches("example.com"))
}

func TestParse(t *testing.T) {
	cases := []struct {
		raw      string
		wildcard bool
		suffix   string
	}{
		{"example.com", false, "example.com"},
		{"*.example.com", true, "example.com"},
		{"*.Example.COM.", true, "example.com"},
		{".api.example.com", false, "api.example.com"},
		{"*.*.example.com", true, "*.example.com"},
	}
	for _, tc := range cases {
		p := Parse(tc.raw)
		assert.Equal(t, tc.wildcard, p.IsWildcard(), "raw %q", tc.raw)
		assert.Equal(t, tc.suffix, p.Suffix(), "raw %q", tc.raw)
	}
}

func TestRawValue_RoundTrip(t *testing.T) {
	for _, raw := range []string{"example.com", "*.example.com", "api.internal"} {
		p := Parse(raw)
		assert.Equal(t, raw, p.RawValue())
		assert.Equal(t, p, Parse(p.RawValue()))
	}
}

func TestPattern_TextMarshaling(t *testing.T) {
	p := Wildcard("example.com")

	text, err := p.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "*.example.com", string(text))

	var decoded Pattern
	assert.NoError(t, decoded.UnmarshalText(text))
	assert.Equal(t, p, decoded)
}

func TestSpecificity(t *testing.T) {
	assert.Greater(t,
		Wildcard("internal.example.com").Specificity(),
		Wildcard("example.com").Specificity())
}
