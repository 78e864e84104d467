// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

// Package certinfo extracts redacted, best-effort telemetry fields from
// certificates: privacy-safe common names and a Subject Alternative Name
// count scraped directly from raw DER. Nothing here is a trust input; all
// functions degrade to empty results on malformed data instead of failing.
package certinfo

import (
	"bytes"
	"strings"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

// sanOID is the DER encoding of id-ce-subjectAltName (2.5.29.17).
var sanOID = []byte{0x06, 0x03, 0x55, 0x1d, 0x11}

// Redact reduces a subject name to "*." plus its last two dot-separated
// labels, lowercased. Names with fewer than two labels redact to the empty
// string.
func Redact(name string) string {
	labels := strings.Split(strings.ToLower(name), ".")
	if len(labels) < 2 {
		return ""
	}
	return "*." + strings.Join(labels[len(labels)-2:], ".")
}

// IssuerIndex locates the certificate immediately following the leaf in a
// chain of DER-encoded certificates, matching the leaf by byte equality.
// When the leaf is not found but the chain has at least two entries, index 1
// is assumed. Returns -1 when no issuer candidate exists.
func IssuerIndex(leafDER []byte, chainDER [][]byte) int {
	for i, der := range chainDER {
		if bytes.Equal(der, leafDER) {
			if i+1 < len(chainDER) {
				return i + 1
			}
			return -1
		}
	}
	if len(chainDER) >= 2 {
		return 1
	}
	return -1
}

// CountSubjectAltNames scans raw certificate DER for subjectAltName
// extensions and counts the GeneralName entries of the largest one that
// parses. Malformed or absent extensions yield 0. The scan never reads out
// of bounds and never panics, whatever the input.
func CountSubjectAltNames(der []byte) int {
	best := 0
	for i := 0; ; {
		rel := bytes.Index(der[i:], sanOID)
		if rel < 0 {
			break
		}
		i += rel + len(sanOID)
		if n, ok := parseSANExtension(der[i:]); ok && n > best {
			best = n
		}
	}
	return best
}

// parseSANExtension parses the remainder of an X.509 extension after its
// OID: an optional BOOLEAN critical flag, then an OCTET STRING wrapping the
// SEQUENCE of GeneralName choices. Returns the element count.
func parseSANExtension(rest []byte) (int, bool) {
	s := cryptobyte.String(rest)
	if s.PeekASN1Tag(asn1.BOOLEAN) {
		var critical bool
		if !s.ReadASN1Boolean(&critical) {
			return 0, false
		}
	}
	var value cryptobyte.String
	if !s.ReadASN1(&value, asn1.OCTET_STRING) {
		return 0, false
	}
	var names cryptobyte.String
	if !value.ReadASN1(&names, asn1.SEQUENCE) {
		return 0, false
	}
	count := 0
	for !names.Empty() {
		var name cryptobyte.String
		var tag asn1.Tag
		if !names.ReadAnyASN1Element(&name, &tag) {
			return 0, false
		}
		count++
	}
	return count, true
}
