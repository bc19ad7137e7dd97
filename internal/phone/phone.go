// Package phone normalizes contact numbers so that history rows and leads
// match regardless of the formatting the source used.
package phone

import "strings"

// Normalize strips every non-digit character. "+1 (555) 010-2030" and
// "15550102030" normalize to the same key.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Last10 returns the trailing 10 digits of a normalized number, or the whole
// number when shorter. Country-code prefixes differ between the call log and
// the remote CRM, so cross-region matching compares on this suffix.
func Last10(normalized string) string {
	if len(normalized) <= 10 {
		return normalized
	}
	return normalized[len(normalized)-10:]
}

// Same reports whether two raw numbers refer to the same line: exact match
// after normalization, or matching last-10-digit suffixes when both are long
// enough for the suffix to be meaningful.
func Same(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}
	return len(na) >= 10 && len(nb) >= 10 && Last10(na) == Last10(nb)
}
