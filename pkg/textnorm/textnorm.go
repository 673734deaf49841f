// file: pkg/textnorm/textnorm.go
// version: 1.1.0
// guid: 4c8f2a1d-9b3e-4f70-a6c2-8d51e0b7f394

// Package textnorm provides the shared text-cleanup primitives used by the
// similarity scorers and phonetic encoders. All functions are pure and safe
// for concurrent use.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes combined characters (NFD) and removes the combining
// diacritical marks, then recomposes. "Jürgen" becomes "Jurgen".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripDiacritics removes accents and other combining marks from s.
func StripDiacritics(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return out
}

// Normalize uppercases s, strips diacritics, and removes every character
// outside A-Z. Empty or all-non-letter input yields the empty string, which
// callers treat as "no signal".
func Normalize(s string) string {
	s = StripDiacritics(strings.ToUpper(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}

// Fold lowercases s and strips diacritics, keeping digits and interior
// whitespace. Used for case-insensitive comparison of multi-word fields.
func Fold(s string) string {
	return strings.TrimSpace(StripDiacritics(strings.ToLower(s)))
}

// Tokens splits s into its whitespace-delimited tokens.
func Tokens(s string) []string {
	return strings.Fields(s)
}
