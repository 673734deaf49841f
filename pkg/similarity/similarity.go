// file: pkg/similarity/similarity.go
// version: 1.2.0
// guid: 9e4b7c30-1d5a-4e82-bf69-703c2a84d1f5

// Package similarity implements edit-distance and Jaro-Winkler string
// similarity scorers. Every scorer returns a value in [0, 1]: 1.0 means
// identical under the metric, 0.0 means no detected relation. Two empty
// inputs score 1.0, exactly one empty input scores 0.0.
//
// All functions are pure and safe for concurrent use.
package similarity

import (
	"strings"

	"github.com/fzabel/dublette/pkg/textnorm"
)

// DefaultTokenThreshold is the minimum pairwise Jaro-Winkler score for two
// tokens to count as a matched pair in TokenJaroWinkler.
const DefaultTokenThreshold = 0.8

// Options controls pre-processing applied before a score is computed.
// CaseSensitive and Normalize are orthogonal toggles.
type Options struct {
	// CaseSensitive disables the default case folding.
	CaseSensitive bool
	// Normalize strips diacritics before comparison ("Müller" vs "Muller").
	Normalize bool
	// TokenThreshold overrides DefaultTokenThreshold for the token scorers.
	// Zero means default.
	TokenThreshold float64
}

func (o Options) tokenThreshold() float64 {
	if o.TokenThreshold > 0 {
		return o.TokenThreshold
	}
	return DefaultTokenThreshold
}

// prepare applies the configured pre-processing toggles.
func (o Options) prepare(s string) string {
	if !o.CaseSensitive {
		s = strings.ToLower(s)
	}
	if o.Normalize {
		s = textnorm.StripDiacritics(s)
	}
	return s
}

// emptyRule reports whether one or both inputs are empty, and the mandated
// score for that case.
func emptyRule(a, b string) (float64, bool) {
	switch {
	case a == "" && b == "":
		return 1, true
	case a == "" || b == "":
		return 0, true
	}
	return 0, false
}
