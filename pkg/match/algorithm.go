// file: pkg/match/algorithm.go
// version: 1.2.0
// guid: 91c4e7a0-2d58-4f36-b9c1-07e5a3d862f4

package match

import (
	"fmt"
	"strings"

	"github.com/fzabel/dublette/pkg/phonetic"
)

// Algorithm is the closed set of field comparison algorithms. Using a typed
// enum instead of free-form strings keeps the dispatch in FieldSimilarity
// exhaustive; typos surface as errors from ParseAlgorithm, never as silently
// changed scoring behavior.
type Algorithm int

const (
	// Exact is plain string equality, case-insensitive by default.
	Exact Algorithm = iota
	// Levenshtein is edit-distance similarity.
	Levenshtein
	// Damerau is edit-distance similarity with adjacent-transposition tolerance.
	Damerau
	// JaroWinkler is prefix-boosted Jaro similarity, tuned for short names.
	JaroWinkler
	// TokenJaro matches multi-word fields token-by-token via Jaro-Winkler.
	TokenJaro
	// Phonetic compares phonetic codes (Cologne by default).
	Phonetic
	// TokenPhonetic matches multi-word fields by per-token phonetic codes.
	TokenPhonetic
	// Numeric compares parsed numbers with a relative tolerance.
	Numeric
	// Date compares parsed calendar timestamps by proximity.
	Date
	// Composite blends Jaro-Winkler, Levenshtein, and phonetic similarity.
	Composite
)

var algorithmNames = map[Algorithm]string{
	Exact:         "exact",
	Levenshtein:   "levenshtein",
	Damerau:       "damerau",
	JaroWinkler:   "jaro_winkler",
	TokenJaro:     "token_jaro",
	Phonetic:      "phonetic",
	TokenPhonetic: "token_phonetic",
	Numeric:       "numeric",
	Date:          "date",
	Composite:     "composite",
}

// String returns the identifier accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps an identifier to its Algorithm. Unknown identifiers
// return an error so misconfigured field sets fail at setup time.
func ParseAlgorithm(s string) (Algorithm, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for alg, name := range algorithmNames {
		if name == needle {
			return alg, nil
		}
	}
	return Exact, fmt.Errorf("unknown match algorithm %q", s)
}

// Options carries the per-algorithm knobs of a field configuration. The zero
// value is valid for every algorithm.
type Options struct {
	// CaseSensitive disables case folding for the string algorithms.
	CaseSensitive bool
	// Normalize strips diacritics before string comparison.
	Normalize bool
	// Phonetic selects the encoder for Phonetic, TokenPhonetic, and the
	// phonetic leg of Composite. Defaults to Cologne.
	Phonetic phonetic.Algorithm
	// TokenThreshold is the minimum per-token Jaro-Winkler score counted as
	// a match by TokenJaro. Zero means 0.8.
	TokenThreshold float64
	// NumericTolerance is the relative difference accepted as a full match
	// by Numeric. Zero means exact equality only.
	NumericTolerance float64
	// RequiredThreshold is the score below which a required field vetoes the
	// whole record comparison. Zero means DefaultRequiredThreshold.
	RequiredThreshold float64
}

func (o Options) requiredThreshold() float64 {
	if o.RequiredThreshold > 0 {
		return o.RequiredThreshold
	}
	return DefaultRequiredThreshold
}
