// file: pkg/phonetic/phonetic.go
// version: 1.2.0
// guid: 6f2c8b41-9d07-4a53-be86-1e74d0a9c325

// Package phonetic implements three interchangeable phonetic encoders —
// Cologne Phonetic (Kölner Phonetik, the primary algorithm for DACH-region
// name data), Soundex, and a simplified Metaphone — plus code-based and
// token-based similarity scoring on top of them.
//
// A phonetic code is a short deterministic fingerprint intended to collide
// for words that sound alike despite differing spellings. Codes have no
// identity beyond their algorithm and input; nothing here caches or holds
// state, and every function is safe for concurrent use.
package phonetic

import (
	"fmt"
	"strings"

	"github.com/fzabel/dublette/pkg/textnorm"
)

// Algorithm selects one of the three encoders. The zero value is Cologne.
type Algorithm int

const (
	// Cologne is the Kölner Phonetik, tuned for German-language names.
	Cologne Algorithm = iota
	// Soundex is the classic 4-character English surname code.
	Soundex
	// Metaphone is a simplified Double-Metaphone variant.
	Metaphone
)

// String returns the identifier accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	switch a {
	case Cologne:
		return "cologne"
	case Soundex:
		return "soundex"
	case Metaphone:
		return "metaphone"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps an identifier to its Algorithm. Unknown identifiers
// are a configuration error, not a silent fallback.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cologne", "koelner", "kölner":
		return Cologne, nil
	case "soundex":
		return Soundex, nil
	case "metaphone":
		return Metaphone, nil
	}
	return Cologne, fmt.Errorf("unknown phonetic algorithm %q", s)
}

// Encode runs the selected encoder over s.
func Encode(alg Algorithm, s string) string {
	switch alg {
	case Soundex:
		return EncodeSoundex(s)
	case Metaphone:
		return EncodeMetaphone(s)
	default:
		return EncodeCologne(s)
	}
}

// Similarity scores two strings by their phonetic codes: 1.0 when the codes
// are equal, otherwise a positional match ratio over the shorter code's
// positions divided by the longer length, plus a prefix bonus of
// 0.1 * sharedPrefix/minLen, capped at 1.0. Two empty codes score 1.0, one
// empty code scores 0.0.
func Similarity(a, b string, alg Algorithm) float64 {
	return codeSimilarity(Encode(alg, a), Encode(alg, b))
}

func codeSimilarity(ca, cb string) float64 {
	switch {
	case ca == "" && cb == "":
		return 1
	case ca == "" || cb == "":
		return 0
	case ca == cb:
		return 1
	}

	minLen := min(len(ca), len(cb))
	maxLen := max(len(ca), len(cb))
	matches := 0
	prefix := 0
	for i := 0; i < minLen; i++ {
		if ca[i] == cb[i] {
			matches++
			if prefix == i {
				prefix++
			}
		}
	}
	score := float64(matches)/float64(maxLen) + 0.1*float64(prefix)/float64(minLen)
	return min(score, 1)
}

// TokenSimilarity tokenizes both strings on whitespace, encodes every token,
// and greedily pairs tokens with exactly equal codes (each token used at
// most once). The score is matched/max(tokenCountA, tokenCountB).
func TokenSimilarity(a, b string, alg Algorithm) float64 {
	tokensA := textnorm.Tokens(a)
	tokensB := textnorm.Tokens(b)
	if len(tokensA) == 0 && len(tokensB) == 0 {
		return 1
	}
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	codesB := make([]string, len(tokensB))
	for j, tb := range tokensB {
		codesB[j] = Encode(alg, tb)
	}
	used := make([]bool, len(tokensB))
	matched := 0
	for _, ta := range tokensA {
		code := Encode(alg, ta)
		if code == "" {
			continue
		}
		for j := range codesB {
			if !used[j] && codesB[j] == code {
				used[j] = true
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(max(len(tokensA), len(tokensB)))
}
