// file: pkg/similarity/levenshtein_test.go
// version: 1.0.0
// guid: 8a3d6f29-0c74-4e15-9b82-d5f0e7a1c643

package similarity

import (
	"math"
	"testing"
)

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"abc", "abc", 0},
		{"Müller", "Muller", 1}, // ü is one rune, one substitution
	}
	for _, tt := range tests {
		if got := LevenshteinDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("LevenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDamerauLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abcd", "abdc", 1}, // adjacent transposition is one edit
		{"schmidt", "shcmidt", 1},
		{"kitten", "sitting", 3},
		{"abc", "abc", 0},
	}
	for _, tt := range tests {
		if got := DamerauLevenshteinDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("DamerauLevenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLevenshteinSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		opts Options
		want float64
	}{
		{"both empty", "", "", Options{}, 1},
		{"one empty", "abc", "", Options{}, 0},
		{"identical", "schmidt", "schmidt", Options{}, 1},
		{"case folded", "Schmidt", "SCHMIDT", Options{}, 1},
		{"case sensitive", "abc", "ABC", Options{CaseSensitive: true}, 0},
		{"kitten sitting", "kitten", "sitting", Options{}, 1 - 3.0/7.0},
		{"normalized umlaut", "Müller", "Muller", Options{Normalize: true}, 1},
	}
	for _, tt := range tests {
		got := Levenshtein(tt.a, tt.b, tt.opts)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: Levenshtein(%q, %q) = %v, want %v", tt.name, tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDamerauBeatsLevenshteinOnSwaps(t *testing.T) {
	a, b := "schmidt", "shcmidt"
	lev := Levenshtein(a, b, Options{})
	dam := DamerauLevenshtein(a, b, Options{})
	if dam <= lev {
		t.Errorf("DamerauLevenshtein(%v) should exceed Levenshtein(%v) on a swap", dam, lev)
	}
	if want := 1 - 1.0/7.0; math.Abs(dam-want) > 1e-9 {
		t.Errorf("DamerauLevenshtein = %v, want %v", dam, want)
	}
}

func TestEditDistanceSymmetryAndBounds(t *testing.T) {
	pairs := [][2]string{
		{"Meyer", "Maier"},
		{"", "nonempty"},
		{"a", "completely different words"},
		{"Müller GmbH", "Mueller GmbH"},
	}
	for _, p := range pairs {
		for _, f := range []func(a, b string, o Options) float64{Levenshtein, DamerauLevenshtein} {
			ab := f(p[0], p[1], Options{})
			ba := f(p[1], p[0], Options{})
			if ab != ba {
				t.Errorf("asymmetric score for %q/%q: %v vs %v", p[0], p[1], ab, ba)
			}
			if ab < 0 || ab > 1 {
				t.Errorf("score out of bounds for %q/%q: %v", p[0], p[1], ab)
			}
		}
	}
}
