// file: pkg/match/field.go
// version: 1.3.0
// guid: d06a3f81-7c29-4e54-a1b8-92e4f5d0c763

package match

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fzabel/dublette/pkg/phonetic"
	"github.com/fzabel/dublette/pkg/similarity"
)

// dateLayouts are tried in order. The day-first forms cover the DACH-region
// records this engine was tuned on.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"02.01.2006",
	"02/01/2006",
}

// FieldSimilarity scores two field values under the given algorithm and
// options. Null handling precedes dispatch: two nil values score 1.0,
// exactly one nil scores 0.0. The result is always in [0, 1] and the call
// never fails; unparseable numeric or date input scores 0.
func FieldSimilarity(v1, v2 any, alg Algorithm, opts Options) float64 {
	if v1 == nil && v2 == nil {
		return 1
	}
	if v1 == nil || v2 == nil {
		return 0
	}

	s1, s2 := stringify(v1), stringify(v2)
	simOpts := similarity.Options{
		CaseSensitive:  opts.CaseSensitive,
		Normalize:      opts.Normalize,
		TokenThreshold: opts.TokenThreshold,
	}

	switch alg {
	case Exact:
		if opts.CaseSensitive {
			if s1 == s2 {
				return 1
			}
			return 0
		}
		if strings.EqualFold(s1, s2) {
			return 1
		}
		return 0
	case Levenshtein:
		return similarity.Levenshtein(s1, s2, simOpts)
	case Damerau:
		return similarity.DamerauLevenshtein(s1, s2, simOpts)
	case JaroWinkler:
		return similarity.JaroWinkler(s1, s2, simOpts)
	case TokenJaro:
		return similarity.TokenJaroWinkler(s1, s2, simOpts)
	case Phonetic:
		return phonetic.Similarity(s1, s2, opts.Phonetic)
	case TokenPhonetic:
		return phonetic.TokenSimilarity(s1, s2, opts.Phonetic)
	case Numeric:
		return numericSimilarity(s1, s2, opts.NumericTolerance)
	case Date:
		return dateSimilarity(s1, s2)
	case Composite:
		return compositeSimilarity(s1, s2, simOpts, opts.Phonetic)
	}
	// Algorithm is a closed enum; an out-of-range value can only come from
	// a caller casting integers by hand.
	return 0
}

// numericSimilarity strips everything but digits, '.', and '-', parses both
// sides as floats, and scores by relative difference:
// percentDiff = |a-b| / ((|a|+|b|)/2). Within tolerance scores 1, beyond it
// the score decays as 1-percentDiff, floored at 0.
func numericSimilarity(s1, s2 string, tolerance float64) float64 {
	a, ok1 := parseNumeric(s1)
	b, ok2 := parseNumeric(s2)
	if !ok1 || !ok2 {
		return 0
	}
	if a == b {
		return 1
	}
	percentDiff := math.Abs(a-b) / ((math.Abs(a) + math.Abs(b)) / 2)
	if percentDiff <= tolerance {
		return 1
	}
	return math.Max(0, 1-percentDiff)
}

func parseNumeric(s string) (float64, bool) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// dateSimilarity parses both sides as calendar timestamps and scores by
// proximity: same instant or same calendar day scores 1, then the score
// drops in discrete steps with the elapsed gap. Unparseable input scores 0.
func dateSimilarity(s1, s2 string) float64 {
	t1, ok1 := parseDate(s1)
	t2, ok2 := parseDate(s2)
	if !ok1 || !ok2 {
		return 0
	}
	if t1.Equal(t2) {
		return 1
	}
	y1, m1, d1 := t1.Date()
	y2, m2, d2 := t2.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return 1
	}
	days := math.Abs(t1.Sub(t2).Hours()) / 24
	switch {
	case days <= 7:
		return 0.9
	case days <= 30:
		return 0.7
	case days <= 365:
		return 0.5
	default:
		return 0.3
	}
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// compositeSimilarity blends Jaro-Winkler, Levenshtein, and phonetic
// similarity on the same pair, weighting the metrics 0.5/0.3/0.2 in
// descending score order. A single metric's blind spot (a phonetic
// collision on unrelated words, say) cannot dominate the blend.
func compositeSimilarity(s1, s2 string, simOpts similarity.Options, enc phonetic.Algorithm) float64 {
	scores := []float64{
		similarity.JaroWinkler(s1, s2, simOpts),
		similarity.Levenshtein(s1, s2, simOpts),
		phonetic.Similarity(s1, s2, enc),
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(scores)))
	return 0.5*scores[0] + 0.3*scores[1] + 0.2*scores[2]
}

// stringify renders a field value for the string-based algorithms. JSON
// numbers arrive as float64 and must not pick up scientific notation.
func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", x)
	}
}
