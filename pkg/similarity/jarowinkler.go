// file: pkg/similarity/jarowinkler.go
// version: 1.1.0
// guid: c5d08e17-6b2f-4a94-8e03-f71b9264ad38

package similarity

import "github.com/fzabel/dublette/pkg/textnorm"

const (
	winklerPrefixCap = 4
	winklerScale     = 0.1
)

// jaro computes the classic three-term Jaro similarity over rune slices.
func jaro(ra, rb []rune) float64 {
	la, lb := len(ra), len(rb)
	window := max(la, lb)/2 - 1
	if window < 0 {
		window = 0
	}

	aFlags := make([]bool, la)
	bFlags := make([]bool, lb)

	// count matching characters within the window
	matches := 0
	for i := range ra {
		lo := max(0, i-window)
		hi := min(lb-1, i+window)
		for j := lo; j <= hi; j++ {
			if !bFlags[j] && rb[j] == ra[i] {
				aFlags[i] = true
				bFlags[j] = true
				matches++
				break
			}
		}
	}
	if matches == 0 {
		return 0
	}

	// count transpositions between the matched sequences
	transpositions := 0
	k := 0
	for i := range ra {
		if !aFlags[i] {
			continue
		}
		for ; !bFlags[k]; k++ {
		}
		if ra[i] != rb[k] {
			transpositions++
		}
		k++
	}
	transpositions /= 2

	m := float64(matches)
	return (m/float64(la) + m/float64(lb) + (m-float64(transpositions))/m) / 3
}

// Jaro returns the Jaro similarity of a and b after the configured
// pre-processing.
func Jaro(a, b string, opts Options) float64 {
	a, b = opts.prepare(a), opts.prepare(b)
	if score, done := emptyRule(a, b); done {
		return score
	}
	return jaro([]rune(a), []rune(b))
}

// JaroWinkler boosts the Jaro similarity for strings sharing a common
// prefix (capped at 4 characters, scaling factor 0.1). 1.0 only for
// identical strings.
func JaroWinkler(a, b string, opts Options) float64 {
	a, b = opts.prepare(a), opts.prepare(b)
	if score, done := emptyRule(a, b); done {
		return score
	}
	ra, rb := []rune(a), []rune(b)
	j := jaro(ra, rb)

	prefix := 0
	limit := min(winklerPrefixCap, min(len(ra), len(rb)))
	for prefix < limit && ra[prefix] == rb[prefix] {
		prefix++
	}
	return j + float64(prefix)*winklerScale*(1-j)
}

// TokenJaroWinkler splits both inputs on whitespace and greedily pairs each
// token from the shorter-scored side with its best unused counterpart by
// pairwise Jaro-Winkler. Pairs scoring at or above the token threshold count
// as matched; the result is matched/max(tokenCountA, tokenCountB).
//
// Designed for multi-word fields (company names, street addresses) where
// word order or an extra middle token should not crater the score.
func TokenJaroWinkler(a, b string, opts Options) float64 {
	tokensA := textnorm.Tokens(opts.prepare(a))
	tokensB := textnorm.Tokens(opts.prepare(b))
	if len(tokensA) == 0 && len(tokensB) == 0 {
		return 1
	}
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	threshold := opts.tokenThreshold()
	used := make([]bool, len(tokensB))
	matched := 0
	for _, ta := range tokensA {
		best := -1
		bestScore := 0.0
		for j, tb := range tokensB {
			if used[j] {
				continue
			}
			if s := JaroWinkler(ta, tb, opts); s > bestScore {
				best, bestScore = j, s
			}
		}
		if best >= 0 && bestScore >= threshold {
			used[best] = true
			matched++
		}
	}
	return float64(matched) / float64(max(len(tokensA), len(tokensB)))
}
