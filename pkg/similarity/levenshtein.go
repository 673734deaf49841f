// file: pkg/similarity/levenshtein.go
// version: 1.1.0
// guid: 2f6a9d84-5c01-4b3e-97d2-e18f4a60c5b7

package similarity

// LevenshteinDistance computes the classic single-character
// insert/delete/substitute edit distance between two rune sequences.
func LevenshteinDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// Single-row DP
	prev := make([]int, lb+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr := make([]int, lb+1)
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev = curr
	}
	return prev[lb]
}

// DamerauLevenshteinDistance is LevenshteinDistance extended with adjacent
// transposition at unit cost (optimal string alignment variant).
func DamerauLevenshteinDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// Three-row DP: prev2 is needed for the transposition case.
	prev2 := make([]int, lb+1)
	prev := make([]int, lb+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr := make([]int, lb+1)
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				curr[j] = min(curr[j], prev2[j-2]+1)
			}
		}
		prev2, prev = prev, curr
	}
	return prev[lb]
}

// Levenshtein converts the edit distance into a similarity score:
// 1 - d/max(len(a), len(b)).
func Levenshtein(a, b string, opts Options) float64 {
	a, b = opts.prepare(a), opts.prepare(b)
	if score, done := emptyRule(a, b); done {
		return score
	}
	d := LevenshteinDistance(a, b)
	return 1 - float64(d)/float64(max(len([]rune(a)), len([]rune(b))))
}

// DamerauLevenshtein is Levenshtein with adjacent-transposition tolerance,
// so a swapped-letter typo ("Shcmidt") costs one edit instead of two.
func DamerauLevenshtein(a, b string, opts Options) float64 {
	a, b = opts.prepare(a), opts.prepare(b)
	if score, done := emptyRule(a, b); done {
		return score
	}
	d := DamerauLevenshteinDistance(a, b)
	return 1 - float64(d)/float64(max(len([]rune(a)), len([]rune(b))))
}
