// file: pkg/match/record.go
// version: 1.4.0
// guid: 47b8e2d5-0f93-4a61-bc28-56f1a9d30e84

// Package match compares record-like inputs field by field and aggregates
// the per-field scores into an overall match decision. It holds no state:
// every exposed function is a pure computation over its arguments and may be
// called concurrently without synchronization.
package match

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultRequiredThreshold is the score below which a required field vetoes
// the comparison when the field config does not set its own threshold.
const DefaultRequiredThreshold = 0.7

// Record is an opaque keyed structure. Fields are addressed by dot-separated
// paths resolved at comparison time; the engine owns no schema.
type Record = map[string]any

// FieldConfig describes how one field contributes to a record comparison.
type FieldConfig struct {
	// Field is the dot-separated path into both records.
	Field string
	// Weight scales the field's contribution to the overall score. Must be
	// positive.
	Weight float64
	// Algorithm selects the scorer.
	Algorithm Algorithm
	// Options carries the algorithm-specific knobs.
	Options Options
	// Required turns a low score on this field into a hard veto: the overall
	// score is forced to 0, not merely reduced.
	Required bool
	// ExactMatchBonus, when positive, multiplies the field's weighted
	// contribution by (1+bonus) — but only when the field scores exactly 1.0.
	ExactMatchBonus float64
}

// Validate reports configuration errors. Scoring functions assume a
// validated config.
func (c FieldConfig) Validate() error {
	if strings.TrimSpace(c.Field) == "" {
		return fmt.Errorf("field path must not be empty")
	}
	if c.Weight <= 0 {
		return fmt.Errorf("field %q: weight must be positive, got %v", c.Field, c.Weight)
	}
	if c.ExactMatchBonus < 0 {
		return fmt.Errorf("field %q: exact match bonus must not be negative, got %v", c.Field, c.ExactMatchBonus)
	}
	return nil
}

// ValidateConfigs validates every config in the slice.
func ValidateConfigs(cfgs []FieldConfig) error {
	if len(cfgs) == 0 {
		return fmt.Errorf("at least one field config is required")
	}
	for _, c := range cfgs {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Level is the discrete classification derived from the overall score.
type Level int

const (
	LevelNone Level = iota
	LevelLow
	LevelMedium
	LevelHigh
	LevelExact
)

// String returns the lowercase level name.
func (l Level) String() string {
	switch l {
	case LevelExact:
		return "exact"
	case LevelHigh:
		return "high"
	case LevelMedium:
		return "medium"
	case LevelLow:
		return "low"
	default:
		return "none"
	}
}

// LevelForScore maps an overall score onto its Level. Boundaries are closed
// on the low end: exactly 0.95 is exact, exactly 0.50 is low.
func LevelForScore(score float64) Level {
	switch {
	case score >= 0.95:
		return LevelExact
	case score >= 0.85:
		return LevelHigh
	case score >= 0.70:
		return LevelMedium
	case score >= 0.50:
		return LevelLow
	default:
		return LevelNone
	}
}

// Result is the outcome of comparing two records.
type Result struct {
	// OverallScore is the weighted mean of the field scores in [0, 1],
	// forced to 0 when a required field failed.
	OverallScore float64 `json:"overallScore" yaml:"overallScore"`
	// FieldScores maps each configured field path to its score.
	FieldScores map[string]float64 `json:"fieldScores" yaml:"fieldScores"`
	// Level classifies OverallScore.
	Level Level `json:"-" yaml:"-"`
	// MatchLevel is the string form of Level for serialized output.
	MatchLevel string `json:"matchLevel" yaml:"matchLevel"`
	// Confidence is the fraction of configured fields scoring at least 0.8,
	// independent of weights.
	Confidence float64 `json:"confidence" yaml:"confidence"`
	// Flags carries per-field diagnostics: "exact:<field>", "high:<field>",
	// "required_failed:<field>".
	Flags []string `json:"flags,omitempty" yaml:"flags,omitempty"`
}

// ResolveField walks a dot-separated path through rec. A missing segment or
// traversal through a non-map resolves to nil, never an error.
func ResolveField(rec Record, path string) any {
	if rec == nil {
		return nil
	}
	segments := strings.Split(path, ".")
	var current any = rec
	for _, seg := range segments {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = m[seg]
		if !ok {
			return nil
		}
	}
	return current
}

// Compare scores record1 against record2 under the ordered field configs.
//
// Required fields are a veto, not a weight reduction: one required field
// scoring below its threshold forces the overall score to 0 no matter how
// well the other fields match.
func Compare(record1, record2 Record, cfgs []FieldConfig) Result {
	res := Result{FieldScores: make(map[string]float64, len(cfgs))}

	var weightedSum, totalWeight float64
	confident := 0
	requiredFailed := false

	for _, cfg := range cfgs {
		v1 := ResolveField(record1, cfg.Field)
		v2 := ResolveField(record2, cfg.Field)
		score := FieldSimilarity(v1, v2, cfg.Algorithm, cfg.Options)
		res.FieldScores[cfg.Field] = score

		if cfg.Required && score < cfg.Options.requiredThreshold() {
			requiredFailed = true
			res.Flags = append(res.Flags, "required_failed:"+cfg.Field)
		}

		contribution := score
		if score == 1 {
			res.Flags = append(res.Flags, "exact:"+cfg.Field)
			if cfg.ExactMatchBonus > 0 {
				contribution = score * (1 + cfg.ExactMatchBonus)
			}
		} else if score >= 0.9 {
			res.Flags = append(res.Flags, "high:"+cfg.Field)
		}
		weightedSum += cfg.Weight * contribution
		totalWeight += cfg.Weight

		if score >= 0.8 {
			confident++
		}
	}

	switch {
	case requiredFailed:
		res.OverallScore = 0
	case totalWeight > 0:
		// The exact-match bonus can push the mean past 1; the score range
		// stays [0, 1].
		res.OverallScore = min(weightedSum/totalWeight, 1)
	}
	res.Level = LevelForScore(res.OverallScore)
	res.MatchLevel = res.Level.String()
	if len(cfgs) > 0 {
		res.Confidence = float64(confident) / float64(len(cfgs))
	}
	return res
}

// Candidate is one scored entry from FindMatches.
type Candidate struct {
	// Index points into the candidates slice passed to FindMatches.
	Index  int    `json:"index" yaml:"index"`
	Result Result `json:"result" yaml:"result"`
}

// FindMatches compares target against every candidate and returns the ones
// scoring at least minScore, sorted by overall score descending. Ties keep
// candidate order, so equal inputs produce equal output.
func FindMatches(target Record, candidates []Record, cfgs []FieldConfig, minScore float64) []Candidate {
	var out []Candidate
	for i, cand := range candidates {
		r := Compare(target, cand, cfgs)
		if r.OverallScore >= minScore {
			out = append(out, Candidate{Index: i, Result: r})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Result.OverallScore > out[j].Result.OverallScore
	})
	return out
}

// Pair is one scored record pair from FindDuplicates; I < J index into the
// input slice.
type Pair struct {
	I      int    `json:"i" yaml:"i"`
	J      int    `json:"j" yaml:"j"`
	Result Result `json:"result" yaml:"result"`
}

// FindDuplicates performs the full pairwise comparison over records and
// returns every pair scoring at least minScore, sorted by score descending
// with (I, J) as the tie break — identical input always yields identical
// output. The scan is O(n²); callers with large sets should pre-block
// records (by postal code, phonetic code, ...) before calling, which this
// engine deliberately does not do itself.
func FindDuplicates(records []Record, cfgs []FieldConfig, minScore float64) []Pair {
	return FindDuplicatesWithProgress(records, cfgs, minScore, nil)
}

// FindDuplicatesWithProgress is FindDuplicates with a per-pair progress
// callback, invoked after each comparison with the number of completed
// comparisons and the total. progress may be nil.
func FindDuplicatesWithProgress(records []Record, cfgs []FieldConfig, minScore float64, progress func(done, total int)) []Pair {
	n := len(records)
	total := n * (n - 1) / 2
	done := 0

	var out []Pair
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := Compare(records[i], records[j], cfgs)
			if r.OverallScore >= minScore {
				out = append(out, Pair{I: i, J: j, Result: r})
			}
			done++
			if progress != nil {
				progress(done, total)
			}
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Result.OverallScore != out[b].Result.OverallScore {
			return out[a].Result.OverallScore > out[b].Result.OverallScore
		}
		if out[a].I != out[b].I {
			return out[a].I < out[b].I
		}
		return out[a].J < out[b].J
	})
	return out
}
