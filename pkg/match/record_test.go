// file: pkg/match/record_test.go
// version: 1.2.0
// guid: 82c5d1f6-3a09-4e74-b8d2-f40e96a1c537

package match

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveField(t *testing.T) {
	rec := Record{
		"name": "Anna",
		"contact": map[string]any{
			"email": "anna@example.com",
			"phone": map[string]any{"mobile": "+49 170 1234567"},
		},
	}
	assert.Equal(t, "Anna", ResolveField(rec, "name"))
	assert.Equal(t, "anna@example.com", ResolveField(rec, "contact.email"))
	assert.Equal(t, "+49 170 1234567", ResolveField(rec, "contact.phone.mobile"))
	assert.Nil(t, ResolveField(rec, "contact.fax"))
	assert.Nil(t, ResolveField(rec, "name.sub"), "traversal through a non-map resolves to nil")
	assert.Nil(t, ResolveField(nil, "name"))
}

func TestCompareWeightedMean(t *testing.T) {
	cfgs := []FieldConfig{
		{Field: "a", Weight: 1, Algorithm: Exact},
		{Field: "b", Weight: 3, Algorithm: Exact},
	}
	r1 := Record{"a": "x", "b": "y"}
	r2 := Record{"a": "x", "b": "z"}

	res := Compare(r1, r2, cfgs)
	assert.InDelta(t, 0.25, res.OverallScore, 1e-9, "weights re-normalize by total weight")
	assert.Equal(t, 1.0, res.FieldScores["a"])
	assert.Equal(t, 0.0, res.FieldScores["b"])
	assert.Contains(t, res.Flags, "exact:a")
}

func TestCompareRequiredFieldVeto(t *testing.T) {
	cfgs := []FieldConfig{
		{Field: "name", Weight: 5, Algorithm: Exact},
		{Field: "email", Weight: 1, Algorithm: JaroWinkler, Required: true},
	}
	r1 := Record{"name": "Anna Schmidt", "email": "anna@example.com"}
	r2 := Record{"name": "Anna Schmidt", "email": "zzz@other.org"}

	res := Compare(r1, r2, cfgs)
	assert.Equal(t, 0.0, res.OverallScore, "required field below threshold is a hard veto")
	assert.Equal(t, LevelNone, res.Level)
	assert.Contains(t, res.Flags, "required_failed:email")
	assert.Equal(t, 1.0, res.FieldScores["name"], "field scores still reported")
}

func TestCompareRequiredFieldPasses(t *testing.T) {
	cfgs := []FieldConfig{
		{Field: "email", Weight: 1, Algorithm: Exact, Required: true},
	}
	r1 := Record{"email": "anna@example.com"}
	r2 := Record{"email": "ANNA@EXAMPLE.COM"}

	res := Compare(r1, r2, cfgs)
	assert.Equal(t, 1.0, res.OverallScore)
	assert.NotContains(t, res.Flags, "required_failed:email")
}

func TestCompareExactMatchBonus(t *testing.T) {
	cfgs := []FieldConfig{
		{Field: "vatId", Weight: 1, Algorithm: Exact, ExactMatchBonus: 0.2},
		{Field: "name", Weight: 1, Algorithm: Exact},
	}
	r1 := Record{"vatId": "DE123456789", "name": "x"}
	r2 := Record{"vatId": "DE123456789", "name": "y"}

	// weighted sum = 1*1.2 + 1*0 = 1.2 over total weight 2.
	res := Compare(r1, r2, cfgs)
	assert.InDelta(t, 0.6, res.OverallScore, 1e-9)

	// The bonus only applies at a score of exactly 1.0.
	cfgs[0].Algorithm = JaroWinkler
	r2["vatId"] = "DE123456780"
	res = Compare(r1, r2, cfgs)
	assert.Less(t, res.FieldScores["vatId"], 1.0)
	assert.InDelta(t, res.FieldScores["vatId"]/2, res.OverallScore, 1e-9)
}

func TestCompareScoreClamped(t *testing.T) {
	cfgs := []FieldConfig{
		{Field: "id", Weight: 1, Algorithm: Exact, ExactMatchBonus: 0.5},
	}
	res := Compare(Record{"id": "1"}, Record{"id": "1"}, cfgs)
	assert.Equal(t, 1.0, res.OverallScore, "bonus must not push the score past 1")
	assert.Equal(t, LevelExact, res.Level)
}

func TestLevelForScoreBoundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  Level
	}{
		{1.0, LevelExact},
		{0.95, LevelExact},
		{0.9499, LevelHigh},
		{0.85, LevelHigh},
		{0.70, LevelMedium},
		{0.50, LevelLow},
		{0.49, LevelNone},
		{0.0, LevelNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForScore(tt.score), "score %v", tt.score)
	}
}

func TestCompareConfidence(t *testing.T) {
	cfgs := []FieldConfig{
		{Field: "a", Weight: 10, Algorithm: Exact},
		{Field: "b", Weight: 1, Algorithm: Exact},
		{Field: "c", Weight: 1, Algorithm: Exact},
		{Field: "d", Weight: 1, Algorithm: Exact},
	}
	r1 := Record{"a": "x", "b": "y", "c": "z", "d": "w"}
	r2 := Record{"a": "x", "b": "y", "c": "no", "d": "no"}

	res := Compare(r1, r2, cfgs)
	assert.InDelta(t, 0.5, res.Confidence, 1e-9, "confidence counts fields >= 0.8, ignoring weights")
}

func TestCompareMissingFields(t *testing.T) {
	cfgs := []FieldConfig{
		{Field: "name", Weight: 1, Algorithm: JaroWinkler},
		{Field: "nickname", Weight: 1, Algorithm: JaroWinkler},
	}
	r1 := Record{"name": "Anna"}
	r2 := Record{"name": "Anna"}

	res := Compare(r1, r2, cfgs)
	assert.Equal(t, 1.0, res.FieldScores["nickname"], "two missing fields count as equal")

	r2["nickname"] = "Anni"
	res = Compare(r1, r2, cfgs)
	assert.Equal(t, 0.0, res.FieldScores["nickname"], "one missing field counts as no match")
}

func TestFindMatchesRankedAndFiltered(t *testing.T) {
	cfgs := []FieldConfig{
		{Field: "name", Weight: 1, Algorithm: JaroWinkler, Options: Options{Normalize: true}},
	}
	target := Record{"name": "Müller"}
	candidates := []Record{
		{"name": "Totally Different"},
		{"name": "Mueller"},
		{"name": "Müller"},
		{"name": "Miller"},
	}

	got := FindMatches(target, candidates, cfgs, 0.5)
	require.NotEmpty(t, got)
	assert.Equal(t, 2, got[0].Index, "exact candidate ranks first")
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Result.OverallScore, got[i].Result.OverallScore)
	}
	for _, c := range got {
		assert.GreaterOrEqual(t, c.Result.OverallScore, 0.5)
		assert.NotEqual(t, 0, c.Index, "the unrelated candidate is filtered out")
	}
}

func TestFindDuplicatesIdempotent(t *testing.T) {
	cfgs := []FieldConfig{
		{Field: "lastName", Weight: 2, Algorithm: Phonetic},
		{Field: "firstName", Weight: 1, Algorithm: JaroWinkler},
	}
	records := []Record{
		{"firstName": "Hans", "lastName": "Meyer"},
		{"firstName": "Hans", "lastName": "Maier"},
		{"firstName": "Anna", "lastName": "Schmidt"},
		{"firstName": "Anna", "lastName": "Schmitt"},
		{"firstName": "Ute", "lastName": "Wagner"},
	}

	first := FindDuplicates(records, cfgs, 0.7)
	second := FindDuplicates(records, cfgs, 0.7)
	require.True(t, reflect.DeepEqual(first, second), "same input must yield same pairs in same order")

	require.Len(t, first, 2)
	for _, p := range first {
		assert.Less(t, p.I, p.J)
		assert.GreaterOrEqual(t, p.Result.OverallScore, 0.7)
	}
}

func TestFindDuplicatesProgress(t *testing.T) {
	records := []Record{
		{"n": "a"}, {"n": "b"}, {"n": "c"}, {"n": "d"},
	}
	cfgs := []FieldConfig{{Field: "n", Weight: 1, Algorithm: Exact}}

	var calls, lastDone, lastTotal int
	FindDuplicatesWithProgress(records, cfgs, 0.9, func(done, total int) {
		calls++
		lastDone, lastTotal = done, total
	})
	assert.Equal(t, 6, calls)
	assert.Equal(t, 6, lastDone)
	assert.Equal(t, 6, lastTotal)
}

func TestValidateConfigs(t *testing.T) {
	assert.Error(t, ValidateConfigs(nil))
	assert.Error(t, ValidateConfigs([]FieldConfig{{Field: "x", Weight: 0, Algorithm: Exact}}))
	assert.Error(t, ValidateConfigs([]FieldConfig{{Field: " ", Weight: 1, Algorithm: Exact}}))
	assert.Error(t, ValidateConfigs([]FieldConfig{{Field: "x", Weight: 1, ExactMatchBonus: -0.1}}))
	assert.NoError(t, ValidateConfigs([]FieldConfig{{Field: "x", Weight: 1, Algorithm: Exact}}))
}
