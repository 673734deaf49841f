// file: cmd/report.go
// version: 1.1.0
// guid: ac39f7e1-5d62-4b08-9c47-30e8d1f5a926

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/fzabel/dublette/pkg/match"
)

// writeOutput renders v as JSON or YAML, or falls back to the text renderer.
func writeOutput(w io.Writer, format string, v any, text func(io.Writer)) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	case "text", "":
		text(w)
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, json, or yaml)", format)
	}
}

func printResult(w io.Writer, res match.Result) {
	fmt.Fprintf(w, "Overall score: %.4f (%s)\n", res.OverallScore, res.MatchLevel)
	fmt.Fprintf(w, "Confidence:    %.2f\n", res.Confidence)

	fields := make([]string, 0, len(res.FieldScores))
	for f := range res.FieldScores {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		fmt.Fprintf(w, "  %-20s %.4f\n", f, res.FieldScores[f])
	}
	for _, flag := range res.Flags {
		fmt.Fprintf(w, "  flag: %s\n", flag)
	}
}

// compareReport is the serialized shape of a single comparison.
type compareReport struct {
	Preset string       `json:"preset" yaml:"preset"`
	Result match.Result `json:"result" yaml:"result"`
}

// matchReport is the serialized shape of a candidate search.
type matchReport struct {
	Preset     string            `json:"preset" yaml:"preset"`
	MinScore   float64           `json:"minScore" yaml:"minScore"`
	Candidates int               `json:"candidates" yaml:"candidates"`
	Matches    []match.Candidate `json:"matches" yaml:"matches"`
}

// dedupeReport is the serialized shape of a pairwise duplicate scan.
type dedupeReport struct {
	RunID    string       `json:"runId" yaml:"runId"`
	Preset   string       `json:"preset" yaml:"preset"`
	MinScore float64      `json:"minScore" yaml:"minScore"`
	Records  int          `json:"records" yaml:"records"`
	Pairs    []match.Pair `json:"pairs" yaml:"pairs"`
}
