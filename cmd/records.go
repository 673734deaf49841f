// file: cmd/records.go
// version: 1.0.0
// guid: 48a1e6d3-7c05-4b92-8f6e-d20c95b1a743

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fzabel/dublette/pkg/match"
)

// loadRecord reads one JSON object from path.
func loadRecord(path string) (match.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}
	var rec match.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return rec, nil
}

// loadRecords reads a JSON array of objects from path.
func loadRecords(path string) ([]match.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read records file: %w", err)
	}
	var recs []match.Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return recs, nil
}

// recordLabel renders a short identifier for a record in text output,
// preferring a "name" field when present.
func recordLabel(rec match.Record, index int) string {
	if name, ok := rec["name"].(string); ok && name != "" {
		return fmt.Sprintf("#%d (%s)", index, name)
	}
	return fmt.Sprintf("#%d", index)
}
