// file: internal/testutil/records.go
// version: 1.0.0
// guid: 5f09d3c8-2b67-4a14-9e80-c41f7d6a25b9

// Package testutil provides shared fixtures for command and config tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fzabel/dublette/pkg/match"
)

// WriteJSON marshals v into a file under a test temp dir and returns its path.
func WriteJSON(t *testing.T, name string, v any) string {
	t.Helper()
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		t.Fatalf("marshal %s: %v", name, err)
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// SampleCompanies returns a small record set with two obvious duplicate
// clusters (umlaut transliteration and a legal-form variant).
func SampleCompanies() []match.Record {
	return []match.Record{
		{"name": "Müller GmbH", "vatId": "DE123456789"},
		{"name": "Mueller GmbH", "vatId": "DE123456789"},
		{"name": "Schneider & Söhne KG", "vatId": "DE555000111"},
		{"name": "Schneider und Soehne KG", "vatId": "DE555000111"},
		{"name": "Apfelbaum AG", "vatId": "DE999888777"},
	}
}
