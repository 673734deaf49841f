// file: internal/config/presets_test.go
// version: 1.0.0
// guid: 9c2e7f50-4a16-4d83-b5c9-01d8e6a3f247

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fzabel/dublette/pkg/match"
	"github.com/fzabel/dublette/pkg/phonetic"
)

func writePreset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPresetFile(t *testing.T) {
	path := writePreset(t, `
fields:
  - field: name
    weight: 3
    algorithm: token_jaro
    options:
      normalize: true
  - field: lastName
    weight: 2
    algorithm: phonetic
    options:
      phonetic: soundex
  - field: vatId
    weight: 4
    algorithm: exact
    required: true
    exact_match_bonus: 0.2
    options:
      required_threshold: 0.9
`)

	cfgs, err := LoadPresetFile(path)
	require.NoError(t, err)
	require.Len(t, cfgs, 3)

	assert.Equal(t, "name", cfgs[0].Field)
	assert.Equal(t, match.TokenJaro, cfgs[0].Algorithm)
	assert.True(t, cfgs[0].Options.Normalize)

	assert.Equal(t, match.Phonetic, cfgs[1].Algorithm)
	assert.Equal(t, phonetic.Soundex, cfgs[1].Options.Phonetic)

	assert.True(t, cfgs[2].Required)
	assert.Equal(t, 0.2, cfgs[2].ExactMatchBonus)
	assert.Equal(t, 0.9, cfgs[2].Options.RequiredThreshold)
}

func TestLoadPresetFileUnknownAlgorithm(t *testing.T) {
	path := writePreset(t, `
fields:
  - field: name
    weight: 1
    algorithm: jarowinkler
`)
	_, err := LoadPresetFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown match algorithm")
}

func TestLoadPresetFileUnknownEncoder(t *testing.T) {
	path := writePreset(t, `
fields:
  - field: name
    weight: 1
    algorithm: phonetic
    options:
      phonetic: nysiis
`)
	_, err := LoadPresetFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown phonetic algorithm")
}

func TestLoadPresetFileInvalidWeight(t *testing.T) {
	path := writePreset(t, `
fields:
  - field: name
    weight: 0
    algorithm: exact
`)
	_, err := LoadPresetFile(path)
	assert.Error(t, err)
}

func TestLoadPresetFileMissing(t *testing.T) {
	_, err := LoadPresetFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadPresetFileEmpty(t *testing.T) {
	path := writePreset(t, "fields: []\n")
	_, err := LoadPresetFile(path)
	assert.Error(t, err)
}
