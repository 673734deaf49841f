// file: internal/config/presets.go
// version: 1.1.0
// guid: 3e50c7a9-1d84-4f26-b09e-68a2f4d5c173

package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/fzabel/dublette/pkg/match"
	"github.com/fzabel/dublette/pkg/phonetic"
)

// presetFile is the on-disk shape of a custom field set.
type presetFile struct {
	Fields []presetField `mapstructure:"fields"`
}

type presetField struct {
	Field           string        `mapstructure:"field"`
	Weight          float64       `mapstructure:"weight"`
	Algorithm       string        `mapstructure:"algorithm"`
	Required        bool          `mapstructure:"required"`
	ExactMatchBonus float64       `mapstructure:"exact_match_bonus"`
	Options         presetOptions `mapstructure:"options"`
}

type presetOptions struct {
	CaseSensitive     bool    `mapstructure:"case_sensitive"`
	Normalize         bool    `mapstructure:"normalize"`
	Phonetic          string  `mapstructure:"phonetic"`
	TokenThreshold    float64 `mapstructure:"token_threshold"`
	NumericTolerance  float64 `mapstructure:"numeric_tolerance"`
	RequiredThreshold float64 `mapstructure:"required_threshold"`
}

// LoadPresetFile reads a custom field set from a YAML file. Unknown
// algorithm identifiers fail here, at setup time, so a typo can never
// silently change scoring behavior.
func LoadPresetFile(path string) ([]match.FieldConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read preset file %s: %w", path, err)
	}

	var pf presetFile
	if err := v.Unmarshal(&pf); err != nil {
		return nil, fmt.Errorf("failed to parse preset file %s: %w", path, err)
	}
	if len(pf.Fields) == 0 {
		return nil, fmt.Errorf("preset file %s defines no fields", path)
	}

	cfgs := make([]match.FieldConfig, 0, len(pf.Fields))
	for _, f := range pf.Fields {
		alg, err := match.ParseAlgorithm(f.Algorithm)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Field, err)
		}
		opts := match.Options{
			CaseSensitive:     f.Options.CaseSensitive,
			Normalize:         f.Options.Normalize,
			TokenThreshold:    f.Options.TokenThreshold,
			NumericTolerance:  f.Options.NumericTolerance,
			RequiredThreshold: f.Options.RequiredThreshold,
		}
		if f.Options.Phonetic != "" {
			enc, err := phonetic.ParseAlgorithm(f.Options.Phonetic)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", f.Field, err)
			}
			opts.Phonetic = enc
		}
		cfgs = append(cfgs, match.FieldConfig{
			Field:           f.Field,
			Weight:          f.Weight,
			Algorithm:       alg,
			Options:         opts,
			Required:        f.Required,
			ExactMatchBonus: f.ExactMatchBonus,
		})
	}
	if err := match.ValidateConfigs(cfgs); err != nil {
		return nil, fmt.Errorf("preset file %s: %w", path, err)
	}
	return cfgs, nil
}
