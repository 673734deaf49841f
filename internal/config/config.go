// file: internal/config/config.go
// version: 1.2.0
// guid: 7b8c9d0e-1f2a-3b4c-5d6e-7f8a9b0c1d2e

package config

import (
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Preset     string  // built-in field set: person, company, address, product
	PresetFile string  // YAML file defining a custom field set
	MinScore   float64 // minimum overall score reported by match/dedupe
	Format     string  // output format: text, json, or yaml
	NoProgress bool    // suppress the progress bar on dedupe
}

var AppConfig Config

// InitConfig initializes the application configuration
func InitConfig() {
	// Set defaults
	viper.SetDefault("preset", "person")
	viper.SetDefault("min_score", 0.7)
	viper.SetDefault("format", "text")

	AppConfig = Config{
		Preset:     viper.GetString("preset"),
		PresetFile: viper.GetString("preset_file"),
		MinScore:   viper.GetFloat64("min_score"),
		Format:     viper.GetString("format"),
		NoProgress: viper.GetBool("no_progress"),
	}

	if AppConfig.Format == "" {
		AppConfig.Format = "text"
	}
}
