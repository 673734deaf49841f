// file: cmd/root.go
// version: 1.3.0
// guid: 6a7b8c9d-0e1f-2a3b-4c5d-6e7f8a9b0c1d

package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fzabel/dublette/internal/config"
	"github.com/fzabel/dublette/pkg/match"
)

var cfgFile string
var presetName string
var presetFile string
var minScore float64
var outputFormat string
var noProgress bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dublette",
	Short: "Detect duplicate entity records with fuzzy and phonetic matching",
	Long: `Dublette scores record pairs with edit-distance, Jaro-Winkler, and
phonetic similarity (Kölner Phonetik, Soundex, Metaphone) and aggregates the
per-field scores into an overall match decision.

Records are plain JSON objects; fields are addressed by dot-separated paths.
Pick a built-in field set with --preset or define your own with --preset-file.`,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.dublette.yaml)")
	rootCmd.PersistentFlags().StringVar(&presetName, "preset", "person", "built-in field set: person, company, address, or product")
	rootCmd.PersistentFlags().StringVar(&presetFile, "preset-file", "", "YAML file defining a custom field set (overrides --preset)")
	rootCmd.PersistentFlags().Float64Var(&minScore, "min-score", 0.7, "minimum overall score to report")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "text", "output format: text, json, or yaml")
	rootCmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "disable the progress bar on dedupe")

	viper.BindPFlag("preset", rootCmd.PersistentFlags().Lookup("preset"))
	viper.BindPFlag("preset_file", rootCmd.PersistentFlags().Lookup("preset-file"))
	viper.BindPFlag("min_score", rootCmd.PersistentFlags().Lookup("min-score"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("no_progress", rootCmd.PersistentFlags().Lookup("no-progress"))

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(dedupeCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".dublette")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}

	config.InitConfig()
}

// fieldConfigs resolves the active field set: a custom preset file when
// configured, else a built-in preset. Unknown preset names get a suggestion
// when a close one exists.
func fieldConfigs() ([]match.FieldConfig, error) {
	if config.AppConfig.PresetFile != "" {
		return config.LoadPresetFile(config.AppConfig.PresetFile)
	}
	cfgs, err := match.Preset(config.AppConfig.Preset)
	if err != nil {
		if ranks := fuzzy.RankFindNormalizedFold(config.AppConfig.Preset, match.PresetNames()); len(ranks) > 0 {
			sort.Sort(ranks)
			return nil, fmt.Errorf("unknown preset %q (did you mean %q?)", config.AppConfig.Preset, ranks[0].Target)
		}
		return nil, err
	}
	return cfgs, nil
}
