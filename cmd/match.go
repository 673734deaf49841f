// file: cmd/match.go
// version: 1.1.0
// guid: 5e90b2d7-3f48-4a15-8c6f-d27a04e9b153

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fzabel/dublette/internal/config"
	"github.com/fzabel/dublette/pkg/match"
)

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match [target.json] [candidates.json]",
	Short: "Rank candidate records against a target",
	Long: `Score every record in a JSON array against a target record and print the
candidates at or above the minimum score, best first.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMatch(cmd.OutOrStdout(), args[0], args[1])
	},
}

func runMatch(w io.Writer, targetPath, candidatesPath string) error {
	cfgs, err := fieldConfigs()
	if err != nil {
		return err
	}
	target, err := loadRecord(targetPath)
	if err != nil {
		return err
	}
	candidates, err := loadRecords(candidatesPath)
	if err != nil {
		return err
	}

	matches := match.FindMatches(target, candidates, cfgs, config.AppConfig.MinScore)
	report := matchReport{
		Preset:     config.AppConfig.Preset,
		MinScore:   config.AppConfig.MinScore,
		Candidates: len(candidates),
		Matches:    matches,
	}
	return writeOutput(w, config.AppConfig.Format, report, func(w io.Writer) {
		fmt.Fprintf(w, "%d of %d candidates at or above %.2f\n", len(matches), len(candidates), config.AppConfig.MinScore)
		for _, m := range matches {
			fmt.Fprintf(w, "\n%s score %.4f (%s)\n", recordLabel(candidates[m.Index], m.Index), m.Result.OverallScore, m.Result.MatchLevel)
		}
	})
}
