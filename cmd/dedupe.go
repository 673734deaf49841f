// file: cmd/dedupe.go
// version: 1.2.0
// guid: 94f2c6e8-1b70-4d35-a8c9-e06d53f1b284

package cmd

import (
	"fmt"
	"io"

	"github.com/oklog/ulid/v2"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/fzabel/dublette/internal/config"
	"github.com/fzabel/dublette/pkg/match"
)

// dedupeCmd represents the dedupe command
var dedupeCmd = &cobra.Command{
	Use:   "dedupe [records.json]",
	Short: "Find duplicate records in a set",
	Long: `Run the full pairwise comparison over a JSON array of records and print
every pair at or above the minimum score, best first.

The scan is O(n²); for large sets, pre-block the records (by postal code,
phonetic code, ...) and dedupe each block separately.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDedupe(cmd.OutOrStdout(), args[0])
	},
}

func runDedupe(w io.Writer, path string) error {
	cfgs, err := fieldConfigs()
	if err != nil {
		return err
	}
	records, err := loadRecords(path)
	if err != nil {
		return err
	}

	total := len(records) * (len(records) - 1) / 2
	var progress func(done, total int)
	var bar *progressbar.ProgressBar
	if !config.AppConfig.NoProgress && config.AppConfig.Format == "text" && total > 0 {
		bar = progressbar.Default(int64(total), "comparing")
		progress = func(done, total int) {
			_ = bar.Add(1)
		}
	}

	pairs := match.FindDuplicatesWithProgress(records, cfgs, config.AppConfig.MinScore, progress)
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(w)
	}

	report := dedupeReport{
		RunID:    ulid.Make().String(),
		Preset:   config.AppConfig.Preset,
		MinScore: config.AppConfig.MinScore,
		Records:  len(records),
		Pairs:    pairs,
	}
	return writeOutput(w, config.AppConfig.Format, report, func(w io.Writer) {
		fmt.Fprintf(w, "Run %s: %d duplicate pairs in %d records (min score %.2f)\n",
			report.RunID, len(pairs), len(records), report.MinScore)
		for _, p := range pairs {
			fmt.Fprintf(w, "\n%s <-> %s score %.4f (%s)\n",
				recordLabel(records[p.I], p.I), recordLabel(records[p.J], p.J),
				p.Result.OverallScore, p.Result.MatchLevel)
		}
	})
}
