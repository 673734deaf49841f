// file: cmd/compare.go
// version: 1.1.0
// guid: 71c3a8f5-0d29-4e86-b174-5f0e9c2d63a8

package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/fzabel/dublette/internal/config"
	"github.com/fzabel/dublette/pkg/match"
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare [record1.json] [record2.json]",
	Short: "Compare two records",
	Long:  `Compare two JSON records under the active field set and print the match result.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCompare(cmd.OutOrStdout(), args[0], args[1])
	},
}

func runCompare(w io.Writer, path1, path2 string) error {
	cfgs, err := fieldConfigs()
	if err != nil {
		return err
	}
	r1, err := loadRecord(path1)
	if err != nil {
		return err
	}
	r2, err := loadRecord(path2)
	if err != nil {
		return err
	}

	res := match.Compare(r1, r2, cfgs)
	report := compareReport{Preset: config.AppConfig.Preset, Result: res}
	return writeOutput(w, config.AppConfig.Format, report, func(w io.Writer) {
		printResult(w, res)
	})
}
