// file: cmd/encode.go
// version: 1.1.0
// guid: 2d7f50b9-8e34-4c61-a0d5-96b2e4f7c183

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fzabel/dublette/pkg/phonetic"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode [algorithm] [text]...",
	Short: "Print phonetic codes",
	Long: `Encode one or more words with a phonetic algorithm (cologne, soundex,
or metaphone) and print the resulting codes.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEncode(cmd.OutOrStdout(), args[0], args[1:])
	},
}

func runEncode(w io.Writer, algName string, words []string) error {
	alg, err := phonetic.ParseAlgorithm(algName)
	if err != nil {
		return err
	}
	for _, word := range words {
		code := phonetic.Encode(alg, word)
		if code == "" {
			code = "-"
		}
		fmt.Fprintf(w, "%-24s %s\n", word, code)
	}
	return nil
}
