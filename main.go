// file: main.go
// version: 1.0.0
// guid: 1e4a7c92-5b38-4d06-8f1b-a62d90c4e375

package main

import (
	"fmt"
	"os"

	"github.com/fzabel/dublette/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
