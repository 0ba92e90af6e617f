package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "seggo",
	Short: "Validation and benchmark harness for the seggo segmentation engine",
	Long: `seggo hosts the glue around the segmentation engine: a validation run
that cross-checks all solving strategies against fixed expected outputs, and
a benchmark that compares strategy timings on random inputs of growing size.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
