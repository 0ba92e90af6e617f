package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/hupe1980/seggo"
	"github.com/hupe1980/seggo/testutil"
	"github.com/spf13/cobra"
)

var (
	benchSeed    int64
	benchK       int
	benchMarkers int
	benchSkipTD  int

	benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Compare strategy timings on random inputs of growing size",
		Long: `Generates a random strand and marker set per size step and times each
solving strategy on it. The improvement column is the relative time reduction
of the trie-forward strategy over bottom-up tabulation.`,
		RunE: runBench,
	}
)

func init() {
	benchCmd.Flags().Int64Var(&benchSeed, "seed", 4711, "RNG seed for reproducible inputs")
	benchCmd.Flags().IntVar(&benchK, "k", 50, "maximum marker length")
	benchCmd.Flags().IntVar(&benchMarkers, "markers", 1000, "marker set size")
	benchCmd.Flags().IntVar(&benchSkipTD, "skip-topdown-above", 0, "skip the top-down strategy for strands longer than this (0 = never skip)")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	sizes := []int{100, 500, 1000, 2000, 5000, 10000, 20000, 50000}
	rng := testutil.NewRNG(benchSeed)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 0, 2, ' ', 0)
	fmt.Fprintln(w, "N\tTOPDOWN\tBOTTOMUP\tTRIEFORWARD\tIMPROVEMENT")

	for _, n := range sizes {
		strand := rng.Strand(n)
		markers := rng.Markers(benchMarkers, benchK)

		engine, err := seggo.New(strand, markers, benchK)
		if err != nil {
			return err
		}

		tdCol := "skipped"
		if benchSkipTD == 0 || n <= benchSkipTD {
			tdCol = timeSolve(engine, seggo.StrategyTopDown).String()
		}
		buDur := timeSolve(engine, seggo.StrategyBottomUp)
		tfDur := timeSolve(engine, seggo.StrategyTrieForward)

		improvement := "n/a"
		if buDur > 0 {
			improvement = fmt.Sprintf("%.1f%%", float64(buDur-tfDur)/float64(buDur)*100)
		}

		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", n, tdCol, buDur, tfDur, improvement)
	}

	return w.Flush()
}

func timeSolve(engine *seggo.Engine, s seggo.Strategy) time.Duration {
	start := time.Now()
	engine.Solve(s)
	return time.Since(start)
}
