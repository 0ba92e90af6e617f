package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/hupe1980/seggo"
	"github.com/hupe1980/seggo/internal/scenario"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run every strategy against the fixed validation scenarios",
	RunE:  runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STRAND\tEXPECTED\tTOPDOWN\tBOTTOMUP\tTRIEFORWARD\tSTATUS")

	failures := 0
	for _, tc := range scenario.Cases {
		engine, err := seggo.New(tc.Strand, tc.Markers, tc.K)
		if err != nil {
			return err
		}

		td := engine.SolveTopDown()
		bu := engine.SolveBottomUp()
		tf := engine.SolveTrieForward()

		status := "PASS"
		if td != tc.Expected || bu != tc.Expected || tf != tc.Expected {
			status = "FAIL"
			failures++
		}

		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%s\n",
			truncate(tc.Strand, 18), tc.Expected, td, bu, tf, status)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if failures > 0 {
		return fmt.Errorf("%d scenario(s) failed", failures)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nall %d scenarios passed\n", len(scenario.Cases))
	return nil
}

func truncate(s string, max int) string {
	if s == "" {
		return "(empty)"
	}
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
