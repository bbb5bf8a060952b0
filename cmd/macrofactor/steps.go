// ABOUTME: CLI command for step counts.
// ABOUTME: Read-only; step data originates from the user's phone or watch.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	stepsStart string
	stepsEnd   string
)

var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "Step counts",
	Long: `Show step counts for a date range (inclusive).

--start defaults to seven days ago, --end to today.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := parseDateFlag(stepsStart, sevenDaysAgo())
		if err != nil {
			return err
		}
		end, err := parseDateFlag(stepsEnd, today())
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		entries, err := client.GetSteps(cmd.Context(), start, end)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(entries)
		}

		if len(entries) == 0 {
			fmt.Printf("No step data for %s to %s\n", start, end)
			return nil
		}

		fmt.Printf("── Steps (%s → %s) ──\n", start, end)
		for _, s := range entries {
			fmt.Printf("  %s:  %d steps\n", s.Date, s.Steps)
		}
		return nil
	},
}

func init() {
	stepsCmd.Flags().StringVar(&stepsStart, "start", "", "start date (YYYY-MM-DD, default 7 days ago)")
	stepsCmd.Flags().StringVar(&stepsEnd, "end", "", "end date (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(stepsCmd)
}
