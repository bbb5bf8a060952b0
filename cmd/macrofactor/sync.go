// ABOUTME: CLI command for recomputing a day's aggregate totals.
// ABOUTME: Useful after writes; nutrition reads may be stale until synced.
package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var syncDayDate string

var syncDayCmd = &cobra.Command{
	Use:   "sync-day",
	Short: "Sync daily nutrition totals",
	Long: `Ask the backend to recompute one day's aggregate totals from its
entries. Run this after logging or deleting food if the nutrition summary
looks stale.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateFlag(syncDayDate, today())
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		if err := client.SyncDay(cmd.Context(), date); err != nil {
			return err
		}

		if jsonOutput {
			return printStatus("Day synced", nil)
		}
		color.Green("✓ Synced daily totals for %s", date)
		return nil
	},
}

func init() {
	syncDayCmd.Flags().StringVar(&syncDayDate, "date", "", "date (YYYY-MM-DD)")
	_ = syncDayCmd.MarkFlagRequired("date")
	rootCmd.AddCommand(syncDayCmd)
}
