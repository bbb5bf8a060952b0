// ABOUTME: CLI command for deleting a food entry.
// ABOUTME: Entry ids come from the food-log listing.
package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	deleteFoodDate    string
	deleteFoodEntryID string
)

var deleteFoodCmd = &cobra.Command{
	Use:   "delete-food",
	Short: "Delete a food entry",
	Long: `Delete one entry from a day's food log.

Find the entry id in the food-log output. Deleting an id that does not
exist on that date is an error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateFlag(deleteFoodDate, today())
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		if err := client.DeleteFoodEntry(cmd.Context(), date, deleteFoodEntryID); err != nil {
			return err
		}

		if jsonOutput {
			return printStatus("Food entry deleted", nil)
		}
		color.Green("✓ Deleted food entry %s on %s", deleteFoodEntryID, date)
		return nil
	},
}

func init() {
	deleteFoodCmd.Flags().StringVar(&deleteFoodDate, "date", "", "date (YYYY-MM-DD)")
	deleteFoodCmd.Flags().StringVar(&deleteFoodEntryID, "entry-id", "", "entry id from food-log")
	_ = deleteFoodCmd.MarkFlagRequired("date")
	_ = deleteFoodCmd.MarkFlagRequired("entry-id")
	rootCmd.AddCommand(deleteFoodCmd)
}
