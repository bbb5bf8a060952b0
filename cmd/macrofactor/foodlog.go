// ABOUTME: CLI command for listing a day's food entries.
// ABOUTME: Renders time, name, derived macros, and the entry id used by delete-food.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var foodLogDate string

var foodLogCmd = &cobra.Command{
	Use:   "food-log",
	Short: "Food entries for a day",
	Long: `Show the food log for one date (default today).

Each line ends with the entry id, which delete-food takes via --entry-id.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateFlag(foodLogDate, today())
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		entries, err := client.GetFoodLog(cmd.Context(), date)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(entries)
		}

		if len(entries) == 0 {
			fmt.Printf("No food entries for %s\n", date)
			return nil
		}

		fmt.Printf("── Food Log (%s) ──\n", date)
		for i := range entries {
			e := &entries[i]
			minute, _ := strconv.Atoi(orString(e.Minute, "0"))
			fmt.Printf("  [%s:%02d] %s (%s) — %.0f kcal | %.0fp / %.0fc / %.0ff | %.0fg  [id: %s]\n",
				orString(e.Hour, "?"), minute,
				orString(e.Name, "Unknown"), orString(e.Brand, ""),
				orZero(e.Calories()), orZero(e.Protein()), orZero(e.Carbs()), orZero(e.Fat()),
				orZero(e.WeightGrams()),
				e.EntryID)
		}
		return nil
	},
}

func init() {
	foodLogCmd.Flags().StringVar(&foodLogDate, "date", "", "date (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(foodLogCmd)
}
