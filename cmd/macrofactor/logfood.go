// ABOUTME: CLI command for quick-add food entries.
// ABOUTME: Takes explicit macros; searched foods go through log-searched-food instead.
package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	logFoodDate     string
	logFoodName     string
	logFoodCalories float64
	logFoodProtein  float64
	logFoodCarbs    float64
	logFoodFat      float64
	logFoodTime     string
)

var logFoodCmd = &cobra.Command{
	Use:   "log-food",
	Short: "Log a food entry (quick add)",
	Long: `Log a food entry with explicit macros.

--time takes HH:MM in local time. Without it, an entry for today is stamped
with the current time and an entry for any other date with local noon.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateFlag(logFoodDate, today())
		if err != nil {
			return err
		}
		loggedAt, err := makeLoggedAt(date, logFoodTime)
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		err = client.LogFood(cmd.Context(), loggedAt, logFoodName,
			logFoodCalories, logFoodProtein, logFoodCarbs, logFoodFat)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printStatus("Food logged", nil)
		}
		color.Green("✓ Logged '%s' on %s — %.0f kcal | %.0fp / %.0fc / %.0ff",
			logFoodName, date, logFoodCalories, logFoodProtein, logFoodCarbs, logFoodFat)
		return nil
	},
}

func init() {
	logFoodCmd.Flags().StringVar(&logFoodDate, "date", "", "date (YYYY-MM-DD)")
	logFoodCmd.Flags().StringVar(&logFoodName, "name", "", "food name")
	logFoodCmd.Flags().Float64Var(&logFoodCalories, "calories", 0, "calories (kcal)")
	logFoodCmd.Flags().Float64Var(&logFoodProtein, "protein", 0, "protein (g)")
	logFoodCmd.Flags().Float64Var(&logFoodCarbs, "carbs", 0, "carbs (g)")
	logFoodCmd.Flags().Float64Var(&logFoodFat, "fat", 0, "fat (g)")
	logFoodCmd.Flags().StringVar(&logFoodTime, "time", "", "time of day (HH:MM, default now)")
	_ = logFoodCmd.MarkFlagRequired("date")
	_ = logFoodCmd.MarkFlagRequired("name")
	_ = logFoodCmd.MarkFlagRequired("calories")
	_ = logFoodCmd.MarkFlagRequired("protein")
	_ = logFoodCmd.MarkFlagRequired("carbs")
	_ = logFoodCmd.MarkFlagRequired("fat")
	rootCmd.AddCommand(logFoodCmd)
}
