// ABOUTME: CLI commands for daily nutrition totals.
// ABOUTME: nutrition reads a date range; log-nutrition writes a manual summary.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	nutritionStart string
	nutritionEnd   string
)

var nutritionCmd = &cobra.Command{
	Use:   "nutrition",
	Short: "Daily nutrition summaries",
	Long: `Show daily nutrition totals for a date range (inclusive).

Both --start and --end default to today.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := parseDateFlag(nutritionStart, today())
		if err != nil {
			return err
		}
		end, err := parseDateFlag(nutritionEnd, today())
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		days, err := client.GetNutrition(cmd.Context(), start, end)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(days)
		}

		if len(days) == 0 {
			fmt.Printf("No nutrition data for %s to %s\n", start, end)
			return nil
		}

		fmt.Printf("── Nutrition (%s → %s) ──\n", start, end)
		for _, d := range days {
			fmt.Printf("  %s:  %s kcal | %sp / %sc / %sf | sugar: %s | fiber: %s\n",
				d.Date,
				fmtOpt(d.Calories), fmtOpt(d.Protein), fmtOpt(d.Carbs), fmtOpt(d.Fat),
				fmtOpt(d.Sugar), fmtOpt(d.Fiber))
		}
		return nil
	},
}

var (
	logNutritionDate     string
	logNutritionCalories float64
	logNutritionProtein  float64
	logNutritionCarbs    float64
	logNutritionFat      float64
)

var logNutritionCmd = &cobra.Command{
	Use:   "log-nutrition",
	Short: "Log a nutrition summary (manual import)",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateFlag(logNutritionDate, today())
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		err = client.LogNutrition(cmd.Context(), date, logNutritionCalories,
			&logNutritionProtein, &logNutritionCarbs, &logNutritionFat)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printStatus("Nutrition logged", nil)
		}
		color.Green("✓ Logged nutrition on %s — %.0f kcal | %.0fp / %.0fc / %.0ff",
			date, logNutritionCalories, logNutritionProtein, logNutritionCarbs, logNutritionFat)
		return nil
	},
}

func init() {
	nutritionCmd.Flags().StringVar(&nutritionStart, "start", "", "start date (YYYY-MM-DD, default today)")
	nutritionCmd.Flags().StringVar(&nutritionEnd, "end", "", "end date (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(nutritionCmd)

	logNutritionCmd.Flags().StringVar(&logNutritionDate, "date", "", "date (YYYY-MM-DD)")
	logNutritionCmd.Flags().Float64Var(&logNutritionCalories, "calories", 0, "calories (kcal)")
	logNutritionCmd.Flags().Float64Var(&logNutritionProtein, "protein", 0, "protein (g)")
	logNutritionCmd.Flags().Float64Var(&logNutritionCarbs, "carbs", 0, "carbs (g)")
	logNutritionCmd.Flags().Float64Var(&logNutritionFat, "fat", 0, "fat (g)")
	_ = logNutritionCmd.MarkFlagRequired("date")
	_ = logNutritionCmd.MarkFlagRequired("calories")
	_ = logNutritionCmd.MarkFlagRequired("protein")
	_ = logNutritionCmd.MarkFlagRequired("carbs")
	_ = logNutritionCmd.MarkFlagRequired("fat")
	rootCmd.AddCommand(logNutritionCmd)
}
