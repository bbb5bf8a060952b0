// ABOUTME: CLI commands for weight entries.
// ABOUTME: weight reads a range; log-weight and delete-weight write.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	weightStart string
	weightEnd   string
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Weight entries",
	Long: `Show weight entries for a date range (inclusive).

--start defaults to seven days ago, --end to today.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := parseDateFlag(weightStart, sevenDaysAgo())
		if err != nil {
			return err
		}
		end, err := parseDateFlag(weightEnd, today())
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		entries, err := client.GetWeightEntries(cmd.Context(), start, end)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(entries)
		}

		if len(entries) == 0 {
			fmt.Printf("No weight entries for %s to %s\n", start, end)
			return nil
		}

		fmt.Printf("── Weight (%s → %s) ──\n", start, end)
		for _, w := range entries {
			bf := ""
			if w.BodyFat != nil {
				bf = fmt.Sprintf(" (%g%% bf)", *w.BodyFat)
			}
			fmt.Printf("  %s:  %.1f kg%s\n", w.Date, w.WeightKg, bf)
		}
		return nil
	},
}

var (
	logWeightDate    string
	logWeightValue   float64
	logWeightBodyFat float64
)

var logWeightCmd = &cobra.Command{
	Use:   "log-weight",
	Short: "Log a weight entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateFlag(logWeightDate, today())
		if err != nil {
			return err
		}

		var bodyFat *float64
		if cmd.Flags().Changed("body-fat") {
			bodyFat = &logWeightBodyFat
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		if err := client.LogWeight(cmd.Context(), date, logWeightValue, bodyFat); err != nil {
			return err
		}

		if jsonOutput {
			return printStatus("Weight logged", nil)
		}
		bf := ""
		if bodyFat != nil {
			bf = fmt.Sprintf(" (%g%% bf)", *bodyFat)
		}
		color.Green("✓ Logged %.1f kg%s on %s", logWeightValue, bf, date)
		return nil
	},
}

var deleteWeightDate string

var deleteWeightCmd = &cobra.Command{
	Use:   "delete-weight",
	Short: "Delete a weight entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateFlag(deleteWeightDate, today())
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		if err := client.DeleteWeightEntry(cmd.Context(), date); err != nil {
			return err
		}

		if jsonOutput {
			return printStatus("Weight entry deleted", nil)
		}
		color.Green("✓ Deleted weight entry on %s", date)
		return nil
	},
}

func init() {
	weightCmd.Flags().StringVar(&weightStart, "start", "", "start date (YYYY-MM-DD, default 7 days ago)")
	weightCmd.Flags().StringVar(&weightEnd, "end", "", "end date (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(weightCmd)

	logWeightCmd.Flags().StringVar(&logWeightDate, "date", "", "date (YYYY-MM-DD)")
	logWeightCmd.Flags().Float64Var(&logWeightValue, "weight", 0, "weight in kilograms")
	logWeightCmd.Flags().Float64Var(&logWeightBodyFat, "body-fat", 0, "body fat percentage")
	_ = logWeightCmd.MarkFlagRequired("date")
	_ = logWeightCmd.MarkFlagRequired("weight")
	rootCmd.AddCommand(logWeightCmd)

	deleteWeightCmd.Flags().StringVar(&deleteWeightDate, "date", "", "date (YYYY-MM-DD)")
	_ = deleteWeightCmd.MarkFlagRequired("date")
	rootCmd.AddCommand(deleteWeightCmd)
}
