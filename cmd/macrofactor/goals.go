// ABOUTME: CLI command for showing calorie/macro targets and TDEE.
// ABOUTME: Prints today's row (Monday-indexed) plus the full weekly table.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harperreed/macrofactor/internal/models"
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Show current calorie/macro targets and TDEE",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		goals, err := client.GetGoals(cmd.Context())
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(goals)
		}

		fmt.Println("── Goals ──")
		if goals.TDEE != nil {
			fmt.Printf("  TDEE: %.0f kcal\n", *goals.TDEE)
		}
		if goals.ProgramStyle != nil {
			fmt.Printf("  Program: %s / %s\n", *goals.ProgramStyle, orString(goals.ProgramType, "—"))
		}

		dow := today().WeekdayIndex()
		fmt.Printf("\n  Today (%s):\n", models.DayName(dow))
		if c := models.DayTarget(goals.Calories, dow); c != nil {
			fmt.Printf("    Calories: %.0f kcal\n", *c)
		}
		if p := models.DayTarget(goals.Protein, dow); p != nil {
			fmt.Printf("    Protein:  %.0f g\n", *p)
		}
		if c := models.DayTarget(goals.Carbs, dow); c != nil {
			fmt.Printf("    Carbs:    %.0f g\n", *c)
		}
		if f := models.DayTarget(goals.Fat, dow); f != nil {
			fmt.Printf("    Fat:      %.0f g\n", *f)
		}

		fmt.Println("\n  Weekly targets:")
		for i := 0; i < 7; i++ {
			fmt.Printf("    %s: %s kcal | %sp / %sc / %sf\n",
				models.DayName(i),
				fmtOpt(models.DayTarget(goals.Calories, i)),
				fmtOpt(models.DayTarget(goals.Protein, i)),
				fmtOpt(models.DayTarget(goals.Carbs, i)),
				fmtOpt(models.DayTarget(goals.Fat, i)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(goalsCmd)
}
