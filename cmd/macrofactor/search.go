// ABOUTME: CLI commands for the food database search pipeline.
// ABOUTME: search-food caches its results; log-searched-food logs one by index.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/macrofactor/internal/food"
	"github.com/harperreed/macrofactor/internal/models"
)

var searchFoodCmd = &cobra.Command{
	Use:   "search-food <query>",
	Short: "Search the food database",
	Long: `Search the food database with a free-text query.

Results are numbered and cached; log-searched-food consumes them by index
until the next search overwrites the cache.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]

		client, err := newClient()
		if err != nil {
			return err
		}

		results, err := client.SearchFoods(cmd.Context(), query)
		if err != nil {
			return err
		}

		if len(results) == 0 {
			if jsonOutput {
				fmt.Println("[]")
				return nil
			}
			fmt.Printf("No results for '%s'\n", query)
			return nil
		}

		if err := newSearchCache().Save(results); err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(results)
		}

		fmt.Printf("── Search Results for '%s' (%d results) ──\n\n", query, len(results))
		for i, r := range results {
			printSearchResult(i+1, r)
		}
		return nil
	},
}

func printSearchResult(index int, r models.SearchFoodResult) {
	brand := ""
	if r.Brand != nil && *r.Brand != "" {
		brand = fmt.Sprintf(" (%s)", *r.Brand)
	}
	source := "common"
	if r.Branded {
		source = "branded"
	}

	// Macros per default serving when one exists, otherwise per 100g.
	cal, p, c, f := r.CaloriesPer100g, r.ProteinPer100g, r.CarbsPer100g, r.FatPer100g
	servingInfo := "per 100g"
	if ds := r.DefaultServing; ds != nil {
		scale := ds.GramWeight / 100
		cal, p, c, f = cal*scale, p*scale, c*scale, f*scale
		servingInfo = fmt.Sprintf("per %s (%.0fg)", ds.Description, ds.GramWeight)
	}

	fmt.Printf("  %2d. %s%s [%s]\n", index, r.Name, brand, source)
	fmt.Printf("      %.0f kcal | %.0fp / %.0fc / %.0ff  (%s)\n", cal, p, c, f, servingInfo)

	if len(r.Servings) > 1 {
		list := make([]string, len(r.Servings))
		for i, s := range r.Servings {
			list[i] = fmt.Sprintf("%s (%.0fg)", s.Description, s.GramWeight)
		}
		fmt.Printf("      servings: %s\n", strings.Join(list, ", "))
	}
	fmt.Println()
}

var (
	logSearchedDate     string
	logSearchedIndex    int
	logSearchedServing  int
	logSearchedQuantity float64
	logSearchedTime     string
)

var logSearchedFoodCmd = &cobra.Command{
	Use:   "log-searched-food",
	Short: "Log a food from the last search results",
	Long: `Log a food from the most recent search-food results.

--food-index is the 1-based number shown by search-food. --serving 1 means
the food's default serving (falling back to its first listed serving, then
to 100g); --serving n for n >= 2 picks entry n-1 of the serving list.
--quantity multiplies one unit of the chosen serving.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := newSearchCache().Load()
		if err != nil {
			return err
		}

		result, err := food.SelectResult(results, logSearchedIndex)
		if err != nil {
			return err
		}
		serving, err := food.ChooseServing(result, logSearchedServing)
		if err != nil {
			return err
		}
		scaled, err := food.Scale(result, serving, logSearchedQuantity)
		if err != nil {
			return err
		}

		date, err := parseDateFlag(logSearchedDate, today())
		if err != nil {
			return err
		}
		loggedAt, err := makeLoggedAt(date, logSearchedTime)
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		err = client.LogSearchedFood(cmd.Context(), loggedAt, result, serving, logSearchedQuantity)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printStatus("Searched food logged", map[string]any{
				"food":     result.Name,
				"serving":  serving.Description,
				"quantity": logSearchedQuantity,
			})
		}
		color.Green("✓ Logged '%s' on %s — %.0f kcal | %.0fp / %.0fc / %.0ff (%.1fx %s)",
			result.Name, date,
			scaled.Calories, scaled.Protein, scaled.Carbs, scaled.Fat,
			logSearchedQuantity, serving.Description)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchFoodCmd)

	logSearchedFoodCmd.Flags().StringVar(&logSearchedDate, "date", "", "date (YYYY-MM-DD)")
	logSearchedFoodCmd.Flags().IntVar(&logSearchedIndex, "food-index", 0, "1-based index from search results")
	logSearchedFoodCmd.Flags().IntVar(&logSearchedServing, "serving", 1, "1-based serving index (1 = default serving)")
	logSearchedFoodCmd.Flags().Float64Var(&logSearchedQuantity, "quantity", 1.0, "quantity of servings")
	logSearchedFoodCmd.Flags().StringVar(&logSearchedTime, "time", "", "time of day (HH:MM, default now)")
	_ = logSearchedFoodCmd.MarkFlagRequired("date")
	_ = logSearchedFoodCmd.MarkFlagRequired("food-index")
	rootCmd.AddCommand(logSearchedFoodCmd)
}
