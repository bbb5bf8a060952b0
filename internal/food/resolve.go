// ABOUTME: Serving selection and macro scaling for searched foods.
// ABOUTME: All validation here is local and runs before any network call.
package food

import (
	"fmt"

	"github.com/harperreed/macrofactor/internal/models"
)

// IndexError reports a 1-based food index outside the cached result list.
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("invalid food index %d: last search had %d results", e.Index, e.Count)
}

// ServingError reports a 1-based serving index outside a food's serving list.
type ServingError struct {
	Index int
	Count int
}

func (e *ServingError) Error() string {
	return fmt.Sprintf("invalid serving index %d: food has %d servings", e.Index, e.Count)
}

// SelectResult picks a cached search result by 1-based index. Index 0 or an
// index past the end fails with *IndexError and performs no write.
func SelectResult(results []models.SearchFoodResult, index int) (models.SearchFoodResult, error) {
	if index < 1 || index > len(results) {
		return models.SearchFoodResult{}, &IndexError{Index: index, Count: len(results)}
	}
	return results[index-1], nil
}

// ChooseServing picks a serving by 1-based index. Index 1 means the food's
// declared default serving, falling back to its first listed serving, then
// to a synthetic 100-gram serving. Index n for n >= 2 means the serving at
// position n-1 of the food's serving list.
func ChooseServing(result models.SearchFoodResult, index int) (models.FoodServing, error) {
	if index == 1 {
		if result.DefaultServing != nil {
			return *result.DefaultServing, nil
		}
		if len(result.Servings) > 0 {
			return result.Servings[0], nil
		}
		return models.FoodServing{Description: "100g", Amount: 1, GramWeight: 100}, nil
	}

	idx := index - 1
	if index < 1 || idx >= len(result.Servings) {
		return models.FoodServing{}, &ServingError{Index: index, Count: len(result.Servings)}
	}
	return result.Servings[idx], nil
}

// ScaledMacros are the figures actually logged for one portion.
type ScaledMacros struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Grams    float64
}

// Scale derives the logged macros for quantity units of the chosen serving
// from the food's per-100g basis: factor = gramWeight/100 × quantity, each
// macro scaled independently. A serving with gram weight <= 0 is an error
// condition, not a zero-calorie serving.
func Scale(result models.SearchFoodResult, serving models.FoodServing, quantity float64) (ScaledMacros, error) {
	if serving.GramWeight <= 0 {
		return ScaledMacros{}, fmt.Errorf("serving %q has no gram weight; cannot scale", serving.Description)
	}
	if quantity <= 0 {
		return ScaledMacros{}, fmt.Errorf("quantity must be positive, got %g", quantity)
	}

	factor := serving.GramWeight / 100 * quantity
	return ScaledMacros{
		Calories: result.CaloriesPer100g * factor,
		Protein:  result.ProteinPer100g * factor,
		Carbs:    result.CarbsPer100g * factor,
		Fat:      result.FatPer100g * factor,
		Grams:    serving.GramWeight * quantity,
	}, nil
}
