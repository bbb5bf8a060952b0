// ABOUTME: Food search result and serving types.
// ABOUTME: Per-100g macros are the single source of truth; everything else is scaled from them.
package models

// FoodServing is a named quantity of a food, e.g. "1 cup". GramWeight is
// the weight in grams of one such serving and must be > 0 for serving math
// to be defined; a gram weight of 0 is an error condition, not a
// zero-calorie serving.
type FoodServing struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	GramWeight  float64 `json:"gram_weight"`
}

// SearchFoodResult is one hit from the backend food database. Macro fields
// are always normalized to a 100g basis so serving math is uniform; they
// are non-negative. Result order is whatever the backend returned and is
// treated as relevance-ranked.
type SearchFoodResult struct {
	Name            string        `json:"name"`
	Brand           *string       `json:"brand,omitempty"`
	Branded         bool          `json:"branded"`
	CaloriesPer100g float64       `json:"calories_per_100g"`
	ProteinPer100g  float64       `json:"protein_per_100g"`
	CarbsPer100g    float64       `json:"carbs_per_100g"`
	FatPer100g      float64       `json:"fat_per_100g"`
	DefaultServing  *FoodServing  `json:"default_serving,omitempty"`
	Servings        []FoodServing `json:"servings"`
}
