// ABOUTME: Typed records returned and accepted by the MacroFactor backend.
// ABOUTME: Optional fields stay nil when the service omits them; nil renders as unknown, not zero.
package models

// Profile is the semi-structured user profile document. Its schema is
// owned by the service and not guaranteed stable, so it is passed through
// as an open map; display logic filters known noisy keys by name.
type Profile map[string]any

// Goals holds the weekly calorie/macro targets and program metadata.
// Each macro slice has seven slots indexed Monday=0 through Sunday=6;
// a nil slot means no target is set for that day.
type Goals struct {
	TDEE         *float64   `json:"tdee,omitempty"`
	ProgramStyle *string    `json:"program_style,omitempty"`
	ProgramType  *string    `json:"program_type,omitempty"`
	Calories     []*float64 `json:"calories"`
	Protein      []*float64 `json:"protein"`
	Carbs        []*float64 `json:"carbs"`
	Fat          []*float64 `json:"fat"`
}

// DayTarget returns the target for a Monday=0 weekday index from one of
// the weekly slices, or nil when the day has no target.
func DayTarget(week []*float64, idx int) *float64 {
	if idx < 0 || idx >= len(week) {
		return nil
	}
	return week[idx]
}

// NutritionDay is one date's aggregate nutrition totals.
type NutritionDay struct {
	Date     Date     `json:"date"`
	Calories *float64 `json:"calories,omitempty"`
	Protein  *float64 `json:"protein,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty"`
	Fat      *float64 `json:"fat,omitempty"`
	Sugar    *float64 `json:"sugar,omitempty"`
	Fiber    *float64 `json:"fiber,omitempty"`
}

// FoodLogEntry is a single logged food on one date. The macro figures are
// stored on a per-100g basis alongside the entry's gram weight; the
// entry-level figures are always derived from those, never stored.
type FoodLogEntry struct {
	EntryID         string   `json:"entry_id"`
	Name            *string  `json:"name,omitempty"`
	Brand           *string  `json:"brand,omitempty"`
	Hour            *string  `json:"hour,omitempty"`
	Minute          *string  `json:"minute,omitempty"`
	CaloriesPer100g *float64 `json:"calories_per_100g,omitempty"`
	ProteinPer100g  *float64 `json:"protein_per_100g,omitempty"`
	CarbsPer100g    *float64 `json:"carbs_per_100g,omitempty"`
	FatPer100g      *float64 `json:"fat_per_100g,omitempty"`
	GramWeight      *float64 `json:"gram_weight,omitempty"`
}

// scalePer100g derives an entry-level figure from a per-100g basis and a
// gram weight. Nil when either input is absent.
func scalePer100g(per100g, grams *float64) *float64 {
	if per100g == nil || grams == nil {
		return nil
	}
	v := *per100g * *grams / 100
	return &v
}

// Calories returns the entry's calories, or nil when not derivable.
func (e *FoodLogEntry) Calories() *float64 {
	return scalePer100g(e.CaloriesPer100g, e.GramWeight)
}

// Protein returns the entry's protein in grams, or nil when not derivable.
func (e *FoodLogEntry) Protein() *float64 {
	return scalePer100g(e.ProteinPer100g, e.GramWeight)
}

// Carbs returns the entry's carbs in grams, or nil when not derivable.
func (e *FoodLogEntry) Carbs() *float64 {
	return scalePer100g(e.CarbsPer100g, e.GramWeight)
}

// Fat returns the entry's fat in grams, or nil when not derivable.
func (e *FoodLogEntry) Fat() *float64 {
	return scalePer100g(e.FatPer100g, e.GramWeight)
}

// WeightGrams returns the entry's total weight in grams, or nil.
func (e *FoodLogEntry) WeightGrams() *float64 {
	return e.GramWeight
}

// WeightEntry is one date's body weight measurement in kilograms.
type WeightEntry struct {
	Date     Date     `json:"date"`
	WeightKg float64  `json:"weight_kg"`
	BodyFat  *float64 `json:"body_fat,omitempty"`
}

// StepEntry is one date's step count. Read-only in this client.
type StepEntry struct {
	Date  Date `json:"date"`
	Steps int  `json:"steps"`
}
