// ABOUTME: Tests for serving selection and macro scaling.
// ABOUTME: Covers the default->first->synthetic fallback chain and 1-based index validation.
package food

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/macrofactor/internal/models"
)

func strp(s string) *string { return &s }

func sampleFood() models.SearchFoodResult {
	return models.SearchFoodResult{
		Name:            "Greek Yogurt",
		Brand:           strp("Test Brand"),
		Branded:         true,
		CaloriesPer100g: 200,
		ProteinPer100g:  10,
		CarbsPer100g:    8,
		FatPer100g:      4,
		DefaultServing:  &models.FoodServing{Description: "1 container", Amount: 1, GramWeight: 150},
		Servings: []models.FoodServing{
			{Description: "1 cup", Amount: 1, GramWeight: 245},
			{Description: "1 tbsp", Amount: 1, GramWeight: 15},
		},
	}
}

func TestSelectResult(t *testing.T) {
	results := []models.SearchFoodResult{sampleFood(), {Name: "Oats"}}

	got, err := SelectResult(results, 1)
	require.NoError(t, err)
	assert.Equal(t, "Greek Yogurt", got.Name)

	got, err = SelectResult(results, 2)
	require.NoError(t, err)
	assert.Equal(t, "Oats", got.Name)
}

func TestSelectResultInvalidIndex(t *testing.T) {
	results := []models.SearchFoodResult{sampleFood()}

	tests := []struct {
		name  string
		index int
	}{
		{"zero", 0},
		{"negative", -1},
		{"past end", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SelectResult(results, tt.index)
			var idxErr *IndexError
			require.ErrorAs(t, err, &idxErr)
			assert.Equal(t, tt.index, idxErr.Index)
			assert.Equal(t, 1, idxErr.Count)
		})
	}
}

func TestChooseServingDefault(t *testing.T) {
	s, err := ChooseServing(sampleFood(), 1)
	require.NoError(t, err)
	assert.Equal(t, "1 container", s.Description)
	assert.Equal(t, 150.0, s.GramWeight)
}

func TestChooseServingFallsBackToFirstListed(t *testing.T) {
	f := sampleFood()
	f.DefaultServing = nil

	s, err := ChooseServing(f, 1)
	require.NoError(t, err)
	assert.Equal(t, "1 cup", s.Description)
}

func TestChooseServingSynthetic100g(t *testing.T) {
	f := sampleFood()
	f.DefaultServing = nil
	f.Servings = nil

	s, err := ChooseServing(f, 1)
	require.NoError(t, err)
	assert.Equal(t, "100g", s.Description)
	assert.Equal(t, 1.0, s.Amount)
	assert.Equal(t, 100.0, s.GramWeight)
}

func TestChooseServingExplicitIndex(t *testing.T) {
	// Index n >= 2 addresses position n-1 of the serving list.
	s, err := ChooseServing(sampleFood(), 2)
	require.NoError(t, err)
	assert.Equal(t, "1 tbsp", s.Description)
}

func TestChooseServingOutOfBounds(t *testing.T) {
	_, err := ChooseServing(sampleFood(), 3)
	var servErr *ServingError
	require.ErrorAs(t, err, &servErr)
	assert.Equal(t, 3, servErr.Index)
	assert.Equal(t, 2, servErr.Count)

	_, err = ChooseServing(sampleFood(), 0)
	require.ErrorAs(t, err, &servErr)
}

func TestScale(t *testing.T) {
	f := sampleFood()

	tests := []struct {
		name     string
		serving  models.FoodServing
		quantity float64
		want     ScaledMacros
	}{
		{
			name:     "default serving quantity 1 yields 300 kcal",
			serving:  models.FoodServing{Description: "1 container", Amount: 1, GramWeight: 150},
			quantity: 1.0,
			want:     ScaledMacros{Calories: 300, Protein: 15, Carbs: 12, Fat: 6, Grams: 150},
		},
		{
			name:     "100g quantity 1 reproduces the per-100g basis",
			serving:  models.FoodServing{Description: "100g", Amount: 1, GramWeight: 100},
			quantity: 1.0,
			want:     ScaledMacros{Calories: 200, Protein: 10, Carbs: 8, Fat: 4, Grams: 100},
		},
		{
			name:     "half a tablespoon",
			serving:  models.FoodServing{Description: "1 tbsp", Amount: 1, GramWeight: 15},
			quantity: 0.5,
			want:     ScaledMacros{Calories: 15, Protein: 0.75, Carbs: 0.6, Fat: 0.3, Grams: 7.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Scale(f, tt.serving, tt.quantity)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.Calories, got.Calories, 1e-9)
			assert.InDelta(t, tt.want.Protein, got.Protein, 1e-9)
			assert.InDelta(t, tt.want.Carbs, got.Carbs, 1e-9)
			assert.InDelta(t, tt.want.Fat, got.Fat, 1e-9)
			assert.InDelta(t, tt.want.Grams, got.Grams, 1e-9)
		})
	}
}

func TestScaleRejectsZeroGramWeight(t *testing.T) {
	_, err := Scale(sampleFood(), models.FoodServing{Description: "mystery", GramWeight: 0}, 1.0)
	require.Error(t, err)
}

func TestScaleRejectsNonPositiveQuantity(t *testing.T) {
	serving := models.FoodServing{Description: "100g", Amount: 1, GramWeight: 100}

	_, err := Scale(sampleFood(), serving, 0)
	require.Error(t, err)

	_, err = Scale(sampleFood(), serving, -2)
	require.Error(t, err)
}
