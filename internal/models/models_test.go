// ABOUTME: Tests for record types and derived food-entry figures.
// ABOUTME: Verifies per-100g scaling and nil propagation for absent fields.
package models

import (
	"testing"
	"time"
)

func f64(v float64) *float64 { return &v }

func TestFoodLogEntryDerivedMacros(t *testing.T) {
	e := &FoodLogEntry{
		EntryID:         "abc123",
		CaloriesPer100g: f64(200),
		ProteinPer100g:  f64(10),
		CarbsPer100g:    f64(30),
		FatPer100g:      f64(5),
		GramWeight:      f64(150),
	}

	tests := []struct {
		name string
		got  *float64
		want float64
	}{
		{"calories", e.Calories(), 300},
		{"protein", e.Protein(), 15},
		{"carbs", e.Carbs(), 45},
		{"fat", e.Fat(), 7.5},
		{"weight", e.WeightGrams(), 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got == nil {
				t.Fatalf("%s = nil, want %v", tt.name, tt.want)
			}
			if *tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, *tt.got, tt.want)
			}
		})
	}
}

func TestFoodLogEntryDerivedMacrosAbsent(t *testing.T) {
	// No gram weight: nothing is derivable.
	e := &FoodLogEntry{CaloriesPer100g: f64(200)}
	if e.Calories() != nil {
		t.Error("Calories() should be nil without a gram weight")
	}

	// No per-100g basis: same.
	e = &FoodLogEntry{GramWeight: f64(150)}
	if e.Calories() != nil {
		t.Error("Calories() should be nil without a per-100g value")
	}
	if e.Protein() != nil || e.Carbs() != nil || e.Fat() != nil {
		t.Error("all macros should be nil without a per-100g value")
	}
}

func TestFoodLogEntry100gReproducesBasis(t *testing.T) {
	e := &FoodLogEntry{CaloriesPer100g: f64(217), GramWeight: f64(100)}
	got := e.Calories()
	if got == nil || *got != 217 {
		t.Errorf("Calories() at 100g = %v, want 217", got)
	}
}

func TestDayTarget(t *testing.T) {
	week := []*float64{f64(2100), nil, f64(2300), nil, nil, nil, f64(1800)}

	if got := DayTarget(week, 0); got == nil || *got != 2100 {
		t.Errorf("DayTarget(0) = %v, want 2100", got)
	}
	if got := DayTarget(week, 1); got != nil {
		t.Errorf("DayTarget(1) = %v, want nil", got)
	}
	if got := DayTarget(week, 6); got == nil || *got != 1800 {
		t.Errorf("DayTarget(6) = %v, want 1800", got)
	}
	if got := DayTarget(week, 7); got != nil {
		t.Errorf("DayTarget(7) out of range = %v, want nil", got)
	}
	if got := DayTarget(nil, 0); got != nil {
		t.Errorf("DayTarget on nil week = %v, want nil", got)
	}
}

func TestNutritionDayOptionalFields(t *testing.T) {
	n := NutritionDay{Date: NewDate(2025, time.June, 1), Calories: f64(1900)}
	if n.Protein != nil || n.Sugar != nil {
		t.Error("unset optional fields must stay nil, not zero")
	}
}
