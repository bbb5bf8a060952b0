// ABOUTME: Tests for CLI helper functions and command wiring.
// ABOUTME: Covers the clock-dependent date helpers, --time rules, and flag registration.
package main

import (
	"testing"
	"time"

	"github.com/harperreed/macrofactor/internal/models"
)

// pinClock freezes the injected clock for the duration of a test.
func pinClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func TestTodayAndSevenDaysAgo(t *testing.T) {
	pinClock(t, time.Date(2025, time.June, 15, 9, 30, 0, 0, time.Local))

	if got := today(); got.String() != "2025-06-15" {
		t.Errorf("today() = %s, want 2025-06-15", got)
	}
	if got := sevenDaysAgo(); got.String() != "2025-06-08" {
		t.Errorf("sevenDaysAgo() = %s, want 2025-06-08", got)
	}
}

func TestParseDateFlag(t *testing.T) {
	fallback := models.NewDate(2025, time.June, 15)

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "empty uses fallback",
			input: "",
			want:  "2025-06-15",
		},
		{
			name:  "explicit date",
			input: "2024-01-31",
			want:  "2024-01-31",
		},
		{
			name:    "wrong format",
			input:   "31-01-2024",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "not a date",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDateFlag(tt.input, fallback)

			if tt.wantErr {
				if err == nil {
					t.Errorf("parseDateFlag(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("parseDateFlag(%q) unexpected error: %v", tt.input, err)
				return
			}
			if got.String() != tt.want {
				t.Errorf("parseDateFlag(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantHour   int
		wantMinute int
		wantErr    bool
	}{
		{
			name:       "morning",
			input:      "07:30",
			wantHour:   7,
			wantMinute: 30,
		},
		{
			name:       "single digit hour",
			input:      "7:05",
			wantHour:   7,
			wantMinute: 5,
		},
		{
			name:       "midnight",
			input:      "00:00",
			wantHour:   0,
			wantMinute: 0,
		},
		{
			name:       "end of day",
			input:      "23:59",
			wantHour:   23,
			wantMinute: 59,
		},
		{
			name:    "missing colon",
			input:   "0730",
			wantErr: true,
		},
		{
			name:    "too many parts",
			input:   "07:30:00",
			wantErr: true,
		},
		{
			name:    "hour out of range",
			input:   "24:00",
			wantErr: true,
		},
		{
			name:    "minute out of range",
			input:   "12:60",
			wantErr: true,
		},
		{
			name:    "not a number",
			input:   "ab:cd",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, minute, err := parseClock(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("parseClock(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("parseClock(%q) unexpected error: %v", tt.input, err)
				return
			}
			if hour != tt.wantHour || minute != tt.wantMinute {
				t.Errorf("parseClock(%q) = %d:%d, want %d:%d", tt.input, hour, minute, tt.wantHour, tt.wantMinute)
			}
		})
	}
}

func TestMakeLoggedAtExplicitTime(t *testing.T) {
	pinClock(t, time.Date(2025, time.June, 15, 9, 30, 0, 0, time.Local))

	date := models.NewDate(2025, time.June, 10)
	got, err := makeLoggedAt(date, "07:45")
	if err != nil {
		t.Fatalf("makeLoggedAt failed: %v", err)
	}

	if got.Hour() != 7 || got.Minute() != 45 {
		t.Errorf("makeLoggedAt time = %02d:%02d, want 07:45", got.Hour(), got.Minute())
	}
	if !models.DateOf(got).Equal(date) {
		t.Errorf("makeLoggedAt date = %s, want %s", models.DateOf(got), date)
	}
}

func TestMakeLoggedAtTodayDefaultsToNow(t *testing.T) {
	fixed := time.Date(2025, time.June, 15, 9, 30, 0, 0, time.Local)
	pinClock(t, fixed)

	got, err := makeLoggedAt(models.NewDate(2025, time.June, 15), "")
	if err != nil {
		t.Fatalf("makeLoggedAt failed: %v", err)
	}
	if !got.Equal(fixed) {
		t.Errorf("makeLoggedAt = %v, want the current instant %v", got, fixed)
	}
}

func TestMakeLoggedAtPastDateDefaultsToNoon(t *testing.T) {
	pinClock(t, time.Date(2025, time.June, 15, 9, 30, 0, 0, time.Local))

	date := models.NewDate(2025, time.June, 1)
	got, err := makeLoggedAt(date, "")
	if err != nil {
		t.Fatalf("makeLoggedAt failed: %v", err)
	}

	if got.Hour() != 12 || got.Minute() != 0 {
		t.Errorf("makeLoggedAt time = %02d:%02d, want 12:00", got.Hour(), got.Minute())
	}
	if !models.DateOf(got).Equal(date) {
		t.Errorf("makeLoggedAt date = %s, want %s", models.DateOf(got), date)
	}
}

func TestMakeLoggedAtRejectsBadTime(t *testing.T) {
	pinClock(t, time.Date(2025, time.June, 15, 9, 30, 0, 0, time.Local))

	_, err := makeLoggedAt(models.NewDate(2025, time.June, 15), "25:99")
	if err == nil {
		t.Error("Expected error for invalid --time value")
	}
}

func TestCivilTime(t *testing.T) {
	got, err := civilTime(models.NewDate(2025, time.June, 15), 7, 45, time.UTC)
	if err != nil {
		t.Fatalf("civilTime failed: %v", err)
	}
	want := time.Date(2025, time.June, 15, 7, 45, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("civilTime = %v, want %v", got, want)
	}
}

func TestCivilTimeNonexistentDST(t *testing.T) {
	loc, err := time.LoadLocation("America/Chicago")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// 2025-03-09 02:30 was skipped by the spring-forward transition.
	_, err = civilTime(models.NewDate(2025, time.March, 9), 2, 30, loc)
	if err == nil {
		t.Error("Expected error for a wall clock skipped by DST")
	}
}

func TestCivilTimeAmbiguousDST(t *testing.T) {
	loc, err := time.LoadLocation("America/Chicago")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// 2025-11-02 01:30 occurred twice when clocks fell back.
	_, err = civilTime(models.NewDate(2025, time.November, 2), 1, 30, loc)
	if err == nil {
		t.Error("Expected error for a wall clock repeated by DST")
	}
}

func TestCivilTimeOrdinaryDayInDSTZone(t *testing.T) {
	loc, err := time.LoadLocation("America/Chicago")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	got, err := civilTime(models.NewDate(2025, time.June, 15), 2, 30, loc)
	if err != nil {
		t.Fatalf("civilTime failed on an ordinary day: %v", err)
	}
	if got.Hour() != 2 || got.Minute() != 30 {
		t.Errorf("civilTime = %02d:%02d, want 02:30", got.Hour(), got.Minute())
	}
}

func TestRootCmdFlags(t *testing.T) {
	if rootCmd.Use != "macrofactor" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "macrofactor")
	}

	jsonFlag := rootCmd.PersistentFlags().Lookup("json")
	if jsonFlag == nil {
		t.Error("Expected global --json flag")
	}

	verboseFlag := rootCmd.PersistentFlags().Lookup("verbose")
	if verboseFlag == nil {
		t.Error("Expected global --verbose flag")
	}
}

func TestAllCommandsRegistered(t *testing.T) {
	expected := []string{
		"login", "profile", "goals", "nutrition", "food-log", "weight",
		"steps", "log-food", "search-food", "log-searched-food",
		"delete-food", "delete-weight", "log-weight", "log-nutrition",
		"sync-day",
	}

	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range expected {
		if !registered[name] {
			t.Errorf("Expected command %q to be registered", name)
		}
	}
}

func TestLoginCmdFlags(t *testing.T) {
	if loginCmd.Flags().Lookup("email") == nil {
		t.Error("Expected --email flag on login command")
	}
	if loginCmd.Flags().Lookup("password") == nil {
		t.Error("Expected --password flag on login command")
	}
}

func TestLogSearchedFoodCmdDefaults(t *testing.T) {
	servingFlag := logSearchedFoodCmd.Flags().Lookup("serving")
	if servingFlag == nil {
		t.Fatal("Expected --serving flag on log-searched-food command")
	}
	if servingFlag.DefValue != "1" {
		t.Errorf("Expected default serving 1, got %s", servingFlag.DefValue)
	}

	quantityFlag := logSearchedFoodCmd.Flags().Lookup("quantity")
	if quantityFlag == nil {
		t.Fatal("Expected --quantity flag on log-searched-food command")
	}
	if quantityFlag.DefValue != "1" {
		t.Errorf("Expected default quantity 1, got %s", quantityFlag.DefValue)
	}
}

func TestLogFoodCmdFlags(t *testing.T) {
	for _, name := range []string{"date", "name", "calories", "protein", "carbs", "fat", "time"} {
		if logFoodCmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected --%s flag on log-food command", name)
		}
	}
}

func TestRangeCmdFlags(t *testing.T) {
	if nutritionCmd.Flags().Lookup("start") == nil || nutritionCmd.Flags().Lookup("end") == nil {
		t.Error("Expected --start and --end flags on nutrition command")
	}
	if weightCmd.Flags().Lookup("start") == nil || weightCmd.Flags().Lookup("end") == nil {
		t.Error("Expected --start and --end flags on weight command")
	}
	if stepsCmd.Flags().Lookup("start") == nil || stepsCmd.Flags().Lookup("end") == nil {
		t.Error("Expected --start and --end flags on steps command")
	}
}

func TestFmtOpt(t *testing.T) {
	if got := fmtOpt(nil); got != "—" {
		t.Errorf("fmtOpt(nil) = %q, want em dash", got)
	}

	v := 1234.6
	if got := fmtOpt(&v); got != "1235" {
		t.Errorf("fmtOpt(1234.6) = %q, want %q", got, "1235")
	}
}

func TestOrZero(t *testing.T) {
	if got := orZero(nil); got != 0 {
		t.Errorf("orZero(nil) = %f, want 0", got)
	}

	v := 42.5
	if got := orZero(&v); got != 42.5 {
		t.Errorf("orZero(42.5) = %f, want 42.5", got)
	}
}

func TestOrString(t *testing.T) {
	if got := orString(nil, "?"); got != "?" {
		t.Errorf("orString(nil) = %q, want %q", got, "?")
	}

	empty := ""
	if got := orString(&empty, "?"); got != "?" {
		t.Errorf("orString(empty) = %q, want %q", got, "?")
	}

	s := "Oatmeal"
	if got := orString(&s, "?"); got != "Oatmeal" {
		t.Errorf("orString(Oatmeal) = %q, want %q", got, "Oatmeal")
	}
}
