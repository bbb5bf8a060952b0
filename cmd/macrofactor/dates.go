// ABOUTME: Date and time-of-day handling for command flags.
// ABOUTME: All date math runs through an injectable clock so tests can pin "today".
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/harperreed/macrofactor/internal/models"
)

// now is the clock behind today() and the logged-at rules. Tests swap it.
var now = time.Now

func today() models.Date {
	return models.DateOf(now())
}

func sevenDaysAgo() models.Date {
	return today().AddDays(-7)
}

// parseDateFlag parses an optional --date/--start/--end value, falling back
// when the flag was not given.
func parseDateFlag(value string, fallback models.Date) (models.Date, error) {
	if value == "" {
		return fallback, nil
	}
	return models.ParseDate(value)
}

// makeLoggedAt combines a date with an optional --time HH:MM value into a
// local timestamp. Without --time, a date of today means right now and any
// other date means local noon.
func makeLoggedAt(date models.Date, timeOfDay string) (time.Time, error) {
	if timeOfDay != "" {
		hour, minute, err := parseClock(timeOfDay)
		if err != nil {
			return time.Time{}, err
		}
		return civilTime(date, hour, minute, time.Local)
	}

	n := now()
	if models.DateOf(n).Equal(date) {
		return n, nil
	}
	return civilTime(date, 12, 0, time.Local)
}

func parseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("--time must be in HH:MM format, got %q", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("--time must be in HH:MM format, got %q", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("--time must be in HH:MM format, got %q", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid time %q", s)
	}
	return hour, minute, nil
}

// civilTime resolves a wall-clock time on a date in loc. A wall clock that a
// DST transition skips or repeats is an error, not a silent guess.
func civilTime(date models.Date, hour, minute int, loc *time.Location) (time.Time, error) {
	t := time.Date(date.Year, date.Month, date.Day, hour, minute, 0, 0, loc)

	// A skipped wall clock gets normalized to a different one.
	if t.Hour() != hour || t.Minute() != minute || !models.DateOf(t).Equal(date) {
		return time.Time{}, fmt.Errorf("time %02d:%02d does not exist on %s in %s", hour, minute, date, loc)
	}

	// A repeated wall clock maps to two instants an hour apart.
	for _, shift := range []time.Duration{-time.Hour, time.Hour} {
		u := t.Add(shift)
		if u.Hour() == hour && u.Minute() == minute && models.DateOf(u).Equal(date) {
			return time.Time{}, fmt.Errorf("time %02d:%02d is ambiguous on %s in %s", hour, minute, date, loc)
		}
	}
	return t, nil
}
