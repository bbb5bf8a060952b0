// ABOUTME: Calendar date type used for all backend date parameters.
// ABOUTME: ISO YYYY-MM-DD wire form with Monday-first weekday indexing.
package models

import (
	"fmt"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date with no time or zone component. The backend
// addresses every record by a date in ISO form, so Date is the key type
// for all range queries and deletes.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// ParseDate parses an ISO YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return DateOf(t), nil
}

// DateOf extracts the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// String returns the ISO form.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Time returns midnight of the date in the given location.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time(time.UTC).AddDate(0, 0, n))
}

// After reports whether d is after other.
func (d Date) After(other Date) bool {
	return d.Time(time.UTC).After(other.Time(time.UTC))
}

// Equal reports whether d and other are the same calendar date.
func (d Date) Equal(other Date) bool {
	return d == other
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// WeekdayIndex returns the goal-table index of the date's weekday,
// fixed Monday=0 through Sunday=6 regardless of locale.
func (d Date) WeekdayIndex() int {
	wd := d.Time(time.UTC).Weekday()
	return (int(wd) + 6) % 7
}

// MarshalJSON encodes the date as an ISO string.
func (d Date) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, d.String()), nil
}

// UnmarshalJSON decodes an ISO date string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("date must be a JSON string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DayNames are the display names for goal-table indices, Monday=0.
var DayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DayName returns the short name for a Monday=0 weekday index.
func DayName(idx int) string {
	if idx < 0 || idx >= len(DayNames) {
		return "?"
	}
	return DayNames[idx]
}
