// Package daykey normalizes points in time to calendar-day identifiers.
//
// A Day is the fixed-width "YYYY-MM-DD" form of a local calendar date. Because
// the layout is zero-padded and big-endian, plain string comparison orders
// days chronologically.
package daykey

import (
	"fmt"
	"time"
)

// Layout is the textual form of every Day.
const Layout = "2006-01-02"

// Day identifies a single calendar day, e.g. "2024-01-31".
type Day string

// Of returns the local calendar date of t.
func Of(t time.Time) Day {
	return Day(t.Format(Layout))
}

// Today returns the calendar day of clock().
func Today(clock func() time.Time) Day {
	if clock == nil {
		clock = time.Now
	}
	return Of(clock())
}

// Parse validates s and returns it as a Day.
func Parse(s string) (Day, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return "", fmt.Errorf("invalid day %q (expected YYYY-MM-DD)", s)
	}
	// time.Parse accepts some inputs that do not round-trip, so normalize.
	return Day(t.Format(Layout)), nil
}

// Time returns midnight UTC of d. Only the calendar fields are meaningful.
func (d Day) Time() (time.Time, error) {
	return time.Parse(Layout, string(d))
}

// Valid reports whether d is a well-formed day.
func (d Day) Valid() bool {
	_, err := d.Time()
	return err == nil
}

func (d Day) String() string {
	return string(d)
}

// Add returns the day n calendar days after d (n may be negative).
// An unparseable d yields the empty Day.
func Add(d Day, n int) Day {
	t, err := d.Time()
	if err != nil {
		return ""
	}
	return Day(t.AddDate(0, 0, n).Format(Layout))
}

// Before returns the calendar day immediately preceding d.
func Before(d Day) Day {
	return Add(d, -1)
}

// Month returns every day of the given month in ascending order.
func Month(year int, month time.Month) []Day {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	n := first.AddDate(0, 1, -1).Day()
	days := make([]Day, n)
	for i := range days {
		days[i] = Day(first.AddDate(0, 0, i).Format(Layout))
	}
	return days
}
