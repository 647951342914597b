package timecalc

import (
	"fmt"
	"time"
)

// MonthLayout is the format accepted by ParseMonth, e.g. "2026-10".
const MonthLayout = "2006-01"

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// HourMinute returns the wall-clock hour (0–23) and minute of t.
func HourMinute(t time.Time) (int, int) {
	return t.Hour(), t.Minute()
}

// MonthRange returns midnight of the first and of the last day of the month
// containing t.
func MonthRange(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return first, last
}

// MonthLabel returns a label like "October 2026".
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", t.Month(), t.Year())
}

// ParseMonth parses "YYYY-MM" into midnight of the first day of that month.
func ParseMonth(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(MonthLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q (want YYYY-MM): %w", s, err)
	}
	return t, nil
}

// AfterMonth reports whether the month of a lies after the month of b.
func AfterMonth(a, b time.Time) bool {
	if a.Year() != b.Year() {
		return a.Year() > b.Year()
	}
	return a.Month() > b.Month()
}
