package timeutil

import "time"

func StartOfDay(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, value.Location())
}

// DateOnly maps an arbitrary instant to local midnight of its calendar day.
// Roster dates are day-granular; keeping them all at local midnight makes
// Before/After comparisons safe across parse sources.
func DateOnly(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, time.Local)
}
