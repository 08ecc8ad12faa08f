package scheduler

import (
	"iter"
	"time"
)

// DateLayout is the format of every date key produced and consumed by the scheduler
const DateLayout = "2006-01-02"

// DaysInMonth returns the number of days in the given month, accounting for leap years
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the following month normalises to the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthDates yields every date of the month in ascending order as "YYYY-MM-DD".
// The sequence is lazy and can be ranged over any number of times.
func MonthDates(year int, month time.Month) iter.Seq[string] {
	return func(yield func(string) bool) {
		first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		days := DaysInMonth(year, month)
		for i := 0; i < days; i++ {
			if !yield(first.AddDate(0, 0, i).Format(DateLayout)) {
				return
			}
		}
	}
}
