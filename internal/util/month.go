package util

import "time"

// MonthLabel returns the short month label used by the monthly summary ("Jan".."Dec")
func MonthLabel(month time.Month) string {
	return month.String()[:3]
}

// SameMonth reports whether a and b fall in the same calendar month and year
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsLastWeekOfMonth returns true when t is within the final seven days of its month
func IsLastWeekOfMonth(t time.Time) bool {
	return t.Day() > DaysInMonth(t.Year(), t.Month())-7
}
