package util

import (
	"testing"
	"time"
)

func TestMonthLabel(t *testing.T) {
	tests := []struct {
		month time.Month
		want  string
	}{
		{time.January, "Jan"},
		{time.July, "Jul"},
		{time.September, "Sep"},
		{time.December, "Dec"},
	}

	for _, tt := range tests {
		if got := MonthLabel(tt.month); got != tt.want {
			t.Errorf("MonthLabel(%v) = %q, want %q", tt.month, got, tt.want)
		}
	}
}

func TestSameMonth(t *testing.T) {
	base := time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		other    time.Time
		expected bool
	}{
		{"same day", base, true},
		{"first of month", time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC), true},
		{"previous month", time.Date(2026, time.September, 30, 0, 0, 0, 0, time.UTC), false},
		{"same month last year", time.Date(2025, time.October, 19, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameMonth(base, tt.other); got != tt.expected {
				t.Errorf("SameMonth() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2026, time.January, 31},
		{2026, time.February, 28},
		{2024, time.February, 29}, // leap year
		{2026, time.April, 30},
		{2026, time.December, 31},
	}

	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestIsLastWeekOfMonth(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected bool
	}{
		{"mid month", time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC), false},
		{"day 24 of 31 is outside", time.Date(2026, time.October, 24, 0, 0, 0, 0, time.UTC), false},
		{"day 25 of 31 is inside", time.Date(2026, time.October, 25, 0, 0, 0, 0, time.UTC), true},
		{"last day", time.Date(2026, time.October, 31, 0, 0, 0, 0, time.UTC), true},
		{"february day 22", time.Date(2026, time.February, 22, 0, 0, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsLastWeekOfMonth(tt.date); got != tt.expected {
				t.Errorf("IsLastWeekOfMonth(%v) = %v, want %v", tt.date, got, tt.expected)
			}
		})
	}
}
