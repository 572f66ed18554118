package budget

import (
	"time"

	"github.com/dafibh/fortuna/budget-backend/internal/domain"
	"github.com/dafibh/fortuna/budget-backend/internal/util"
)

// Period is the result of resolving which monthly summary entry an income date affects
type Period struct {
	// Applies is false when the date is outside the current month or there is no summary
	Applies bool `json:"applies"`
	// Index of the affected entry in MonthlySummary
	Index int `json:"index"`
	// Exact is true when the last entry is labelled with the current month
	Exact bool `json:"exact"`
}

// ResolveCurrentPeriod finds the monthly summary entry for date, relative to now.
// Only dates in now's calendar month and year resolve to an entry, and that entry is
// always the last one: labels carry no year, so an earlier entry with the same label
// belongs to a past year. Exact reports whether the last label names now's month.
func ResolveCurrentPeriod(summary []domain.MonthlySummaryEntry, date domain.Date, now time.Time) Period {
	if len(summary) == 0 || !util.SameMonth(date.Time, now) {
		return Period{}
	}

	last := len(summary) - 1
	return Period{
		Applies: true,
		Index:   last,
		Exact:   summary[last].Month == util.MonthLabel(now.Month()),
	}
}
