package domain

import "github.com/shopspring/decimal"

// MonthlySummaryEntry is one month of the income/expense history.
// The last entry of the summary is the current period.
type MonthlySummaryEntry struct {
	Month    string          `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// Net returns income minus expenses for the month
func (m MonthlySummaryEntry) Net() decimal.Decimal {
	return m.Income.Sub(m.Expenses)
}
