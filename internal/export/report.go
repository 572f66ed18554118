// Package export renders a budget document snapshot to downloadable files.
package export

import (
	"sort"

	"github.com/dafibh/fortuna/budget-backend/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	PDFFileName  = "budget-summary.pdf"
	XLSXFileName = "budget-summary.xlsx"

	PDFContentType  = "application/pdf"
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// RecentTransactionCount is how many transactions the summary lists
	RecentTransactionCount = 5
)

// Money formats an amount as dollars with two decimals
func Money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// RecentTransactions returns up to n transactions, newest date first.
// Transactions sharing a date keep their recorded order.
func RecentTransactions(txs []domain.Transaction, n int) []domain.Transaction {
	sorted := make([]domain.Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date.Time)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// overviewRows are the label/value pairs of the budget overview section
func overviewRows(doc domain.BudgetDocument) [][2]string {
	income := doc.EffectiveIncome()
	return [][2]string{
		{"Total Budget", Money(doc.TotalBudget)},
		{"Total Expenses", Money(doc.TotalExpenses)},
		{"Remaining", Money(doc.Remaining())},
		{"Income", Money(income)},
		{"Savings", Money(income.Sub(doc.TotalExpenses))},
	}
}
