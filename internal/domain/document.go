package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// DocumentKey is the fixed storage key the budget document lives under
const DocumentKey = "personal_budget_data"

// BudgetDocument is the aggregate root holding all financial state.
//
// Derived fields kept consistent by the mutation API:
//   - TotalExpenses equals the sum of Transactions amounts
//   - each category's Actual equals the sum of transactions carrying its name
//   - TotalIncome and Income equal the sum of Incomes amounts, unless overridden
type BudgetDocument struct {
	Categories       []ExpenseCategory     `json:"categories"`
	IncomeCategories []IncomeCategory      `json:"incomeCategories"`
	Transactions     []Transaction         `json:"transactions"`
	Incomes          []Income              `json:"incomes"`
	CreditCards      []CreditCard          `json:"creditCards"`
	MonthlySummary   []MonthlySummaryEntry `json:"monthlySummary"`
	TotalBudget      decimal.Decimal       `json:"totalBudget"`
	TotalExpenses    decimal.Decimal       `json:"totalExpenses"`
	TotalIncome      decimal.Decimal       `json:"totalIncome"`
	// Income is the legacy alias of TotalIncome
	Income decimal.Decimal `json:"income"`
}

// Clone returns a deep copy. The copy shares no slices with d.
func (d BudgetDocument) Clone() BudgetDocument {
	out := d
	out.Categories = cloneSlice(d.Categories)
	out.IncomeCategories = cloneSlice(d.IncomeCategories)
	out.Transactions = cloneSlice(d.Transactions)
	out.Incomes = cloneSlice(d.Incomes)
	out.CreditCards = cloneSlice(d.CreditCards)
	out.MonthlySummary = cloneSlice(d.MonthlySummary)
	return out
}

// Remaining returns the total budget minus total expenses
func (d BudgetDocument) Remaining() decimal.Decimal {
	return d.TotalBudget.Sub(d.TotalExpenses)
}

// EffectiveIncome returns TotalIncome, or the legacy Income when TotalIncome is zero
func (d BudgetDocument) EffectiveIncome() decimal.Decimal {
	if d.TotalIncome.IsZero() {
		return d.Income
	}
	return d.TotalIncome
}

// FindCategory returns the index of the category with the given name, or -1
func (d BudgetDocument) FindCategory(name string) int {
	for i, c := range d.Categories {
		if c.Name == name {
			return i
		}
	}
	return -1
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

// DocumentRepository stores serialized documents as opaque blobs under a key.
// Get returns ErrDocumentNotFound when nothing is stored under key.
type DocumentRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
}
