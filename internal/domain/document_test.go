package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sumTransactions(txs []Transaction, category string) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if category == "" || tx.Category == category {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

func TestDefaultDocument_IsConsistent(t *testing.T) {
	doc := DefaultDocument()

	assert.Len(t, doc.Categories, 7)
	assert.Len(t, doc.IncomeCategories, 5)
	assert.Len(t, doc.Transactions, 15)
	assert.Len(t, doc.Incomes, 4)
	assert.Len(t, doc.CreditCards, 2)
	assert.Len(t, doc.MonthlySummary, 7)

	assert.True(t, doc.TotalBudget.Equal(decimal.NewFromInt(2600)))
	// The sample totals are fixed figures, not sums of the sample transactions
	assert.True(t, doc.TotalExpenses.Equal(decimal.NewFromInt(2405)))
	assert.True(t, sumTransactions(doc.Transactions, "").Equal(decimal.NewFromInt(2160)))

	income := decimal.Zero
	for _, inc := range doc.Incomes {
		income = income.Add(inc.Amount)
	}
	assert.True(t, doc.TotalIncome.Equal(income))
	assert.True(t, doc.Income.Equal(income))

	actuals := map[string]int64{
		"Housing":        950,
		"Food":           470,
		"Transportation": 250,
		"Entertainment":  180,
		"Utilities":      245,
		"Healthcare":     100,
		"Personal":       210,
	}
	for _, c := range doc.Categories {
		assert.Truef(t, c.Actual.Equal(decimal.NewFromInt(actuals[c.Name])),
			"category %s actual %s", c.Name, c.Actual)
	}
	assert.True(t, sumTransactions(doc.Transactions, "Food").Equal(decimal.NewFromInt(470)))
	assert.True(t, sumTransactions(doc.Transactions, "Transportation").Equal(decimal.NewFromInt(95)))

	assert.Equal(t, "Jul", doc.MonthlySummary[len(doc.MonthlySummary)-1].Month)
}

func TestDefaultDocument_ReturnsFreshCopy(t *testing.T) {
	a := DefaultDocument()
	a.Categories[0].Name = "Changed"
	a.Transactions = a.Transactions[:1]

	b := DefaultDocument()
	assert.Equal(t, "Housing", b.Categories[0].Name)
	assert.Len(t, b.Transactions, 15)
}

func TestBudgetDocument_Clone(t *testing.T) {
	doc := DefaultDocument()
	clone := doc.Clone()

	clone.Categories[0].Actual = decimal.NewFromInt(1)
	clone.MonthlySummary[0].Income = decimal.NewFromInt(1)

	assert.True(t, doc.Categories[0].Actual.Equal(decimal.NewFromInt(950)))
	assert.True(t, doc.MonthlySummary[0].Income.Equal(decimal.NewFromInt(4000)))

	empty := BudgetDocument{}.Clone()
	assert.NotNil(t, empty.Transactions)
	assert.Empty(t, empty.Transactions)
}

func TestBudgetDocument_EffectiveIncome(t *testing.T) {
	doc := BudgetDocument{Income: decimal.NewFromInt(300)}
	assert.True(t, doc.EffectiveIncome().Equal(decimal.NewFromInt(300)))

	doc.TotalIncome = decimal.NewFromInt(500)
	assert.True(t, doc.EffectiveIncome().Equal(decimal.NewFromInt(500)))
}

func TestDate_JSON(t *testing.T) {
	date := NewDate(2025, time.August, 1)

	data, err := json.Marshal(date)
	require.NoError(t, err)
	assert.Equal(t, `"2025-08-01"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-08-01T13:45:00.000Z"`), &parsed))
	assert.Equal(t, "2025-08-01", parsed.String())

	var empty Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &empty))
	assert.True(t, empty.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"not a date"`), &parsed))
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-10-19")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2026, time.October, 19), got)

	got, err = ParseDate("2026-10-19T23:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-19", got.String())

	_, err = ParseDate("19/10/2026")
	assert.ErrorIs(t, err, ErrInvalidDate)
}
