package budget

import (
	"encoding/json"
	"testing"

	"github.com/dafibh/fortuna/budget-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_DefaultDocument(t *testing.T) {
	doc := domain.DefaultDocument()

	data, err := Encode(doc)
	require.NoError(t, err)

	decoded, migration, err := Decode(data)
	require.NoError(t, err)
	assert.False(t, migration.Applied())

	assert.Len(t, decoded.Transactions, 15)
	assert.Equal(t, "2025-07-01", decoded.Transactions[0].Date.String())
	assert.True(t, decoded.TotalExpenses.Equal(doc.TotalExpenses))
	assert.True(t, decoded.Categories[1].Actual.Equal(doc.Categories[1].Actual))
	assert.Equal(t, doc.IncomeCategories, decoded.IncomeCategories)
}

func TestEncode_UsesStoredFieldNames(t *testing.T) {
	data, err := Encode(domain.DefaultDocument())
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &fields))
	for _, key := range []string{"categories", "incomeCategories", "transactions", "incomes", "creditCards",
		"monthlySummary", "totalBudget", "totalExpenses", "totalIncome", "income"} {
		assert.Contains(t, fields, key)
	}
}

func TestDecode_AbsentValues(t *testing.T) {
	for _, raw := range []string{"", "   ", "null"} {
		_, _, err := Decode([]byte(raw))
		assert.ErrorIs(t, err, domain.ErrDocumentNotFound, "input %q", raw)
	}
}

func TestDecode_Corrupt(t *testing.T) {
	for _, raw := range []string{"{not json", "[1,2,3]", `"text"`, `{"categories": 12}`} {
		_, _, err := Decode([]byte(raw))
		assert.ErrorIs(t, err, domain.ErrCorruptDocument, "input %q", raw)
	}
}

func TestDecode_NumericAndStringAmounts(t *testing.T) {
	raw := `{
		"categories": [{"id": 1, "name": "Food", "budget": "500", "actual": 470.5, "color": "#2ecc71"}],
		"incomeCategories": [],
		"transactions": [{"id": 1, "date": "2025-07-02", "category": "Food", "amount": "85.25", "description": "Groceries"}],
		"incomes": [],
		"creditCards": [],
		"monthlySummary": [],
		"totalBudget": 500,
		"totalExpenses": 85.25,
		"totalIncome": 0,
		"income": 0
	}`

	doc, migration, err := Decode([]byte(raw))
	require.NoError(t, err)
	assert.False(t, migration.Applied())
	assert.Equal(t, "470.5", doc.Categories[0].Actual.String())
	assert.Equal(t, "85.25", doc.Transactions[0].Amount.String())
	// Present but empty collections are not backfilled
	assert.Empty(t, doc.IncomeCategories)
	assert.Empty(t, doc.Incomes)
	assert.True(t, doc.TotalIncome.IsZero())
}

func TestDecode_BackfillsLegacyShape(t *testing.T) {
	legacy := `{
		"categories": [{"id": 1, "name": "Food", "budget": 500, "actual": 100, "color": "#2ecc71"}],
		"transactions": [{"id": 1, "date": "2025-07-02", "category": "Food", "amount": 100, "description": "Groceries"}],
		"creditCards": [],
		"monthlySummary": [{"month": "Jul", "income": 3000, "expenses": 100}],
		"totalBudget": 500,
		"totalExpenses": 100,
		"income": 3000
	}`

	doc, migration, err := Decode([]byte(legacy))
	require.NoError(t, err)

	assert.True(t, migration.IncomeCategories)
	assert.True(t, migration.Incomes)
	assert.True(t, migration.TotalIncome)
	assert.True(t, migration.FromLegacyIncome)

	defaults := domain.DefaultDocument()
	assert.Equal(t, defaults.IncomeCategories, doc.IncomeCategories)
	assert.Equal(t, defaults.Incomes, doc.Incomes)
	assert.Equal(t, "3000", doc.TotalIncome.String())
	assert.Equal(t, "3000", doc.Income.String())

	// Other fields pass through unchanged
	assert.Len(t, doc.Categories, 1)
	assert.Equal(t, "Food", doc.Categories[0].Name)
	assert.Equal(t, "500", doc.TotalBudget.String())
	assert.Equal(t, "100", doc.TotalExpenses.String())
	assert.Len(t, doc.MonthlySummary, 1)
}

func TestDecode_MissingTotalIncomeWithoutLegacyUsesDefault(t *testing.T) {
	doc, migration, err := Decode([]byte(`{"categories": [], "incomes": [], "incomeCategories": []}`))
	require.NoError(t, err)

	assert.True(t, migration.TotalIncome)
	assert.False(t, migration.FromLegacyIncome)
	assert.False(t, migration.Incomes)
	assert.Equal(t, "4200", doc.TotalIncome.String())
}

func TestDecode_NullCollectionsAreBackfilled(t *testing.T) {
	doc, migration, err := Decode([]byte(`{"incomeCategories": null, "incomes": null, "totalIncome": 10}`))
	require.NoError(t, err)

	assert.True(t, migration.IncomeCategories)
	assert.True(t, migration.Incomes)
	assert.False(t, migration.TotalIncome)
	assert.Len(t, doc.IncomeCategories, 5)
	assert.Equal(t, "10", doc.TotalIncome.String())
}
