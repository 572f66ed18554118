package budget

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dafibh/fortuna/budget-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// Migration records which fields were backfilled while decoding an older document shape
type Migration struct {
	IncomeCategories bool
	Incomes          bool
	// TotalIncome is set when totalIncome was missing. FromLegacyIncome tells whether
	// it was taken from the legacy income field or from the defaults.
	TotalIncome      bool
	FromLegacyIncome bool
}

// Applied reports whether any field was backfilled
func (m Migration) Applied() bool {
	return m.IncomeCategories || m.Incomes || m.TotalIncome
}

// storedDocument mirrors BudgetDocument with optional fields so that missing keys
// can be told apart from empty values
type storedDocument struct {
	Categories       []domain.ExpenseCategory     `json:"categories"`
	IncomeCategories *[]domain.IncomeCategory     `json:"incomeCategories"`
	Transactions     []domain.Transaction         `json:"transactions"`
	Incomes          *[]domain.Income             `json:"incomes"`
	CreditCards      []domain.CreditCard          `json:"creditCards"`
	MonthlySummary   []domain.MonthlySummaryEntry `json:"monthlySummary"`
	TotalBudget      decimal.Decimal              `json:"totalBudget"`
	TotalExpenses    decimal.Decimal              `json:"totalExpenses"`
	TotalIncome      *decimal.Decimal             `json:"totalIncome"`
	Income           *decimal.Decimal             `json:"income"`
}

// Encode serializes the document to its stored JSON form
func Encode(doc domain.BudgetDocument) ([]byte, error) {
	data, err := json.Marshal(doc.Clone())
	if err != nil {
		return nil, fmt.Errorf("encode budget document: %w", err)
	}
	return data, nil
}

// Decode parses a stored document and backfills fields missing from older shapes.
// Empty input and a JSON null decode to ErrDocumentNotFound; anything unparseable
// is ErrCorruptDocument.
func Decode(raw []byte) (domain.BudgetDocument, Migration, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return domain.BudgetDocument{}, Migration{}, domain.ErrDocumentNotFound
	}
	if trimmed[0] != '{' {
		return domain.BudgetDocument{}, Migration{}, fmt.Errorf("%w: not a JSON object", domain.ErrCorruptDocument)
	}

	var stored storedDocument
	if err := json.Unmarshal(trimmed, &stored); err != nil {
		return domain.BudgetDocument{}, Migration{}, fmt.Errorf("%w: %v", domain.ErrCorruptDocument, err)
	}

	doc, migration := normalize(stored)
	return doc, migration, nil
}

// normalize converts a stored document to a BudgetDocument. Missing incomeCategories
// and incomes come from the defaults; a missing totalIncome comes from the legacy
// income field, else from the defaults. Present fields are never changed.
func normalize(stored storedDocument) (domain.BudgetDocument, Migration) {
	defaults := domain.DefaultDocument()
	var m Migration

	doc := domain.BudgetDocument{
		Categories:     stored.Categories,
		Transactions:   stored.Transactions,
		CreditCards:    stored.CreditCards,
		MonthlySummary: stored.MonthlySummary,
		TotalBudget:    stored.TotalBudget,
		TotalExpenses:  stored.TotalExpenses,
	}

	if stored.IncomeCategories != nil {
		doc.IncomeCategories = *stored.IncomeCategories
	} else {
		doc.IncomeCategories = defaults.IncomeCategories
		m.IncomeCategories = true
	}

	if stored.Incomes != nil {
		doc.Incomes = *stored.Incomes
	} else {
		doc.Incomes = defaults.Incomes
		m.Incomes = true
	}

	if stored.Income != nil {
		doc.Income = *stored.Income
	}

	switch {
	case stored.TotalIncome != nil:
		doc.TotalIncome = *stored.TotalIncome
	case stored.Income != nil:
		doc.TotalIncome = *stored.Income
		m.TotalIncome = true
		m.FromLegacyIncome = true
	default:
		doc.TotalIncome = defaults.TotalIncome
		m.TotalIncome = true
	}

	return doc.Clone(), m
}
