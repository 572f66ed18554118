package export

import (
	"fmt"
	"io"
	"time"

	"github.com/dafibh/fortuna/budget-backend/internal/domain"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the workbook, in order
const (
	SheetOverview       = "Overview"
	SheetCategories     = "Categories"
	SheetTransactions   = "Transactions"
	SheetIncomes        = "Incomes"
	SheetCreditCards    = "Credit Cards"
	SheetMonthlySummary = "Monthly Summary"
)

// WriteXLSX renders the full document as a workbook with one sheet per collection
func WriteXLSX(w io.Writer, doc domain.BudgetDocument, generatedAt time.Time) error {
	f := excelize.NewFile()
	defer f.Close()

	// The default sheet becomes the overview
	if err := f.SetSheetName("Sheet1", SheetOverview); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	overview := [][]interface{}{
		{"Personal Budget Summary"},
		{"Generated on", generatedAt.Format(domain.DateLayout)},
	}
	for _, row := range overviewRows(doc) {
		overview = append(overview, []interface{}{row[0], row[1]})
	}
	if err := writeRows(f, SheetOverview, nil, overview); err != nil {
		return err
	}

	categories := make([][]interface{}, 0, len(doc.Categories))
	for _, c := range doc.Categories {
		categories = append(categories, []interface{}{c.ID, c.Name, c.Budget.InexactFloat64(), c.Actual.InexactFloat64(), c.Remaining().InexactFloat64(), c.Color})
	}
	if err := writeSheet(f, SheetCategories, []string{"ID", "Category", "Budget", "Actual", "Remaining", "Color"}, categories); err != nil {
		return err
	}

	transactions := make([][]interface{}, 0, len(doc.Transactions))
	for _, tx := range doc.Transactions {
		transactions = append(transactions, []interface{}{tx.ID, tx.Date.String(), tx.Category, tx.Amount.InexactFloat64(), tx.Description})
	}
	if err := writeSheet(f, SheetTransactions, []string{"ID", "Date", "Category", "Amount", "Description"}, transactions); err != nil {
		return err
	}

	incomes := make([][]interface{}, 0, len(doc.Incomes))
	for _, inc := range doc.Incomes {
		incomes = append(incomes, []interface{}{inc.ID, inc.Date.String(), inc.Category, inc.Amount.InexactFloat64(), inc.Description})
	}
	if err := writeSheet(f, SheetIncomes, []string{"ID", "Date", "Category", "Amount", "Description"}, incomes); err != nil {
		return err
	}

	cards := make([][]interface{}, 0, len(doc.CreditCards))
	for _, card := range doc.CreditCards {
		cards = append(cards, []interface{}{card.ID, card.Name, card.Limit.InexactFloat64(), card.Balance.InexactFloat64(), card.Available().InexactFloat64()})
	}
	if err := writeSheet(f, SheetCreditCards, []string{"ID", "Card Name", "Credit Limit", "Current Balance", "Available Credit"}, cards); err != nil {
		return err
	}

	months := make([][]interface{}, 0, len(doc.MonthlySummary))
	for _, m := range doc.MonthlySummary {
		months = append(months, []interface{}{m.Month, m.Income.InexactFloat64(), m.Expenses.InexactFloat64(), m.Net().InexactFloat64()})
	}
	if err := writeSheet(f, SheetMonthlySummary, []string{"Month", "Income", "Expenses", "Net"}, months); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]interface{}) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}
	return writeRows(f, sheet, header, rows)
}

func writeRows(f *excelize.File, sheet string, header []string, rows [][]interface{}) error {
	start := 1
	if header != nil {
		values := make([]interface{}, len(header))
		for i, h := range header {
			values[i] = h
		}
		if err := f.SetSheetRow(sheet, "A1", &values); err != nil {
			return fmt.Errorf("write %s header: %w", sheet, err)
		}
		start = 2
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, start+i)
		if err != nil {
			return err
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
