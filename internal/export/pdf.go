package export

import (
	"fmt"
	"io"
	"time"

	"github.com/dafibh/fortuna/budget-backend/internal/domain"
	"github.com/go-pdf/fpdf"
)

type rgb struct{ r, g, b int }

var (
	categoryHeader    = rgb{52, 152, 219}
	cardHeader        = rgb{46, 204, 113}
	transactionHeader = rgb{231, 76, 60}
	stripeFill        = rgb{245, 245, 245}
)

const (
	pageMargin   = 14.0
	contentWidth = 210.0 - 2*pageMargin
	rowHeight    = 7.0
)

// WritePDF renders the budget summary as a paginated PDF
func WritePDF(w io.Writer, doc domain.BudgetDocument, generatedAt time.Time) error {
	return writePDF(w, doc, generatedAt, true)
}

func writePDF(w io.Writer, doc domain.BudgetDocument, generatedAt time.Time, compress bool) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(compress)
	pdf.SetCreationDate(generatedAt)
	pdf.SetCatalogSort(true)
	pdf.SetTitle("Personal Budget Summary", true)
	pdf.SetMargins(pageMargin, 15, pageMargin)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AliasNbPages("{nb}")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(150, 150, 150)
		pdf.CellFormat(0, 8, fmt.Sprintf("Personal Budget Manager - Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(40, 40, 40)
	pdf.CellFormat(0, 10, "Personal Budget Summary", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, "Generated on: "+generatedAt.Format("January 2, 2006"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	sectionTitle(pdf, "Budget Overview")
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(70, 70, 70)
	for _, row := range overviewRows(doc) {
		pdf.CellFormat(0, rowHeight, row[0]+": "+row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	sectionTitle(pdf, "Budget Categories")
	categoryRows := make([][]string, 0, len(doc.Categories))
	for _, c := range doc.Categories {
		categoryRows = append(categoryRows, []string{c.Name, Money(c.Budget), Money(c.Actual), Money(c.Remaining())})
	}
	table(pdf, []string{"Category", "Budget", "Actual", "Remaining"}, categoryRows, categoryHeader)

	sectionTitle(pdf, "Credit Cards")
	cardRows := make([][]string, 0, len(doc.CreditCards))
	for _, card := range doc.CreditCards {
		cardRows = append(cardRows, []string{card.Name, Money(card.Limit), Money(card.Balance), Money(card.Available())})
	}
	table(pdf, []string{"Card Name", "Credit Limit", "Current Balance", "Available Credit"}, cardRows, cardHeader)

	sectionTitle(pdf, fmt.Sprintf("Recent Transactions (Last %d)", RecentTransactionCount))
	recent := RecentTransactions(doc.Transactions, RecentTransactionCount)
	txRows := make([][]string, 0, len(recent))
	for _, tx := range recent {
		txRows = append(txRows, []string{tx.Date.String(), tx.Category, Money(tx.Amount), tx.Description})
	}
	table(pdf, []string{"Date", "Category", "Amount", "Description"}, txRows, transactionHeader)

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func sectionTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(40, 40, 40)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
}

// table draws a striped table with equal column widths
func table(pdf *fpdf.Fpdf, header []string, rows [][]string, headerFill rgb) {
	width := contentWidth / float64(len(header))

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(headerFill.r, headerFill.g, headerFill.b)
	pdf.SetTextColor(255, 255, 255)
	for _, h := range header {
		pdf.CellFormat(width, rowHeight+1, h, "", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(60, 60, 60)
	pdf.SetFillColor(stripeFill.r, stripeFill.g, stripeFill.b)
	for i, row := range rows {
		for _, cell := range row {
			pdf.CellFormat(width, rowHeight, cell, "", 0, "L", i%2 == 1, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(8)
}
