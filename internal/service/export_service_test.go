package service

import (
	"bytes"
	"testing"

	"github.com/dafibh/fortuna/budget-backend/internal/domain"
	"github.com/dafibh/fortuna/budget-backend/internal/export"
	"github.com/dafibh/fortuna/budget-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExportFormat(t *testing.T) {
	f, err := ParseExportFormat("pdf")
	require.NoError(t, err)
	assert.Equal(t, ExportFormatPDF, f)

	f, err = ParseExportFormat("xlsx")
	require.NoError(t, err)
	assert.Equal(t, ExportFormatXLSX, f)

	_, err = ParseExportFormat("csv")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestExportService_File(t *testing.T) {
	svc := NewExportService()

	file, err := svc.File(ExportFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "budget-summary.pdf", file.Name)
	assert.Equal(t, export.PDFContentType, file.ContentType)

	file, err = svc.File(ExportFormatXLSX)
	require.NoError(t, err)
	assert.Equal(t, export.XLSXFileName, file.Name)

	_, err = svc.File("doc")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestExportService_Render(t *testing.T) {
	svc := NewExportService()
	svc.SetClock(testutil.FixedClock(storeNow))

	var pdf bytes.Buffer
	require.NoError(t, svc.Render(&pdf, ExportFormatPDF, domain.DefaultDocument()))
	assert.True(t, bytes.HasPrefix(pdf.Bytes(), []byte("%PDF-")))

	var xlsx bytes.Buffer
	require.NoError(t, svc.Render(&xlsx, ExportFormatXLSX, domain.DefaultDocument()))
	// xlsx files are zip archives
	assert.True(t, bytes.HasPrefix(xlsx.Bytes(), []byte("PK")))

	var none bytes.Buffer
	assert.ErrorIs(t, svc.Render(&none, "txt", domain.DefaultDocument()), domain.ErrUnsupportedFormat)
	assert.Zero(t, none.Len())
}
