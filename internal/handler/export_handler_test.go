package handler

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/dafibh/fortuna/budget-backend/internal/export"
	"github.com/dafibh/fortuna/budget-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportHandler_ExportPDF(t *testing.T) {
	store, _, _ := newLoadedStore(t)
	h := NewExportHandler(store, service.NewExportService())

	c, rec := newRequest(http.MethodGet, "/api/v1/export/pdf", "", "")
	require.NoError(t, h.ExportPDF(c))
	requireStatus(t, rec, http.StatusOK)

	assert.Equal(t, export.PDFContentType, rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, `attachment; filename="budget-summary.pdf"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))
}

func TestExportHandler_ExportXLSX(t *testing.T) {
	store, _, _ := newLoadedStore(t)
	h := NewExportHandler(store, service.NewExportService())

	c, rec := newRequest(http.MethodGet, "/api/v1/export/xlsx", "", "")
	require.NoError(t, h.ExportXLSX(c))
	requireStatus(t, rec, http.StatusOK)

	assert.Equal(t, export.XLSXContentType, rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "budget-summary.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(export.SheetTransactions)
	require.NoError(t, err)
	assert.Len(t, rows, 16, "header plus every transaction")
}
