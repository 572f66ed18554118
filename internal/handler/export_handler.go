package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/dafibh/fortuna/budget-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ExportHandler serves downloadable renderings of the document
type ExportHandler struct {
	store   *service.BudgetStore
	exports *service.ExportService
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(store *service.BudgetStore, exports *service.ExportService) *ExportHandler {
	return &ExportHandler{store: store, exports: exports}
}

// ExportPDF godoc
// @Summary Download the budget summary as PDF
// @Tags export
// @Produce application/pdf
// @Security BearerAuth
// @Success 200 {file} binary
// @Router /export/pdf [get]
func (h *ExportHandler) ExportPDF(c echo.Context) error {
	return h.export(c, service.ExportFormatPDF)
}

// ExportXLSX godoc
// @Summary Download the budget as an Excel workbook
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} binary
// @Router /export/xlsx [get]
func (h *ExportHandler) ExportXLSX(c echo.Context) error {
	return h.export(c, service.ExportFormatXLSX)
}

func (h *ExportHandler) export(c echo.Context, format service.ExportFormat) error {
	file, err := h.exports.File(format)
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	// render fully before writing headers so a failure can still be reported
	var buf bytes.Buffer
	if err := h.exports.Render(&buf, format, h.store.Snapshot()); err != nil {
		log.Error().Err(err).Str("format", string(format)).Msg("Failed to render export")
		return NewInternalError(c, "Failed to generate export")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Name))
	return c.Blob(http.StatusOK, file.ContentType, buf.Bytes())
}
