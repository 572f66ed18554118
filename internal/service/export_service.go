package service

import (
	"fmt"
	"io"
	"time"

	"github.com/dafibh/fortuna/budget-backend/internal/domain"
	"github.com/dafibh/fortuna/budget-backend/internal/export"
)

// ExportFormat selects the rendered file type
type ExportFormat string

const (
	ExportFormatPDF  ExportFormat = "pdf"
	ExportFormatXLSX ExportFormat = "xlsx"
)

// ExportFile describes a rendered export for download
type ExportFile struct {
	Name        string
	ContentType string
}

// ExportService renders document snapshots to files
type ExportService struct {
	now func() time.Time
}

// NewExportService creates a new ExportService
func NewExportService() *ExportService {
	return &ExportService{now: time.Now}
}

// SetClock overrides the time stamped on generated files
func (s *ExportService) SetClock(now func() time.Time) {
	s.now = now
}

// ParseExportFormat maps a format name to an ExportFormat
func ParseExportFormat(name string) (ExportFormat, error) {
	switch ExportFormat(name) {
	case ExportFormatPDF, ExportFormatXLSX:
		return ExportFormat(name), nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, name)
}

// File returns the download name and content type for a format
func (s *ExportService) File(format ExportFormat) (ExportFile, error) {
	switch format {
	case ExportFormatPDF:
		return ExportFile{Name: export.PDFFileName, ContentType: export.PDFContentType}, nil
	case ExportFormatXLSX:
		return ExportFile{Name: export.XLSXFileName, ContentType: export.XLSXContentType}, nil
	}
	return ExportFile{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
}

// Render writes doc to w in the given format
func (s *ExportService) Render(w io.Writer, format ExportFormat, doc domain.BudgetDocument) error {
	generatedAt := s.now()
	switch format {
	case ExportFormatPDF:
		return export.WritePDF(w, doc, generatedAt)
	case ExportFormatXLSX:
		return export.WriteXLSX(w, doc, generatedAt)
	}
	return fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
}
