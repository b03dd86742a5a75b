package service

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/sma-adp-dashboard/internal/entity"
	appErrors "github.com/noah-isme/sma-adp-dashboard/pkg/errors"
	"github.com/noah-isme/sma-adp-dashboard/pkg/export"
)

// Export formats.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type exportRecorder interface {
	RecordExport(entity, format string)
}

// ExportFile is a rendered export ready to be sent to the browser.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ExportService renders list views into downloadable files.
type ExportService struct {
	csv     csvRenderer
	pdf     pdfRenderer
	metrics exportRecorder
	logger  *zap.Logger
	now     func() time.Time
}

// NewExportService constructs an ExportService, defaulting the renderers.
func NewExportService(logger *zap.Logger, metrics exportRecorder, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{csv: csv, pdf: pdf, metrics: metrics, logger: logger, now: time.Now}
}

// BuildDataset projects records onto the export columns of their schema.
func BuildDataset[T any](title string, columns []entity.Column[T], records []T) export.Dataset {
	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
	}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = col.Value(record)
		}
		rows = append(rows, row)
	}
	return export.Dataset{Title: title, Headers: headers, Rows: rows}
}

// Render encodes data in format for the named entity.
func (s *ExportService) Render(entityName, format string, data export.Dataset) (*ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = ExportFormatCSV
	}

	var (
		body        []byte
		err         error
		contentType string
	)
	switch format {
	case ExportFormatCSV:
		body, err = s.csv.Render(data)
		contentType = "text/csv"
	case ExportFormatPDF:
		body, err = s.pdf.Render(data)
		contentType = "application/pdf"
	default:
		return nil, appErrors.Validation("unsupported export format", map[string]string{"format": "must be one of: csv, pdf"})
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	if s.metrics != nil {
		s.metrics.RecordExport(entityName, format)
	}
	s.logger.Info("list exported", zap.String("entity", entityName), zap.String("format", format), zap.Int("rows", len(data.Rows)))

	return &ExportFile{
		Filename:    fmt.Sprintf("%s-%s.%s", entityName, s.now().UTC().Format("20060102-150405"), format),
		ContentType: contentType,
		Body:        body,
	}, nil
}
