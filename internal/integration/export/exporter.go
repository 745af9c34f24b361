package export

import (
	"bytes"
	"context"
	"fmt"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// Exporter implements adapter.ReportExporter.
type Exporter struct {
	renderers     Renderers
	defaultFormat Format
}

// NewExporter creates an Exporter. defaultFormat is used when a request leaves
// the format empty; an unknown value falls back to PDF.
func NewExporter(defaultFormat string) adapter.ReportExporter {
	f, ok := ParseFormat(defaultFormat)
	if !ok {
		f = FormatPDF
	}
	return &Exporter{
		renderers:     NewRenderers(),
		defaultFormat: f,
	}
}

// Export builds the requested report and renders it.
func (e *Exporter) Export(ctx context.Context, req adapter.ReportRequest) (*adapter.ExportedFile, error) {
	format := e.defaultFormat
	if req.Format != "" {
		f, ok := ParseFormat(req.Format)
		if !ok {
			return nil, domainerror.NewExportError(
				domainerror.ErrCodeUnsupportedExportFormat,
				fmt.Sprintf("format %q is not supported, use pdf, md or html", req.Format),
				domainerror.ErrUnsupportedExportFormat,
			)
		}
		format = f
	}

	renderer, err := e.renderers.Get(format)
	if err != nil {
		return nil, err
	}

	var doc Document
	switch req.Kind {
	case adapter.ReportTransactions:
		doc = TransactionDocument(BuildTransactionReport(req.Transactions, req.Catalog, req.GeneratedAt))
	case adapter.ReportFood:
		doc = PeopleDocument(BuildFoodReport(req.Transactions, req.People, req.GeneratedAt))
	case adapter.ReportSpecialPeople:
		doc = PeopleDocument(BuildSpecialPeopleReport(req.Transactions, req.People, req.GeneratedAt))
	default:
		return nil, fmt.Errorf("unknown report kind %q", req.Kind)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, doc); err != nil {
		return nil, domainerror.NewExportError(domainerror.ErrCodeRenderFailed, "failed to render report", err)
	}

	return &adapter.ExportedFile{
		FileName:    FileName(string(req.Kind), doc, format),
		ContentType: renderer.ContentType(),
		Content:     buf.Bytes(),
	}, nil
}
