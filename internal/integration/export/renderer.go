package export

import (
	"fmt"
	"io"
	"strings"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// Format names an output format.
type Format string

const (
	FormatPDF      Format = "pdf"
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
)

// ParseFormat maps a query value to a Format. Empty selects PDF.
func ParseFormat(s string) (Format, bool) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatPDF:
		return FormatPDF, true
	case FormatMarkdown, "markdown":
		return FormatMarkdown, true
	case FormatHTML:
		return FormatHTML, true
	default:
		return "", false
	}
}

// Renderer writes a Document in one format.
type Renderer interface {
	Format() Format
	ContentType() string
	Render(w io.Writer, doc Document) error
}

// Renderers indexes the available renderers by format.
type Renderers map[Format]Renderer

// NewRenderers returns the PDF, Markdown and HTML renderers.
func NewRenderers() Renderers {
	md := NewMarkdownRenderer()
	return Renderers{
		FormatPDF:      NewPDFRenderer(),
		FormatMarkdown: md,
		FormatHTML:     NewHTMLRenderer(md),
	}
}

// Get returns the renderer for f.
func (r Renderers) Get(f Format) (Renderer, error) {
	renderer, ok := r[f]
	if !ok {
		return nil, domainerror.NewExportError(
			domainerror.ErrCodeUnsupportedExportFormat,
			fmt.Sprintf("format %q is not supported", f),
			domainerror.ErrUnsupportedExportFormat,
		)
	}
	return renderer, nil
}

// FileName builds a download name such as "transactions_2024-03-01.pdf".
func FileName(prefix string, doc Document, f Format) string {
	date := strings.TrimPrefix(doc.Subtitle, "Generated on: ")
	return fmt.Sprintf("%s_%s.%s", prefix, date, f)
}
