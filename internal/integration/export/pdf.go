package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

const (
	pdfLineHeight = 6.0
	pdfCellPad    = 2.0
)

// PDFRenderer lays a Document out on A4 pages with the core Helvetica font.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (*PDFRenderer) Format() Format { return FormatPDF }

func (*PDFRenderer) ContentType() string { return "application/pdf" }

// Render implements Renderer.
func (*PDFRenderer) Render(w io.Writer, doc Document) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title, true)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AliasNbPages("")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, tr(doc.Title), "", 1, "C", false, 0, "")
	if doc.Subtitle != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, pdfLineHeight, tr(doc.Subtitle), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	for _, b := range doc.Blocks {
		switch b.Kind {
		case BlockHeading:
			pdf.Ln(2)
			pdf.SetFont("Helvetica", "B", 14)
			pdf.CellFormat(0, 8, tr(b.Text), "", 1, "L", false, 0, "")
		case BlockParagraph:
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, pdfLineHeight, tr(b.Text), "", "L", false)
			pdf.Ln(1)
		case BlockTable:
			writePDFTable(pdf, tr, b.Table)
		}
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("layout pdf: %w", err)
	}
	return pdf.Output(w)
}

func writePDFTable(pdf *fpdf.Fpdf, tr func(string) string, t *Table) {
	if t.Caption != "" {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 7, tr(t.Caption), "", 1, "L", false, 0, "")
	}

	widths := columnWidths(pdf, tr, t)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, col := range t.Columns {
		pdf.CellFormat(widths[i], pdfLineHeight, tr(col), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range t.Rows {
		writePDFRow(pdf, tr, widths, row)
	}

	if len(t.Footer) > 0 {
		pdf.SetFont("Helvetica", "B", 9)
		writePDFRow(pdf, tr, widths, t.Footer)
	}
	pdf.Ln(3)
}

func writePDFRow(pdf *fpdf.Fpdf, tr func(string) string, widths []float64, row []string) {
	for i, w := range widths {
		cell := ""
		if i < len(row) {
			cell = fitText(pdf, tr(row[i]), w-pdfCellPad)
		}
		pdf.CellFormat(w, pdfLineHeight, cell, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

// columnWidths shares the printable width between columns in proportion to
// their widest cell. Cells are measured as drawn: translated to cp1252, header
// and footer in bold.
func columnWidths(pdf *fpdf.Fpdf, tr func(string) string, t *Table) []float64 {
	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	available := pageWidth - left - right

	widest := make([]float64, len(t.Columns))
	measure := func(style string, cells []string) {
		pdf.SetFont("Helvetica", style, 9)
		for i := range widest {
			if i < len(cells) {
				widest[i] = max(widest[i], pdf.GetStringWidth(tr(cells[i]))+pdfCellPad*2)
			}
		}
	}
	measure("B", t.Columns)
	for _, row := range t.Rows {
		measure("", row)
	}
	measure("B", t.Footer)

	total := 0.0
	for _, w := range widest {
		total += w
	}
	if total <= available {
		return widest
	}
	widths := make([]float64, len(widest))
	for i, w := range widest {
		widths[i] = w * available / total
	}
	return widths
}

func fitText(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	const ellipsis = "..."
	// s is already cp1252, one byte per glyph
	for len(s) > 0 && pdf.GetStringWidth(s+ellipsis) > width {
		s = s[:len(s)-1]
	}
	return s + ellipsis
}
