package export

import (
	"bufio"
	"io"
	"strings"
)

// MarkdownRenderer writes GitHub-flavoured Markdown tables.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

func (*MarkdownRenderer) Format() Format { return FormatMarkdown }

func (*MarkdownRenderer) ContentType() string { return "text/markdown; charset=utf-8" }

// Render implements Renderer.
func (*MarkdownRenderer) Render(w io.Writer, doc Document) error {
	bw := bufio.NewWriter(w)

	bw.WriteString("# " + escapeMarkdown(doc.Title) + "\n\n")
	if doc.Subtitle != "" {
		bw.WriteString("_" + escapeMarkdown(doc.Subtitle) + "_\n\n")
	}

	for _, b := range doc.Blocks {
		switch b.Kind {
		case BlockHeading:
			bw.WriteString("## " + escapeMarkdown(b.Text) + "\n\n")
		case BlockParagraph:
			bw.WriteString(escapeMarkdown(b.Text) + "\n\n")
		case BlockTable:
			writeMarkdownTable(bw, b.Table)
		}
	}

	return bw.Flush()
}

func writeMarkdownTable(w *bufio.Writer, t *Table) {
	if t.Caption != "" {
		w.WriteString("**" + escapeMarkdown(t.Caption) + "**\n\n")
	}

	writeRow := func(cells []string) {
		w.WriteString("|")
		for i := range t.Columns {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			w.WriteString(" " + escapeCell(cell) + " |")
		}
		w.WriteString("\n")
	}

	writeRow(t.Columns)
	w.WriteString("|")
	for range t.Columns {
		w.WriteString(" --- |")
	}
	w.WriteString("\n")
	for _, row := range t.Rows {
		writeRow(row)
	}
	if len(t.Footer) > 0 {
		bold := make([]string, len(t.Footer))
		for i, c := range t.Footer {
			if c != "" {
				bold[i] = "**" + c + "**"
			}
		}
		writeRow(bold)
	}
	w.WriteString("\n")
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"#", `\#`,
	"<", "&lt;",
	">", "&gt;",
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

func escapeCell(s string) string {
	if strings.HasPrefix(s, "**") && strings.HasSuffix(s, "**") && len(s) > 4 {
		return "**" + escapeCell(s[2:len(s)-2]) + "**"
	}
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(escapeMarkdown(s), "|", `\|`)
}
