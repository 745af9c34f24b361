package export

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed templates/report.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/report.html"))

// pageData fills the page shell. Body is goldmark output and is not escaped again.
type pageData struct {
	Title string
	Body  template.HTML
}

// HTMLRenderer converts the Markdown rendering to a standalone HTML page.
type HTMLRenderer struct {
	markdown *MarkdownRenderer
	md       goldmark.Markdown
}

// NewHTMLRenderer creates an HTMLRenderer on top of markdown.
func NewHTMLRenderer(markdown *MarkdownRenderer) *HTMLRenderer {
	return &HTMLRenderer{
		markdown: markdown,
		md:       goldmark.New(goldmark.WithExtensions(extension.Table)),
	}
}

func (*HTMLRenderer) Format() Format { return FormatHTML }

func (*HTMLRenderer) ContentType() string { return "text/html; charset=utf-8" }

// Render implements Renderer.
func (r *HTMLRenderer) Render(w io.Writer, doc Document) error {
	var src bytes.Buffer
	if err := r.markdown.Render(&src, doc); err != nil {
		return err
	}

	var body bytes.Buffer
	if err := r.md.Convert(src.Bytes(), &body); err != nil {
		return fmt.Errorf("convert markdown: %w", err)
	}

	if err := pageTemplate.ExecuteTemplate(w, "report.html", pageData{
		Title: doc.Title,
		Body:  template.HTML(body.String()),
	}); err != nil {
		return fmt.Errorf("render HTML page: %w", err)
	}
	return nil
}
