package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"
)

// ErrPageRender indicates the page template could not be parsed or executed.
var ErrPageRender = errors.New("page template rendering failed")

// PageData holds the values substituted into the page template.
type PageData struct {
	Title   string
	FontURL string
	CSS     string // stylesheet, embedded in a <style> block
	Body    string // rendered release blocks, trusted HTML
}

// PageAssembler defines the contract for wrapping release blocks in a page.
type PageAssembler interface {
	Assemble(ctx context.Context, w io.Writer, data *PageData) error
}

// PageInjection renders the page template around the release blocks.
type PageInjection struct {
	tmpl *template.Template
}

// NewPageInjection parses the page template.
func NewPageInjection(tmplContent string) (*PageInjection, error) {
	tmpl, err := template.New("page").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return &PageInjection{tmpl: tmpl}, nil
}

// pageView is the template's view of PageData, with trusted content typed
// so html/template leaves it unescaped.
type pageView struct {
	Title   string
	FontURL string
	CSS     template.CSS
	Body    template.HTML
}

// Assemble executes the template into w. Output is buffered so a failed
// execution writes nothing.
func (p *PageInjection) Assemble(ctx context.Context, w io.Writer, data *PageData) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	view := pageView{
		Title:   data.Title,
		FontURL: data.FontURL,
		CSS:     template.CSS(sanitizeCSS(data.CSS)), // #nosec G203 -- sanitized above
		Body:    template.HTML(data.Body),            // #nosec G203 -- produced by the renderer
	}

	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, view); err != nil {
		return fmt.Errorf("%w: %v", ErrPageRender, err)
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("writing page: %w", err)
	}
	return nil
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
