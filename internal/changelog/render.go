package changelog

import (
	"bufio"
	"io"
	"strings"

	"github.com/alnah/go-changelog2html/internal/annotate"
)

// Renderer turns a Release into an HTML block.
type Renderer struct {
	// Annotate rewrites one description. Defaults to annotate.Annotate.
	Annotate func(string) string
}

// RenderRelease writes r with the default annotator.
func RenderRelease(w io.Writer, r *Release) error {
	return (&Renderer{}).Render(w, r)
}

// Render writes the HTML block for r to w.
func (rd *Renderer) Render(w io.Writer, r *Release) error {
	annotateFn := rd.Annotate
	if annotateFn == nil {
		annotateFn = annotate.Annotate
	}

	bw := bufio.NewWriter(w)

	if r.HasDate() {
		bw.WriteString(`<h2 class="changelog__release">` + r.Name +
			` - <span class="changelog__release__date">` + r.Date + "</span></h2>\n")
	} else {
		bw.WriteString(`<h2 class="changelog__release">` + r.Name + "</h2>\n")
	}

	for _, name := range r.Tasks.Names() {
		cats, _ := r.Tasks.Get(name)

		bw.WriteString(`<h3 class="changelog__change-title">` + name + "</h3>\n")
		bw.WriteString("<ul>\n")
		for _, label := range cats.Labels() {
			for _, desc := range cats.Descriptions(label) {
				bw.WriteString(`<li><span class="changelog__badge changelog__badge--` +
					strings.ToLower(label) + `">` + label + "</span> " + annotateFn(desc) + "</li>\n")
			}
		}
		bw.WriteString("</ul>\n")
	}

	return bw.Flush()
}
