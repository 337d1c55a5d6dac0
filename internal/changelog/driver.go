package changelog

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/alnah/go-changelog2html/internal/annotate"
	"github.com/alnah/go-changelog2html/internal/event"
)

// PageTitleLevel is the heading level whose first occurrence names the page.
const PageTitleLevel = 1

// Summary describes one driver run.
type Summary struct {
	Title    string // text of the first level-1 heading, if any
	Rendered int    // releases written
	Dropped  int    // releases without tasks
}

// Driver walks the whole event stream and renders releases in document order.
type Driver struct {
	// FormatDate rewrites a release date before rendering. Optional.
	FormatDate func(string) string

	log      *zap.Logger
	renderer *Renderer
}

// NewDriver returns a Driver logging to log. A nil logger is replaced by
// a no-op logger.
func NewDriver(log *zap.Logger) *Driver {
	if log == nil {
		log = zap.NewNop()
	}
	d := &Driver{log: log}
	d.renderer = &Renderer{Annotate: d.annotate}
	return d
}

// Run consumes cur to exhaustion and writes one HTML block per release
// that has at least one task, each followed by a newline.
func (d *Driver) Run(cur *event.Cursor, w io.Writer) (Summary, error) {
	var sum Summary

	for {
		ev, ok := cur.Next()
		if !ok {
			return sum, nil
		}
		if ev.Kind != event.KindHeading || !ev.Entering {
			continue
		}

		switch ev.Level {
		case ReleaseLevel:
			release := ReadRelease(cur, d)
			if release.Tasks.Len() == 0 {
				sum.Dropped++
				d.log.Debug("release dropped: no tasks", zap.String("release", release.Name))
				continue
			}
			if d.FormatDate != nil && release.HasDate() {
				release.Date = d.FormatDate(release.Date)
			}
			if err := d.renderer.Render(w, release); err != nil {
				return sum, fmt.Errorf("rendering release %q: %w", release.Name, err)
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return sum, fmt.Errorf("rendering release %q: %w", release.Name, err)
			}
			sum.Rendered++
		case PageTitleLevel:
			text := ReadHeadingText(cur)
			if sum.Title == "" {
				sum.Title = text
			}
		default:
			d.SkippedHeading(ev.Level, ReadHeadingText(cur))
		}
	}
}

// SkippedHeading logs a heading outside the changelog dialect.
func (d *Driver) SkippedHeading(level int, text string) {
	d.log.Debug("heading skipped", zap.Int("level", level), zap.String("text", text))
}

func (d *Driver) annotate(s string) string {
	out, stats := annotate.AnnotateStats(s)
	if stats.Unterminated {
		d.log.Debug("unterminated inline marker left literal", zap.String("description", s))
	}
	return out
}

var _ Visitor = (*Driver)(nil)
