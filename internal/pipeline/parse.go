package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-changelog2html/internal/event"
)

// ErrParse indicates the document could not be turned into events.
var ErrParse = errors.New("markdown parsing failed")

// EventParser abstracts Markdown to event stream conversion.
type EventParser interface {
	Parse(ctx context.Context, content string) ([]event.Event, error)
}

// GoldmarkParser parses Markdown with goldmark (pure Go) and flattens the
// AST into a pre-order event stream.
type GoldmarkParser struct {
	md goldmark.Markdown
}

// NewGoldmarkParser creates a GoldmarkParser with strikethrough enabled,
// so ~~text~~ reaches the readers as inline structure rather than text.
func NewGoldmarkParser() *GoldmarkParser {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Strikethrough,
		),
	)
	return &GoldmarkParser{md: md}
}

// Parse converts Markdown content to events.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (p *GoldmarkParser) Parse(ctx context.Context, content string) ([]event.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type result struct {
		events []event.Event
		err    error
	}

	done := make(chan result, 1)

	go func() {
		source := []byte(content)
		doc := p.md.Parser().Parse(text.NewReader(source))
		events, err := flatten(doc, source)
		if err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrParse, err)}
			return
		}
		done <- result{events: events}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.events, r.err
	}
}

// flatten walks the AST in pre-order. Containers yield an entering and a
// leaving event; text leaves yield one event with backslash escapes
// resolved, followed by a line break event when the source line ends there.
func flatten(doc ast.Node, source []byte) ([]event.Event, error) {
	var events []event.Event

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Text:
			if entering {
				events = append(events, event.Text(string(util.UnescapePunctuations(node.Segment.Value(source)))))
				if node.SoftLineBreak() || node.HardLineBreak() {
					events = append(events, event.LineBreak())
				}
			}
		case *ast.String:
			if entering {
				events = append(events, event.Text(string(node.Value)))
			}
		case *ast.AutoLink:
			if entering {
				events = append(events, event.Text(string(node.Label(source))))
			}
			return ast.WalkSkipChildren, nil
		case *ast.Heading:
			events = append(events, event.Heading(node.Level, entering))
		case *ast.Document:
			events = append(events, event.Event{Kind: event.KindDocument, Entering: entering})
		default:
			switch n.Type() {
			case ast.TypeInline:
				events = append(events, event.Inline(entering))
			default:
				events = append(events, event.Block(entering))
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	return events, nil
}
