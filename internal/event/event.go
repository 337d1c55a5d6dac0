// Package event defines the flat, pre-order parse event stream consumed by
// the changelog readers, and the single-use forward cursor over it.
package event

// Kind classifies a parse event.
type Kind int

// Event kinds.
const (
	KindDocument  Kind = iota // document root
	KindBlock                 // paragraph, list, list item and other block structure
	KindHeading               // heading; Level is set
	KindText                  // text leaf; Literal is set
	KindInline                // inline container: emphasis, link, code span...
	KindLineBreak             // soft or hard line break following a text leaf
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindDocument:
		return "document"
	case KindBlock:
		return "block"
	case KindHeading:
		return "heading"
	case KindText:
		return "text"
	case KindInline:
		return "inline"
	case KindLineBreak:
		return "linebreak"
	default:
		return "unknown"
	}
}

// Event is one step of a pre-order walk over the document tree.
// Containers produce an entering and a leaving event; leaves
// (Text, LineBreak) produce a single entering event.
type Event struct {
	Kind     Kind
	Level    int    // heading depth, only for KindHeading
	Literal  string // text payload, only for KindText
	Entering bool
}

// IsHeading reports whether e is a heading event at or above the given
// depth (a smaller number is a higher heading).
func (e Event) IsHeading(maxLevel int) bool {
	return e.Kind == KindHeading && e.Level <= maxLevel
}

// IsHeadingEnter reports whether e opens a heading of exactly the given level.
func (e Event) IsHeadingEnter(level int) bool {
	return e.Kind == KindHeading && e.Entering && e.Level == level
}

// Heading returns an entering or leaving heading event.
func Heading(level int, entering bool) Event {
	return Event{Kind: KindHeading, Level: level, Entering: entering}
}

// Text returns a text leaf event.
func Text(literal string) Event {
	return Event{Kind: KindText, Literal: literal, Entering: true}
}

// Inline returns an entering or leaving inline container event.
func Inline(entering bool) Event {
	return Event{Kind: KindInline, Entering: entering}
}

// Block returns an entering or leaving block event.
func Block(entering bool) Event {
	return Event{Kind: KindBlock, Entering: entering}
}

// LineBreak returns a line break leaf event.
func LineBreak() Event {
	return Event{Kind: KindLineBreak, Entering: true}
}
