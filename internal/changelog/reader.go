package changelog

import (
	"strings"

	"github.com/alnah/go-changelog2html/internal/event"
)

// Heading levels of the changelog dialect.
const (
	ReleaseLevel  = 2
	CategoryLevel = 3
)

// Separator splits release titles into name and date, and task lines
// into name and description.
const Separator = " - "

// Visitor receives notifications about input the readers skip or
// recover from. A nil Visitor is allowed.
type Visitor interface {
	SkippedHeading(level int, text string)
}

// ReadHeadingText consumes events up to and including the exit of the
// current heading and returns the concatenated text fragments.
// The cursor must be positioned just after the heading's entering event.
// A missing exit is treated as end of heading.
func ReadHeadingText(cur *event.Cursor) string {
	var b strings.Builder
	for {
		ev, ok := cur.Next()
		if !ok || ev.Kind == event.KindHeading {
			return b.String()
		}
		if ev.Kind == event.KindText {
			b.WriteString(ev.Literal)
		}
	}
}

// ReadRelease reconstructs one release. The cursor must be positioned
// just after a release-level heading's entering event. On return the
// cursor is in front of the next heading at or above ReleaseLevel, or
// exhausted.
func ReadRelease(cur *event.Cursor, v Visitor) *Release {
	name, date := SplitTitle(ReadHeadingText(cur))
	release := &Release{Name: name, Date: date, Tasks: NewTasks()}

	for {
		ev, ok := cur.Peek()
		if !ok || ev.IsHeading(ReleaseLevel) {
			return release
		}
		cur.Next()

		switch {
		case ev.IsHeadingEnter(CategoryLevel):
			ReadTaskSection(cur, release.Tasks, v)
		case ev.Kind == event.KindHeading && ev.Entering:
			skipHeading(cur, ev.Level, v)
		}
	}
}

// ReadTaskSection reads one category sub-tree into tasks. The cursor must
// be positioned just after a category-level heading's entering event. On
// return the cursor is in front of the next heading at or above
// CategoryLevel, or exhausted.
func ReadTaskSection(cur *event.Cursor, tasks *Tasks, v Visitor) {
	category := strings.TrimSpace(ReadHeadingText(cur))

	for {
		ev, ok := cur.Peek()
		if !ok || ev.IsHeading(CategoryLevel) {
			return
		}

		switch {
		case ev.Kind == event.KindText:
			line := readTextRun(cur)
			name, desc := SplitTaskLine(line)
			if name == "" {
				continue
			}
			tasks.Add(name, category, desc)
		case ev.Kind == event.KindHeading && ev.Entering:
			cur.Next()
			skipHeading(cur, ev.Level, v)
		default:
			cur.Next()
		}
	}
}

// readTextRun concatenates a contiguous run of text events. Inline
// containers such as emphasis do not end the run; line breaks, block
// boundaries and headings do. The terminating event is left unconsumed.
func readTextRun(cur *event.Cursor) string {
	var b strings.Builder
	for {
		ev, ok := cur.Peek()
		if !ok {
			return b.String()
		}
		switch ev.Kind {
		case event.KindText:
			b.WriteString(ev.Literal)
		case event.KindInline:
		default:
			return b.String()
		}
		cur.Next()
	}
}

// skipHeading consumes a heading the readers do not interpret.
func skipHeading(cur *event.Cursor, level int, v Visitor) {
	text := ReadHeadingText(cur)
	if v != nil {
		v.SkippedHeading(level, text)
	}
}

// SplitTitle splits a release title into name and date.
func SplitTitle(title string) (name, date string) {
	return splitPair(title)
}

// SplitTaskLine splits a task line into name and description. Without a
// separator the whole line is the task name and the description is empty.
func SplitTaskLine(line string) (name, description string) {
	return splitPair(line)
}

// splitPair keeps the text before the first separator and the text between
// the first and second. Anything after a second separator is dropped.
func splitPair(s string) (first, second string) {
	parts := strings.SplitN(s, Separator, 3)
	if len(parts) > 1 {
		second = parts[1]
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(second)
}
