package changelog

import "github.com/alnah/go-changelog2html/internal/event"

// heading returns the events of a heading whose text is split into fragments.
func heading(level int, fragments ...string) []event.Event {
	evs := []event.Event{event.Heading(level, true)}
	for _, f := range fragments {
		evs = append(evs, event.Text(f))
	}
	return append(evs, event.Heading(level, false))
}

// para returns the events of a paragraph holding one line per argument.
func para(lines ...string) []event.Event {
	evs := []event.Event{event.Block(true)}
	for i, l := range lines {
		evs = append(evs, event.Text(l))
		if i < len(lines)-1 {
			evs = append(evs, event.LineBreak())
		}
	}
	return append(evs, event.Block(false))
}

// item wraps events in a list item.
func item(inner []event.Event) []event.Event {
	evs := []event.Event{event.Block(true)}
	evs = append(evs, inner...)
	return append(evs, event.Block(false))
}

func stream(parts ...[]event.Event) *event.Cursor {
	var all []event.Event
	for _, p := range parts {
		all = append(all, p...)
	}
	return event.NewCursor(all)
}

type categorySnapshot struct {
	Label        string
	Descriptions []string
}

type taskSnapshot struct {
	Name       string
	Categories []categorySnapshot
}

type releaseSnapshot struct {
	Name  string
	Date  string
	Tasks []taskSnapshot
}

func snapshotTasks(t *Tasks) []taskSnapshot {
	var out []taskSnapshot
	for _, name := range t.Names() {
		cats, _ := t.Get(name)
		ts := taskSnapshot{Name: name}
		for _, label := range cats.Labels() {
			ts.Categories = append(ts.Categories, categorySnapshot{
				Label:        label,
				Descriptions: cats.Descriptions(label),
			})
		}
		out = append(out, ts)
	}
	return out
}

func snapshot(r *Release) releaseSnapshot {
	return releaseSnapshot{Name: r.Name, Date: r.Date, Tasks: snapshotTasks(r.Tasks)}
}

// recordingVisitor collects skipped heading texts.
type recordingVisitor struct {
	skipped []string
}

func (v *recordingVisitor) SkippedHeading(_ int, text string) {
	v.skipped = append(v.skipped, text)
}
