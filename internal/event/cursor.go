package event

// Cursor is a single-use forward position over a materialized event list.
// Events are handed out exactly once, in order. Readers share one Cursor
// and pass control cooperatively: a reader consumes what it owns and
// leaves the first foreign event in place for its caller.
type Cursor struct {
	events []Event
	pos    int
}

// NewCursor returns a Cursor positioned before the first event.
func NewCursor(events []Event) *Cursor {
	return &Cursor{events: events}
}

// Next consumes and returns the next event.
// It returns false once the stream is exhausted.
func (c *Cursor) Next() (Event, bool) {
	if c.pos >= len(c.events) {
		return Event{}, false
	}
	e := c.events[c.pos]
	c.pos++
	return e, true
}

// Peek returns the next event without consuming it.
func (c *Cursor) Peek() (Event, bool) {
	if c.pos >= len(c.events) {
		return Event{}, false
	}
	return c.events[c.pos], true
}

// Done reports whether every event has been consumed.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.events)
}

// Len returns the total number of events in the stream.
func (c *Cursor) Len() int {
	return len(c.events)
}
