package changelog

// Release is one versioned section of the changelog.
type Release struct {
	Name  string
	Date  string // empty when the heading has no separator
	Tasks *Tasks
}

// HasDate reports whether the release heading carried a date.
func (r *Release) HasDate() bool {
	return r.Date != ""
}

// Tasks maps task names to their categories, in first-seen order.
type Tasks struct {
	names  []string
	byName map[string]*Categories
}

// NewTasks returns an empty task mapping.
func NewTasks() *Tasks {
	return &Tasks{byName: make(map[string]*Categories)}
}

// Add appends a description under task name and category label,
// creating either entry on first use.
func (t *Tasks) Add(name, category, description string) {
	cats, ok := t.byName[name]
	if !ok {
		cats = newCategories()
		t.byName[name] = cats
		t.names = append(t.names, name)
	}
	cats.add(category, description)
}

// Len returns the number of distinct task names.
func (t *Tasks) Len() int {
	if t == nil {
		return 0
	}
	return len(t.names)
}

// Names returns task names in insertion order.
func (t *Tasks) Names() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.names...)
}

// Get returns the categories recorded for a task name.
func (t *Tasks) Get(name string) (*Categories, bool) {
	if t == nil {
		return nil, false
	}
	c, ok := t.byName[name]
	return c, ok
}

// Categories maps category labels to ordered descriptions.
// Labels keep their original case.
type Categories struct {
	labels []string
	items  map[string][]string
}

func newCategories() *Categories {
	return &Categories{items: make(map[string][]string)}
}

func (c *Categories) add(label, description string) {
	if _, ok := c.items[label]; !ok {
		c.labels = append(c.labels, label)
	}
	c.items[label] = append(c.items[label], description)
}

// Labels returns category labels in insertion order.
func (c *Categories) Labels() []string {
	return append([]string(nil), c.labels...)
}

// Descriptions returns the descriptions recorded under label.
func (c *Categories) Descriptions(label string) []string {
	return append([]string(nil), c.items[label]...)
}
