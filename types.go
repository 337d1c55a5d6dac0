package changelog2html

import (
	"time"

	"go.uber.org/zap"
)

// Input contains the data for a single conversion.
type Input struct {
	Markdown string // changelog content (required)
	CSS      string // optional stylesheet appended after the converter style
	Title    string // optional page title, overrides WithTitle and the document's level-1 heading
}

// Result describes a finished conversion.
type Result struct {
	Title    string // page title actually used
	Rendered int    // releases written to the page
	Dropped  int    // releases omitted because they list no tasks
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout    time.Duration
	styleInput string // style name or path, resolved in NewConverter
	style      string // resolved stylesheet content
	assetPath  string
	title      string
	fontURL    string
	dateFormat string
	log        *zap.Logger
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// defaultTitle is used when neither options nor the document name the page.
const defaultTitle = "Changelog"

// WithTimeout sets the conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("changelog2html: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithStyle sets the stylesheet by name ("changelog") or by file path
// ("./style.css"). Names are looked up in the asset path first, then in
// the embedded styles.
func WithStyle(nameOrPath string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = nameOrPath
	}
}

// WithAssetPath sets a directory holding styles/ and templates/ that take
// precedence over the embedded assets.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(c *Converter) {
		if log != nil {
			c.cfg.log = log
		}
	}
}

// WithTitle sets the page title, overriding the document's level-1 heading.
func WithTitle(title string) Option {
	return func(c *Converter) {
		c.cfg.title = title
	}
}

// WithFontURL sets the web font stylesheet linked from the page head.
func WithFontURL(url string) Option {
	return func(c *Converter) {
		c.cfg.fontURL = url
	}
}

// WithDateFormat reformats ISO release dates, e.g. "MMMM D, YYYY" or a
// preset such as "long". Other dates are kept verbatim.
func WithDateFormat(format string) Option {
	return func(c *Converter) {
		c.cfg.dateFormat = format
	}
}
