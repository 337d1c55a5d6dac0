// Package annotate rewrites the inline conventions of changelog
// descriptions into semantic markup.
//
// Two marker kinds are recognized. A quoted span "text" becomes a quote
// span; a bracketed span [text] becomes a regression span with its first
// character upper-cased. Quotes are rewritten first over the whole string,
// then brackets over the result, so a bracket inside a quote is still
// rewritten while quote characters produced by the first pass are never
// seen again.
//
// An opening marker without a closer is left literal, together with the
// remainder of the string, and scanning for that marker kind stops.
package annotate

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Markup emitted for each marker kind.
const (
	QuoteOpen    = "<span class='changelog__quote'>"
	RegressOpen  = "<span class='changelog__regress'>"
	spanClose    = "</span>"
	quoteMarker  = '"'
	bracketOpen  = '['
	bracketClose = ']'
)

// Stats reports what a pass found.
type Stats struct {
	Quotes       int  // rewritten quote spans
	Regressions  int  // rewritten bracket spans
	Unterminated bool // an opening marker had no closer
}

// Annotate applies the quote pass then the bracket pass.
func Annotate(s string) string {
	out, _ := AnnotateStats(s)
	return out
}

// AnnotateStats is Annotate that also reports what was rewritten.
func AnnotateStats(s string) (string, Stats) {
	quoted, qs := scan(s, quoteMarker, quoteMarker, QuoteOpen, identity)
	out, bs := scan(quoted, bracketOpen, bracketClose, RegressOpen, capitalizeFirst)
	return out, Stats{
		Quotes:       qs.spans,
		Regressions:  bs.spans,
		Unterminated: qs.unterminated || bs.unterminated,
	}
}

// Quotes runs only the quote pass.
func Quotes(s string) string {
	out, _ := scan(s, quoteMarker, quoteMarker, QuoteOpen, identity)
	return out
}

// Brackets runs only the bracket pass.
func Brackets(s string) string {
	out, _ := scan(s, bracketOpen, bracketClose, RegressOpen, capitalizeFirst)
	return out
}

type scanStats struct {
	spans        int
	unterminated bool
}

// scan replaces open...close spans with open-tag + transform(inner) + close-tag,
// leftmost first. The cursor resumes at the start of the rewritten inner
// text, so an opener left inside a span is paired with a later closer.
func scan(s string, open, close byte, tag string, transform func(string) string) (string, scanStats) {
	var st scanStats

	pos := 0
	for {
		start := strings.IndexByte(s[pos:], open)
		if start < 0 {
			return s, st
		}
		start += pos

		end := strings.IndexByte(s[start+1:], close)
		if end < 0 {
			st.unterminated = true
			return s, st
		}
		end += start + 1

		s = s[:start] + tag + transform(s[start+1:end]) + spanClose + s[end+1:]
		st.spans++
		pos = start + len(tag)
	}
}

func identity(s string) string { return s }

// capitalizeFirst upper-cases the first code point and leaves the rest alone.
func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
