// Package dateutil reformats release dates using user-friendly layouts.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length to prevent abuse.
const MaxDateFormatLength = 50

// SourceLayout is the date layout recognized in release headings.
const SourceLayout = "2006-01-02"

// layoutTokens maps user tokens to Go layout fragments, longest first so
// "MMMM" wins over "MM".
var layoutTokens = [...][2]string{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets names common formats.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// ParseDateFormat converts a user format or preset name (case-insensitive)
// to a Go time layout. Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D.
// Bracketed text is copied literally: "[Released] YYYY" keeps "Released".
func ParseDateFormat(format string) (string, error) {
	if preset, ok := DatePresets[strings.ToLower(format)]; ok {
		format = preset
	}
	switch {
	case format == "":
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	case len(format) > MaxDateFormatLength:
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var layout strings.Builder
	for rest := format; rest != ""; {
		if literal, ok := strings.CutPrefix(rest, "["); ok {
			text, after, found := strings.Cut(literal, "]")
			if !found {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, len(format)-len(rest))
			}
			layout.WriteString(text)
			rest = after
			continue
		}
		frag, n := matchToken(rest)
		layout.WriteString(frag)
		rest = rest[n:]
	}
	return layout.String(), nil
}

// matchToken returns the layout fragment for the token at the start of s
// and its length, or the first byte unchanged.
func matchToken(s string) (string, int) {
	for _, t := range layoutTokens {
		if strings.HasPrefix(s, t[0]) {
			return t[1], len(t[0])
		}
	}
	return s[:1], 1
}

// Formatter rewrites ISO release dates into a configured layout.
type Formatter struct {
	layout string
}

// NewFormatter validates format and returns a Formatter for it.
func NewFormatter(format string) (*Formatter, error) {
	layout, err := ParseDateFormat(format)
	if err != nil {
		return nil, err
	}
	return &Formatter{layout: layout}, nil
}

// Format rewrites date when it is a YYYY-MM-DD date and returns any other
// value unchanged, so free-form dates like "Unreleased" survive.
func (f *Formatter) Format(date string) string {
	t, err := time.Parse(SourceLayout, strings.TrimSpace(date))
	if err != nil {
		return date
	}
	return t.Format(f.layout)
}
