package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

var (
	lineEnding = regexp.MustCompile(`\r\n?`)
	blankRun   = regexp.MustCompile(`\n{3,}`)
)

// preprocessSteps run in order; each sees the previous step's output.
var preprocessSteps = []func(string) string{
	stripByteOrderMark,
	normalizeLineEndings,
	compressBlankLines,
	ensureFinalNewline,
}

// CommonMarkPreprocessor prepares a changelog for parsing. It only touches
// encoding noise and whitespace, never text the readers interpret.
type CommonMarkPreprocessor struct{}

// PreprocessMarkdown applies every step, or returns content unchanged if
// ctx is already done.
func (p *CommonMarkPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}
	for _, step := range preprocessSteps {
		content = step(content)
	}
	return content
}

func stripByteOrderMark(s string) string {
	return strings.TrimPrefix(s, "\uFEFF")
}

// normalizeLineEndings converts \r\n and lone \r to \n.
func normalizeLineEndings(s string) string {
	return lineEnding.ReplaceAllLiteralString(s, "\n")
}

// compressBlankLines keeps at most one empty line between blocks.
func compressBlankLines(s string) string {
	return blankRun.ReplaceAllLiteralString(s, "\n\n")
}

func ensureFinalNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
