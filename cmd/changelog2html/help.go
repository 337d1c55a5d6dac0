package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: changelog2html [flags] [input.md]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a Markdown changelog as a styled HTML page.")
	fmt.Fprintln(w, "Without arguments, reads ./changelog.md (and ./style.css if present)")
	fmt.Fprintln(w, "and writes the page to stdout.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output HTML file")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -t, --timeout <d>         Conversion timeout (default 30s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -s, --style <s>           Style name or path to a .css file")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with styles/ and templates/")
	fmt.Fprintln(w, "      --title <s>           Page title (\"\" = first level-1 heading)")
	fmt.Fprintln(w, "      --font-url <url>      Web font stylesheet")
	fmt.Fprintln(w, "      --date-format <s>     Release date format")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show conversion details")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  CHANGELOG2HTML_CONFIG, CHANGELOG2HTML_STYLE, CHANGELOG2HTML_TIMEOUT,")
	fmt.Fprintln(w, "  CHANGELOG2HTML_OUTPUT, CHANGELOG2HTML_TITLE, CHANGELOG2HTML_DATE_FORMAT")
}
