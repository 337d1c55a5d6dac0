// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForInputNotFound returns a hint when the changelog file is missing.
func ForInputNotFound(path string) string {
	return format("pass the changelog as an argument or set input.path; looked for " + path)
}

// ForConfigNotFound suggests --config and a user config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-changelog2html") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForStyleNotFound lists available built-in styles.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + "; or pass a path to a .css file")
}

// ForDateFormat describes the accepted date tokens.
func ForDateFormat() string {
	return format("tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D; presets: iso, european, us, long")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
