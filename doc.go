// Package changelog2html renders a Markdown changelog as a styled HTML report.
//
// # Quick Start
//
//	conv, err := changelog2html.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, os.Stdout, changelog2html.Input{
//	    Markdown: "## 1.0.0 - 2024-01-01\n\n### Added\n\nLogin - Google sign-in\n",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Fprintln(os.Stderr, result.Rendered, "releases")
//
// # Changelog Dialect
//
// Level-2 headings open a release ("name - date"). Level-3 headings open a
// category ("Added", "Fixed", ...). Each text line under a category is a
// task ("taskName - description"). Within descriptions, "quoted" text and
// [bracketed] text are highlighted. Releases without any task are omitted.
//
// # Conversion Pipeline
//
//  1. Markdown preprocessing (BOM, line endings, blank lines)
//  2. Parsing via Goldmark, flattened into a pre-order event stream
//  3. Cooperative readers rebuild releases, categories and tasks
//  4. Release blocks are rendered and wrapped in the page template
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := changelog2html.NewConverter(
//	    changelog2html.WithStyle("./style.css"),
//	    changelog2html.WithDateFormat("long"),
//	    changelog2html.WithLogger(logger),
//	)
//
// # Custom Assets
//
// WithAssetPath points to a directory overriding the embedded assets:
//
//	assets/
//	├── styles/
//	│   └── custom.css
//	└── templates/
//	    └── page.html
//
// # Error Handling
//
// Errors wrap the sentinels in errors.go; test them with errors.Is.
// Irregular changelog content is never an error: unterminated markers stay
// literal, lines without a separator have an empty description.
package changelog2html
