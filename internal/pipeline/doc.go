// Package pipeline implements the stages around the changelog readers.
//
// This package handles the collaborators of the document reconstruction:
//   - Markdown preprocessing (BOM removal, line normalization)
//   - Markdown parsing via Goldmark, flattened into a pre-order event stream
//   - Page assembly: stylesheet, font link and title around rendered releases
//
// Release reconstruction and rendering live in internal/changelog; this
// package only produces its input and wraps its output.
package pipeline
