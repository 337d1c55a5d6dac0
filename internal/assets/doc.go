// Package assets provides the stylesheets and page template for changelog reports.
//
// Assets come in two kinds, each in its own directory:
//
//	styles/{name}.css       stylesheet (embedded: changelog)
//	templates/{name}.html   page template (embedded: page)
//
// EmbeddedLoader serves the copies compiled into the binary.
// FilesystemLoader serves a user directory with the same layout.
// AssetResolver chains them: the user directory first, the embedded
// assets last, so a directory may override a single file.
//
// Names are bare stems; separators and dots are rejected, and files
// reached through symlinks must stay inside the user directory.
package assets
