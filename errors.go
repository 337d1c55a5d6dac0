package changelog2html

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")
	ErrParse         = errors.New("markdown parsing failed")
	ErrRender        = errors.New("release rendering failed")
	ErrWrite         = errors.New("writing report failed")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrTemplate         = errors.New("page template failed")

	// Option validation errors.
	ErrInvalidDateFormat = errors.New("invalid date format")
)
