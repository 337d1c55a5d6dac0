// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// MaxReadSize bounds ReadTextFile (default 16MB).
var MaxReadSize int64 = 16 << 20

// Sentinel errors for file utility operations.
var (
	ErrFileTooLarge = errors.New("file exceeds maximum size")
	ErrNotRegular   = errors.New("not a regular file")
)

// ReadTextFile reads a whole file as a string, refusing directories and
// files larger than MaxReadSize.
func ReadTextFile(path string) (string, error) {
	f, err := os.Open(path) // #nosec G304 -- path is user-provided by design
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s", ErrNotRegular, path)
	}
	if info.Size() > MaxReadSize {
		return "", fmt.Errorf("%w: %s (%d bytes, max %d)", ErrFileTooLarge, path, info.Size(), MaxReadSize)
	}

	content, err := io.ReadAll(io.LimitReader(f, MaxReadSize+1))
	if err != nil {
		return "", err
	}
	if int64(len(content)) > MaxReadSize {
		return "", fmt.Errorf("%w: %s", ErrFileTooLarge, path)
	}
	return string(content), nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
//
// Examples:
//   - "changelog" -> false (name)
//   - "./style.css" -> true (relative path)
//   - "style.css" -> true (has an extension)
//   - "/absolute/path.css" -> true (absolute)
//   - "dark-mode" -> false (hyphenated name)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\.")
}

// IsURL returns true if the string looks like an http(s) URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
