package fileutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-changelog2html/internal/fileutil"
)

func TestReadTextFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "changelog.md")
	if err := os.WriteFile(path, []byte("## 1.0.0\n"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	got, err := fileutil.ReadTextFile(path)
	if err != nil {
		t.Fatalf("ReadTextFile() error: %v", err)
	}
	if got != "## 1.0.0\n" {
		t.Errorf("ReadTextFile() = %q", got)
	}

	if _, err := fileutil.ReadTextFile(filepath.Join(dir, "missing.md")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}

	if _, err := fileutil.ReadTextFile(dir); !errors.Is(err, fileutil.ErrNotRegular) {
		t.Errorf("directory error = %v, want ErrNotRegular", err)
	}
}

// Not parallel: mutates MaxReadSize.
func TestReadTextFile_TooLarge(t *testing.T) {
	old := fileutil.MaxReadSize
	fileutil.MaxReadSize = 8
	t.Cleanup(func() { fileutil.MaxReadSize = old })

	path := filepath.Join(t.TempDir(), "big.md")
	if err := os.WriteFile(path, []byte(strings.Repeat("x", 9)), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := fileutil.ReadTextFile(path); !errors.Is(err, fileutil.ErrFileTooLarge) {
		t.Errorf("ReadTextFile() error = %v, want ErrFileTooLarge", err)
	}
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "style.css")
	if err := os.WriteFile(path, []byte("a{}"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if !fileutil.FileExists(path) {
		t.Error("FileExists() = false for existing file")
	}
	if fileutil.FileExists(dir) {
		t.Error("FileExists() = true for directory")
	}
	if fileutil.FileExists(filepath.Join(dir, "nope")) {
		t.Error("FileExists() = true for missing file")
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"changelog", false},
		{"dark-mode", false},
		{"style.css", true},
		{"./style.css", true},
		{"/abs/style.css", true},
		{`C:\styles\a.css`, true},
	}

	for _, tt := range tests {
		if got := fileutil.IsFilePath(tt.input); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsURL(t *testing.T) {
	t.Parallel()

	if !fileutil.IsURL("https://fonts.googleapis.com/css") {
		t.Error("IsURL() = false for https URL")
	}
	if fileutil.IsURL("fonts.googleapis.com") {
		t.Error("IsURL() = true for bare host")
	}
}
