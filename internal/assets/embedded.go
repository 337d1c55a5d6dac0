package assets

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
)

//go:embed styles templates
var embedded embed.FS

// EmbeddedLoader serves the stylesheet and page template built into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle returns the embedded styles/{name}.css.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	return e.load(styleKind, name)
}

// LoadTemplate returns the embedded templates/{name}.html.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	return e.load(templateKind, name)
}

func (e *EmbeddedLoader) load(k kind, name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	content, err := embedded.ReadFile(k.file(name))
	if err != nil {
		return "", k.missing(name)
	}
	return string(content), nil
}

// StyleNames lists the embedded stylesheet names, sorted.
func (e *EmbeddedLoader) StyleNames() []string {
	matches, _ := fs.Glob(embedded, styleKind.file("*"))

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(m[len(styleKind.dir)+1:], styleKind.ext))
	}
	sort.Strings(names)
	return names
}

var _ AssetLoader = (*EmbeddedLoader)(nil)
