package assets

import "errors"

// AssetResolver tries a chain of loaders in order. A "not found" answer
// falls through to the next loader; any other error stops the lookup.
// The embedded loader is always last, so a custom directory may override
// only the stylesheet and keep the built-in page template.
type AssetResolver struct {
	chain []AssetLoader
}

// NewAssetResolver builds a resolver over customDir (if not empty) and
// the embedded assets. Returns an error if customDir is unusable.
func NewAssetResolver(customDir string) (*AssetResolver, error) {
	r := &AssetResolver{}
	if customDir != "" {
		fsLoader, err := NewFilesystemLoader(customDir)
		if err != nil {
			return nil, err
		}
		r.chain = append(r.chain, fsLoader)
	}
	r.chain = append(r.chain, Default())
	return r, nil
}

// LoadStyle returns the first stylesheet named name along the chain.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return r.first(func(l AssetLoader) (string, error) { return l.LoadStyle(name) })
}

// LoadTemplate returns the first template named name along the chain.
func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	return r.first(func(l AssetLoader) (string, error) { return l.LoadTemplate(name) })
}

func (r *AssetResolver) first(load func(AssetLoader) (string, error)) (string, error) {
	var err error
	for _, l := range r.chain {
		var content string
		content, err = load(l)
		if err == nil {
			return content, nil
		}
		if !errors.Is(err, ErrStyleNotFound) && !errors.Is(err, ErrTemplateNotFound) {
			return "", err
		}
	}
	return "", err
}

// HasCustomLoader reports whether a custom directory is in the chain.
func (r *AssetResolver) HasCustomLoader() bool {
	return len(r.chain) > 1
}

var _ AssetLoader = (*AssetResolver)(nil)
