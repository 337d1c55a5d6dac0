package assets

// AssetLoader loads assets by bare name (no extension, no separators).
// Implementations return ErrStyleNotFound or ErrTemplateNotFound for a
// missing asset and ErrInvalidAssetName for a rejected name.
type AssetLoader interface {
	LoadStyle(name string) (string, error)
	LoadTemplate(name string) (string, error)
}
