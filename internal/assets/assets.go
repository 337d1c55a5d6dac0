package assets

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// Default returns the shared embedded loader.
func Default() *EmbeddedLoader {
	return defaultLoader
}

// StyleNames lists the embedded stylesheet names, sorted.
func StyleNames() []string {
	return defaultLoader.StyleNames()
}
