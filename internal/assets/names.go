package assets

// DefaultStyleName is the name of the built-in stylesheet.
const DefaultStyleName = "changelog"

// PageTemplateName is the name of the page template.
const PageTemplateName = "page"
