package render

// Supported output formats.
const (
	FormatJSON = "json"
	FormatSVG  = "svg"
)
