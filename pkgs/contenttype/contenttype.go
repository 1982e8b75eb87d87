package contenttype

// This package contains constants for the content types served by the sharer

const (
	CharsetUtf8Suffix = "; charset=utf-8"

	HTML = "text/html"
	JS   = "application/javascript"
	JSON = "application/json"
	Text = "text/plain"
	YAML = "application/yaml"

	HTMLUTF8 = HTML + CharsetUtf8Suffix
	JSUTF8   = JS + CharsetUtf8Suffix
	JSONUTF8 = JSON + CharsetUtf8Suffix
	TextUTF8 = Text + CharsetUtf8Suffix
)
