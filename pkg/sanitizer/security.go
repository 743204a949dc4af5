package sanitizer

import (
	"html"
	"regexp"
)

var scriptTagRegex = regexp.MustCompile(`(?i)<script\b[^>]*>.*?</script>`)

// EscapeHTML escapes HTML special characters to prevent XSS attacks.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// UnescapeHTML unescapes HTML entities.
func UnescapeHTML(s string) string {
	return html.UnescapeString(s)
}

// StripScriptTags removes all <script> tags and their content.
func StripScriptTags(s string) string {
	return scriptTagRegex.ReplaceAllString(s, "")
}
