package sanitizer

import (
	"path/filepath"
	"strings"
	"unicode"
)

// RemoveControlChars removes non-printable control characters.
func RemoveControlChars(s string) string {
	var result strings.Builder
	for _, r := range s {
		if !unicode.IsControl(r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// Filename reduces a client-supplied file name to its base component and
// strips control characters, defeating path traversal via crafted upload
// names ("../../etc/passwd" becomes "passwd").
func Filename(s string) string {
	s = RemoveControlChars(s)
	s = strings.ReplaceAll(s, "\\", "/")
	s = filepath.Base(filepath.ToSlash(s))
	if s == "." || s == "/" {
		return ""
	}
	return s
}
