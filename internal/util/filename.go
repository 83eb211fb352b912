package util

import (
	"path/filepath"
	"strings"
)

// SanitizeFilename makes an uploaded filename safe for use inside a storage
// object path: base name only, path separators and control characters
// stripped, spaces collapsed to underscores.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "." || name == string(filepath.Separator) {
		return "cv.pdf"
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}

	cleaned := strings.Trim(b.String(), "._")
	if cleaned == "" {
		return "cv.pdf"
	}
	return cleaned
}
