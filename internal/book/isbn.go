package book

import (
	"regexp"
	"strings"
)

// isbnPattern accepts raw 10- or 13-digit ISBNs, or a hyphenated form of
// 13 to 17 characters. Format-only; no checksum validation.
var isbnPattern = regexp.MustCompile(`^[0-9]{10}([0-9]{3})?$|^[0-9-]{13,17}$`)

// ValidISBN reports whether s looks like an ISBN-10 or ISBN-13, with or
// without hyphens.
func ValidISBN(s string) bool {
	return isbnPattern.MatchString(s)
}

// NormalizeISBN strips hyphens. The hyphen-free form is the persisted
// lookup key.
func NormalizeISBN(s string) string {
	return strings.ReplaceAll(s, "-", "")
}
