package utils

import "strings"

// NormalizeText trims surrounding whitespace and collapses Windows/Mac line
// endings so downstream renderers only ever see \n.
func NormalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.TrimSpace(s)
}

// ToLatin1 drops every rune that cannot be represented in Latin-1. This
// mirrors the lossy encoding used by the built-in core fonts, which cover
// only the Latin-1 range; non-Latin glyphs are silently removed.
func ToLatin1(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r <= 0xFF {
			b.WriteRune(r)
		}
	}
	return b.String()
}
