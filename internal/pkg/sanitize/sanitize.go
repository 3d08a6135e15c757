package sanitize

import (
	"regexp"
	"strings"
)

var (
	htmlTagRe    = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonAlnumRe   = regexp.MustCompile(`[^a-z0-9\s]`)
)

// Text sanitizes free text by removing HTML tags and collapsing whitespace.
// Used for invitation messages and other user-generated content.
func Text(s string) string {
	s = htmlTagRe.ReplaceAllString(strings.TrimSpace(s), "")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// NormalizeName normalizes a display name for search and comparison:
// lowercase, alphanumerics only, words joined by hyphens.
func NormalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonAlnumRe.ReplaceAllString(s, "")
	return strings.Trim(whitespaceRe.ReplaceAllString(s, "-"), "-")
}

// Email trims and lowercases an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
