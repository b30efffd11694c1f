package text

import "strings"

// Truncate clips s to at most max bytes. No ellipsis is added; callers that
// want one append it themselves.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max]
}

// Blank reports whether s is empty after trimming whitespace.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
