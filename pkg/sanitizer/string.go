package sanitizer

import (
	"strings"
	"unicode"
)

func Trim(s string) string {
	return strings.TrimSpace(s)
}

// RemoveControlChars drops control characters, including line breaks and
// tabs.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// SingleLine replaces line breaks with spaces and collapses whitespace runs.
func SingleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
