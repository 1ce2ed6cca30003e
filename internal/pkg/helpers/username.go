package helpers

import (
	"strings"
	"unicode"
)

// NormalizeUsername lower-cases a username and strips every whitespace rune,
// so "Jane Doe" and "janedoe" collide.
func NormalizeUsername(username string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, username)
}
