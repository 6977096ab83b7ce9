package strutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TitleCase uppercases the first rune and lowercases the remainder of every
// whitespace-separated word, joining the words with single spaces. Blank or
// empty input is returned unchanged.
func TitleCase(s string) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}

	for i, w := range words {
		first, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(first)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}
