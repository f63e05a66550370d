// Package portfolio derives display-ready skills and projects from a
// repository list. Every function here is pure and deterministic.
package portfolio

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FormatName turns a kebab-case or snake_case identifier into Title Case:
// "ci-cd" becomes "Ci Cd". Only the first letter of each word is changed.
func FormatName(name string) string {
	words := strings.Split(strings.NewReplacer("-", " ", "_", " ").Replace(name), " ")
	for i, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + word[size:]
	}
	return strings.Join(words, " ")
}
