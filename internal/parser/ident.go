package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sanitize drops every rune of word that cannot appear in a Go identifier
// "(MCA)" → "MCA", "Space-saving" → "Spacesaving"
func Sanitize(word string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, word)
}

// Capitalize upper-cases the first rune of word only when it is lowercase.
// Acronyms and mixed-case words ("IoT", "MCA") are returned unchanged.
func Capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if !unicode.IsLower(r) {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}

// Identifier sanitizes and capitalizes each word and concatenates them
// "Low Profile Desktop" → "LowProfileDesktop"
func Identifier(words ...string) string {
	var b strings.Builder
	for _, w := range words {
		b.WriteString(Capitalize(Sanitize(w)))
	}
	return b.String()
}
