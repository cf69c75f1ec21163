package wordcount

import (
	"strings"
	"unicode"

	"go.lepak.sg/wordfreq/counter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// IsWordRune reports whether r is kept by Normalize as part of a word:
// a letter, a number, a combining mark, or an underscore.
func IsWordRune(r rune) bool {
	return r == '_' ||
		unicode.IsLetter(r) ||
		unicode.IsNumber(r) ||
		unicode.IsMark(r)
}

func keep(r rune) rune {
	if IsWordRune(r) || unicode.IsSpace(r) {
		return r
	}
	return -1
}

// Normalize composes text to NFC, lowercases it, and removes every
// rune that is neither a word rune nor whitespace. Removed runes do
// not split words: "don't" becomes "dont".
func Normalize(text string) string {
	// cases.Caser is stateful, so each call gets its own
	lower := cases.Lower(language.Und)

	text = lower.String(norm.NFC.String(text))

	return strings.Map(keep, text)
}

// Tokenize normalizes text and splits it on runs of whitespace.
// The result never contains empty strings.
func Tokenize(text string) []string {
	return strings.Fields(Normalize(text))
}

// Count returns the word frequencies of an in-memory text.
// It never returns nil.
func Count(text string) *Frequencies {
	return counter.Of(Tokenize(text))
}
