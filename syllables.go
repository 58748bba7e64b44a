package textmetrics

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	silentSuffixRE = regexp.MustCompile(`(?:[^laeiouy]es|ed|[^laeiouy]e)$`)
	leadingYRE     = regexp.MustCompile(`^y`)
	vowelGroupRE   = regexp.MustCompile(`[aeiouy]{1,2}`)
)

// CountSyllables estimates the syllables in a single word.
//
// The heuristic is tuned for English and is applied unchanged to every
// language. The result is never less than one.
func CountSyllables(word string) int {
	word = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, strings.ToLower(norm.NFC.String(word)))

	if utf8.RuneCountInString(word) <= 3 {
		return 1
	}

	word = silentSuffixRE.ReplaceAllString(word, "")
	word = leadingYRE.ReplaceAllString(word, "")

	if groups := len(vowelGroupRE.FindAllStringIndex(word, -1)); groups > 0 {
		return groups
	}
	return 1
}
