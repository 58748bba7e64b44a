package textmetrics

import (
	"strings"

	"github.com/bbalet/stopwords"
)

// lsiStopWords are the function words the LSI keyword tool has always
// excluded, across its four interface languages.
var lsiStopWords = []string{
	// English
	"that", "this", "with", "from", "have", "will", "been", "were", "they",
	// Portuguese
	"como", "para", "mais", "isso", "esse", "esta", "pelo", "pela", "seus",
	// Spanish
	"como", "para", "pero", "este", "esta", "esto", "esos", "esas", "unos",
	// French
	"dans", "pour", "avec", "cette", "sont", "leur", "vous", "nous", "elle",
}

// StopWords is an immutable set of words excluded from keyword ranking.
//
// Besides its explicit words it can defer to the per-language lists shipped
// with github.com/bbalet/stopwords.
type StopWords struct {
	words     map[string]struct{}
	languages []Language
}

// NewStopWords builds a set from explicit words. Words are lower-cased.
func NewStopWords(words ...string) StopWords {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return StopWords{words: set}
}

// LSIStopWords returns the fixed multilingual set used by the LSI variant.
func LSIStopWords() StopWords {
	return NewStopWords(lsiStopWords...)
}

// Extend returns a copy of s that also excludes the library stop words of the
// given languages.
func (s StopWords) Extend(langs ...Language) StopWords {
	out := StopWords{
		words:     s.words,
		languages: make([]Language, 0, len(s.languages)+len(langs)),
	}
	out.languages = append(out.languages, s.languages...)
	out.languages = append(out.languages, langs...)
	return out
}

// Len returns the number of explicit words in the set.
func (s StopWords) Len() int {
	return len(s.words)
}

// Contains reports whether word is excluded.
func (s StopWords) Contains(word string) bool {
	if _, found := s.words[word]; found {
		return true
	}
	for _, lang := range s.languages {
		if isLibraryStopWord(word, lang) {
			return true
		}
	}
	return false
}

// isLibraryStopWord asks the stopwords library whether it strips word. The
// library does not export its lists, so a word it reduces to blank space is
// one of them.
func isLibraryStopWord(word string, lang Language) bool {
	return strings.TrimSpace(stopwords.CleanString(word, string(lang), false)) == ""
}
