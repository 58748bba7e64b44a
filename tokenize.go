package textmetrics

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Tokenizer turns raw text into the word tokens every analysis counts.
type Tokenizer interface {
	Tokenize(string) []string
}

// wordTokenizer lower-cases text, drops everything that is not a letter or
// whitespace and splits on whitespace runs.
type wordTokenizer struct {
	minLength int
	keepDigit bool
}

// A TokenizerOptFunc configures the tokenizer built by NewWordTokenizer.
type TokenizerOptFunc func(*wordTokenizer)

// UsingMinLength discards tokens whose rune length is <= n.
func UsingMinLength(n int) TokenizerOptFunc {
	return func(tokenizer *wordTokenizer) {
		tokenizer.minLength = n
	}
}

// UsingDigits keeps digits as token characters instead of stripping them.
func UsingDigits(keep bool) TokenizerOptFunc {
	return func(tokenizer *wordTokenizer) {
		tokenizer.keepDigit = keep
	}
}

// NewWordTokenizer returns a tokenizer that keeps every non-empty token
// unless options say otherwise.
func NewWordTokenizer(opts ...TokenizerOptFunc) *wordTokenizer {
	tok := new(wordTokenizer)
	for _, applyOpt := range opts {
		applyOpt(tok)
	}
	return tok
}

// Tokenize splits text into lower-cased tokens longer than the minimum length.
func (t *wordTokenizer) Tokenize(text string) []string {
	fields := strings.Fields(t.clean(text))
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if utf8.RuneCountInString(field) > t.minLength {
			tokens = append(tokens, field)
		}
	}
	return tokens
}

func (t *wordTokenizer) clean(text string) string {
	text = strings.ToLower(norm.NFC.String(text))
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsSpace(r):
			return r
		case t.keepDigit && unicode.IsDigit(r):
			return r
		}
		return -1
	}, text)
}

var (
	// readabilityTokenizer counts every word for the Flesch formulas.
	readabilityTokenizer = NewWordTokenizer()
	// counterTokenizer matches the word counter, which ignores words of two
	// letters or fewer.
	counterTokenizer = NewWordTokenizer(UsingMinLength(2))
)

// Tokenize splits text into lower-cased word tokens whose rune length is
// greater than minLength. Blank input yields an empty slice.
func Tokenize(text string, minLength int) []string {
	return NewWordTokenizer(UsingMinLength(minLength)).Tokenize(text)
}
