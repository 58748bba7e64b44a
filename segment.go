package textmetrics

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"gopkg.in/neurosnap/sentences.v1/english"
)

// SentenceSplitter approximates sentence boundaries.
type SentenceSplitter interface {
	Split(string) []string
}

var terminalRE = regexp.MustCompile(`[.!?]+`)

// terminalSplitter breaks text on runs of '.', '!' and '?'.
type terminalSplitter struct{}

// NewTerminalSplitter returns the splitter the readability scores are
// defined against. Text without terminal punctuation is one sentence.
func NewTerminalSplitter() SentenceSplitter {
	return terminalSplitter{}
}

// Split returns the non-empty trimmed segments between terminal punctuation.
func (terminalSplitter) Split(text string) []string {
	var sentences []string
	for _, segment := range terminalRE.Split(text, -1) {
		if s := strings.TrimSpace(segment); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// PunktSplitter segments text with the pre-trained English punkt model, which
// knows about abbreviations such as "Dr." and "e.g.".
type PunktSplitter struct {
	tokenize func(string) []string
}

// NewPunktSplitter loads the English punkt model.
func NewPunktSplitter() (*PunktSplitter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load punkt model: %w", err)
	}
	return &PunktSplitter{
		tokenize: func(text string) []string {
			var out []string
			for _, s := range tokenizer.Tokenize(text) {
				out = append(out, s.Text)
			}
			return out
		},
	}, nil
}

// Split returns the punkt sentences that contain at least one letter or digit,
// so punctuation-only input still yields no sentences.
func (p *PunktSplitter) Split(text string) []string {
	var sentences []string
	for _, segment := range p.tokenize(text) {
		s := strings.TrimSpace(segment)
		if strings.IndexFunc(s, isWordRune) >= 0 {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// SplitSentences splits text on runs of terminal punctuation and drops empty
// segments.
func SplitSentences(text string) []string {
	return terminalSplitter{}.Split(text)
}
