package textmetrics

import (
	"math"
	"strings"
)

// DefaultWordsPerMinute is the reading speed behind ReadingTimeMinutes.
const DefaultWordsPerMinute = 200

// Analyzer computes readability metrics. The zero value is not usable; build
// one with NewAnalyzer.
type Analyzer struct {
	tokenizer      Tokenizer
	splitter       SentenceSplitter
	wordsPerMinute int
}

// An AnalyzerOpt changes how an Analyzer counts words and sentences.
type AnalyzerOpt func(*Analyzer)

// UsingTokenizer specifies the Tokenizer that produces the word list.
func UsingTokenizer(t Tokenizer) AnalyzerOpt {
	return func(a *Analyzer) {
		a.tokenizer = t
	}
}

// UsingSentenceSplitter specifies the SentenceSplitter that produces the
// sentence list.
func UsingSentenceSplitter(s SentenceSplitter) AnalyzerOpt {
	return func(a *Analyzer) {
		a.splitter = s
	}
}

// UsingWordsPerMinute changes the reading speed. Non-positive values are
// ignored.
func UsingWordsPerMinute(wpm int) AnalyzerOpt {
	return func(a *Analyzer) {
		if wpm > 0 {
			a.wordsPerMinute = wpm
		}
	}
}

// NewAnalyzer creates an Analyzer according to the user-specified options.
func NewAnalyzer(opts ...AnalyzerOpt) *Analyzer {
	a := &Analyzer{
		tokenizer:      readabilityTokenizer,
		splitter:       terminalSplitter{},
		wordsPerMinute: DefaultWordsPerMinute,
	}
	for _, applyOpt := range opts {
		applyOpt(a)
	}
	return a
}

var defaultAnalyzer = NewAnalyzer()

// AnalyzeReadability scores text with the default Analyzer. The boolean is
// false when the text has no sentence or no word to score.
func AnalyzeReadability(text string) (ReadabilityMetrics, bool) {
	return defaultAnalyzer.Analyze(text)
}

// Analyze scores text. The boolean is false when the metrics are not
// computable: blank text, no sentence, or no word.
func (a *Analyzer) Analyze(text string) (ReadabilityMetrics, bool) {
	if strings.TrimSpace(text) == "" {
		return ReadabilityMetrics{}, false
	}

	sentences := a.splitter.Split(text)
	words := a.tokenizer.Tokenize(text)
	if len(sentences) == 0 || len(words) == 0 {
		return ReadabilityMetrics{}, false
	}

	syllables := 0
	for _, word := range words {
		syllables += CountSyllables(word)
	}

	wordsPerSentence := float64(len(words)) / float64(len(sentences))
	syllablesPerWord := float64(syllables) / float64(len(words))

	ease := clamp(round(fleschReadingEase(wordsPerSentence, syllablesPerWord), 1), 0, 100)
	grade := math.Max(0, round(fleschKincaidGrade(wordsPerSentence, syllablesPerWord), 1))

	return ReadabilityMetrics{
		Sentences:           len(sentences),
		Words:               len(words),
		Syllables:           syllables,
		AvgWordsPerSentence: round(wordsPerSentence, 1),
		AvgSyllablesPerWord: round(syllablesPerWord, 2),
		FleschReadingEase:   ease,
		FleschKincaidGrade:  grade,
		ReadingLevel:        LevelForScore(ease),
		ReadingTimeMinutes:  int(math.Ceil(float64(len(words)) / float64(a.wordsPerMinute))),
	}, true
}

func fleschReadingEase(wordsPerSentence, syllablesPerWord float64) float64 {
	return 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord
}

func fleschKincaidGrade(wordsPerSentence, syllablesPerWord float64) float64 {
	return 0.39*wordsPerSentence + 11.8*syllablesPerWord - 15.59
}

// LevelForScore maps a Flesch Reading Ease score to its reading level.
func LevelForScore(score float64) ReadingLevel {
	switch {
	case score >= 90:
		return VeryEasy
	case score >= 80:
		return Easy
	case score >= 70:
		return FairlyEasy
	case score >= 60:
		return Standard
	case score >= 50:
		return FairlyDifficult
	case score >= 30:
		return Difficult
	default:
		return VeryDifficult
	}
}

// round rounds half up to the given number of decimals.
func round(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Floor(x*p+0.5) / p
}

func clamp(x, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, x))
}
