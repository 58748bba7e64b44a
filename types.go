// Package textmetrics computes readability and keyword statistics for
// user-supplied text: syllable estimates, Flesch Reading Ease, Flesch-Kincaid
// grade level, keyword density and LSI keyword frequencies.
package textmetrics

// A Sentence represents a segmented portion of text.
type Sentence struct {
	Text  string // The sentence's trimmed text.
	Words int    // Number of tokens the readability tokenizer finds in Text.
}

// String returns the text content of the sentence
func (s Sentence) String() string {
	return s.Text
}

// ReadingLevel is the categorical label derived from a Flesch Reading Ease score.
type ReadingLevel string

// Reading levels, from the highest Flesch Reading Ease band to the lowest.
const (
	VeryEasy        ReadingLevel = "very easy"
	Easy            ReadingLevel = "easy"
	FairlyEasy      ReadingLevel = "fairly easy"
	Standard        ReadingLevel = "standard"
	FairlyDifficult ReadingLevel = "fairly difficult"
	Difficult       ReadingLevel = "difficult"
	VeryDifficult   ReadingLevel = "very difficult"
)

// ReadabilityMetrics holds the published readability scores for a text.
//
// Averages and scores are rounded for display; they were computed from
// full-precision intermediates.
type ReadabilityMetrics struct {
	Sentences           int          `json:"sentences" yaml:"sentences"`
	Words               int          `json:"words" yaml:"words"`
	Syllables           int          `json:"syllables" yaml:"syllables"`
	AvgWordsPerSentence float64      `json:"avgWordsPerSentence" yaml:"avgWordsPerSentence"` // 1 decimal
	AvgSyllablesPerWord float64      `json:"avgSyllablesPerWord" yaml:"avgSyllablesPerWord"` // 2 decimals
	FleschReadingEase   float64      `json:"fleschReadingEase" yaml:"fleschReadingEase"`     // [0, 100]
	FleschKincaidGrade  float64      `json:"fleschKincaid" yaml:"fleschKincaid"`             // >= 0
	ReadingLevel        ReadingLevel `json:"readingLevel" yaml:"readingLevel"`
	ReadingTimeMinutes  int          `json:"readingTime" yaml:"readingTime"`
}

// Relevance is the LSI keyword tag derived from a raw occurrence count.
type Relevance string

// Relevance tags, from most to least frequent.
const (
	HighRelevance   Relevance = "high"
	MediumRelevance Relevance = "medium"
	LowRelevance    Relevance = "low"
)

// A KeywordEntry is one ranked row of a keyword frequency analysis.
//
// Density is only populated by policies that report it (the density
// variant); Relevance only by policies that tag it (the LSI variant).
type KeywordEntry struct {
	Word      string    `json:"word" yaml:"word"`
	Count     int       `json:"count" yaml:"count"`
	Density   float64   `json:"density,omitempty" yaml:"density,omitempty"`
	Relevance Relevance `json:"relevance,omitempty" yaml:"relevance,omitempty"`
}

// WordSummary holds the headline figures of the word counter.
type WordSummary struct {
	TotalWords    int     `json:"totalWords" yaml:"totalWords"`
	UniqueWords   int     `json:"uniqueWords" yaml:"uniqueWords"`
	AvgWordLength float64 `json:"avgWordLength" yaml:"avgWordLength"`
}

// SentenceStats describes how sentence lengths (in words) are distributed.
type SentenceStats struct {
	Count  int     `json:"count" yaml:"count"`
	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"stdDev" yaml:"stdDev"`
	Min    int     `json:"min" yaml:"min"`
	Max    int     `json:"max" yaml:"max"`
}

// Language represents supported languages
type Language string

// Supported languages, as ISO 639-1 codes.
const (
	English    Language = "en"
	Portuguese Language = "pt"
	Spanish    Language = "es"
	French     Language = "fr"
)
