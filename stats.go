package textmetrics

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sentences splits text with the default splitter and counts the words of
// each sentence.
func Sentences(text string) []Sentence {
	return defaultAnalyzer.Sentences(text)
}

// Sentences splits text with the analyzer's splitter and counts the words of
// each sentence with its tokenizer.
func (a *Analyzer) Sentences(text string) []Sentence {
	segments := a.splitter.Split(text)
	sentences := make([]Sentence, 0, len(segments))
	for _, s := range segments {
		sentences = append(sentences, Sentence{Text: s, Words: len(a.tokenizer.Tokenize(s))})
	}
	return sentences
}

// SentenceLengths describes the distribution of words per sentence. The
// boolean is false whenever readability is not computable for text.
func SentenceLengths(text string) (SentenceStats, bool) {
	return defaultAnalyzer.SentenceLengths(text)
}

// SentenceLengths describes the distribution of words per sentence.
func (a *Analyzer) SentenceLengths(text string) (SentenceStats, bool) {
	if _, ok := a.Analyze(text); !ok {
		return SentenceStats{}, false
	}

	sentences := a.Sentences(text)
	lengths := make([]float64, len(sentences))
	for i, s := range sentences {
		lengths[i] = float64(s.Words)
	}

	stats := SentenceStats{
		Count: len(lengths),
		Min:   int(floats.Min(lengths)),
		Max:   int(floats.Max(lengths)),
	}
	if len(lengths) == 1 {
		stats.Mean = lengths[0]
		return stats, true
	}
	mean, std := stat.MeanStdDev(lengths, nil)
	stats.Mean = round(mean, 2)
	stats.StdDev = round(std, 2)
	return stats, true
}
