package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/seokit/textmetrics"
	"github.com/seokit/textmetrics/internal/config"
)

// render writes v in the configured format. text prints the human-readable form.
func (a *app) render(w io.Writer, v any, text func(io.Writer) error) error {
	switch a.cfg.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return text(w)
	}
}

const notComputable = "Not enough text to analyze."

func printReadability(w io.Writer, m *textmetrics.ReadabilityMetrics) {
	if m == nil {
		fmt.Fprintln(w, notComputable)
		return
	}
	fmt.Fprintf(w, "Flesch Reading Ease:      %.1f (%s)\n", m.FleschReadingEase, m.ReadingLevel)
	fmt.Fprintf(w, "Flesch-Kincaid Grade:     %.1f\n", m.FleschKincaidGrade)
	fmt.Fprintf(w, "Sentences:                %d\n", m.Sentences)
	fmt.Fprintf(w, "Words:                    %d\n", m.Words)
	fmt.Fprintf(w, "Syllables:                %d\n", m.Syllables)
	fmt.Fprintf(w, "Avg words per sentence:   %.1f\n", m.AvgWordsPerSentence)
	fmt.Fprintf(w, "Avg syllables per word:   %.2f\n", m.AvgSyllablesPerWord)
	fmt.Fprintf(w, "Reading time:             %d min\n", m.ReadingTimeMinutes)
}

func printKeywords(w io.Writer, entries []textmetrics.KeywordEntry, variant textmetrics.KeywordVariant) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No keywords found.")
		return
	}
	for i, e := range entries {
		switch variant {
		case textmetrics.LSI:
			fmt.Fprintf(w, "%2d. %-24s %5d  %s\n", i+1, e.Word, e.Count, e.Relevance)
		default:
			fmt.Fprintf(w, "%2d. %-24s %5d  %6.2f%%\n", i+1, e.Word, e.Count, e.Density)
		}
	}
}

func printSummary(w io.Writer, s textmetrics.WordSummary) {
	fmt.Fprintf(w, "Total words:              %d\n", s.TotalWords)
	fmt.Fprintf(w, "Unique words:             %d\n", s.UniqueWords)
	fmt.Fprintf(w, "Avg word length:          %.1f\n", s.AvgWordLength)
}

func printSentenceStats(w io.Writer, s *textmetrics.SentenceStats) {
	if s == nil {
		return
	}
	fmt.Fprintf(w, "Sentence length:          mean %.2f, std dev %.2f, min %d, max %d\n",
		s.Mean, s.StdDev, s.Min, s.Max)
}
