package textmetrics

import (
	"testing"
)

const sampleText = `Search engines reward content that readers understand. Short sentences
help. Clear words help too! Content marketing teams should measure readability
before publishing content.`

func TestNewReport(t *testing.T) {
	report := NewReport(sampleText)

	if report.Readability == nil {
		t.Fatal("expected readability metrics")
	}
	if report.Readability.Sentences != 4 {
		t.Errorf("Sentences = %d, want 4", report.Readability.Sentences)
	}
	if len(report.Keywords) == 0 || report.Keywords[0].Word != "content" || report.Keywords[0].Count != 3 {
		t.Errorf("Top keyword = %+v, want content x3", report.Keywords)
	}
	if len(report.LSIKeywords) == 0 || report.LSIKeywords[0].Relevance != MediumRelevance {
		t.Errorf("Top LSI keyword = %+v, want medium relevance", report.LSIKeywords)
	}
	if report.SentenceStats == nil || report.SentenceStats.Count != 4 {
		t.Errorf("SentenceStats = %+v, want 4 sentences", report.SentenceStats)
	}
	if report.Metadata.Language != English {
		t.Errorf("Language = %q, want en", report.Metadata.Language)
	}
	if report.Metadata.Version != Version {
		t.Errorf("Version = %q, want %q", report.Metadata.Version, Version)
	}
}

func TestNewReportBlankText(t *testing.T) {
	report := NewReport("   ")

	if report.Readability != nil {
		t.Errorf("Readability = %+v, want nil", report.Readability)
	}
	if report.SentenceStats != nil {
		t.Errorf("SentenceStats = %+v, want nil", report.SentenceStats)
	}
	if len(report.Keywords) != 0 || len(report.LSIKeywords) != 0 {
		t.Errorf("Got keywords %+v / %+v, want none", report.Keywords, report.LSIKeywords)
	}
	if report.Metadata.Language != "" {
		t.Errorf("Language = %q, want none for blank text", report.Metadata.Language)
	}
}

func TestNewReportOptions(t *testing.T) {
	report := NewReport(sampleText,
		WithLSI(false),
		WithKeywords(false),
		WithSentenceStats(false),
		WithLanguage(French),
		WithTitle("Guide"),
	)

	if report.LSIKeywords != nil || report.Keywords != nil || report.SentenceStats != nil {
		t.Errorf("Disabled sections present: %+v", report)
	}
	if report.Readability == nil {
		t.Error("Readability should stay enabled")
	}
	if report.Metadata.Language != French || report.Metadata.LanguageConfidence != 1 {
		t.Errorf("Got %s (%.2f), want fr (1.00)", report.Metadata.Language, report.Metadata.LanguageConfidence)
	}
	if report.Metadata.Title != "Guide" {
		t.Errorf("Title = %q, want Guide", report.Metadata.Title)
	}
}

func TestNewReportStopWordLanguages(t *testing.T) {
	text := "about about about about about ranking ranking"

	plain := NewReport(text, WithKeywords(false))
	if len(plain.LSIKeywords) != 2 || plain.LSIKeywords[0].Word != "about" {
		t.Fatalf("LSIKeywords = %+v, want about then ranking", plain.LSIKeywords)
	}

	extended := NewReport(text, WithKeywords(false), WithStopWordLanguages(English))
	if len(extended.LSIKeywords) != 1 || extended.LSIKeywords[0].Word != "ranking" {
		t.Errorf("LSIKeywords = %+v, want only ranking", extended.LSIKeywords)
	}
}

func TestNewReportUsingAnalyzer(t *testing.T) {
	report := NewReport("word "+sampleText, UsingAnalyzer(NewAnalyzer(UsingWordsPerMinute(1))))
	if report.Readability == nil || report.Readability.ReadingTimeMinutes != report.Readability.Words {
		t.Errorf("Readability = %+v, want one minute per word", report.Readability)
	}
}
