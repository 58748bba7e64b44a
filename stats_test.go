package textmetrics

import (
	"math"
	"testing"
)

func TestSentenceLengths(t *testing.T) {
	stats, ok := SentenceLengths("One two three. Four five six seven eight.")
	if !ok {
		t.Fatal("expected statistics to be computable")
	}
	if stats.Count != 2 || stats.Min != 3 || stats.Max != 5 {
		t.Errorf("Got count=%d min=%d max=%d, want 2/3/5", stats.Count, stats.Min, stats.Max)
	}
	if math.Abs(stats.Mean-4) > 1e-9 {
		t.Errorf("Mean = %.2f, want 4", stats.Mean)
	}
	if math.Abs(stats.StdDev-1.41) > 1e-9 {
		t.Errorf("StdDev = %.2f, want 1.41", stats.StdDev)
	}
}

func TestSentenceLengthsSingleSentence(t *testing.T) {
	stats, ok := SentenceLengths("Just one sentence here")
	if !ok {
		t.Fatal("expected statistics to be computable")
	}
	if stats.Count != 1 || stats.Mean != 4 || stats.StdDev != 0 || stats.Min != 4 || stats.Max != 4 {
		t.Errorf("Got %+v, want one sentence of four words", stats)
	}
}

func TestSentenceLengthsNotComputable(t *testing.T) {
	for _, text := range []string{"", "   ", "...", "42."} {
		if stats, ok := SentenceLengths(text); ok {
			t.Errorf("SentenceLengths(%q) = %+v, want not computable", text, stats)
		}
	}
}

func TestSentencesCountWords(t *testing.T) {
	sentences := Sentences("Hello there, friend! How are you?")
	if len(sentences) != 2 {
		t.Fatalf("Got %d sentences, want 2", len(sentences))
	}
	if sentences[0].String() != "Hello there, friend" || sentences[0].Words != 3 {
		t.Errorf("First sentence = %+v", sentences[0])
	}
	if sentences[1].Words != 3 {
		t.Errorf("Second sentence words = %d, want 3", sentences[1].Words)
	}
}
