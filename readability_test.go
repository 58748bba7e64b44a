package textmetrics

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word     string
		expected int
		desc     string
	}{
		{"the", 1, "Three letters or fewer"},
		{"a", 1, "Single letter"},
		{"", 1, "Empty word floors at one"},
		{"fast", 1, "Single vowel group"},
		{"hello", 2, "Two vowel groups"},
		{"make", 1, "Silent trailing e"},
		{"table", 2, "Trailing le is kept"},
		{"jumped", 1, "Trailing ed stripped"},
		{"boxes", 1, "Trailing consonant plus es stripped"},
		{"yellow", 2, "Leading y stripped"},
		{"rhythm", 1, "Y counts as a vowel"},
		{"crwth", 1, "No vowels floors at one"},
		{"beautiful", 4, "Vowel runs chunk in pairs"},
		{"readability", 5, "Long word"},
		{"água", 1, "Accented vowel is not a vowel group"},
		{"Hello!", 2, "Case and punctuation are ignored"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := CountSyllables(tt.word); got != tt.expected {
				t.Errorf("CountSyllables(%q) = %d, want %d", tt.word, got, tt.expected)
			}
		})
	}
}

func TestCountSyllablesNeverZero(t *testing.T) {
	text := "Água fresca, ação rápida! Crwth nth shh. Über naïve café résumé façade."
	for _, tok := range Tokenize(text, 0) {
		if n := CountSyllables(tok); n < 1 {
			t.Errorf("CountSyllables(%q) = %d, want >= 1", tok, n)
		}
	}
}

func TestAnalyzeReadabilityScenario(t *testing.T) {
	metrics, ok := AnalyzeReadability("The cat sat on the mat. The dog ran fast!")
	if !ok {
		t.Fatal("expected metrics to be computable")
	}

	expected := ReadabilityMetrics{
		Sentences:           2,
		Words:               10,
		Syllables:           10,
		AvgWordsPerSentence: 5,
		AvgSyllablesPerWord: 1,
		FleschReadingEase:   100,
		FleschKincaidGrade:  0,
		ReadingLevel:        VeryEasy,
		ReadingTimeMinutes:  1,
	}
	if metrics != expected {
		t.Errorf("Got %+v\nWant %+v", metrics, expected)
	}
}

func TestAnalyzeReadabilitySingleWord(t *testing.T) {
	metrics, ok := AnalyzeReadability("Hello")
	if !ok {
		t.Fatal("expected a single word without punctuation to be one sentence")
	}
	if metrics.Sentences != 1 || metrics.Words != 1 || metrics.Syllables != 2 {
		t.Errorf("Got sentences=%d words=%d syllables=%d, want 1/1/2",
			metrics.Sentences, metrics.Words, metrics.Syllables)
	}
	if math.Abs(metrics.FleschReadingEase-36.6) > 1e-9 {
		t.Errorf("FleschReadingEase = %.2f, want 36.6", metrics.FleschReadingEase)
	}
	if math.Abs(metrics.FleschKincaidGrade-8.4) > 1e-9 {
		t.Errorf("FleschKincaidGrade = %.2f, want 8.4", metrics.FleschKincaidGrade)
	}
	if metrics.ReadingLevel != Difficult {
		t.Errorf("ReadingLevel = %q, want %q", metrics.ReadingLevel, Difficult)
	}
}

func TestAnalyzeReadabilityNotComputable(t *testing.T) {
	tests := []struct {
		text string
		desc string
	}{
		{"", "Empty text"},
		{"   ", "Whitespace only"},
		{"\n\t", "Line breaks only"},
		{"...", "Punctuation only"},
		{"?!?!", "Mixed terminal punctuation"},
		{"12 34.", "Digits only leave no words"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if metrics, ok := AnalyzeReadability(tt.text); ok {
				t.Errorf("AnalyzeReadability(%q) = %+v, want not computable", tt.text, metrics)
			}
		})
	}
}

func TestAnalyzeReadabilityRanges(t *testing.T) {
	texts := []string{
		"Go.",
		"I am. You are. We go.",
		"Notwithstanding the aforementioned considerations, institutional " +
			"responsibilities necessitate comprehensive organizational restructuring",
		"A análise de legibilidade ajuda a escrever conteúdos mais claros para os leitores.",
		"La lisibilité d'un texte dépend de la longueur des phrases et des mots.",
		strings.Repeat("internationalization ", 50) + ".",
	}

	for _, text := range texts {
		metrics, ok := AnalyzeReadability(text)
		if !ok {
			t.Errorf("AnalyzeReadability(%q) not computable", text)
			continue
		}
		if math.IsNaN(metrics.FleschReadingEase) || metrics.FleschReadingEase < 0 || metrics.FleschReadingEase > 100 {
			t.Errorf("%q: FleschReadingEase %.2f out of [0, 100]", text, metrics.FleschReadingEase)
		}
		if math.IsNaN(metrics.FleschKincaidGrade) || math.IsInf(metrics.FleschKincaidGrade, 0) || metrics.FleschKincaidGrade < 0 {
			t.Errorf("%q: FleschKincaidGrade %.2f is negative or not finite", text, metrics.FleschKincaidGrade)
		}
		if metrics.ReadingLevel != LevelForScore(metrics.FleschReadingEase) {
			t.Errorf("%q: ReadingLevel %q does not match displayed score %.1f",
				text, metrics.ReadingLevel, metrics.FleschReadingEase)
		}
		if metrics.ReadingTimeMinutes < 1 {
			t.Errorf("%q: ReadingTimeMinutes = %d, want >= 1", text, metrics.ReadingTimeMinutes)
		}
	}
}

func TestAnalyzeReadabilityIsIdempotent(t *testing.T) {
	text := "Readability matters. Short sentences help readers! Do long, winding sentences hurt?"

	first, ok1 := AnalyzeReadability(text)
	second, ok2 := AnalyzeReadability(text)
	if ok1 != ok2 || !reflect.DeepEqual(first, second) {
		t.Errorf("Repeated calls differ:\n%+v\n%+v", first, second)
	}
}

func TestReadingTime(t *testing.T) {
	tests := []struct {
		words    int
		wpm      int
		expected int
	}{
		{1, 0, 1},
		{200, 0, 1},
		{201, 0, 2},
		{450, 0, 3},
		{450, 150, 3},
		{451, 150, 4},
	}

	for _, tt := range tests {
		analyzer := NewAnalyzer(UsingWordsPerMinute(tt.wpm))
		metrics, ok := analyzer.Analyze(strings.Repeat("word ", tt.words))
		if !ok {
			t.Fatalf("%d words: not computable", tt.words)
		}
		if metrics.ReadingTimeMinutes != tt.expected {
			t.Errorf("%d words at %d wpm: ReadingTimeMinutes = %d, want %d",
				tt.words, tt.wpm, metrics.ReadingTimeMinutes, tt.expected)
		}
	}
}

func TestLevelForScore(t *testing.T) {
	tests := []struct {
		score    float64
		expected ReadingLevel
	}{
		{100, VeryEasy},
		{90, VeryEasy},
		{89.9, Easy},
		{80, Easy},
		{70, FairlyEasy},
		{60, Standard},
		{59.9, FairlyDifficult},
		{50, FairlyDifficult},
		{30, Difficult},
		{29.9, VeryDifficult},
		{0, VeryDifficult},
	}

	for _, tt := range tests {
		if got := LevelForScore(tt.score); got != tt.expected {
			t.Errorf("LevelForScore(%.1f) = %q, want %q", tt.score, got, tt.expected)
		}
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		x        float64
		decimals int
		expected float64
	}{
		{1.25, 1, 1.3},
		{33.3333, 2, 33.33},
		{16.6666, 2, 16.67},
		{-1.84, 1, -1.8},
		{117.16, 1, 117.2},
	}

	for _, tt := range tests {
		if got := round(tt.x, tt.decimals); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("round(%v, %d) = %v, want %v", tt.x, tt.decimals, got, tt.expected)
		}
	}
}

func TestAnalyzerWithPunktSplitter(t *testing.T) {
	splitter, err := NewPunktSplitter()
	if err != nil {
		t.Fatalf("Failed to load punkt model: %v", err)
	}
	analyzer := NewAnalyzer(UsingSentenceSplitter(splitter))

	metrics, ok := analyzer.Analyze("The cat sat on the mat. The dog ran fast!")
	if !ok {
		t.Fatal("expected metrics to be computable")
	}
	if metrics.Sentences != 2 || metrics.Words != 10 {
		t.Errorf("Got sentences=%d words=%d, want 2/10", metrics.Sentences, metrics.Words)
	}

	if _, ok := analyzer.Analyze("..."); ok {
		t.Error("expected punctuation-only text to be not computable with punkt")
	}
}
