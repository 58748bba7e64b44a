package textmetrics

import "time"

// Version is stamped into every Report's metadata.
const Version = "v1.0.0"

// A ReportOpt represents a setting that changes the report creation process.
//
// For example, it might disable LSI keyword extraction:
//
//	report := textmetrics.NewReport("...", textmetrics.WithLSI(false))
type ReportOpt func(opts *ReportOpts)

// ReportOpts controls the Report creation process:
type ReportOpts struct {
	Readability       bool       // If true, include readability metrics
	Keywords          bool       // If true, include the density keyword table
	LSI               bool       // If true, include LSI keywords
	SentenceStats     bool       // If true, include sentence length statistics
	DetectLanguage    bool       // If true, guess the language when none is set
	Language          Language   // Language of the text, if known
	Analyzer          *Analyzer  // Analyzer to use for readability
	StopWordLanguages []Language // Library stop-word lists added to the LSI filter
	Title             string     // Title of the source document, if any
}

// WithReadability can enable (the default) or disable readability metrics.
func WithReadability(include bool) ReportOpt {
	return func(opts *ReportOpts) {
		opts.Readability = include
	}
}

// WithKeywords can enable (the default) or disable the density keyword table.
func WithKeywords(include bool) ReportOpt {
	return func(opts *ReportOpts) {
		opts.Keywords = include
	}
}

// WithLSI can enable (the default) or disable LSI keyword extraction.
func WithLSI(include bool) ReportOpt {
	return func(opts *ReportOpts) {
		opts.LSI = include
	}
}

// WithSentenceStats can enable (the default) or disable sentence statistics.
func WithSentenceStats(include bool) ReportOpt {
	return func(opts *ReportOpts) {
		opts.SentenceStats = include
	}
}

// WithLanguageDetection can enable (the default) or disable language
// detection. An explicit WithLanguage always wins.
func WithLanguageDetection(include bool) ReportOpt {
	return func(opts *ReportOpts) {
		opts.DetectLanguage = include
	}
}

// WithLanguage sets the text language
func WithLanguage(lang Language) ReportOpt {
	return func(opts *ReportOpts) {
		opts.Language = lang
	}
}

// UsingAnalyzer specifies the Analyzer to use for readability.
func UsingAnalyzer(a *Analyzer) ReportOpt {
	return func(opts *ReportOpts) {
		opts.Analyzer = a
	}
}

// WithStopWordLanguages adds the library stop words of langs to the LSI filter.
func WithStopWordLanguages(langs ...Language) ReportOpt {
	return func(opts *ReportOpts) {
		opts.StopWordLanguages = append(opts.StopWordLanguages, langs...)
	}
}

// ReportMetadata contains metadata about an analyzed text.
type ReportMetadata struct {
	Title              string    `json:"title,omitempty" yaml:"title,omitempty"`
	Language           Language  `json:"language,omitempty" yaml:"language,omitempty"`
	LanguageConfidence float64   `json:"languageConfidence,omitempty" yaml:"languageConfidence,omitempty"`
	ProcessedAt        time.Time `json:"processedAt" yaml:"processedAt"`
	ProcessingTimeMs   int64     `json:"processingTimeMs" yaml:"processingTimeMs"`
	Version            string    `json:"version" yaml:"version"`
}

// A Report gathers every metric computed for one text.
type Report struct {
	Metadata      ReportMetadata      `json:"metadata" yaml:"metadata"`
	Summary       WordSummary         `json:"summary" yaml:"summary"`
	Readability   *ReadabilityMetrics `json:"readability,omitempty" yaml:"readability,omitempty"` // nil when not computable
	Keywords      []KeywordEntry      `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	LSIKeywords   []KeywordEntry      `json:"lsiKeywords,omitempty" yaml:"lsiKeywords,omitempty"`
	SentenceStats *SentenceStats      `json:"sentenceStats,omitempty" yaml:"sentenceStats,omitempty"`
}

// WithTitle records the title of the document the text came from.
func WithTitle(title string) ReportOpt {
	return func(opts *ReportOpts) {
		opts.Title = title
	}
}

var defaultOpts = ReportOpts{
	Readability:    true,
	Keywords:       true,
	LSI:            true,
	SentenceStats:  true,
	DetectLanguage: true,
}

var defaultDetector = NewLanguageDetector()

// NewReport analyzes text according to the user-specified options.
//
// For example,
//
//	report := textmetrics.NewReport("...")
func NewReport(text string, opts ...ReportOpt) *Report {
	startTime := time.Now()

	base := defaultOpts
	for _, applyOpt := range opts {
		applyOpt(&base)
	}
	if base.Analyzer == nil {
		base.Analyzer = defaultAnalyzer
	}

	report := Report{
		Metadata: ReportMetadata{
			Title:       base.Title,
			Language:    base.Language,
			ProcessedAt: startTime,
			Version:     Version,
		},
		Summary: SummarizeWords(text),
	}
	if base.Language != "" {
		report.Metadata.LanguageConfidence = 1
	} else if base.DetectLanguage && report.Summary.TotalWords > 0 {
		report.Metadata.Language, report.Metadata.LanguageConfidence = defaultDetector.DetectLanguage(text)
	}

	if base.Readability {
		if metrics, ok := base.Analyzer.Analyze(text); ok {
			report.Readability = &metrics
		}
	}

	if base.Keywords {
		report.Keywords = ExtractKeywords(text, Density)
	}

	if base.LSI {
		policy := LSIPolicy()
		if len(base.StopWordLanguages) > 0 {
			policy.StopWords = policy.StopWords.Extend(base.StopWordLanguages...)
		}
		report.LSIKeywords = ExtractKeywordsWithPolicy(text, policy)
	}

	if base.SentenceStats {
		if stats, ok := base.Analyzer.SentenceLengths(text); ok {
			report.SentenceStats = &stats
		}
	}

	report.Metadata.ProcessingTimeMs = time.Since(startTime).Milliseconds()

	return &report
}
