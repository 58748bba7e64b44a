package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seokit/textmetrics"
)

// readabilityOutput is the structured form of the readability command.
type readabilityOutput struct {
	Computable bool                            `json:"computable" yaml:"computable"`
	Metrics    *textmetrics.ReadabilityMetrics `json:"metrics,omitempty" yaml:"metrics,omitempty"`
}

func newReadabilityCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readability [text]",
		Short: "Score how easy a text is to read",
		Long: `Compute Flesch Reading Ease, Flesch-Kincaid grade level, reading level
and estimated reading time. Text without any words or sentences is reported
as not computable.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.readInput(cmd, args, "readability")
			if err != nil {
				return err
			}
			text := in.Text

			var out readabilityOutput
			if metrics, ok := a.analyzer.Analyze(text); ok {
				out = readabilityOutput{Computable: true, Metrics: &metrics}
			}
			a.log.Debug("readability analyzed", zap.Bool("computable", out.Computable), zap.Int("bytes", len(text)))

			return a.render(cmd.OutOrStdout(), out, func(w io.Writer) error {
				printReadability(w, out.Metrics)
				return nil
			})
		},
	}
	addInputFlags(cmd)
	return cmd
}

func newKeywordsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keywords [text]",
		Short: "Rank the most frequent words of a text",
		Long: `Rank words by frequency.

The density variant keeps words longer than two letters and reports the top 10
with their share of all counted words. The lsi variant keeps words longer than
three letters, skips common stop words and tags the top 20 by relevance.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetString("variant")
			variant, err := textmetrics.ParseKeywordVariant(raw)
			if err != nil {
				return err
			}

			tool := "keywords"
			if variant == textmetrics.LSI {
				tool = "lsi"
			}
			in, err := a.readInput(cmd, args, tool)
			if err != nil {
				return err
			}
			text := in.Text

			policy := variant.Policy()
			if langs := a.cfg.StopWordLanguages(); variant == textmetrics.LSI && len(langs) > 0 {
				policy.StopWords = policy.StopWords.Extend(langs...)
			}
			entries := textmetrics.ExtractKeywordsWithPolicy(text, policy)
			a.log.Debug("keywords extracted", zap.String("variant", string(variant)), zap.Int("entries", len(entries)))

			return a.render(cmd.OutOrStdout(), entries, func(w io.Writer) error {
				printKeywords(w, entries, variant)
				return nil
			})
		},
	}
	cmd.Flags().String("variant", string(textmetrics.Density), "Keyword variant: density or lsi")
	addInputFlags(cmd)
	return cmd
}

// wordsOutput is the structured form of the words command.
type wordsOutput struct {
	textmetrics.WordSummary `yaml:",inline"`
	Keywords                []textmetrics.KeywordEntry `json:"keywords" yaml:"keywords"`
}

func newWordsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words [text]",
		Short: "Count words and show keyword density",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.readInput(cmd, args, "words")
			if err != nil {
				return err
			}
			text := in.Text

			out := wordsOutput{
				WordSummary: textmetrics.SummarizeWords(text),
				Keywords:    textmetrics.ExtractKeywords(text, textmetrics.Density),
			}
			a.log.Debug("words counted", zap.Int("total", out.TotalWords), zap.Int("unique", out.UniqueWords))

			return a.render(cmd.OutOrStdout(), out, func(w io.Writer) error {
				printSummary(w, out.WordSummary)
				io.WriteString(w, "\n")
				printKeywords(w, out.Keywords, textmetrics.Density)
				return nil
			})
		},
	}
	addInputFlags(cmd)
	return cmd
}

func newReportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [text]",
		Short: "Run every analysis and print a combined report",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.readInput(cmd, args, "report")
			if err != nil {
				return err
			}
			text := in.Text

			opts := []textmetrics.ReportOpt{
				textmetrics.UsingAnalyzer(a.analyzer),
				textmetrics.WithStopWordLanguages(a.cfg.StopWordLanguages()...),
				textmetrics.WithTitle(in.Title),
			}
			if raw, _ := cmd.Flags().GetString("language"); raw != "" {
				lang, err := textmetrics.ParseLanguage(raw)
				if err != nil {
					return err
				}
				opts = append(opts, textmetrics.WithLanguage(lang))
			}
			if noLSI, _ := cmd.Flags().GetBool("no-lsi"); noLSI {
				opts = append(opts, textmetrics.WithLSI(false))
			}

			report := textmetrics.NewReport(text, opts...)
			a.log.Debug("report built",
				zap.String("language", string(report.Metadata.Language)),
				zap.Int64("processingTimeMs", report.Metadata.ProcessingTimeMs),
			)

			return a.render(cmd.OutOrStdout(), report, func(w io.Writer) error {
				printReport(w, report)
				return nil
			})
		},
	}
	cmd.Flags().String("language", "", "Language of the text (detected when empty)")
	cmd.Flags().Bool("no-lsi", false, "Skip LSI keyword extraction")
	addInputFlags(cmd)
	return cmd
}

func printReport(w io.Writer, r *textmetrics.Report) {
	if r.Metadata.Title != "" {
		fmt.Fprintf(w, "Title:                    %s\n", r.Metadata.Title)
	}
	if r.Metadata.Language != "" {
		fmt.Fprintf(w, "Language:                 %s (%.0f%%)\n\n", r.Metadata.Language, r.Metadata.LanguageConfidence*100)
	}
	printReadability(w, r.Readability)
	printSentenceStats(w, r.SentenceStats)
	io.WriteString(w, "\n")
	printSummary(w, r.Summary)
	if r.Keywords != nil {
		io.WriteString(w, "\nKeyword density\n")
		printKeywords(w, r.Keywords, textmetrics.Density)
	}
	if r.LSIKeywords != nil {
		io.WriteString(w, "\nLSI keywords\n")
		printKeywords(w, r.LSIKeywords, textmetrics.LSI)
	}
}
