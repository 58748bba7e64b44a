package textmetrics

import (
	"fmt"
	"sort"
	"strings"
)

// KeywordVariant selects one of the two keyword ranking policies.
type KeywordVariant string

const (
	// Density ranks every word longer than two letters and reports its share
	// of the text.
	Density KeywordVariant = "density"
	// LSI ranks words longer than three letters, skips stop words and tags
	// each entry with a relevance level.
	LSI KeywordVariant = "lsi"
)

// ParseKeywordVariant converts a user-supplied name into a KeywordVariant.
func ParseKeywordVariant(s string) (KeywordVariant, error) {
	switch v := KeywordVariant(strings.ToLower(strings.TrimSpace(s))); v {
	case Density, LSI:
		return v, nil
	default:
		return "", fmt.Errorf("unknown keyword variant %q (want %q or %q)", s, Density, LSI)
	}
}

// KeywordPolicy parameterizes keyword ranking.
type KeywordPolicy struct {
	MinLength     int       // Tokens of rune length <= MinLength are ignored.
	Limit         int       // Maximum number of entries returned; <= 0 means all.
	StopWords     StopWords // Words never ranked.
	WithDensity   bool      // Populate KeywordEntry.Density.
	WithRelevance bool      // Populate KeywordEntry.Relevance.
}

// DensityPolicy returns the policy of the word counter's keyword table.
func DensityPolicy() KeywordPolicy {
	return KeywordPolicy{MinLength: 2, Limit: 10, WithDensity: true}
}

// LSIPolicy returns the policy of the LSI keyword tool.
//
// The length filter also drops three-letter acronyms such as "seo"; that is
// the tool's established behavior and is kept as is.
func LSIPolicy() KeywordPolicy {
	return KeywordPolicy{MinLength: 3, Limit: 20, StopWords: LSIStopWords(), WithRelevance: true}
}

// Policy returns the KeywordPolicy of a variant.
func (v KeywordVariant) Policy() KeywordPolicy {
	if v == LSI {
		return LSIPolicy()
	}
	return DensityPolicy()
}

// FrequencyTable counts token occurrences and remembers the order in which
// tokens were first seen.
type FrequencyTable struct {
	counts map[string]int
	order  []string
	total  int
}

// NewFrequencyTable counts tokens.
func NewFrequencyTable(tokens []string) *FrequencyTable {
	ft := &FrequencyTable{counts: make(map[string]int), total: len(tokens)}
	for _, tok := range tokens {
		if _, seen := ft.counts[tok]; !seen {
			ft.order = append(ft.order, tok)
		}
		ft.counts[tok]++
	}
	return ft
}

// Count returns the occurrences of token.
func (ft *FrequencyTable) Count(token string) int {
	return ft.counts[token]
}

// Total returns the number of tokens counted.
func (ft *FrequencyTable) Total() int {
	return ft.total
}

// Unique returns the number of distinct tokens.
func (ft *FrequencyTable) Unique() int {
	return len(ft.order)
}

// Ranked returns the distinct tokens sorted by descending count. Equal counts
// keep first-seen order.
func (ft *FrequencyTable) Ranked() []string {
	ranked := make([]string, len(ft.order))
	copy(ranked, ft.order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ft.counts[ranked[i]] > ft.counts[ranked[j]]
	})
	return ranked
}

// ExtractKeywords ranks the most frequent words of text under a variant's
// policy. Blank text yields an empty slice.
func ExtractKeywords(text string, variant KeywordVariant) []KeywordEntry {
	return ExtractKeywordsWithPolicy(text, variant.Policy())
}

// ExtractKeywordsWithPolicy ranks the most frequent words of text.
func ExtractKeywordsWithPolicy(text string, policy KeywordPolicy) []KeywordEntry {
	table := NewFrequencyTable(Tokenize(text, policy.MinLength))

	entries := []KeywordEntry{}
	for _, word := range table.Ranked() {
		if policy.Limit > 0 && len(entries) == policy.Limit {
			break
		}
		if policy.StopWords.Contains(word) {
			continue
		}

		entry := KeywordEntry{Word: word, Count: table.Count(word)}
		if policy.WithDensity {
			entry.Density = round(float64(entry.Count)/float64(table.Total())*100, 2)
		}
		if policy.WithRelevance {
			entry.Relevance = RelevanceForCount(entry.Count)
		}
		entries = append(entries, entry)
	}
	return entries
}

// RelevanceForCount tags an LSI keyword by how often it occurs.
func RelevanceForCount(count int) Relevance {
	switch {
	case count >= 5:
		return HighRelevance
	case count >= 3:
		return MediumRelevance
	default:
		return LowRelevance
	}
}

// SummarizeWords returns the word counter's totals over words longer than two
// letters. Blank text yields the zero value.
func SummarizeWords(text string) WordSummary {
	tokens := counterTokenizer.Tokenize(text)
	if len(tokens) == 0 {
		return WordSummary{}
	}

	letters := 0
	for _, tok := range tokens {
		letters += len([]rune(tok))
	}
	return WordSummary{
		TotalWords:    len(tokens),
		UniqueWords:   NewFrequencyTable(tokens).Unique(),
		AvgWordLength: round(float64(letters)/float64(len(tokens)), 1),
	}
}
