package textmetrics

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

// LanguageDetector guesses which of the supported languages a text is in.
type LanguageDetector struct {
	functionWords map[Language]map[string]bool
	ngrams        map[Language]map[string]float64
}

// NewLanguageDetector builds a detector for SupportedLanguages.
func NewLanguageDetector() *LanguageDetector {
	ld := &LanguageDetector{
		functionWords: make(map[Language]map[string]bool),
		ngrams:        make(map[Language]map[string]float64),
	}

	ld.initializeFunctionWords()
	ld.initializeNgrams()

	return ld
}

// initializeFunctionWords sets up the most frequent short words of each language
func (ld *LanguageDetector) initializeFunctionWords() {
	words := map[Language][]string{
		English:    {"the", "and", "that", "have", "for", "not", "with", "you", "this", "but", "from", "they"},
		Portuguese: {"não", "uma", "com", "para", "mais", "isso", "você", "pelo", "pela", "são", "também", "muito"},
		Spanish:    {"que", "los", "las", "por", "con", "para", "pero", "más", "una", "está", "muy", "también"},
		French:     {"les", "des", "est", "une", "dans", "pour", "avec", "pas", "sont", "mais", "vous", "nous"},
	}
	for lang, list := range words {
		set := make(map[string]bool, len(list))
		for _, w := range list {
			set[w] = true
		}
		ld.functionWords[lang] = set
	}
}

// initializeNgrams loads the expected share of each language's most common trigrams.
func (ld *LanguageDetector) initializeNgrams() {
	ld.ngrams[English] = map[string]float64{
		"the": 0.15, "and": 0.08, "ing": 0.06, "ion": 0.05, "tio": 0.04,
		"ent": 0.03, "ati": 0.03, "for": 0.03, "her": 0.03, "ter": 0.03,
	}

	ld.ngrams[Portuguese] = map[string]float64{
		"ção": 0.12, "ões": 0.08, "que": 0.06, "ent": 0.05, "nte": 0.04,
		"ado": 0.04, "com": 0.04, "ara": 0.03, "est": 0.03, "uma": 0.03,
	}

	ld.ngrams[Spanish] = map[string]float64{
		"que": 0.12, "ión": 0.08, "ado": 0.06, "con": 0.05, "ent": 0.04,
		"par": 0.04, "est": 0.04, "ara": 0.03, "del": 0.03, "los": 0.03,
	}

	ld.ngrams[French] = map[string]float64{
		"les": 0.10, "ent": 0.08, "ion": 0.07, "des": 0.06, "que": 0.05,
		"ait": 0.04, "lle": 0.04, "eur": 0.04, "our": 0.03, "ant": 0.03,
	}
}

// DetectLanguage attempts to detect the language of the given text. Texts
// shorter than ten bytes default to English with confidence 0.5.
func (ld *LanguageDetector) DetectLanguage(text string) (Language, float64) {
	if len(text) < 10 {
		return English, 0.5
	}

	text = strings.ToLower(text)
	scores := make(map[Language]float64)

	words := strings.FieldsFunc(text, func(r rune) bool { return !unicode.IsLetter(r) })
	for lang, set := range ld.functionWords {
		for _, w := range words {
			if set[w] {
				scores[lang] += 0.1
			}
		}
	}

	profile := trigramProfile(text)
	for lang, expected := range ld.ngrams {
		for tri, share := range profile {
			scores[lang] += share * expected[tri]
		}
	}

	for lang, score := range scoreLetters(text) {
		scores[lang] += score
	}

	// Fixed order: equal scores resolve the same way every time.
	best, total := English, 0.0
	for _, lang := range SupportedLanguages() {
		total += scores[lang]
		if scores[lang] > scores[best] {
			best = lang
		}
	}
	if total == 0 {
		return English, 0
	}
	return best, math.Min(1, scores[best]/total)
}

// trigramProfile returns the relative frequency of each all-letter trigram.
func trigramProfile(text string) map[string]float64 {
	profile := make(map[string]float64)
	runes := []rune(text)
	n := 0
	for i := 0; i+3 <= len(runes); i++ {
		tri := runes[i : i+3]
		if !unicode.IsLetter(tri[0]) || !unicode.IsLetter(tri[1]) || !unicode.IsLetter(tri[2]) {
			continue
		}
		profile[string(tri)]++
		n++
	}
	for tri := range profile {
		profile[tri] /= float64(n)
	}
	return profile
}

type letterWeight struct {
	lang   Language
	weight float64
}

// distinctiveLetters are letters common in some supported languages and rare
// in the others.
var distinctiveLetters = map[rune][]letterWeight{
	'ã': {{Portuguese, 10}},
	'õ': {{Portuguese, 10}},
	'ñ': {{Spanish, 10}},
	'è': {{French, 8}},
	'ù': {{French, 8}},
	'ë': {{French, 8}},
	'î': {{French, 8}},
	'û': {{French, 8}},
	'ç': {{Portuguese, 4}, {French, 4}},
	'ê': {{Portuguese, 3}, {French, 3}},
	'ô': {{Portuguese, 3}, {French, 3}},
	'â': {{Portuguese, 3}, {French, 3}},
	'w': {{English, 3}},
	'k': {{English, 1}},
}

// scoreLetters weights each distinctive letter by its share of all letters.
func scoreLetters(text string) map[Language]float64 {
	scores := make(map[Language]float64)
	counts := make(map[rune]int)
	letters := 0
	for _, r := range text {
		if unicode.IsLetter(r) {
			counts[r]++
			letters++
		}
	}
	for r, weights := range distinctiveLetters {
		if counts[r] == 0 {
			continue
		}
		share := float64(counts[r]) / float64(letters)
		for _, w := range weights {
			scores[w.lang] += share * w.weight
		}
	}
	return scores
}

// Supported reports whether lang is one of the interface languages.
func (lang Language) Supported() bool {
	for _, supported := range SupportedLanguages() {
		if lang == supported {
			return true
		}
	}
	return false
}

// SupportedLanguages returns all supported languages
func SupportedLanguages() []Language {
	return []Language{English, Portuguese, Spanish, French}
}

// ParseLanguage converts a locale such as "pt" or "pt-BR" into a Language.
func ParseLanguage(s string) (Language, error) {
	code := strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(code, "-_"); i >= 0 {
		code = code[:i]
	}
	if lang := Language(code); lang.Supported() {
		return lang, nil
	}
	return "", fmt.Errorf("language %q is not supported; supported languages: %v", s, SupportedLanguages())
}
