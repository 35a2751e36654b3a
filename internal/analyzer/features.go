package analyzer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	apperrors "github.com/anime-shed/text-insight-go/internal/errors"
)

// ExtractFeatures derives a FeatureSet from raw text. Words are split on
// whitespace, sentences on terminal punctuation (. ! ?), and tokens are
// lower-cased with surrounding punctuation stripped before uniqueness
// counting. An empty string produces all-zero counts; downstream ratio
// computations guard the zero denominators themselves.
func ExtractFeatures(text string) (*FeatureSet, error) {
	if !utf8.ValidString(text) {
		return nil, apperrors.NewInvalidInputError("content is not valid UTF-8 text", nil)
	}

	features := &FeatureSet{
		Tokens:         strings.Fields(text),
		CharacterCount: utf8.RuneCountInString(text),
		SentenceCount:  countSentences(text),
	}
	features.WordCount = len(features.Tokens)

	unique := make(map[string]struct{}, len(features.Tokens))
	totalLength := 0
	for _, token := range features.Tokens {
		totalLength += utf8.RuneCountInString(token)
		if normalized := NormalizeToken(token); normalized != "" {
			unique[normalized] = struct{}{}
		}
	}
	features.UniqueWords = len(unique)
	if features.WordCount > 0 {
		features.AvgWordLength = float64(totalLength) / float64(features.WordCount)
	}

	return features, nil
}

// NormalizeToken lower-cases a token and strips surrounding punctuation and
// symbols, so "Great!" and "great" count as the same word.
func NormalizeToken(token string) string {
	trimmed := strings.TrimFunc(token, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
	return strings.ToLower(trimmed)
}

// countSentences counts segments terminated by '.', '!' or '?'. Trailing
// content without a terminator counts as one implicit sentence, so any
// non-blank text yields at least one sentence.
func countSentences(text string) int {
	count := 0
	hasContent := false
	for _, r := range text {
		switch r {
		case '.', '!', '?':
			if hasContent {
				count++
				hasContent = false
			}
		default:
			if !unicode.IsSpace(r) {
				hasContent = true
			}
		}
	}
	if hasContent {
		count++
	}
	return count
}
