package analyzer

import (
	"github.com/anime-shed/text-insight-go/pkg/models"
)

// TextStatsAnalyzer computes readability and composition metrics from an
// extracted feature set. All outputs are deterministic functions of the
// features; no I/O is performed.
type TextStatsAnalyzer struct{}

// NewTextStatsAnalyzer creates a new text statistics analyzer
func NewTextStatsAnalyzer() *TextStatsAnalyzer {
	return &TextStatsAnalyzer{}
}

// Analyze implements the Analyzer interface for text statistics
func (a *TextStatsAnalyzer) Analyze(content string, options AnalysisOptions) (*models.AnalysisResult, error) {
	features, err := ExtractFeatures(content)
	if err != nil {
		return nil, err
	}
	return &models.AnalysisResult{TextStats: a.Compute(features)}, nil
}

// Compute derives the statistics from a feature set. Ratios default to 0
// when their denominator is 0.
func (a *TextStatsAnalyzer) Compute(features *FeatureSet) *models.TextStatsResult {
	result := &models.TextStatsResult{
		WordCount:      features.WordCount,
		SentenceCount:  features.SentenceCount,
		CharacterCount: features.CharacterCount,
		UniqueWords:    features.UniqueWords,
		AvgWordLength:  features.AvgWordLength,
	}

	if features.WordCount == 0 {
		return result
	}

	result.AvgSentenceLength = float64(features.WordCount) / float64(max(1, features.SentenceCount))
	result.UniqueWordRatio = float64(features.UniqueWords) / float64(features.WordCount)
	result.ReadabilityScore = readabilityScore(result.AvgSentenceLength, features.AvgWordLength)

	return result
}

// readabilityScore is a fixed Flesch-like reading ease approximation:
//
//	206.835 - 1.015*avgSentenceLength - 84.6*(avgWordLength/100)
//
// clamped to [0, 100]. Average word length stands in for the syllable count
// of the classic formula so the score stays a pure function of the two
// inputs and is reproducible across implementations.
func readabilityScore(avgSentenceLength, avgWordLength float64) float64 {
	score := 206.835 - 1.015*avgSentenceLength - 84.6*avgWordLength/100

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
