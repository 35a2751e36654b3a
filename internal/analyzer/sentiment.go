package analyzer

import (
	"github.com/jonreiter/govader"

	"github.com/anime-shed/text-insight-go/pkg/models"
)

// VADER compound score thresholds for the secondary pass. The compound
// score uses a different scale than the lexicon-count score, so it carries
// its own fixed label cutoffs.
const (
	vaderPositiveThreshold = 0.20
	vaderNegativeThreshold = -0.20
)

// SentimentAnalyzer scores text polarity by counting lexicon matches:
//
//	score = (positive_hits - negative_hits) / max(1, word_count)
//
// The label is derived from the score via the thresholds carried in
// AnalysisOptions. Scoring is deterministic and side-effect-free; token
// order does not affect the result.
type SentimentAnalyzer struct {
	lexicon *Lexicon
	vader   *govader.SentimentIntensityAnalyzer
}

// NewSentimentAnalyzer creates a sentiment analyzer over the given lexicon
func NewSentimentAnalyzer(lexicon *Lexicon) *SentimentAnalyzer {
	return &SentimentAnalyzer{
		lexicon: lexicon,
		vader:   govader.NewSentimentIntensityAnalyzer(),
	}
}

// Analyze implements the Analyzer interface for sentiment analysis
func (a *SentimentAnalyzer) Analyze(content string, options AnalysisOptions) (*models.AnalysisResult, error) {
	features, err := ExtractFeatures(content)
	if err != nil {
		return nil, err
	}

	result := a.Score(features, options)
	if options.EnableVader {
		result.Vader = a.vaderScore(content)
	}

	return &models.AnalysisResult{Sentiment: result}, nil
}

// Score computes the lexicon-count sentiment of an extracted feature set
func (a *SentimentAnalyzer) Score(features *FeatureSet, options AnalysisOptions) *models.SentimentResult {
	positiveHits, negativeHits := 0, 0
	for _, token := range features.Tokens {
		normalized := NormalizeToken(token)
		switch {
		case a.lexicon.IsPositive(normalized):
			positiveHits++
		case a.lexicon.IsNegative(normalized):
			negativeHits++
		}
	}

	score := float64(positiveHits-negativeHits) / float64(max(1, features.WordCount))

	return &models.SentimentResult{
		Label:        labelForScore(score, options),
		Score:        score,
		PositiveHits: positiveHits,
		NegativeHits: negativeHits,
		WordCount:    features.WordCount,
	}
}

// vaderScore runs the rule-based VADER pass over the raw text. VADER is a
// local heuristic lexicon, no network or model call is involved.
func (a *SentimentAnalyzer) vaderScore(content string) *models.VaderResult {
	compound := a.vader.PolarityScores(content).Compound

	label := "neutral"
	if compound >= vaderPositiveThreshold {
		label = "positive"
	} else if compound <= vaderNegativeThreshold {
		label = "negative"
	}

	return &models.VaderResult{Compound: compound, Label: label}
}

func labelForScore(score float64, options AnalysisOptions) string {
	switch {
	case score > options.PositiveThreshold:
		return "positive"
	case score < options.NegativeThreshold:
		return "negative"
	default:
		return "neutral"
	}
}
