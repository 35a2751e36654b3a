package analyzer

import (
	"github.com/anime-shed/text-insight-go/pkg/models"
)

// Sub-analysis names used as keys in the merged comprehensive report
const (
	subAnalysisSentiment  = "sentiment"
	subAnalysisTextStats  = "text_stats"
	subAnalysisDataFormat = "data_format"
)

// ComprehensiveAnalyzer orchestrates sentiment and text statistics over the
// same feature set, and attaches a data format profile when the content is
// structured or the request carries an explicit non-text format hint.
//
// Partial-success contract: a failing sub-analyzer degrades to an entry in
// SubErrors under its name; the comprehensive call itself only fails when
// no sub-analysis could run at all.
type ComprehensiveAnalyzer struct {
	sentiment *SentimentAnalyzer
	stats     *TextStatsAnalyzer
	format    *DataFormatAnalyzer
}

// NewComprehensiveAnalyzer creates a comprehensive analyzer over the given
// sub-analyzers
func NewComprehensiveAnalyzer(sentiment *SentimentAnalyzer, stats *TextStatsAnalyzer, format *DataFormatAnalyzer) *ComprehensiveAnalyzer {
	return &ComprehensiveAnalyzer{
		sentiment: sentiment,
		stats:     stats,
		format:    format,
	}
}

// Analyze implements the Analyzer interface for comprehensive analysis
func (a *ComprehensiveAnalyzer) Analyze(content string, options AnalysisOptions) (*models.AnalysisResult, error) {
	merged := &models.ComprehensiveResult{}
	degrade := func(name string, err error) {
		if merged.SubErrors == nil {
			merged.SubErrors = make(map[string]string)
		}
		merged.SubErrors[name] = err.Error()
	}

	features, err := ExtractFeatures(content)
	if err != nil {
		degrade(subAnalysisSentiment, err)
		degrade(subAnalysisTextStats, err)
	} else {
		sentiment := a.sentiment.Score(features, options)
		if options.EnableVader {
			sentiment.Vader = a.sentiment.vaderScore(content)
		}
		merged.Sentiment = sentiment
		merged.TextStats = a.stats.Compute(features)
	}

	a.attachFormatProfile(content, options, merged, degrade)

	return &models.AnalysisResult{Comprehensive: merged}, nil
}

// attachFormatProfile adds the data format profile when applicable. An
// explicit json/csv hint always runs the format analyzer, with parse
// failures degraded to a sub-error. Under auto, the profile is attached
// only when detection finds structured content; plain text stays implicit
// since the text statistics already cover it.
func (a *ComprehensiveAnalyzer) attachFormatProfile(content string, options AnalysisOptions, merged *models.ComprehensiveResult, degrade func(string, error)) {
	hint := options.FormatHint
	if hint == "" {
		hint = models.FormatAuto
	}

	switch hint {
	case models.FormatJSON, models.FormatCSV:
		result, err := a.format.Profile(content, hint, options)
		if err != nil {
			degrade(subAnalysisDataFormat, err)
			return
		}
		merged.DataFormat = result
	case models.FormatAuto:
		result, err := a.format.Profile(content, models.FormatAuto, options)
		if err != nil {
			degrade(subAnalysisDataFormat, err)
			return
		}
		if result.DetectedFormat != models.FormatText {
			merged.DataFormat = result
		}
	}
}
