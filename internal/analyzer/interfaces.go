package analyzer

import "github.com/anime-shed/text-insight-go/pkg/models"

// Analyzer is the capability shared by every analysis kind. Implementations
// are pure functions of their inputs: no shared mutable state, no I/O.
type Analyzer interface {
	Analyze(content string, options AnalysisOptions) (*models.AnalysisResult, error)
}

// FeatureExtractor derives the intermediate token/count features consumed
// by the sentiment and text statistics analyzers.
type FeatureExtractor interface {
	Extract(text string) (*FeatureSet, error)
}

// FormatDetector inspects raw content and reports its structural profile.
type FormatDetector interface {
	Profile(content string, hint models.DataFormat, options AnalysisOptions) (*models.DataFormatResult, error)
}
