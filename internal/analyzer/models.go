package analyzer

import (
	"github.com/anime-shed/text-insight-go/pkg/models"
)

// AnalysisResult is an alias to the shared models.AnalysisResult so callers
// inside this package do not need to import pkg/models for the common case.
type AnalysisResult = models.AnalysisResult

// FeatureSet holds the primitive counts and tokens derived from raw text.
// A FeatureSet is created fresh per analysis call and never cached across
// requests.
type FeatureSet struct {
	Tokens         []string
	WordCount      int
	SentenceCount  int
	CharacterCount int
	UniqueWords    int
	AvgWordLength  float64
}
