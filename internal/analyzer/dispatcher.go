package analyzer

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/anime-shed/text-insight-go/internal/errors"
	"github.com/anime-shed/text-insight-go/pkg/models"
)

// Dispatcher maps an analysis type to its analyzer implementation. It is
// the single choke point shared by the single-item and batch flows, so both
// paths carry identical validation and error semantics.
type Dispatcher struct {
	analyzers map[models.AnalysisType]Analyzer
}

// NewDispatcher wires the fixed set of analyzers over a shared lexicon
func NewDispatcher(lexicon *Lexicon) *Dispatcher {
	sentiment := NewSentimentAnalyzer(lexicon)
	stats := NewTextStatsAnalyzer()
	format := NewDataFormatAnalyzer()

	return &Dispatcher{
		analyzers: map[models.AnalysisType]Analyzer{
			models.AnalysisTypeSentiment:     sentiment,
			models.AnalysisTypeText:          stats,
			models.AnalysisTypeDataFormat:    format,
			models.AnalysisTypeComprehensive: NewComprehensiveAnalyzer(sentiment, stats, format),
		},
	}
}

// SupportedTypes returns the analysis types this dispatcher can serve, in a
// fixed order
func (d *Dispatcher) SupportedTypes() []models.AnalysisType {
	return []models.AnalysisType{
		models.AnalysisTypeSentiment,
		models.AnalysisTypeText,
		models.AnalysisTypeDataFormat,
		models.AnalysisTypeComprehensive,
	}
}

// Dispatch validates the payload, selects the analyzer for the requested
// type and returns a per-item response. Failures are reported in the
// response rather than aborting the caller, so batch items stay isolated.
func (d *Dispatcher) Dispatch(analysisType models.AnalysisType, content string, options AnalysisOptions) models.AnalysisResponse {
	response := models.AnalysisResponse{
		ID:           uuid.NewString(),
		AnalysisType: analysisType,
	}

	a, ok := d.analyzers[analysisType]
	if !ok {
		return failed(response, apperrors.NewUnsupportedTypeError(
			fmt.Sprintf("unsupported analysis type: %q", analysisType)))
	}

	if strings.TrimSpace(content) == "" {
		return failed(response, apperrors.NewInvalidInputError("content cannot be empty", nil))
	}

	result, err := a.Analyze(content, options)
	if err != nil {
		return failed(response, err)
	}

	response.Success = true
	response.Result = result
	return response
}

func failed(response models.AnalysisResponse, err error) models.AnalysisResponse {
	response.Success = false
	response.Error = err.Error()
	response.ErrorKind = string(apperrors.Kind(err))
	return response
}
