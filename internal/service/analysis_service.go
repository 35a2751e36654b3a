package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/anime-shed/text-insight-go/internal/analyzer"
	apperrors "github.com/anime-shed/text-insight-go/internal/errors"
	"github.com/anime-shed/text-insight-go/pkg/models"
	"github.com/anime-shed/text-insight-go/pkg/validation"
)

// AnalysisService is the core facade consumed by the HTTP layer
type AnalysisService interface {
	// AnalyzeOne analyzes a single payload with the requested analysis
	// type and format hint
	AnalyzeOne(ctx context.Context, content string, analysisType models.AnalysisType, hint models.DataFormat) models.AnalysisResponse

	// AnalyzeBatch analyzes an ordered sequence of payloads, isolating
	// per-item failures
	AnalyzeBatch(ctx context.Context, items []string, analysisType models.AnalysisType) (*models.BatchResult, error)

	// Capabilities describes the supported analysis types and formats
	Capabilities() models.Capabilities

	// Close releases the batch worker pool
	Close() error
}

// analysisService implements AnalysisService over the dispatcher and batch runner
type analysisService struct {
	dispatcher *analyzer.Dispatcher
	batch      *analyzer.BatchRunner
	validator  *validation.TextValidator
	defaults   analyzer.AnalysisOptions
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(
	dispatcher *analyzer.Dispatcher,
	batch *analyzer.BatchRunner,
	validator *validation.TextValidator,
	defaults analyzer.AnalysisOptions,
) AnalysisService {
	return &analysisService{
		dispatcher: dispatcher,
		batch:      batch,
		validator:  validator,
		defaults:   defaults,
	}
}

// AnalyzeOne validates and analyzes a single payload. Failures are reported
// in the response rather than as a returned error, so the transport layer
// maps them uniformly via the error kind.
func (s *analysisService) AnalyzeOne(ctx context.Context, content string, analysisType models.AnalysisType, hint models.DataFormat) models.AnalysisResponse {
	if analysisType == "" {
		analysisType = models.AnalysisTypeComprehensive
	}

	options := s.defaults
	if hint != "" {
		options.FormatHint = hint
	}

	var response models.AnalysisResponse
	if err := s.validator.ValidateContent(content); err != nil {
		response = models.AnalysisResponse{
			ID:           uuid.NewString(),
			Success:      false,
			AnalysisType: analysisType,
			Error:        err.Error(),
			ErrorKind:    string(apperrors.Kind(err)),
		}
	} else {
		response = s.dispatcher.Dispatch(analysisType, content, options)
	}

	response.Metadata = &models.ResponseMetadata{
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		TextLength: len(content),
	}
	return response
}

// AnalyzeBatch applies the dispatcher to every item through the batch
// runner. Only batch-level problems (empty or oversized batches) surface as
// errors; item-level failures land in the per-item responses.
func (s *analysisService) AnalyzeBatch(ctx context.Context, items []string, analysisType models.AnalysisType) (*models.BatchResult, error) {
	if analysisType == "" {
		analysisType = models.AnalysisTypeComprehensive
	}
	return s.batch.Run(items, analysisType, s.defaults)
}

// Capabilities describes the analyzers for the models info endpoint
func (s *analysisService) Capabilities() models.Capabilities {
	return models.Capabilities{
		AnalysisTypes: s.dispatcher.SupportedTypes(),
		SupportedFormats: []models.DataFormat{
			models.FormatText,
			models.FormatJSON,
			models.FormatCSV,
			models.FormatAuto,
		},
		AvailableModels: map[string]models.ModelInfo{
			"sentiment_analysis": {
				Description: "Lexicon-based sentiment scoring with an optional VADER pass",
				InputTypes:  []string{"text"},
				Output:      "sentiment classification with polarity score and hit counts",
			},
			"text_analysis": {
				Description: "Text statistics including composition metrics and readability",
				InputTypes:  []string{"text"},
				Output:      "word/sentence counts, unique word ratio and readability score",
			},
			"data_format_analysis": {
				Description: "Format detection and structural profiling of raw content",
				InputTypes:  []string{"text", "json", "csv"},
				Output:      "detected format with a format-specific structure profile",
			},
			"comprehensive_analysis": {
				Description: "Merged sentiment, text statistics and data format report",
				InputTypes:  []string{"text", "json", "csv"},
				Output:      "combined report keyed by sub-analysis name",
			},
		},
	}
}

// Close shuts down the batch worker pool
func (s *analysisService) Close() error {
	s.batch.Close()
	return nil
}
