package analyzer

import (
	"testing"

	apperrors "github.com/anime-shed/text-insight-go/internal/errors"
	"github.com/anime-shed/text-insight-go/pkg/models"
)

func newTestDispatcher() *Dispatcher {
	return NewDispatcher(NewDefaultLexicon())
}

func TestDispatcher_RoutesEveryType(t *testing.T) {
	d := newTestDispatcher()
	opts := DefaultOptions().WithoutVader()

	tests := []struct {
		analysisType models.AnalysisType
		content      string
		check        func(t *testing.T, result *models.AnalysisResult)
	}{
		{
			analysisType: models.AnalysisTypeSentiment,
			content:      "I love this product!",
			check: func(t *testing.T, result *models.AnalysisResult) {
				if result.Sentiment == nil {
					t.Error("Expected a sentiment result")
				}
			},
		},
		{
			analysisType: models.AnalysisTypeText,
			content:      "Some sample text. With two sentences.",
			check: func(t *testing.T, result *models.AnalysisResult) {
				if result.TextStats == nil {
					t.Error("Expected a text stats result")
				}
			},
		},
		{
			analysisType: models.AnalysisTypeDataFormat,
			content:      `{"key":"value"}`,
			check: func(t *testing.T, result *models.AnalysisResult) {
				if result.DataFormat == nil {
					t.Error("Expected a data format result")
				}
			},
		},
		{
			analysisType: models.AnalysisTypeComprehensive,
			content:      "A comprehensive request.",
			check: func(t *testing.T, result *models.AnalysisResult) {
				if result.Comprehensive == nil {
					t.Error("Expected a comprehensive result")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.analysisType), func(t *testing.T) {
			response := d.Dispatch(tt.analysisType, tt.content, opts)
			if !response.Success {
				t.Fatalf("Expected success, got error: %s", response.Error)
			}
			if response.ID == "" {
				t.Error("Expected a response ID")
			}
			if response.AnalysisType != tt.analysisType {
				t.Errorf("Expected analysis type %q, got %q", tt.analysisType, response.AnalysisType)
			}
			tt.check(t, response.Result)
		})
	}
}

func TestDispatcher_UnknownType(t *testing.T) {
	d := newTestDispatcher()

	response := d.Dispatch("telepathy", "some content", DefaultOptions())
	if response.Success {
		t.Fatal("Expected failure for unknown analysis type")
	}
	if response.ErrorKind != string(apperrors.ErrorTypeUnsupportedType) {
		t.Errorf("Expected unsupported_analysis_type error kind, got %q", response.ErrorKind)
	}
	if response.Result != nil {
		t.Error("Expected no result on failure")
	}
}

func TestDispatcher_EmptyContent(t *testing.T) {
	d := newTestDispatcher()

	for _, content := range []string{"", "   \n\t"} {
		response := d.Dispatch(models.AnalysisTypeSentiment, content, DefaultOptions())
		if response.Success {
			t.Fatalf("Expected failure for empty content %q", content)
		}
		if response.ErrorKind != string(apperrors.ErrorTypeInvalidInput) {
			t.Errorf("Expected invalid_input error kind, got %q", response.ErrorKind)
		}
		if response.Error == "" {
			t.Error("Expected a human-readable error message")
		}
	}
}

func TestDispatcher_SupportedTypes(t *testing.T) {
	d := newTestDispatcher()

	types := d.SupportedTypes()
	if len(types) != 4 {
		t.Fatalf("Expected 4 supported types, got %d", len(types))
	}

	for _, analysisType := range types {
		response := d.Dispatch(analysisType, "probe content", DefaultOptions().WithoutVader())
		if !response.Success {
			t.Errorf("Advertised type %q failed to dispatch: %s", analysisType, response.Error)
		}
	}
}
