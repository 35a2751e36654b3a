package analyzer

import "github.com/anime-shed/text-insight-go/pkg/models"

// AnalysisOptions provides flexible configuration for content analysis
type AnalysisOptions struct {
	// Sentiment label thresholds. A score above PositiveThreshold labels
	// the text positive, below NegativeThreshold negative, else neutral.
	PositiveThreshold float64
	NegativeThreshold float64

	// Secondary VADER sentiment pass
	EnableVader bool

	// Format handling
	FormatHint     models.DataFormat
	IncludeSamples bool
	MaxSampleRows  int

	// Performance options
	UseWorkerPool bool
	MaxWorkers    int
}

// DefaultOptions returns default analysis options
func DefaultOptions() AnalysisOptions {
	return AnalysisOptions{
		PositiveThreshold: 0.05,
		NegativeThreshold: -0.05,
		EnableVader:       true,
		FormatHint:        models.FormatAuto,
		IncludeSamples:    true,
		MaxSampleRows:     3,
		UseWorkerPool:     true,
		MaxWorkers:        0, // Use default CPU count
	}
}

// WithFormatHint returns options with an explicit format hint
func (opts AnalysisOptions) WithFormatHint(hint models.DataFormat) AnalysisOptions {
	opts.FormatHint = hint
	return opts
}

// WithThresholds allows setting custom sentiment label thresholds
func (opts AnalysisOptions) WithThresholds(positive, negative float64) AnalysisOptions {
	opts.PositiveThreshold = positive
	opts.NegativeThreshold = negative
	return opts
}

// WithoutVader disables the secondary VADER sentiment pass
func (opts AnalysisOptions) WithoutVader() AnalysisOptions {
	opts.EnableVader = false
	return opts
}

// WithoutSamples disables sample rows in data format profiles
func (opts AnalysisOptions) WithoutSamples() AnalysisOptions {
	opts.IncludeSamples = false
	return opts
}
