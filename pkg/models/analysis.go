package models

// AnalysisType identifies which analyzer a request is dispatched to.
type AnalysisType string

const (
	AnalysisTypeSentiment     AnalysisType = "sentiment"
	AnalysisTypeText          AnalysisType = "text"
	AnalysisTypeDataFormat    AnalysisType = "data_format"
	AnalysisTypeComprehensive AnalysisType = "comprehensive"
)

// DataFormat identifies how raw content should be (or was) parsed.
type DataFormat string

const (
	FormatText    DataFormat = "text"
	FormatJSON    DataFormat = "json"
	FormatCSV     DataFormat = "csv"
	FormatAuto    DataFormat = "auto"
	FormatUnknown DataFormat = "unknown"
)

// SentimentResult represents the outcome of lexicon-based sentiment scoring
type SentimentResult struct {
	Label        string  `json:"label"`
	Score        float64 `json:"score"`
	PositiveHits int     `json:"positive_hits"`
	NegativeHits int     `json:"negative_hits"`
	WordCount    int     `json:"word_count"`

	// Secondary VADER pass (optional)
	Vader *VaderResult `json:"vader,omitempty"`
}

// VaderResult carries the compound score from the rule-based VADER pass
type VaderResult struct {
	Compound float64 `json:"compound"`
	Label    string  `json:"label"`
}

// TextStatsResult represents readability and composition metrics
type TextStatsResult struct {
	WordCount         int     `json:"word_count"`
	SentenceCount     int     `json:"sentence_count"`
	CharacterCount    int     `json:"character_count"`
	UniqueWords       int     `json:"unique_words"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
	AvgWordLength     float64 `json:"avg_word_length"`
	UniqueWordRatio   float64 `json:"unique_word_ratio"`
	ReadabilityScore  float64 `json:"readability_score"`
}

// CSVProfile describes the structure of CSV content
type CSVProfile struct {
	Columns     []string            `json:"columns"`
	RowCount    int                 `json:"row_count"`
	ColumnTypes map[string]string   `json:"column_types"`
	SampleRows  []map[string]string `json:"sample_rows,omitempty"`
}

// JSONProfile describes the structure of JSON content
type JSONProfile struct {
	TopLevelType string   `json:"top_level_type"`
	KeyCount     int      `json:"key_count,omitempty"`
	ElementCount int      `json:"element_count,omitempty"`
	Keys         []string `json:"keys,omitempty"`
	Sample       string   `json:"sample,omitempty"`
}

// TextProfile describes plain text content
type TextProfile struct {
	LineCount      int `json:"line_count"`
	WordCount      int `json:"word_count"`
	CharacterCount int `json:"character_count"`
}

// DataFormatResult represents format detection plus the format-specific
// profile. Exactly one of CSV/JSON/Text is populated, matching DetectedFormat.
type DataFormatResult struct {
	DetectedFormat DataFormat   `json:"detected_format"`
	CSV            *CSVProfile  `json:"csv,omitempty"`
	JSON           *JSONProfile `json:"json,omitempty"`
	Text           *TextProfile `json:"text,omitempty"`
}

// ComprehensiveResult merges the sub-analyses into one report keyed by
// sub-analysis name. A failing sub-analyzer is recorded in SubErrors under
// its name instead of failing the whole call.
type ComprehensiveResult struct {
	Sentiment  *SentimentResult  `json:"sentiment,omitempty"`
	TextStats  *TextStatsResult  `json:"text_stats,omitempty"`
	DataFormat *DataFormatResult `json:"data_format,omitempty"`
	SubErrors  map[string]string `json:"sub_errors,omitempty"`
}

// AnalysisResult is the union of all analyzer outputs.
// Exactly one field is populated, matching the requested analysis type.
type AnalysisResult struct {
	Sentiment     *SentimentResult     `json:"sentiment,omitempty"`
	TextStats     *TextStatsResult     `json:"text_stats,omitempty"`
	DataFormat    *DataFormatResult    `json:"data_format,omitempty"`
	Comprehensive *ComprehensiveResult `json:"comprehensive,omitempty"`
}

// ResponseMetadata carries per-request context alongside a result
type ResponseMetadata struct {
	Timestamp  string `json:"timestamp"`
	TextLength int    `json:"text_length"`
	ItemIndex  *int   `json:"item_index,omitempty"`
	Filename   string `json:"filename,omitempty"`
	FileSize   int64  `json:"file_size,omitempty"`
}

// AnalysisResponse is the per-item outcome returned to callers.
// Exactly one of Result/Error is populated, governed by Success.
type AnalysisResponse struct {
	ID           string            `json:"id"`
	Success      bool              `json:"success"`
	AnalysisType AnalysisType      `json:"analysis_type"`
	Result       *AnalysisResult   `json:"result,omitempty"`
	Error        string            `json:"error,omitempty"`
	ErrorKind    string            `json:"error_kind,omitempty"`
	Metadata     *ResponseMetadata `json:"metadata,omitempty"`
}

// BatchSummary aggregates statistics over the successful items of a batch
type BatchSummary struct {
	SuccessRate           float64        `json:"success_rate"`
	AverageTextLength     float64        `json:"average_text_length"`
	SentimentDistribution map[string]int `json:"sentiment_distribution,omitempty"`
	AverageScore          float64        `json:"average_score,omitempty"`
	AverageWordCount      float64        `json:"average_word_count,omitempty"`
	TotalWords            int            `json:"total_words,omitempty"`
}

// BatchResult holds one AnalysisResponse per input item, in input order.
// len(Results) always equals the number of submitted items.
type BatchResult struct {
	Success         bool               `json:"success"`
	TotalItems      int                `json:"total_items"`
	SuccessfulItems int                `json:"successful_items"`
	Results         []AnalysisResponse `json:"results"`
	Summary         *BatchSummary      `json:"summary,omitempty"`
}

// Capabilities describes the analysis types and formats this service supports
type Capabilities struct {
	AnalysisTypes    []AnalysisType       `json:"analysis_types"`
	SupportedFormats []DataFormat         `json:"supported_formats"`
	AvailableModels  map[string]ModelInfo `json:"available_models"`
}

// ModelInfo documents one analyzer for the capabilities endpoint
type ModelInfo struct {
	Description string   `json:"description"`
	InputTypes  []string `json:"input_types"`
	Output      string   `json:"output"`
}
