package analyzer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	apperrors "github.com/anime-shed/text-insight-go/internal/errors"
	"github.com/anime-shed/text-insight-go/pkg/models"
)

// jsonSampleLimit caps the truncated sample attached to JSON profiles
const jsonSampleLimit = 500

// DataFormatAnalyzer detects the format of raw content and produces a
// structural profile.
//
// Under the auto hint, detection follows a fixed priority: strict JSON
// first, then CSV, then plain text. The order never changes, so a value
// that parses as both (a single CSV row that is also a scalar JSON value)
// is always reported as JSON. Explicit non-auto hints that fail to parse
// are errors, never silent fallbacks; under auto, falling back to text is
// the documented policy, never an error.
type DataFormatAnalyzer struct{}

// NewDataFormatAnalyzer creates a new data format analyzer
func NewDataFormatAnalyzer() *DataFormatAnalyzer {
	return &DataFormatAnalyzer{}
}

// Analyze implements the Analyzer interface for data format profiling
func (a *DataFormatAnalyzer) Analyze(content string, options AnalysisOptions) (*models.AnalysisResult, error) {
	hint := options.FormatHint
	if hint == "" {
		hint = models.FormatAuto
	}

	result, err := a.Profile(content, hint, options)
	if err != nil {
		return nil, err
	}
	return &models.AnalysisResult{DataFormat: result}, nil
}

// Profile inspects raw content under the given format hint
func (a *DataFormatAnalyzer) Profile(content string, hint models.DataFormat, options AnalysisOptions) (*models.DataFormatResult, error) {
	if !utf8.ValidString(content) {
		return nil, apperrors.NewInvalidInputError("content is not valid UTF-8 text", nil)
	}

	switch hint {
	case models.FormatJSON:
		return a.profileJSON(content, options)
	case models.FormatCSV:
		return a.profileCSV(content, false, options)
	case models.FormatText:
		return a.profileText(content), nil
	case models.FormatAuto, "":
		// Fixed detection priority: JSON, then CSV, then plain text.
		if result, err := a.profileJSON(content, options); err == nil {
			return result, nil
		}
		if result, err := a.profileCSV(content, true, options); err == nil {
			return result, nil
		}
		return a.profileText(content), nil
	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("unsupported format hint: %q", hint), nil)
	}
}

// profileJSON parses the content as a single strict JSON value and reports
// its top-level structural kind.
func (a *DataFormatAnalyzer) profileJSON(content string, options AnalysisOptions) (*models.DataFormatResult, error) {
	var value interface{}
	if err := json.Unmarshal([]byte(content), &value); err != nil {
		return nil, apperrors.NewFormatParseError("content is not valid JSON", err)
	}

	profile := &models.JSONProfile{}
	switch v := value.(type) {
	case map[string]interface{}:
		profile.TopLevelType = "object"
		profile.KeyCount = len(v)
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		profile.Keys = keys
	case []interface{}:
		profile.TopLevelType = "array"
		profile.ElementCount = len(v)
	default:
		profile.TopLevelType = "scalar"
	}

	if options.IncludeSamples {
		profile.Sample = truncate(strings.TrimSpace(content), jsonSampleLimit)
	}

	return &models.DataFormatResult{
		DetectedFormat: models.FormatJSON,
		JSON:           profile,
	}, nil
}

// profileCSV parses the content as comma-separated values with a header
// row. encoding/csv enforces a consistent field count across records. In
// auto-detection mode a stricter shape is required (at least two columns
// and one data row) so ordinary prose is not misread as a one-column CSV.
func (a *DataFormatAnalyzer) profileCSV(content string, auto bool, options AnalysisOptions) (*models.DataFormatResult, error) {
	reader := csv.NewReader(strings.NewReader(content))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewFormatParseError("content is not valid CSV", err)
	}
	if len(records) == 0 {
		return nil, apperrors.NewFormatParseError("CSV content is empty", nil)
	}

	header := records[0]
	rows := records[1:]

	if auto && (len(header) < 2 || len(rows) < 1) {
		return nil, apperrors.NewFormatParseError("content does not look like tabular CSV", nil)
	}

	profile := &models.CSVProfile{
		Columns:     header,
		RowCount:    len(rows),
		ColumnTypes: make(map[string]string, len(header)),
	}

	for i, column := range header {
		values := make([]string, 0, len(rows))
		for _, row := range rows {
			values = append(values, row[i])
		}
		profile.ColumnTypes[column] = inferColumnType(values)
	}

	if options.IncludeSamples {
		limit := options.MaxSampleRows
		if limit <= 0 || limit > len(rows) {
			limit = len(rows)
		}
		for _, row := range rows[:limit] {
			sample := make(map[string]string, len(header))
			for i, column := range header {
				sample[column] = row[i]
			}
			profile.SampleRows = append(profile.SampleRows, sample)
		}
	}

	return &models.DataFormatResult{
		DetectedFormat: models.FormatCSV,
		CSV:            profile,
	}, nil
}

// profileText reports line/word/character statistics for plain text
func (a *DataFormatAnalyzer) profileText(content string) *models.DataFormatResult {
	lineCount := 0
	if content != "" {
		lineCount = strings.Count(content, "\n") + 1
	}

	return &models.DataFormatResult{
		DetectedFormat: models.FormatText,
		Text: &models.TextProfile{
			LineCount:      lineCount,
			WordCount:      len(strings.Fields(content)),
			CharacterCount: utf8.RuneCountInString(content),
		},
	}
}

// inferColumnType classifies a column's values by fixed precedence:
// integer beats float beats string. A single value that fails numeric
// parsing makes the whole column a string column.
func inferColumnType(values []string) string {
	if len(values) == 0 {
		return "string"
	}

	isInteger, isFloat := true, true
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			return "string"
		}
		if _, err := strconv.ParseInt(value, 10, 64); err != nil {
			isInteger = false
		}
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			isFloat = false
		}
		if !isInteger && !isFloat {
			return "string"
		}
	}

	if isInteger {
		return "integer"
	}
	if isFloat {
		return "float"
	}
	return "string"
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "..."
}
