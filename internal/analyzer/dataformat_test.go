package analyzer

import (
	"testing"

	apperrors "github.com/anime-shed/text-insight-go/internal/errors"
	"github.com/anime-shed/text-insight-go/pkg/models"
)

func TestDataFormatAnalyzer_AutoDetectsJSONObject(t *testing.T) {
	a := NewDataFormatAnalyzer()

	result, err := a.Profile(`{"name":"John","age":30}`, models.FormatAuto, DefaultOptions())
	if err != nil {
		t.Fatalf("Failed to profile: %v", err)
	}

	if result.DetectedFormat != models.FormatJSON {
		t.Fatalf("Expected json format, got %q", result.DetectedFormat)
	}
	if result.JSON.TopLevelType != "object" {
		t.Errorf("Expected object top level type, got %q", result.JSON.TopLevelType)
	}
	if result.JSON.KeyCount != 2 {
		t.Errorf("Expected 2 keys, got %d", result.JSON.KeyCount)
	}
}

func TestDataFormatAnalyzer_JSONArrayAndScalar(t *testing.T) {
	a := NewDataFormatAnalyzer()

	result, err := a.Profile(`[1, 2, 3]`, models.FormatJSON, DefaultOptions())
	if err != nil {
		t.Fatalf("Failed to profile array: %v", err)
	}
	if result.JSON.TopLevelType != "array" || result.JSON.ElementCount != 3 {
		t.Errorf("Expected array with 3 elements, got %+v", result.JSON)
	}

	result, err = a.Profile(`42`, models.FormatJSON, DefaultOptions())
	if err != nil {
		t.Fatalf("Failed to profile scalar: %v", err)
	}
	if result.JSON.TopLevelType != "scalar" {
		t.Errorf("Expected scalar top level type, got %q", result.JSON.TopLevelType)
	}
}

func TestDataFormatAnalyzer_CSVProfile(t *testing.T) {
	a := NewDataFormatAnalyzer()

	result, err := a.Profile("name,age,city\nJohn,25,NYC\nJane,30,LA", models.FormatCSV, DefaultOptions())
	if err != nil {
		t.Fatalf("Failed to profile: %v", err)
	}

	if result.DetectedFormat != models.FormatCSV {
		t.Fatalf("Expected csv format, got %q", result.DetectedFormat)
	}

	csv := result.CSV
	wantColumns := []string{"name", "age", "city"}
	if len(csv.Columns) != len(wantColumns) {
		t.Fatalf("Expected %d columns, got %d", len(wantColumns), len(csv.Columns))
	}
	for i, column := range wantColumns {
		if csv.Columns[i] != column {
			t.Errorf("Expected column %d to be %q, got %q", i, column, csv.Columns[i])
		}
	}

	if csv.RowCount != 2 {
		t.Errorf("Expected 2 data rows, got %d", csv.RowCount)
	}
	if csv.ColumnTypes["name"] != "string" {
		t.Errorf("Expected name column to be string, got %q", csv.ColumnTypes["name"])
	}
	if csv.ColumnTypes["age"] != "integer" {
		t.Errorf("Expected age column to be integer, got %q", csv.ColumnTypes["age"])
	}
	if csv.ColumnTypes["city"] != "string" {
		t.Errorf("Expected city column to be string, got %q", csv.ColumnTypes["city"])
	}
}

func TestDataFormatAnalyzer_ColumnTypePrecedence(t *testing.T) {
	a := NewDataFormatAnalyzer()

	result, err := a.Profile("count,price,label\n1,1.5,a\n2,2,b", models.FormatCSV, DefaultOptions())
	if err != nil {
		t.Fatalf("Failed to profile: %v", err)
	}

	types := result.CSV.ColumnTypes
	if types["count"] != "integer" {
		t.Errorf("Expected count to be integer, got %q", types["count"])
	}
	// 1.5 fails integer parsing, so the column degrades to float
	if types["price"] != "float" {
		t.Errorf("Expected price to be float, got %q", types["price"])
	}
	if types["label"] != "string" {
		t.Errorf("Expected label to be string, got %q", types["label"])
	}
}

func TestDataFormatAnalyzer_AutoFallsBackToText(t *testing.T) {
	a := NewDataFormatAnalyzer()

	result, err := a.Profile("This is plain text content.\nIt spans two lines.", models.FormatAuto, DefaultOptions())
	if err != nil {
		t.Fatalf("Auto detection must not fail on plain text: %v", err)
	}

	if result.DetectedFormat != models.FormatText {
		t.Fatalf("Expected text format, got %q", result.DetectedFormat)
	}
	if result.Text.LineCount != 2 {
		t.Errorf("Expected 2 lines, got %d", result.Text.LineCount)
	}
	if result.Text.WordCount != 10 {
		t.Errorf("Expected 10 words, got %d", result.Text.WordCount)
	}
}

func TestDataFormatAnalyzer_FixedDetectionPriority(t *testing.T) {
	a := NewDataFormatAnalyzer()

	// A bare number parses as scalar JSON and must never be reported as
	// anything else under auto.
	result, err := a.Profile("123", models.FormatAuto, DefaultOptions())
	if err != nil {
		t.Fatalf("Failed to profile: %v", err)
	}
	if result.DetectedFormat != models.FormatJSON {
		t.Errorf("Expected JSON to win detection priority, got %q", result.DetectedFormat)
	}
}

func TestDataFormatAnalyzer_ExplicitHintFailsLoudly(t *testing.T) {
	a := NewDataFormatAnalyzer()

	_, err := a.Profile("not json at all", models.FormatJSON, DefaultOptions())
	if err == nil {
		t.Fatal("Expected an error for malformed JSON under explicit hint")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeFormatParse) {
		t.Errorf("Expected format_parse error, got %v", err)
	}

	_, err = a.Profile("a,b\n1,2,3", models.FormatCSV, DefaultOptions())
	if err == nil {
		t.Fatal("Expected an error for inconsistent CSV under explicit hint")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeFormatParse) {
		t.Errorf("Expected format_parse error, got %v", err)
	}
}

func TestDataFormatAnalyzer_AutoDetectionIdempotent(t *testing.T) {
	a := NewDataFormatAnalyzer()

	inputs := []string{
		`{"key":"value"}`,
		"col_a,col_b\n1,2\n3,4",
		"plain prose with, a comma in the middle",
	}

	for _, input := range inputs {
		first, err := a.Profile(input, models.FormatAuto, DefaultOptions())
		if err != nil {
			t.Fatalf("First detection failed for %q: %v", input, err)
		}
		second, err := a.Profile(input, models.FormatAuto, DefaultOptions())
		if err != nil {
			t.Fatalf("Second detection failed for %q: %v", input, err)
		}
		if first.DetectedFormat != second.DetectedFormat {
			t.Errorf("Detection not idempotent for %q: %q vs %q",
				input, first.DetectedFormat, second.DetectedFormat)
		}
	}
}

func TestDataFormatAnalyzer_SampleRows(t *testing.T) {
	a := NewDataFormatAnalyzer()

	content := "id,value\n1,a\n2,b\n3,c\n4,d\n5,e"

	result, err := a.Profile(content, models.FormatCSV, DefaultOptions())
	if err != nil {
		t.Fatalf("Failed to profile: %v", err)
	}
	if len(result.CSV.SampleRows) != 3 {
		t.Errorf("Expected 3 sample rows by default, got %d", len(result.CSV.SampleRows))
	}
	if result.CSV.SampleRows[0]["id"] != "1" {
		t.Errorf("Expected first sample row id=1, got %q", result.CSV.SampleRows[0]["id"])
	}

	result, err = a.Profile(content, models.FormatCSV, DefaultOptions().WithoutSamples())
	if err != nil {
		t.Fatalf("Failed to profile: %v", err)
	}
	if len(result.CSV.SampleRows) != 0 {
		t.Errorf("Expected no sample rows when disabled, got %d", len(result.CSV.SampleRows))
	}
}

func TestDataFormatAnalyzer_SingleColumnNotCSVUnderAuto(t *testing.T) {
	a := NewDataFormatAnalyzer()

	result, err := a.Profile("first line\nsecond line\nthird line", models.FormatAuto, DefaultOptions())
	if err != nil {
		t.Fatalf("Failed to profile: %v", err)
	}
	if result.DetectedFormat != models.FormatText {
		t.Errorf("Expected one-column content to fall back to text, got %q", result.DetectedFormat)
	}
}
