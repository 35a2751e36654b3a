package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	apperrors "github.com/anime-shed/text-insight-go/internal/errors"
)

// TextValidator handles content validation logic
type TextValidator struct {
	maxLength int
}

// NewTextValidator creates a text validator with the given size limit.
// maxLength <= 0 disables the length check.
func NewTextValidator(maxLength int) *TextValidator {
	return &TextValidator{maxLength: maxLength}
}

// ValidateContent validates if the provided content is acceptable for analysis
func (v *TextValidator) ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return apperrors.NewInvalidInputError("content cannot be empty", nil)
	}

	if !utf8.ValidString(content) {
		return apperrors.NewInvalidInputError("content is not valid UTF-8 text", nil)
	}

	if v.maxLength > 0 && len(content) > v.maxLength {
		return apperrors.NewValidationError(
			fmt.Sprintf("content length %d exceeds the limit of %d bytes", len(content), v.maxLength), nil)
	}

	return nil
}

// filenameSanitizer strips anything outside word characters, dots and hyphens
var filenameSanitizer = regexp.MustCompile(`[^\w.-]`)

// SanitizeFilename replaces unsafe filename characters with underscores and
// caps the length, so uploaded filenames are safe to echo back and log.
func SanitizeFilename(filename string) string {
	sanitized := filenameSanitizer.ReplaceAllString(filename, "_")
	if len(sanitized) > 100 {
		sanitized = sanitized[:100]
	}
	return sanitized
}
