package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// MaxInputLength bounds the free-text sequence input accepted from users.
const MaxInputLength = 4096

// ValidateSequenceText performs cheap checks on free-text sequence input before
// it is tokenised. It only accepts digits, signs and whitespace, matching what
// the interactive prompt lets the user type.
//
// Validation rules:
//   - Input cannot be blank
//   - Maximum length of MaxInputLength bytes
//   - Only digits, '+', '-' and whitespace
func ValidateSequenceText(text string) error {
	if strings.TrimSpace(text) == "" {
		return New(ErrCodeEmptySequence, "no numbers entered")
	}

	if len(text) > MaxInputLength {
		return New(ErrCodeInvalidInput, "input too long (max %d characters)", MaxInputLength)
	}

	for _, r := range text {
		if unicode.IsDigit(r) || unicode.IsSpace(r) || r == '-' || r == '+' {
			continue
		}
		return New(ErrCodeInvalidInput, "input contains invalid character %q", r)
	}

	return nil
}

// ValidateSequenceLength rejects sequences that are empty or longer than
// limit. A limit of zero or less disables the upper bound.
func ValidateSequenceLength(n, limit int) error {
	if n == 0 {
		return New(ErrCodeEmptySequence, "sequence is empty")
	}
	if limit > 0 && n > limit {
		return New(ErrCodeInvalidInput, "too many values: %d (max %d)", n, limit)
	}
	return nil
}

// ValidateOutputPath validates a file path the export command writes to.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, string(filepath.Separator)) || strings.HasSuffix(path, "/") {
		return New(ErrCodeInvalidPath, "output path must name a file, not a directory")
	}

	return nil
}
