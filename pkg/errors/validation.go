package errors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxContentBytes is the byte-mode capacity of a version 40 code at the
// lowest error correction level. Longer payloads can never be encoded.
const MaxContentBytes = 2953

// ValidateContent validates a payload before it is handed to a QR encoder.
//
// The validation rules are intentionally conservative:
//   - No empty content
//   - Valid UTF-8
//   - No null bytes
//   - Maximum length of MaxContentBytes
func ValidateContent(content string) error {
	if content == "" {
		return New(ErrCodeInvalidInput, "content cannot be empty")
	}

	if len(content) > MaxContentBytes {
		return New(ErrCodeInvalidInput, "content too long (%d bytes, max %d)", len(content), MaxContentBytes)
	}

	if !utf8.ValidString(content) {
		return New(ErrCodeInvalidInput, "content is not valid UTF-8")
	}

	if strings.ContainsRune(content, '\x00') {
		return New(ErrCodeInvalidInput, "content contains null bytes")
	}

	return nil
}

// ValidateOutputPath validates a file path an artifact will be written to.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	for _, part := range strings.FieldsFunc(path, func(r rune) bool { return r == '/' || r == '\\' }) {
		if part == ".." {
			return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
		}
	}

	return nil
}
