package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidatePrefix checks an output file prefix such as "out/frame".
//
// Validation rules:
//   - Prefix cannot be empty or end in a path separator
//   - No control characters
//   - No '%', which would break the ffmpeg input pattern
func ValidatePrefix(prefix string) error {
	if prefix == "" {
		return New(ErrCodeInvalidPath, "output prefix cannot be empty")
	}
	for _, r := range prefix {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output prefix contains invalid characters")
		}
	}
	if strings.Contains(prefix, "%") {
		return New(ErrCodeInvalidPath, "output prefix cannot contain '%%'")
	}
	if strings.HasSuffix(prefix, "/") || strings.HasSuffix(prefix, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "output prefix must name a file, not a directory: %q", prefix)
	}
	return nil
}

// ValidatePositive checks that a numeric option is greater than zero.
func ValidatePositive(name string, v int) error {
	if v <= 0 {
		return New(ErrCodeInvalidInput, "%s must be positive, got %d", name, v)
	}
	return nil
}
