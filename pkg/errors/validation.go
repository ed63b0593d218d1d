package errors

import (
	"strings"
	"unicode"
)

// ValidateAssetPath validates a user-supplied asset path from a token
// configuration. It rejects strings that cannot name a real file.
//
// The validation rules are intentionally conservative:
//   - No empty paths
//   - No control characters
//   - No null bytes
//   - Maximum length of 4096 characters
//
// Relative paths (including ".." segments) are allowed: asset paths are
// resolved against the working directory, and pointing outside of it is a
// legitimate way to share art between projects.
func ValidateAssetPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "asset path cannot be empty")
	}

	if len(path) > 4096 {
		return New(ErrCodeInvalidPath, "asset path too long (max 4096 characters)")
	}

	if strings.Contains(path, "\x00") {
		return New(ErrCodeInvalidPath, "asset path contains a null byte")
	}

	// Check for control characters
	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "asset path contains invalid control characters")
		}
	}

	return nil
}
