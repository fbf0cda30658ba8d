package errors

import (
	"strings"
	"unicode"
)

// ValidateManifestID validates a stored-manifest identifier for safety.
// IDs are used in cache keys, URLs, and storage lookups, so the rules are
// intentionally conservative:
//   - No empty IDs
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateManifestID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidManifest, "manifest id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidManifest, "manifest id too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidManifest, "manifest id contains invalid control characters")
		}
	}

	for _, pattern := range []string{"..", "/", "\\", "\x00"} {
		if strings.Contains(id, pattern) {
			return New(ErrCodeInvalidManifest, "manifest id contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}

// ValidateOutputFormat checks that a requested output format is supported.
func ValidateOutputFormat(format string) error {
	switch format {
	case "json", "svg":
		return nil
	default:
		return New(ErrCodeInvalidFormat, "invalid format: %q (must be 'json' or 'svg')", format)
	}
}
