package utils

// TruncationMarker is appended to a preview that was cut short.
const TruncationMarker = "..."

// TruncatePreview returns the first limit characters of s followed by the
// truncation marker, or s unchanged when it already fits. Truncation counts
// characters, not bytes, so multi-byte answers are never split mid-rune.
func TruncatePreview(s string, limit int) string {
	if limit <= 0 {
		return TruncationMarker
	}

	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit]) + TruncationMarker
}
