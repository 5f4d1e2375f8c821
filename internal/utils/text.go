package utils

import "strings"

// CompactStrings drops empty and whitespace-only entries, preserving the
// relative order of the rest. The result is never nil.
func CompactStrings(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}

// TruncateText shortens s to at most limit runes, appending an ellipsis
// when anything was cut.
func TruncateText(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimSpace(string(runes[:limit])) + "…"
}
