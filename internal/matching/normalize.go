package matching

import "strings"

// Normalize trims whitespace and lowercases. Every manufacturer, model and
// identifier comparison in the engine goes through this one function so
// storage-time and query-time normalization stay consistent. Idempotent.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizePtr normalizes an optional string. A nil or blank input yields
// nil, so "no model" and "whitespace model" collapse to the same value.
func NormalizePtr(s *string) *string {
	if s == nil {
		return nil
	}
	n := Normalize(*s)
	if n == "" {
		return nil
	}
	return &n
}
