// Package textmatch provides the text primitives the narrative inference
// engine is built on: canonical normalization and Levenshtein distance.
package textmatch

import "strings"

// Normalize canonicalizes narrative text for matching: lowercase, every rune
// outside [a-z0-9] replaced by a space, whitespace runs collapsed to one
// space, then trimmed. Normalize is idempotent.
func Normalize(text string) string {
	lower := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lower))
	lastSpace := true // leading spaces are dropped
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			b.WriteByte(' ')
			lastSpace = true
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// Tokens splits already-normalized text into its space-separated tokens.
// Returns nil for empty input.
func Tokens(normalized string) []string {
	if normalized == "" {
		return nil
	}
	return strings.Split(normalized, " ")
}
