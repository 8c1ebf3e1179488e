package logging

import "regexp"

const (
	// MaxNarrativeLogLength is the maximum narrative excerpt length to log.
	MaxNarrativeLogLength = 80
	// RedactedText is the replacement text for contact details.
	RedactedText = "[REDACTED]"
)

var (
	// Pattern to match email addresses users paste into narratives
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

	// Pattern to match phone-number-looking digit runs (7+ digits with
	// optional separators)
	phonePattern = regexp.MustCompile(`\+?\d[\d\s\-()]{6,}\d`)
)

// SanitizeNarrative truncates and redacts a narrative for logging. Narrative
// text is user content and routinely contains addresses, emails and phone
// numbers; logs only ever see a short, scrubbed excerpt.
func SanitizeNarrative(narrative string) string {
	if narrative == "" {
		return ""
	}

	sanitized := emailPattern.ReplaceAllString(narrative, RedactedText)
	sanitized = phonePattern.ReplaceAllString(sanitized, RedactedText)

	if len(sanitized) > MaxNarrativeLogLength {
		sanitized = sanitized[:MaxNarrativeLogLength] + "..."
	}
	return sanitized
}
