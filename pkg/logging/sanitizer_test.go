package logging

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeNarrative(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "plain text untouched",
			input: "renovating my bathroom",
			want:  "renovating my bathroom",
		},
		{
			name:  "email redacted",
			input: "contact me at jane.doe@example.com please",
			want:  "contact me at [REDACTED] please",
		},
		{
			name:  "phone redacted",
			input: "call +44 7911 123456 for access",
			want:  "call [REDACTED] for access",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeNarrative(tt.input))
		})
	}
}

func TestSanitizeNarrativeTruncates(t *testing.T) {
	long := strings.Repeat("renovation ", 30)
	got := SanitizeNarrative(long)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, len(got), MaxNarrativeLogLength+3)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug", true)
	assert.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = NewLogger("loud", false)
	assert.Error(t, err)
}
