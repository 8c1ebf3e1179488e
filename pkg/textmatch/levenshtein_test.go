package textmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "identical", a: "plumbing", b: "plumbing", want: 0},
		{name: "empty vs word", a: "", b: "abc", want: 3},
		{name: "word vs empty", a: "abc", b: "", want: 3},
		{name: "both empty", a: "", b: "", want: 0},
		{name: "single deletion", a: "plumbing", b: "plumbng", want: 1},
		{name: "single insertion", a: "plumbing", b: "plumbingg", want: 1},
		{name: "substitution", a: "boiler", b: "boilar", want: 1},
		{name: "classic kitten sitting", a: "kitten", b: "sitting", want: 3},
		{name: "unrelated words", a: "hvac", b: "tiles", want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
		})
	}
}

// TestDistanceMetricProperties is the regression test for the metric
// properties the fuzzy matching pass relies on.
func TestDistanceMetricProperties(t *testing.T) {
	words := []string{"", "a", "ac", "hvac", "boiler", "plumbing", "plumbng", "renovation", "refurbishment"}

	for _, a := range words {
		// Identity.
		assert.Equal(t, 0, Distance(a, a))

		for _, b := range words {
			dab := Distance(a, b)

			// Symmetry.
			assert.Equal(t, dab, Distance(b, a))

			// Non-negativity, zero iff equal.
			if a == b {
				assert.Equal(t, 0, dab)
			} else {
				assert.Greater(t, dab, 0)
			}

			// Triangle inequality.
			for _, c := range words {
				assert.LessOrEqual(t, Distance(a, c), dab+Distance(b, c),
					"triangle inequality violated for %q %q %q", a, b, c)
			}
		}
	}
}
