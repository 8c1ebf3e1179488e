package jsonutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlexibleStringValue(t *testing.T) {
	tests := []struct {
		name  string
		input json.RawMessage
		want  string
	}{
		{name: "string", input: json.RawMessage(`"yes"`), want: "yes"},
		{name: "integer number", input: json.RawMessage(`42`), want: "42"},
		{name: "float number", input: json.RawMessage(`4.5`), want: "4.5"},
		{name: "boolean true", input: json.RawMessage(`true`), want: "true"},
		{name: "boolean false", input: json.RawMessage(`false`), want: "false"},
		{name: "null", input: json.RawMessage(`null`), want: ""},
		{name: "empty", input: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FlexibleStringValue(tt.input))
		})
	}
}

func TestFlexibleStringSlice(t *testing.T) {
	tests := []struct {
		name  string
		input json.RawMessage
		want  []string
	}{
		{name: "single string", input: json.RawMessage(`"yes"`), want: []string{"yes"}},
		{name: "array of strings", input: json.RawMessage(`["yes","maybe"]`), want: []string{"yes", "maybe"}},
		{name: "array with numbers", input: json.RawMessage(`["a", 2]`), want: []string{"a", "2"}},
		{name: "single number", input: json.RawMessage(`3`), want: []string{"3"}},
		{name: "null", input: json.RawMessage(`null`), want: nil},
		{name: "empty", input: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FlexibleStringSlice(tt.input))
		})
	}
}
