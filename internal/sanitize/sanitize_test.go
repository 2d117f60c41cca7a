package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"plain string", "hello", "hello"},
		{"trims whitespace", "  hello world \n", "hello world"},
		{"nil", nil, ""},
		{"number", 42, ""},
		{"bool", true, ""},
		{"slice", []string{"a"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, String(tt.input))
		})
	}
}

func TestStringArray(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"valid array", `["a","b"]`, []string{"a", "b"}},
		{"empty strings dropped", `["a","b",""]`, []string{"a", "b"}},
		{"elements trimmed", `[" a ", "b "]`, []string{"a", "b"}},
		{"blank input", "   ", []string{}},
		{"empty input", "", []string{}},
		{"invalid json", "not json", []string{}},
		{"valid json not an array", `"x"`, []string{}},
		{"json object", `{"a":1}`, []string{}},
		{"non-string elements dropped", `[1, "a", true]`, []string{"a"}},
		{"empty array", `[]`, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StringArray(tt.raw))
		})
	}
}
