package pdfstruct

import "testing"

func TestNormalizeLineEndings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "LF unchanged",
			input:    "line1\nline2",
			expected: "line1\nline2",
		},
		{
			name:     "CRLF to LF",
			input:    "line1\r\nline2",
			expected: "line1\nline2",
		},
		{
			name:     "CR to LF",
			input:    "line1\rline2",
			expected: "line1\nline2",
		},
		{
			name:     "mixed line endings",
			input:    "line1\r\nline2\rline3\nline4",
			expected: "line1\nline2\nline3\nline4",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeLineEndings(tt.input); got != tt.expected {
				t.Errorf("NormalizeLineEndings() = %q, want %q", got, tt.expected)
			}
		})
	}
}
