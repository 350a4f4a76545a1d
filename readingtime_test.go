package pdfstruct

import (
	"strings"
	"testing"
)

func TestEstimateReadingTime(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{
			name:    "empty content floors at one minute",
			content: "",
			want:    1,
		},
		{
			name:    "single word",
			content: "word",
			want:    1,
		},
		{
			name:    "whitespace only",
			content: "  \n\t  ",
			want:    1,
		},
		{
			name:    "one minute of words",
			content: words(225),
			want:    1,
		},
		{
			name:    "rounds half up",
			content: words(338), // 338/225 = 1.502
			want:    2,
		},
		{
			name:    "rounds down below half",
			content: words(337), // 337/225 = 1.498
			want:    1,
		},
		{
			name:    "four minutes",
			content: words(900),
			want:    4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateReadingTime(tt.content); got != tt.want {
				t.Errorf("EstimateReadingTime() = %d, want %d", got, tt.want)
			}
		})
	}
}

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}
