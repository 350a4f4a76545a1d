package pdfstruct

import (
	"math"
	"strings"
)

// WordsPerMinute is the fixed reading speed used for estimates.
const WordsPerMinute = 225

// EstimateReadingTime returns the estimated reading time in whole minutes
// for content, counting whitespace-delimited words. The floor is one minute
// even for trivial content.
func EstimateReadingTime(content string) int {
	words := len(strings.Fields(content))
	minutes := int(math.Round(float64(words) / WordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}
