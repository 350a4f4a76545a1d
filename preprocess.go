package pdfstruct

import "regexp"

// crlfOrCR matches Windows and legacy Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// NormalizeLineEndings converts \r\n and \r to \n. All downstream line
// counting (segmentation, snippet and formula positions) assumes \n-only
// input, so this runs once before everything else.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
