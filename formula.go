package pdfstruct

import (
	"fmt"
	"regexp"
	"strings"
)

// formulaTypeMathematical is the fixed type tag on extracted formulas.
const formulaTypeMathematical = "mathematical"

// formulaPreviewLimit caps the description preview length in runes.
const formulaPreviewLimit = 50

// LaTeX-style formula patterns, applied independently and in this order.
var formulaPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?s)\$\$(.*?)\$\$`),                            // display math
	regexp.MustCompile(`(?s)\$(.*?)\$`),                                // inline math
	regexp.MustCompile(`(?s)\\begin\{equation\}(.*?)\\end\{equation\}`), // equation environment
}

// ExtractFormulas scans content for LaTeX-style math and returns one record
// per non-empty match. The pattern families overlap by design and no
// deduplication is applied; whitespace-only captures are discarded.
func ExtractFormulas(content string) []Formula {
	var formulas []Formula

	for _, pattern := range formulaPatterns {
		for _, m := range pattern.FindAllStringSubmatchIndex(content, -1) {
			formula := strings.TrimSpace(content[m[2]:m[3]])
			if formula == "" {
				continue
			}
			formulas = append(formulas, Formula{
				Formula:     formula,
				Description: fmt.Sprintf("Mathematical expression: %s", formulaPreview(formula)),
				Type:        formulaTypeMathematical,
				LineNumber:  strings.Count(content[:m[0]], "\n") + 1,
			})
		}
	}

	return formulas
}

// formulaPreview truncates formula to formulaPreviewLimit runes with an
// ellipsis marker when longer.
func formulaPreview(formula string) string {
	runes := []rune(formula)
	if len(runes) <= formulaPreviewLimit {
		return formula
	}
	return string(runes[:formulaPreviewLimit]) + "..."
}
