package pdfstruct

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// languageUnknown tags snippets whose fence carries no language.
const languageUnknown = "unknown"

// fencedCodeBlock matches a triple-backtick fence with an optional language
// tag, non-greedy across lines.
var fencedCodeBlock = regexp.MustCompile("(?s)```(\\w+)?\\n(.*?)\\n```")

// ExtractCodeSnippets scans content for fenced code blocks and returns one
// snippet per block, in source order. Line numbers are 1-based and count
// newlines up to the match boundaries.
func ExtractCodeSnippets(content string) []CodeSnippet {
	var snippets []CodeSnippet

	for _, m := range fencedCodeBlock.FindAllStringSubmatchIndex(content, -1) {
		language := languageUnknown
		if m[2] >= 0 && m[3] > m[2] {
			language = content[m[2]:m[3]]
		}
		code := strings.TrimSpace(content[m[4]:m[5]])

		snippets = append(snippets, CodeSnippet{
			Code:        code,
			Language:    language,
			Description: fmt.Sprintf("Code snippet in %s", languageDisplayName(language)),
			LineStart:   strings.Count(content[:m[0]], "\n") + 1,
			LineEnd:     strings.Count(content[:m[1]], "\n") + 1,
		})
	}

	return snippets
}

// languageDisplayName resolves a fence tag to the canonical lexer name
// ("py" becomes "Python"). Unresolvable tags pass through unchanged.
func languageDisplayName(tag string) string {
	if tag == languageUnknown {
		return tag
	}
	if lexer := lexers.Get(tag); lexer != nil {
		if name := lexer.Config().Name; name != "" {
			return name
		}
	}
	return tag
}
