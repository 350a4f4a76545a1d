package pdfstruct

import "strings"

// Implicit section titles.
const (
	titleIntroduction = "Introduction"
	titleContent      = "Content"
)

// isHeadingLine reports whether line starts a new section. Any ATX heading
// level counts; depth is not modeled.
func isHeadingLine(line string) bool {
	return strings.HasPrefix(line, "#")
}

// headingTitle strips leading/trailing # markers and surrounding whitespace.
func headingTitle(line string) string {
	return strings.TrimSpace(strings.Trim(line, "#"))
}

// SplitSections splits Markdown into ordered sections on heading boundaries.
//
// Every heading line flushes the accumulated section (when it holds any
// non-blank content) and starts a new one titled with the stripped heading
// text. Content before the first heading becomes an implicit "Introduction"
// section. Input without any heading, or whose headings carry no body text
// at all, yields a single "Content" section holding the whole trimmed text.
// Blank lines are dropped from section content; word counts are unaffected.
//
// OrderIndex values are assigned at flush time, so they are contiguous from
// zero over the sections actually emitted even when a heading is directly
// followed by another heading.
func SplitSections(markdown string) []Section {
	if strings.TrimSpace(markdown) == "" {
		return nil
	}

	lines := strings.Split(markdown, "\n")

	if !containsHeading(lines) {
		content := strings.TrimSpace(markdown)
		return []Section{{
			Title:            titleContent,
			Content:          content,
			OrderIndex:       0,
			EstimatedMinutes: EstimateReadingTime(content),
		}}
	}

	var sections []Section
	var title string
	var buf []string
	inSection := false

	flush := func() {
		if !inSection || len(buf) == 0 {
			return
		}
		content := strings.TrimSpace(strings.Join(buf, "\n"))
		sections = append(sections, Section{
			Title:            title,
			Content:          content,
			OrderIndex:       len(sections),
			EstimatedMinutes: EstimateReadingTime(content),
		})
	}

	for _, line := range lines {
		if isHeadingLine(line) {
			flush()
			title = headingTitle(line)
			buf = buf[:0]
			inSection = true
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !inSection {
			// Non-blank content before the first heading.
			title = titleIntroduction
			inSection = true
		}
		buf = append(buf, line)
	}
	flush()

	// Headings with no body text under any of them produce nothing above.
	// Non-empty input always yields at least one section, so fall back to
	// the same catch-all shape as heading-free input.
	if len(sections) == 0 {
		content := strings.TrimSpace(markdown)
		sections = append(sections, Section{
			Title:            titleContent,
			Content:          content,
			OrderIndex:       0,
			EstimatedMinutes: EstimateReadingTime(content),
		})
	}

	return sections
}

func containsHeading(lines []string) bool {
	for _, line := range lines {
		if isHeadingLine(line) {
			return true
		}
	}
	return false
}
