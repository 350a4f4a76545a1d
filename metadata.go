package pdfstruct

import "strings"

// titleScanLines bounds how far into the Markdown the title heuristic looks.
const titleScanLines = 10

// titleLineLimit rejects long lines as title candidates.
const titleLineLimit = 100

// assembleMetadata combines document-level signals into a Metadata record.
// Enrichment arrays are attached by the Service, not here.
func assembleMetadata(markdown string, in Input, version string) Metadata {
	doc := in.Document

	meta := Metadata{
		Title:       extractTitle(markdown, doc),
		PageCount:   resolvePageCount(doc, in.PageCountHint),
		HasImages:   hasPictures(doc) || in.ImageStreamHint,
		HasTables:   doc != nil && len(doc.Tables) > 0,
		HasCode:     strings.Contains(markdown, "`"),
		HasFormulas: hasFormulaMarkers(markdown),
		ProcessingInfo: ProcessingInfo{
			OCREnabled:               in.OCREnabled,
			VLMEnabled:               in.VLMEnabled,
			CodeEnrichmentEnabled:    in.CodeEnrichment,
			FormulaEnrichmentEnabled: in.FormulaEnrichment,
			DoclingVersion:           version,
		},
	}

	if in.VLMEnabled {
		meta.ProcessingInfo.VLMModel = in.VLMModel
	}

	return meta
}

// extractTitle resolves the document title: the converter title when set,
// otherwise the first heading within the first titleScanLines lines of the
// Markdown, otherwise the first short non-empty line, otherwise a fixed
// default. The result is capped at MaxTitleLength runes.
func extractTitle(markdown string, doc *Document) string {
	title := DefaultTitle

	if doc != nil && doc.Title != "" {
		title = doc.Title
	} else if found := scanTitleLines(markdown); found != "" {
		title = found
	}

	return truncateRunes(title, MaxTitleLength)
}

func scanTitleLines(markdown string) string {
	lines := strings.Split(markdown, "\n")
	if len(lines) > titleScanLines {
		lines = lines[:titleScanLines]
	}

	for _, line := range lines {
		if isHeadingLine(line) {
			return headingTitle(line)
		}
		if trimmed := strings.TrimSpace(line); trimmed != "" && len(trimmed) < titleLineLimit {
			return trimmed
		}
	}
	return ""
}

// resolvePageCount prefers the converter page collection, then the probe
// hint, then a fixed default of one page.
func resolvePageCount(doc *Document, hint int) int {
	if doc != nil && len(doc.Pages) > 0 {
		return len(doc.Pages)
	}
	if hint > 0 {
		return hint
	}
	return 1
}

func hasPictures(doc *Document) bool {
	return doc != nil && len(doc.Pictures) > 0
}

// hasFormulaMarkers reports whether the text looks like it carries math:
// any dollar sign, or the word "equation" in any case.
func hasFormulaMarkers(markdown string) bool {
	return strings.Contains(markdown, "$") ||
		strings.Contains(strings.ToLower(markdown), "equation")
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
