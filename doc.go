// Package pdfstruct turns the flat Markdown produced by a PDF conversion
// pipeline into a structured document: ordered sections with reading-time
// estimates, document metadata, and optional enrichment artifacts (code
// snippets, formulas, image descriptions).
//
// # Quick Start
//
// Create a service and process converted Markdown:
//
//	svc := pdfstruct.New()
//	content, err := svc.Process(ctx, pdfstruct.Input{
//	    Markdown: markdown,
//	    Document: doc, // optional converter document, may be nil
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The result contains the normalized Markdown, ordered sections, and
// assembled metadata. Enrichment extraction is gated per Input flag:
//
//	content, err := svc.Process(ctx, pdfstruct.Input{
//	    Markdown:          markdown,
//	    Document:          doc,
//	    VLMEnabled:        true,
//	    CodeEnrichment:    true,
//	    FormulaEnrichment: true,
//	    RenderHTML:        true,
//	})
//
// # Processing Pipeline
//
// Processing follows these stages:
//
//  1. Line-ending normalization (\r\n and \r become \n)
//  2. Section segmentation on heading boundaries, with per-section
//     reading-time estimates
//  3. Metadata assembly (title, page count, content-type flags)
//  4. Optional enrichment: fenced code blocks, LaTeX-style formulas,
//     image descriptions from the converter document
//  5. Optional HTML rendering via Goldmark (GFM, syntax highlighting)
//
// # Converter Input
//
// The package does not read PDFs itself. It consumes the output of an
// external converter: a Markdown string plus an optional Document whose
// fields (pages, pictures, tables, title) are all optional. A missing
// field means the capability is absent, never an error.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := pdfstruct.New(
//	    pdfstruct.WithVersionSource(pdfstruct.StaticVersion("2.1.0")),
//	)
package pdfstruct
