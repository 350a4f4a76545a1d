package pdfstruct

import (
	"context"
	"fmt"
	"strings"
)

// Service orchestrates the segmentation and enrichment pipeline.
type Service struct {
	renderer htmlRenderer
	versions VersionSource
}

// New creates a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		versions: StaticVersion("unknown"),
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create renderer if not injected (e.g., by tests)
	if s.renderer == nil {
		s.renderer = newGoldmarkRenderer()
	}

	return s
}

// Process runs the full pipeline over one converted document and returns
// the structured content. The context is used for cancellation.
//
// Failures inside optional enrichment stages are isolated: a missing
// capability field or a failed HTML render never prevents emission of the
// sections and metadata already computed.
func (s *Service) Process(ctx context.Context, in Input) (*Content, error) {
	if strings.TrimSpace(in.Markdown) == "" {
		return nil, ErrEmptyMarkdown
	}
	// An enabled VLM always has a concrete model recorded in the
	// processing info.
	if in.VLMEnabled && in.VLMModel == "" {
		in.VLMModel = VLMModelSmolDocling
	}
	if err := validateVLMModel(in); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	markdown := NormalizeLineEndings(in.Markdown)

	content := &Content{
		Markdown: markdown,
		Sections: SplitSections(markdown),
		Metadata: assembleMetadata(markdown, in, s.versions.DoclingVersion()),
	}

	if in.CodeEnrichment {
		snippets := ExtractCodeSnippets(markdown)
		if snippets == nil {
			snippets = []CodeSnippet{}
		}
		content.Metadata.CodeSnippets = &snippets
	}

	if in.FormulaEnrichment {
		formulas := ExtractFormulas(markdown)
		if formulas == nil {
			formulas = []Formula{}
		}
		content.Metadata.Formulas = &formulas
	}

	// Image descriptions are attached only when VLM data can exist:
	// VLM requested and the converter exposed a picture collection.
	if in.VLMEnabled && in.Document != nil && in.Document.Pictures != nil {
		descriptions := DescribeImages(in.Document)
		if descriptions == nil {
			descriptions = []ImageDescription{}
		}
		content.Metadata.ImageDescriptions = &descriptions
	}

	if in.RenderHTML {
		rendered, err := s.renderer.Render(ctx, markdown)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			// Render failure is an enrichment failure: skip the HTML,
			// keep everything else.
		} else {
			content.HTML = rendered
		}
	}

	return content, nil
}

func validateVLMModel(in Input) error {
	if !in.VLMEnabled {
		return nil
	}
	switch in.VLMModel {
	case VLMModelSmolDocling, VLMModelDefault:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidVLMModel, in.VLMModel)
}
