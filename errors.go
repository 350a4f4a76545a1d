package pdfstruct

import "errors"

// Sentinel errors for processing operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")
	ErrHTMLRender    = errors.New("HTML rendering failed")

	// Input validation errors.
	ErrInvalidVLMModel = errors.New("invalid VLM model")
)
