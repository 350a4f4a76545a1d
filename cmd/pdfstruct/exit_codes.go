package main

import (
	"errors"
	"os"

	pdfstruct "github.com/alnah/go-pdfstruct"
	"github.com/alnah/go-pdfstruct/internal/config"
	"github.com/alnah/go-pdfstruct/internal/docling"
)

// Exit codes for the pdfstruct CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess   = 0 // Successful processing
	ExitGeneral   = 1 // General/unexpected error
	ExitUsage     = 2 // Invalid flags or config
	ExitIO        = 3 // Input file not found, permission denied
	ExitConverter = 4 // Docling bridge missing, crashed, or returned nothing
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Converter errors (exit 4)
	if errors.Is(err, docling.ErrUnavailable) ||
		errors.Is(err, docling.ErrConversion) ||
		errors.Is(err, docling.ErrNoContent) {
		return ExitConverter
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrInputNotFound) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, pdfstruct.ErrEmptyMarkdown) ||
		errors.Is(err, pdfstruct.ErrInvalidVLMModel) {
		return ExitUsage
	}

	return ExitGeneral
}
