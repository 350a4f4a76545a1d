package main

import (
	"context"
	"io"
	"os"

	"github.com/alnah/go-pdfstruct/internal/docling"
	"github.com/alnah/go-pdfstruct/internal/pdfinfo"
)

// Converter is the interface to the external conversion collaborator.
type Converter interface {
	Convert(ctx context.Context, pdfPath string, opts docling.Options) (*docling.Result, error)
}

// Compile-time interface implementation check.
var _ Converter = (*docling.Client)(nil)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout       io.Writer
	Stderr       io.Writer
	Getenv       func(string) string
	NewConverter func(python, script string) Converter
	ProbePDF     func(path string) (*pdfinfo.Info, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
		NewConverter: func(python, script string) Converter {
			return docling.NewClient(python, script)
		},
		ProbePDF: pdfinfo.Probe,
	}
}

// Environment variable overrides for the bridge location.
const (
	envPython = "PDFSTRUCT_PYTHON"
	envBridge = "PDFSTRUCT_BRIDGE"
)
