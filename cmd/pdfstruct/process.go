package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	pdfstruct "github.com/alnah/go-pdfstruct"
	"github.com/alnah/go-pdfstruct/internal/config"
	"github.com/alnah/go-pdfstruct/internal/docling"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage         = errors.New("invalid usage")
	ErrNoInput       = errors.New("no input PDF specified")
	ErrInputNotFound = errors.New("PDF file not found")
	ErrWriteResult   = errors.New("failed to write result")
)

// runProcess executes the full pipeline for one PDF and returns the exit
// code. Exactly one JSON object is written to stdout: the structured
// content on success, an error envelope otherwise.
func runProcess(ctx context.Context, positional []string, flags *processFlags, env *Environment) int {
	result, pretty, err := process(ctx, positional, flags, env)
	if err != nil {
		result = &pdfstruct.Result{Success: false, Error: err.Error()}
	}

	if writeErr := writeResult(env.Stdout, result, pretty); writeErr != nil {
		fmt.Fprintln(env.Stderr, writeErr)
		if err == nil {
			return ExitGeneral
		}
	}

	return exitCodeFor(err)
}

// process runs the pipeline and returns the success result plus the
// resolved pretty-print setting. Any returned error is terminal for the
// invocation, per the propagation policy: nothing before a successful
// Markdown extraction yields a partial result.
func process(ctx context.Context, positional []string, flags *processFlags, env *Environment) (*pdfstruct.Result, bool, error) {
	pretty := !flags.compact

	cfg, err := loadConfig(flags, env)
	if err != nil {
		return nil, pretty, err
	}
	mergeFlags(flags, cfg)
	pretty = cfg.Output.Pretty && !flags.compact

	if len(positional) == 0 {
		fmt.Fprintln(env.Stderr, usage)
		return nil, pretty, ErrNoInput
	}
	pdfPath := positional[0]

	if _, err := os.Stat(pdfPath); err != nil {
		return nil, pretty, fmt.Errorf("%w: %s", ErrInputNotFound, pdfPath)
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Converter.TimeoutSeconds)*time.Second)
	defer cancel()

	logf(flags, env, "Converting %s via %s %s", pdfPath, cfg.Converter.Python, cfg.Converter.Script)

	converter := env.NewConverter(cfg.Converter.Python, cfg.Converter.Script)
	conv, err := converter.Convert(ctx, pdfPath, docling.Options{
		OCR:      cfg.OCR.Enabled,
		VLM:      cfg.VLM.Enabled,
		VLMModel: cfg.VLM.Model,
	})
	if err != nil {
		return nil, pretty, err
	}

	logf(flags, env, "Converted: %d bytes of markdown (docling %s)", len(conv.Markdown), conv.Version)

	in := pdfstruct.Input{
		Markdown:          conv.Markdown,
		Document:          conv.Document,
		OCREnabled:        cfg.OCR.Enabled,
		VLMEnabled:        cfg.VLM.Enabled,
		VLMModel:          cfg.VLM.Model,
		CodeEnrichment:    cfg.Enrichment.Code,
		FormulaEnrichment: cfg.Enrichment.Formulas,
		RenderHTML:        cfg.Output.HTML,
	}

	// Probe the PDF locally when the converter document carries no page
	// collection. Probe failures are capability absence, never fatal.
	if conv.Document == nil || len(conv.Document.Pages) == 0 {
		if info, probeErr := env.ProbePDF(pdfPath); probeErr == nil {
			in.PageCountHint = info.PageCount
			in.ImageStreamHint = info.HasImageStreams
		} else {
			logf(flags, env, "PDF probe skipped: %v", probeErr)
		}
	}

	svc := pdfstruct.New(pdfstruct.WithVersionSource(pdfstruct.StaticVersion(conv.Version)))
	content, err := svc.Process(ctx, in)
	if err != nil {
		return nil, pretty, err
	}

	return &pdfstruct.Result{Success: true, Content: content}, pretty, nil
}

// loadConfig resolves the configuration: file (when given) over defaults,
// then environment variable overrides for the bridge location.
func loadConfig(flags *processFlags, env *Environment) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	if python := env.Getenv(envPython); python != "" {
		cfg.Converter.Python = python
	}
	if script := env.Getenv(envBridge); script != "" {
		cfg.Converter.Script = script
	}

	return cfg, nil
}

// mergeFlags applies CLI flags over the config (CLI wins).
func mergeFlags(flags *processFlags, cfg *config.Config) {
	if flags.noOCR {
		cfg.OCR.Enabled = false
	}
	if flags.noVLM {
		cfg.VLM.Enabled = false
	}
	if flags.vlmModel != "" {
		cfg.VLM.Model = flags.vlmModel
	}
	if flags.codeEnrichment {
		cfg.Enrichment.Code = true
	}
	if flags.formulaEnrichment {
		cfg.Enrichment.Formulas = true
	}
	if flags.html {
		cfg.Output.HTML = true
	}
	if flags.python != "" {
		cfg.Converter.Python = flags.python
	}
	if flags.script != "" {
		cfg.Converter.Script = flags.script
	}
	if flags.timeout > 0 {
		cfg.Converter.TimeoutSeconds = flags.timeout
	}
}

// writeResult encodes the result as a single JSON object on w.
func writeResult(w io.Writer, result *pdfstruct.Result, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteResult, err)
	}
	return nil
}

// logf writes progress output to stderr when verbose and not quiet.
func logf(flags *processFlags, env *Environment, format string, args ...any) {
	if flags.quiet || !flags.verbose {
		return
	}
	fmt.Fprintf(env.Stderr, format+"\n", args...)
}
