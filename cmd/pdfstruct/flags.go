package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
)

// processFlags holds all flags for the default processing command.
type processFlags struct {
	config string

	helpRequested bool
	helpText      string

	noOCR             bool
	noVLM             bool
	vlmModel          string
	codeEnrichment    bool
	formulaEnrichment bool

	html    bool
	compact bool

	python  string
	script  string
	timeout int

	quiet       bool
	verbose     bool
	showVersion bool
}

// parseFlags parses command-line arguments. Returns the flags, the
// positional arguments (the PDF path), and any parse error.
func parseFlags(args []string) (*processFlags, []string, error) {
	flags := &processFlags{}

	fs := flag.NewFlagSet("pdfstruct", flag.ContinueOnError)
	fs.Usage = func() {} // main prints usage on error

	fs.StringVarP(&flags.config, "config", "c", "", "path to YAML config file")

	fs.BoolVar(&flags.noOCR, "no-ocr", false, "disable OCR processing")
	fs.BoolVar(&flags.noVLM, "no-vlm", false, "disable VLM (visual language model) processing")
	fs.StringVar(&flags.vlmModel, "vlm-model", "", "VLM model for image descriptions (smoldocling, default)")
	fs.BoolVar(&flags.codeEnrichment, "enable-code-enrichment", false, "extract code snippets into metadata")
	fs.BoolVar(&flags.formulaEnrichment, "enable-formula-enrichment", false, "extract mathematical formulas into metadata")

	fs.BoolVar(&flags.html, "html", false, "include an HTML rendering in the result")
	fs.BoolVar(&flags.compact, "compact", false, "emit compact JSON instead of indented")

	fs.StringVar(&flags.python, "python", "", "Python interpreter for the docling bridge")
	fs.StringVar(&flags.script, "bridge", "", "path to the docling bridge script")
	fs.IntVar(&flags.timeout, "timeout", 0, "conversion timeout in seconds")

	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress progress output")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose progress output")
	fs.BoolVar(&flags.showVersion, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			flags.helpRequested = true
			flags.helpText = usage + "\n\nFlags:\n" + fs.FlagUsages()
			return flags, nil, nil
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	return flags, fs.Args(), nil
}

// usage is printed on flag errors and missing input.
const usage = `usage: pdfstruct [flags] <file.pdf>
       pdfstruct doctor [--json]

Processes a PDF through the docling converter and prints one JSON object
with sections, metadata, and optional enrichment artifacts.

Run 'pdfstruct --help' for the full flag list.`
