// Package docling invokes the external docling conversion pipeline through
// a Python bridge script and returns its raw output: the Markdown export,
// the optional document object, and the library version. All segmentation
// and enrichment logic lives in the root package; this package only crosses
// the process boundary.
package docling

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	pdfstruct "github.com/alnah/go-pdfstruct"
)

// Sentinel errors for converter failures.
var (
	ErrUnavailable = errors.New("docling not available")
	ErrConversion  = errors.New("docling conversion failed")
	ErrNoContent   = errors.New("no document content extracted")
)

// Options configures one conversion call.
type Options struct {
	OCR      bool   // run OCR inside the converter
	VLM      bool   // run the visual-language model for image descriptions
	VLMModel string // "smoldocling" or "default"; empty = converter default
}

// Result is the bridge payload for a successful conversion.
type Result struct {
	Markdown string              `json:"markdown"`
	Document *pdfstruct.Document `json:"document"`
	Version  string              `json:"version"`
}

// bridgePayload is the full wire format emitted by the bridge script.
type bridgePayload struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Result
}

// CommandRunner abstracts command execution to enable testing without real
// subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// Client converts PDFs by shelling out to the bridge script.
type Client struct {
	python string // interpreter binary, e.g. "python3"
	script string // bridge script path
	runner CommandRunner
}

// NewClient creates a Client with a real command runner.
func NewClient(python, script string) *Client {
	return &Client{python: python, script: script, runner: &ExecRunner{}}
}

// Convert runs the bridge over pdfPath and decodes its JSON output.
// The context cancels the subprocess.
func (c *Client) Convert(ctx context.Context, pdfPath string, opts Options) (*Result, error) {
	args := []string{c.script, pdfPath}
	if !opts.OCR {
		args = append(args, "--no-ocr")
	}
	if !opts.VLM {
		args = append(args, "--no-vlm")
	} else if opts.VLMModel != "" {
		args = append(args, "--vlm-model", opts.VLMModel)
	}

	stdout, stderr, err := c.runner.Run(ctx, c.python, args...)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s not found", ErrUnavailable, c.python)
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, conversionError(stdout, stderr, err)
	}

	var payload bridgePayload
	if err := json.Unmarshal([]byte(stdout), &payload); err != nil {
		return nil, fmt.Errorf("%w: invalid bridge output: %v", ErrConversion, err)
	}

	if !payload.Success {
		if isUnavailableMessage(payload.Error) {
			return nil, fmt.Errorf("%w: %s", ErrUnavailable, payload.Error)
		}
		return nil, fmt.Errorf("%w: %s", ErrConversion, payload.Error)
	}

	if strings.TrimSpace(payload.Markdown) == "" {
		return nil, ErrNoContent
	}

	if payload.Version == "" {
		payload.Version = "unknown"
	}

	return &payload.Result, nil
}

// conversionError prefers the bridge's own JSON error message when the
// process died after printing one; stderr and the exec error otherwise.
func conversionError(stdout, stderr string, err error) error {
	var payload bridgePayload
	if jsonErr := json.Unmarshal([]byte(stdout), &payload); jsonErr == nil && payload.Error != "" {
		if isUnavailableMessage(payload.Error) {
			return fmt.Errorf("%w: %s", ErrUnavailable, payload.Error)
		}
		return fmt.Errorf("%w: %s", ErrConversion, payload.Error)
	}
	if msg := strings.TrimSpace(stderr); msg != "" {
		return fmt.Errorf("%w: %s: %v", ErrConversion, msg, err)
	}
	return fmt.Errorf("%w: %v", ErrConversion, err)
}

// isUnavailableMessage detects the bridge's "docling not installed" error
// so it maps to the converter-unavailable taxonomy instead of a generic
// conversion failure.
func isUnavailableMessage(msg string) bool {
	return strings.Contains(strings.ToLower(msg), "not installed")
}
