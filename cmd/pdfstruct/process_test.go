package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	pdfstruct "github.com/alnah/go-pdfstruct"
	"github.com/alnah/go-pdfstruct/internal/config"
	"github.com/alnah/go-pdfstruct/internal/docling"
	"github.com/alnah/go-pdfstruct/internal/pdfinfo"
)

// fakeConverter plays back a canned conversion.
type fakeConverter struct {
	opts   docling.Options
	path   string
	result *docling.Result
	err    error
}

func (f *fakeConverter) Convert(ctx context.Context, pdfPath string, opts docling.Options) (*docling.Result, error) {
	f.path = pdfPath
	f.opts = opts
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

// testEnv wires a fake converter and probe into an Environment capturing
// stdout/stderr.
func testEnv(conv *fakeConverter, probe *pdfinfo.Info) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Stdout: &stdout,
		Stderr: &stderr,
		Getenv: func(string) string { return "" },
		NewConverter: func(python, script string) Converter {
			return conv
		},
		ProbePDF: func(path string) (*pdfinfo.Info, error) {
			if probe == nil {
				return nil, errors.New("probe failed")
			}
			return probe, nil
		},
	}
	return env, &stdout, &stderr
}

// tempPDF creates a placeholder input file; conversion is faked, only
// existence is checked.
func tempPDF(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func decodeResult(t *testing.T, stdout *bytes.Buffer) *pdfstruct.Result {
	t.Helper()
	var result pdfstruct.Result
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		t.Fatalf("stdout is not one JSON object: %v\n%s", err, stdout.String())
	}
	return &result
}

func TestRunProcess(t *testing.T) {
	conv := &fakeConverter{result: &docling.Result{
		Markdown: "# Report\nSome body text.",
		Document: &pdfstruct.Document{Pages: []pdfstruct.Page{{Number: 1}, {Number: 2}}},
		Version:  "2.1.0",
	}}
	env, stdout, _ := testEnv(conv, nil)

	flags := &processFlags{}
	code := runProcess(context.Background(), []string{tempPDF(t)}, flags, env)

	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d\nstdout: %s", code, ExitSuccess, stdout.String())
	}

	result := decodeResult(t, stdout)
	if !result.Success {
		t.Fatalf("Success = false: %s", result.Error)
	}
	if result.Content == nil {
		t.Fatal("Content = nil")
	}
	if result.Content.Metadata.PageCount != 2 {
		t.Errorf("PageCount = %d, want 2", result.Content.Metadata.PageCount)
	}
	if result.Content.Metadata.ProcessingInfo.DoclingVersion != "2.1.0" {
		t.Errorf("DoclingVersion = %q", result.Content.Metadata.ProcessingInfo.DoclingVersion)
	}
	// Defaults forward OCR and VLM to the converter.
	if !conv.opts.OCR || !conv.opts.VLM {
		t.Errorf("converter opts = %+v, want OCR and VLM on", conv.opts)
	}
}

func TestRunProcessMissingInput(t *testing.T) {
	conv := &fakeConverter{}
	env, stdout, _ := testEnv(conv, nil)

	flags := &processFlags{}
	code := runProcess(context.Background(), []string{filepath.Join(t.TempDir(), "nope.pdf")}, flags, env)

	if code != ExitIO {
		t.Fatalf("exit code = %d, want %d", code, ExitIO)
	}

	result := decodeResult(t, stdout)
	if result.Success {
		t.Error("Success = true, want false")
	}
	if result.Error == "" || result.Content != nil {
		t.Errorf("error envelope malformed: %+v", result)
	}
}

func TestRunProcessNoArguments(t *testing.T) {
	conv := &fakeConverter{}
	env, stdout, _ := testEnv(conv, nil)

	code := runProcess(context.Background(), nil, &processFlags{}, env)

	if code != ExitUsage {
		t.Fatalf("exit code = %d, want %d", code, ExitUsage)
	}
	if result := decodeResult(t, stdout); result.Success {
		t.Error("Success = true, want false")
	}
}

func TestRunProcessConverterUnavailable(t *testing.T) {
	conv := &fakeConverter{err: docling.ErrUnavailable}
	env, stdout, _ := testEnv(conv, nil)

	code := runProcess(context.Background(), []string{tempPDF(t)}, &processFlags{}, env)

	if code != ExitConverter {
		t.Fatalf("exit code = %d, want %d", code, ExitConverter)
	}
	if result := decodeResult(t, stdout); result.Success {
		t.Error("Success = true, want false")
	}
}

func TestRunProcessFlagsForwarded(t *testing.T) {
	conv := &fakeConverter{result: &docling.Result{Markdown: "# Doc\n```go\na()\n```\n$$x$$", Version: "v"}}
	env, stdout, _ := testEnv(conv, &pdfinfo.Info{PageCount: 5})

	flags := &processFlags{
		noOCR:             true,
		noVLM:             true,
		codeEnrichment:    true,
		formulaEnrichment: true,
	}
	code := runProcess(context.Background(), []string{tempPDF(t)}, flags, env)

	if code != ExitSuccess {
		t.Fatalf("exit code = %d\nstdout: %s", code, stdout.String())
	}
	if conv.opts.OCR || conv.opts.VLM {
		t.Errorf("converter opts = %+v, want OCR and VLM off", conv.opts)
	}

	result := decodeResult(t, stdout)
	meta := result.Content.Metadata
	if meta.CodeSnippets == nil || len(*meta.CodeSnippets) != 1 {
		t.Errorf("CodeSnippets = %+v", meta.CodeSnippets)
	}
	if meta.Formulas == nil || len(*meta.Formulas) != 1 {
		t.Errorf("Formulas = %+v", meta.Formulas)
	}
	if !meta.ProcessingInfo.CodeEnrichmentEnabled || !meta.ProcessingInfo.FormulaEnrichmentEnabled {
		t.Errorf("ProcessingInfo = %+v", meta.ProcessingInfo)
	}
	// No document pages: the probe hint fills page_count.
	if meta.PageCount != 5 {
		t.Errorf("PageCount = %d, want 5 from probe", meta.PageCount)
	}
}

func TestRunProcessProbeFailureIsNotFatal(t *testing.T) {
	conv := &fakeConverter{result: &docling.Result{Markdown: "plain text", Version: "v"}}
	env, stdout, _ := testEnv(conv, nil) // probe always fails

	code := runProcess(context.Background(), []string{tempPDF(t)}, &processFlags{}, env)

	if code != ExitSuccess {
		t.Fatalf("exit code = %d\nstdout: %s", code, stdout.String())
	}
	result := decodeResult(t, stdout)
	if result.Content.Metadata.PageCount != 1 {
		t.Errorf("PageCount = %d, want fallback 1", result.Content.Metadata.PageCount)
	}
}

func TestWriteResultShape(t *testing.T) {
	result := &pdfstruct.Result{Success: false, Error: "boom"}

	var compact, pretty bytes.Buffer
	if err := writeResult(&compact, result, false); err != nil {
		t.Fatal(err)
	}
	if err := writeResult(&pretty, result, true); err != nil {
		t.Fatal(err)
	}

	if got := compact.String(); got != `{"success":false,"error":"boom"}`+"\n" {
		t.Errorf("compact = %q", got)
	}
	if !bytes.Contains(pretty.Bytes(), []byte("\n  ")) {
		t.Errorf("pretty output not indented: %q", pretty.String())
	}
}

func TestMergeFlags(t *testing.T) {
	flags := &processFlags{
		noOCR:    true,
		vlmModel: "default",
		html:     true,
		python:   "/opt/python3",
		script:   "/opt/bridge.py",
		timeout:  30,
	}
	cfg := config.DefaultConfig()

	mergeFlags(flags, cfg)

	if cfg.OCR.Enabled {
		t.Error("OCR.Enabled = true, want false")
	}
	if !cfg.VLM.Enabled {
		t.Error("VLM.Enabled = false, want untouched true")
	}
	if cfg.VLM.Model != "default" {
		t.Errorf("VLM.Model = %q", cfg.VLM.Model)
	}
	if !cfg.Output.HTML {
		t.Error("Output.HTML = false, want true")
	}
	if cfg.Converter.Python != "/opt/python3" || cfg.Converter.Script != "/opt/bridge.py" {
		t.Errorf("Converter = %+v", cfg.Converter)
	}
	if cfg.Converter.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d, want 30", cfg.Converter.TimeoutSeconds)
	}
}
