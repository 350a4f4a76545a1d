package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/alnah/go-pdfstruct/internal/config"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status    string        `json:"status"` // "ready", "warnings", "errors"
	Converter converterInfo `json:"converter"`
	System    systemInfo    `json:"system"`
	Warnings  []string      `json:"warnings,omitempty"`
	Errors    []string      `json:"errors,omitempty"`
}

// converterInfo holds docling bridge detection results.
type converterInfo struct {
	PythonFound    bool   `json:"python_found"`
	PythonPath     string `json:"python_path,omitempty"`
	PythonVersion  string `json:"python_version,omitempty"`
	ScriptFound    bool   `json:"script_found"`
	ScriptPath     string `json:"script_path"`
	DoclingFound   bool   `json:"docling_found"`
	DoclingVersion string `json:"docling_version,omitempty"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	cfg := config.DefaultConfig()
	if python := env.Getenv(envPython); python != "" {
		cfg.Converter.Python = python
	}
	if script := env.Getenv(envBridge); script != "" {
		cfg.Converter.Script = script
	}

	result := runDoctor(cfg)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(cfg *config.Config) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Converter: converterInfo{
			ScriptPath: cfg.Converter.Script,
		},
	}

	checkPython(result, cfg.Converter.Python)
	checkScript(result, cfg.Converter.Script)
	checkDocling(result, cfg.Converter.Python)
	checkSystem(result)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkPython locates the configured Python interpreter.
func checkPython(result *doctorResult, python string) {
	path, err := exec.LookPath(python)
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("%s not found. Install Python 3 or set %s", python, envPython))
		return
	}

	result.Converter.PythonFound = true
	result.Converter.PythonPath = path

	out, err := exec.Command(path, "--version").Output()
	if err == nil {
		result.Converter.PythonVersion = strings.TrimSpace(string(out))
	} else {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not get Python version: %v", err))
	}
}

// checkScript verifies the bridge script exists.
func checkScript(result *doctorResult, script string) {
	if _, err := os.Stat(script); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("bridge script not found at %s (set %s)", script, envBridge))
		return
	}
	result.Converter.ScriptFound = true
}

// checkDocling imports docling through the interpreter and reads its version.
func checkDocling(result *doctorResult, python string) {
	if !result.Converter.PythonFound {
		return
	}

	out, err := exec.Command(python, "-c",
		"import docling; print(getattr(docling, '__version__', 'unknown'))").Output()
	if err != nil {
		result.Errors = append(result.Errors,
			"docling not importable. Run: pip install docling")
		return
	}

	result.Converter.DoclingFound = true
	result.Converter.DoclingVersion = strings.TrimSpace(string(out))
}

// checkSystem verifies the temp directory is writable (the bridge writes
// intermediate artifacts there).
func checkSystem(result *doctorResult) {
	f, err := os.CreateTemp("", "pdfstruct-doctor-*")
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("temp directory not writable: %v", err))
		return
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	result.System.TempWritable = true
}

// printDoctorResult writes a human-readable report.
func printDoctorResult(w io.Writer, result *doctorResult) {
	fmt.Fprintf(w, "Status: %s\n\n", result.Status)

	mark := func(ok bool) string {
		if ok {
			return "ok"
		}
		return "MISSING"
	}

	fmt.Fprintf(w, "Python:  %s", mark(result.Converter.PythonFound))
	if result.Converter.PythonVersion != "" {
		fmt.Fprintf(w, " (%s, %s)", result.Converter.PythonVersion, result.Converter.PythonPath)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Bridge:  %s (%s)\n", mark(result.Converter.ScriptFound), result.Converter.ScriptPath)

	fmt.Fprintf(w, "Docling: %s", mark(result.Converter.DoclingFound))
	if result.Converter.DoclingVersion != "" {
		fmt.Fprintf(w, " (version %s)", result.Converter.DoclingVersion)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Temp:    writable=%v\n", result.System.TempWritable)

	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "\nwarning: %s\n", warning)
	}
	for _, e := range result.Errors {
		fmt.Fprintf(w, "\nerror: %s\n", e)
	}
}
