// Package config loads YAML configuration for the pdfstruct CLI.
// CLI flags always win over config values; config values win over defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	pdfstruct "github.com/alnah/go-pdfstruct"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrInvalidConfig  = errors.New("invalid config value")
)

// MaxConfigSize limits config input to prevent memory exhaustion.
const MaxConfigSize = 1 << 20

// Config holds all configuration for document processing.
type Config struct {
	Converter  ConverterConfig  `yaml:"converter"`
	OCR        OCRConfig        `yaml:"ocr"`
	VLM        VLMConfig        `yaml:"vlm"`
	Enrichment EnrichmentConfig `yaml:"enrichment"`
	Output     OutputConfig     `yaml:"output"`
}

// ConverterConfig defines how the docling bridge is invoked.
type ConverterConfig struct {
	Python         string `yaml:"python"`         // interpreter binary (default: "python3")
	Script         string `yaml:"script"`         // bridge script path (default: "scripts/docling_bridge.py")
	TimeoutSeconds int    `yaml:"timeoutSeconds"` // subprocess timeout (default: 300)
}

// OCRConfig defines OCR options forwarded to the converter.
type OCRConfig struct {
	Enabled bool `yaml:"enabled"`
}

// VLMConfig defines visual-language-model options forwarded to the converter.
type VLMConfig struct {
	Enabled bool   `yaml:"enabled"`
	Model   string `yaml:"model"` // "smoldocling", "default"
}

// EnrichmentConfig toggles the extraction stages.
type EnrichmentConfig struct {
	Code     bool `yaml:"code"`
	Formulas bool `yaml:"formulas"`
}

// OutputConfig defines result output options.
type OutputConfig struct {
	Pretty bool `yaml:"pretty"` // indent the JSON result
	HTML   bool `yaml:"html"`   // include an HTML rendering in the result
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Converter: ConverterConfig{
			Python:         "python3",
			Script:         "scripts/docling_bridge.py",
			TimeoutSeconds: 300,
		},
		OCR: OCRConfig{Enabled: true},
		VLM: VLMConfig{
			Enabled: true,
			Model:   pdfstruct.VLMModelSmolDocling,
		},
		Output: OutputConfig{Pretty: true},
	}
}

// LoadConfig reads the YAML file at path over the defaults and validates
// the result. Absent keys keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if len(data) > MaxConfigSize {
		return nil, fmt.Errorf("%w: %s: %d bytes (max %d)", ErrConfigParse, path, len(data), MaxConfigSize)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges. Called by LoadConfig, but available for
// consumers who construct Config manually.
func (c *Config) Validate() error {
	if c.Converter.Python == "" {
		return fmt.Errorf("%w: converter.python cannot be empty", ErrInvalidConfig)
	}
	if c.Converter.Script == "" {
		return fmt.Errorf("%w: converter.script cannot be empty", ErrInvalidConfig)
	}
	if c.Converter.TimeoutSeconds <= 0 {
		return fmt.Errorf("%w: converter.timeoutSeconds must be positive", ErrInvalidConfig)
	}
	switch c.VLM.Model {
	case pdfstruct.VLMModelSmolDocling, pdfstruct.VLMModelDefault:
	default:
		return fmt.Errorf("%w: vlm.model %q (must be %q or %q)",
			ErrInvalidConfig, c.VLM.Model, pdfstruct.VLMModelSmolDocling, pdfstruct.VLMModelDefault)
	}
	return nil
}
