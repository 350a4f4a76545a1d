package pdfstruct

// VLM model selector constants.
const (
	VLMModelSmolDocling = "smoldocling"
	VLMModelDefault     = "default"
)

// Fallback strings used when the converter document carries no better data.
const (
	DefaultTitle            = "Untitled Document"
	DefaultImageDescription = "Image detected in document"
)

// MaxTitleLength caps the assembled metadata title.
const MaxTitleLength = 200

// Section is a titled, ordered span of document content delimited by
// heading markers.
type Section struct {
	Title            string `json:"title"`
	Content          string `json:"content"`
	OrderIndex       int    `json:"order_index"`
	EstimatedMinutes int    `json:"estimated_minutes"`
}

// CodeSnippet is a fenced code block extracted from the Markdown.
type CodeSnippet struct {
	Code        string `json:"code"`
	Language    string `json:"language"`
	Description string `json:"description"`
	LineStart   int    `json:"line_start"`
	LineEnd     int    `json:"line_end"`
}

// Formula is a LaTeX-style mathematical expression extracted from the
// Markdown. Type is always "mathematical".
type Formula struct {
	Formula     string `json:"formula"`
	Description string `json:"description"`
	Type        string `json:"type"`
	LineNumber  int    `json:"line_number"`
}

// ImageDescription describes one picture of the converter document.
// ExtractedText is present only when the converter reported text inside
// the image region.
type ImageDescription struct {
	ImageID       string  `json:"image_id"`
	Description   string  `json:"description"`
	Confidence    float64 `json:"confidence"`
	ExtractedText string  `json:"extracted_text,omitempty"`
}

// ProcessingInfo records which optional stages were requested and the
// converter version that produced the input.
type ProcessingInfo struct {
	OCREnabled               bool   `json:"ocr_enabled"`
	VLMEnabled               bool   `json:"vlm_enabled"`
	VLMModel                 string `json:"vlm_model,omitempty"`
	CodeEnrichmentEnabled    bool   `json:"code_enrichment_enabled"`
	FormulaEnrichmentEnabled bool   `json:"formula_enrichment_enabled"`
	DoclingVersion           string `json:"docling_version"`
}

// Metadata holds document-level facts plus the enrichment artifacts.
// The enrichment slices are pointers so that a requested-but-empty
// extraction serializes as [] while an unrequested one is omitted.
type Metadata struct {
	Title             string              `json:"title"`
	PageCount         int                 `json:"page_count"`
	HasImages         bool                `json:"has_images"`
	HasTables         bool                `json:"has_tables"`
	HasCode           bool                `json:"has_code"`
	HasFormulas       bool                `json:"has_formulas"`
	ProcessingInfo    ProcessingInfo      `json:"processing_info"`
	CodeSnippets      *[]CodeSnippet      `json:"code_snippets,omitempty"`
	Formulas          *[]Formula          `json:"formulas,omitempty"`
	ImageDescriptions *[]ImageDescription `json:"image_descriptions,omitempty"`
}

// Content is the successful payload of a Result.
type Content struct {
	Markdown string    `json:"markdown"`
	HTML     string    `json:"html,omitempty"`
	Sections []Section `json:"sections"`
	Metadata Metadata  `json:"metadata"`
}

// Result is the single JSON object emitted per invocation.
// Content is present iff Success; Error iff not.
type Result struct {
	Success bool     `json:"success"`
	Content *Content `json:"content,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// Page is one page of the converter document.
type Page struct {
	Number int `json:"number"`
}

// Picture is one picture region of the converter document. All fields are
// optional: Description comes from a visual-language model, Caption from
// layout analysis, Text from OCR inside the region.
type Picture struct {
	Description string `json:"description,omitempty"`
	Caption     string `json:"caption,omitempty"`
	Text        string `json:"text,omitempty"`
}

// Table is one detected table of the converter document.
type Table struct {
	Rows int `json:"rows,omitempty"`
	Cols int `json:"cols,omitempty"`
}

// Document is the optional capability-bearing object returned by the
// external converter alongside the Markdown. Every field may be absent;
// extractors branch on presence instead of failing.
type Document struct {
	Title    string    `json:"title,omitempty"`
	Pages    []Page    `json:"pages,omitempty"`
	Pictures []Picture `json:"pictures,omitempty"`
	Tables   []Table   `json:"tables,omitempty"`
}

// Input contains processing parameters for a single document.
type Input struct {
	Markdown string    // converted Markdown (required)
	Document *Document // converter document (optional, nil = no capabilities)

	// Stage flags, recorded in ProcessingInfo and gating enrichment.
	OCREnabled        bool
	VLMEnabled        bool
	VLMModel          string
	CodeEnrichment    bool
	FormulaEnrichment bool
	RenderHTML        bool

	// Probe hints fill capability gaps when Document carries no pages
	// or pictures (e.g. from a local PDF inspection). Zero values mean
	// no hint.
	PageCountHint   int
	ImageStreamHint bool
}

// VersionSource reports the converter version for ProcessingInfo.
type VersionSource interface {
	DoclingVersion() string
}

type staticVersion string

func (v staticVersion) DoclingVersion() string { return string(v) }

// StaticVersion returns a VersionSource that always reports v.
func StaticVersion(v string) VersionSource { return staticVersion(v) }

// Option configures a Service.
type Option func(*Service)

// WithVersionSource sets the converter version lookup used in
// ProcessingInfo. The default reports "unknown".
func WithVersionSource(v VersionSource) Option {
	if v == nil {
		panic("pdfstruct: WithVersionSource requires a non-nil source")
	}
	return func(s *Service) {
		s.versions = v
	}
}
