package pdfstruct_test

import (
	"context"
	"fmt"
	"strings"

	pdfstruct "github.com/alnah/go-pdfstruct"
)

// Example demonstrates basic structuring of converted Markdown.
func Example() {
	svc := pdfstruct.New()

	content, err := svc.Process(context.Background(), pdfstruct.Input{
		Markdown: "# Hello World\n\nThis is a short document.",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(content.Sections[0].Title)
	fmt.Println(content.Metadata.PageCount)
	// Output:
	// Hello World
	// 1
}

// Example_withCodeEnrichment demonstrates extracting code snippets into
// the metadata.
func Example_withCodeEnrichment() {
	svc := pdfstruct.New()

	markdown := "# Listing\n\n```python\nprint('hi')\n```\n"

	content, err := svc.Process(context.Background(), pdfstruct.Input{
		Markdown:       markdown,
		CodeEnrichment: true,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	snippets := *content.Metadata.CodeSnippets
	fmt.Println(snippets[0].Language)
	fmt.Println(snippets[0].Description)
	// Output:
	// python
	// Code snippet in Python
}

// Example_withImageDescriptions demonstrates attaching VLM image
// descriptions from the converter document.
func Example_withImageDescriptions() {
	svc := pdfstruct.New()

	content, err := svc.Process(context.Background(), pdfstruct.Input{
		Markdown:   "# Figures\n\nSee figure 1.",
		VLMEnabled: true,
		Document: &pdfstruct.Document{
			Pictures: []pdfstruct.Picture{
				{Description: "A bar chart of quarterly revenue"},
			},
		},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	descriptions := *content.Metadata.ImageDescriptions
	fmt.Println(descriptions[0].ImageID)
	fmt.Println(descriptions[0].Description)
	// Output:
	// image_0
	// A bar chart of quarterly revenue
}

// Example_withHTML demonstrates including an HTML rendering in the result.
func Example_withHTML() {
	svc := pdfstruct.New()

	content, err := svc.Process(context.Background(), pdfstruct.Input{
		Markdown:   "# Rendered\n\nSome **bold** text.",
		RenderHTML: true,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.Contains(content.HTML, "<h1") && strings.Contains(content.HTML, "<strong>") {
		fmt.Println("HTML generated successfully")
	}
	// Output: HTML generated successfully
}
