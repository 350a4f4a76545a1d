package pdfstruct

import "fmt"

// defaultImageConfidence is the fixed confidence assigned to every image
// description; no computed scoring is available from the converter.
const defaultImageConfidence = 0.8

// DescribeImages maps the converter document's pictures into one
// ImageDescription per picture, in collection order. The description
// prefers the VLM description, then the caption, then a fixed default.
// A nil document yields nil.
func DescribeImages(doc *Document) []ImageDescription {
	if doc == nil {
		return nil
	}

	var descriptions []ImageDescription
	for i, picture := range doc.Pictures {
		description := DefaultImageDescription
		switch {
		case picture.Description != "":
			description = picture.Description
		case picture.Caption != "":
			description = picture.Caption
		}

		descriptions = append(descriptions, ImageDescription{
			ImageID:       fmt.Sprintf("image_%d", i),
			Description:   description,
			Confidence:    defaultImageConfidence,
			ExtractedText: picture.Text,
		})
	}

	return descriptions
}
