// Package pdfinfo inspects a PDF locally with pdfcpu. It fills capability
// gaps when the external converter reports no page or picture data: the
// probe result is a hint, never authoritative, and probing failures are
// expected (encrypted or malformed files) rather than fatal.
package pdfinfo

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Info holds the probe results for one PDF.
type Info struct {
	PageCount       int
	HasImageStreams bool
}

// Probe reads and validates the PDF at path and reports its page count and
// whether any page carries image XObjects.
func Probe(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return nil, fmt.Errorf("pdfcpu read: %w", err)
	}

	return &Info{
		PageCount:       ctx.PageCount,
		HasImageStreams: detectImageStreams(ctx),
	}, nil
}

// detectImageStreams checks every page for image XObjects.
func detectImageStreams(ctx *model.Context) bool {
	if ctx.Optimize == nil {
		return false
	}
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		if len(pdfcpu.ImageObjNrs(ctx, pageNr)) > 0 {
			return true
		}
	}
	return false
}
