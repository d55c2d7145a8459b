// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package stack duplicates one page of a PDF onto a single taller page: two
// copies of the source content, stacked vertically with a configurable gap,
// bottom-aligned. Content is never scaled, rotated, or re-rendered; the
// original drawing instructions and resources are carried over verbatim as a
// reusable form placed twice.
package stack

import (
	"bytes"
	"fmt"
	"math"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	pdftypes "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/pdiddy/labelstack/pkg/types"
)

// formName is the resource name under which the source page content is
// registered on the output page.
const formName = "Fm0"

// Options control page selection and placement.
type Options struct {
	// Page is the zero-based index of the page to duplicate.
	Page int

	// GapInches is the vertical gap between the two copies, in inches.
	GapInches float64

	// UseCropBox sizes and places content by the CropBox instead of the
	// MediaBox when the page declares one.
	UseCropBox bool
}

// DefaultOptions returns the standard options: page 0, a 0.12 inch gap,
// MediaBox sizing.
func DefaultOptions() Options {
	return Options{GapInches: types.DefaultGapInches}
}

// Duplicate composes a new single-page PDF from one page of pdfBytes. The
// selected page's content appears twice: the first copy at the bottom of the
// output page (y = 0), the second above it at y = H + gap. The output page is
// W wide and 2*H + gap tall, where W and H are the source box dimensions in
// points, with its MediaBox origin at (0,0) and no rotation attribute.
//
// The input is never mutated, and no partial output is produced: Duplicate
// either returns a complete serialized document or an error.
func Duplicate(pdfBytes []byte, opts Options) ([]byte, error) {
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(pdfBytes), model.NewDefaultConfiguration())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if ctx.PageCount == 0 {
		return nil, fmt.Errorf("%w: document has no pages", ErrInvalidInput)
	}

	if opts.Page < 0 || opts.Page >= ctx.PageCount {
		return nil, fmt.Errorf("%w: %d not in 0..%d", ErrPageOutOfRange, opts.Page, ctx.PageCount-1)
	}

	if opts.GapInches < 0 || math.IsNaN(opts.GapInches) || math.IsInf(opts.GapInches, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidGap, opts.GapInches)
	}
	gapPts := opts.GapInches * types.PointsPerInch

	// Carve the selected page out into its own context; this prunes the
	// object graph to the resources that page actually references.
	single, err := pdfcpu.ExtractPages(ctx, []int{opts.Page + 1}, false)
	if err != nil {
		return nil, fmt.Errorf("extracting page %d: %w", opts.Page, err)
	}
	if err := single.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("extracting page %d: %w", opts.Page, err)
	}

	pageDict, _, inh, err := single.PageDict(1, false)
	if err != nil {
		return nil, fmt.Errorf("reading page %d: %w", opts.Page, err)
	}
	if pageDict == nil {
		return nil, fmt.Errorf("%w: page %d has no page dictionary", ErrInvalidInput, opts.Page)
	}

	box := inh.MediaBox
	if opts.UseCropBox && inh.CropBox != nil {
		box = inh.CropBox
	}
	if box == nil {
		return nil, fmt.Errorf("%w: page %d has no MediaBox", ErrInvalidInput, opts.Page)
	}
	w, h := box.Width(), box.Height()

	content, err := pageContent(single, pageDict)
	if err != nil {
		return nil, fmt.Errorf("reading content of page %d: %w", opts.Page, err)
	}

	formRef, err := newPageForm(single, content, box, inh.Resources)
	if err != nil {
		return nil, fmt.Errorf("embedding page %d as form: %w", opts.Page, err)
	}

	contRef, err := newStackedContent(single, box, h, gapPts)
	if err != nil {
		return nil, fmt.Errorf("composing output page: %w", err)
	}

	outBox := pdftypes.RectForWidthAndHeight(0, 0, w, 2*h+gapPts)
	pageDict["MediaBox"] = outBox.Array()
	pageDict["CropBox"] = outBox.Array()
	pageDict["Contents"] = *contRef
	pageDict["Resources"] = pdftypes.Dict{"XObject": pdftypes.Dict{formName: *formRef}}
	// The composed page has its own geometry; source boxes, rotation, and
	// annotations would reference the old one.
	pageDict.Delete("Rotate")
	pageDict.Delete("Annots")
	pageDict.Delete("TrimBox")
	pageDict.Delete("BleedBox")
	pageDict.Delete("ArtBox")

	var out bytes.Buffer
	if err := api.WriteContext(single, &out); err != nil {
		return nil, fmt.Errorf("serializing output: %w", err)
	}
	return out.Bytes(), nil
}

// pageContent returns the decoded content stream bytes of a page, handling
// both a single stream and an array of streams. A page without Contents
// yields nil. Streams carry their filter chain in FilterPipeline; after page
// extraction an unfiltered stream ends up with a non-nil empty pipeline, which
// the library's own decoder does not treat as identity, so decoding is done
// here.
func pageContent(ctx *model.Context, pageDict pdftypes.Dict) ([]byte, error) {
	obj, found := pageDict.Find("Contents")
	if !found {
		return nil, nil
	}
	obj, err := ctx.Dereference(obj)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	switch o := obj.(type) {
	case pdftypes.StreamDict:
		data, err := decodedStream(&o)
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	case pdftypes.Array:
		for _, entry := range o {
			eo, err := ctx.Dereference(entry)
			if err != nil {
				return nil, err
			}
			sd, ok := eo.(pdftypes.StreamDict)
			if !ok {
				continue
			}
			data, err := decodedStream(&sd)
			if err != nil {
				return nil, err
			}
			buf.Write(data)
			// Streams in a Contents array concatenate with whitespace
			// between them.
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes(), nil
}

// decodedStream returns the stream's data with its filters applied. An empty
// pipeline means the raw bytes already are the data.
func decodedStream(sd *pdftypes.StreamDict) ([]byte, error) {
	if len(sd.FilterPipeline) == 0 {
		return sd.Raw, nil
	}
	if err := sd.Decode(); err != nil {
		return nil, err
	}
	return sd.Content, nil
}

// newPageForm wraps the source page's content stream in a form XObject so a
// single copy of the instructions can be placed twice. The form keeps the
// source box as its BBox and the page's own resource dictionary, so fonts and
// images resolve exactly as they did on the original page.
func newPageForm(ctx *model.Context, content []byte, box *pdftypes.Rectangle, res pdftypes.Dict) (*pdftypes.IndirectRef, error) {
	sd, err := ctx.NewStreamDictForBuf(content)
	if err != nil {
		return nil, err
	}
	sd.InsertName("Type", "XObject")
	sd.InsertName("Subtype", "Form")
	sd.Insert("BBox", box.Array())
	if len(res) > 0 {
		sd.Insert("Resources", res)
	}
	if err := sd.Encode(); err != nil {
		return nil, err
	}
	return ctx.IndRefForNewObject(*sd)
}

// newStackedContent builds the output page's content stream: two placements
// of the form, translated so the source box's lower-left lands at (0,0) for
// the bottom copy and at (0, h+gap) for the top copy.
func newStackedContent(ctx *model.Context, box *pdftypes.Rectangle, h, gapPts float64) (*pdftypes.IndirectRef, error) {
	// 0-x instead of -x keeps an origin-aligned box from printing as -0.
	tx := 0 - box.LL.X
	ty := 0 - box.LL.Y

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "q 1 0 0 1 %.5f %.5f cm /%s Do Q\n", tx, ty, formName)
	fmt.Fprintf(&buf, "q 1 0 0 1 %.5f %.5f cm /%s Do Q\n", tx, h+gapPts+ty, formName)

	sd, err := ctx.NewStreamDictForBuf(buf.Bytes())
	if err != nil {
		return nil, err
	}
	if err := sd.Encode(); err != nil {
		return nil, err
	}
	return ctx.IndRefForNewObject(*sd)
}
