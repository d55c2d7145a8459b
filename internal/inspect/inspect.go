// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package inspect reports PDF page geometry: page count and per-page box
// dimensions in points and inches. The web UI and the inspect subcommand use
// it to let a user pick a page and predict the stacked output size.
package inspect

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdiddy/labelstack/internal/stack"
	"github.com/pdiddy/labelstack/pkg/types"
)

// Report parses pdfBytes and returns the geometry of every page. It fails
// with stack.ErrInvalidInput when the bytes are not a well-formed PDF.
func Report(pdfBytes []byte) (*types.DocumentInfo, error) {
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(pdfBytes), model.NewDefaultConfiguration())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", stack.ErrInvalidInput, err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("%w: %v", stack.ErrInvalidInput, err)
	}

	info := &types.DocumentInfo{PageCount: ctx.PageCount}
	for n := 1; n <= ctx.PageCount; n++ {
		_, _, inh, err := ctx.PageDict(n, false)
		if err != nil {
			return nil, fmt.Errorf("reading page %d: %w", n-1, err)
		}
		if inh.MediaBox == nil {
			return nil, fmt.Errorf("%w: page %d has no MediaBox", stack.ErrInvalidInput, n-1)
		}

		page := types.PageInfo{
			Index:    n - 1,
			MediaBox: types.NewBoxInfo(inh.MediaBox.Width(), inh.MediaBox.Height()),
			Rotate:   inh.Rotate,
		}
		if inh.CropBox != nil {
			cb := types.NewBoxInfo(inh.CropBox.Width(), inh.CropBox.Height())
			page.CropBox = &cb
		}
		info.Pages = append(info.Pages, page)
	}
	return info, nil
}
