// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package stack

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/labelstack/internal/testpdf"
)

// outGeometry parses a duplicator result and returns the output page's
// MediaBox dimensions, page count, rotation, and decoded content stream.
func outGeometry(t *testing.T, out []byte) (w, h float64, pages, rotate int, content string) {
	t.Helper()

	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(out), model.NewDefaultConfiguration())
	require.NoError(t, err, "output must be a parseable PDF")
	require.NoError(t, ctx.EnsurePageCount())

	pageDict, _, inh, err := ctx.PageDict(1, false)
	require.NoError(t, err)
	require.NotNil(t, inh.MediaBox)

	raw, err := ctx.PageContent(pageDict, 1)
	require.NoError(t, err)

	return inh.MediaBox.Width(), inh.MediaBox.Height(), ctx.PageCount, inh.Rotate, string(raw)
}

func TestDuplicate_Geometry(t *testing.T) {
	tests := []struct {
		name    string
		w, h    float64
		gap     float64
		wantH   float64
	}{
		{"label 4x1in default gap", 288, 72, 0.12, 152.64},
		{"zero gap is exactly adjacent", 288, 72, 0, 144},
		{"letter with half inch gap", 612, 792, 0.5, 1620},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := testpdf.Single(tt.w, tt.h)

			out, err := Duplicate(in, Options{GapInches: tt.gap})
			require.NoError(t, err)

			w, h, pages, rotate, _ := outGeometry(t, out)
			assert.Equal(t, 1, pages, "output must have exactly one page")
			assert.Equal(t, tt.w, w, "output width must equal input width exactly")
			assert.InDelta(t, tt.wantH, h, 0.001)
			assert.Zero(t, rotate, "output rotation attribute must be unset")
		})
	}
}

func TestDuplicate_PlacesTwoCopies(t *testing.T) {
	in := testpdf.Single(288, 72)

	out, err := Duplicate(in, DefaultOptions())
	require.NoError(t, err)

	_, _, _, _, content := outGeometry(t, out)

	assert.Equal(t, 2, strings.Count(content, "/Fm0 Do"), "form must be placed twice")
	// Bottom copy at y=0, top copy at y = 72 + 0.12*72 = 80.64.
	assert.Contains(t, content, "1 0 0 1 0.00000 0.00000 cm")
	assert.Contains(t, content, "1 0 0 1 0.00000 80.64000 cm")
}

func TestDuplicate_ContentStreamFilters(t *testing.T) {
	// Page extraction leaves an unfiltered content stream with an empty,
	// non-nil filter pipeline; both that shape and a Flate-encoded stream
	// must decode and place identically.
	tests := []struct {
		name     string
		compress bool
	}{
		{"unfiltered content stream", false},
		{"flate encoded content stream", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := testpdf.Build([]testpdf.Page{{Width: 288, Height: 72, Compress: tt.compress}})

			out, err := Duplicate(in, DefaultOptions())
			require.NoError(t, err)

			w, h, pages, _, content := outGeometry(t, out)
			assert.Equal(t, 1, pages)
			assert.Equal(t, 288.0, w)
			assert.InDelta(t, 152.64, h, 0.001)
			assert.Equal(t, 2, strings.Count(content, "/Fm0 Do"))
			assert.Contains(t, content, "1 0 0 1 0.00000 80.64000 cm")
		})
	}
}

func TestDuplicate_PageSelection(t *testing.T) {
	// Three pages with distinct sizes; geometry must come from the
	// requested page alone.
	in := testpdf.Build([]testpdf.Page{
		{Width: 100, Height: 200},
		{Width: 300, Height: 400},
		{Width: 288, Height: 72},
	})

	out, err := Duplicate(in, Options{Page: 2, GapInches: 0.12})
	require.NoError(t, err)

	w, h, _, _, _ := outGeometry(t, out)
	assert.Equal(t, 288.0, w)
	assert.InDelta(t, 152.64, h, 0.001)
}

func TestDuplicate_UseCropBox(t *testing.T) {
	// MediaBox 288x144, CropBox the middle 288x72 band starting at y=36.
	crop := [4]float64{0, 36, 288, 108}
	in := testpdf.Build([]testpdf.Page{{Width: 288, Height: 144, CropBox: &crop}})

	out, err := Duplicate(in, Options{GapInches: 0.12, UseCropBox: true})
	require.NoError(t, err)

	w, h, _, _, content := outGeometry(t, out)
	assert.Equal(t, 288.0, w)
	assert.InDelta(t, 152.64, h, 0.001)
	// The crop region's lower-left (0,36) must land at the output origin.
	assert.Contains(t, content, "1 0 0 1 0.00000 -36.00000 cm")
}

func TestDuplicate_RotateNotCarriedOver(t *testing.T) {
	in := testpdf.Build([]testpdf.Page{{Width: 288, Height: 72, Rotate: 90}})

	out, err := Duplicate(in, DefaultOptions())
	require.NoError(t, err)

	_, _, _, rotate, _ := outGeometry(t, out)
	assert.Zero(t, rotate)
}

func TestDuplicate_Errors(t *testing.T) {
	valid := testpdf.Single(288, 72)
	truncated := valid[:40]

	tests := []struct {
		name    string
		input   []byte
		opts    Options
		wantErr error
	}{
		{"garbage bytes", []byte("not a pdf at all"), DefaultOptions(), ErrInvalidInput},
		{"truncated stream", truncated, DefaultOptions(), ErrInvalidInput},
		{"empty input", nil, DefaultOptions(), ErrInvalidInput},
		{"negative page", valid, Options{Page: -1, GapInches: 0.12}, ErrPageOutOfRange},
		{"page equals count", valid, Options{Page: 1, GapInches: 0.12}, ErrPageOutOfRange},
		{"page far out of range", valid, Options{Page: 99, GapInches: 0.12}, ErrPageOutOfRange},
		{"negative gap", valid, Options{GapInches: -0.5}, ErrInvalidGap},
		{"NaN gap", valid, Options{GapInches: math.NaN()}, ErrInvalidGap},
		{"infinite gap", valid, Options{GapInches: math.Inf(1)}, ErrInvalidGap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Duplicate(tt.input, tt.opts)
			assert.Nil(t, out, "no output on error")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDuplicate_Idempotent(t *testing.T) {
	in := testpdf.Single(288, 72)

	first, err := Duplicate(in, DefaultOptions())
	require.NoError(t, err)
	second, err := Duplicate(in, DefaultOptions())
	require.NoError(t, err)

	w1, h1, _, _, c1 := outGeometry(t, first)
	w2, h2, _, _, c2 := outGeometry(t, second)

	assert.Equal(t, w1, w2)
	assert.Equal(t, h1, h2)
	assert.Equal(t, c1, c2, "content placement must be identical across runs")
}

func TestDuplicate_InputNotMutated(t *testing.T) {
	in := testpdf.Single(288, 72)
	orig := make([]byte, len(in))
	copy(orig, in)

	_, err := Duplicate(in, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, orig, in)
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 0, opts.Page)
	assert.Equal(t, 0.12, opts.GapInches)
	assert.False(t, opts.UseCropBox)
}
