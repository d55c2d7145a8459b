// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package inspect

import (
	"errors"
	"math"
	"testing"

	"github.com/pdiddy/labelstack/internal/stack"
	"github.com/pdiddy/labelstack/internal/testpdf"
)

func TestReport(t *testing.T) {
	in := testpdf.Build([]testpdf.Page{
		{Width: 288, Height: 72},
		{Width: 612, Height: 792},
		{Width: 100, Height: 200, Rotate: 90},
	})

	info, err := Report(in)
	if err != nil {
		t.Fatalf("Report: %v", err)
	}

	if info.PageCount != 3 {
		t.Errorf("page count = %d, want 3", info.PageCount)
	}
	if len(info.Pages) != 3 {
		t.Fatalf("pages = %d, want 3", len(info.Pages))
	}

	first := info.Pages[0]
	if first.Index != 0 {
		t.Errorf("first page index = %d, want 0", first.Index)
	}
	if first.MediaBox.WidthPts != 288 || first.MediaBox.HeightPts != 72 {
		t.Errorf("first page media box = %.2f x %.2f pts, want 288 x 72",
			first.MediaBox.WidthPts, first.MediaBox.HeightPts)
	}
	if math.Abs(first.MediaBox.WidthIn-4) > 1e-9 || math.Abs(first.MediaBox.HeightIn-1) > 1e-9 {
		t.Errorf("first page media box = %.3f x %.3f in, want 4 x 1",
			first.MediaBox.WidthIn, first.MediaBox.HeightIn)
	}

	if got := info.Pages[2].Rotate; got != 90 {
		t.Errorf("third page rotate = %d, want 90", got)
	}
}

func TestReport_CropBox(t *testing.T) {
	crop := [4]float64{0, 36, 288, 108}
	in := testpdf.Build([]testpdf.Page{{Width: 288, Height: 144, CropBox: &crop}})

	info, err := Report(in)
	if err != nil {
		t.Fatalf("Report: %v", err)
	}

	page := info.Pages[0]
	if page.CropBox == nil {
		t.Fatal("crop box missing from report")
	}
	if page.CropBox.WidthPts != 288 || page.CropBox.HeightPts != 72 {
		t.Errorf("crop box = %.2f x %.2f pts, want 288 x 72",
			page.CropBox.WidthPts, page.CropBox.HeightPts)
	}
}

func TestReport_NoCropBox(t *testing.T) {
	info, err := Report(testpdf.Single(288, 72))
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if info.Pages[0].CropBox != nil {
		t.Error("crop box should be omitted when the page declares none")
	}
}

func TestReport_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"garbage", []byte("definitely not a pdf")},
		{"empty", nil},
		{"truncated", testpdf.Single(288, 72)[:40]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Report(tt.input)
			if !errors.Is(err, stack.ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}
