// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package testpdf writes minimal, well-formed PDF documents with fixed page
// geometry. It exists so tests can build inputs in-process instead of
// checking in binary fixtures; it is not a general-purpose writer.
package testpdf

import (
	"bytes"
	"compress/zlib"
	"fmt"
)

// Page describes one page of a generated document, dimensions in points.
type Page struct {
	Width  float64
	Height float64

	// CropBox, when non-nil, is written as [llx lly urx ury].
	CropBox *[4]float64

	// Rotate, when nonzero, is written as the page's /Rotate attribute.
	Rotate int

	// Compress Flate-encodes the content stream, the way most real-world
	// writers emit it. Left false, the stream is written unfiltered.
	Compress bool
}

// Build serializes a document with the given pages. Each page carries a tiny
// content stream (a single stroked path) so duplication has real drawing
// instructions to copy; the stream is unfiltered unless the page asks for
// Flate.
func Build(pages []Page) []byte {
	var buf bytes.Buffer
	offsets := []int{0} // object number 0 is the free-list head

	addObj := func(body string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(body)
	}

	buf.WriteString("%PDF-1.4\n")

	addObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	var kids bytes.Buffer
	for i := range pages {
		fmt.Fprintf(&kids, "%d 0 R ", 3+2*i)
	}
	addObj(fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [ %s] /Count %d >>\nendobj\n",
		kids.String(), len(pages)))

	for i, p := range pages {
		pageNum := 3 + 2*i
		contNum := pageNum + 1

		var attrs bytes.Buffer
		fmt.Fprintf(&attrs, "/Type /Page /Parent 2 0 R /MediaBox [0 0 %.2f %.2f] /Resources << >> /Contents %d 0 R",
			p.Width, p.Height, contNum)
		if p.CropBox != nil {
			fmt.Fprintf(&attrs, " /CropBox [%.2f %.2f %.2f %.2f]",
				p.CropBox[0], p.CropBox[1], p.CropBox[2], p.CropBox[3])
		}
		if p.Rotate != 0 {
			fmt.Fprintf(&attrs, " /Rotate %d", p.Rotate)
		}
		addObj(fmt.Sprintf("%d 0 obj\n<< %s >>\nendobj\n", pageNum, attrs.String()))

		data := []byte(fmt.Sprintf("0 0 m %.2f %.2f l S", p.Width/2, p.Height/2))
		filter := ""
		if p.Compress {
			data = flate(data)
			filter = " /Filter /FlateDecode"
		}
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n<< /Length %d%s >>\nstream\n", contNum, len(data), filter)
		buf.Write(data)
		buf.WriteString("\nendstream\nendobj\n")
	}

	xrefOffset := buf.Len()
	total := 3 + 2*len(pages)
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", total)
	for i := 1; i < total; i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		total, xrefOffset)

	return buf.Bytes()
}

// Single returns a one-page document of the given size in points.
func Single(width, height float64) []byte {
	return Build([]Page{{Width: width, Height: height}})
}

// flate compresses b in the zlib envelope /FlateDecode expects.
func flate(b []byte) []byte {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(b); err != nil {
		panic(err)
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
