// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// BoxInfo describes one page box in points and inches.
type BoxInfo struct {
	WidthPts  float64 `json:"width_pts" yaml:"width_pts"`
	HeightPts float64 `json:"height_pts" yaml:"height_pts"`
	WidthIn   float64 `json:"width_in" yaml:"width_in"`
	HeightIn  float64 `json:"height_in" yaml:"height_in"`
}

// NewBoxInfo builds a BoxInfo from point dimensions.
func NewBoxInfo(widthPts, heightPts float64) BoxInfo {
	return BoxInfo{
		WidthPts:  widthPts,
		HeightPts: heightPts,
		WidthIn:   widthPts / PointsPerInch,
		HeightIn:  heightPts / PointsPerInch,
	}
}

// PageInfo describes the geometry of a single page.
type PageInfo struct {
	// Index is the zero-based page index.
	Index int `json:"index" yaml:"index"`

	// MediaBox is the page's physical extent.
	MediaBox BoxInfo `json:"media_box" yaml:"media_box"`

	// CropBox is the visible region, when the page declares one.
	CropBox *BoxInfo `json:"crop_box,omitempty" yaml:"crop_box,omitempty"`

	// Rotate is the page's viewer rotation attribute in degrees.
	Rotate int `json:"rotate" yaml:"rotate"`
}

// DocumentInfo is the geometry report for a PDF document.
type DocumentInfo struct {
	PageCount int        `json:"page_count" yaml:"page_count"`
	Pages     []PageInfo `json:"pages" yaml:"pages"`
}
