// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package stack

import "errors"

// Sentinel errors returned by Duplicate. Callers match them with errors.Is;
// wrapped variants carry the underlying detail.
var (
	// ErrInvalidInput indicates the input bytes are not a well-formed PDF,
	// or the PDF has no pages.
	ErrInvalidInput = errors.New("input is not a valid PDF")

	// ErrPageOutOfRange indicates the requested page index does not exist.
	ErrPageOutOfRange = errors.New("page index out of range")

	// ErrInvalidGap indicates the gap is negative, NaN, or infinite.
	ErrInvalidGap = errors.New("gap must be a nonnegative finite number of inches")
)
