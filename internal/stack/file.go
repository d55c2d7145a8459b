// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package stack

import (
	"fmt"
	"os"
)

// DuplicateFile reads the PDF at inPath, duplicates the selected page, and
// writes the one-page result to outPath. Composition happens entirely in
// memory, so a failed run never leaves a truncated or partial output file.
func DuplicateFile(inPath, outPath string, opts Options) error {
	in, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inPath, err)
	}
	out, err := Duplicate(in, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}
