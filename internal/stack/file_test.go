// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package stack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/labelstack/internal/testpdf"
)

func TestDuplicateFile(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "label.pdf")
	outPath := filepath.Join(dir, "stacked.pdf")
	require.NoError(t, os.WriteFile(inPath, testpdf.Single(288, 72), 0o644))

	err := DuplicateFile(inPath, outPath, DefaultOptions())
	require.NoError(t, err)

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestDuplicateFile_MissingInput(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "stacked.pdf")

	err := DuplicateFile(filepath.Join(dir, "nope.pdf"), outPath, DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr), "no output file on error")
}

func TestDuplicateFile_InvalidInputWritesNothing(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "garbage.pdf")
	outPath := filepath.Join(dir, "stacked.pdf")
	require.NoError(t, os.WriteFile(inPath, []byte("garbage"), 0o644))

	err := DuplicateFile(inPath, outPath, DefaultOptions())
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr), "no partial output on error")
}
