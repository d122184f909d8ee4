package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSingleByte(t *testing.T) {
	assert.Equal(t, "café – 5€", ToSingleByte("café – 5€"))
	assert.Equal(t, "skills ? and ?", ToSingleByte("skills 🚀 and 中"))
	assert.Equal(t, "a\nb\tc", ToSingleByte("a\nb\tc"))
}

func TestRenderPDFNonEncodableInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.pdf")

	err := RenderPDF("Jane Doe 🚀\nGo, Kubernetes, 中文\n", path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRenderPDFUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "cv.pdf")

	err := RenderPDF("text", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRenderFailure)
}
