package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logoraw/pkg/bitmap"
)

func TestRender(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.Set(1, 1, color.NRGBA{R: 0xAA, G: 0xBB, B: 0xCC, A: 0xFF})

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/logo.raw", bitmap.Encode(src), 0644))
	require.NoError(t, render(fs, "/logo.raw", "/preview.png", 3, 2))

	bs, err := afero.ReadFile(fs, "/preview.png")
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(bs))
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
	r, g, b, a := img.At(1, 1).RGBA()
	assert.Equal(t, []uint32{0xAAAA, 0xBBBB, 0xCCCC, 0xFFFF}, []uint32{r, g, b, a})
}

func TestRenderSizeMismatch(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/logo.raw", make([]byte, 12), 0644))

	assert.Error(t, render(fs, "/logo.raw", "/preview.png", 3, 2))
	assert.Error(t, render(fs, "/missing.raw", "/preview.png", 3, 2))
	assert.Error(t, render(fs, "/logo.raw", "/preview.xyz", 1, 3))
}
