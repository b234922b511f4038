// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package source

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewImageData(t *testing.T) {
	_, err := NewImageData(2, 2, make([]byte, 15))
	assert.ErrorIs(t, err, ErrImageSize)
	_, err = NewImageData(0, 2, nil)
	assert.ErrorIs(t, err, ErrImageSize)

	pix := make([]byte, 2*3*4)
	d, err := NewImageData(2, 3, pix)
	require.NoError(t, err)
	assert.Equal(t, gputypes.TextureFormatRGBA8Unorm, d.Format())
	assert.Equal(t, gputypes.Extent3D{Width: 2, Height: 3, DepthOrArrayLayers: 1}, d.Extent())
	assert.Equal(t, 8, d.Stride())

	pix[4*3+0] = 200 // pixel (1, 1)
	assert.Equal(t, uint8(200), d.At(1, 1).R, "buffer must be shared")
	assert.Equal(t, color.NRGBA{}, d.At(5, 5))
	assert.Equal(t, image.Rect(0, 0, 2, 3), d.Image().Bounds())
}

func TestImageFrom(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 13, 12))
	src.Set(11, 10, color.RGBA{R: 255, A: 255})
	d := ImageFrom(src)
	assert.Equal(t, 3, d.Width())
	assert.Equal(t, 2, d.Height())
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, d.At(1, 0))
}

func TestImageFromScalars(t *testing.T) {
	// 2x2 grid, bottom row first.
	values := []float64{0, 1, 2, math.NaN()}
	d, err := ImageFromScalars(values, 2, 2, nil)
	require.NoError(t, err)

	// Bottom-left cell (value 0) is the last image row.
	assert.Equal(t, color.NRGBA{A: 255}, d.At(0, 1))
	assert.Equal(t, color.NRGBA{R: 128, G: 128, B: 128, A: 255}, d.At(1, 1))
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, d.At(0, 0))
	assert.Equal(t, color.NRGBA{}, d.At(1, 0), "NaN cells are transparent")

	_, err = ImageFromScalars(values, 3, 2, nil)
	assert.ErrorIs(t, err, ErrImageSize)
}

func TestLerp(t *testing.T) {
	cm := Lerp(color.NRGBA{A: 255}, color.NRGBA{R: 100, A: 255})
	assert.Equal(t, color.NRGBA{R: 50, A: 255}, cm(0.5))
}
