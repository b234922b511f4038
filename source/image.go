// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package source

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/gogpu/gputypes"
)

// ImageData is a row-major RGBA8 pixel buffer with straight alpha, laid
// out like a gputypes.TextureFormatRGBA8Unorm texture.
type ImageData struct {
	width, height int
	pix           []byte
}

// NewImageData wraps pix, which must hold width*height*4 bytes. The
// buffer is used directly, not copied.
func NewImageData(width, height int, pix []byte) (*ImageData, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageSize, width, height)
	}
	if len(pix) != width*height*4 {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrImageSize, len(pix), width, height)
	}
	return &ImageData{width: width, height: height, pix: pix}, nil
}

// ImageFrom copies any image into a new RGBA8 buffer.
func ImageFrom(img image.Image) *ImageData {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return &ImageData{width: b.Dx(), height: b.Dy(), pix: dst.Pix}
}

// Colormap maps a normalized value in [0, 1] to a color.
type Colormap func(t float64) color.NRGBA

// Gray maps 0 to black and 1 to white.
func Gray(t float64) color.NRGBA {
	v := uint8(math.Round(255 * t))
	return color.NRGBA{R: v, G: v, B: v, A: 255}
}

// Lerp returns a colormap blending linearly from lo to hi.
func Lerp(lo, hi color.NRGBA) Colormap {
	mix := func(a, b uint8, t float64) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	return func(t float64) color.NRGBA {
		return color.NRGBA{
			R: mix(lo.R, hi.R, t),
			G: mix(lo.G, hi.G, t),
			B: mix(lo.B, hi.B, t),
			A: mix(lo.A, hi.A, t),
		}
	}
}

// ImageFromScalars color-maps a width x height grid of values stored row
// by row, bottom row first as in data space. Values are normalized to the
// finite min..max of the grid; NaN cells are transparent.
func ImageFromScalars(values []float64, width, height int, cmap Colormap) (*ImageData, error) {
	if width <= 0 || height <= 0 || len(values) != width*height {
		return nil, fmt.Errorf("%w: %d values for %dx%d", ErrImageSize, len(values), width, height)
	}
	if cmap == nil {
		cmap = Gray
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}
	pix := make([]byte, width*height*4)
	for row := range height {
		// flip rows: data row 0 is the bottom of the image
		out := (height - 1 - row) * width * 4
		for col := range width {
			v := values[row*width+col]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			t := 0.0
			if hi > lo {
				t = (v - lo) / (hi - lo)
			}
			c := cmap(t)
			i := out + col*4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
		}
	}
	return &ImageData{width: width, height: height, pix: pix}, nil
}

// Width returns the width in pixels.
func (d *ImageData) Width() int { return d.width }

// Height returns the height in pixels.
func (d *ImageData) Height() int { return d.height }

// Pix returns the backing buffer.
func (d *ImageData) Pix() []byte { return d.pix }

// Stride returns the number of bytes per row.
func (d *ImageData) Stride() int { return d.width * 4 }

// Format reports the texture format of the buffer.
func (d *ImageData) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Extent returns the buffer size as a single-layer texture extent.
func (d *ImageData) Extent() gputypes.Extent3D {
	return gputypes.NewExtent2D(uint32(d.width), uint32(d.height))
}

// At returns the color of pixel (x, y), y down.
func (d *ImageData) At(x, y int) color.NRGBA {
	if x < 0 || y < 0 || x >= d.width || y >= d.height {
		return color.NRGBA{}
	}
	i := y*d.Stride() + x*4
	return color.NRGBA{R: d.pix[i], G: d.pix[i+1], B: d.pix[i+2], A: d.pix[i+3]}
}

// Image returns a view of the buffer as a standard image sharing memory.
func (d *ImageData) Image() *image.NRGBA {
	return &image.NRGBA{Pix: d.pix, Stride: d.Stride(), Rect: image.Rect(0, 0, d.width, d.height)}
}
