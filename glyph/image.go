// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyph

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/props"
	"github.com/gogpu/ggplot/source"
)

// ImageVersion increases whenever an Image glyph gets new pixels.
var ImageVersion = props.NewKey[int]("image_version")

var imageSeq atomic.Uint64

// Image draws an RGBA8 buffer stretched over a data-space rectangle whose
// lower-left corner is (X, Y). It is usually added at ggplot.LevelImage.
type Image struct {
	node *props.Node
	data *source.ImageData
	buf  *gg.ImageBuf

	X, Y   float64
	DW, DH float64
}

// NewImage creates an image glyph covering [x, x+dw] x [y, y+dh].
func NewImage(img *source.ImageData, x, y, dw, dh float64) (*Image, error) {
	if img == nil {
		return nil, errors.New("glyph: image: nil data")
	}
	if dw == 0 || dh == 0 {
		return nil, fmt.Errorf("glyph: image: empty extent %gx%g", dw, dh)
	}
	g := &Image{
		node: props.NewNode(fmt.Sprintf("image%d", imageSeq.Add(1))),
		data: img,
		X:    x, Y: y, DW: dw, DH: dh,
	}
	Visible.Init(g.node, true)
	Alpha.Init(g.node, 1)
	ImageVersion.Init(g.node, 0)
	return g, nil
}

// Node returns the glyph's property node.
func (g *Image) Node() *props.Node { return g.node }

// Data returns the pixel buffer.
func (g *Image) Data() *source.ImageData { return g.data }

// SetData replaces the pixels.
func (g *Image) SetData(img *source.ImageData) error {
	if img == nil {
		return errors.New("glyph: image: nil data")
	}
	g.data, g.buf = img, nil
	return ImageVersion.Set(g.node, ImageVersion.Value(g.node)+1)
}

// Invalidate marks the pixels as modified in place.
func (g *Image) Invalidate() error {
	g.buf = nil
	return ImageVersion.Set(g.node, ImageVersion.Value(g.node)+1)
}

// SetVisible shows or hides the glyph.
func (g *Image) SetVisible(v bool) error { return Visible.Set(g.node, v) }

// SetAlpha changes the image opacity.
func (g *Image) SetAlpha(a float64) error { return Alpha.Set(g.node, a) }

// Render implements ggplot.Renderer.
func (g *Image) Render(dc *gg.Context, p *ggplot.PlotView) error {
	alpha := Alpha.Value(g.node)
	if !Visible.Value(g.node) || alpha <= 0 {
		return nil
	}
	xs, ys, err := p.MapToScreen(
		[]float64{g.X, g.X + g.DW}, ggplot.UnitsData,
		[]float64{g.Y, g.Y + g.DH}, ggplot.UnitsData,
	)
	if err != nil {
		return fmt.Errorf("image: %w", err)
	}
	w, h := math.Abs(xs[1]-xs[0]), math.Abs(ys[1]-ys[0])
	if w < 1 || h < 1 {
		return nil
	}
	if g.buf == nil {
		g.buf = gg.ImageBufFromImage(g.data.Image())
	}
	dc.DrawImageEx(g.buf, gg.DrawImageOptions{
		X:         math.Min(xs[0], xs[1]),
		Y:         math.Min(ys[0], ys[1]),
		DstWidth:  w,
		DstHeight: h,
		Opacity:   math.Min(alpha, 1),
	})
	return nil
}
