// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package guide

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/layout"
)

// Boxer reports a rectangle in device pixels while one is being drawn,
// such as tool.BoxZoomTool and tool.BoxSelectTool.
type Boxer interface {
	Box() (layout.Rect, bool)
}

// BoxOverlay draws the rubber band of a box tool. Add it at
// ggplot.LevelOverlay.
type BoxOverlay struct {
	Source    Boxer
	Fill      gg.RGBA
	Line      gg.RGBA
	LineWidth float64
	Dash      []float64
}

// NewBoxOverlay creates the default translucent gray band for src.
func NewBoxOverlay(src Boxer) *BoxOverlay {
	return &BoxOverlay{
		Source:    src,
		Fill:      gg.RGBA{R: 0.5, G: 0.5, B: 0.5, A: 0.25},
		Line:      gg.Black,
		LineWidth: 1,
		Dash:      []float64{4, 4},
	}
}

// Render implements ggplot.Renderer.
func (b *BoxOverlay) Render(dc *gg.Context, _ *ggplot.PlotView) error {
	r, ok := b.Source.Box()
	if !ok || r.Empty() {
		return nil
	}
	dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	dc.SetRGBA(b.Fill.R, b.Fill.G, b.Fill.B, b.Fill.A)
	if err := dc.FillPreserve(); err != nil {
		return err
	}
	dc.SetRGBA(b.Line.R, b.Line.G, b.Line.B, b.Line.A)
	dc.SetLineWidth(b.LineWidth)
	if len(b.Dash) > 0 {
		dc.SetDash(b.Dash...)
	}
	return dc.Stroke()
}
