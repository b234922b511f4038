// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyph

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/source"
)

// Line connects the rows in order. A NaN coordinate breaks the line.
type Line struct {
	base
}

// NewLine creates a line glyph reading Spec.X and Spec.Y.
func NewLine(src *source.ColumnDataSource, spec Spec) (*Line, error) {
	b, err := newBase("line", src, spec)
	if err != nil {
		return nil, err
	}
	return &Line{base: b}, nil
}

// Render implements ggplot.Renderer.
func (l *Line) Render(dc *gg.Context, p *ggplot.PlotView) error {
	if !l.Visible() {
		return nil
	}
	xs, ys, err := l.points(p, l.spec.Y)
	if err != nil {
		return fmt.Errorf("line: %w", err)
	}
	segments := 0
	pen := false
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			pen = false
			continue
		}
		if pen {
			dc.LineTo(xs[i], ys[i])
			segments++
			continue
		}
		dc.MoveTo(xs[i], ys[i])
		pen = true
	}
	if segments == 0 {
		dc.ClearPath()
		return nil
	}
	setColor(dc, l.rowColor(-1, false))
	dc.SetLineWidth(l.spec.LineWidth)
	if len(l.spec.Dash) > 0 {
		dc.SetDash(l.spec.Dash...)
	}
	return dc.Stroke()
}
