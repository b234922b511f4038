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

// Rect draws an axis-aligned rectangle of Spec.Width x Spec.Height data
// units centered on each row.
type Rect struct {
	base
}

// NewRect creates a rectangle glyph reading Spec.X and Spec.Y.
func NewRect(src *source.ColumnDataSource, spec Spec) (*Rect, error) {
	b, err := newBase("rect", src, spec)
	if err != nil {
		return nil, err
	}
	return &Rect{base: b}, nil
}

// Render implements ggplot.Renderer.
func (r *Rect) Render(dc *gg.Context, p *ggplot.PlotView) error {
	if !r.Visible() {
		return nil
	}
	xs, ys, err := r.data(p, r.spec.Y)
	if err != nil {
		return fmt.Errorf("rect: %w", err)
	}
	hw, hh := r.spec.Width/2, r.spec.Height/2
	return r.fillBoxes(dc, p, offset(xs, -hw), offset(xs, hw), offset(ys, -hh), offset(ys, hh))
}

// VBar draws vertical bars of Spec.Width data units from Spec.Bottom to
// the Spec.Top column.
type VBar struct {
	base
}

// NewVBar creates a bar glyph reading Spec.X and Spec.Top.
func NewVBar(src *source.ColumnDataSource, spec Spec) (*VBar, error) {
	if spec.Top == "" {
		return nil, fmt.Errorf("%w: vbar needs Top", ErrMissingColumn)
	}
	b, err := newBase("vbar", src, spec)
	if err != nil {
		return nil, err
	}
	return &VBar{base: b}, nil
}

// Render implements ggplot.Renderer.
func (v *VBar) Render(dc *gg.Context, p *ggplot.PlotView) error {
	if !v.Visible() {
		return nil
	}
	xs, tops, err := v.data(p, v.spec.Top)
	if err != nil {
		return fmt.Errorf("vbar: %w", err)
	}
	bottoms := make([]float64, len(tops))
	for i := range bottoms {
		bottoms[i] = v.spec.Bottom
	}
	hw := v.spec.Width / 2
	return v.fillBoxes(dc, p, offset(xs, -hw), offset(xs, hw), bottoms, tops)
}

func offset(vs []float64, d float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = v + d
	}
	return out
}

// fillBoxes fills one box per row given data-space edges.
func (b *base) fillBoxes(dc *gg.Context, p *ggplot.PlotView, x0, x1, y0, y1 []float64) error {
	sx0, sy0, err := p.MapToScreen(x0, ggplot.UnitsData, y0, ggplot.UnitsData)
	if err != nil {
		return err
	}
	sx1, sy1, err := p.MapToScreen(x1, ggplot.UnitsData, y1, ggplot.UnitsData)
	if err != nil {
		return err
	}
	selecting := b.selecting()
	for i := range sx0 {
		if math.IsNaN(sx0[i]) || math.IsNaN(sy0[i]) || math.IsNaN(sx1[i]) || math.IsNaN(sy1[i]) {
			continue
		}
		x, y := math.Min(sx0[i], sx1[i]), math.Min(sy0[i], sy1[i])
		w, h := math.Abs(sx1[i]-sx0[i]), math.Abs(sy1[i]-sy0[i])
		if w == 0 || h == 0 {
			continue
		}
		setColor(dc, b.rowColor(i, selecting))
		dc.DrawRectangle(x, y, w, h)
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}
