// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package guide

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/layout"
)

// Dimension selects the axis a Grid follows.
type Dimension int

const (
	// DimensionX draws vertical lines at x ticks.
	DimensionX Dimension = iota
	// DimensionY draws horizontal lines at y ticks.
	DimensionY
)

// Grid draws lines across the plot area at the major ticks of one axis.
// It is usually added at ggplot.LevelUnderlay.
type Grid struct {
	Dimension Dimension
	Ticker    Ticker
	Color     gg.RGBA
	LineWidth float64
	Dash      []float64
}

// NewGrid creates a light grid for the given dimension.
func NewGrid(d Dimension) *Grid {
	return &Grid{
		Dimension: d,
		Color:     gg.Hex("#e5e5e5"),
		LineWidth: 1,
	}
}

// Render implements ggplot.Renderer.
func (g *Grid) Render(dc *gg.Context, p *ggplot.PlotView) error {
	inner := p.View().InnerRect()
	if inner.Empty() {
		return nil
	}
	side := layout.Bottom
	if g.Dimension == DimensionY {
		side = layout.Left
	}
	ax := Axis{Side: side, Ticker: g.Ticker}
	ticks, err := ax.ticks(p)
	if err != nil {
		return fmt.Errorf("grid: %w", err)
	}
	n := 0
	for _, t := range ticks {
		if !t.major() {
			continue
		}
		if g.Dimension == DimensionX {
			dc.MoveTo(t.pos, inner.Y)
			dc.LineTo(t.pos, inner.Y+inner.H)
		} else {
			dc.MoveTo(inner.X, t.pos)
			dc.LineTo(inner.X+inner.W, t.pos)
		}
		n++
	}
	if n == 0 {
		dc.ClearPath()
		return nil
	}
	dc.SetRGBA(g.Color.R, g.Color.G, g.Color.B, g.Color.A)
	dc.SetLineWidth(g.LineWidth)
	if len(g.Dash) > 0 {
		dc.SetDash(g.Dash...)
	}
	return dc.Stroke()
}
