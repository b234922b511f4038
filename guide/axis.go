// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package guide

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/layout"
	"github.com/gogpu/ggplot/mapper"
)

const labelGap = 3

// Axis draws the axis line, ticks and tick labels along one side of the
// plot area. A categorical plot axis gets one labelled tick per factor;
// a continuous one uses Ticker. Use at most one Axis per side.
type Axis struct {
	Side       layout.Side
	Label      string
	Ticker     Ticker
	FontSize   float64
	TickLength float64
	LineWidth  float64
	Color      gg.RGBA
}

// NewAxis creates an axis on the given side with default styling.
func NewAxis(side layout.Side) *Axis {
	return &Axis{
		Side:       side,
		FontSize:   11,
		TickLength: 5,
		LineWidth:  1,
		Color:      gg.Hex("#444444"),
	}
}

func (a *Axis) horizontal() bool {
	return a.Side == layout.Top || a.Side == layout.Bottom
}

// ticks resolves tick positions in device pixels, dropping ticks outside
// the plot area.
func (a *Axis) ticks(p *ggplot.PlotView) ([]tick, error) {
	var (
		m       mapper.Mapper
		factors *mapper.FactorRange
		rng     *mapper.Range
		toDev   func(float64) float64
	)
	view := p.View()
	inner := view.InnerRect()
	lo, hi := inner.Y, inner.Y+inner.H
	if a.horizontal() {
		m, factors, rng, toDev = p.XMapper(), p.XFactors(), p.XRange(), view.SXToDevice
		lo, hi = inner.X, inner.X+inner.W
	} else {
		m, factors, rng, toDev = p.YMapper(), p.YFactors(), p.YRange(), view.SYToDevice
	}

	var marks []tick
	add := func(v float64, label string) error {
		s, err := m.ToTarget(v)
		if err != nil {
			return err
		}
		d := toDev(s)
		if d >= lo-0.5 && d <= hi+0.5 {
			marks = append(marks, tick{pos: d, label: label})
		}
		return nil
	}

	if factors != nil {
		for i, f := range factors.Factors() {
			if err := add(float64(i)+0.5, f); err != nil {
				return nil, err
			}
		}
		return marks, nil
	}
	t := a.Ticker
	if t == nil {
		t = NumberTicker{}
	}
	for _, tk := range t.Ticks(rng.Min(), rng.Max()) {
		if err := add(tk.Value, tk.Label); err != nil {
			return nil, err
		}
	}
	return marks, nil
}

// Padding implements ggplot.PaddingRequester.
func (a *Axis) Padding(p *ggplot.PlotView) layout.Padding {
	var pad layout.Padding
	size := a.TickLength
	face, err := p.Face(a.FontSize)
	if err != nil {
		pad.Set(a.Side, size)
		return pad
	}
	dc := p.Context()
	dc.SetFont(face)

	extent := 0.0
	if ticks, err := a.ticks(p); err == nil {
		for _, t := range ticks {
			if !t.major() {
				continue
			}
			w, h := dc.MeasureString(t.label)
			if a.horizontal() {
				extent = math.Max(extent, h)
			} else {
				extent = math.Max(extent, w)
			}
		}
	}
	if extent > 0 {
		size += labelGap + math.Ceil(extent)
	}
	if a.Label != "" {
		_, h := dc.MeasureString(a.Label)
		size += labelGap + math.Ceil(h)
	}
	pad.Set(a.Side, size)
	return pad
}

// Render implements ggplot.Renderer.
func (a *Axis) Render(dc *gg.Context, p *ggplot.PlotView) error {
	inner := p.View().InnerRect()
	if inner.Empty() {
		return nil
	}
	ticks, err := a.ticks(p)
	if err != nil {
		return fmt.Errorf("axis %s: %w", a.Side, err)
	}

	// edge is the axis line coordinate, out the direction ticks point.
	var edge, out float64
	switch a.Side {
	case layout.Bottom:
		edge, out = inner.Y+inner.H, 1
	case layout.Top:
		edge, out = inner.Y, -1
	case layout.Left:
		edge, out = inner.X, -1
	case layout.Right:
		edge, out = inner.X+inner.W, 1
	}

	dc.SetRGBA(a.Color.R, a.Color.G, a.Color.B, a.Color.A)
	dc.SetLineWidth(a.LineWidth)
	if a.horizontal() {
		dc.MoveTo(inner.X, edge)
		dc.LineTo(inner.X+inner.W, edge)
	} else {
		dc.MoveTo(edge, inner.Y)
		dc.LineTo(edge, inner.Y+inner.H)
	}
	for _, t := range ticks {
		l := a.TickLength
		if !t.major() {
			l /= 2
		}
		if a.horizontal() {
			dc.MoveTo(t.pos, edge)
			dc.LineTo(t.pos, edge+out*l)
		} else {
			dc.MoveTo(edge, t.pos)
			dc.LineTo(edge+out*l, t.pos)
		}
	}
	if err := dc.Stroke(); err != nil {
		return err
	}

	face, err := p.Face(a.FontSize)
	if err != nil {
		return err
	}
	dc.SetFont(face)
	labelEdge := edge + out*(a.TickLength+labelGap)
	extent := 0.0
	for _, t := range ticks {
		if !t.major() {
			continue
		}
		w, h := dc.MeasureString(t.label)
		switch a.Side {
		case layout.Bottom:
			dc.DrawStringAnchored(t.label, t.pos, labelEdge, 0.5, 0)
			extent = math.Max(extent, h)
		case layout.Top:
			dc.DrawStringAnchored(t.label, t.pos, labelEdge, 0.5, 1)
			extent = math.Max(extent, h)
		case layout.Left:
			dc.DrawStringAnchored(t.label, labelEdge, t.pos, 1, 0.5)
			extent = math.Max(extent, w)
		case layout.Right:
			dc.DrawStringAnchored(t.label, labelEdge, t.pos, 0, 0.5)
			extent = math.Max(extent, w)
		}
	}
	if a.Label != "" {
		a.drawLabel(dc, inner, labelEdge+out*(math.Ceil(extent)+labelGap))
	}
	return nil
}

func (a *Axis) drawLabel(dc *gg.Context, inner layout.Rect, at float64) {
	switch a.Side {
	case layout.Bottom:
		dc.DrawStringAnchored(a.Label, inner.X+inner.W/2, at, 0.5, 0)
	case layout.Top:
		dc.DrawStringAnchored(a.Label, inner.X+inner.W/2, at, 0.5, 1)
	case layout.Left, layout.Right:
		cy := inner.Y + inner.H/2
		ay := 0.0
		if a.Side == layout.Left {
			ay = 1
		}
		dc.Push()
		dc.RotateAbout(-math.Pi/2, at, cy)
		dc.DrawStringAnchored(a.Label, at, cy, 0.5, ay)
		dc.Pop()
	}
}
