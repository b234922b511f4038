// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package guide

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggplot"
)

// LegendItem is implemented by glyphs that can appear in a legend.
type LegendItem interface {
	LegendEntry() (label string, swatch gg.RGBA)
}

// Corner places a legend inside the plot area.
type Corner int

// Legend corners.
const (
	TopRight Corner = iota
	TopLeft
	BottomRight
	BottomLeft
)

// Legend lists labelled glyphs with a color swatch each. Items with an
// empty label are skipped. Add it at ggplot.LevelAnnotation.
type Legend struct {
	Items      []LegendItem
	Corner     Corner
	FontSize   float64
	Margin     float64
	Inset      float64
	Background gg.RGBA
	Border     gg.RGBA
}

// NewLegend creates a legend in the top right corner.
func NewLegend(items ...LegendItem) *Legend {
	return &Legend{
		Items:      items,
		FontSize:   11,
		Margin:     10,
		Inset:      6,
		Background: gg.RGBA{R: 1, G: 1, B: 1, A: 0.9},
		Border:     gg.Hex("#cccccc"),
	}
}

type legendRow struct {
	label string
	color gg.RGBA
}

// Render implements ggplot.Renderer.
func (l *Legend) Render(dc *gg.Context, p *ggplot.PlotView) error {
	var rows []legendRow
	for _, it := range l.Items {
		if label, c := it.LegendEntry(); label != "" {
			rows = append(rows, legendRow{label, c})
		}
	}
	inner := p.View().InnerRect()
	if len(rows) == 0 || inner.Empty() {
		return nil
	}
	face, err := p.Face(l.FontSize)
	if err != nil {
		return err
	}
	dc.SetFont(face)

	swatch := l.FontSize
	lineH, textW := 0.0, 0.0
	for _, r := range rows {
		w, h := dc.MeasureString(r.label)
		textW = math.Max(textW, w)
		lineH = math.Max(lineH, h)
	}
	lineH = math.Max(lineH, swatch) + 2
	w := l.Inset*2 + swatch + labelGap*2 + textW
	h := l.Inset*2 + lineH*float64(len(rows))

	x := inner.X + inner.W - l.Margin - w
	y := inner.Y + l.Margin
	switch l.Corner {
	case TopLeft:
		x = inner.X + l.Margin
	case BottomRight:
		y = inner.Y + inner.H - l.Margin - h
	case BottomLeft:
		x = inner.X + l.Margin
		y = inner.Y + inner.H - l.Margin - h
	}

	dc.DrawRectangle(x, y, w, h)
	dc.SetRGBA(l.Background.R, l.Background.G, l.Background.B, l.Background.A)
	if err := dc.FillPreserve(); err != nil {
		return err
	}
	dc.SetRGBA(l.Border.R, l.Border.G, l.Border.B, l.Border.A)
	dc.SetLineWidth(1)
	if err := dc.Stroke(); err != nil {
		return err
	}

	for i, r := range rows {
		cy := y + l.Inset + lineH*(float64(i)+0.5)
		dc.SetRGBA(r.color.R, r.color.G, r.color.B, r.color.A)
		dc.DrawRectangle(x+l.Inset, cy-swatch/2, swatch, swatch)
		if err := dc.Fill(); err != nil {
			return err
		}
		dc.SetRGBA(0, 0, 0, 1)
		dc.DrawStringAnchored(r.label, x+l.Inset+swatch+labelGap*2, cy, 0, 0.5)
	}
	return nil
}
