// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyph

import (
	"fmt"
	"sync/atomic"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/props"
	"github.com/gogpu/ggplot/source"
)

// Properties of a glyph node.
var (
	Visible = props.NewKey[bool]("visible")
	Alpha   = props.NewKey[float64]("alpha")
	Color   = props.NewKey[gg.RGBA]("color")
	// DataVersion mirrors the version of the glyph's source.
	DataVersion = props.NewKey[int]("data_version")
)

var glyphSeq atomic.Uint64

// base holds what every column glyph shares.
type base struct {
	node *props.Node
	src  *source.ColumnDataSource
	spec Spec
}

func newBase(kind string, src *source.ColumnDataSource, spec Spec) (base, error) {
	if src == nil {
		return base{}, fmt.Errorf("glyph: %s: nil source", kind)
	}
	spec = spec.withDefaults()
	b := base{
		node: props.NewNode(fmt.Sprintf("%s%d", kind, glyphSeq.Add(1))),
		src:  src,
		spec: spec,
	}
	Visible.Init(b.node, true)
	Alpha.Init(b.node, spec.Alpha)
	Color.Init(b.node, spec.Color)
	err := DataVersion.Define(b.node, func() (int, error) {
		return src.Version(), nil
	}, props.DependsOn(source.Version.Of(src.Node())))
	if err != nil {
		return base{}, fmt.Errorf("glyph: %s: %w", kind, err)
	}
	// prime the cache so equal versions do not re-fire
	_ = DataVersion.Value(b.node)
	return b, nil
}

// Node returns the glyph's property node.
func (b *base) Node() *props.Node { return b.node }

// Source returns the data source.
func (b *base) Source() *source.ColumnDataSource { return b.src }

// Spec returns the glyph's spec with defaults applied.
func (b *base) Spec() Spec { return b.spec }

// Visible reports whether the glyph is drawn.
func (b *base) Visible() bool { return Visible.Value(b.node) }

// SetVisible shows or hides the glyph.
func (b *base) SetVisible(v bool) error { return Visible.Set(b.node, v) }

// SetAlpha changes the glyph opacity.
func (b *base) SetAlpha(a float64) error { return Alpha.Set(b.node, a) }

// SetColor changes the glyph color.
func (b *base) SetColor(c gg.RGBA) error { return Color.Set(b.node, c) }

// LegendEntry returns the legend label and swatch color.
func (b *base) LegendEntry() (string, gg.RGBA) {
	c := Color.Value(b.node)
	c.A *= Alpha.Value(b.node)
	return b.spec.Legend, c
}

// Destroy detaches the glyph from its source.
func (b *base) Destroy() { b.node.Destroy() }

// column resolves a coordinate column for an axis, converting strings to
// synthetic coordinates when the axis is categorical.
func (b *base) column(name string, categorical bool, synth func([]string) ([]float64, error)) ([]float64, error) {
	if name == "" {
		return nil, ErrMissingColumn
	}
	if categorical {
		vs, err := b.src.Strings(name)
		if err != nil {
			return nil, err
		}
		return synth(vs)
	}
	return b.src.Column(name)
}

// data returns the Spec.X column and the given y column in data (or
// synthetic) coordinates.
func (b *base) data(p *ggplot.PlotView, ycol string) ([]float64, []float64, error) {
	xs, err := b.column(b.spec.X, p.XFactors() != nil, p.XSynthetic)
	if err != nil {
		return nil, nil, fmt.Errorf("x: %w", err)
	}
	ys, err := b.column(ycol, p.YFactors() != nil, p.YSynthetic)
	if err != nil {
		return nil, nil, fmt.Errorf("y: %w", err)
	}
	return xs, ys, nil
}

// points maps the Spec.X column and the given y column to device pixels.
func (b *base) points(p *ggplot.PlotView, ycol string) ([]float64, []float64, error) {
	xs, ys, err := b.data(p, ycol)
	if err != nil {
		return nil, nil, err
	}
	return p.MapToScreen(xs, ggplot.UnitsData, ys, ggplot.UnitsData)
}

func (b *base) selecting() bool {
	return len(source.Selected.Value(b.src.Node())) > 0
}

// rowColor returns the draw color of row i, fading unselected rows while a
// selection is active.
func (b *base) rowColor(i int, selecting bool) gg.RGBA {
	c := Color.Value(b.node)
	c.A *= Alpha.Value(b.node)
	if selecting && !b.src.IsSelected(i) {
		c.A *= NonselectionAlpha
	}
	return c
}

func setColor(dc *gg.Context, c gg.RGBA) {
	dc.SetRGBA(c.R, c.G, c.B, c.A)
}
