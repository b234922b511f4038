// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tool

import (
	"math"

	"github.com/gogpu/ggplot/internal/logging"
	"github.com/gogpu/ggplot/layout"
	"github.com/gogpu/ggplot/mapper"
)

// DataBox is a rectangle in data coordinates with X0 <= X1 and Y0 <= Y1.
// Categorical axes use synthetic coordinates.
type DataBox struct {
	X0, X1, Y0, Y1 float64
}

// Contains reports whether (x, y) lies inside b, edges included.
func (b DataBox) Contains(x, y float64) bool {
	return x >= b.X0 && x <= b.X1 && y >= b.Y0 && y <= b.Y1
}

// rubberBand tracks the rectangle drawn by a box drag.
type rubberBand struct {
	target     Target
	dimensions Dimensions
	active     bool
	base, cur  Point
}

func (rb *rubberBand) start(e DragEvent) {
	rb.active = true
	rb.base, rb.cur = e.Base, e.Base
	rb.target.RequestRedraw()
}

func (rb *rubberBand) update(e DragEvent) {
	rb.cur = e.Pos
	rb.target.RequestRedraw()
}

func (rb *rubberBand) stop() {
	rb.active = false
	rb.target.RequestRedraw()
}

// rect returns the band clipped to the plot area, spanning the whole area
// along axes outside the tool's dimensions.
func (rb *rubberBand) rect() layout.Rect {
	inner := rb.target.View().InnerRect()
	x0, x1 := inner.X, inner.X+inner.W
	y0, y1 := inner.Y, inner.Y+inner.H
	if rb.dimensions.x() {
		x0 = clamp(math.Min(rb.base.X, rb.cur.X), inner.X, inner.X+inner.W)
		x1 = clamp(math.Max(rb.base.X, rb.cur.X), inner.X, inner.X+inner.W)
	}
	if rb.dimensions.y() {
		y0 = clamp(math.Min(rb.base.Y, rb.cur.Y), inner.Y, inner.Y+inner.H)
		y1 = clamp(math.Max(rb.base.Y, rb.cur.Y), inner.Y, inner.Y+inner.H)
	}
	return layout.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// box returns the data-space box under the band.
func (rb *rubberBand) box() (DataBox, error) {
	r := rb.rect()
	view := rb.target.View()
	x0, x1, err := invert(rb.target.XMapper(), view.DeviceToSX(r.X), view.DeviceToSX(r.X+r.W))
	if err != nil {
		return DataBox{}, err
	}
	y0, y1, err := invert(rb.target.YMapper(), view.DeviceToSY(r.Y+r.H), view.DeviceToSY(r.Y))
	if err != nil {
		return DataBox{}, err
	}
	return DataBox{X0: x0, X1: x1, Y0: y0, Y1: y1}, nil
}

func invert(m mapper.Mapper, a, b float64) (float64, float64, error) {
	va, err := m.FromTarget(a)
	if err != nil {
		return 0, 0, err
	}
	vb, err := m.FromTarget(b)
	if err != nil {
		return 0, 0, err
	}
	return math.Min(va, vb), math.Max(va, vb), nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// BoxZoomTool zooms the data ranges to a dragged rectangle.
type BoxZoomTool struct {
	Name     string
	Modifier Modifiers

	band rubberBand
}

// NewBoxZoomTool creates a box zoom tool named "box_zoom".
func NewBoxZoomTool(t Target, dims Dimensions) *BoxZoomTool {
	return &BoxZoomTool{Name: "box_zoom", band: rubberBand{target: t, dimensions: dims}}
}

// Box returns the rectangle being dragged in device pixels.
func (bz *BoxZoomTool) Box() (layout.Rect, bool) {
	return bz.band.rect(), bz.band.active
}

// Spec implements Tool.
func (bz *BoxZoomTool) Spec() Spec {
	return Spec{
		Name:     bz.Name,
		Gesture:  GestureDrag,
		Modifier: bz.Modifier,
		Bounds:   BoundsInner,
		Handlers: Handlers{
			OnDragStart:  bz.band.start,
			OnDragUpdate: bz.band.update,
			OnDragEnd:    bz.end,
		},
	}
}

func (bz *BoxZoomTool) end(e DragEvent) {
	defer bz.band.stop()
	if !e.Moved {
		return
	}
	r := bz.band.rect()
	if r.Empty() {
		return
	}
	b, err := bz.band.box()
	if err != nil {
		logging.Logger().Warn("box zoom failed", "tool", bz.Name, "err", err)
		return
	}
	t := bz.band.target
	t.Pause()
	if xr := t.XRange(); xr != nil && bz.band.dimensions.x() {
		setOriented(bz.Name, xr, b.X0, b.X1)
	}
	if yr := t.YRange(); yr != nil && bz.band.dimensions.y() {
		setOriented(bz.Name, yr, b.Y0, b.Y1)
	}
	unpause(bz.Name, t)
	t.PushState()
}

// setOriented sets r to [lo, hi], keeping a flipped range flipped.
func setOriented(tool string, r *mapper.Range, lo, hi float64) {
	if r.Flipped() {
		lo, hi = hi, lo
	}
	setInterval(tool, r, lo, hi)
}

// BoxSelectTool reports the data box under a dragged rectangle.
type BoxSelectTool struct {
	Name     string
	Modifier Modifiers

	// OnSelect receives the selected box when the drag ends.
	OnSelect func(DataBox)

	band rubberBand
}

// NewBoxSelectTool creates a box select tool named "box_select".
func NewBoxSelectTool(t Target, dims Dimensions, onSelect func(DataBox)) *BoxSelectTool {
	return &BoxSelectTool{
		Name:     "box_select",
		OnSelect: onSelect,
		band:     rubberBand{target: t, dimensions: dims},
	}
}

// Box returns the rectangle being dragged in device pixels.
func (bs *BoxSelectTool) Box() (layout.Rect, bool) {
	return bs.band.rect(), bs.band.active
}

// Spec implements Tool.
func (bs *BoxSelectTool) Spec() Spec {
	return Spec{
		Name:     bs.Name,
		Gesture:  GestureDrag,
		Modifier: bs.Modifier,
		Bounds:   BoundsInner,
		Handlers: Handlers{
			OnDragStart:  bs.band.start,
			OnDragUpdate: bs.band.update,
			OnDragEnd:    bs.end,
		},
	}
}

func (bs *BoxSelectTool) end(e DragEvent) {
	defer bs.band.stop()
	if !e.Moved || bs.OnSelect == nil {
		return
	}
	b, err := bs.band.box()
	if err != nil {
		return
	}
	bs.OnSelect(b)
}
