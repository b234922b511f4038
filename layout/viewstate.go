// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/gogpu/ggplot/event"
	"github.com/gogpu/ggplot/internal/logging"
	"github.com/gogpu/ggplot/mapper"
	"github.com/gogpu/ggplot/props"
)

// Side names one edge of the canvas.
type Side int

// Canvas sides.
const (
	Top Side = iota
	Bottom
	Left
	Right
)

var sideNames = [...]string{"top", "bottom", "left", "right"}

func (s Side) String() string {
	if s < Top || s > Right {
		return fmt.Sprintf("Side(%d)", int(s))
	}
	return sideNames[s]
}

// ViewState property keys.
var (
	OuterWidth  = props.NewKey[float64]("outer_width")
	OuterHeight = props.NewKey[float64]("outer_height")

	MinBorderTop    = props.NewKey[float64]("min_border_top")
	MinBorderBottom = props.NewKey[float64]("min_border_bottom")
	MinBorderLeft   = props.NewKey[float64]("min_border_left")
	MinBorderRight  = props.NewKey[float64]("min_border_right")

	RequestedBorderTop    = props.NewKey[float64]("requested_border_top")
	RequestedBorderBottom = props.NewKey[float64]("requested_border_bottom")
	RequestedBorderLeft   = props.NewKey[float64]("requested_border_left")
	RequestedBorderRight  = props.NewKey[float64]("requested_border_right")

	BorderTop    = props.NewKey[float64]("border_top")
	BorderBottom = props.NewKey[float64]("border_bottom")
	BorderLeft   = props.NewKey[float64]("border_left")
	BorderRight  = props.NewKey[float64]("border_right")

	InnerWidth  = props.NewKey[float64]("inner_width")
	InnerHeight = props.NewKey[float64]("inner_height")

	OverflowHorizontal = props.NewKey[bool]("overflow_horizontal")
	OverflowVertical   = props.NewKey[bool]("overflow_vertical")
)

var (
	minBorderKeys       = [...]props.Key[float64]{MinBorderTop, MinBorderBottom, MinBorderLeft, MinBorderRight}
	requestedBorderKeys = [...]props.Key[float64]{RequestedBorderTop, RequestedBorderBottom, RequestedBorderLeft, RequestedBorderRight}
	borderKeys          = [...]props.Key[float64]{BorderTop, BorderBottom, BorderLeft, BorderRight}
)

var viewSeq atomic.Uint64

// ViewState holds the canvas geometry of one plot.
type ViewState struct {
	node *props.Node

	innerH *mapper.Range
	innerV *mapper.Range

	pending   Padding
	inPadding bool
}

// NewViewState creates a view state for a width x height canvas with the
// given minimum borders. Requested borders start at zero.
func NewViewState(width, height float64, minBorder Padding) *ViewState {
	n := props.NewNode(fmt.Sprintf("view%d", viewSeq.Add(1)))
	OuterWidth.Init(n, width)
	OuterHeight.Init(n, height)
	for s := Top; s <= Right; s++ {
		minBorderKeys[s].Init(n, minBorder.Get(s))
		requestedBorderKeys[s].Init(n, 0)
	}

	vs := &ViewState{node: n}
	for s := Top; s <= Right; s++ {
		lo, req := minBorderKeys[s], requestedBorderKeys[s]
		must(borderKeys[s].Define(n, func() (float64, error) {
			return math.Max(lo.Value(n), req.Value(n)), nil
		}, props.DependsOn(lo.Of(n), req.Of(n))))
	}

	hdeps := props.DependsOn(OuterWidth.Of(n), BorderLeft.Of(n), BorderRight.Of(n))
	vdeps := props.DependsOn(OuterHeight.Of(n), BorderTop.Of(n), BorderBottom.Of(n))
	must(InnerWidth.Define(n, func() (float64, error) {
		return math.Max(0, vs.rawInnerWidth()), nil
	}, hdeps))
	must(InnerHeight.Define(n, func() (float64, error) {
		return math.Max(0, vs.rawInnerHeight()), nil
	}, vdeps))
	must(OverflowHorizontal.Define(n, func() (bool, error) {
		return vs.rawInnerWidth() < 0, nil
	}, hdeps))
	must(OverflowVertical.Define(n, func() (bool, error) {
		return vs.rawInnerHeight() < 0, nil
	}, vdeps))

	left, bottom := vs.BorderLeft(), vs.BorderBottom()
	vs.innerH = mapper.NewNamedRange(n.ID()+".inner_h", left, left+vs.InnerWidth())
	vs.innerV = mapper.NewNamedRange(n.ID()+".inner_v", bottom, bottom+vs.InnerHeight())

	n.OnChange(BorderLeft.Name(), vs.syncHorizontal)
	n.OnChange(InnerWidth.Name(), vs.syncHorizontal)
	n.OnChange(BorderBottom.Name(), vs.syncVertical)
	n.OnChange(InnerHeight.Name(), vs.syncVertical)
	n.OnChange(OverflowHorizontal.Name(), vs.warnOverflow)
	n.OnChange(OverflowVertical.Name(), vs.warnOverflow)
	return vs
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func (vs *ViewState) rawInnerWidth() float64 {
	return OuterWidth.Value(vs.node) - BorderLeft.Value(vs.node) - BorderRight.Value(vs.node)
}

func (vs *ViewState) rawInnerHeight() float64 {
	return OuterHeight.Value(vs.node) - BorderTop.Value(vs.node) - BorderBottom.Value(vs.node)
}

func (vs *ViewState) syncHorizontal() {
	left := vs.BorderLeft()
	_ = vs.innerH.SetInterval(left, left+vs.InnerWidth())
}

func (vs *ViewState) syncVertical() {
	bottom := vs.BorderBottom()
	_ = vs.innerV.SetInterval(bottom, bottom+vs.InnerHeight())
}

func (vs *ViewState) warnOverflow() {
	if err := vs.Err(); err != nil {
		logging.Logger().Warn("layout overflow", "view", vs.node.ID(), "err", err)
	}
}

// Node returns the property node backing the view state.
func (vs *ViewState) Node() *props.Node { return vs.node }

// OuterWidth returns the canvas width.
func (vs *ViewState) OuterWidth() float64 { return OuterWidth.Value(vs.node) }

// OuterHeight returns the canvas height.
func (vs *ViewState) OuterHeight() float64 { return OuterHeight.Value(vs.node) }

// SetOuterSize resizes the canvas.
func (vs *ViewState) SetOuterSize(width, height float64) error {
	if err := OuterWidth.Set(vs.node, width); err != nil {
		return err
	}
	return OuterHeight.Set(vs.node, height)
}

// MinBorder returns the hard minimum borders.
func (vs *ViewState) MinBorder() Padding { return vs.read(minBorderKeys) }

// SetMinBorder replaces the hard minimum borders.
func (vs *ViewState) SetMinBorder(p Padding) error { return vs.write(minBorderKeys, p) }

// RequestedBorder returns the soft borders written by the last committed
// padding pass.
func (vs *ViewState) RequestedBorder() Padding { return vs.read(requestedBorderKeys) }

// SetRequestedBorder writes the soft borders directly, bypassing padding
// negotiation.
func (vs *ViewState) SetRequestedBorder(p Padding) error { return vs.write(requestedBorderKeys, p) }

// Border returns the resolved borders, max(min, requested) per side.
func (vs *ViewState) Border() Padding { return vs.read(borderKeys) }

// BorderTop returns the resolved top border.
func (vs *ViewState) BorderTop() float64 { return BorderTop.Value(vs.node) }

// BorderBottom returns the resolved bottom border.
func (vs *ViewState) BorderBottom() float64 { return BorderBottom.Value(vs.node) }

// BorderLeft returns the resolved left border.
func (vs *ViewState) BorderLeft() float64 { return BorderLeft.Value(vs.node) }

// BorderRight returns the resolved right border.
func (vs *ViewState) BorderRight() float64 { return BorderRight.Value(vs.node) }

// InnerWidth returns the width of the plot area, never negative.
func (vs *ViewState) InnerWidth() float64 { return InnerWidth.Value(vs.node) }

// InnerHeight returns the height of the plot area, never negative.
func (vs *ViewState) InnerHeight() float64 { return InnerHeight.Value(vs.node) }

// Empty reports whether the plot area has no extent on either axis.
func (vs *ViewState) Empty() bool {
	return vs.InnerWidth() <= 0 || vs.InnerHeight() <= 0
}

// InnerRangeHorizontal returns the horizontal pixel range of the plot
// area, [border_left, border_left+inner_width]. The same Range is returned
// for the life of the view state.
func (vs *ViewState) InnerRangeHorizontal() *mapper.Range { return vs.innerH }

// InnerRangeVertical returns the vertical pixel range of the plot area in
// y-up coordinates, [border_bottom, border_bottom+inner_height]. The same
// Range is returned for the life of the view state.
func (vs *ViewState) InnerRangeVertical() *mapper.Range { return vs.innerV }

// Err returns a *LayoutOverflowError when opposing borders exceed the
// outer size, and nil otherwise.
func (vs *ViewState) Err() error {
	h := OverflowHorizontal.Value(vs.node)
	v := OverflowVertical.Value(vs.node)
	if !h && !v {
		return nil
	}
	return &LayoutOverflowError{
		Horizontal:  h,
		Vertical:    v,
		OuterWidth:  vs.OuterWidth(),
		OuterHeight: vs.OuterHeight(),
		Border:      vs.Border(),
	}
}

// OnChange subscribes fn to any geometry change.
func (vs *ViewState) OnChange(fn func()) event.Handle {
	return vs.node.OnAnyChange(func(props.Name) { fn() })
}

// Destroy releases the node and its inner ranges.
func (vs *ViewState) Destroy() {
	vs.innerH.Node().Destroy()
	vs.innerV.Node().Destroy()
	vs.node.Destroy()
}

func (vs *ViewState) read(keys [4]props.Key[float64]) Padding {
	var p Padding
	for s := Top; s <= Right; s++ {
		p.Set(s, keys[s].Value(vs.node))
	}
	return p
}

func (vs *ViewState) write(keys [4]props.Key[float64], p Padding) error {
	for s := Top; s <= Right; s++ {
		if err := keys[s].Set(vs.node, p.Get(s)); err != nil {
			return err
		}
	}
	return nil
}
