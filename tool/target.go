// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tool

import (
	"github.com/gogpu/ggplot/internal/logging"
	"github.com/gogpu/ggplot/layout"
	"github.com/gogpu/ggplot/mapper"
)

// Target is the plot a tool acts on.
type Target interface {
	View() *layout.ViewState

	// XRange and YRange return nil for categorical axes.
	XRange() *mapper.Range
	YRange() *mapper.Range
	XMapper() mapper.Mapper
	YMapper() mapper.Mapper

	Pause()
	Unpause(noRender bool) error
	RequestRedraw()
	PushState()
	Resize(width, height int) error
}

// setInterval writes r on behalf of the named tool. A failed write is
// logged and leaves r unchanged.
func setInterval(tool string, r *mapper.Range, start, end float64) {
	if err := r.SetInterval(start, end); err != nil {
		logging.Logger().Warn("range update failed", "tool", tool, "range", r.Node().ID(), "err", err)
	}
}

func unpause(tool string, t Target) {
	if err := t.Unpause(false); err != nil {
		logging.Logger().Warn("unpause failed", "tool", tool, "err", err)
	}
}

// Gesture selects the generator driving a tool.
type Gesture int

// Gestures.
const (
	GestureDrag Gesture = iota
	GestureWheel
)

// Bounds limits where a drag may start and continue.
type Bounds int

// Drag bounds.
const (
	// BoundsInner keeps drags inside the plot area.
	BoundsInner Bounds = iota
	// BoundsOuter keeps drags inside the canvas.
	BoundsOuter
	// BoundsNone never ends a drag for position.
	BoundsNone
)

// DragEvent is delivered to drag handlers.
type DragEvent struct {
	Tool string
	Base Point // mouse-down position
	Pos  Point // current position
	Mods Modifiers

	// Moved is set on DragEnd when SetBasepoint was emitted, that is when
	// the pointer moved at least once during the drag.
	Moved bool
}

// Delta returns Pos - Base.
func (e DragEvent) Delta() (dx, dy float64) {
	return e.Pos.X - e.Base.X, e.Pos.Y - e.Base.Y
}

// WheelEvent is delivered to wheel handlers. Delta is positive for
// scrolling up (zoom in).
type WheelEvent struct {
	Tool  string
	Pos   Point
	Delta float64
}

// Handlers are the behavior callbacks of a tool. Nil callbacks are
// skipped.
type Handlers struct {
	OnActivate   func()
	OnDeactivate func()
	OnDragStart  func(DragEvent) // SetBasepoint
	OnDragUpdate func(DragEvent) // UpdatingMouseMove
	OnDragEnd    func(DragEvent) // DragEnd
	OnWheel      func(WheelEvent)
}

// Spec registers a tool with a surface.
type Spec struct {
	Name    string
	Gesture Gesture

	// Modifier, when set, starts a drag while held even if the tool is not
	// armed, provided no other tool is.
	Modifier Modifiers
	Bounds   Bounds

	Handlers Handlers
}

// Spec returns s, so a Spec is itself a Tool.
func (s Spec) Spec() Spec { return s }

// Tool is anything that can describe itself as a Spec.
type Tool interface {
	Spec() Spec
}

func inBounds(t Target, b Bounds, p Point) bool {
	switch b {
	case BoundsInner:
		return t.View().InnerRect().Contains(p.X, p.Y)
	case BoundsOuter:
		return t.View().OuterRect().Contains(p.X, p.Y)
	}
	return true
}
