// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tool

import (
	"math"

	"github.com/gogpu/ggplot/internal/logging"
)

// ResizeTool changes the canvas size by dragging.
type ResizeTool struct {
	Name      string
	Modifier  Modifiers
	MinWidth  int
	MinHeight int

	target         Target
	startW, startH float64
}

// NewResizeTool creates a resize tool named "resize".
func NewResizeTool(t Target) *ResizeTool {
	return &ResizeTool{Name: "resize", MinWidth: 50, MinHeight: 50, target: t}
}

// Spec implements Tool.
func (rt *ResizeTool) Spec() Spec {
	return Spec{
		Name:     rt.Name,
		Gesture:  GestureDrag,
		Modifier: rt.Modifier,
		Bounds:   BoundsNone,
		Handlers: Handlers{
			OnDragStart:  rt.begin,
			OnDragUpdate: rt.update,
		},
	}
}

func (rt *ResizeTool) begin(DragEvent) {
	view := rt.target.View()
	rt.startW, rt.startH = view.OuterWidth(), view.OuterHeight()
}

func (rt *ResizeTool) update(e DragEvent) {
	dx, dy := e.Delta()
	w := math.Max(float64(rt.MinWidth), math.Round(rt.startW+dx))
	h := math.Max(float64(rt.MinHeight), math.Round(rt.startH+dy))
	if err := rt.target.Resize(int(w), int(h)); err != nil {
		logging.Logger().Warn("resize failed", "tool", rt.Name, "err", err)
	}
}
