// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tool

import "github.com/gogpu/ggplot/mapper"

// Dimensions selects the axes a tool acts on.
type Dimensions int

// Dimensions.
const (
	Both Dimensions = iota
	Width
	Height
)

func (d Dimensions) x() bool { return d != Height }
func (d Dimensions) y() bool { return d != Width }

// PanTool drags the data ranges with the pointer.
type PanTool struct {
	Name       string
	Dimensions Dimensions
	Modifier   Modifiers

	target Target
	startX mapper.Interval
	startY mapper.Interval
}

// NewPanTool creates a pan tool named "pan" over both axes.
func NewPanTool(t Target) *PanTool {
	return &PanTool{Name: "pan", target: t}
}

// Spec implements Tool.
func (pt *PanTool) Spec() Spec {
	return Spec{
		Name:     pt.Name,
		Gesture:  GestureDrag,
		Modifier: pt.Modifier,
		Bounds:   BoundsInner,
		Handlers: Handlers{
			OnDragStart:  pt.start,
			OnDragUpdate: pt.update,
			OnDragEnd:    pt.end,
		},
	}
}

func (pt *PanTool) start(DragEvent) {
	if r := pt.target.XRange(); r != nil {
		pt.startX = r.Interval()
	}
	if r := pt.target.YRange(); r != nil {
		pt.startY = r.Interval()
	}
}

func (pt *PanTool) update(e DragEvent) {
	view := pt.target.View()
	dx, dy := e.Delta()
	pt.target.Pause()
	if r := pt.target.XRange(); r != nil && pt.Dimensions.x() && view.InnerWidth() > 0 {
		shift := -dx * (pt.startX.End - pt.startX.Start) / view.InnerWidth()
		setInterval(pt.Name, r, pt.startX.Start+shift, pt.startX.End+shift)
	}
	if r := pt.target.YRange(); r != nil && pt.Dimensions.y() && view.InnerHeight() > 0 {
		// device y grows downward
		shift := dy * (pt.startY.End - pt.startY.Start) / view.InnerHeight()
		setInterval(pt.Name, r, pt.startY.Start+shift, pt.startY.End+shift)
	}
	unpause(pt.Name, pt.target)
}

func (pt *PanTool) end(e DragEvent) {
	if e.Moved {
		pt.target.PushState()
	}
}
