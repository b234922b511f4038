// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tool

import (
	"math"

	"github.com/gogpu/ggplot/internal/logging"
	"github.com/gogpu/ggplot/mapper"
)

// WheelZoomTool zooms around the pointer on wheel ticks. The data point
// under the pointer stays fixed.
type WheelZoomTool struct {
	Name       string
	Dimensions Dimensions

	// Speed is the zoom fraction per unit of wheel delta.
	Speed float64

	target Target
}

// NewWheelZoomTool creates a wheel zoom tool named "wheel_zoom".
func NewWheelZoomTool(t Target) *WheelZoomTool {
	return &WheelZoomTool{Name: "wheel_zoom", Speed: 0.1, target: t}
}

// Spec implements Tool.
func (wz *WheelZoomTool) Spec() Spec {
	return Spec{
		Name:     wz.Name,
		Gesture:  GestureWheel,
		Handlers: Handlers{OnWheel: wz.zoom},
	}
}

func (wz *WheelZoomTool) zoom(e WheelEvent) {
	factor := clamp(wz.Speed*e.Delta, -0.9, 0.9)
	view := wz.target.View()
	wz.target.Pause()
	if r := wz.target.XRange(); r != nil && wz.Dimensions.x() {
		wz.zoomRange(r, wz.target.XMapper(), view.DeviceToSX(e.Pos.X), factor)
	}
	if r := wz.target.YRange(); r != nil && wz.Dimensions.y() {
		wz.zoomRange(r, wz.target.YMapper(), view.DeviceToSY(e.Pos.Y), factor)
	}
	unpause(wz.Name, wz.target)
	wz.target.PushState()
}

// zoomRange scales r by (1 - factor) around the data value at screen
// position s.
func (wz *WheelZoomTool) zoomRange(r *mapper.Range, m mapper.Mapper, s, factor float64) {
	c, err := m.FromTarget(s)
	if err != nil {
		logging.Logger().Warn("wheel zoom failed", "tool", wz.Name, "err", err)
		return
	}
	if math.IsNaN(c) {
		return
	}
	k := 1 - factor
	start := c - (c-r.Start())*k
	end := c + (r.End()-c)*k
	if start == end {
		return
	}
	setInterval(wz.Name, r, start, end)
}
