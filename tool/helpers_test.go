// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tool

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggplot/event"
	"github.com/gogpu/ggplot/layout"
	"github.com/gogpu/ggplot/mapper"
)

// fakePlot is a Target with a 400x300 canvas, no borders and data ranges
// equal to pixel ranges: x data == device x, y data == 300 - device y.
type fakePlot struct {
	view   *layout.ViewState
	x, y   *mapper.Range
	xm, ym *mapper.LinearMapper

	paused  int
	redraws int
	pushes  int
	resized []string
}

func newFakePlot(t *testing.T) *fakePlot {
	t.Helper()
	view := layout.NewViewState(400, 300, layout.Padding{})
	x := mapper.NewRange(0, 400)
	y := mapper.NewRange(0, 300)
	xm, err := mapper.NewLinearMapper(x, view.InnerRangeHorizontal())
	require.NoError(t, err)
	ym, err := mapper.NewLinearMapper(y, view.InnerRangeVertical())
	require.NoError(t, err)
	return &fakePlot{view: view, x: x, y: y, xm: xm, ym: ym}
}

func (f *fakePlot) View() *layout.ViewState { return f.view }
func (f *fakePlot) XRange() *mapper.Range   { return f.x }
func (f *fakePlot) YRange() *mapper.Range   { return f.y }
func (f *fakePlot) XMapper() mapper.Mapper  { return f.xm }
func (f *fakePlot) YMapper() mapper.Mapper  { return f.ym }
func (f *fakePlot) Pause()                  { f.paused++ }
func (f *fakePlot) RequestRedraw()          { f.redraws++ }
func (f *fakePlot) PushState()              { f.pushes++ }

func (f *fakePlot) Unpause(bool) error {
	if f.paused == 0 {
		return fmt.Errorf("not paused")
	}
	f.paused--
	return nil
}

func (f *fakePlot) Resize(w, h int) error {
	f.resized = append(f.resized, fmt.Sprintf("%dx%d", w, h))
	return f.view.SetOuterSize(float64(w), float64(h))
}

// recorder collects drag events as short strings.
type recorder struct {
	events []string
}

func (r *recorder) handlers() Handlers {
	return Handlers{
		OnDragStart: func(e DragEvent) {
			r.events = append(r.events, fmt.Sprintf("SetBasepoint(%g,%g)", e.Pos.X, e.Pos.Y))
		},
		OnDragUpdate: func(e DragEvent) {
			r.events = append(r.events, fmt.Sprintf("UpdatingMouseMove(%g,%g)", e.Pos.X, e.Pos.Y))
		},
		OnDragEnd: func(DragEvent) {
			r.events = append(r.events, "DragEnd")
		},
		OnWheel: func(e WheelEvent) {
			r.events = append(r.events, fmt.Sprintf("zoom(%g)", e.Delta))
		},
	}
}

func (r *recorder) reset() { r.events = nil }

// recordBus collects the named bus events in order.
func recordBus(bus *event.Bus, names ...string) *[]string {
	var got []string
	for _, name := range names {
		bus.On(name, func(...any) { got = append(got, name) })
	}
	return &got
}

func layout20() layout.Padding { return layout.Uniform(20) }
