// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ebitenhost

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/layout"
	"github.com/gogpu/ggplot/mapper"
	"github.com/gogpu/ggplot/tool"
)

func newHost(t *testing.T) (*Host, *ggplot.PlotView) {
	t.Helper()
	p, err := ggplot.NewPlotView(200, 200, mapper.NewRange(0, 200), mapper.NewRange(0, 200),
		ggplot.WithMinBorder(layout.Padding{}), ggplot.WithFrameInterval(0))
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	h := New(p)
	clock := time.Unix(0, 0)
	h.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return h, p
}

func at(x, y float64) input { return input{x: x, y: y, inside: true} }

func TestHostDragPans(t *testing.T) {
	h, p := newHost(t)
	require.NoError(t, p.Surface().Add(tool.NewPanTool(p)))
	require.NoError(t, p.Surface().Activate("pan"))

	h.apply(at(100, 100))
	down := at(100, 100)
	down.pressed = true
	h.apply(down)
	move := at(110, 100)
	move.pressed = true
	h.apply(move)
	h.apply(at(110, 100))

	assert.InDelta(t, -10, p.XRange().Start(), 1e-9)
	assert.InDelta(t, 190, p.XRange().End(), 1e-9)
	assert.True(t, p.CanUndo())
	assert.Positive(t, p.Frames(), "host ticks the plot")
}

func TestHostShiftDragBoxZooms(t *testing.T) {
	h, p := newHost(t)
	bz := tool.NewBoxZoomTool(p, tool.Both)
	bz.Modifier = tool.ModShift
	require.NoError(t, p.Surface().Add(bz))

	step := func(x, y float64, pressed bool) {
		in := at(x, y)
		in.pressed, in.mods = pressed, tool.ModShift
		h.apply(in)
	}
	step(50, 50, false)
	step(50, 50, true)
	step(150, 150, true)
	_, dragging := bz.Box()
	assert.True(t, dragging)
	step(150, 150, false)
	h.apply(at(150, 150))

	assert.InDelta(t, 50, p.XRange().Start(), 1e-9)
	assert.InDelta(t, 150, p.XRange().End(), 1e-9)
	assert.InDelta(t, 50, p.YRange().Start(), 1e-9)
	assert.InDelta(t, 150, p.YRange().End(), 1e-9)
	assert.True(t, p.Surface().Manager().Idle(), "modifier activation is cleared")
}

func TestHostEscapeCancelsDrag(t *testing.T) {
	h, p := newHost(t)
	require.NoError(t, p.Surface().Add(tool.NewPanTool(p)))
	require.NoError(t, p.Surface().Activate("pan"))

	down := at(100, 100)
	down.pressed = true
	h.apply(down)
	move := at(130, 100)
	move.pressed = true
	h.apply(move)
	require.True(t, p.Surface().Dragging())

	move.escape = true
	h.apply(move)
	assert.False(t, p.Surface().Dragging())
}

func TestHostLeaveEndsDrag(t *testing.T) {
	h, p := newHost(t)
	require.NoError(t, p.Surface().Add(tool.NewPanTool(p)))
	require.NoError(t, p.Surface().Activate("pan"))

	down := at(100, 100)
	down.pressed = true
	h.apply(down)
	out := input{x: 250, y: 100, pressed: true}
	h.apply(out)
	assert.False(t, p.Surface().Dragging())
}

func TestHostWheelAndScrollHost(t *testing.T) {
	h, p := newHost(t)
	require.NoError(t, p.Surface().Add(tool.NewWheelZoomTool(p)))
	assert.Equal(t, tool.Overflow(""), h.Overflow())

	require.NoError(t, p.Surface().Activate("wheel_zoom"))
	assert.Equal(t, tool.OverflowHidden, h.Overflow())

	in := at(100, 100)
	in.wheel = 1
	h.apply(in)
	assert.Less(t, p.XRange().Span(), 200.0)

	outside := input{x: 300, y: 100, wheel: 1}
	span := p.XRange().Span()
	h.apply(outside)
	assert.Equal(t, span, p.XRange().Span(), "wheel outside the canvas is ignored")

	p.Surface().Manager().Clear()
	assert.Equal(t, tool.Overflow(""), h.Overflow())
}

func TestHostBindings(t *testing.T) {
	h, _ := newHost(t)
	calls := 0
	h.Bind(ebiten.KeyU, func() { calls++ })

	in := at(0, 0)
	in.triggered = []ebiten.Key{ebiten.KeyU, ebiten.KeyY}
	h.apply(in)
	assert.Equal(t, 1, calls)

	h.Bind(ebiten.KeyU, nil)
	h.apply(in)
	assert.Equal(t, 1, calls)
}

func TestRGBAPix(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(1, 0, color.NRGBA{R: 255, A: 255})
	pix := rgbaPix(img, nil)
	require.Len(t, pix, 8)
	assert.Equal(t, []byte{255, 0, 0, 255}, pix[4:])

	rgba := image.NewRGBA(image.Rect(0, 0, 2, 2))
	assert.Same(t, &rgba.Pix[0], &rgbaPix(rgba, nil)[0])
}
