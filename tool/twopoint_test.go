// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDragSurface(t *testing.T, mod Modifiers) (*Surface, *recorder) {
	t.Helper()
	s := NewSurface(newFakePlot(t))
	rec := &recorder{}
	require.NoError(t, s.Add(Spec{
		Name:     "pan",
		Gesture:  GestureDrag,
		Modifier: mod,
		Handlers: rec.handlers(),
	}))
	return s, rec
}

func TestTwoPointModifierScenario(t *testing.T) {
	s, rec := newDragSurface(t, ModShift)
	bus := recordBus(s.Bus(), "pan:activated", "pan:SetBasepoint", "pan:DragEnd", "pan:deactivated")

	s.MouseDown(100, 100, ModShift)
	s.MouseMove(150, 120, ModShift)
	s.MouseUp(150, 120)

	assert.Equal(t, []string{
		"SetBasepoint(100,100)",
		"UpdatingMouseMove(150,120)",
		"DragEnd",
	}, rec.events)
	assert.Equal(t, []string{"pan:activated", "pan:SetBasepoint", "pan:DragEnd", "pan:deactivated"}, *bus)
	assert.True(t, s.Manager().Idle(), "modifier activation is released on exit")

	rec.reset()
	s.MouseMove(160, 130, ModShift)
	s.MouseUp(160, 130)
	assert.Empty(t, rec.events, "no events after DragEnd")
}

func TestTwoPointExplicitActivationDuringModifierDrag(t *testing.T) {
	s, rec := newDragSurface(t, ModShift)

	s.MouseDown(100, 100, ModShift)
	s.MouseMove(150, 120, ModShift)
	require.NoError(t, s.Activate("pan"))
	s.MouseUp(150, 120)

	assert.Equal(t, []string{
		"SetBasepoint(100,100)",
		"UpdatingMouseMove(150,120)",
		"DragEnd",
	}, rec.events)
	assert.True(t, s.Manager().IsArmed("pan"), "the tool chosen mid-drag stays armed")

	rec.reset()
	s.MouseDown(10, 10, 0)
	s.MouseMove(20, 20, 0)
	s.MouseUp(20, 20)
	assert.Equal(t, []string{"SetBasepoint(10,10)", "UpdatingMouseMove(20,20)", "DragEnd"}, rec.events)
}

func TestTwoPointUnarmedIsDropped(t *testing.T) {
	s, rec := newDragSurface(t, ModShift)

	s.MouseDown(100, 100, 0)
	s.MouseMove(150, 120, 0)
	s.MouseUp(150, 120)
	assert.Empty(t, rec.events)
	assert.True(t, s.Manager().Idle())
}

func TestTwoPointButtonArmed(t *testing.T) {
	s, rec := newDragSurface(t, 0)
	require.NoError(t, s.Activate("pan"))

	s.MouseDown(10, 10, 0)
	s.MouseMove(20, 20, 0)
	s.MouseMove(30, 40, 0)
	s.MouseUp(30, 40)
	assert.Equal(t, []string{
		"SetBasepoint(10,10)",
		"UpdatingMouseMove(20,20)",
		"UpdatingMouseMove(30,40)",
		"DragEnd",
	}, rec.events)
	assert.True(t, s.Manager().IsArmed("pan"), "button activation survives the drag")
}

func TestTwoPointDoesNotStealFromSelectedTool(t *testing.T) {
	s, rec := newDragSurface(t, ModShift)
	require.NoError(t, s.Add(Spec{Name: "select", Gesture: GestureDrag}))
	require.NoError(t, s.Activate("select"))

	s.MouseDown(100, 100, ModShift)
	s.MouseMove(150, 120, ModShift)
	s.MouseUp(150, 120)
	assert.Empty(t, rec.events)
	assert.True(t, s.Manager().IsArmed("select"))
}

func TestTwoPointExitPaths(t *testing.T) {
	tests := []struct {
		name string
		exit func(s *Surface)
	}{
		{"mouse up", func(s *Surface) { s.MouseUp(150, 120) }},
		{"mouse leave", func(s *Surface) { s.MouseLeave() }},
		{"escape", func(s *Surface) { s.KeyDown(KeyEscape) }},
		{"modifier release", func(s *Surface) { s.KeyUp(KeyShift) }},
		{"modifier missing on move", func(s *Surface) { s.MouseMove(160, 120, 0) }},
		{"outside canvas", func(s *Surface) { s.MouseMove(500, 120, ModShift) }},
		{"other tool activated", func(s *Surface) { _ = s.Activate("other") }},
		{"cleared", func(s *Surface) { s.Manager().Clear() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, rec := newDragSurface(t, ModShift)
			require.NoError(t, s.Add(Spec{Name: "other", Gesture: GestureDrag}))

			s.MouseDown(100, 100, ModShift)
			s.MouseMove(150, 120, ModShift)
			tt.exit(s)

			assert.Equal(t, []string{
				"SetBasepoint(100,100)",
				"UpdatingMouseMove(150,120)",
				"DragEnd",
			}, rec.events)
			assert.False(t, s.Dragging())

			rec.reset()
			s.MouseMove(170, 130, ModShift)
			s.MouseUp(170, 130)
			s.MouseLeave()
			assert.Empty(t, rec.events, "exactly one DragEnd and nothing after it")
		})
	}
}

func TestTwoPointClickWithoutMove(t *testing.T) {
	s := NewSurface(newFakePlot(t))
	var ends []DragEvent
	require.NoError(t, s.Add(Spec{
		Name:    "pan",
		Gesture: GestureDrag,
		Handlers: Handlers{
			OnDragStart: func(DragEvent) { t.Error("unexpected SetBasepoint") },
			OnDragEnd:   func(e DragEvent) { ends = append(ends, e) },
		},
	}))
	require.NoError(t, s.Activate("pan"))

	s.MouseDown(50, 50, 0)
	s.MouseUp(50, 50)
	require.Len(t, ends, 1)
	assert.False(t, ends[0].Moved)
	assert.Equal(t, Point{50, 50}, ends[0].Base)
}

func TestTwoPointIgnoresDownOutsideBounds(t *testing.T) {
	p := newFakePlot(t)
	require.NoError(t, p.view.SetMinBorder(layout20()))
	s := NewSurface(p)
	rec := &recorder{}
	require.NoError(t, s.Add(Spec{Name: "pan", Gesture: GestureDrag, Bounds: BoundsInner, Handlers: rec.handlers()}))
	require.NoError(t, s.Activate("pan"))

	s.MouseDown(5, 5, 0) // in the border
	s.MouseMove(100, 100, 0)
	s.MouseUp(100, 100)
	assert.Empty(t, rec.events)
}

func TestSurfaceAddValidation(t *testing.T) {
	s := NewSurface(newFakePlot(t))
	assert.ErrorIs(t, s.Add(Spec{}), ErrInvalidSpec)
	assert.ErrorIs(t, s.Add(Spec{Name: "x", Gesture: Gesture(9)}), ErrInvalidSpec)
	require.NoError(t, s.Add(Spec{Name: "x"}))
	assert.ErrorIs(t, s.Add(Spec{Name: "x"}), ErrDuplicateTool)
	assert.ErrorIs(t, s.Activate("nope"), ErrUnknownTool)
	assert.Equal(t, []string{"x"}, s.Tools())
}
