// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tool

import (
	"fmt"

	"github.com/gogpu/ggplot/event"
)

type registered struct {
	spec    Spec
	drag    *TwoPointGenerator
	wheel   *WheelGenerator
	handles []event.Handle
}

// Surface is the input entry point of one plot. It owns the plot's bus,
// its Manager and one generator per tool. Hosts translate native input
// into calls on the surface.
type Surface struct {
	target  Target
	bus     *event.Bus
	manager *Manager
	host    ScrollHost

	tools []*registered
	mods  Modifiers
}

// NewSurface creates a surface for t with a fresh bus and an idle manager.
func NewSurface(t Target) *Surface {
	bus := event.NewBus()
	return &Surface{target: t, bus: bus, manager: NewManager(bus)}
}

// Bus returns the surface's event bus.
func (s *Surface) Bus() *event.Bus { return s.bus }

// Manager returns the surface's Active-Tool Manager.
func (s *Surface) Manager() *Manager { return s.manager }

// Target returns the plot the surface drives.
func (s *Surface) Target() Target { return s.target }

// SetScrollHost sets the host whose scrolling wheel tools suppress.
func (s *Surface) SetScrollHost(h ScrollHost) {
	s.host = h
	for _, r := range s.tools {
		if r.wheel != nil {
			r.wheel.setHost(h)
		}
	}
}

// Add registers a tool, wiring its handlers to the bus and creating its
// generator.
func (s *Surface) Add(t Tool) error {
	spec := t.Spec()
	if spec.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidSpec)
	}
	if s.lookup(spec.Name) != nil {
		return fmt.Errorf("%w: %q", ErrDuplicateTool, spec.Name)
	}
	r := &registered{spec: spec}
	h := spec.Handlers
	on := func(kind string, fn func(args ...any)) {
		r.handles = append(r.handles, s.bus.On(EventName(spec.Name, kind), fn))
	}
	if h.OnActivate != nil {
		on(EventActivated, func(...any) { h.OnActivate() })
	}
	if h.OnDeactivate != nil {
		on(EventDeactivated, func(...any) { h.OnDeactivate() })
	}
	drag := func(fn func(DragEvent)) func(args ...any) {
		return func(args ...any) {
			if e, ok := first[DragEvent](args); ok {
				fn(e)
			}
		}
	}

	switch spec.Gesture {
	case GestureDrag:
		if h.OnDragStart != nil {
			on(EventSetBasepoint, drag(h.OnDragStart))
		}
		if h.OnDragUpdate != nil {
			on(EventUpdatingMouseMove, drag(h.OnDragUpdate))
		}
		if h.OnDragEnd != nil {
			on(EventDragEnd, drag(h.OnDragEnd))
		}
		r.drag = newTwoPointGenerator(spec, s.target, s.manager)
	case GestureWheel:
		if h.OnWheel != nil {
			on(EventZoom, func(args ...any) {
				if e, ok := first[WheelEvent](args); ok {
					h.OnWheel(e)
				}
			})
		}
		r.wheel = newWheelGenerator(spec, s.target, s.manager, s.host)
	default:
		for _, hd := range r.handles {
			s.bus.Off(hd)
		}
		return fmt.Errorf("%w: gesture %d", ErrInvalidSpec, spec.Gesture)
	}
	s.tools = append(s.tools, r)
	return nil
}

func first[T any](args []any) (T, bool) {
	var zero T
	if len(args) == 0 {
		return zero, false
	}
	v, ok := args[0].(T)
	return v, ok
}

func (s *Surface) lookup(name string) *registered {
	for _, r := range s.tools {
		if r.spec.Name == name {
			return r
		}
	}
	return nil
}

// Tools returns the registered tool names in registration order.
func (s *Surface) Tools() []string {
	names := make([]string, len(s.tools))
	for i, r := range s.tools {
		names[i] = r.spec.Name
	}
	return names
}

// Activate arms a registered tool, as a toolbar button would.
func (s *Surface) Activate(name string) error {
	r := s.lookup(name)
	if r == nil {
		return fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
	s.manager.Activate(name)
	if r.drag != nil {
		r.drag.claim()
	}
	return nil
}

// Toggle arms name, or clears the manager when name is already armed.
func (s *Surface) Toggle(name string) error {
	if s.manager.IsArmed(name) {
		s.manager.Clear()
		return nil
	}
	return s.Activate(name)
}

// Dragging reports whether any drag is in progress.
func (s *Surface) Dragging() bool {
	for _, r := range s.tools {
		if r.drag != nil && r.drag.Dragging() {
			return true
		}
	}
	return false
}

// MouseDown handles a primary button press at (x, y).
func (s *Surface) MouseDown(x, y float64, mods Modifiers) {
	s.mods = mods
	for _, r := range s.drags() {
		r.mouseDown(Point{x, y}, mods)
	}
}

// MouseMove handles pointer motion.
func (s *Surface) MouseMove(x, y float64, mods Modifiers) {
	s.mods = mods
	for _, r := range s.drags() {
		r.mouseMove(Point{x, y}, mods)
	}
}

// MouseUp handles a primary button release.
func (s *Surface) MouseUp(x, y float64) {
	for _, r := range s.drags() {
		r.mouseUp(Point{x, y})
	}
}

// MouseLeave handles the pointer leaving the canvas.
func (s *Surface) MouseLeave() {
	for _, r := range s.drags() {
		r.mouseLeave()
	}
}

// KeyDown handles a key press.
func (s *Surface) KeyDown(k Key) {
	s.mods |= k.Modifier()
	for _, r := range s.drags() {
		r.keyDown(k)
	}
}

// KeyUp handles a key release.
func (s *Surface) KeyUp(k Key) {
	s.mods &^= k.Modifier()
	for _, r := range s.drags() {
		r.keyUp(k)
	}
}

// Wheel handles one wheel tick at (x, y). Positive delta scrolls up.
func (s *Surface) Wheel(x, y, delta float64) {
	for _, r := range s.tools {
		if r.wheel != nil {
			r.wheel.wheel(Point{x, y}, delta)
		}
	}
}

// Modifiers returns the modifiers seen with the latest input.
func (s *Surface) Modifiers() Modifiers { return s.mods }

func (s *Surface) drags() []*TwoPointGenerator {
	var gs []*TwoPointGenerator
	for _, r := range s.tools {
		if r.drag != nil {
			gs = append(gs, r.drag)
		}
	}
	return gs
}

// Close disarms the active tool, restores host scrolling and removes
// every subscription the surface made.
func (s *Surface) Close() {
	s.manager.Clear()
	for _, r := range s.tools {
		if r.drag != nil {
			r.drag.close()
		}
		if r.wheel != nil {
			r.wheel.close()
		}
		for _, h := range r.handles {
			s.bus.Off(h)
		}
	}
	s.tools = nil
}
