// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tool

import "github.com/gogpu/ggplot/event"

// TwoPointGenerator turns pointer input into drag events for one tool.
//
// States: unarmed, dragging before the first move, dragging after it. A
// drag starts on mouse down while the tool is armed, or while its modifier
// is held and no tool is armed. The first move emits SetBasepoint at the
// mouse-down position, then every move emits UpdatingMouseMove. Mouse up,
// mouse leave, leaving the bounds, Escape, releasing the modifier and
// deactivation each end the drag with exactly one DragEnd.
type TwoPointGenerator struct {
	spec    Spec
	target  Target
	manager *Manager
	bus     *event.Bus

	dragging     bool
	basepointSet bool
	modActivated bool
	base         Point
	last         Point
	mods         Modifiers

	deactivated event.Handle
}

func newTwoPointGenerator(s Spec, t Target, m *Manager) *TwoPointGenerator {
	g := &TwoPointGenerator{spec: s, target: t, manager: m, bus: m.Bus()}
	g.deactivated = m.OnDeactivated(s.Name, func() { g.end(g.last) })
	return g
}

// Dragging reports whether a drag is in progress.
func (g *TwoPointGenerator) Dragging() bool { return g.dragging }

func (g *TwoPointGenerator) mouseDown(p Point, mods Modifiers) {
	if g.dragging || !inBounds(g.target, g.spec.Bounds, p) {
		return
	}
	armed := g.manager.IsArmed(g.spec.Name)
	if !armed && mods.Has(g.spec.Modifier) {
		armed = g.manager.TryActivate(g.spec.Name)
		g.modActivated = armed
	}
	if !armed {
		return
	}
	g.dragging = true
	g.basepointSet = false
	g.base, g.last, g.mods = p, p, mods
}

func (g *TwoPointGenerator) mouseMove(p Point, mods Modifiers) {
	if !g.dragging {
		return
	}
	if g.modActivated && !mods.Has(g.spec.Modifier) {
		g.end(g.last)
		return
	}
	if !inBounds(g.target, g.spec.Bounds, p) {
		g.end(g.last)
		return
	}
	g.last, g.mods = p, mods
	if !g.basepointSet {
		g.basepointSet = true
		g.emit(EventSetBasepoint, g.base)
		if !g.dragging {
			return
		}
	}
	g.emit(EventUpdatingMouseMove, p)
}

func (g *TwoPointGenerator) mouseUp(p Point) {
	if !g.dragging {
		return
	}
	if inBounds(g.target, g.spec.Bounds, p) {
		g.last = p
	}
	g.end(g.last)
}

func (g *TwoPointGenerator) mouseLeave() {
	g.end(g.last)
}

// claim records an explicit activation of the tool. A drag started by the
// modifier then keeps the tool armed when it ends.
func (g *TwoPointGenerator) claim() {
	g.modActivated = false
}

func (g *TwoPointGenerator) keyDown(k Key) {
	if k == KeyEscape {
		g.end(g.last)
	}
}

func (g *TwoPointGenerator) keyUp(k Key) {
	if g.modActivated && k.Modifier()&g.spec.Modifier != 0 {
		g.end(g.last)
	}
}

// end emits DragEnd once and returns to the unarmed state. A tool armed
// by its modifier is cleared afterwards.
func (g *TwoPointGenerator) end(p Point) {
	if !g.dragging {
		return
	}
	g.dragging = false
	moved := g.basepointSet
	g.basepointSet = false
	g.bus.Trigger(EventName(g.spec.Name, EventDragEnd), DragEvent{
		Tool:  g.spec.Name,
		Base:  g.base,
		Pos:   p,
		Mods:  g.mods,
		Moved: moved,
	})
	if g.modActivated {
		g.modActivated = false
		if g.manager.IsArmed(g.spec.Name) {
			g.manager.Clear()
		}
	}
}

func (g *TwoPointGenerator) emit(kind string, p Point) {
	if !g.manager.IsArmed(g.spec.Name) {
		return
	}
	g.bus.Trigger(EventName(g.spec.Name, kind), DragEvent{
		Tool: g.spec.Name,
		Base: g.base,
		Pos:  p,
		Mods: g.mods,
	})
}

func (g *TwoPointGenerator) close() {
	g.bus.Off(g.deactivated)
}
