// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tool

import "github.com/gogpu/ggplot/event"

// Overflow is a host scrolling mode.
type Overflow string

// OverflowHidden disables host scrolling.
const OverflowHidden Overflow = "hidden"

// ScrollHost is the container whose native scrolling competes with wheel
// zoom, such as a window or a scrollable panel.
type ScrollHost interface {
	Overflow() Overflow
	SetOverflow(Overflow)
}

// scrollHold is the suppression record of one host: the setting it had
// before the first holder and the number of generators holding it.
type scrollHold struct {
	saved   Overflow
	holders int
}

// scrollHolds is keyed by host, so ScrollHost implementations must be
// comparable. Pointer receivers are.
var scrollHolds = make(map[ScrollHost]*scrollHold)

func holdScroll(h ScrollHost) {
	rec := scrollHolds[h]
	if rec == nil {
		rec = &scrollHold{saved: h.Overflow()}
		scrollHolds[h] = rec
		h.SetOverflow(OverflowHidden)
	}
	rec.holders++
}

func releaseScroll(h ScrollHost) {
	rec := scrollHolds[h]
	if rec == nil {
		return
	}
	if rec.holders--; rec.holders > 0 {
		return
	}
	delete(scrollHolds, h)
	h.SetOverflow(rec.saved)
}

// WheelGenerator turns wheel ticks over the plot area into zoom events
// while its tool is armed. Host scrolling is disabled while armed. Plots
// sharing a host share one record of its original setting, which is
// restored when the last armed wheel tool on that host disarms.
type WheelGenerator struct {
	spec    Spec
	target  Target
	manager *Manager
	bus     *event.Bus

	host       ScrollHost
	suppressed bool

	handles []event.Handle
}

func newWheelGenerator(s Spec, t Target, m *Manager, host ScrollHost) *WheelGenerator {
	g := &WheelGenerator{spec: s, target: t, manager: m, bus: m.Bus(), host: host}
	g.handles = append(g.handles,
		m.OnActivated(s.Name, g.suppress),
		m.OnDeactivated(s.Name, g.restore),
	)
	if m.IsArmed(s.Name) {
		g.suppress()
	}
	return g
}

// Suppressed reports whether the generator currently holds the host's
// scrolling disabled.
func (g *WheelGenerator) Suppressed() bool { return g.suppressed }

func (g *WheelGenerator) setHost(h ScrollHost) {
	g.restore()
	g.host = h
	if g.manager.IsArmed(g.spec.Name) {
		g.suppress()
	}
}

func (g *WheelGenerator) suppress() {
	if g.suppressed || g.host == nil {
		return
	}
	holdScroll(g.host)
	g.suppressed = true
}

func (g *WheelGenerator) restore() {
	if !g.suppressed {
		return
	}
	releaseScroll(g.host)
	g.suppressed = false
}

func (g *WheelGenerator) wheel(p Point, delta float64) {
	if delta == 0 || !g.manager.IsArmed(g.spec.Name) {
		return
	}
	if !g.target.View().InnerRect().Contains(p.X, p.Y) {
		return
	}
	g.bus.Trigger(EventName(g.spec.Name, EventZoom), WheelEvent{
		Tool:  g.spec.Name,
		Pos:   p,
		Delta: delta,
	})
}

func (g *WheelGenerator) close() {
	g.restore()
	for _, h := range g.handles {
		g.bus.Off(h)
	}
	g.handles = nil
}
