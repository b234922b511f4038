// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tool

import (
	"github.com/gogpu/ggplot/event"
	"github.com/gogpu/ggplot/internal/logging"
)

// Event kinds. Bus event names are "<tool>:<kind>", see EventName.
const (
	EventActivated         = "activated"
	EventDeactivated       = "deactivated"
	EventSetBasepoint      = "SetBasepoint"
	EventUpdatingMouseMove = "UpdatingMouseMove"
	EventDragEnd           = "DragEnd"
	EventZoom              = "zoom"
)

// EventName returns the bus event name for kind on the named tool.
func EventName(tool, kind string) string {
	return tool + ":" + kind
}

// Manager guarantees that at most one tool is armed. It is either idle or
// armed with exactly one tool name.
type Manager struct {
	bus    *event.Bus
	active string
	armed  bool
}

// NewManager creates an idle manager emitting on bus.
func NewManager(bus *event.Bus) *Manager {
	return &Manager{bus: bus}
}

// Bus returns the bus the manager emits on.
func (m *Manager) Bus() *event.Bus { return m.bus }

// Active returns the armed tool.
func (m *Manager) Active() (string, bool) {
	return m.active, m.armed
}

// Idle reports whether no tool is armed.
func (m *Manager) Idle() bool { return !m.armed }

// IsArmed reports whether name is the armed tool.
func (m *Manager) IsArmed(name string) bool {
	return m.armed && m.active == name
}

// Activate arms name. The previously armed tool, if any, receives
// "<prev>:deactivated" before "<name>:activated" is emitted. Activating
// the armed tool again does nothing. An empty name is Clear.
func (m *Manager) Activate(name string) {
	if name == "" {
		m.Clear()
		return
	}
	if m.IsArmed(name) {
		return
	}
	m.disarm()
	m.active, m.armed = name, true
	logging.Logger().Debug("tool activated", "tool", name)
	m.bus.Trigger(EventName(name, EventActivated), name)
}

// Clear disarms the armed tool, emitting "<name>:deactivated".
func (m *Manager) Clear() {
	m.disarm()
}

// TryActivate arms name only when the manager is idle and reports whether
// it did. Gestures started by a modifier key use it so that they never
// take over from a tool the user selected.
func (m *Manager) TryActivate(name string) bool {
	if m.armed || name == "" {
		return false
	}
	m.Activate(name)
	return true
}

// OnActivated subscribes fn to the activation of name.
func (m *Manager) OnActivated(name string, fn func()) event.Handle {
	return m.bus.On(EventName(name, EventActivated), func(...any) { fn() })
}

// OnDeactivated subscribes fn to the deactivation of name.
func (m *Manager) OnDeactivated(name string, fn func()) event.Handle {
	return m.bus.On(EventName(name, EventDeactivated), func(...any) { fn() })
}

func (m *Manager) disarm() {
	if !m.armed {
		return
	}
	prev := m.active
	m.active, m.armed = "", false
	logging.Logger().Debug("tool deactivated", "tool", prev)
	m.bus.Trigger(EventName(prev, EventDeactivated), prev)
}
