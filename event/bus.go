// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package event provides the synchronous publish/subscribe bus shared by
// property nodes, plot views and input tools.
//
// Handlers run on the goroutine that calls Trigger, in subscription order,
// and Trigger returns only after every handler has returned. A Bus is not
// safe for concurrent use; one plot and everything attached to it lives on
// a single goroutine.
package event

// Handler receives the arguments passed to Trigger.
type Handler func(args ...any)

// Handle identifies one subscription. The zero Handle is never issued and
// Off ignores it.
type Handle struct {
	name string
	id   uint64
}

// Name returns the event name the subscription listens to.
func (h Handle) Name() string { return h.name }

// Valid reports whether h was returned by On.
func (h Handle) Valid() bool { return h.id != 0 }

type subscription struct {
	id      uint64
	fn      Handler
	removed bool
}

// Bus is a synchronous event bus keyed by event name.
type Bus struct {
	subs   map[string][]*subscription
	nextID uint64
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string][]*subscription)}
}

// On subscribes fn to events named name.
func (b *Bus) On(name string, fn Handler) Handle {
	if fn == nil {
		return Handle{}
	}
	b.nextID++
	s := &subscription{id: b.nextID, fn: fn}
	b.subs[name] = append(b.subs[name], s)
	return Handle{name: name, id: s.id}
}

// Off removes a subscription. Removing a handler from inside a running
// Trigger prevents it from being called later in the same fan-out.
func (b *Bus) Off(h Handle) {
	if !h.Valid() {
		return
	}
	list := b.subs[h.name]
	for i, s := range list {
		if s.id != h.id {
			continue
		}
		s.removed = true
		copy(list[i:], list[i+1:])
		list[len(list)-1] = nil
		list = list[:len(list)-1]
		if len(list) == 0 {
			delete(b.subs, h.name)
		} else {
			b.subs[h.name] = list
		}
		return
	}
}

// Trigger calls every handler subscribed to name, in subscription order.
// Handlers added while the fan-out is running are not called for this
// event.
func (b *Bus) Trigger(name string, args ...any) {
	list := b.subs[name]
	if len(list) == 0 {
		return
	}
	snapshot := make([]*subscription, len(list))
	copy(snapshot, list)
	for _, s := range snapshot {
		if s.removed {
			continue
		}
		s.fn(args...)
	}
}

// Count returns the number of live subscriptions for name.
func (b *Bus) Count(name string) int {
	return len(b.subs[name])
}

// Total returns the number of live subscriptions across all names.
func (b *Bus) Total() int {
	n := 0
	for _, list := range b.subs {
		n += len(list)
	}
	return n
}
