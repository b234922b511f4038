// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package props

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/gogpu/ggplot/event"
)

// Name identifies a property on a Node.
type Name string

// ChangeEvent is the bus event fired after any property of a node changed.
// Per-property events are named ChangeEvent + ":" + name.
const ChangeEvent = "change"

// EventName returns the bus event fired when the named property changes.
func EventName(name Name) string {
	return ChangeEvent + ":" + string(name)
}

// Getter computes the value of a computed property.
type Getter func() (any, error)

// Dep is a dependency edge: the property Name on node Owner.
type Dep struct {
	Owner *Node
	Name  Name
}

func (d Dep) String() string {
	if d.Owner == nil {
		return "<nil>." + string(d.Name)
	}
	return d.Owner.id + "." + string(d.Name)
}

type computed struct {
	name      Name
	getter    Getter
	deps      []Dep
	cache     bool
	value     any
	has       bool
	dirty     bool
	computing bool
	computes  int
}

type listener struct {
	owner  *Node
	handle event.Handle
}

// Node is a property graph node.
type Node struct {
	id        string
	attrs     map[Name]any
	computed  map[Name]*computed
	bus       *event.Bus
	listeners []listener
	destroyed bool
}

// NewNode creates an empty node. The id is used in error messages and
// logs only.
func NewNode(id string) *Node {
	return &Node{
		id:       id,
		attrs:    make(map[Name]any),
		computed: make(map[Name]*computed),
		bus:      event.NewBus(),
	}
}

// ID returns the node id.
func (n *Node) ID() string { return n.id }

// Bus returns the bus the node fires change notifications on.
func (n *Node) Bus() *event.Bus { return n.bus }

// Destroyed reports whether Destroy has been called.
func (n *Node) Destroyed() bool { return n.destroyed }

// Has reports whether the node declares an attribute or computed property
// with the given name.
func (n *Node) Has(name Name) bool {
	if _, ok := n.attrs[name]; ok {
		return true
	}
	_, ok := n.computed[name]
	return ok
}

// Names returns all declared property names, sorted.
func (n *Node) Names() []Name {
	names := make([]Name, 0, len(n.attrs)+len(n.computed))
	for name := range n.attrs {
		names = append(names, name)
	}
	for name := range n.computed {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// DefineOption configures a computed property.
type DefineOption func(*computed)

// DependsOn adds dependency edges to a computed property.
func DependsOn(deps ...Dep) DefineOption {
	return func(c *computed) {
		c.deps = append(c.deps, deps...)
	}
}

// Uncached disables caching: the getter runs on every read and every
// dependency change is forwarded without comparing values.
func Uncached() DefineOption {
	return func(c *computed) {
		c.cache = false
	}
}

// Define registers a computed property. Every dependency is validated
// before anything is subscribed, so a failed Define leaves the node
// unchanged.
func (n *Node) Define(name Name, getter Getter, opts ...DefineOption) error {
	if n.destroyed {
		return fmt.Errorf("%w: %s", ErrDestroyed, n.id)
	}
	if n.Has(name) {
		return fmt.Errorf("%w: %s.%s", ErrDuplicate, n.id, name)
	}
	c := &computed{name: name, getter: getter, cache: true}
	for _, opt := range opts {
		opt(c)
	}
	for _, d := range c.deps {
		if err := validateDep(d); err != nil {
			return fmt.Errorf("define %s.%s: %w", n.id, name, err)
		}
	}

	n.computed[name] = c
	for _, d := range c.deps {
		h := d.Owner.bus.On(EventName(d.Name), func(...any) {
			n.invalidate(c)
		})
		n.listeners = append(n.listeners, listener{owner: d.Owner, handle: h})
	}
	return nil
}

func validateDep(d Dep) error {
	switch {
	case d.Owner == nil:
		return fmt.Errorf("%w: %s", ErrMissingAttribute, d)
	case d.Owner.destroyed:
		return fmt.Errorf("%w: %s", ErrStaleDependency, d)
	case !d.Owner.Has(d.Name):
		return fmt.Errorf("%w: %s", ErrMissingAttribute, d)
	}
	return nil
}

// Get returns the current value of a property, recomputing a computed
// property when it is dirty or has never been computed.
func (n *Node) Get(name Name) (any, error) {
	if v, ok := n.attrs[name]; ok {
		return v, nil
	}
	c, ok := n.computed[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrMissingAttribute, n.id, name)
	}
	for _, d := range c.deps {
		if d.Owner.destroyed {
			return nil, fmt.Errorf("%s.%s: %w: %s", n.id, name, ErrStaleDependency, d)
		}
	}
	if c.cache && c.has && !c.dirty {
		return c.value, nil
	}
	return n.recompute(c)
}

// Set stores a plain attribute. When the value differs from the stored
// one, change notifications fire and dependents are updated before Set
// returns.
func (n *Node) Set(name Name, value any) error {
	if n.destroyed {
		return fmt.Errorf("%w: %s", ErrDestroyed, n.id)
	}
	if _, ok := n.computed[name]; ok {
		return fmt.Errorf("%w: %s.%s", ErrReadOnly, n.id, name)
	}
	old, had := n.attrs[name]
	n.attrs[name] = value
	if had && equal(old, value) {
		return nil
	}
	n.fire(name)
	return nil
}

// Computations returns how many times the getter of a computed property has
// run. It returns 0 for unknown names and plain attributes.
func (n *Node) Computations(name Name) int {
	if c, ok := n.computed[name]; ok {
		return c.computes
	}
	return 0
}

// OnChange subscribes fn to changes of one property.
func (n *Node) OnChange(name Name, fn func()) event.Handle {
	return n.bus.On(EventName(name), func(...any) { fn() })
}

// OnAnyChange subscribes fn to changes of any property. The changed name
// is passed to fn.
func (n *Node) OnAnyChange(fn func(Name)) event.Handle {
	return n.bus.On(ChangeEvent, func(args ...any) {
		var name Name
		if len(args) > 0 {
			name, _ = args[0].(Name)
		}
		fn(name)
	})
}

// Off removes a subscription made with OnChange or OnAnyChange.
func (n *Node) Off(h event.Handle) {
	n.bus.Off(h)
}

// Destroy unsubscribes every dependency listener the node registered on
// other nodes and marks it destroyed. Computed properties elsewhere that
// depend on this node fail with ErrStaleDependency from then on.
func (n *Node) Destroy() {
	if n.destroyed {
		return
	}
	for _, l := range n.listeners {
		l.owner.bus.Off(l.handle)
	}
	n.listeners = nil
	n.destroyed = true
}

func (n *Node) fire(name Name) {
	n.bus.Trigger(EventName(name), name)
	n.bus.Trigger(ChangeEvent, name)
}

func (n *Node) invalidate(c *computed) {
	if n.destroyed {
		return
	}
	if !c.cache || !c.has {
		c.dirty = true
		c.has = false
		n.fire(c.name)
		return
	}
	old := c.value
	c.dirty = true
	v, err := n.recompute(c)
	if err == nil && equal(old, v) {
		return
	}
	n.fire(c.name)
}

func (n *Node) recompute(c *computed) (any, error) {
	if c.computing {
		return nil, fmt.Errorf("%w: %s.%s", ErrCycle, n.id, c.name)
	}
	c.computing = true
	c.computes++
	v, err := c.getter()
	c.computing = false
	if err != nil {
		c.has = false
		c.dirty = true
		c.value = nil
		return nil, err
	}
	c.value = v
	c.has = true
	c.dirty = false
	return v, nil
}

func equal(a, b any) bool {
	if fa, ok := a.(float64); ok {
		fb, ok := b.(float64)
		return ok && fa == fb
	}
	return reflect.DeepEqual(a, b)
}
