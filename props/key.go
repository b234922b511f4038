// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package props

import "fmt"

// Key is a typed property name. Node types declare their keys once as
// package-level values and use them for every read, write and dependency.
type Key[T any] struct {
	name Name
}

// NewKey creates a key for a property holding values of type T.
func NewKey[T any](name string) Key[T] {
	return Key[T]{name: Name(name)}
}

// Name returns the property name.
func (k Key[T]) Name() Name { return k.name }

// Of returns the dependency edge for this key on node n.
func (k Key[T]) Of(n *Node) Dep {
	return Dep{Owner: n, Name: k.name}
}

// Init declares the attribute on n with an initial value. It is meant for
// node constructors and panics if n is destroyed or k names a computed
// property of n.
func (k Key[T]) Init(n *Node, v T) {
	if err := n.Set(k.name, v); err != nil {
		panic(err)
	}
}

// Set writes the attribute on n.
func (k Key[T]) Set(n *Node, v T) error {
	return n.Set(k.name, v)
}

// Get reads the property from n.
func (k Key[T]) Get(n *Node) (T, error) {
	var zero T
	v, err := n.Get(k.name)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s.%s holds %T, want %T", ErrType, n.id, k.name, v, zero)
	}
	return t, nil
}

// Value reads the property from n and returns the zero value on error.
// Use it only for properties whose getters cannot fail.
func (k Key[T]) Value(n *Node) T {
	v, _ := k.Get(n)
	return v
}

// Define registers a computed property for this key on n.
func (k Key[T]) Define(n *Node, fn func() (T, error), opts ...DefineOption) error {
	return n.Define(k.name, func() (any, error) {
		v, err := fn()
		if err != nil {
			return nil, err
		}
		return v, nil
	}, opts...)
}
