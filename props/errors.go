// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package props

import "errors"

var (
	// ErrMissingAttribute is returned when a property is read or depended
	// upon but the node declares no attribute or computed property with
	// that name.
	ErrMissingAttribute = errors.New("props: missing attribute")

	// ErrStaleDependency is returned when a computed property depends on a
	// node that has been destroyed.
	ErrStaleDependency = errors.New("props: stale dependency")

	// ErrDestroyed is returned by writes to a destroyed node.
	ErrDestroyed = errors.New("props: node destroyed")

	// ErrReadOnly is returned when Set targets a computed property.
	ErrReadOnly = errors.New("props: computed property is read-only")

	// ErrCycle is returned when a computed property depends on itself
	// through its getter.
	ErrCycle = errors.New("props: dependency cycle")

	// ErrDuplicate is returned when a name is declared twice on one node.
	ErrDuplicate = errors.New("props: property already declared")

	// ErrType is returned by typed accessors when the stored value has a
	// different type than the key.
	ErrType = errors.New("props: type mismatch")
)
