// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package props implements the reactive property graph used by ranges,
// mappers and view state.
//
// # Nodes
//
// A Node holds plain attributes and computed properties. A computed
// property is a getter plus a list of dependencies; its result is cached
// until one of the dependencies changes.
//
// # Typed keys
//
// Node types declare their properties as package-level Key values:
//
//	var Start = props.NewKey[float64]("start")
//
//	r := props.NewNode("x_range")
//	Start.Init(r, 0)
//	Width.Define(n, func() (float64, error) { ... }, props.DependsOn(Start.Of(r)))
//
// Dependency edges are (node, key) tuples built with Key.Of, and every edge
// is validated when it is declared: a dependency on a property the owner
// does not have fails with ErrMissingAttribute, a dependency on a destroyed
// node fails with ErrStaleDependency.
//
// # Propagation
//
// Set fires a change notification for the attribute and walks the
// dependency graph depth-first before returning. Cached dependents are
// recomputed eagerly and only re-fire when their value actually changed,
// so redundant writes do not cascade into redraws.
//
// Nodes are not safe for concurrent use.
package props
