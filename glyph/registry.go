// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyph

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/source"
)

// Factory creates a column glyph from a source and a spec.
// Factories are registered via Register and called by New.
type Factory func(src *source.ColumnDataSource, spec Spec) (ggplot.Renderer, error)

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

func init() {
	Register("circle", adapt(NewCircle))
	Register("line", adapt(NewLine))
	Register("rect", adapt(NewRect))
	Register("vbar", adapt(NewVBar))
}

// adapt turns a typed constructor into a Factory that returns a nil
// interface on error.
func adapt[T ggplot.Renderer](fn func(*source.ColumnDataSource, Spec) (T, error)) Factory {
	return func(src *source.ColumnDataSource, spec Spec) (ggplot.Renderer, error) {
		g, err := fn(src, spec)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
}

// Register makes a glyph kind available by name, following the
// database/sql driver pattern:
//
//	func init() {
//	    glyph.Register("hexbin", newHexBin)
//	}
//
// Register panics if factory is nil or the name is already registered.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("glyph: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("glyph: Register called twice for " + name)
	}
	factories[name] = factory
}

// Unregister removes a glyph kind. It is a no-op for unknown names.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// New creates a glyph of the named kind.
func New(name string, src *source.ColumnDataSource, spec Spec) (ggplot.Renderer, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGlyph, name)
	}
	return factory(src, spec)
}

// Kinds returns the registered glyph kinds, sorted.
func Kinds() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
