// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package source

import (
	"fmt"
	"maps"
	"slices"
	"sync/atomic"

	"github.com/gogpu/ggplot/props"
)

// Properties of a ColumnDataSource node.
var (
	// Version increases on every column or selection change.
	Version = props.NewKey[int]("version")
	// Length is the common row count.
	Length = props.NewKey[int]("length")
	// Selected holds the selected row indices in ascending order.
	Selected = props.NewKey[[]int]("selected")
)

var sourceSeq atomic.Uint64

// ColumnDataSource is a table of named columns with equal length. A column
// holds either numbers or strings; string columns feed categorical axes.
type ColumnDataSource struct {
	node    *props.Node
	numbers map[string][]float64
	strings map[string][]string
	order   []string
}

// NewColumnDataSource creates an empty source.
func NewColumnDataSource() *ColumnDataSource {
	s := &ColumnDataSource{
		node:    props.NewNode(fmt.Sprintf("source%d", sourceSeq.Add(1))),
		numbers: make(map[string][]float64),
		strings: make(map[string][]string),
	}
	Version.Init(s.node, 0)
	Length.Init(s.node, 0)
	Selected.Init(s.node, []int{})
	return s
}

// Node returns the property node. Subscribe to Version to follow changes.
func (s *ColumnDataSource) Node() *props.Node { return s.node }

// Version returns the change counter.
func (s *ColumnDataSource) Version() int { return Version.Value(s.node) }

// Len returns the number of rows.
func (s *ColumnDataSource) Len() int { return Length.Value(s.node) }

// Names returns the column names in insertion order.
func (s *ColumnDataSource) Names() []string { return slices.Clone(s.order) }

// Has reports whether a column exists.
func (s *ColumnDataSource) Has(name string) bool {
	_, num := s.numbers[name]
	_, str := s.strings[name]
	return num || str
}

// SetColumn stores a numeric column, replacing any column of that name.
// The values are copied.
func (s *ColumnDataSource) SetColumn(name string, vs []float64) error {
	if err := s.checkLength(name, len(vs)); err != nil {
		return err
	}
	delete(s.strings, name)
	s.numbers[name] = slices.Clone(vs)
	return s.changed(name, len(vs))
}

// SetStrings stores a string column, replacing any column of that name.
func (s *ColumnDataSource) SetStrings(name string, vs []string) error {
	if err := s.checkLength(name, len(vs)); err != nil {
		return err
	}
	delete(s.numbers, name)
	s.strings[name] = slices.Clone(vs)
	return s.changed(name, len(vs))
}

// SetColumns replaces every column at once, so the length may change.
// Keys of numbers and strings must not overlap.
func (s *ColumnDataSource) SetColumns(numbers map[string][]float64, strs map[string][]string) error {
	n := -1
	check := func(name string, l int) error {
		if n >= 0 && l != n {
			return fmt.Errorf("%w: %q has %d rows, want %d", ErrColumnLength, name, l, n)
		}
		n = l
		return nil
	}
	for _, name := range slices.Sorted(maps.Keys(numbers)) {
		if err := check(name, len(numbers[name])); err != nil {
			return err
		}
	}
	for _, name := range slices.Sorted(maps.Keys(strs)) {
		if _, dup := numbers[name]; dup {
			return fmt.Errorf("source: column %q is both numeric and string", name)
		}
		if err := check(name, len(strs[name])); err != nil {
			return err
		}
	}
	s.numbers = make(map[string][]float64, len(numbers))
	s.strings = make(map[string][]string, len(strs))
	s.order = s.order[:0]
	for _, name := range slices.Sorted(maps.Keys(numbers)) {
		s.numbers[name] = slices.Clone(numbers[name])
		s.order = append(s.order, name)
	}
	for _, name := range slices.Sorted(maps.Keys(strs)) {
		s.strings[name] = slices.Clone(strs[name])
		s.order = append(s.order, name)
	}
	if err := Selected.Set(s.node, []int{}); err != nil {
		return err
	}
	return s.bump(max(n, 0))
}

// Column returns a numeric column. The slice must not be modified.
func (s *ColumnDataSource) Column(name string) ([]float64, error) {
	if vs, ok := s.numbers[name]; ok {
		return vs, nil
	}
	if _, ok := s.strings[name]; ok {
		return nil, fmt.Errorf("%w: %q holds strings", ErrColumnType, name)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}

// Strings returns a string column. The slice must not be modified.
func (s *ColumnDataSource) Strings(name string) ([]string, error) {
	if vs, ok := s.strings[name]; ok {
		return vs, nil
	}
	if _, ok := s.numbers[name]; ok {
		return nil, fmt.Errorf("%w: %q holds numbers", ErrColumnType, name)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}

// Remove deletes a column. Removing the last column resets the length.
func (s *ColumnDataSource) Remove(name string) error {
	if !s.Has(name) {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	delete(s.numbers, name)
	delete(s.strings, name)
	s.order = slices.DeleteFunc(s.order, func(n string) bool { return n == name })
	n := s.Len()
	if len(s.order) == 0 {
		n = 0
	}
	return s.bump(n)
}

func (s *ColumnDataSource) checkLength(name string, n int) error {
	others := len(s.order)
	if s.Has(name) {
		others--
	}
	if others > 0 && n != s.Len() {
		return fmt.Errorf("%w: %q has %d rows, want %d", ErrColumnLength, name, n, s.Len())
	}
	return nil
}

func (s *ColumnDataSource) changed(name string, n int) error {
	if !slices.Contains(s.order, name) {
		s.order = append(s.order, name)
	}
	if n != s.Len() {
		if err := Selected.Set(s.node, []int{}); err != nil {
			return err
		}
	}
	return s.bump(n)
}

func (s *ColumnDataSource) bump(n int) error {
	if err := Length.Set(s.node, n); err != nil {
		return err
	}
	return Version.Set(s.node, s.Version()+1)
}
