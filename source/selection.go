// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package source

import (
	"fmt"
	"math"
	"slices"
)

// Selection returns the selected row indices in ascending order.
func (s *ColumnDataSource) Selection() []int {
	return slices.Clone(Selected.Value(s.node))
}

// IsSelected reports whether row i is selected.
func (s *ColumnDataSource) IsSelected(i int) bool {
	_, ok := slices.BinarySearch(Selected.Value(s.node), i)
	return ok
}

// SetSelection replaces the selection. Indices are sorted and deduplicated;
// an index outside [0, Len) is an error.
func (s *ColumnDataSource) SetSelection(indices []int) error {
	n := s.Len()
	sel := slices.Clone(indices)
	for _, i := range sel {
		if i < 0 || i >= n {
			return fmt.Errorf("source: selection index %d out of range [0, %d)", i, n)
		}
	}
	slices.Sort(sel)
	sel = slices.Compact(sel)
	if sel == nil {
		sel = []int{}
	}
	if slices.Equal(sel, Selected.Value(s.node)) {
		return nil
	}
	if err := Selected.Set(s.node, sel); err != nil {
		return err
	}
	return Version.Set(s.node, s.Version()+1)
}

// ClearSelection deselects every row.
func (s *ColumnDataSource) ClearSelection() error {
	return s.SetSelection(nil)
}

// SelectRect selects the rows whose (xcol, ycol) point lies inside the
// data rectangle spanned by x0..x1 and y0..y1, in either order. Rows with
// a NaN coordinate are never selected. The new selection is returned.
func (s *ColumnDataSource) SelectRect(xcol, ycol string, x0, x1, y0, y1 float64) ([]int, error) {
	xs, err := s.Column(xcol)
	if err != nil {
		return nil, err
	}
	ys, err := s.Column(ycol)
	if err != nil {
		return nil, err
	}
	xlo, xhi := math.Min(x0, x1), math.Max(x0, x1)
	ylo, yhi := math.Min(y0, y1), math.Max(y0, y1)
	sel := []int{}
	for i := range xs {
		x, y := xs[i], ys[i]
		if x >= xlo && x <= xhi && y >= ylo && y <= yhi {
			sel = append(sel, i)
		}
	}
	if err := s.SetSelection(sel); err != nil {
		return nil, err
	}
	return sel, nil
}
