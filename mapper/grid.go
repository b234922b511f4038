// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mapper

import "fmt"

// GridMapper pairs an x mapper and a y mapper. It has no state of its own.
type GridMapper struct {
	X Mapper
	Y Mapper
}

// NewGridMapper creates a grid mapper.
func NewGridMapper(x, y Mapper) *GridMapper {
	return &GridMapper{X: x, Y: y}
}

// MapToTarget maps a data point to target space.
func (g *GridMapper) MapToTarget(x, y float64) (float64, float64, error) {
	sx, err := g.X.ToTarget(x)
	if err != nil {
		return 0, 0, fmt.Errorf("x: %w", err)
	}
	sy, err := g.Y.ToTarget(y)
	if err != nil {
		return 0, 0, fmt.Errorf("y: %w", err)
	}
	return sx, sy, nil
}

// MapFromTarget maps a target point back to data space.
func (g *GridMapper) MapFromTarget(sx, sy float64) (float64, float64, error) {
	x, err := g.X.FromTarget(sx)
	if err != nil {
		return 0, 0, fmt.Errorf("x: %w", err)
	}
	y, err := g.Y.FromTarget(sy)
	if err != nil {
		return 0, 0, fmt.Errorf("y: %w", err)
	}
	return x, y, nil
}

// VMapToTarget maps same-length slices of data coordinates.
func (g *GridMapper) VMapToTarget(xs, ys []float64) ([]float64, []float64, error) {
	if len(xs) != len(ys) {
		return nil, nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(xs), len(ys))
	}
	sxs, err := g.X.VToTarget(xs)
	if err != nil {
		return nil, nil, fmt.Errorf("x: %w", err)
	}
	sys, err := g.Y.VToTarget(ys)
	if err != nil {
		return nil, nil, fmt.Errorf("y: %w", err)
	}
	return sxs, sys, nil
}

// VMapFromTarget maps same-length slices of target coordinates back.
func (g *GridMapper) VMapFromTarget(sxs, sys []float64) ([]float64, []float64, error) {
	if len(sxs) != len(sys) {
		return nil, nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(sxs), len(sys))
	}
	xs, err := g.X.VFromTarget(sxs)
	if err != nil {
		return nil, nil, fmt.Errorf("x: %w", err)
	}
	ys, err := g.Y.VFromTarget(sys)
	if err != nil {
		return nil, nil, fmt.Errorf("y: %w", err)
	}
	return xs, ys, nil
}
