// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggplot

import (
	"fmt"
	"slices"

	"github.com/gogpu/ggplot/mapper"
)

// Units tells MapToScreen how to interpret a coordinate slice.
type Units int

const (
	// UnitsData values are data coordinates mapped through the axis mapper.
	UnitsData Units = iota
	// UnitsScreen values are y-up screen pixels and skip the mapper.
	UnitsScreen
)

func (u Units) String() string {
	switch u {
	case UnitsData:
		return "data"
	case UnitsScreen:
		return "screen"
	}
	return fmt.Sprintf("Units(%d)", int(u))
}

// MapToScreen converts coordinates to device pixels. Data values go
// through the axis mapper; screen values pass through it unchanged. Both
// then get the device flip, so y grows downward in the result. The input
// slices are not modified.
func (p *PlotView) MapToScreen(xs []float64, xUnits Units, ys []float64, yUnits Units) ([]float64, []float64, error) {
	sx, err := mapAxis(p.xMapper, xs, xUnits)
	if err != nil {
		return nil, nil, fmt.Errorf("x: %w", err)
	}
	sy, err := mapAxis(p.yMapper, ys, yUnits)
	if err != nil {
		return nil, nil, fmt.Errorf("y: %w", err)
	}
	return p.view.VSXToDevice(sx), p.view.VSYToDevice(sy), nil
}

func mapAxis(m mapper.Mapper, vs []float64, u Units) ([]float64, error) {
	if u == UnitsScreen {
		return slices.Clone(vs), nil
	}
	return m.VToTarget(vs)
}

// MapPoint converts one data point to device pixels.
func (p *PlotView) MapPoint(x, y float64) (float64, float64, error) {
	sx, sy, err := p.grid.MapToTarget(x, y)
	if err != nil {
		return 0, 0, err
	}
	return p.view.SXToDevice(sx), p.view.SYToDevice(sy), nil
}

// MapFromScreen converts a device pixel position back to data
// coordinates. Categorical axes return synthetic coordinates.
func (p *PlotView) MapFromScreen(dx, dy float64) (float64, float64, error) {
	return p.grid.MapFromTarget(p.view.DeviceToSX(dx), p.view.DeviceToSY(dy))
}

// XSynthetic converts x categories to synthetic coordinates for use with
// MapToScreen.
func (p *PlotView) XSynthetic(vs []string) ([]float64, error) {
	return synthetic(p.xMapper, vs)
}

// YSynthetic converts y categories to synthetic coordinates.
func (p *PlotView) YSynthetic(vs []string) ([]float64, error) {
	return synthetic(p.yMapper, vs)
}

func synthetic(m mapper.Mapper, vs []string) ([]float64, error) {
	cm, ok := m.(*mapper.CategoricalMapper)
	if !ok {
		return nil, ErrNotCategorical
	}
	return cm.VSynthetic(vs)
}
