// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mapper

import (
	"fmt"

	"github.com/gogpu/ggplot/props"
)

// Mapper converts between a data range and a target (pixel) range.
// Vector forms must agree element-wise with the scalar forms.
type Mapper interface {
	ToTarget(x float64) (float64, error)
	FromTarget(x float64) (float64, error)
	VToTarget(xs []float64) ([]float64, error)
	VFromTarget(xs []float64) ([]float64, error)
}

// Transform holds the coefficients of an affine map y = Scale*x + Offset.
type Transform struct {
	Scale  float64
	Offset float64
}

// Apply maps x forward.
func (t Transform) Apply(x float64) float64 {
	return t.Scale*x + t.Offset
}

// Invert maps y back.
func (t Transform) Invert(y float64) float64 {
	return (y - t.Offset) / t.Scale
}

// TransformKey is the computed property holding a mapper's coefficients.
var TransformKey = props.NewKey[Transform]("transform")

// LinearMapper maps a continuous source range onto a target range.
type LinearMapper struct {
	node   *props.Node
	source *Range
	target *Range
}

// NewLinearMapper creates a mapper whose coefficients follow both ranges.
func NewLinearMapper(source, target *Range) (*LinearMapper, error) {
	m := &LinearMapper{
		node:   props.NewNode(fmt.Sprintf("linear(%s->%s)", source.node.ID(), target.node.ID())),
		source: source,
		target: target,
	}
	err := TransformKey.Define(m.node, m.compute, props.DependsOn(
		Start.Of(source.node), End.Of(source.node),
		Start.Of(target.node), End.Of(target.node),
	))
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (m *LinearMapper) compute() (Transform, error) {
	ss, se := m.source.Start(), m.source.End()
	ts, te := m.target.Start(), m.target.End()
	if err := checkRange("source", ss, se); err != nil {
		return Transform{}, err
	}
	if err := checkRange("target", ts, te); err != nil {
		return Transform{}, err
	}
	scale := (te - ts) / (se - ss)
	return Transform{Scale: scale, Offset: ts - scale*ss}, nil
}

// Node returns the property node holding the transform.
func (m *LinearMapper) Node() *props.Node { return m.node }

// Source returns the data range.
func (m *LinearMapper) Source() *Range { return m.source }

// Target returns the pixel range.
func (m *LinearMapper) Target() *Range { return m.target }

// Transform returns the current coefficients.
func (m *LinearMapper) Transform() (Transform, error) {
	return TransformKey.Get(m.node)
}

// ToTarget maps a data value to the target range.
func (m *LinearMapper) ToTarget(x float64) (float64, error) {
	t, err := m.Transform()
	if err != nil {
		return 0, err
	}
	return t.Apply(x), nil
}

// FromTarget maps a target value back to data space.
func (m *LinearMapper) FromTarget(x float64) (float64, error) {
	t, err := m.Transform()
	if err != nil {
		return 0, err
	}
	return t.Invert(x), nil
}

// VToTarget maps every element of xs.
func (m *LinearMapper) VToTarget(xs []float64) ([]float64, error) {
	t, err := m.Transform()
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = t.Apply(x)
	}
	return out, nil
}

// VFromTarget inverts every element of xs.
func (m *LinearMapper) VFromTarget(xs []float64) ([]float64, error) {
	t, err := m.Transform()
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = t.Invert(x)
	}
	return out, nil
}

// Destroy detaches the mapper from its ranges.
func (m *LinearMapper) Destroy() {
	m.node.Destroy()
}
