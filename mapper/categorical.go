// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mapper

import (
	"fmt"
	"math"

	"github.com/gogpu/ggplot/props"
)

// CategoricalMapper maps categories onto evenly spaced slots of a target
// range. Numeric inputs are synthetic coordinates: category i occupies
// [i, i+1) and its center is i + 0.5.
type CategoricalMapper struct {
	node    *props.Node
	factors *FactorRange
	target  *Range
}

// NewCategoricalMapper creates a mapper over factors onto target.
func NewCategoricalMapper(factors *FactorRange, target *Range) (*CategoricalMapper, error) {
	m := &CategoricalMapper{
		node:    props.NewNode(fmt.Sprintf("categorical(%s->%s)", factors.node.ID(), target.node.ID())),
		factors: factors,
		target:  target,
	}
	err := TransformKey.Define(m.node, m.compute, props.DependsOn(
		Factors.Of(factors.node),
		Start.Of(target.node), End.Of(target.node),
	))
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (m *CategoricalMapper) compute() (Transform, error) {
	count := m.factors.Len()
	if count == 0 {
		return Transform{}, fmt.Errorf("%w: no factors", ErrDegenerateRange)
	}
	ts, te := m.target.Start(), m.target.End()
	if err := checkRange("target", ts, te); err != nil {
		return Transform{}, err
	}
	return Transform{Scale: (te - ts) / float64(count), Offset: ts}, nil
}

// Node returns the property node holding the transform.
func (m *CategoricalMapper) Node() *props.Node { return m.node }

// Factors returns the category range.
func (m *CategoricalMapper) Factors() *FactorRange { return m.factors }

// Target returns the pixel range.
func (m *CategoricalMapper) Target() *Range { return m.target }

// Synthetic returns the synthetic coordinate of category v, the center of
// its slot.
func (m *CategoricalMapper) Synthetic(v string) (float64, error) {
	i, err := m.factors.Index(v)
	if err != nil {
		return 0, err
	}
	return float64(i) + 0.5, nil
}

// VSynthetic converts categories to synthetic coordinates.
func (m *CategoricalMapper) VSynthetic(vs []string) ([]float64, error) {
	out := make([]float64, len(vs))
	for i, v := range vs {
		x, err := m.Synthetic(v)
		if err != nil {
			return nil, err
		}
		out[i] = x
	}
	return out, nil
}

// ToTargetFactor maps category v to the center of its slot.
func (m *CategoricalMapper) ToTargetFactor(v string) (float64, error) {
	x, err := m.Synthetic(v)
	if err != nil {
		return 0, err
	}
	return m.ToTarget(x)
}

// FactorAt returns the category whose slot contains target value px.
func (m *CategoricalMapper) FactorAt(px float64) (string, error) {
	x, err := m.FromTarget(px)
	if err != nil {
		return "", err
	}
	return m.factors.At(int(math.Floor(x)))
}

// ToTarget maps a synthetic coordinate to the target range.
func (m *CategoricalMapper) ToTarget(x float64) (float64, error) {
	t, err := TransformKey.Get(m.node)
	if err != nil {
		return 0, err
	}
	return t.Apply(x), nil
}

// FromTarget maps a target value to a synthetic coordinate.
func (m *CategoricalMapper) FromTarget(x float64) (float64, error) {
	t, err := TransformKey.Get(m.node)
	if err != nil {
		return 0, err
	}
	return t.Invert(x), nil
}

// VToTarget maps synthetic coordinates.
func (m *CategoricalMapper) VToTarget(xs []float64) ([]float64, error) {
	t, err := TransformKey.Get(m.node)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = t.Apply(x)
	}
	return out, nil
}

// VFromTarget maps target values to synthetic coordinates.
func (m *CategoricalMapper) VFromTarget(xs []float64) ([]float64, error) {
	t, err := TransformKey.Get(m.node)
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
func (m *CategoricalMapper) Destroy() {
	m.node.Destroy()
}
