// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mapper

import (
	"fmt"
	"slices"

	"github.com/gogpu/ggplot/props"
)

// FactorRange property keys.
var (
	Factors     = props.NewKey[[]string]("factors")
	factorIndex = props.NewKey[map[string]int]("factor_index")
)

// FactorRange is an ordered list of unique categories.
type FactorRange struct {
	node *props.Node
}

// NewFactorRange creates a factor range. Duplicate categories are
// rejected with ErrDuplicateFactor.
func NewFactorRange(factors ...string) (*FactorRange, error) {
	if err := checkFactors(factors); err != nil {
		return nil, err
	}
	n := props.NewNode(fmt.Sprintf("factors%d", rangeSeq.Add(1)))
	Factors.Init(n, slices.Clone(factors))
	mustDefine(factorIndex.Define(n, func() (map[string]int, error) {
		fs := Factors.Value(n)
		idx := make(map[string]int, len(fs))
		for i, f := range fs {
			idx[f] = i
		}
		return idx, nil
	}, props.DependsOn(Factors.Of(n))))
	return &FactorRange{node: n}, nil
}

func checkFactors(factors []string) error {
	seen := make(map[string]struct{}, len(factors))
	for _, f := range factors {
		if _, dup := seen[f]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateFactor, f)
		}
		seen[f] = struct{}{}
	}
	return nil
}

// Node returns the property node backing the range.
func (r *FactorRange) Node() *props.Node { return r.node }

// Factors returns a copy of the categories in order.
func (r *FactorRange) Factors() []string {
	return slices.Clone(Factors.Value(r.node))
}

// Len returns the number of categories.
func (r *FactorRange) Len() int {
	return len(Factors.Value(r.node))
}

// SetFactors replaces the categories.
func (r *FactorRange) SetFactors(factors ...string) error {
	if err := checkFactors(factors); err != nil {
		return err
	}
	return Factors.Set(r.node, slices.Clone(factors))
}

// Index returns the position of category v.
func (r *FactorRange) Index(v string) (int, error) {
	idx, err := factorIndex.Get(r.node)
	if err != nil {
		return 0, err
	}
	i, ok := idx[v]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFactor, v)
	}
	return i, nil
}

// At returns the category at position i.
func (r *FactorRange) At(i int) (string, error) {
	fs := Factors.Value(r.node)
	if i < 0 || i >= len(fs) {
		return "", fmt.Errorf("%w: index %d of %d", ErrUnknownFactor, i, len(fs))
	}
	return fs[i], nil
}
