// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/source"
)

func TestBuiltinKinds(t *testing.T) {
	assert.Subset(t, Kinds(), []string{"circle", "line", "rect", "vbar"})

	r, err := New("circle", source.NewColumnDataSource(), Spec{X: "x", Y: "y"})
	require.NoError(t, err)
	assert.IsType(t, &Circle{}, r)
}

func TestNewUnknown(t *testing.T) {
	_, err := New("hexbin", source.NewColumnDataSource(), Spec{})
	assert.ErrorIs(t, err, ErrUnknownGlyph)
}

func TestNewReturnsNilOnError(t *testing.T) {
	r, err := New("vbar", source.NewColumnDataSource(), Spec{X: "x"})
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.Nil(t, r)
}

func TestRegisterCustom(t *testing.T) {
	Register("test-dot", adapt(NewCircle))
	t.Cleanup(func() { Unregister("test-dot") })

	assert.Contains(t, Kinds(), "test-dot")
	assert.Panics(t, func() { Register("test-dot", adapt(NewCircle)) })
	assert.Panics(t, func() { Register("test-nil", nil) })

	Unregister("test-dot")
	assert.NotContains(t, Kinds(), "test-dot")
	Unregister("test-dot")
}

var _ ggplot.Observable = (*Circle)(nil)
var _ ggplot.Observable = (*Image)(nil)
