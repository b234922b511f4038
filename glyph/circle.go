// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyph

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/source"
)

// Circle draws a filled circle of Spec.Size pixels radius per row.
type Circle struct {
	base
}

// NewCircle creates a circle glyph reading Spec.X and Spec.Y.
func NewCircle(src *source.ColumnDataSource, spec Spec) (*Circle, error) {
	b, err := newBase("circle", src, spec)
	if err != nil {
		return nil, err
	}
	return &Circle{base: b}, nil
}

// Render implements ggplot.Renderer. Rows with a NaN coordinate are
// skipped.
func (c *Circle) Render(dc *gg.Context, p *ggplot.PlotView) error {
	if !c.Visible() {
		return nil
	}
	xs, ys, err := c.points(p, c.spec.Y)
	if err != nil {
		return fmt.Errorf("circle: %w", err)
	}
	selecting := c.selecting()
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		setColor(dc, c.rowColor(i, selecting))
		dc.DrawCircle(xs[i], ys[i], c.spec.Size)
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}
