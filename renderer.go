// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggplot

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/ggplot/layout"
	"github.com/gogpu/ggplot/props"
)

// Renderer paints one layer of a plot. Render is called once per frame
// with the plot's canvas; coordinates are device pixels. Renderers at the
// image, underlay and glyph levels are clipped to the plot area.
//
// Renderers are compared by identity when removed, so implementations
// should be pointer types.
type Renderer interface {
	Render(dc *gg.Context, p *PlotView) error
}

// PaddingRequester is implemented by renderers that need border space,
// such as axes and legends. Padding is called at the start of every frame
// and the results of all requesters are summed per side.
type PaddingRequester interface {
	Padding(p *PlotView) layout.Padding
}

// Observable is implemented by renderers backed by a property node. Any
// change on the node schedules a redraw of every plot the renderer is
// added to.
type Observable interface {
	Node() *props.Node
}
