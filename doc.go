// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ggplot is a reactive plotting core on top of the gg canvas.
//
// # Overview
//
// A PlotView owns a gg.Context, a layout.ViewState, x and y data ranges
// with their mappers, and an ordered registry of renderers. Renderers
// belong to one of six levels painted back to front:
//
//	image, underlay, glyph     clipped to the plot area
//	overlay, annotation, tool  unclipped
//
// Within a level renderers paint in insertion order.
//
// # Quick Start
//
//	x := mapper.NewRange(0, 10)
//	y := mapper.NewRange(0, 100)
//	p, err := ggplot.NewPlotView(800, 600, x, y, ggplot.WithTitle("demo"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Close()
//
//	p.Add(ggplot.LevelGlyph, glyph.NewCircle(src, glyph.Spec{X: "t", Y: "v"}))
//	if err := p.Render(); err != nil {
//	    log.Print(err)
//	}
//	p.SavePNG("demo.png")
//
// # Redraw
//
// Changes to the data ranges, the view geometry or any Observable renderer
// mark the view dirty. Interactive hosts call Tick once per display
// refresh; it paints at most once per frame interval so bursts of range
// changes during a drag coalesce into one paint. Pause and Unpause bracket
// multi-range updates.
//
// # Coordinates
//
// Data coordinates go through the axis mappers into y-up screen pixels and
// then through the device flip into canvas pixels (y down). The flip is a
// separate stage owned by layout.ViewState, so reversed data ranges and
// the canvas orientation stay independent.
//
// # Tools
//
// Each PlotView has a tool.Surface holding its own Active-Tool Manager.
// Hosts feed raw input to the surface; at most one tool is armed at a time.
package ggplot
