// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package guide draws the reference marks around and over a plot: axes,
// grid lines, the box zoom rubber band and a legend.
//
// Axes request border space through ggplot.PaddingRequester, so adding an
// axis grows the plot border by the room its ticks and labels need:
//
//	p.Add(ggplot.LevelAnnotation, guide.NewAxis(layout.Bottom))
//	p.Add(ggplot.LevelAnnotation, guide.NewAxis(layout.Left))
//	p.Add(ggplot.LevelUnderlay, guide.NewGrid(guide.DimensionX))
//
// Tick positions for continuous axes come from gonum's plot.DefaultTicks;
// labels are formatted for a locale with golang.org/x/text/message.
package guide
