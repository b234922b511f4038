// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package glyph provides the renderers that draw data: circles, lines,
// rectangles, vertical bars and images.
//
// A glyph reads its coordinates from columns of a source.ColumnDataSource
// and maps them through the plot it is rendered into, so one glyph may be
// added to several plots. Glyph properties live on a property node whose
// data version follows the source; changing either schedules a redraw.
//
// Glyph kinds are also available by name through a registry, which figure
// documents use:
//
//	r, err := glyph.New("circle", src, glyph.Spec{X: "t", Y: "v"})
package glyph
