// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyph

import "github.com/gogpu/gg"

// DefaultColor is the fill and line color used when a Spec leaves Color
// unset.
var DefaultColor = gg.Hex("#1f77b4")

// NonselectionAlpha scales the alpha of unselected rows while a selection
// is active.
const NonselectionAlpha = 0.2

// Spec describes which columns a glyph reads and how it is styled. Column
// names refer to the glyph's source; on a categorical axis the column must
// hold strings.
type Spec struct {
	X, Y string

	// Top is the bar top column for VBar; Y is ignored there.
	Top string
	// Bottom is the constant bar bottom for VBar.
	Bottom float64

	// Width and Height are rectangle and bar sizes in data units.
	Width, Height float64

	// Size is the circle radius in pixels.
	Size float64

	Color     gg.RGBA
	Alpha     float64
	LineWidth float64
	Dash      []float64

	// Legend labels the glyph in a guide.Legend.
	Legend string
}

func (s Spec) withDefaults() Spec {
	if s.Color == (gg.RGBA{}) {
		s.Color = DefaultColor
	}
	if s.Alpha == 0 {
		s.Alpha = 1
	}
	if s.Size == 0 {
		s.Size = 4
	}
	if s.LineWidth == 0 {
		s.LineWidth = 1
	}
	if s.Width == 0 {
		s.Width = 0.8
	}
	if s.Height == 0 {
		s.Height = 0.8
	}
	return s
}
