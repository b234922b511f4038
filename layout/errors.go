// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import (
	"errors"
	"fmt"
	"strings"
)

// ErrLayoutOverflow is matched by LayoutOverflowError.
var ErrLayoutOverflow = errors.New("layout: borders exceed outer size")

// LayoutOverflowError describes a layout whose opposing borders do not fit
// the outer size. The inner area of an overflowing axis is clamped to zero.
type LayoutOverflowError struct {
	Horizontal bool
	Vertical   bool

	OuterWidth  float64
	OuterHeight float64
	Border      Padding
}

func (e *LayoutOverflowError) Error() string {
	var parts []string
	if e.Horizontal {
		parts = append(parts, fmt.Sprintf("left %g + right %g > width %g",
			e.Border.Left, e.Border.Right, e.OuterWidth))
	}
	if e.Vertical {
		parts = append(parts, fmt.Sprintf("top %g + bottom %g > height %g",
			e.Border.Top, e.Border.Bottom, e.OuterHeight))
	}
	return ErrLayoutOverflow.Error() + ": " + strings.Join(parts, ", ")
}

// Unwrap returns ErrLayoutOverflow.
func (e *LayoutOverflowError) Unwrap() error { return ErrLayoutOverflow }
