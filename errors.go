// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggplot

import "errors"

var (
	// ErrNotPaused is returned by Unpause when the view is not paused.
	ErrNotPaused = errors.New("ggplot: unpause called on a view that is not paused")

	// ErrUnknownLevel is returned for level names or values outside the
	// six drawing levels.
	ErrUnknownLevel = errors.New("ggplot: unknown level")

	// ErrNoHistory is returned by Undo and Redo when there is no state to
	// move to.
	ErrNoHistory = errors.New("ggplot: no range state to restore")

	// ErrNotCategorical is returned when factor coordinates are requested
	// on a continuous axis.
	ErrNotCategorical = errors.New("ggplot: axis is not categorical")
)
