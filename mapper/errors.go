// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mapper

import "errors"

var (
	// ErrDegenerateRange is returned when a source or target range has zero
	// width or non-finite bounds.
	ErrDegenerateRange = errors.New("mapper: degenerate range")

	// ErrUnknownFactor is returned when a category is not part of a
	// FactorRange.
	ErrUnknownFactor = errors.New("mapper: unknown factor")

	// ErrDuplicateFactor is returned when a FactorRange would contain the
	// same category twice.
	ErrDuplicateFactor = errors.New("mapper: duplicate factor")

	// ErrLengthMismatch is returned by the vector forms of GridMapper when
	// the x and y slices differ in length.
	ErrLengthMismatch = errors.New("mapper: x and y lengths differ")
)
