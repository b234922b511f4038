// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package mapper converts between data coordinates and pixel coordinates.
//
// A Range is a property node with a start and an end. The start may exceed
// the end: that is a flipped axis and it is kept as is, never normalized.
// Ranges are shared freely; several mappers and tools can hold the same
// Range and the last writer wins.
//
// Mappers keep their coefficients in a computed property that depends on
// the start and end of their ranges, so they follow range edits without
// being rebuilt. A zero-width range makes a mapper fail with
// ErrDegenerateRange instead of producing Inf or NaN coordinates.
//
// Mappers work in "up is positive" target space. The reflection into
// canvas space, where y grows downward, is done by the view state and is
// deliberately not part of any mapper.
package mapper
