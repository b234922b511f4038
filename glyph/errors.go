// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyph

import "errors"

var (
	// ErrUnknownGlyph is returned by New for an unregistered kind.
	ErrUnknownGlyph = errors.New("glyph: unknown glyph")

	// ErrMissingColumn is returned when a Spec does not name a column the
	// glyph needs.
	ErrMissingColumn = errors.New("glyph: missing column")
)
