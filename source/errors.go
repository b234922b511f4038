// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package source

import "errors"

var (
	// ErrColumnLength is returned when a column's length differs from the
	// length of the columns already in the source.
	ErrColumnLength = errors.New("source: column length mismatch")

	// ErrUnknownColumn is returned when a column name is not present.
	ErrUnknownColumn = errors.New("source: unknown column")

	// ErrColumnType is returned when a column is read with the wrong kind,
	// for example a string column as numbers.
	ErrColumnType = errors.New("source: wrong column type")

	// ErrImageSize is returned when an RGBA8 buffer does not hold exactly
	// width*height*4 bytes.
	ErrImageSize = errors.New("source: image buffer size mismatch")
)
