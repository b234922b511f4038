// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package source holds the data that glyphs draw: named columns of equal
// length, a selection of row indices, and RGBA8 images.
//
// A ColumnDataSource is backed by a property node. Every mutation bumps
// its version, so glyphs that depend on the version schedule a redraw of
// the plots they belong to.
//
//	src := source.NewColumnDataSource()
//	_ = src.SetColumn("t", []float64{0, 1, 2})
//	_ = src.SetColumn("v", []float64{3, 1, 4})
//
// Columns can also be loaded from SQL; OpenSQLite opens a database with
// the pure Go modernc.org/sqlite driver.
package source
