// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package layout resolves plot geometry: outer canvas size, per-side
// borders and the inner plot area.
//
// A ViewState is a property node. Border sizes are computed as the larger
// of a hard minimum and a soft request; the soft requests are negotiated
// once per frame by the layers that need room (axes, titles, legends):
//
//	vs.BeginPadding()
//	vs.RequestPadding(layout.Padding{Left: 40})
//	vs.RequestPadding(layout.Padding{Bottom: 24})
//	vs.CommitPadding(layout.Symmetry{})
//
// Requests accumulate additively within one pass. The inner plot area is
// exposed as two mapper.Range values whose bounds are updated in place, so
// mappers built on them keep following the layout.
//
// Device conversion (canvas y grows downward) lives here and is kept
// separate from data mapping.
package layout
