// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package tool arbitrates interactive input for a plot.
//
// Each plot has one Surface. The surface owns an event bus, an Active-Tool
// Manager guaranteeing that at most one tool is armed, and one event
// generator per registered tool:
//
//   - TwoPointGenerator turns mouse down, move and up into SetBasepoint,
//     UpdatingMouseMove and DragEnd events (pan, box zoom, box select,
//     resize).
//   - WheelGenerator turns wheel ticks into zoom events and suppresses host
//     scrolling while its tool is armed.
//
// Tools are plain callback sets (Handlers) wired to a generator through a
// Spec; they do not embed or extend generators. Events for a tool that is
// not armed are dropped.
//
// Coordinates in events are device pixels: origin top-left, y down.
package tool
