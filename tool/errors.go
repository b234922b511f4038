// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tool

import "errors"

var (
	// ErrUnknownTool is returned when activating a tool that was never
	// added to the surface.
	ErrUnknownTool = errors.New("tool: unknown tool")

	// ErrDuplicateTool is returned when adding a second tool with the same
	// name.
	ErrDuplicateTool = errors.New("tool: duplicate tool name")

	// ErrInvalidSpec is returned for a Spec without a name or with an
	// unknown gesture.
	ErrInvalidSpec = errors.New("tool: invalid spec")
)
