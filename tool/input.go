// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tool

import (
	"fmt"
	"strings"
)

// Point is a position in device pixels.
type Point struct {
	X, Y float64
}

// Modifiers is a set of held modifier keys.
type Modifiers uint8

// Modifier keys.
const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

// Has reports whether every modifier in f is held. It is false for an
// empty f.
func (m Modifiers) Has(f Modifiers) bool {
	return f != 0 && m&f == f
}

func (m Modifiers) String() string {
	if m == 0 {
		return "none"
	}
	var parts []string
	for _, mod := range []struct {
		bit  Modifiers
		name string
	}{{ModShift, "shift"}, {ModCtrl, "ctrl"}, {ModAlt, "alt"}} {
		if m&mod.bit != 0 {
			parts = append(parts, mod.name)
		}
	}
	return strings.Join(parts, "+")
}

// Key identifies a keyboard key the generators react to.
type Key int

// Keys.
const (
	KeyOther Key = iota
	KeyEscape
	KeyShift
	KeyControl
	KeyAlt
)

// Modifier returns the modifier bit for a modifier key and 0 otherwise.
func (k Key) Modifier() Modifiers {
	switch k {
	case KeyShift:
		return ModShift
	case KeyControl:
		return ModCtrl
	case KeyAlt:
		return ModAlt
	}
	return 0
}

func (k Key) String() string {
	switch k {
	case KeyOther:
		return "other"
	case KeyEscape:
		return "escape"
	case KeyShift:
		return "shift"
	case KeyControl:
		return "control"
	case KeyAlt:
		return "alt"
	}
	return fmt.Sprintf("Key(%d)", int(k))
}
