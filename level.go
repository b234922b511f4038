// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggplot

import (
	"fmt"
	"slices"
)

// Level is a fixed z-order drawing category. Levels are painted in
// ascending order; within a level renderers paint in insertion order.
type Level int

// Drawing levels, back to front.
const (
	LevelImage Level = iota
	LevelUnderlay
	LevelGlyph
	LevelOverlay
	LevelAnnotation
	LevelTool

	numLevels = iota
)

var levelNames = [numLevels]string{"image", "underlay", "glyph", "overlay", "annotation", "tool"}

// String returns the level name.
func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// Valid reports whether l is one of the six levels.
func (l Level) Valid() bool { return l >= LevelImage && l < numLevels }

// Clipped reports whether renderers at l are clipped to the plot area.
func (l Level) Clipped() bool { return l <= LevelGlyph }

// ParseLevel returns the level with the given name.
func ParseLevel(name string) (Level, error) {
	for i, n := range levelNames {
		if n == name {
			return Level(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}

// AllLevels returns every level in paint order.
func AllLevels() []Level {
	out := make([]Level, numLevels)
	for i := range out {
		out[i] = Level(i)
	}
	return out
}

// Levels is the ordered renderer registry of one plot.
type Levels struct {
	byLevel [numLevels][]Renderer
}

// Add appends r to level l.
func (ls *Levels) Add(l Level, r Renderer) error {
	if !l.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownLevel, int(l))
	}
	if r == nil {
		return fmt.Errorf("ggplot: nil renderer for level %s", l)
	}
	ls.byLevel[l] = append(ls.byLevel[l], r)
	return nil
}

// Remove deletes r from whichever level holds it and reports whether it
// was found.
func (ls *Levels) Remove(r Renderer) bool {
	for l := range ls.byLevel {
		if i := slices.Index(ls.byLevel[l], r); i >= 0 {
			ls.byLevel[l] = slices.Delete(ls.byLevel[l], i, i+1)
			return true
		}
	}
	return false
}

// LevelOf returns the level holding r.
func (ls *Levels) LevelOf(r Renderer) (Level, bool) {
	for l := range ls.byLevel {
		if slices.Contains(ls.byLevel[l], r) {
			return Level(l), true
		}
	}
	return 0, false
}

// Renderers returns a copy of the renderers at level l.
func (ls *Levels) Renderers(l Level) []Renderer {
	if !l.Valid() {
		return nil
	}
	return slices.Clone(ls.byLevel[l])
}

// Len returns the number of registered renderers.
func (ls *Levels) Len() int {
	n := 0
	for _, rs := range ls.byLevel {
		n += len(rs)
	}
	return n
}

// Each calls fn for every renderer at the given levels, in level order and
// then insertion order. With no levels every level is visited. fn sees a
// snapshot, so it may add or remove renderers.
func (ls *Levels) Each(fn func(Level, Renderer), levels ...Level) {
	if len(levels) == 0 {
		levels = AllLevels()
	} else {
		levels = slices.Clone(levels)
		slices.Sort(levels)
	}
	for _, l := range levels {
		if !l.Valid() {
			continue
		}
		for _, r := range slices.Clone(ls.byLevel[l]) {
			fn(l, r)
		}
	}
}
