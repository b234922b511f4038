// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggplot

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/gg"
)

type nopRenderer struct{ name string }

func (*nopRenderer) Render(*gg.Context, *PlotView) error { return nil }

func TestLevelNames(t *testing.T) {
	want := []string{"image", "underlay", "glyph", "overlay", "annotation", "tool"}
	for i, l := range AllLevels() {
		if l.String() != want[i] {
			t.Errorf("Level(%d).String() = %q, want %q", i, l, want[i])
		}
		got, err := ParseLevel(want[i])
		if err != nil || got != l {
			t.Errorf("ParseLevel(%q) = %v, %v", want[i], got, err)
		}
		if l.Clipped() != (i < 3) {
			t.Errorf("%s.Clipped() = %v", l, l.Clipped())
		}
	}
	if _, err := ParseLevel("background"); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("ParseLevel(background) error = %v, want ErrUnknownLevel", err)
	}
	if Level(9).Valid() {
		t.Error("Level(9).Valid() = true")
	}
}

func TestLevelsOrder(t *testing.T) {
	var ls Levels
	a, b, c, d := &nopRenderer{"a"}, &nopRenderer{"b"}, &nopRenderer{"c"}, &nopRenderer{"d"}
	for _, add := range []struct {
		l Level
		r Renderer
	}{{LevelTool, a}, {LevelGlyph, b}, {LevelImage, c}, {LevelGlyph, d}} {
		if err := ls.Add(add.l, add.r); err != nil {
			t.Fatal(err)
		}
	}

	var got []string
	ls.Each(func(_ Level, r Renderer) { got = append(got, r.(*nopRenderer).name) })
	if want := []string{"c", "b", "d", "a"}; !slices.Equal(got, want) {
		t.Errorf("Each order = %v, want %v", got, want)
	}

	got = got[:0]
	ls.Each(func(_ Level, r Renderer) { got = append(got, r.(*nopRenderer).name) }, LevelTool, LevelImage)
	if want := []string{"c", "a"}; !slices.Equal(got, want) {
		t.Errorf("Each(tool, image) order = %v, want %v", got, want)
	}

	if l, ok := ls.LevelOf(d); !ok || l != LevelGlyph {
		t.Errorf("LevelOf(d) = %v, %v", l, ok)
	}
	if !ls.Remove(b) || ls.Remove(b) {
		t.Error("Remove(b) should succeed once")
	}
	if ls.Len() != 3 {
		t.Errorf("Len() = %d, want 3", ls.Len())
	}
}

func TestLevelsAddInvalid(t *testing.T) {
	var ls Levels
	if err := ls.Add(Level(-1), &nopRenderer{}); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("Add(-1) error = %v, want ErrUnknownLevel", err)
	}
	if err := ls.Add(LevelGlyph, nil); err == nil {
		t.Error("Add(nil) succeeded")
	}
}

func TestLevelsEachSnapshot(t *testing.T) {
	var ls Levels
	a := &nopRenderer{"a"}
	_ = ls.Add(LevelGlyph, a)
	n := 0
	ls.Each(func(Level, Renderer) {
		n++
		_ = ls.Add(LevelGlyph, &nopRenderer{"late"})
	})
	if n != 1 {
		t.Errorf("Each visited %d renderers, want 1", n)
	}
}
