// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config reads TOML figure documents for the ggplot command.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/gg"

	"github.com/gogpu/ggplot/glyph"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid figure")

// Figure is one plot described in TOML.
type Figure struct {
	Title     string   `toml:"title"`
	TitleSize float64  `toml:"title_size"`
	Width     int      `toml:"width"`
	Height    int      `toml:"height"`
	X         Axis     `toml:"x"`
	Y         Axis     `toml:"y"`
	Data      Data     `toml:"data"`
	Glyphs    []Glyph  `toml:"glyph"`
	Guides    Guides   `toml:"guides"`
	Tools     Tools    `toml:"tools"`
	Style     Style    `toml:"style"`
	Frame     Duration `toml:"frame_interval"`
}

// Axis describes one data range. Factors make the axis categorical.
// With Start == End the range is fitted to the data.
type Axis struct {
	Start   float64  `toml:"start"`
	End     float64  `toml:"end"`
	Factors []string `toml:"factors"`
	Label   string   `toml:"label"`
}

// Auto reports whether the range is fitted to the data.
func (a Axis) Auto() bool { return len(a.Factors) == 0 && a.Start == a.End }

// Data is the column source: a SQLite query or inline columns.
type Data struct {
	SQLite  string               `toml:"sqlite"`
	Query   string               `toml:"query"`
	Columns map[string][]float64 `toml:"columns"`
	Strings map[string][]string  `toml:"strings"`
}

// Glyph is one glyph renderer. Kind is a glyph registry name.
type Glyph struct {
	Kind      string    `toml:"kind"`
	X         string    `toml:"x"`
	Y         string    `toml:"y"`
	Top       string    `toml:"top"`
	Bottom    float64   `toml:"bottom"`
	Width     float64   `toml:"width"`
	Height    float64   `toml:"height"`
	Size      float64   `toml:"size"`
	Color     string    `toml:"color"`
	Alpha     float64   `toml:"alpha"`
	LineWidth float64   `toml:"line_width"`
	Dash      []float64 `toml:"dash"`
	Legend    string    `toml:"legend"`
}

// Spec converts g into a glyph spec. The color must already be valid.
func (g Glyph) Spec() glyph.Spec {
	s := glyph.Spec{
		X:         g.X,
		Y:         g.Y,
		Top:       g.Top,
		Bottom:    g.Bottom,
		Width:     g.Width,
		Height:    g.Height,
		Size:      g.Size,
		Alpha:     g.Alpha,
		LineWidth: g.LineWidth,
		Dash:      g.Dash,
		Legend:    g.Legend,
	}
	if g.Color != "" {
		s.Color, _ = gg.ParseHex(g.Color)
	}
	return s
}

// Guides selects axes, grid lines and the legend.
type Guides struct {
	Axes   bool   `toml:"axes"`
	Grid   bool   `toml:"grid"`
	Legend string `toml:"legend"` // "", "top_right", "top_left", "bottom_right", "bottom_left"
	Locale string `toml:"locale"`
}

// Tools selects the interactive tools and the one armed at start.
type Tools struct {
	Pan       bool   `toml:"pan"`
	BoxZoom   bool   `toml:"box_zoom"`
	BoxSelect bool   `toml:"box_select"`
	WheelZoom bool   `toml:"wheel_zoom"`
	Resize    bool   `toml:"resize"`
	Active    string `toml:"active"`
}

// Style holds the frame colors as hex strings.
type Style struct {
	Border       string  `toml:"border"`
	Background   string  `toml:"background"`
	Outline      string  `toml:"outline"`
	OutlineWidth float64 `toml:"outline_width"`
	MinBorder    float64 `toml:"min_border"`
}

// Duration is a time.Duration written as a string such as "16ms".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns a 600x400 figure with axes, grid and every tool enabled.
func Default() *Figure {
	return &Figure{
		TitleSize: 16,
		Width:     600,
		Height:    400,
		Guides:    Guides{Axes: true, Grid: true, Legend: "top_right", Locale: "en"},
		Tools: Tools{
			Pan:       true,
			BoxZoom:   true,
			BoxSelect: true,
			WheelZoom: true,
			Resize:    true,
			Active:    "pan",
		},
		Style: Style{
			Border:       "#ffffff",
			Background:   "#ffffff",
			Outline:      "#444444",
			OutlineWidth: 1,
			MinBorder:    20,
		},
		Frame: Duration{16 * time.Millisecond},
	}
}

// Parse decodes a TOML document over the defaults and validates it.
func Parse(data []byte) (*Figure, error) {
	fig := Default()
	md, err := toml.Decode(string(data), fig)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ErrInvalid, undec[0].String())
	}
	if err := fig.Validate(); err != nil {
		return nil, err
	}
	return fig, nil
}

// Load reads and parses a figure file.
func Load(path string) (*Figure, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	fig, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fig, nil
}

// Save writes fig as TOML.
func Save(path string, fig *Figure) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(fig)
}

// Validate checks sizes, colors, glyph kinds and the data source.
func (f *Figure) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, f.Width, f.Height)
	}
	if f.Data.SQLite != "" && f.Data.Query == "" {
		return fmt.Errorf("%w: data.sqlite needs data.query", ErrInvalid)
	}
	if f.Data.SQLite != "" && (len(f.Data.Columns) > 0 || len(f.Data.Strings) > 0) {
		return fmt.Errorf("%w: data.sqlite and inline columns are exclusive", ErrInvalid)
	}
	for name, hex := range map[string]string{
		"style.border":     f.Style.Border,
		"style.background": f.Style.Background,
		"style.outline":    f.Style.Outline,
	} {
		if err := checkColor(name, hex); err != nil {
			return err
		}
	}
	switch f.Guides.Legend {
	case "", "top_right", "top_left", "bottom_right", "bottom_left":
	default:
		return fmt.Errorf("%w: guides.legend %q", ErrInvalid, f.Guides.Legend)
	}

	kinds := make(map[string]bool)
	for _, k := range glyph.Kinds() {
		kinds[k] = true
	}
	for i, g := range f.Glyphs {
		if !kinds[g.Kind] {
			return fmt.Errorf("%w: glyph %d: unknown kind %q", ErrInvalid, i, g.Kind)
		}
		if g.X == "" || (g.Y == "" && g.Top == "") {
			return fmt.Errorf("%w: glyph %d: x and y columns are required", ErrInvalid, i)
		}
		if err := checkColor(fmt.Sprintf("glyph %d color", i), g.Color); err != nil {
			return err
		}
	}
	return nil
}

func checkColor(name, hex string) error {
	if hex == "" {
		return nil
	}
	if _, err := gg.ParseHex(hex); err != nil {
		return fmt.Errorf("%w: %s %q: %v", ErrInvalid, name, hex, err)
	}
	return nil
}
