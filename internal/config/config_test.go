// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package config

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/gogpu/ggplot/source"
	"github.com/gogpu/ggplot/tool"
)

const scatter = `
title = "samples"
width = 400
height = 300
frame_interval = "20ms"

[x]
label = "t"

[y]
start = 0
end = 100

[data.columns]
t = [0, 5, 10]
v = [10, 50, 90]

[[glyph]]
kind = "circle"
x = "t"
y = "v"
color = "#ff0000"
legend = "v"

[[glyph]]
kind = "line"
x = "t"
y = "v"
dash = [4, 2]
`

func TestDefault(t *testing.T) {
	fig := Default()
	if fig.Width != 600 || fig.Height != 400 {
		t.Errorf("default size = %dx%d, want 600x400", fig.Width, fig.Height)
	}
	if !fig.Guides.Axes || !fig.Guides.Grid {
		t.Error("default guides should include axes and grid")
	}
	if fig.Tools.Active != "pan" {
		t.Errorf("default active tool = %q, want pan", fig.Tools.Active)
	}
	if fig.Frame.Duration != 16*time.Millisecond {
		t.Errorf("default frame interval = %v", fig.Frame.Duration)
	}
	if err := fig.Validate(); err != nil {
		t.Errorf("default figure invalid: %v", err)
	}
}

func TestParse(t *testing.T) {
	fig, err := Parse([]byte(scatter))
	if err != nil {
		t.Fatal(err)
	}
	if fig.Title != "samples" || fig.Width != 400 || fig.Height != 300 {
		t.Errorf("header = %q %dx%d", fig.Title, fig.Width, fig.Height)
	}
	if fig.Frame.Duration != 20*time.Millisecond {
		t.Errorf("frame interval = %v, want 20ms", fig.Frame.Duration)
	}
	if !fig.X.Auto() || fig.Y.Auto() {
		t.Errorf("auto x = %v, auto y = %v", fig.X.Auto(), fig.Y.Auto())
	}
	if len(fig.Glyphs) != 2 || fig.Glyphs[1].Kind != "line" {
		t.Fatalf("glyphs = %+v", fig.Glyphs)
	}
	spec := fig.Glyphs[0].Spec()
	if spec.Color.R != 1 || spec.Color.G != 0 || spec.Legend != "v" {
		t.Errorf("glyph spec = %+v", spec)
	}
	if !slices.Equal(fig.Glyphs[1].Dash, []float64{4, 2}) {
		t.Errorf("dash = %v", fig.Glyphs[1].Dash)
	}
	// untouched defaults survive
	if fig.Style.MinBorder != 20 || !fig.Tools.WheelZoom {
		t.Errorf("defaults lost: %+v %+v", fig.Style, fig.Tools)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown key", "colour = 1"},
		{"bad size", "width = -1"},
		{"bad style color", "[style]\nborder = \"#zzzzzz\""},
		{"bad legend corner", "[guides]\nlegend = \"middle\""},
		{"sqlite without query", "[data]\nsqlite = \"x.db\""},
		{"sqlite and columns", "[data]\nsqlite = \"x.db\"\nquery = \"SELECT 1\"\n[data.columns]\na = [1]"},
		{"unknown glyph", "[[glyph]]\nkind = \"wedge\"\nx = \"a\"\ny = \"b\""},
		{"glyph without y", "[[glyph]]\nkind = \"circle\"\nx = \"a\""},
		{"bad glyph color", "[[glyph]]\nkind = \"circle\"\nx = \"a\"\ny = \"b\"\ncolor = \"red\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse() error = %v, want ErrInvalid", err)
			}
		})
	}
	if _, err := Parse([]byte("width = ")); err == nil {
		t.Error("syntax error accepted")
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fig.toml")
	fig, err := Parse([]byte(scatter))
	if err != nil {
		t.Fatal(err)
	}
	if err := Save(path, fig); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != fig.Title || got.Frame != fig.Frame || len(got.Glyphs) != 2 {
		t.Errorf("round trip lost fields: %+v", got)
	}
	if !slices.Equal(got.Data.Columns["v"], []float64{10, 50, 90}) {
		t.Errorf("columns = %v", got.Data.Columns)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestBuild(t *testing.T) {
	fig, err := Parse([]byte(scatter))
	if err != nil {
		t.Fatal(err)
	}
	p, err := Build(context.Background(), fig, t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	// 2 glyphs, 2 grids, 2 axes, 1 legend, 2 box overlays
	if n := p.View.Levels().Len(); n != 9 {
		t.Errorf("renderers = %d, want 9", n)
	}
	x := p.View.XRange()
	if x.Start() != -0.5 || x.End() != 10.5 {
		t.Errorf("auto x range = [%v, %v], want [-0.5, 10.5]", x.Start(), x.End())
	}
	if y := p.View.YRange(); y.Start() != 0 || y.End() != 100 {
		t.Errorf("y range = [%v, %v]", y.Start(), y.End())
	}
	want := []string{"pan", "box_zoom", "box_select", "wheel_zoom", "resize"}
	if got := p.View.Surface().Tools(); !slices.Equal(got, want) {
		t.Errorf("tools = %v, want %v", got, want)
	}
	if name, ok := p.View.Surface().Manager().Active(); !ok || name != "pan" {
		t.Errorf("active tool = %q, %v", name, ok)
	}
	if err := p.View.Render(); err != nil {
		t.Errorf("Render() = %v", err)
	}
}

func TestBuildSelectsRows(t *testing.T) {
	fig, err := Parse([]byte(scatter))
	if err != nil {
		t.Fatal(err)
	}
	p, err := Build(context.Background(), fig, "")
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	p.BoxSelect.OnSelect(tool.DataBox{X0: 4, X1: 11, Y0: 0, Y1: 100})
	if got := p.Source.Selection(); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("selection = %v, want [1 2]", got)
	}
}

func TestBuildCategorical(t *testing.T) {
	doc := `
[x]
factors = ["a", "b", "c"]

[data.strings]
k = ["a", "b", "c"]
[data.columns]
n = [3, 1, 2]

[[glyph]]
kind = "vbar"
x = "k"
top = "n"
`
	fig, err := Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	p, err := Build(context.Background(), fig, "")
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	if p.View.XFactors() == nil || p.View.XRange() != nil {
		t.Fatal("x axis should be categorical")
	}
	y := p.View.YRange()
	if math.Abs(y.Start()+0.15) > 1e-9 || math.Abs(y.End()-3.15) > 1e-9 {
		t.Errorf("auto y range = [%v, %v], want [-0.15, 3.15]", y.Start(), y.End())
	}
	if err := p.View.Render(); err != nil {
		t.Errorf("Render() = %v", err)
	}
}

func TestBuildSQLite(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	db, err := source.OpenSQLite(ctx, filepath.Join(dir, "m.db"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE m (t REAL, v REAL);
		INSERT INTO m VALUES (1, 2), (2, 4), (3, 8);`); err != nil {
		t.Fatal(err)
	}
	db.Close()

	fig := Default()
	fig.Data = Data{SQLite: "m.db", Query: "SELECT t, v FROM m ORDER BY t"}
	fig.Glyphs = []Glyph{{Kind: "line", X: "t", Y: "v"}}
	p, err := Build(ctx, fig, dir)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	if p.Source.Len() != 3 {
		t.Errorf("rows = %d, want 3", p.Source.Len())
	}
}

func TestBuildRejectsUnknownActiveTool(t *testing.T) {
	fig := Default()
	fig.Tools.Active = "lasso"
	if _, err := Build(context.Background(), fig, ""); !errors.Is(err, ErrInvalid) {
		t.Errorf("Build() error = %v, want ErrInvalid", err)
	}
	fig.Tools.Active = ""
	fig.Guides.Locale = "!!"
	if _, err := Build(context.Background(), fig, ""); !errors.Is(err, ErrInvalid) {
		t.Errorf("Build() error = %v, want ErrInvalid", err)
	}
}
