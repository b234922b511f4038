// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package config

import (
	"context"
	"fmt"
	"math"
	"path/filepath"

	"github.com/gogpu/gg"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/glyph"
	"github.com/gogpu/ggplot/guide"
	"github.com/gogpu/ggplot/layout"
	"github.com/gogpu/ggplot/mapper"
	"github.com/gogpu/ggplot/source"
	"github.com/gogpu/ggplot/tool"
)

// Plot is a figure built into a live PlotView.
type Plot struct {
	View      *ggplot.PlotView
	Source    *source.ColumnDataSource
	Glyphs    []ggplot.Renderer
	BoxZoom   *tool.BoxZoomTool
	BoxSelect *tool.BoxSelectTool
}

// Close releases the plot and its glyphs.
func (p *Plot) Close() error {
	for _, g := range p.Glyphs {
		if d, ok := g.(interface{ Destroy() }); ok {
			d.Destroy()
		}
	}
	return p.View.Close()
}

// Build loads the figure data and assembles a PlotView with its glyphs,
// guides and tools. Relative SQLite paths resolve against dir. Extra
// options are applied after the figure's own.
func Build(ctx context.Context, fig *Figure, dir string, extra ...ggplot.Option) (*Plot, error) {
	if err := fig.Validate(); err != nil {
		return nil, err
	}
	src, err := loadData(ctx, fig.Data, dir)
	if err != nil {
		return nil, err
	}

	opts := []ggplot.Option{
		ggplot.WithTitle(fig.Title),
		ggplot.WithMinBorder(layout.Uniform(fig.Style.MinBorder)),
		ggplot.WithFrameInterval(fig.Frame.Duration),
	}
	if fig.TitleSize > 0 {
		opts = append(opts, ggplot.WithTitleSize(fig.TitleSize))
	}
	if c, ok := color(fig.Style.Border); ok {
		opts = append(opts, ggplot.WithBorderFill(c))
	}
	if c, ok := color(fig.Style.Background); ok {
		opts = append(opts, ggplot.WithBackgroundFill(c))
	}
	if c, ok := color(fig.Style.Outline); ok {
		opts = append(opts, ggplot.WithOutline(c, fig.Style.OutlineWidth))
	}

	x, xf, err := dataRange("x", fig.X, src, fig.Glyphs, xColumns)
	if err != nil {
		return nil, err
	}
	y, yf, err := dataRange("y", fig.Y, src, fig.Glyphs, yColumns)
	if err != nil {
		return nil, err
	}
	if xf != nil {
		opts = append(opts, ggplot.WithXFactors(xf))
	}
	if yf != nil {
		opts = append(opts, ggplot.WithYFactors(yf))
	}

	view, err := ggplot.NewPlotView(fig.Width, fig.Height, x, y, append(opts, extra...)...)
	if err != nil {
		return nil, err
	}
	p := &Plot{View: view, Source: src}
	if err := p.assemble(fig); err != nil {
		_ = p.Close()
		return nil, err
	}
	return p, nil
}

func (p *Plot) assemble(fig *Figure) error {
	var items []guide.LegendItem
	for i, g := range fig.Glyphs {
		r, err := glyph.New(g.Kind, p.Source, g.Spec())
		if err != nil {
			return fmt.Errorf("glyph %d: %w", i, err)
		}
		p.Glyphs = append(p.Glyphs, r)
		if err := p.View.Add(ggplot.LevelGlyph, r); err != nil {
			return err
		}
		if it, ok := r.(guide.LegendItem); ok {
			items = append(items, it)
		}
	}
	if err := p.addGuides(fig, items); err != nil {
		return err
	}
	return p.addTools(fig)
}

func (p *Plot) addGuides(fig *Figure, items []guide.LegendItem) error {
	g := fig.Guides
	var ticker guide.Ticker = guide.NumberTicker{}
	if g.Locale != "" {
		tag, err := language.Parse(g.Locale)
		if err != nil {
			return fmt.Errorf("%w: guides.locale %q: %v", ErrInvalid, g.Locale, err)
		}
		ticker = guide.NumberTicker{Printer: message.NewPrinter(tag)}
	}
	if g.Grid {
		for _, d := range []guide.Dimension{guide.DimensionX, guide.DimensionY} {
			grid := guide.NewGrid(d)
			grid.Ticker = ticker
			if err := p.View.Add(ggplot.LevelUnderlay, grid); err != nil {
				return err
			}
		}
	}
	if g.Axes {
		for _, a := range []struct {
			side  layout.Side
			label string
		}{{layout.Bottom, fig.X.Label}, {layout.Left, fig.Y.Label}} {
			ax := guide.NewAxis(a.side)
			ax.Label, ax.Ticker = a.label, ticker
			if err := p.View.Add(ggplot.LevelAnnotation, ax); err != nil {
				return err
			}
		}
	}
	if g.Legend != "" && len(items) > 0 {
		lg := guide.NewLegend(items...)
		lg.Corner = corners[g.Legend]
		if err := p.View.Add(ggplot.LevelAnnotation, lg); err != nil {
			return err
		}
	}
	return nil
}

var corners = map[string]guide.Corner{
	"top_right":    guide.TopRight,
	"top_left":     guide.TopLeft,
	"bottom_right": guide.BottomRight,
	"bottom_left":  guide.BottomLeft,
}

func (p *Plot) addTools(fig *Figure) error {
	t := fig.Tools
	s := p.View.Surface()
	var tools []tool.Tool
	if t.Pan {
		tools = append(tools, tool.NewPanTool(p.View))
	}
	if t.BoxZoom {
		p.BoxZoom = tool.NewBoxZoomTool(p.View, tool.Both)
		p.BoxZoom.Modifier = tool.ModShift
		tools = append(tools, p.BoxZoom)
	}
	if t.BoxSelect {
		p.BoxSelect = tool.NewBoxSelectTool(p.View, tool.Both, p.selectBox(fig))
		tools = append(tools, p.BoxSelect)
	}
	if t.WheelZoom {
		tools = append(tools, tool.NewWheelZoomTool(p.View))
	}
	if t.Resize {
		rt := tool.NewResizeTool(p.View)
		rt.Modifier = tool.ModAlt
		tools = append(tools, rt)
	}
	for _, tl := range tools {
		if err := s.Add(tl); err != nil {
			return err
		}
	}
	var boxes []guide.Boxer
	if p.BoxZoom != nil {
		boxes = append(boxes, p.BoxZoom)
	}
	if p.BoxSelect != nil {
		boxes = append(boxes, p.BoxSelect)
	}
	for _, b := range boxes {
		if err := p.View.Add(ggplot.LevelOverlay, guide.NewBoxOverlay(b)); err != nil {
			return err
		}
	}
	if t.Active != "" {
		if err := s.Activate(t.Active); err != nil {
			return fmt.Errorf("%w: tools.active: %v", ErrInvalid, err)
		}
	}
	return nil
}

// selectBox selects rows of the first glyph whose columns are numeric.
func (p *Plot) selectBox(fig *Figure) func(tool.DataBox) {
	return func(b tool.DataBox) {
		for _, g := range fig.Glyphs {
			ycol := g.Y
			if ycol == "" {
				ycol = g.Top
			}
			sel, err := p.Source.SelectRect(g.X, ycol, b.X0, b.X1, b.Y0, b.Y1)
			if err != nil {
				continue
			}
			ggplot.Logger().Debug("box select", "plot", p.View.ID(), "rows", len(sel))
			return
		}
	}
}

func loadData(ctx context.Context, d Data, dir string) (*source.ColumnDataSource, error) {
	if d.SQLite == "" {
		src := source.NewColumnDataSource()
		if err := src.SetColumns(d.Columns, d.Strings); err != nil {
			return nil, fmt.Errorf("data: %w", err)
		}
		return src, nil
	}
	path := d.SQLite
	if !filepath.IsAbs(path) && path != ":memory:" {
		path = filepath.Join(dir, path)
	}
	db, err := source.OpenSQLite(ctx, path)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return source.FromSQL(ctx, db, d.Query)
}

type columnsFunc func(Glyph) []string

func xColumns(g Glyph) []string { return []string{g.X} }

func yColumns(g Glyph) []string {
	if g.Top != "" {
		return []string{g.Top}
	}
	return []string{g.Y}
}

// dataRange returns either a continuous range or a factor range for an
// axis. Auto ranges span the finite values of the glyph columns plus a 5%
// margin on each side.
func dataRange(name string, a Axis, src *source.ColumnDataSource, glyphs []Glyph, cols columnsFunc) (*mapper.Range, *mapper.FactorRange, error) {
	if len(a.Factors) > 0 {
		f, err := mapper.NewFactorRange(a.Factors...)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s.factors: %v", ErrInvalid, name, err)
		}
		return nil, f, nil
	}
	if !a.Auto() {
		return mapper.NewNamedRange(name, a.Start, a.End), nil, nil
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	include := func(v float64) {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}
	for _, g := range glyphs {
		for _, c := range cols(g) {
			vs, err := src.Column(c)
			if err != nil {
				continue
			}
			for _, v := range vs {
				include(v)
			}
		}
		if g.Top != "" && name == "y" {
			include(g.Bottom)
		}
	}
	switch {
	case lo > hi:
		lo, hi = 0, 1
	case lo == hi:
		lo, hi = lo-0.5, hi+0.5
	default:
		pad := (hi - lo) * 0.05
		lo, hi = lo-pad, hi+pad
	}
	return mapper.NewNamedRange(name, lo, hi), nil, nil
}

func color(hex string) (gg.RGBA, bool) {
	if hex == "" {
		return gg.RGBA{}, false
	}
	c, err := gg.ParseHex(hex)
	return c, err == nil
}
