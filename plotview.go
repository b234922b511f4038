// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggplot

import (
	"errors"
	"fmt"
	"image"
	"io"
	"sync/atomic"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/ggplot/layout"
	"github.com/gogpu/ggplot/mapper"
	"github.com/gogpu/ggplot/props"
	"github.com/gogpu/ggplot/tool"
)

var plotSeq atomic.Uint64

// PlotView owns the canvas, geometry, mappers and renderers of one plot.
//
// A PlotView and everything attached to it (ranges, renderers, tools) must
// be used from a single goroutine.
type PlotView struct {
	id   string
	opts options

	dc   *gg.Context
	view *layout.ViewState

	xRange  *mapper.Range
	yRange  *mapper.Range
	xMapper mapper.Mapper
	yMapper mapper.Mapper
	grid    *mapper.GridMapper
	owned   []interface{ Destroy() }

	levels   Levels
	observed map[Renderer]func()
	surface  *tool.Surface
	faces    map[float64]text.Face
	unsubs   []func()

	dirty     bool
	rendering bool
	paused    int
	lastPaint time.Time
	frames    int
	lastErr   error

	history history
	closed  bool
}

// NewPlotView creates a width x height plot over the given data ranges.
// Ranges may be shared with other plots. A nil range is allowed only for
// an axis made categorical with WithXFactors or WithYFactors.
func NewPlotView(width, height int, x, y *mapper.Range, opts ...Option) (*PlotView, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("ggplot: invalid size %dx%d", width, height)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.xFactors != nil {
		x = nil
	} else if x == nil {
		return nil, errors.New("ggplot: x range is nil")
	}
	if o.yFactors != nil {
		y = nil
	} else if y == nil {
		return nil, errors.New("ggplot: y range is nil")
	}

	p := &PlotView{
		id:       fmt.Sprintf("plot%d", plotSeq.Add(1)),
		opts:     o,
		xRange:   x,
		yRange:   y,
		observed: make(map[Renderer]func()),
		faces:    make(map[float64]text.Face),
	}
	p.view = layout.NewViewState(float64(width), float64(height), o.minBorder)

	var err error
	if p.xMapper, err = p.newMapper(x, o.xFactors, p.view.InnerRangeHorizontal()); err != nil {
		p.view.Destroy()
		return nil, fmt.Errorf("ggplot: x mapper: %w", err)
	}
	if p.yMapper, err = p.newMapper(y, o.yFactors, p.view.InnerRangeVertical()); err != nil {
		p.destroyMappers()
		p.view.Destroy()
		return nil, fmt.Errorf("ggplot: y mapper: %w", err)
	}
	p.grid = mapper.NewGridMapper(p.xMapper, p.yMapper)
	p.dc = gg.NewContext(width, height)

	p.watch(p.view.Node())
	for _, r := range []*mapper.Range{x, y} {
		if r != nil {
			p.watch(r.Node())
		}
	}
	for _, f := range []*mapper.FactorRange{o.xFactors, o.yFactors} {
		if f != nil {
			p.watch(f.Node())
		}
	}

	p.history.reset(p.rangeState())
	p.surface = tool.NewSurface(p)
	if o.scrollHost != nil {
		p.surface.SetScrollHost(o.scrollHost)
	}
	p.dirty = true
	return p, nil
}

func (p *PlotView) newMapper(r *mapper.Range, f *mapper.FactorRange, target *mapper.Range) (mapper.Mapper, error) {
	if f != nil {
		m, err := mapper.NewCategoricalMapper(f, target)
		if err != nil {
			return nil, err
		}
		p.owned = append(p.owned, m)
		return m, nil
	}
	m, err := mapper.NewLinearMapper(r, target)
	if err != nil {
		return nil, err
	}
	p.owned = append(p.owned, m)
	return m, nil
}

func (p *PlotView) destroyMappers() {
	for _, m := range p.owned {
		m.Destroy()
	}
	p.owned = nil
}

// watch schedules a redraw on any change of n.
func (p *PlotView) watch(n *props.Node) {
	h := n.OnAnyChange(func(props.Name) { p.RequestRedraw() })
	p.unsubs = append(p.unsubs, func() { n.Off(h) })
}

// ID returns a process-unique identifier used in logs.
func (p *PlotView) ID() string { return p.id }

// Context returns the canvas.
func (p *PlotView) Context() *gg.Context { return p.dc }

// View returns the plot geometry.
func (p *PlotView) View() *layout.ViewState { return p.view }

// XRange returns the x data range, or nil for a categorical x axis.
func (p *PlotView) XRange() *mapper.Range { return p.xRange }

// YRange returns the y data range, or nil for a categorical y axis.
func (p *PlotView) YRange() *mapper.Range { return p.yRange }

// XFactors returns the x categories, or nil for a continuous x axis.
func (p *PlotView) XFactors() *mapper.FactorRange { return p.opts.xFactors }

// YFactors returns the y categories, or nil for a continuous y axis.
func (p *PlotView) YFactors() *mapper.FactorRange { return p.opts.yFactors }

// XMapper returns the mapper from x data to horizontal screen pixels.
func (p *PlotView) XMapper() mapper.Mapper { return p.xMapper }

// YMapper returns the mapper from y data to vertical screen pixels (y up).
func (p *PlotView) YMapper() mapper.Mapper { return p.yMapper }

// Grid returns the combined x/y mapper.
func (p *PlotView) Grid() *mapper.GridMapper { return p.grid }

// Levels returns the renderer registry.
func (p *PlotView) Levels() *Levels { return &p.levels }

// Surface returns the plot's input surface, which owns its tools.
func (p *PlotView) Surface() *tool.Surface { return p.surface }

// Title returns the plot title.
func (p *PlotView) Title() string { return p.opts.title }

// SetTitle replaces the title and schedules a redraw.
func (p *PlotView) SetTitle(title string) {
	if title != p.opts.title {
		p.opts.title = title
		p.RequestRedraw()
	}
}

// Add registers r at level l. Observable renderers schedule a redraw
// whenever their node changes.
func (p *PlotView) Add(l Level, r Renderer) error {
	if err := p.levels.Add(l, r); err != nil {
		return err
	}
	if o, ok := r.(Observable); ok {
		if n := o.Node(); n != nil {
			h := n.OnAnyChange(func(props.Name) { p.RequestRedraw() })
			p.observed[r] = func() { n.Off(h) }
		}
	}
	p.RequestRedraw()
	return nil
}

// Remove unregisters r and reports whether it was registered.
func (p *PlotView) Remove(r Renderer) bool {
	if !p.levels.Remove(r) {
		return false
	}
	if off, ok := p.observed[r]; ok {
		off()
		delete(p.observed, r)
	}
	p.RequestRedraw()
	return true
}

// Resize changes the canvas size. The next frame uses the new geometry.
func (p *PlotView) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("ggplot: invalid size %dx%d", width, height)
	}
	if err := p.dc.Resize(width, height); err != nil {
		return err
	}
	return p.view.SetOuterSize(float64(width), float64(height))
}

// Image returns the canvas as an image.
func (p *PlotView) Image() image.Image { return p.dc.Image() }

// SavePNG writes the canvas to a PNG file.
func (p *PlotView) SavePNG(path string) error { return p.dc.SavePNG(path) }

// EncodePNG writes the canvas as PNG to w.
func (p *PlotView) EncodePNG(w io.Writer) error { return p.dc.EncodePNG(w) }

// Err returns the error of the most recent frame, if any.
func (p *PlotView) Err() error { return p.lastErr }

// Close detaches the plot from its shared ranges and releases the canvas.
// Renderers and ranges are left intact.
func (p *PlotView) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	p.surface.Close()
	for _, off := range p.unsubs {
		off()
	}
	p.unsubs = nil
	for r, off := range p.observed {
		off()
		delete(p.observed, r)
	}
	p.destroyMappers()
	p.view.Destroy()
	return p.dc.Close()
}

func (p *PlotView) report(err error) {
	Logger().Warn("plot frame failed", "plot", p.id, "err", err)
	if p.opts.onError != nil {
		p.opts.onError(err)
	}
}
