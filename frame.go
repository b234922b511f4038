// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggplot

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggplot/layout"
)

const titlePad = 6

// Render paints one frame immediately, bypassing throttling:
//
//  1. padding: every PaddingRequester (and the title) requests border space
//  2. background: border fill over the canvas, background fill over the
//     plot area
//  3. image, underlay and glyph levels clipped to the plot area
//  4. overlay, annotation and tool levels unclipped
//  5. title centered above the plot area
//
// A layout overflow or degenerate mapper skips step 3, leaving an empty
// plot area. Renderer failures do not stop the frame. All errors are
// joined, logged, passed to the OnError callback and returned.
func (p *PlotView) Render() error {
	start := time.Now()
	p.rendering = true
	defer func() { p.rendering = false }()
	p.dirty = false

	var errs []error
	if err := p.negotiatePadding(); err != nil {
		errs = append(errs, err)
	}
	layoutErr := p.view.Err()
	if layoutErr != nil {
		errs = append(errs, layoutErr)
	}

	dc := p.dc
	inner := p.view.InnerRect()
	outer := p.view.OuterRect()
	if err := fillRect(dc, outer, p.opts.borderFill); err != nil {
		errs = append(errs, err)
	}

	if layoutErr == nil && !inner.Empty() {
		if err := fillRect(dc, inner, p.opts.backgroundFill); err != nil {
			errs = append(errs, err)
		}
		if _, _, err := p.grid.MapToTarget(0, 0); err != nil {
			errs = append(errs, err)
		} else {
			dc.Push()
			dc.ClipRect(inner.X, inner.Y, inner.W, inner.H)
			errs = append(errs, p.renderLevels(dc, LevelImage, LevelUnderlay, LevelGlyph)...)
			dc.Pop()
		}
		if p.opts.outlineWidth > 0 {
			if err := strokeRect(dc, inner, p.opts.outline, p.opts.outlineWidth); err != nil {
				errs = append(errs, err)
			}
		}
	}

	errs = append(errs, p.renderLevels(dc, LevelOverlay, LevelAnnotation, LevelTool)...)
	if err := p.paintTitle(); err != nil {
		errs = append(errs, err)
	}

	p.frames++
	p.lastErr = errors.Join(errs...)
	if p.lastErr != nil {
		p.report(p.lastErr)
	}
	Logger().Debug("frame", "plot", p.id, "n", p.frames, "elapsed", time.Since(start))
	return p.lastErr
}

func (p *PlotView) negotiatePadding() error {
	p.view.BeginPadding()
	if p.opts.title != "" {
		p.view.RequestPadding(layout.Padding{Top: p.opts.titleSize + 2*titlePad})
	}
	p.levels.Each(func(_ Level, r Renderer) {
		if pr, ok := r.(PaddingRequester); ok {
			p.view.RequestPadding(pr.Padding(p))
		}
	})
	return p.view.CommitPadding(p.opts.symmetry)
}

func (p *PlotView) renderLevels(dc *gg.Context, levels ...Level) []error {
	var errs []error
	p.levels.Each(func(l Level, r Renderer) {
		if err := p.renderOne(dc, l, r); err != nil {
			errs = append(errs, err)
		}
	}, levels...)
	return errs
}

func (p *PlotView) renderOne(dc *gg.Context, l Level, r Renderer) (err error) {
	dc.Push()
	defer func() {
		dc.Pop()
		if v := recover(); v != nil {
			err = fmt.Errorf("%s renderer %T panicked: %v", l, r, v)
		}
	}()
	if err := r.Render(dc, p); err != nil {
		return fmt.Errorf("%s renderer %T: %w", l, r, err)
	}
	return nil
}

func (p *PlotView) paintTitle() error {
	if p.opts.title == "" {
		return nil
	}
	face, err := p.Face(p.opts.titleSize)
	if err != nil {
		return fmt.Errorf("title font: %w", err)
	}
	inner := p.view.InnerRect()
	p.dc.SetFont(face)
	setColor(p.dc, gg.Black)
	p.dc.DrawStringAnchored(p.opts.title, inner.X+inner.W/2, p.view.BorderTop()/2, 0.5, 0.5)
	return nil
}

func setColor(dc *gg.Context, c gg.RGBA) {
	dc.SetRGBA(c.R, c.G, c.B, c.A)
}

func fillRect(dc *gg.Context, r layout.Rect, c gg.RGBA) error {
	if c.A == 0 || r.Empty() {
		return nil
	}
	setColor(dc, c)
	dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	return dc.Fill()
}

func strokeRect(dc *gg.Context, r layout.Rect, c gg.RGBA, width float64) error {
	setColor(dc, c)
	dc.SetLineWidth(width)
	dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	return dc.Stroke()
}
