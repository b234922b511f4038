// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggplot

import (
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/ggplot/layout"
	"github.com/gogpu/ggplot/mapper"
	"github.com/gogpu/ggplot/tool"
)

// DefaultFrameInterval is the minimum time between two paints.
const DefaultFrameInterval = time.Second / 60

// Option configures a PlotView during creation.
//
// Example:
//
//	p, err := ggplot.NewPlotView(800, 600, x, y,
//	    ggplot.WithTitle("Latency"),
//	    ggplot.WithMinBorder(layout.Uniform(30)),
//	)
type Option func(*options)

type options struct {
	title          string
	titleSize      float64
	minBorder      layout.Padding
	symmetry       layout.Symmetry
	borderFill     gg.RGBA
	backgroundFill gg.RGBA
	outline        gg.RGBA
	outlineWidth   float64
	frameInterval  time.Duration
	onError        func(error)
	xFactors       *mapper.FactorRange
	yFactors       *mapper.FactorRange
	font           *text.FontSource
	scrollHost     tool.ScrollHost
}

func defaultOptions() options {
	return options{
		titleSize:      16,
		minBorder:      layout.Uniform(20),
		borderFill:     gg.White,
		backgroundFill: gg.White,
		outline:        gg.Hex("#aaaaaa"),
		outlineWidth:   1,
		frameInterval:  DefaultFrameInterval,
	}
}

// WithTitle sets the title painted centered above the plot area.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// WithTitleSize sets the title font size in points.
func WithTitleSize(size float64) Option {
	return func(o *options) {
		if size > 0 {
			o.titleSize = size
		}
	}
}

// WithMinBorder sets the hard minimum border on each side.
func WithMinBorder(p layout.Padding) Option {
	return func(o *options) {
		o.minBorder = p
	}
}

// WithSymmetry forces opposing borders to be equal after padding
// negotiation.
func WithSymmetry(s layout.Symmetry) Option {
	return func(o *options) {
		o.symmetry = s
	}
}

// WithBorderFill sets the color painted over the whole canvas.
func WithBorderFill(c gg.RGBA) Option {
	return func(o *options) {
		o.borderFill = c
	}
}

// WithBackgroundFill sets the color painted over the plot area.
func WithBackgroundFill(c gg.RGBA) Option {
	return func(o *options) {
		o.backgroundFill = c
	}
}

// WithOutline sets the plot area outline. A zero width disables it.
func WithOutline(c gg.RGBA, width float64) Option {
	return func(o *options) {
		o.outline = c
		o.outlineWidth = width
	}
}

// WithFrameInterval sets the minimum time between two paints.
func WithFrameInterval(d time.Duration) Option {
	return func(o *options) {
		if d >= 0 {
			o.frameInterval = d
		}
	}
}

// WithOnError installs a callback receiving layout overflow, degenerate
// mapper and renderer errors. Errors are logged either way.
func WithOnError(fn func(error)) Option {
	return func(o *options) {
		o.onError = fn
	}
}

// WithXFactors makes the x axis categorical. The x range passed to
// NewPlotView is ignored and may be nil.
func WithXFactors(f *mapper.FactorRange) Option {
	return func(o *options) {
		o.xFactors = f
	}
}

// WithYFactors makes the y axis categorical.
func WithYFactors(f *mapper.FactorRange) Option {
	return func(o *options) {
		o.yFactors = f
	}
}

// WithFont sets the font used for the title and guides. The default is Go
// Regular.
func WithFont(src *text.FontSource) Option {
	return func(o *options) {
		o.font = src
	}
}

// WithScrollHost sets the host whose scrolling is suppressed while a
// wheel tool is armed.
func WithScrollHost(h tool.ScrollHost) Option {
	return func(o *options) {
		o.scrollHost = h
	}
}
