// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggplot

import (
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

var defaultFont = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// DefaultFontSource returns the shared Go Regular font source.
func DefaultFontSource() (*text.FontSource, error) {
	return defaultFont()
}

// Face returns a face of the plot font at the given size. Faces are cached
// per size.
func (p *PlotView) Face(size float64) (text.Face, error) {
	if f, ok := p.faces[size]; ok {
		return f, nil
	}
	src := p.opts.font
	if src == nil {
		var err error
		if src, err = DefaultFontSource(); err != nil {
			return nil, err
		}
	}
	f := src.Face(size)
	p.faces[size] = f
	return f, nil
}
