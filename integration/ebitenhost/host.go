// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ebitenhost shows a PlotView in an ebiten window.
//
// The host polls mouse, wheel and modifier keys every tick, feeds them to
// the plot's tool surface and lets the plot repaint at most once per frame
// interval. The painted canvas is uploaded to the screen only when a new
// frame was rendered.
//
//	h := ebitenhost.New(plot)
//	h.Bind(ebiten.KeyU, func() { _ = plot.Undo() })
//	if err := h.Run("demo"); err != nil {
//	    log.Fatal(err)
//	}
package ebitenhost

import (
	"image"
	"image/draw"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/tool"
)

// Host is an ebiten.Game driving one plot. It also serves as the plot's
// tool.ScrollHost.
type Host struct {
	plot     *ggplot.PlotView
	bindings map[ebiten.Key]func()
	overflow tool.Overflow
	now      func() time.Time

	mods    tool.Modifiers
	escape  bool
	inside  bool
	pressed bool
	x, y    float64

	screen *ebiten.Image
	pix    []byte
	drawn  int
	w, h   int
}

// New creates a host for p and registers it as the plot's scroll host.
func New(p *ggplot.PlotView) *Host {
	h := &Host{
		plot:     p,
		bindings: make(map[ebiten.Key]func()),
		now:      time.Now,
		drawn:    -1,
	}
	p.Surface().SetScrollHost(h)
	return h
}

// Bind runs fn whenever k is pressed. A nil fn removes the binding.
func (h *Host) Bind(k ebiten.Key, fn func()) {
	if fn == nil {
		delete(h.bindings, k)
		return
	}
	h.bindings[k] = fn
}

// Overflow implements tool.ScrollHost.
func (h *Host) Overflow() tool.Overflow { return h.overflow }

// SetOverflow implements tool.ScrollHost. The window has no scrollable
// content, so the setting is only recorded.
func (h *Host) SetOverflow(o tool.Overflow) { h.overflow = o }

// Run opens a window sized to the plot and blocks until it is closed.
func (h *Host) Run(title string) error {
	w, ht := h.size()
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w, ht)
	ebiten.SetTPS(60)
	return ebiten.RunGame(h)
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	w, ht := h.size()
	h.apply(poll(h.bindings, w, ht))
	if w != h.w || ht != h.h {
		if h.w != 0 {
			ebiten.SetWindowSize(w, ht)
		}
		h.w, h.h = w, ht
	}
	return nil
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	w, ht := h.size()
	if h.screen == nil || h.screen.Bounds().Dx() != w || h.screen.Bounds().Dy() != ht {
		if h.screen != nil {
			h.screen.Deallocate()
		}
		h.screen = ebiten.NewImage(w, ht)
		h.drawn = -1
	}
	if n := h.plot.Frames(); n != h.drawn {
		h.pix = rgbaPix(h.plot.Image(), h.pix)
		if len(h.pix) == 4*w*ht {
			h.screen.WritePixels(h.pix)
			h.drawn = n
		}
	}
	screen.DrawImage(h.screen, nil)
}

// Layout implements ebiten.Game. The logical screen always matches the
// plot canvas.
func (h *Host) Layout(int, int) (int, int) {
	return h.size()
}

func (h *Host) size() (int, int) {
	v := h.plot.View()
	return int(v.OuterWidth()), int(v.OuterHeight())
}

// input is one tick of polled input state.
type input struct {
	x, y      float64
	inside    bool
	pressed   bool
	wheel     float64
	mods      tool.Modifiers
	escape    bool
	triggered []ebiten.Key
}

func poll(bindings map[ebiten.Key]func(), w, h int) input {
	cx, cy := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	in := input{
		x:       float64(cx),
		y:       float64(cy),
		pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		wheel:   wy,
		escape:  ebiten.IsKeyPressed(ebiten.KeyEscape),
	}
	in.inside = cx >= 0 && cy >= 0 && cx < w && cy < h
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		in.mods |= tool.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		in.mods |= tool.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		in.mods |= tool.ModAlt
	}
	for k := range bindings {
		if inpututil.IsKeyJustPressed(k) {
			in.triggered = append(in.triggered, k)
		}
	}
	return in
}

// apply translates the difference between the previous and the current
// input into surface events, runs triggered bindings and ticks the plot.
func (h *Host) apply(in input) {
	s := h.plot.Surface()

	for _, m := range []struct {
		bit tool.Modifiers
		key tool.Key
	}{{tool.ModShift, tool.KeyShift}, {tool.ModCtrl, tool.KeyControl}, {tool.ModAlt, tool.KeyAlt}} {
		switch was, is := h.mods.Has(m.bit), in.mods.Has(m.bit); {
		case is && !was:
			s.KeyDown(m.key)
		case was && !is:
			s.KeyUp(m.key)
		}
	}
	h.mods = in.mods
	if in.escape != h.escape {
		if in.escape {
			s.KeyDown(tool.KeyEscape)
		} else {
			s.KeyUp(tool.KeyEscape)
		}
		h.escape = in.escape
	}

	moved := in.x != h.x || in.y != h.y
	switch {
	case !in.inside && h.inside:
		s.MouseLeave()
	case in.pressed && !h.pressed:
		s.MouseDown(in.x, in.y, in.mods)
	case moved && in.inside:
		s.MouseMove(in.x, in.y, in.mods)
	}
	if !in.pressed && h.pressed {
		s.MouseUp(in.x, in.y)
	}
	h.inside, h.pressed, h.x, h.y = in.inside, in.pressed, in.x, in.y

	if in.wheel != 0 && in.inside {
		s.Wheel(in.x, in.y, in.wheel)
	}
	for _, k := range in.triggered {
		if fn := h.bindings[k]; fn != nil {
			fn()
		}
	}
	// frame errors are logged and reported by the plot itself
	_, _ = h.plot.Tick(h.now())
}

// rgbaPix returns the canvas as premultiplied RGBA bytes, reusing buf when
// it is large enough.
func rgbaPix(img image.Image, buf []byte) []byte {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == 4*rgba.Rect.Dx() {
		return rgba.Pix
	}
	b := img.Bounds()
	n := 4 * b.Dx() * b.Dy()
	if cap(buf) < n {
		buf = make([]byte, n)
	}
	dst := &image.RGBA{Pix: buf[:n], Stride: 4 * b.Dx(), Rect: image.Rect(0, 0, b.Dx(), b.Dy())}
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Src)
	return dst.Pix
}
