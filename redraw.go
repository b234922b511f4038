// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggplot

import "time"

// RequestRedraw schedules a paint on the next Tick. Requests made while
// the view is paused or painting are dropped.
func (p *PlotView) RequestRedraw() {
	if p.rendering || p.paused > 0 || p.closed {
		return
	}
	p.dirty = true
}

// Dirty reports whether a redraw is pending.
func (p *PlotView) Dirty() bool { return p.dirty }

// Frames returns the number of frames painted so far.
func (p *PlotView) Frames() int { return p.frames }

// Tick paints a pending redraw when at least one frame interval has passed
// since the previous paint. Hosts call it once per display refresh; any
// number of changes between two ticks coalesce into one paint. It reports
// whether a frame was painted.
func (p *PlotView) Tick(now time.Time) (bool, error) {
	if !p.dirty || p.paused > 0 || p.closed {
		return false, nil
	}
	if !p.lastPaint.IsZero() && now.Sub(p.lastPaint) < p.opts.frameInterval {
		return false, nil
	}
	p.lastPaint = now
	return true, p.Render()
}

// Pause suppresses redraws until the matching Unpause. Calls nest.
//
// Tools pause around gestures that mutate several ranges so that each
// step is painted once.
func (p *PlotView) Pause() {
	p.paused++
}

// Paused reports whether the view is paused.
func (p *PlotView) Paused() bool { return p.paused > 0 }

// Unpause ends one Pause. When the outermost pause ends a redraw is
// requested unless noRender is set. Unpausing a view that is not paused
// returns ErrNotPaused.
func (p *PlotView) Unpause(noRender bool) error {
	if p.paused == 0 {
		return ErrNotPaused
	}
	p.paused--
	if p.paused == 0 && !noRender {
		p.RequestRedraw()
	}
	return nil
}
