// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggplot

import "github.com/gogpu/ggplot/mapper"

// RangeState is a snapshot of the continuous data ranges of a plot.
// Categorical axes are left out.
type RangeState struct {
	X, Y       mapper.Interval
	HasX, HasY bool
}

type history struct {
	states []RangeState
	index  int
}

func (h *history) reset(initial RangeState) {
	h.states = []RangeState{initial}
	h.index = 0
}

func (h *history) push(s RangeState) bool {
	if h.states[h.index] == s {
		return false
	}
	h.states = append(h.states[:h.index+1], s)
	h.index++
	return true
}

func (p *PlotView) rangeState() RangeState {
	var s RangeState
	if p.xRange != nil {
		s.X, s.HasX = p.xRange.Interval(), true
	}
	if p.yRange != nil {
		s.Y, s.HasY = p.yRange.Interval(), true
	}
	return s
}

// RangeState returns the current range snapshot.
func (p *PlotView) RangeState() RangeState { return p.rangeState() }

// PushState records the current ranges as a new history entry, discarding
// any redo states. Nothing is recorded when the ranges equal the current
// entry.
func (p *PlotView) PushState() {
	p.history.push(p.rangeState())
}

// CanUndo reports whether Undo has a state to restore.
func (p *PlotView) CanUndo() bool { return p.history.index > 0 }

// CanRedo reports whether Redo has a state to restore.
func (p *PlotView) CanRedo() bool { return p.history.index < len(p.history.states)-1 }

// Undo restores the previous range state.
func (p *PlotView) Undo() error {
	if !p.CanUndo() {
		return ErrNoHistory
	}
	p.history.index--
	return p.applyState(p.history.states[p.history.index])
}

// Redo restores the state undone by the last Undo.
func (p *PlotView) Redo() error {
	if !p.CanRedo() {
		return ErrNoHistory
	}
	p.history.index++
	return p.applyState(p.history.states[p.history.index])
}

// Reset restores the ranges the plot was created with and clears the
// history.
func (p *PlotView) Reset() error {
	initial := p.history.states[0]
	p.history.reset(initial)
	return p.applyState(initial)
}

// SetRanges sets both continuous ranges as one redraw. Categorical axes
// ignore their interval.
func (p *PlotView) SetRanges(x, y mapper.Interval) error {
	return p.applyState(RangeState{X: x, Y: y, HasX: p.xRange != nil, HasY: p.yRange != nil})
}

func (p *PlotView) applyState(s RangeState) (err error) {
	p.Pause()
	defer func() {
		if uerr := p.Unpause(false); err == nil {
			err = uerr
		}
	}()
	if s.HasX && p.xRange != nil {
		if err := p.xRange.SetInterval(s.X.Start, s.X.End); err != nil {
			return err
		}
	}
	if s.HasY && p.yRange != nil {
		if err := p.yRange.SetInterval(s.Y.Start, s.Y.End); err != nil {
			return err
		}
	}
	return nil
}
