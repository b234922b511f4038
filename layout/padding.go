// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import "math"

// Padding is a per-side amount of border space in pixels.
type Padding struct {
	Top, Bottom, Left, Right float64
}

// Get returns the value for side s.
func (p Padding) Get(s Side) float64 {
	switch s {
	case Top:
		return p.Top
	case Bottom:
		return p.Bottom
	case Left:
		return p.Left
	case Right:
		return p.Right
	}
	return 0
}

// Set stores v for side s.
func (p *Padding) Set(s Side, v float64) {
	switch s {
	case Top:
		p.Top = v
	case Bottom:
		p.Bottom = v
	case Left:
		p.Left = v
	case Right:
		p.Right = v
	}
}

// Add returns the per-side sum of p and q.
func (p Padding) Add(q Padding) Padding {
	return Padding{
		Top:    p.Top + q.Top,
		Bottom: p.Bottom + q.Bottom,
		Left:   p.Left + q.Left,
		Right:  p.Right + q.Right,
	}
}

// Uniform returns a padding of v on every side.
func Uniform(v float64) Padding {
	return Padding{Top: v, Bottom: v, Left: v, Right: v}
}

// Symmetry forces opposing borders to the larger of the two.
type Symmetry struct {
	Horizontal bool // left == right
	Vertical   bool // top == bottom
}

// Apply returns p with the symmetry constraint applied.
func (s Symmetry) Apply(p Padding) Padding {
	if s.Horizontal {
		m := math.Max(p.Left, p.Right)
		p.Left, p.Right = m, m
	}
	if s.Vertical {
		m := math.Max(p.Top, p.Bottom)
		p.Top, p.Bottom = m, m
	}
	return p
}

// BeginPadding starts a padding pass and clears the accumulator.
func (vs *ViewState) BeginPadding() {
	vs.pending = Padding{}
	vs.inPadding = true
}

// RequestPadding adds p to the current pass. Requests from different
// layers are summed per side. Negative components are ignored.
func (vs *ViewState) RequestPadding(p Padding) {
	if !vs.inPadding {
		vs.BeginPadding()
	}
	for s := Top; s <= Right; s++ {
		if v := p.Get(s); v > 0 {
			vs.pending.Set(s, vs.pending.Get(s)+v)
		}
	}
}

// PendingPadding returns the requests accumulated so far in this pass.
func (vs *ViewState) PendingPadding() Padding { return vs.pending }

// CommitPadding ends the pass: the accumulated requests, with sym applied,
// become the requested borders. Borders and inner geometry are up to date
// when CommitPadding returns.
func (vs *ViewState) CommitPadding(sym Symmetry) error {
	p := sym.Apply(vs.pending)
	vs.pending = Padding{}
	vs.inPadding = false
	return vs.SetRequestedBorder(p)
}
