// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mapper

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/gogpu/ggplot/event"
	"github.com/gogpu/ggplot/props"
)

// Range property keys.
var (
	Start = props.NewKey[float64]("start")
	End   = props.NewKey[float64]("end")
	Min   = props.NewKey[float64]("min")
	Max   = props.NewKey[float64]("max")
	Span  = props.NewKey[float64]("span")
)

var rangeSeq atomic.Uint64

// Range is a one-dimensional interval held in a property node.
type Range struct {
	node *props.Node
}

// NewRange creates a range with the given bounds.
func NewRange(start, end float64) *Range {
	return NewNamedRange(fmt.Sprintf("range%d", rangeSeq.Add(1)), start, end)
}

// NewNamedRange creates a range whose node carries the given id.
func NewNamedRange(id string, start, end float64) *Range {
	n := props.NewNode(id)
	Start.Init(n, start)
	End.Init(n, end)
	deps := props.DependsOn(Start.Of(n), End.Of(n))
	mustDefine(Min.Define(n, func() (float64, error) {
		return math.Min(Start.Value(n), End.Value(n)), nil
	}, deps))
	mustDefine(Max.Define(n, func() (float64, error) {
		return math.Max(Start.Value(n), End.Value(n)), nil
	}, deps))
	mustDefine(Span.Define(n, func() (float64, error) {
		return math.Abs(End.Value(n) - Start.Value(n)), nil
	}, deps))
	return &Range{node: n}
}

func mustDefine(err error) {
	if err != nil {
		panic(err)
	}
}

// Node returns the property node backing the range.
func (r *Range) Node() *props.Node { return r.node }

// Start returns the start bound.
func (r *Range) Start() float64 { return Start.Value(r.node) }

// End returns the end bound.
func (r *Range) End() float64 { return End.Value(r.node) }

// Min returns min(start, end).
func (r *Range) Min() float64 { return Min.Value(r.node) }

// Max returns max(start, end).
func (r *Range) Max() float64 { return Max.Value(r.node) }

// Span returns |end - start|.
func (r *Range) Span() float64 { return Span.Value(r.node) }

// Width returns end - start. It is negative for a flipped range.
func (r *Range) Width() float64 { return r.End() - r.Start() }

// Flipped reports whether start exceeds end.
func (r *Range) Flipped() bool { return r.Start() > r.End() }

// Degenerate reports whether the range has zero width or a non-finite
// bound.
func (r *Range) Degenerate() bool {
	s, e := r.Start(), r.End()
	return s == e || math.IsNaN(s) || math.IsNaN(e) || math.IsInf(s, 0) || math.IsInf(e, 0)
}

// Contains reports whether v lies within [min, max].
func (r *Range) Contains(v float64) bool {
	return v >= r.Min() && v <= r.Max()
}

// SetStart writes the start bound.
func (r *Range) SetStart(v float64) error { return Start.Set(r.node, v) }

// SetEnd writes the end bound.
func (r *Range) SetEnd(v float64) error { return End.Set(r.node, v) }

// SetInterval writes both bounds. Listeners see two separate changes;
// callers that redraw on change should pause their view around it.
func (r *Range) SetInterval(start, end float64) error {
	if err := r.SetStart(start); err != nil {
		return err
	}
	return r.SetEnd(end)
}

// OnChange subscribes fn to changes of either bound.
func (r *Range) OnChange(fn func()) event.Handle {
	return r.node.OnAnyChange(func(props.Name) { fn() })
}

// Interval is a plain start/end pair, used to snapshot and restore ranges.
type Interval struct {
	Start, End float64
}

// Interval returns the current bounds.
func (r *Range) Interval() Interval {
	return Interval{Start: r.Start(), End: r.End()}
}

func (r *Range) String() string {
	return fmt.Sprintf("%s[%g, %g]", r.node.ID(), r.Start(), r.End())
}

func checkRange(role string, start, end float64) error {
	if start == end || math.IsNaN(start) || math.IsNaN(end) || math.IsInf(start, 0) || math.IsInf(end, 0) {
		return fmt.Errorf("%w: %s [%g, %g]", ErrDegenerateRange, role, start, end)
	}
	return nil
}
