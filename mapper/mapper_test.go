// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mapper

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= eps*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func TestRangeMinMax(t *testing.T) {
	r := NewRange(10, 0)
	if r.Min() != 0 || r.Max() != 10 {
		t.Errorf("Min/Max = %v/%v, want 0/10", r.Min(), r.Max())
	}
	if !r.Flipped() {
		t.Error("Flipped() = false for start > end")
	}
	if r.Start() != 10 || r.End() != 0 {
		t.Error("flipped range must not be normalized")
	}
	if err := r.SetEnd(20); err != nil {
		t.Fatal(err)
	}
	if r.Min() != 10 || r.Max() != 20 {
		t.Errorf("after SetEnd: Min/Max = %v/%v, want 10/20", r.Min(), r.Max())
	}
	if !r.Contains(15) || r.Contains(21) {
		t.Error("Contains disagrees with [min, max]")
	}
}

func TestLinearMapperRoundTrip(t *testing.T) {
	tests := []struct {
		name           string
		source, target [2]float64
	}{
		{"identity", [2]float64{0, 1}, [2]float64{0, 1}},
		{"scale", [2]float64{0, 10}, [2]float64{0, 400}},
		{"offset", [2]float64{-5, 5}, [2]float64{30, 370}},
		{"flipped source", [2]float64{10, 0}, [2]float64{0, 400}},
		{"flipped target", [2]float64{0, 1}, [2]float64{400, 0}},
		{"tiny", [2]float64{1e-6, 2e-6}, [2]float64{0, 1000}},
		{"huge", [2]float64{-1e12, 1e12}, [2]float64{50, 550}},
	}
	xs := []float64{-100, -1, 0, 0.25, 1, 3.5, 1e6}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewLinearMapper(NewRange(tt.source[0], tt.source[1]), NewRange(tt.target[0], tt.target[1]))
			if err != nil {
				t.Fatal(err)
			}
			for _, x := range xs {
				y, err := m.ToTarget(x)
				if err != nil {
					t.Fatalf("ToTarget(%v) error = %v", x, err)
				}
				back, err := m.FromTarget(y)
				if err != nil {
					t.Fatalf("FromTarget(%v) error = %v", y, err)
				}
				if !near(back, x) {
					t.Errorf("FromTarget(ToTarget(%v)) = %v", x, back)
				}
			}
		})
	}
}

func TestLinearMapperReversedRange(t *testing.T) {
	target := NewRange(20, 380)
	m, err := NewLinearMapper(NewRange(10, 0), target)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := m.ToTarget(10); got != target.Start() {
		t.Errorf("ToTarget(10) = %v, want target.start %v", got, target.Start())
	}
	if got, _ := m.ToTarget(0); got != target.End() {
		t.Errorf("ToTarget(0) = %v, want target.end %v", got, target.End())
	}
}

func TestLinearMapperFollowsRangeChanges(t *testing.T) {
	source := NewRange(0, 10)
	target := NewRange(0, 100)
	m, err := NewLinearMapper(source, target)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := m.ToTarget(5); got != 50 {
		t.Fatalf("ToTarget(5) = %v, want 50", got)
	}
	if err := source.SetInterval(0, 20); err != nil {
		t.Fatal(err)
	}
	if got, _ := m.ToTarget(5); got != 25 {
		t.Errorf("after source change ToTarget(5) = %v, want 25", got)
	}
	if err := target.SetInterval(100, 300); err != nil {
		t.Fatal(err)
	}
	if got, _ := m.ToTarget(5); got != 150 {
		t.Errorf("after target change ToTarget(5) = %v, want 150", got)
	}
}

func TestLinearMapperDegenerate(t *testing.T) {
	source := NewRange(3, 3)
	target := NewRange(0, 100)
	m, err := NewLinearMapper(source, target)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.ToTarget(1); !errors.Is(err, ErrDegenerateRange) {
		t.Errorf("ToTarget() error = %v, want ErrDegenerateRange", err)
	}
	if _, err := m.VToTarget([]float64{1, 2}); !errors.Is(err, ErrDegenerateRange) {
		t.Errorf("VToTarget() error = %v, want ErrDegenerateRange", err)
	}

	// Repairing the range repairs the mapper.
	if err := source.SetEnd(4); err != nil {
		t.Fatal(err)
	}
	if _, err := m.ToTarget(1); err != nil {
		t.Errorf("ToTarget() after repair error = %v", err)
	}

	if err := target.SetEnd(0); err != nil {
		t.Fatal(err)
	}
	if _, err := m.FromTarget(1); !errors.Is(err, ErrDegenerateRange) {
		t.Errorf("FromTarget() with zero-width target error = %v, want ErrDegenerateRange", err)
	}

	nan, err := NewLinearMapper(NewRange(math.NaN(), 1), target)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := nan.ToTarget(0); !errors.Is(err, ErrDegenerateRange) {
		t.Errorf("NaN bound error = %v, want ErrDegenerateRange", err)
	}
}

func TestLinearMapperVectorMatchesScalar(t *testing.T) {
	m, err := NewLinearMapper(NewRange(-3, 7), NewRange(12, 512))
	if err != nil {
		t.Fatal(err)
	}
	xs := []float64{-3, -1.5, 0, 2, 7, 11}
	ys, err := m.VToTarget(xs)
	if err != nil {
		t.Fatal(err)
	}
	if len(ys) != len(xs) {
		t.Fatalf("len = %d, want %d", len(ys), len(xs))
	}
	for i, x := range xs {
		want, _ := m.ToTarget(x)
		if ys[i] != want {
			t.Errorf("VToTarget[%d] = %v, ToTarget = %v", i, ys[i], want)
		}
	}
	back, err := m.VFromTarget(ys)
	if err != nil {
		t.Fatal(err)
	}
	for i := range xs {
		want, _ := m.FromTarget(ys[i])
		if back[i] != want {
			t.Errorf("VFromTarget[%d] = %v, FromTarget = %v", i, back[i], want)
		}
	}
}

func TestLinearMapperTransformCached(t *testing.T) {
	m, err := NewLinearMapper(NewRange(0, 1), NewRange(0, 10))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		_, _ = m.ToTarget(float64(i))
	}
	if got := m.Node().Computations("transform"); got != 1 {
		t.Errorf("transform computed %d times, want 1", got)
	}
}

func TestCategoricalMapper(t *testing.T) {
	factors, err := NewFactorRange("a", "b", "c", "d")
	if err != nil {
		t.Fatal(err)
	}
	m, err := NewCategoricalMapper(factors, NewRange(0, 400))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		factor string
		want   float64
	}{
		{"a", 50},
		{"b", 150},
		{"c", 250},
		{"d", 350},
	}
	for _, tt := range tests {
		got, err := m.ToTargetFactor(tt.factor)
		if err != nil {
			t.Fatalf("ToTargetFactor(%q) error = %v", tt.factor, err)
		}
		if got != tt.want {
			t.Errorf("ToTargetFactor(%q) = %v, want %v", tt.factor, got, tt.want)
		}
		back, err := m.FactorAt(got)
		if err != nil || back != tt.factor {
			t.Errorf("FactorAt(%v) = %q, %v; want %q", got, back, err, tt.factor)
		}
	}

	if _, err := m.ToTargetFactor("zzz"); !errors.Is(err, ErrUnknownFactor) {
		t.Errorf("unknown factor error = %v, want ErrUnknownFactor", err)
	}
	if _, err := m.FactorAt(401); !errors.Is(err, ErrUnknownFactor) {
		t.Errorf("FactorAt outside error = %v, want ErrUnknownFactor", err)
	}

	if err := factors.SetFactors("a", "b"); err != nil {
		t.Fatal(err)
	}
	if got, _ := m.ToTargetFactor("b"); got != 300 {
		t.Errorf("after SetFactors ToTargetFactor(b) = %v, want 300", got)
	}
}

func TestCategoricalMapperDegenerate(t *testing.T) {
	factors, err := NewFactorRange()
	if err != nil {
		t.Fatal(err)
	}
	m, err := NewCategoricalMapper(factors, NewRange(0, 100))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.ToTarget(0.5); !errors.Is(err, ErrDegenerateRange) {
		t.Errorf("empty factors error = %v, want ErrDegenerateRange", err)
	}
	if _, err := NewFactorRange("a", "a"); !errors.Is(err, ErrDuplicateFactor) {
		t.Errorf("duplicate factor error = %v, want ErrDuplicateFactor", err)
	}
}

func TestGridMapper(t *testing.T) {
	xm, err := NewLinearMapper(NewRange(0, 10), NewRange(0, 100))
	if err != nil {
		t.Fatal(err)
	}
	ym, err := NewLinearMapper(NewRange(0, 1), NewRange(50, 250))
	if err != nil {
		t.Fatal(err)
	}
	g := NewGridMapper(xm, ym)

	sx, sy, err := g.MapToTarget(5, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if sx != 50 || sy != 150 {
		t.Errorf("MapToTarget(5, 0.5) = (%v, %v), want (50, 150)", sx, sy)
	}
	x, y, err := g.MapFromTarget(sx, sy)
	if err != nil {
		t.Fatal(err)
	}
	if !near(x, 5) || !near(y, 0.5) {
		t.Errorf("MapFromTarget = (%v, %v), want (5, 0.5)", x, y)
	}

	sxs, sys, err := g.VMapToTarget([]float64{0, 10}, []float64{0, 1})
	if err != nil {
		t.Fatal(err)
	}
	if sxs[1] != 100 || sys[1] != 250 {
		t.Errorf("VMapToTarget = %v %v", sxs, sys)
	}
	if _, _, err := g.VMapToTarget([]float64{1}, nil); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("length mismatch error = %v, want ErrLengthMismatch", err)
	}
}
