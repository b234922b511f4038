// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

// Rect is an axis-aligned rectangle in device pixels (y grows downward).
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// OuterRect returns the whole canvas.
func (vs *ViewState) OuterRect() Rect {
	return Rect{W: vs.OuterWidth(), H: vs.OuterHeight()}
}

// InnerRect returns the plot area in device pixels.
func (vs *ViewState) InnerRect() Rect {
	return Rect{
		X: vs.BorderLeft(),
		Y: vs.BorderTop(),
		W: vs.InnerWidth(),
		H: vs.InnerHeight(),
	}
}

// SXToDevice converts a screen x coordinate to device space. The
// horizontal axis is not flipped.
func (vs *ViewState) SXToDevice(x float64) float64 { return x }

// SYToDevice converts a y-up screen coordinate to device space.
func (vs *ViewState) SYToDevice(y float64) float64 { return vs.OuterHeight() - y }

// DeviceToSX is the inverse of SXToDevice.
func (vs *ViewState) DeviceToSX(x float64) float64 { return x }

// DeviceToSY is the inverse of SYToDevice.
func (vs *ViewState) DeviceToSY(y float64) float64 { return vs.OuterHeight() - y }

// VSXToDevice converts screen x coordinates in place and returns xs.
func (vs *ViewState) VSXToDevice(xs []float64) []float64 { return xs }

// VSYToDevice converts y-up screen coordinates in place and returns ys.
func (vs *ViewState) VSYToDevice(ys []float64) []float64 {
	h := vs.OuterHeight()
	for i, y := range ys {
		ys[i] = h - y
	}
	return ys
}

// VDeviceToSY is the inverse of VSYToDevice, also in place.
func (vs *ViewState) VDeviceToSY(ys []float64) []float64 {
	return vs.VSYToDevice(ys)
}
