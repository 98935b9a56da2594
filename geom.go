// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyphquad

import "fmt"

// Vec2 is a two-component vector in whatever space the caller is working in
// (pixels, normalized device coordinates or atlas UV).
type Vec2 struct {
	X, Y float32
}

// Vec4 is a clip-space position as written by a vertex stage.
type Vec4 struct {
	X, Y, Z, W float32
}

// XY drops the z and w components.
func (v Vec4) XY() Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// Rect is a rectangle given by two opposite corners.
//
// No ordering is implied between X0 and X1 or between Y0 and Y1: glyph
// rectangles built for a y-up clip space usually have Y0 > Y1.
type Rect struct {
	X0, Y0, X1, Y1 float32
}

// Corner returns one of the four corners of r. Bit 0 of i selects X1 over X0
// and bit 1 selects Y1 over Y0, so corners 0 and 3 are opposite each other.
func (r Rect) Corner(i int) Vec2 {
	xs := [2]float32{r.X0, r.X1}
	ys := [2]float32{r.Y0, r.Y1}
	return Vec2{X: xs[i&1], Y: ys[(i>>1)&1]}
}

// Width returns the signed horizontal extent X1-X0.
func (r Rect) Width() float32 { return r.X1 - r.X0 }

// Height returns the signed vertical extent Y1-Y0.
func (r Rect) Height() float32 { return r.Y1 - r.Y0 }

// IsEmpty reports whether r covers no area.
func (r Rect) IsEmpty() bool {
	return r.X0 == r.X1 || r.Y0 == r.Y1
}

// String returns a string representation of the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("Rect(%g,%g %g,%g)", r.X0, r.Y0, r.X1, r.Y1)
}

// UVRect is a region of the glyph atlas in origin plus extent form, in the
// atlas's normalized [0, 1] coordinate space.
type UVRect struct {
	U, V, DU, DV float32
}

// Corners converts the origin plus extent form into opposite-corner form,
// (U, V) and (U+DU, V+DV).
func (uv UVRect) Corners() Rect {
	return Rect{X0: uv.U, Y0: uv.V, X1: uv.U + uv.DU, Y1: uv.V + uv.DV}
}
