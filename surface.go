// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyphquad

import "fmt"

// Surface is the pixel size of the render target. It converts pixel
// coordinates (origin top-left, y down) into clip space (origin center,
// y up) for instance construction.
type Surface struct {
	Width, Height float32
}

// NewSurface returns a Surface for a target of the given pixel size.
func NewSurface(width, height int) (Surface, error) {
	if width <= 0 || height <= 0 {
		return Surface{}, fmt.Errorf("%w: %dx%d", ErrInvalidSurface, width, height)
	}
	return Surface{Width: float32(width), Height: float32(height)}, nil
}

// PointToNDC converts a pixel position into clip space.
func (s Surface) PointToNDC(x, y float32) Vec2 {
	return Vec2{
		X: x/s.Width*2 - 1,
		Y: 1 - y/s.Height*2,
	}
}

// RectToNDC converts the pixel box with top-left (x, y) and size (w, h) into
// a clip-space Rect. Corner 0 is the top-left pixel corner, so Y0 > Y1 for
// boxes with positive height.
func (s Surface) RectToNDC(x, y, w, h float32) Rect {
	p0 := s.PointToNDC(x, y)
	p1 := s.PointToNDC(x+w, y+h)
	return Rect{X0: p0.X, Y0: p0.Y, X1: p1.X, Y1: p1.Y}
}

// CursorFromPixels builds a cursor instance from a pixel-space box with
// top-left (x, y) and size (w, h). The clip-space height stays positive and
// the box extends downward on screen, which is the cursor sign convention.
func (s Surface) CursorFromPixels(x, y, w, h float32) CursorInstance {
	return CursorInstance{
		Position: s.PointToNDC(x, y),
		Size:     Vec2{X: w / s.Width * 2, Y: h / s.Height * 2},
	}
}

// NDCToPixel converts a clip-space position back to pixel coordinates.
func (s Surface) NDCToPixel(p Vec2) (x, y float32) {
	return (p.X + 1) * 0.5 * s.Width, (1 - p.Y) * 0.5 * s.Height
}
