// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyphquad

import (
	"errors"
	"testing"
)

func TestNewSurface(t *testing.T) {
	if _, err := NewSurface(0, 10); !errors.Is(err, ErrInvalidSurface) {
		t.Errorf("NewSurface(0,10) error = %v, want ErrInvalidSurface", err)
	}
	s, err := NewSurface(800, 600)
	if err != nil {
		t.Fatal(err)
	}
	if s.Width != 800 || s.Height != 600 {
		t.Errorf("surface = %+v", s)
	}
}

func TestSurfacePointToNDC(t *testing.T) {
	s := Surface{Width: 200, Height: 100}
	tests := []struct {
		x, y float32
		want Vec2
	}{
		{0, 0, Vec2{-1, 1}},
		{200, 100, Vec2{1, -1}},
		{100, 50, Vec2{0, 0}},
		{50, 25, Vec2{-0.5, 0.5}},
	}
	for _, tt := range tests {
		if got := s.PointToNDC(tt.x, tt.y); got != tt.want {
			t.Errorf("PointToNDC(%v,%v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
		x, y := s.NDCToPixel(tt.want)
		if x != tt.x || y != tt.y {
			t.Errorf("NDCToPixel(%v) = %v,%v, want %v,%v", tt.want, x, y, tt.x, tt.y)
		}
	}
}

func TestSurfaceRectToNDC(t *testing.T) {
	s := Surface{Width: 200, Height: 100}
	got := s.RectToNDC(50, 25, 50, 25)
	want := Rect{X0: -0.5, Y0: 0.5, X1: 0, Y1: 0}
	if got != want {
		t.Errorf("RectToNDC() = %v, want %v", got, want)
	}
}

// A cursor built from a pixel box covers that box after expansion.
func TestSurfaceCursorFromPixels(t *testing.T) {
	s := Surface{Width: 200, Height: 100}
	c := s.CursorFromPixels(50, 25, 10, 20)
	if c.Position != (Vec2{-0.5, 0.5}) {
		t.Errorf("Position = %v", c.Position)
	}
	if c.Size != (Vec2{0.1, 0.4}) {
		t.Errorf("Size = %v", c.Size)
	}

	r := c.Rect()
	x0, y0 := s.NDCToPixel(Vec2{r.X0, r.Y0})
	x1, y1 := s.NDCToPixel(Vec2{r.X1, r.Y1})
	if x0 != 50 || y0 != 25 || !near(x1, 60) || !near(y1, 45) {
		t.Errorf("cursor covers (%v,%v)-(%v,%v), want (50,25)-(60,45)", x0, y0, x1, y1)
	}
}

func near(a, b float32) bool {
	d := a - b
	return d < 1e-4 && d > -1e-4
}
