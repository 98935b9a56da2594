// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"testing"

	"github.com/gogpu/glyphquad"
	"github.com/gogpu/glyphquad/internal/parallel"
)

// The two triangles of a glyph quad cover every pixel inside it exactly
// once, including pixels on the shared diagonal.
func TestQuadCoversEachPixelOnce(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		rect [4]float32 // pixel x, y, w, h
	}{
		{"full square", 8, 8, [4]float32{0, 0, 8, 8}},
		{"full wide", 13, 5, [4]float32{0, 0, 13, 5}},
		{"inner box", 16, 16, [4]float32{3, 2, 7, 9}},
		{"fractional", 16, 16, [4]float32{2.25, 1.75, 6.5, 5.5}},
		{"clipped", 10, 10, [4]float32{-4, 6, 9, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := glyphquad.Surface{Width: float32(tt.w), Height: float32(tt.h)}
			inst := glyphquad.GlyphInstance{Position: s.RectToNDC(tt.rect[0], tt.rect[1], tt.rect[2], tt.rect[3])}
			verts := glyphquad.ExpandGlyph(inst)

			hits := make([]int, tt.w*tt.h)
			for i := 0; i < glyphquad.VerticesPerQuad; i += 3 {
				fillTriangle(tt.w, parallel.Band{Y0: 0, Y1: tt.h},
					glyphVertex(s, verts[i]), glyphVertex(s, verts[i+1]), glyphVertex(s, verts[i+2]),
					func(x, y int, _ glyphquad.Vec2) { hits[y*tt.w+x]++ })
			}

			for y := 0; y < tt.h; y++ {
				for x := 0; x < tt.w; x++ {
					cx, cy := float32(x)+0.5, float32(y)+0.5
					inside := cx > tt.rect[0] && cx < tt.rect[0]+tt.rect[2] &&
						cy > tt.rect[1] && cy < tt.rect[1]+tt.rect[3]
					want := 0
					if inside {
						want = 1
					}
					if got := hits[y*tt.w+x]; got != want {
						t.Errorf("pixel (%d,%d) hit %d times, want %d", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestFillTriangleDegenerate(t *testing.T) {
	called := false
	a := vertex{x: 1, y: 1}
	b := vertex{x: 5, y: 5}
	fillTriangle(8, parallel.Band{Y0: 0, Y1: 8}, a, b, vertex{x: 3, y: 3}, func(int, int, glyphquad.Vec2) { called = true })
	if called {
		t.Error("collinear triangle covered pixels")
	}
}

func TestFillTriangleInterpolatesUV(t *testing.T) {
	v0 := vertex{x: 0, y: 0, uv: glyphquad.Vec2{X: 0, Y: 0}}
	v1 := vertex{x: 4, y: 0, uv: glyphquad.Vec2{X: 1, Y: 0}}
	v2 := vertex{x: 0, y: 4, uv: glyphquad.Vec2{X: 0, Y: 1}}
	got := map[[2]int]glyphquad.Vec2{}
	fillTriangle(4, parallel.Band{Y0: 0, Y1: 4}, v0, v1, v2, func(x, y int, uv glyphquad.Vec2) { got[[2]int{x, y}] = uv })

	uv, ok := got[[2]int{1, 1}]
	if !ok {
		t.Fatal("pixel (1,1) not covered")
	}
	if !near(uv.X, 0.375) || !near(uv.Y, 0.375) {
		t.Errorf("uv at (1,1) = %v, want (0.375,0.375)", uv)
	}
	if _, ok := got[[2]int{3, 3}]; ok {
		t.Error("pixel (3,3) lies outside the triangle")
	}
}

func near(a, b float32) bool {
	d := a - b
	return d < 1e-5 && d > -1e-5
}

func TestFillTriangleClipsRows(t *testing.T) {
	v0 := vertex{x: 0, y: 0}
	v1 := vertex{x: 8, y: 0}
	v2 := vertex{x: 0, y: 8}
	fillTriangle(8, parallel.Band{Y0: 2, Y1: 4}, v0, v1, v2, func(x, y int, _ glyphquad.Vec2) {
		if y < 2 || y >= 4 {
			t.Errorf("pixel (%d,%d) outside rows [2,4)", x, y)
		}
	})
}

func TestFillTriangleClampsHugeBounds(t *testing.T) {
	v0 := vertex{x: -1e30, y: -1e30}
	v1 := vertex{x: 3e30, y: -1e30}
	v2 := vertex{x: -1e30, y: 3e30}
	hits := 0
	fillTriangle(4, parallel.Band{Y0: 0, Y1: 4}, v0, v1, v2, func(x, y int, _ glyphquad.Vec2) {
		if x < 0 || x >= 4 || y < 0 || y >= 4 {
			t.Errorf("pixel (%d,%d) outside the target", x, y)
		}
		hits++
	})
	if hits != 16 {
		t.Errorf("covered %d pixels, want 16", hits)
	}
}
