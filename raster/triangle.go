// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"math"

	"github.com/gogpu/glyphquad"
	"github.com/gogpu/glyphquad/internal/parallel"
)

// vertex is a vertex after the viewport transform: pixel coordinates with
// y down, plus the attribute the rasterizer interpolates.
type vertex struct {
	x, y float32
	uv   glyphquad.Vec2
}

// fillTriangle calls fn once for every pixel of a w pixel wide target,
// within rows, whose center lies inside the triangle, passing the
// interpolated UV.
//
// Pixels exactly on an edge belong to only one of the two triangles sharing
// that edge, so the two halves of a quad never touch a pixel twice.
// Degenerate triangles cover nothing. Winding does not matter.
//
// Edge values are computed in float64 and the bounding box is clamped to
// the target before it is converted to int, so quads far larger than the
// target are clipped rather than dropped.
func fillTriangle(w int, rows parallel.Band, v0, v1, v2 vertex, fn func(x, y int, uv glyphquad.Vec2)) {
	area := edgeFn(v0, v1, float64(v2.x), float64(v2.y))
	if area == 0 || math.IsNaN(area) || math.IsInf(area, 0) {
		return
	}
	if area < 0 {
		v1, v2 = v2, v1
		area = -area
	}

	x0 := math.Floor(float64(min(v0.x, v1.x, v2.x)))
	x1 := math.Ceil(float64(max(v0.x, v1.x, v2.x)))
	y0 := math.Floor(float64(min(v0.y, v1.y, v2.y)))
	y1 := math.Ceil(float64(max(v0.y, v1.y, v2.y)))
	minX := int(clampF(x0, 0, float64(w)))
	maxX := int(clampF(x1, -1, float64(w-1)))
	minY := int(clampF(y0, float64(rows.Y0), float64(rows.Y1)))
	maxY := int(clampF(y1, float64(rows.Y0-1), float64(rows.Y1-1)))

	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5
			w0 := edgeFn(v1, v2, px, py)
			w1 := edgeFn(v2, v0, px, py)
			w2 := edgeFn(v0, v1, px, py)
			if !covers(w0, v1, v2) || !covers(w1, v2, v0) || !covers(w2, v0, v1) {
				continue
			}
			fn(x, y, glyphquad.Vec2{
				X: float32((w0*float64(v0.uv.X) + w1*float64(v1.uv.X) + w2*float64(v2.uv.X)) / area),
				Y: float32((w0*float64(v0.uv.Y) + w1*float64(v1.uv.Y) + w2*float64(v2.uv.Y)) / area),
			})
		}
	}
}

// edgeFn returns twice the signed area of (a, b, p). It is evaluated with
// the endpoints in a fixed order so edgeFn(a, b) == -edgeFn(b, a) exactly.
func edgeFn(a, b vertex, px, py float64) float64 {
	if a.x > b.x || (a.x == b.x && a.y > b.y) {
		return -edgeFn(b, a, px, py)
	}
	ax, ay := float64(a.x), float64(a.y)
	return (float64(b.x)-ax)*(py-ay) - (float64(b.y)-ay)*(px-ax)
}

// covers applies the fill rule to one edge value. A pixel on the edge is
// kept only for one of the two directions the edge can be walked in.
func covers(e float64, a, b vertex) bool {
	if e != 0 {
		return e > 0
	}
	dx, dy := b.x-a.x, b.y-a.y
	return dy < 0 || (dy == 0 && dx > 0)
}

// clampF limits v to [lo, hi]. NaN maps to lo.
func clampF(v, lo, hi float64) float64 {
	if !(v >= lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
