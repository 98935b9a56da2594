// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package atlas

import "fmt"

// Region is a rectangle of atlas pixels.
type Region struct {
	X, Y          int
	Width, Height int
}

// IsValid reports whether the region has a positive area.
func (r Region) IsValid() bool {
	return r.Width > 0 && r.Height > 0
}

// Contains reports whether the pixel (x, y) lies inside the region.
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Overlaps reports whether two regions share any pixel.
func (r Region) Overlaps(o Region) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

func (r Region) String() string {
	return fmt.Sprintf("Region(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// shelf is one horizontal strip of the atlas.
type shelf struct {
	y      int
	height int // tallest padded item so far
	nextX  int
}

// shelfAllocator packs rectangles into horizontal shelves. A rectangle goes
// on the first shelf with room for it, otherwise a new shelf is opened
// below the last one. Every rectangle is followed by padding pixels to its
// right and below, so neighbours never share an edge texel.
//
// It is not safe for concurrent use; Atlas serializes access.
type shelfAllocator struct {
	width, height int
	padding       int
	shelves       []shelf
	used          int
	count         int
}

func newShelfAllocator(width, height, padding int) *shelfAllocator {
	if padding < 0 {
		padding = 0
	}
	return &shelfAllocator{width: width, height: height, padding: padding}
}

// allocate returns a region of exactly w by h pixels, or false when the
// atlas has no room left.
func (a *shelfAllocator) allocate(w, h int) (Region, bool) {
	if w <= 0 || h <= 0 {
		return Region{}, false
	}
	pw, ph := w+a.padding, h+a.padding
	if pw > a.width || ph > a.height {
		return Region{}, false
	}

	for i := range a.shelves {
		s := &a.shelves[i]
		if s.nextX+pw > a.width {
			continue
		}
		// Shelves are opened with their first item, so their height is fixed.
		if ph > s.height {
			continue
		}
		r := Region{X: s.nextX, Y: s.y, Width: w, Height: h}
		s.nextX += pw
		a.record(w, h)
		return r, true
	}

	y := 0
	if n := len(a.shelves); n > 0 {
		last := a.shelves[n-1]
		y = last.y + last.height
	}
	if y+ph > a.height {
		return Region{}, false
	}
	a.shelves = append(a.shelves, shelf{y: y, height: ph, nextX: pw})
	a.record(w, h)
	return Region{X: 0, Y: y, Width: w, Height: h}, true
}

func (a *shelfAllocator) record(w, h int) {
	a.count++
	a.used += w * h
}

func (a *shelfAllocator) reset() {
	a.shelves = a.shelves[:0]
	a.used = 0
	a.count = 0
}

// utilization returns the fraction of the atlas covered by allocations.
func (a *shelfAllocator) utilization() float64 {
	total := a.width * a.height
	if total == 0 {
		return 0
	}
	return float64(a.used) / float64(total)
}
