// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
)

// PixmapTarget receives frames in CPU memory.
//
//	target := render.NewPixmapTarget(640, 400)
//	if err := r.Render(target, frame); err != nil { ... }
//	png.Encode(w, target.Image())
type PixmapTarget struct {
	img *image.RGBA
}

// NewPixmapTarget allocates a width x height target.
func NewPixmapTarget(width, height int) *PixmapTarget {
	return &PixmapTarget{img: newRGBA(width, height)}
}

// NewPixmapTargetFromImage renders into img in place.
func NewPixmapTargetFromImage(img *image.RGBA) *PixmapTarget {
	return &PixmapTarget{img: img}
}

// Width is the target width in pixels.
func (t *PixmapTarget) Width() int { return t.img.Rect.Dx() }

// Height is the target height in pixels.
func (t *PixmapTarget) Height() int { return t.img.Rect.Dy() }

// Image exposes the pixels. Later renders overwrite them.
func (t *PixmapTarget) Image() *image.RGBA { return t.img }

// Resize swaps in a fresh, cleared image of the new size.
func (t *PixmapTarget) Resize(width, height int) {
	t.img = newRGBA(width, height)
}

func newRGBA(width, height int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

// copyFrom replaces the target pixels with src, which has the same size.
func (t *PixmapTarget) copyFrom(src *image.RGBA) {
	w := t.Width() * 4
	for y := 0; y < t.Height(); y++ {
		d := t.img.PixOffset(t.img.Rect.Min.X, t.img.Rect.Min.Y+y)
		s := src.PixOffset(src.Rect.Min.X, src.Rect.Min.Y+y)
		copy(t.img.Pix[d:d+w], src.Pix[s:s+w])
	}
}
