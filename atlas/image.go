// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package atlas

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/glyphquad"
)

// AddImage stores a color bitmap, such as an emoji, under name at its
// natural size. An existing entry with the same name is returned as is.
func (a *Atlas) AddImage(name string, img image.Image) (Glyph, error) {
	b := img.Bounds()
	return a.addImage(name, img, b.Dx(), b.Dy())
}

// AddImageScaled stores a color bitmap resized to w by h pixels with
// Catmull-Rom filtering.
func (a *Atlas) AddImageScaled(name string, img image.Image, w, h int) (Glyph, error) {
	return a.addImage(name, img, w, h)
}

func (a *Atlas) addImage(name string, img image.Image, w, h int) (Glyph, error) {
	if img.Bounds().Empty() || w <= 0 || h <= 0 {
		return Glyph{}, fmt.Errorf("%w: %q", ErrEmptyImage, name)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return Glyph{}, ErrClosed
	}
	key := ImageKey(name)
	if g, ok := a.glyphs[key]; ok {
		return g, nil
	}

	region, ok := a.alloc.allocate(w, h)
	if !ok {
		return Glyph{}, fmt.Errorf("%w: image %q (%dx%d)", ErrAtlasFull, name, w, h)
	}

	// Scale into a straight-alpha scratch image, then copy its bytes: the
	// glyph shader treats atlas texels as non-premultiplied.
	tmp := image.NewNRGBA(image.Rect(0, 0, w, h))
	if img.Bounds().Dx() == w && img.Bounds().Dy() == h {
		draw.Draw(tmp, tmp.Bounds(), img, img.Bounds().Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(tmp, tmp.Bounds(), img, img.Bounds(), draw.Src, nil)
	}
	for y := 0; y < h; y++ {
		src := tmp.Pix[y*tmp.Stride : y*tmp.Stride+w*4]
		off := a.img.PixOffset(region.X, region.Y+y)
		copy(a.img.Pix[off:off+w*4], src)
	}
	a.markDirty(regionRect(region))

	g := Glyph{
		Region:  region,
		Format:  glyphquad.FormatDirectColor,
		Bearing: image.Point{X: 0, Y: -h},
		Advance: float32(w),
	}
	a.glyphs[key] = g
	return g, nil
}
