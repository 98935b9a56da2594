// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"math"

	"github.com/gogpu/glyphquad"
)

// Filter selects how texels are combined when sampling.
type Filter uint8

const (
	// FilterLinear interpolates between the four nearest texels.
	FilterLinear Filter = iota

	// FilterNearest picks the texel containing the coordinate.
	FilterNearest
)

// String returns the filter name.
func (f Filter) String() string {
	switch f {
	case FilterLinear:
		return "Linear"
	case FilterNearest:
		return "Nearest"
	default:
		return "Unknown"
	}
}

// ImageSampler samples an atlas image with clamp-to-edge addressing.
//
// Texel bytes are read as raw unorm values, the way the GPU reads an RGBA8
// texture: no premultiplication is applied or removed.
type ImageSampler struct {
	Image  *image.RGBA
	Filter Filter
}

// NewImageSampler returns a linear sampler over img, matching the atlas
// sampler's magnification filter at 1:1 scale.
func NewImageSampler(img *image.RGBA) *ImageSampler {
	return &ImageSampler{Image: img, Filter: FilterLinear}
}

// Sample implements glyphquad.Sampler. (0,0) is the top-left corner of the
// image and (1,1) the bottom-right.
func (s *ImageSampler) Sample(u, v float32) glyphquad.RGBA {
	if s.Image == nil || s.Image.Rect.Empty() {
		return glyphquad.RGBA{}
	}
	if s.Filter == FilterNearest {
		return s.nearest(u, v)
	}
	return s.linear(u, v)
}

func (s *ImageSampler) nearest(u, v float32) glyphquad.RGBA {
	w, h := s.Image.Rect.Dx(), s.Image.Rect.Dy()
	x := int(math.Floor(float64(u) * float64(w)))
	y := int(math.Floor(float64(v) * float64(h)))
	return s.texel(clamp(x, w-1), clamp(y, h-1))
}

func (s *ImageSampler) linear(u, v float32) glyphquad.RGBA {
	w, h := s.Image.Rect.Dx(), s.Image.Rect.Dy()
	fx := float64(u)*float64(w) - 0.5
	fy := float64(v)*float64(h) - 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := float32(fx - float64(x0))
	ty := float32(fy - float64(y0))
	x1, y1 := x0+1, y0+1

	x0, x1 = clamp(x0, w-1), clamp(x1, w-1)
	y0, y1 = clamp(y0, h-1), clamp(y1, h-1)

	return lerp2D(s.texel(x0, y0), s.texel(x1, y0), s.texel(x0, y1), s.texel(x1, y1), tx, ty)
}

func (s *ImageSampler) texel(x, y int) glyphquad.RGBA {
	i := s.Image.PixOffset(s.Image.Rect.Min.X+x, s.Image.Rect.Min.Y+y)
	p := s.Image.Pix[i : i+4 : i+4]
	return glyphquad.RGBA{
		R: float32(p[0]) / 255,
		G: float32(p[1]) / 255,
		B: float32(p[2]) / 255,
		A: float32(p[3]) / 255,
	}
}

func clamp(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}

func lerp(a, b glyphquad.RGBA, t float32) glyphquad.RGBA {
	return glyphquad.RGBA{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

func lerp2D(c00, c10, c01, c11 glyphquad.RGBA, tx, ty float32) glyphquad.RGBA {
	return lerp(lerp(c00, c10, tx), lerp(c01, c11, tx), ty)
}
