// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"
	"testing"
)

func TestPixmapTarget(t *testing.T) {
	target := NewPixmapTarget(30, 20)
	if target.Width() != 30 || target.Height() != 20 {
		t.Errorf("size = %dx%d", target.Width(), target.Height())
	}
	target.Resize(5, 6)
	if target.Width() != 5 || target.Height() != 6 {
		t.Errorf("after Resize size = %dx%d", target.Width(), target.Height())
	}
}

func TestPixmapTargetFromSubImage(t *testing.T) {
	base := image.NewRGBA(image.Rect(0, 0, 8, 8))
	sub := base.SubImage(image.Rect(2, 2, 6, 6)).(*image.RGBA)
	target := NewPixmapTargetFromImage(sub)
	if target.Image() != sub {
		t.Fatal("Image() should return the wrapped image")
	}

	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range src.Pix {
		src.Pix[i] = 0xFF
	}
	target.copyFrom(src)

	if got := base.RGBAAt(2, 2); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("inside = %v", got)
	}
	if got := base.RGBAAt(1, 2); got != (color.RGBA{}) {
		t.Errorf("outside the sub-image was written: %v", got)
	}
	if got := base.RGBAAt(6, 5); got != (color.RGBA{}) {
		t.Errorf("past the row end was written: %v", got)
	}
}
