// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/glyphquad"
)

func newTestRenderer(t *testing.T, opts RendererOptions) *Renderer {
	t.Helper()
	device, queue, cleanup := createNoopDevice(t)
	t.Cleanup(cleanup)

	r, err := NewRenderer(device, queue, opts)
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	t.Cleanup(r.Close)
	return r
}

func testFrame() ([]glyphquad.GlyphInstance, []glyphquad.CursorInstance) {
	glyphs := []glyphquad.GlyphInstance{{
		Position: glyphquad.Rect{X0: -1, Y0: 1, X1: 0, Y1: 0},
		UV:       glyphquad.UVRect{U: 0, V: 0, DU: 0.5, DV: 0.5},
		Color:    glyphquad.Red,
		Format:   glyphquad.FormatAlphaMask,
	}}
	cursors := []glyphquad.CursorInstance{{
		Position: glyphquad.Vec2{X: 0, Y: 0},
		Size:     glyphquad.Vec2{X: 0.1, Y: 0.2},
	}}
	return glyphs, cursors
}

func TestNewRendererNilDevice(t *testing.T) {
	if _, err := NewRenderer(nil, nil, RendererOptions{}); !errors.Is(err, ErrNilDevice) {
		t.Errorf("error = %v, want ErrNilDevice", err)
	}
}

func TestRendererOffscreen(t *testing.T) {
	r := newTestRenderer(t, RendererOptions{})
	if err := r.UploadAtlas(image.NewRGBA(image.Rect(0, 0, 64, 64))); err != nil {
		t.Fatalf("UploadAtlas failed: %v", err)
	}

	glyphs, cursors := testFrame()
	img, err := r.RenderOffscreen(40, 30, glyphquad.Black, glyphs, cursors)
	if err != nil {
		t.Fatalf("RenderOffscreen failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("image bounds = %v, want 40x30", b)
	}
	if r.GlyphCapacity() < 1 || r.CursorCapacity() < 1 {
		t.Error("expected instance buffers to be allocated")
	}

	// Empty frames are valid: the target is only cleared.
	if _, err := r.RenderOffscreen(40, 30, glyphquad.Black, nil, nil); err != nil {
		t.Fatalf("empty RenderOffscreen failed: %v", err)
	}
}

func TestRendererCursorOnlyNeedsNoAtlas(t *testing.T) {
	r := newTestRenderer(t, RendererOptions{CursorStyle: glyphquad.CursorStyle{Color: glyphquad.Green}})
	if r.cursors.Style().Color != glyphquad.Green {
		t.Errorf("cursor style = %+v, want green", r.cursors.Style())
	}
	_, cursors := testFrame()
	if _, err := r.RenderOffscreen(8, 8, glyphquad.Transparent, nil, cursors); err != nil {
		t.Fatalf("cursor-only frame failed: %v", err)
	}
}

func TestRendererGlyphsNeedAtlas(t *testing.T) {
	r := newTestRenderer(t, RendererOptions{})
	glyphs, _ := testFrame()
	if err := r.Prepare(glyphs, nil); !errors.Is(err, ErrAtlasNotBound) {
		t.Errorf("Prepare() = %v, want ErrAtlasNotBound", err)
	}
}

func TestRendererMaxInstances(t *testing.T) {
	r := newTestRenderer(t, RendererOptions{MaxInstances: 1})
	if err := r.UploadAtlas(image.NewRGBA(image.Rect(0, 0, 8, 8))); err != nil {
		t.Fatal(err)
	}
	glyphs, _ := testFrame()
	if err := r.Prepare(append(glyphs, glyphs...), nil); !errors.Is(err, ErrTooManyInstances) {
		t.Errorf("Prepare() = %v, want ErrTooManyInstances", err)
	}
}

// A frame whose cursor upload fails leaves nothing to draw, not the glyphs
// of that frame alone.
func TestRendererFailedPrepareClearsFrame(t *testing.T) {
	r := newTestRenderer(t, RendererOptions{MaxInstances: 1})
	if err := r.UploadAtlas(image.NewRGBA(image.Rect(0, 0, 8, 8))); err != nil {
		t.Fatal(err)
	}
	glyphs, cursors := testFrame()
	if err := r.Prepare(glyphs[:1], cursors[:1]); err != nil {
		t.Fatal(err)
	}
	if r.glyphBuf.Count() != 1 || r.cursorBuf.Count() != 1 {
		t.Fatalf("counts = %d, %d, want 1, 1", r.glyphBuf.Count(), r.cursorBuf.Count())
	}

	two := []glyphquad.CursorInstance{cursors[0], cursors[0]}
	if err := r.Prepare(glyphs[:1], two); !errors.Is(err, ErrTooManyInstances) {
		t.Fatalf("Prepare() = %v, want ErrTooManyInstances", err)
	}
	if r.glyphBuf.Count() != 0 || r.cursorBuf.Count() != 0 {
		t.Errorf("counts = %d, %d after failed prepare, want 0, 0", r.glyphBuf.Count(), r.cursorBuf.Count())
	}
}

func TestRendererClosed(t *testing.T) {
	r := newTestRenderer(t, RendererOptions{})
	r.Close()
	r.Close()

	if err := r.UploadAtlas(image.NewRGBA(image.Rect(0, 0, 8, 8))); !errors.Is(err, ErrRendererClosed) {
		t.Errorf("UploadAtlas() = %v, want ErrRendererClosed", err)
	}
	if err := r.Prepare(nil, nil); !errors.Is(err, ErrRendererClosed) {
		t.Errorf("Prepare() = %v, want ErrRendererClosed", err)
	}
	if err := r.Record(nil); !errors.Is(err, ErrRendererClosed) {
		t.Errorf("Record() = %v, want ErrRendererClosed", err)
	}
	if _, err := r.RenderOffscreen(8, 8, glyphquad.Black, nil, nil); !errors.Is(err, ErrRendererClosed) {
		t.Errorf("RenderOffscreen() = %v, want ErrRendererClosed", err)
	}
}

func TestRendererAtlasRebind(t *testing.T) {
	r := newTestRenderer(t, RendererOptions{})
	for i, size := range []int{32, 32, 64} {
		if err := r.UploadAtlas(image.NewRGBA(image.Rect(0, 0, size, size))); err != nil {
			t.Fatalf("upload %d failed: %v", i, err)
		}
		if r.glyphs.bindGroup == nil {
			t.Fatalf("upload %d: glyph pipeline not bound", i)
		}
	}
	if w, _ := r.atlas.Size(); w != 64 {
		t.Errorf("atlas width = %d, want 64", w)
	}
	if r.atlas.Generation() != 3 {
		t.Errorf("Generation() = %d, want 3", r.atlas.Generation())
	}
}
