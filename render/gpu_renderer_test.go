// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/glyphquad"
)

func newTestGPURenderer(t *testing.T, opts ...Option) *GPURenderer {
	t.Helper()
	device, queue := createNoopDevice(t)
	r, err := New(device, queue, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestNewNilDevice(t *testing.T) {
	if _, err := New(nil, nil); err == nil {
		t.Error("New(nil, nil) should fail")
	}
}

func TestNewFromProvider(t *testing.T) {
	device, queue := createNoopDevice(t)
	r, err := NewFromProvider(halHandle{device: device, queue: queue})
	if err != nil {
		t.Fatalf("NewFromProvider() error = %v", err)
	}
	defer r.Close()
	if r.DeviceName() != "" {
		t.Errorf("borrowed device has name %q", r.DeviceName())
	}
}

func TestNewFromProviderRejects(t *testing.T) {
	if _, err := NewFromProvider(nil); !errors.Is(err, ErrNilHandle) {
		t.Errorf("nil handle error = %v", err)
	}
	if _, err := NewFromProvider(NullDeviceHandle{}); err == nil {
		t.Error("handle without HAL access should be rejected")
	}
}

func TestGPURendererOffscreen(t *testing.T) {
	r := newTestGPURenderer(t, WithMaxInstances(64))
	a := newTestAtlas(t)
	frame, w, h := testScreen(t, a, "hi")

	if err := r.UploadAtlas(a); err != nil {
		t.Fatalf("UploadAtlas() error = %v", err)
	}
	img, err := r.RenderOffscreen(frame, w, h)
	if err != nil {
		t.Fatalf("RenderOffscreen() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
		t.Errorf("bounds = %v, want %dx%d", b, w, h)
	}

	target := NewPixmapTarget(w, h)
	if err := r.Render(target, frame); err != nil {
		t.Errorf("Render() error = %v", err)
	}
}

func TestGPURendererUploadSkipsUnchanged(t *testing.T) {
	r := newTestGPURenderer(t)
	a := newTestAtlas(t)
	if _, err := a.AddRune('a'); err != nil {
		t.Fatal(err)
	}
	if err := r.UploadAtlas(a); err != nil {
		t.Fatal(err)
	}
	gen := r.atlasGen
	if err := r.UploadAtlas(a); err != nil {
		t.Fatal(err)
	}
	if r.atlasGen != gen {
		t.Error("unchanged atlas re-uploaded")
	}
	if _, err := a.AddRune('b'); err != nil {
		t.Fatal(err)
	}
	if err := r.UploadAtlas(a); err != nil {
		t.Fatal(err)
	}
	if r.atlasGen == gen {
		t.Error("changed atlas not uploaded")
	}
}

func TestGPURendererErrors(t *testing.T) {
	r := newTestGPURenderer(t, WithMaxInstances(1))
	glyph := glyphquad.GlyphInstance{Format: glyphquad.FormatAlphaMask}

	if _, err := r.RenderOffscreen(Frame{Glyphs: []glyphquad.GlyphInstance{glyph}}, 8, 8); !errors.Is(err, ErrNoAtlas) {
		t.Errorf("glyphs without atlas error = %v, want ErrNoAtlas", err)
	}
	if _, err := r.RenderOffscreen(Frame{Cursors: make([]glyphquad.CursorInstance, 3)}, 8, 8); !errors.Is(err, ErrTooManyInstances) {
		t.Errorf("too many cursors error = %v, want ErrTooManyInstances", err)
	}
	if _, err := r.RenderOffscreen(Frame{}, 0, 8); err == nil {
		t.Error("zero width should fail")
	}
	if err := r.Render(nil, Frame{}); !errors.Is(err, ErrNilTarget) {
		t.Errorf("Render(nil) error = %v", err)
	}
	if err := r.UploadAtlas(nil); !errors.Is(err, ErrNilAtlas) {
		t.Errorf("UploadAtlas(nil) error = %v", err)
	}
}

func TestGPURendererClose(t *testing.T) {
	r := newTestGPURenderer(t)
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
	if _, err := r.RenderOffscreen(Frame{}, 4, 4); !errors.Is(err, ErrClosed) {
		t.Errorf("RenderOffscreen after Close = %v", err)
	}
	if err := r.Record(nil, Frame{}); !errors.Is(err, ErrClosed) {
		t.Errorf("Record after Close = %v", err)
	}
	r.SetCursorStyle(glyphquad.CursorStyle{Color: glyphquad.Red})
	if r.Config().CursorStyle.Color != glyphquad.Red {
		t.Error("SetCursorStyle after Close should still update the config")
	}
}

// Each renderer logs to its own logger, regardless of creation order.
func TestGPURendererLoggersAreIndependent(t *testing.T) {
	var first, second bytes.Buffer
	debug := &slog.HandlerOptions{Level: slog.LevelDebug}
	r1 := newTestGPURenderer(t, WithLogger(slog.New(slog.NewTextHandler(&first, debug))))
	r2 := newTestGPURenderer(t, WithLogger(slog.New(slog.NewTextHandler(&second, debug))))

	frame := Frame{Cursors: []glyphquad.CursorInstance{{Size: glyphquad.Vec2{X: 0.5, Y: 0.5}}}}
	if _, err := r1.RenderOffscreen(frame, 8, 8); err != nil {
		t.Fatal(err)
	}
	if _, err := r2.RenderOffscreen(frame, 8, 8); err != nil {
		t.Fatal(err)
	}
	if _, err := r2.RenderOffscreen(frame, 8, 8); err != nil {
		t.Fatal(err)
	}

	if n := strings.Count(first.String(), "frame rendered"); n != 1 {
		t.Errorf("first logger saw %d frames, want 1:\n%s", n, first.String())
	}
	if n := strings.Count(second.String(), "frame rendered"); n != 2 {
		t.Errorf("second logger saw %d frames, want 2:\n%s", n, second.String())
	}
}
