// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"
	"sync"

	"github.com/gogpu/glyphquad"
	"github.com/gogpu/glyphquad/atlas"
	"github.com/gogpu/glyphquad/raster"
)

// SoftwareRenderer draws frames on the CPU with package raster. Its output
// matches GPURenderer's readback and needs no device.
//
// Example:
//
//	r := render.NewSoftwareRenderer(render.WithClearColor(glyphquad.Hex("#101010")))
//	if err := r.UploadAtlas(a); err != nil {
//	    return err
//	}
//	img, err := r.RenderOffscreen(frame, 640, 480)
type SoftwareRenderer struct {
	mu     sync.Mutex
	cfg    Config
	raster *raster.Renderer
	atlas  *atlas.Atlas
	gen    uint64
	snap   *image.RGBA
	closed bool
}

// NewSoftwareRenderer creates a CPU renderer. Options that only concern GPU
// passes (target format, sample count) are accepted and ignored.
func NewSoftwareRenderer(opts ...Option) *SoftwareRenderer {
	cfg := newConfig(opts)
	r := raster.New(nil)
	r.CursorStyle = cfg.CursorStyle
	r.Logger = cfg.Logger
	r.SetWorkers(cfg.Workers)
	return &SoftwareRenderer{cfg: cfg, raster: r}
}

// UploadAtlas copies the atlas image, as GPURenderer does, so frames never
// read pixels another goroutine is writing. Glyphs added afterwards need
// another upload. Nothing is copied when the atlas has not changed.
func (r *SoftwareRenderer) UploadAtlas(a *atlas.Atlas) error {
	if a == nil {
		return ErrNilAtlas
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	if r.atlas == a && r.gen == a.Generation() {
		return nil
	}
	r.snap, r.gen = a.Snapshot(r.snap)
	r.atlas = a
	r.raster.Atlas = raster.NewImageSampler(r.snap)
	return nil
}

// SetCursorStyle changes the cursor color for later frames.
func (r *SoftwareRenderer) SetCursorStyle(style glyphquad.CursorStyle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.raster.CursorStyle = style
}

// RenderOffscreen draws frame into a new w by h image.
func (r *SoftwareRenderer) RenderOffscreen(frame Frame, w, h int) (*image.RGBA, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.check(frame); err != nil {
		return nil, err
	}
	return r.raster.Render(w, h, r.cfg.ClearColor, frame.Glyphs, frame.Cursors)
}

// Render draws frame into target.
func (r *SoftwareRenderer) Render(target *PixmapTarget, frame Frame) error {
	if target == nil {
		return ErrNilTarget
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.check(frame); err != nil {
		return err
	}
	img := target.Image()
	raster.Clear(img, r.cfg.ClearColor)
	r.raster.DrawGlyphs(img, frame.Glyphs)
	r.raster.DrawCursors(img, frame.Cursors)
	return nil
}

func (r *SoftwareRenderer) check(frame Frame) error {
	if r.closed {
		return ErrClosed
	}
	if len(frame.Glyphs) > 0 && r.atlas == nil {
		return fmt.Errorf("%w: %d glyphs", ErrNoAtlas, len(frame.Glyphs))
	}
	if m := r.cfg.MaxInstances; m > 0 && (len(frame.Glyphs) > m || len(frame.Cursors) > m) {
		return fmt.Errorf("%w: %d glyphs, %d cursors, limit %d",
			ErrTooManyInstances, len(frame.Glyphs), len(frame.Cursors), m)
	}
	return nil
}

// Close stops the worker goroutines and drops the atlas reference. Further
// calls return ErrClosed.
func (r *SoftwareRenderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	r.raster.Close()
	r.atlas, r.snap = nil, nil
	r.raster.Atlas = nil
	return nil
}
