// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"image"

	"github.com/gogpu/glyphquad"
	"github.com/gogpu/glyphquad/atlas"
	"github.com/gogpu/glyphquad/internal/gpu"
)

var (
	// ErrNilHandle is returned by NewFromProvider for a nil handle.
	ErrNilHandle = errors.New("render: nil device handle")

	// ErrNilAtlas is returned by UploadAtlas for a nil atlas.
	ErrNilAtlas = errors.New("render: nil atlas")

	// ErrNilTarget is returned by Render for a nil target.
	ErrNilTarget = errors.New("render: nil target")

	// ErrClosed is returned by renderers after Close.
	ErrClosed = errors.New("render: renderer is closed")

	// ErrNoAtlas is returned for frames with glyphs before UploadAtlas.
	ErrNoAtlas = gpu.ErrAtlasNotBound

	// ErrTooManyInstances is returned for frames over WithMaxInstances.
	ErrTooManyInstances = gpu.ErrTooManyInstances
)

// Frame is everything drawn in one frame. Glyphs are drawn in order, then
// cursors over them. Either slice may be empty.
type Frame struct {
	Glyphs  []glyphquad.GlyphInstance
	Cursors []glyphquad.CursorInstance
}

// Empty reports whether the frame draws nothing.
func (f Frame) Empty() bool {
	return len(f.Glyphs) == 0 && len(f.Cursors) == 0
}

// Renderer draws frames.
//
// Renderers are safe for concurrent use, but frames are drawn one at a
// time.
type Renderer interface {
	// UploadAtlas makes the atlas contents available to later frames. It
	// is cheap when the atlas has not changed since the previous call.
	UploadAtlas(a *atlas.Atlas) error

	// SetCursorStyle changes the cursor color for later frames.
	SetCursorStyle(style glyphquad.CursorStyle)

	// RenderOffscreen draws frame into a new w by h image cleared to the
	// configured clear color.
	RenderOffscreen(frame Frame, w, h int) (*image.RGBA, error)

	// Render draws frame into target, replacing its contents.
	Render(target *PixmapTarget, frame Frame) error

	// Close releases the renderer's resources.
	Close() error
}

var (
	_ Renderer = (*GPURenderer)(nil)
	_ Renderer = (*SoftwareRenderer)(nil)
)
