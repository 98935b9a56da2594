// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/gogpu/glyphquad"
	"github.com/gogpu/glyphquad/internal/parallel"
)

// ErrInvalidSize is returned by Render for a zero or negative target size.
var ErrInvalidSize = errors.New("raster: invalid target size")

// Renderer draws glyph and cursor instances into an RGBA image on the CPU.
//
// It runs the same vertex and fragment stages as the GPU pipelines and
// blends the same way, so its output is the reference the GPU path is
// compared against. The target holds straight color bytes, as read back
// from an RGBA8 render target; with an opaque clear color that is also
// valid premultiplied data.
type Renderer struct {
	// Atlas is sampled by alpha-mask and direct-color glyphs.
	Atlas glyphquad.Sampler

	// CursorStyle shades every cursor box.
	CursorStyle glyphquad.CursorStyle

	// Logger receives frame statistics. Nil means glyphquad.Logger.
	Logger *slog.Logger

	pool *parallel.WorkerPool
}

// New returns a Renderer sampling atlas, with the default cursor style.
func New(atlas glyphquad.Sampler) *Renderer {
	return &Renderer{Atlas: atlas, CursorStyle: glyphquad.DefaultCursorStyle()}
}

// Render clears a new w by h image to clear and draws glyphs and then
// cursors over it.
func (r *Renderer) Render(w, h int, clear glyphquad.RGBA, glyphs []glyphquad.GlyphInstance, cursors []glyphquad.CursorInstance) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	Clear(dst, clear)
	r.DrawGlyphs(dst, glyphs)
	r.DrawCursors(dst, cursors)
	log := r.Logger
	if log == nil {
		log = glyphquad.Logger()
	}
	log.Debug("raster: frame rendered",
		"width", w, "height", h, "glyphs", len(glyphs), "cursors", len(cursors))
	return dst, nil
}

// Clear fills dst with c.
func Clear(dst *image.RGBA, c glyphquad.RGBA) {
	px := toBytes(c)
	for i := 0; i+4 <= len(dst.Pix); i += 4 {
		copy(dst.Pix[i:i+4], px[:])
	}
}

// DrawGlyphs blends glyph instances over dst in order using straight alpha
// source-over: rgb = src*a + dst*(1-a), alpha = a + dstAlpha*(1-a).
func (r *Renderer) DrawGlyphs(dst *image.RGBA, glyphs []glyphquad.GlyphInstance) {
	if len(glyphs) == 0 {
		return
	}
	atlas := r.Atlas
	if atlas == nil {
		atlas = glyphquad.SamplerFunc(func(float32, float32) glyphquad.RGBA { return glyphquad.RGBA{} })
	}
	s := surfaceOf(dst)
	verts := make([]glyphquad.GlyphVarying, 0, glyphquad.VertexCount(len(glyphs)))
	pix := make([]vertex, 0, cap(verts))
	for i := range glyphs {
		for _, v := range glyphquad.ExpandGlyph(glyphs[i]) {
			verts = append(verts, v)
			pix = append(pix, glyphVertex(s, v))
		}
	}

	w := dst.Rect.Dx()
	r.run(dst.Rect.Dy(), func(rows parallel.Band) {
		for t := 0; t < len(pix); t += 3 {
			in := verts[t]
			fillTriangle(w, rows, pix[t], pix[t+1], pix[t+2], func(x, y int, uv glyphquad.Vec2) {
				in.UV = uv
				blendOver(dst, x, y, glyphquad.ShadeGlyph(in, atlas))
			})
		}
	})
}

// DrawCursors writes cursor boxes over dst, replacing what is there.
func (r *Renderer) DrawCursors(dst *image.RGBA, cursors []glyphquad.CursorInstance) {
	if len(cursors) == 0 {
		return
	}
	s := surfaceOf(dst)
	pix := make([]vertex, 0, glyphquad.VertexCount(len(cursors)))
	for i := range cursors {
		for _, p := range glyphquad.ExpandCursor(cursors[i]) {
			pix = append(pix, cursorVertex(s, p))
		}
	}
	px := toBytes(glyphquad.ShadeCursor(r.CursorStyle))

	w := dst.Rect.Dx()
	r.run(dst.Rect.Dy(), func(rows parallel.Band) {
		for t := 0; t < len(pix); t += 3 {
			fillTriangle(w, rows, pix[t], pix[t+1], pix[t+2], func(x, y int, _ glyphquad.Vec2) {
				i := dst.PixOffset(dst.Rect.Min.X+x, dst.Rect.Min.Y+y)
				copy(dst.Pix[i:i+4], px[:])
			})
		}
	})
}

// SetWorkers draws with n goroutines, each owning a horizontal band of the
// target. n <= 1 draws on the calling goroutine. Samplers must then be safe
// for concurrent use; ImageSampler is.
func (r *Renderer) SetWorkers(n int) {
	if r.pool != nil {
		r.pool.Close()
		r.pool = nil
	}
	if n > 1 {
		r.pool = parallel.NewWorkerPool(n)
	}
}

// Close stops the worker goroutines, if any.
func (r *Renderer) Close() {
	r.SetWorkers(0)
}

// run calls draw once per row band of a target h rows tall.
func (r *Renderer) run(h int, draw func(parallel.Band)) {
	if r.pool == nil {
		draw(parallel.Band{Y0: 0, Y1: h})
		return
	}
	bands := parallel.SplitRows(h, r.pool.Workers())
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { draw(b) }
	}
	r.pool.ExecuteAll(work)
}

func surfaceOf(dst *image.RGBA) glyphquad.Surface {
	return glyphquad.Surface{Width: float32(dst.Rect.Dx()), Height: float32(dst.Rect.Dy())}
}

func glyphVertex(s glyphquad.Surface, v glyphquad.GlyphVarying) vertex {
	x, y := s.NDCToPixel(v.Position.XY())
	return vertex{x: x, y: y, uv: v.UV}
}

func cursorVertex(s glyphquad.Surface, p glyphquad.Vec4) vertex {
	x, y := s.NDCToPixel(p.XY())
	return vertex{x: x, y: y}
}

func blendOver(dst *image.RGBA, x, y int, src glyphquad.RGBA) {
	i := dst.PixOffset(dst.Rect.Min.X+x, dst.Rect.Min.Y+y)
	p := dst.Pix[i : i+4 : i+4]
	a := clamp01(src.A)
	inv := 1 - a
	out := glyphquad.RGBA{
		R: src.R*a + float32(p[0])/255*inv,
		G: src.G*a + float32(p[1])/255*inv,
		B: src.B*a + float32(p[2])/255*inv,
		A: a + float32(p[3])/255*inv,
	}
	px := toBytes(out)
	copy(p, px[:])
}

// toBytes quantizes straight components to 8 bits, clamping to [0, 1].
func toBytes(c glyphquad.RGBA) [4]byte {
	n := c.Color().(color.NRGBA)
	return [4]byte{n.R, n.G, n.B, n.A}
}

func clamp01(v float32) float32 {
	return min(max(v, 0), 1)
}
