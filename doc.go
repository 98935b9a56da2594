// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package glyphquad draws terminal glyphs and text cursors as instanced GPU
// quads.
//
// # Overview
//
// Each glyph is described by a compact GlyphInstance: a destination
// rectangle in clip space, a UV rectangle into the glyph atlas, a color and
// a GlyphFormat. The GPU expands every instance into two triangles (six
// vertices, no index buffer) and the fragment stage either tints the atlas
// coverage mask with the instance color (FormatAlphaMask) or writes the
// atlas texel as is (FormatDirectColor, used for emoji and other color
// bitmaps).
//
// Cursors work the same way with a CursorInstance (anchor and size) and a
// solid color taken from a CursorStyle.
//
// This package holds the data model and a CPU mirror of both shader stages
// (GlyphVertex, ShadeGlyph, CursorVertex, ShadeCursor). The WGSL shaders in
// internal/gpu implement the same tables, and the tests in both places check
// the same properties.
//
// # Quick Start
//
//	surf, _ := glyphquad.NewSurface(800, 600)
//	inst := glyphquad.GlyphInstance{
//	    Position: surf.RectToNDC(10, 10, 9, 18),
//	    UV:       glyphquad.UVRect{U: 0, V: 0, DU: 0.01, DV: 0.02},
//	    Color:    glyphquad.White,
//	    Format:   glyphquad.FormatAlphaMask,
//	}
//	buf := glyphquad.EncodeGlyphInstances([]glyphquad.GlyphInstance{inst})
//
// # Architecture
//
// The module is organized into:
//   - glyphquad: instances, formats, vertex/fragment stages, wire encoding
//   - atlas: glyph rasterization and shelf packing into an RGBA atlas
//   - grid: terminal cell grid to instance layout
//   - raster: CPU reference renderer running the same stages
//   - render: GPU renderer built on gogpu/wgpu (internal/gpu)
package glyphquad
