// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster is a CPU implementation of the glyph and cursor
// pipelines.
//
// Each instance is expanded to six vertices with glyphquad.ExpandGlyph or
// glyphquad.ExpandCursor, the two triangles are scan converted at pixel
// centers, and every covered pixel runs the fragment stage. Glyphs are
// alpha blended, cursors replace the target. The result matches what the
// GPU renderer reads back, which makes this package the reference for
// golden tests and a fallback when no GPU is available.
//
//	r := raster.New(raster.NewImageSampler(a.Image()))
//	img, err := r.Render(640, 480, glyphquad.Black, glyphs, cursors)
package raster
