// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package atlas packs rasterized glyphs and color images into a single RGBA
// texture that the glyph pipeline samples.
//
// Runes are rasterized from an OpenType face (Go Mono by default) with
// golang.org/x/image/font/opentype and placed on shelves:
//
//	a, err := atlas.New(atlas.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	g, err := a.AddRune('A')
//	uv := a.UV(g)
//
// Entries are never evicted. When the atlas fills, AddRune returns
// ErrAtlasFull and the caller decides whether to Reset and rebuild.
//
// The atlas is safe for concurrent use. Renderers read it through
// Snapshot, which copies the image under the atlas lock, and compare
// Generation to skip uploads when nothing was added. TakeDirty reports the
// region changed since the last snapshot or call.
package atlas
