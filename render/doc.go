// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws terminal frames of glyph and cursor instances.
//
// A Frame is the per-frame output of layout: glyph instances drawn first,
// cursor instances drawn over them. Two renderers consume it:
//
//   - GPURenderer: runs the glyph and cursor pipelines on a wgpu HAL device
//   - SoftwareRenderer: runs the same stages on the CPU (package raster)
//
// Both read glyph bitmaps from an *atlas.Atlas passed to UploadAtlas.
//
// # Devices
//
// GPURenderer normally RECEIVES its device from the host application,
// either as a hal.Device and hal.Queue (New) or through a gpucontext
// provider (NewFromProvider). Open creates a private Vulkan device for
// tools and tests that have no host; the renderer then owns and destroys it.
//
// # Usage
//
//	r, err := render.NewFromProvider(app.GPUContextProvider(),
//	    render.WithCursorStyle(glyphquad.CursorStyle{Color: glyphquad.Hex("#ffcc00")}))
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	glyphs, cursors, _ := layout.Build(screen, a, surface)
//	if err := r.UploadAtlas(a); err != nil {
//	    return err
//	}
//	img, err := r.RenderOffscreen(render.Frame{Glyphs: glyphs, Cursors: cursors}, 800, 600)
//
// Inside a render pass owned by the host, call Record instead.
package render
