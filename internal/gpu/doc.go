// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpu drives the glyph and cursor pipelines on a gogpu/wgpu HAL
// device.
//
// The package owns every GPU object the renderer needs:
//
//   - GlyphPipeline: instanced glyph quads sampled from the atlas
//   - CursorPipeline: instanced cursor boxes filled with a uniform color
//   - InstanceBuffer: growable per-instance vertex buffer
//   - AtlasTexture: RGBA atlas texture, view and sampler
//   - FrameTarget: offscreen color target with CPU readback
//   - Renderer: ties the above into one frame (text first, then cursors)
//
// # Shaders
//
// Both pipelines use WGSL sources embedded from shaders/. Neither uses a
// vertex or index buffer for geometry: the vertex shader derives each of
// the six vertices of a quad from @builtin(vertex_index) and the instance
// record, so every draw is Draw(6, instanceCount, 0, 0).
//
// # Devices
//
// A Renderer can run on a device it opens itself (OpenDevice) or on a
// device borrowed from the host application. Borrowed devices are never
// destroyed by this package.
package gpu
