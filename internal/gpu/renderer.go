// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"fmt"
	"image"
	"log/slog"
	"sync"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/glyphquad"
)

// fenceTimeout bounds how long RenderOffscreen waits for the GPU.
const fenceTimeout = 5 * time.Second

// RendererOptions configures a Renderer.
type RendererOptions struct {
	Pipeline PipelineConfig

	// MaxInstances caps glyphs and cursors per frame. Zero means no cap.
	MaxInstances int

	CursorStyle glyphquad.CursorStyle

	// Logger receives this renderer's logs. Nil means the package logger.
	Logger *slog.Logger
}

// Renderer owns both pipelines, their instance buffers and the atlas
// texture, and records one frame as text followed by cursors.
//
// The device and queue are borrowed: Close releases only what the Renderer
// created.
type Renderer struct {
	mu sync.Mutex

	device hal.Device
	queue  hal.Queue

	glyphs  *GlyphPipeline
	cursors *CursorPipeline

	glyphBuf  *InstanceBuffer
	cursorBuf *InstanceBuffer

	atlas  *AtlasTexture
	target *FrameTarget

	scratch []byte
	closed  bool
	log     *slog.Logger
}

// NewRenderer creates both pipelines on device.
func NewRenderer(device hal.Device, queue hal.Queue, opts RendererOptions) (*Renderer, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	cfg := opts.Pipeline.normalized()

	atlas, err := NewAtlasTexture(device, queue)
	if err != nil {
		return nil, err
	}
	r := &Renderer{
		device:    device,
		queue:     queue,
		glyphs:    NewGlyphPipeline(device, cfg),
		cursors:   NewCursorPipeline(device, queue, cfg),
		glyphBuf:  NewInstanceBuffer(device, queue, "glyph_instances", glyphquad.GlyphInstanceStride, opts.MaxInstances),
		cursorBuf: NewInstanceBuffer(device, queue, "cursor_instances", glyphquad.CursorInstanceStride, opts.MaxInstances),
		atlas:     atlas,
		target:    NewFrameTarget(device, cfg),
		log:       opts.Logger,
	}
	r.glyphBuf.log = opts.Logger
	r.cursorBuf.log = opts.Logger
	r.atlas.log = opts.Logger
	r.target.log = opts.Logger
	if opts.CursorStyle != (glyphquad.CursorStyle{}) {
		r.cursors.SetStyle(opts.CursorStyle)
	}
	if err := r.glyphs.Init(); err != nil {
		r.release()
		return nil, err
	}
	if err := r.cursors.Init(); err != nil {
		r.release()
		return nil, err
	}
	logOr(r.log).Info("glyph renderer ready",
		"format", cfg.TargetFormat, "samples", cfg.SampleCount, "max_instances", opts.MaxInstances)
	return r, nil
}

// UploadAtlas copies img to the GPU and rebinds the glyph pipeline when the
// texture had to be recreated.
func (r *Renderer) UploadAtlas(img *image.RGBA) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrRendererClosed
	}
	recreated, err := r.atlas.Upload(img)
	if err != nil {
		return fmt.Errorf("upload atlas: %w", err)
	}
	if recreated {
		if err := r.glyphs.BindAtlas(r.atlas); err != nil {
			return err
		}
	}
	return nil
}

// SetCursorStyle changes the cursor color for subsequent frames.
func (r *Renderer) SetCursorStyle(style glyphquad.CursorStyle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cursors.SetStyle(style)
}

// Prepare uploads the frame's instances. Both slices may be empty.
func (r *Renderer) Prepare(glyphs []glyphquad.GlyphInstance, cursors []glyphquad.CursorInstance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.prepare(glyphs, cursors)
}

func (r *Renderer) prepare(glyphs []glyphquad.GlyphInstance, cursors []glyphquad.CursorInstance) error {
	if r.closed {
		return ErrRendererClosed
	}
	if len(glyphs) > 0 && r.atlas.View() == nil {
		r.glyphBuf.Reset()
		r.cursorBuf.Reset()
		return ErrAtlasNotBound
	}
	r.scratch = glyphquad.AppendGlyphInstances(r.scratch[:0], glyphs)
	if err := r.glyphBuf.Write(r.scratch); err != nil {
		r.cursorBuf.Reset()
		return fmt.Errorf("write glyph instances: %w", err)
	}
	r.scratch = glyphquad.AppendCursorInstances(r.scratch[:0], cursors)
	if err := r.cursorBuf.Write(r.scratch); err != nil {
		// Never record half of a frame.
		r.glyphBuf.Reset()
		return fmt.Errorf("write cursor instances: %w", err)
	}
	return nil
}

// Record draws the prepared frame into an open render pass owned by the
// caller: text first, then cursors on top.
func (r *Renderer) Record(rp hal.RenderPassEncoder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.record(rp)
}

func (r *Renderer) record(rp hal.RenderPassEncoder) error {
	if r.closed {
		return ErrRendererClosed
	}
	if err := r.glyphs.RecordDraws(rp, r.glyphBuf); err != nil {
		return fmt.Errorf("record glyphs: %w", err)
	}
	if err := r.cursors.RecordDraws(rp, r.cursorBuf); err != nil {
		return fmt.Errorf("record cursors: %w", err)
	}
	return nil
}

// RenderOffscreen renders one frame of the given size into the offscreen
// target, cleared to clear, and reads it back.
func (r *Renderer) RenderOffscreen(
	w, h uint32, clear glyphquad.RGBA,
	glyphs []glyphquad.GlyphInstance, cursors []glyphquad.CursorInstance,
) (*image.RGBA, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.prepare(glyphs, cursors); err != nil {
		return nil, err
	}
	if err := r.target.Ensure(w, h); err != nil {
		return nil, fmt.Errorf("ensure target: %w", err)
	}

	encoder, err := r.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "glyph_frame_encoder",
	})
	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("glyph_frame"); err != nil {
		return nil, fmt.Errorf("begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label:            "glyph_frame_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{r.target.ColorAttachment(clear)},
	})
	if err := r.record(rp); err != nil {
		rp.End()
		encoder.DiscardEncoding()
		return nil, err
	}
	rp.End()

	staging, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "glyph_frame_staging",
		Size:  r.target.ByteSize(),
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		encoder.DiscardEncoding()
		return nil, fmt.Errorf("create staging buffer: %w", err)
	}
	defer r.device.DestroyBuffer(staging)

	r.target.EncodeReadback(encoder, staging)

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("end encoding: %w", err)
	}
	defer r.device.FreeCommandBuffer(cmdBuf)

	fence, err := r.device.CreateFence()
	if err != nil {
		return nil, fmt.Errorf("create fence: %w", err)
	}
	defer r.device.DestroyFence(fence)

	if err := r.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return nil, fmt.Errorf("submit: %w", err)
	}
	fenceOK, err := r.device.Wait(fence, 1, fenceTimeout)
	if err != nil || !fenceOK {
		return nil, fmt.Errorf("wait for GPU: ok=%v err=%w", fenceOK, err)
	}

	raw := make([]byte, r.target.ByteSize())
	if err := r.queue.ReadBuffer(staging, 0, raw); err != nil {
		return nil, fmt.Errorf("readback: %w", err)
	}
	logOr(r.log).Debug("frame rendered",
		"width", w, "height", h, "glyphs", len(glyphs), "cursors", len(cursors))
	return r.target.Image(raw), nil
}

// GlyphCapacity and CursorCapacity report current instance buffer sizes.
func (r *Renderer) GlyphCapacity() int  { return r.glyphBuf.Capacity() }
func (r *Renderer) CursorCapacity() int { return r.cursorBuf.Capacity() }

// Close releases every GPU object the Renderer created. Further calls
// return ErrRendererClosed.
func (r *Renderer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.release()
	r.closed = true
}

func (r *Renderer) release() {
	r.target.Destroy()
	r.glyphBuf.Destroy()
	r.cursorBuf.Destroy()
	r.cursors.Destroy()
	r.glyphs.Destroy()
	r.atlas.Destroy()
}
