// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"
	"sync"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/glyphquad"
	"github.com/gogpu/glyphquad/atlas"
	"github.com/gogpu/glyphquad/internal/gpu"
)

// GPURenderer draws frames with the glyph and cursor pipelines.
//
// The device is borrowed unless the renderer was created with Open; Close
// destroys only what the renderer created.
type GPURenderer struct {
	mu  sync.Mutex
	cfg Config
	dev *gpu.Device
	r   *gpu.Renderer

	atlas    *atlas.Atlas
	atlasGen uint64
	staging  *image.RGBA
	closed   bool
}

// New creates a renderer on a device and queue owned by the host.
func New(device hal.Device, queue hal.Queue, opts ...Option) (*GPURenderer, error) {
	return newGPURenderer(&gpu.Device{Device: device, Queue: queue}, newConfig(opts))
}

// NewFromProvider creates a renderer on the host's device. The handle must
// expose its HAL device and queue (see DeviceHandle).
//
// Example:
//
//	app.OnInit(func(gc *gogpu.Context) {
//	    r, err = render.NewFromProvider(app.GPUContextProvider())
//	})
func NewFromProvider(handle DeviceHandle, opts ...Option) (*GPURenderer, error) {
	if handle == nil {
		return nil, ErrNilHandle
	}
	cfg := newConfig(opts)
	dev, err := gpu.DeviceFromProvider(handle)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return newGPURenderer(dev, cfg)
}

// Open creates a private Vulkan device and a renderer on it. Close destroys
// the device.
func Open(opts ...Option) (*GPURenderer, error) {
	cfg := newConfig(opts)
	dev, err := gpu.OpenDevice()
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	cfg.logger().Info("GPU device opened", "adapter", dev.Name)
	r, err := newGPURenderer(dev, cfg)
	if err != nil {
		dev.Close()
		return nil, err
	}
	return r, nil
}

func newGPURenderer(dev *gpu.Device, cfg Config) (*GPURenderer, error) {
	r, err := gpu.NewRenderer(dev.Device, dev.Queue, gpu.RendererOptions{
		Pipeline: gpu.PipelineConfig{
			TargetFormat: cfg.TargetFormat,
			SampleCount:  cfg.SampleCount,
		},
		MaxInstances: cfg.MaxInstances,
		CursorStyle:  cfg.CursorStyle,
		Logger:       cfg.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return &GPURenderer{cfg: cfg, dev: dev, r: r}, nil
}

// UploadAtlas copies the atlas image to the GPU. Nothing is copied when the
// same atlas has not changed since the previous upload.
func (g *GPURenderer) UploadAtlas(a *atlas.Atlas) error {
	if a == nil {
		return ErrNilAtlas
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return ErrClosed
	}
	gen := a.Generation()
	if g.atlas == a && g.atlasGen == gen {
		return nil
	}
	g.staging, gen = a.Snapshot(g.staging)
	if err := g.r.UploadAtlas(g.staging); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	g.atlas, g.atlasGen = a, gen
	return nil
}

// SetCursorStyle changes the cursor color for later frames.
func (g *GPURenderer) SetCursorStyle(style glyphquad.CursorStyle) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cfg.CursorStyle = style
	if !g.closed {
		g.r.SetCursorStyle(style)
	}
}

// RenderOffscreen draws frame into an offscreen texture and reads it back.
func (g *GPURenderer) RenderOffscreen(frame Frame, w, h int) (*image.RGBA, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return nil, ErrClosed
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("render: invalid size %dx%d", w, h)
	}
	img, err := g.r.RenderOffscreen(uint32(w), uint32(h), g.cfg.ClearColor, frame.Glyphs, frame.Cursors)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return img, nil
}

// Render draws frame offscreen and copies the result into target.
func (g *GPURenderer) Render(target *PixmapTarget, frame Frame) error {
	if target == nil {
		return ErrNilTarget
	}
	img, err := g.RenderOffscreen(frame, target.Width(), target.Height())
	if err != nil {
		return err
	}
	target.copyFrom(img)
	return nil
}

// Record uploads frame and records its draws into a render pass owned by
// the host. The pass must target the configured format and sample count.
func (g *GPURenderer) Record(rp hal.RenderPassEncoder, frame Frame) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return ErrClosed
	}
	if err := g.r.Prepare(frame.Glyphs, frame.Cursors); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := g.r.Record(rp); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// Config returns the renderer configuration.
func (g *GPURenderer) Config() Config {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cfg
}

// DeviceName returns the adapter name for renderers created with Open and
// an empty string otherwise.
func (g *GPURenderer) DeviceName() string { return g.dev.Name }

// Close releases the pipelines and buffers, and the device if Open created
// it.
func (g *GPURenderer) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return nil
	}
	g.closed = true
	g.r.Close()
	g.dev.Close()
	g.atlas = nil
	return nil
}
