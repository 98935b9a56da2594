// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/glyphquad"
)

// FrameTarget is an offscreen color attachment that can be copied back to
// the CPU. With a sample count above one it renders into a multisampled
// texture and resolves into the readable one.
type FrameTarget struct {
	device hal.Device
	config PipelineConfig
	log    *slog.Logger

	msaaTex  hal.Texture
	msaaView hal.TextureView

	resolveTex  hal.Texture
	resolveView hal.TextureView

	width, height uint32
}

// NewFrameTarget creates an empty target. Textures are created by Ensure.
func NewFrameTarget(device hal.Device, config PipelineConfig) *FrameTarget {
	return &FrameTarget{device: device, config: config.normalized()}
}

// Ensure creates or recreates the textures when the size changes.
func (t *FrameTarget) Ensure(w, h uint32) error {
	if w == 0 || h == 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidTargetSize, w, h)
	}
	if t.device == nil {
		return ErrNilDevice
	}
	if t.width == w && t.height == h && t.resolveTex != nil {
		return nil
	}
	t.destroyTextures()

	size := hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1}

	if t.config.SampleCount > 1 {
		msaaTex, err := t.device.CreateTexture(&hal.TextureDescriptor{
			Label:         "frame_msaa",
			Size:          size,
			MipLevelCount: 1,
			SampleCount:   t.config.SampleCount,
			Dimension:     gputypes.TextureDimension2D,
			Format:        t.config.TargetFormat,
			Usage:         gputypes.TextureUsageRenderAttachment,
		})
		if err != nil {
			return fmt.Errorf("create MSAA texture: %w", err)
		}
		t.msaaTex = msaaTex

		msaaView, err := t.device.CreateTextureView(msaaTex, t.viewDescriptor("frame_msaa_view"))
		if err != nil {
			t.destroyTextures()
			return fmt.Errorf("create MSAA view: %w", err)
		}
		t.msaaView = msaaView
	}

	resolveTex, err := t.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "frame_resolve",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        t.config.TargetFormat,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		t.destroyTextures()
		return fmt.Errorf("create resolve texture: %w", err)
	}
	t.resolveTex = resolveTex

	resolveView, err := t.device.CreateTextureView(resolveTex, t.viewDescriptor("frame_resolve_view"))
	if err != nil {
		t.destroyTextures()
		return fmt.Errorf("create resolve view: %w", err)
	}
	t.resolveView = resolveView

	t.width, t.height = w, h
	logOr(t.log).Debug("frame target created", "width", w, "height", h, "samples", t.config.SampleCount)
	return nil
}

func (t *FrameTarget) viewDescriptor(label string) *hal.TextureViewDescriptor {
	return &hal.TextureViewDescriptor{
		Label:         label,
		Format:        t.config.TargetFormat,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	}
}

// ColorAttachment returns the attachment that clears the target to clear
// and stores the result.
func (t *FrameTarget) ColorAttachment(clear glyphquad.RGBA) hal.RenderPassColorAttachment {
	att := hal.RenderPassColorAttachment{
		View:       t.resolveView,
		LoadOp:     gputypes.LoadOpClear,
		StoreOp:    gputypes.StoreOpStore,
		ClearValue: clearValue(clear),
	}
	if t.msaaView != nil {
		att.View = t.msaaView
		att.ResolveTarget = t.resolveView
	}
	return att
}

func clearValue(c glyphquad.RGBA) gputypes.Color {
	return gputypes.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: float64(c.A)}
}

// ByteSize returns the size of a tightly packed readback of the target.
func (t *FrameTarget) ByteSize() uint64 {
	return uint64(t.width) * uint64(t.height) * 4
}

// EncodeReadback transitions the resolved texture for copying and records a
// copy of it into staging.
func (t *FrameTarget) EncodeReadback(encoder hal.CommandEncoder, staging hal.Buffer) {
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: t.resolveTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})
	encoder.CopyTextureToBuffer(t.resolveTex, staging, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: t.width * 4, RowsPerImage: t.height},
		TextureBase:  hal.ImageCopyTexture{Texture: t.resolveTex, MipLevel: 0},
		Size:         hal.Extent3D{Width: t.width, Height: t.height, DepthOrArrayLayers: 1},
	}})
}

// Image converts raw readback bytes to an RGBA image, swizzling when the
// target is BGRA.
func (t *FrameTarget) Image(raw []byte) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(t.width), int(t.height)))
	copy(img.Pix, raw)
	if t.config.TargetFormat == gputypes.TextureFormatBGRA8Unorm {
		for i := 0; i+3 < len(img.Pix); i += 4 {
			img.Pix[i], img.Pix[i+2] = img.Pix[i+2], img.Pix[i]
		}
	}
	return img
}

// Size returns the current target dimensions.
func (t *FrameTarget) Size() (uint32, uint32) { return t.width, t.height }

func (t *FrameTarget) destroyTextures() {
	if t.resolveView != nil {
		t.device.DestroyTextureView(t.resolveView)
		t.resolveView = nil
	}
	if t.resolveTex != nil {
		t.device.DestroyTexture(t.resolveTex)
		t.resolveTex = nil
	}
	if t.msaaView != nil {
		t.device.DestroyTextureView(t.msaaView)
		t.msaaView = nil
	}
	if t.msaaTex != nil {
		t.device.DestroyTexture(t.msaaTex)
		t.msaaTex = nil
	}
	t.width, t.height = 0, 0
}

// Destroy releases all textures.
func (t *FrameTarget) Destroy() {
	if t.device == nil {
		return
	}
	t.destroyTextures()
}
