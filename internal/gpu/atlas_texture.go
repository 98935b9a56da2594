// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// AtlasFormat is the texel format of the glyph atlas. Alpha-mask glyphs
// keep coverage in the red channel; direct-color glyphs use all four.
const AtlasFormat = gputypes.TextureFormatRGBA8Unorm

// AtlasTexture is the GPU copy of the glyph atlas together with the
// sampler glyphs are read through.
type AtlasTexture struct {
	device hal.Device
	queue  hal.Queue
	log    *slog.Logger

	tex     hal.Texture
	view    hal.TextureView
	sampler hal.Sampler

	width, height uint32
	generation    uint64
}

// NewAtlasTexture creates the atlas sampler. The texture itself is created
// by the first Upload, since its size comes from the image.
//
// The sampler clamps at the edges, filters linearly when magnifying and
// picks the nearest texel when minifying.
func NewAtlasTexture(device hal.Device, queue hal.Queue) (*AtlasTexture, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	sampler, err := device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "glyph_atlas_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeNearest,
		MipmapFilter: gputypes.FilterModeNearest,
	})
	if err != nil {
		return nil, fmt.Errorf("create atlas sampler: %w", err)
	}
	return &AtlasTexture{device: device, queue: queue, sampler: sampler}, nil
}

// Upload copies img into the atlas texture, recreating the texture when the
// image size changed. It reports whether the texture was recreated, in which
// case bind groups referring to the old view must be rebuilt.
func (a *AtlasTexture) Upload(img *image.RGBA) (recreated bool, err error) {
	b := img.Bounds()
	if b.Empty() {
		return false, ErrEmptyAtlas
	}
	w, h := uint32(b.Dx()), uint32(b.Dy()) //nolint:gosec // image bounds are non-negative

	if a.tex == nil || a.width != w || a.height != h {
		if err := a.createTexture(w, h); err != nil {
			return false, err
		}
		recreated = true
	}

	a.queue.WriteTexture(
		&hal.ImageCopyTexture{Texture: a.tex, MipLevel: 0},
		tightPixels(img),
		&hal.ImageDataLayout{Offset: 0, BytesPerRow: w * 4, RowsPerImage: h},
		&hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	)
	a.generation++
	logOr(a.log).Debug("atlas uploaded", "width", w, "height", h, "generation", a.generation, "recreated", recreated)
	return recreated, nil
}

func (a *AtlasTexture) createTexture(w, h uint32) error {
	a.destroyTexture()

	tex, err := a.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "glyph_atlas",
		Size:          hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        AtlasFormat,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create atlas texture: %w", err)
	}
	view, err := a.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         "glyph_atlas_view",
		Format:        AtlasFormat,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		a.device.DestroyTexture(tex)
		return fmt.Errorf("create atlas view: %w", err)
	}
	a.tex, a.view = tex, view
	a.width, a.height = w, h
	return nil
}

// tightPixels returns the image pixels with rows packed back to back.
func tightPixels(img *image.RGBA) []byte {
	b := img.Bounds()
	rowBytes := b.Dx() * 4
	if img.Stride == rowBytes {
		start := img.PixOffset(b.Min.X, b.Min.Y)
		return img.Pix[start : start+rowBytes*b.Dy()]
	}
	out := make([]byte, 0, rowBytes*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		out = append(out, img.Pix[off:off+rowBytes]...)
	}
	return out
}

// View returns the atlas texture view, or nil before the first Upload.
func (a *AtlasTexture) View() hal.TextureView { return a.view }

// Sampler returns the atlas sampler.
func (a *AtlasTexture) Sampler() hal.Sampler { return a.sampler }

// Size returns the atlas dimensions in texels.
func (a *AtlasTexture) Size() (uint32, uint32) { return a.width, a.height }

// Generation counts completed uploads.
func (a *AtlasTexture) Generation() uint64 { return a.generation }

func (a *AtlasTexture) destroyTexture() {
	if a.view != nil {
		a.device.DestroyTextureView(a.view)
		a.view = nil
	}
	if a.tex != nil {
		a.device.DestroyTexture(a.tex)
		a.tex = nil
	}
	a.width, a.height = 0, 0
}

// Destroy releases the texture, view and sampler.
func (a *AtlasTexture) Destroy() {
	if a.device == nil {
		return
	}
	a.destroyTexture()
	if a.sampler != nil {
		a.device.DestroySampler(a.sampler)
		a.sampler = nil
	}
}
