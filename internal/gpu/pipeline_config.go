// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import "github.com/gogpu/gputypes"

// DefaultTargetFormat is the color format pipelines render into unless
// configured otherwise.
const DefaultTargetFormat = gputypes.TextureFormatBGRA8Unorm

// PipelineConfig describes the render target a pipeline is built for.
type PipelineConfig struct {
	// TargetFormat is the color attachment format.
	TargetFormat gputypes.TextureFormat

	// SampleCount is the attachment sample count: 1, or 4 for MSAA.
	SampleCount uint32
}

// DefaultPipelineConfig returns a single-sampled BGRA8 configuration.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{TargetFormat: DefaultTargetFormat, SampleCount: 1}
}

func (c PipelineConfig) normalized() PipelineConfig {
	var unset gputypes.TextureFormat
	if c.TargetFormat == unset {
		c.TargetFormat = DefaultTargetFormat
	}
	if c.SampleCount == 0 {
		c.SampleCount = 1
	}
	return c
}

func (c PipelineConfig) multisample() gputypes.MultisampleState {
	return gputypes.MultisampleState{Count: c.SampleCount, Mask: 0xFFFFFFFF}
}

// alphaBlend is straight (non-premultiplied) source-over blending, used for
// glyphs: an alpha-mask glyph outputs its tint with coverage as alpha.
func alphaBlend() *gputypes.BlendState {
	return &gputypes.BlendState{
		Color: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorSrcAlpha,
			DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
			Operation: gputypes.BlendOperationAdd,
		},
		Alpha: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorOne,
			DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
			Operation: gputypes.BlendOperationAdd,
		},
	}
}
