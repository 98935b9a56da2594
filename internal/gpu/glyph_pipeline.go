// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/glyphquad"
)

// GlyphPipeline draws instanced glyph quads. Each instance is one
// glyphquad.GlyphInstance in its 52-byte wire layout; the vertex shader
// expands it into two triangles and the fragment shader either tints the
// atlas coverage or passes the atlas texel through.
//
// Bind group 0:
//
//	binding 0: atlas texture (texture_2d<f32>, fragment)
//	binding 1: atlas sampler (fragment)
type GlyphPipeline struct {
	device hal.Device
	config PipelineConfig

	shader      hal.ShaderModule
	atlasLayout hal.BindGroupLayout
	pipeLayout  hal.PipelineLayout
	pipeline    hal.RenderPipeline

	bindGroup hal.BindGroup
}

// NewGlyphPipeline creates a glyph pipeline for the given target. GPU objects
// are created lazily by Init.
func NewGlyphPipeline(device hal.Device, config PipelineConfig) *GlyphPipeline {
	return &GlyphPipeline{device: device, config: config.normalized()}
}

// Init creates the shader module, layouts and render pipeline. It is a no-op
// once the pipeline exists.
func (p *GlyphPipeline) Init() error {
	if p.pipeline != nil {
		return nil
	}
	if p.device == nil {
		return ErrNilDevice
	}
	if err := p.createPipeline(); err != nil {
		p.destroyPipeline()
		return err
	}
	return nil
}

func (p *GlyphPipeline) createPipeline() error {
	shader, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "glyph_shader",
		Source: hal.ShaderSource{WGSL: glyphShaderSource},
	})
	if err != nil {
		return fmt.Errorf("compile glyph shader: %w", err)
	}
	p.shader = shader

	atlasLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "glyph_atlas_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create glyph atlas layout: %w", err)
	}
	p.atlasLayout = atlasLayout

	pipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "glyph_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.atlasLayout},
	})
	if err != nil {
		return fmt.Errorf("create glyph pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout

	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "glyph_pipeline",
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: vertexEntryPoint,
			Buffers:    glyphInstanceLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: fragmentEntryPoint,
			Targets: []gputypes.ColorTargetState{
				{
					Format:    p.config.TargetFormat,
					Blend:     alphaBlend(),
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: p.config.multisample(),
	})
	if err != nil {
		return fmt.Errorf("create glyph pipeline: %w", err)
	}
	p.pipeline = pipeline
	return nil
}

// glyphInstanceLayout describes the per-instance glyph record. The buffer
// advances once per instance, not per vertex.
func glyphInstanceLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: glyphquad.GlyphInstanceStride,
			StepMode:    gputypes.VertexStepModeInstance,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x4, Offset: glyphquad.GlyphOffsetPosition, ShaderLocation: 0},
				{Format: gputypes.VertexFormatFloat32x4, Offset: glyphquad.GlyphOffsetUV, ShaderLocation: 1},
				{Format: gputypes.VertexFormatFloat32x4, Offset: glyphquad.GlyphOffsetColor, ShaderLocation: 2},
				{Format: gputypes.VertexFormatUint32, Offset: glyphquad.GlyphOffsetFormat, ShaderLocation: 3},
			},
		},
	}
}

// BindAtlas points the pipeline at the atlas texture and sampler. Call it
// again whenever the atlas texture is recreated.
func (p *GlyphPipeline) BindAtlas(atlas *AtlasTexture) error {
	if err := p.Init(); err != nil {
		return err
	}
	if atlas == nil || atlas.View() == nil {
		return ErrAtlasNotBound
	}

	bg, err := p.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "glyph_atlas_bind",
		Layout: p.atlasLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.TextureViewBinding{TextureView: atlas.View().NativeHandle()}},
			{Binding: 1, Resource: gputypes.SamplerBinding{Sampler: atlas.Sampler().NativeHandle()}},
		},
	})
	if err != nil {
		return fmt.Errorf("create glyph atlas bind group: %w", err)
	}
	if p.bindGroup != nil {
		p.device.DestroyBindGroup(p.bindGroup)
	}
	p.bindGroup = bg
	return nil
}

// RecordDraws records one instanced draw of all glyphs in instances. An
// empty buffer records nothing.
func (p *GlyphPipeline) RecordDraws(rp hal.RenderPassEncoder, instances *InstanceBuffer) error {
	if instances == nil || instances.Count() == 0 {
		return nil
	}
	if p.pipeline == nil {
		return ErrPipelineNotInitialized
	}
	if p.bindGroup == nil {
		return ErrAtlasNotBound
	}
	rp.SetPipeline(p.pipeline)
	rp.SetBindGroup(0, p.bindGroup, nil)
	rp.SetVertexBuffer(0, instances.Buffer(), 0)
	rp.Draw(glyphquad.VerticesPerQuad, instances.Count(), 0, 0)
	return nil
}

// Config returns the target configuration the pipeline was built for.
func (p *GlyphPipeline) Config() PipelineConfig { return p.config }

// Destroy releases all GPU resources. Safe to call more than once.
func (p *GlyphPipeline) Destroy() {
	p.destroyPipeline()
}

// destroyPipeline releases resources in reverse creation order.
func (p *GlyphPipeline) destroyPipeline() {
	if p.device == nil {
		return
	}
	if p.bindGroup != nil {
		p.device.DestroyBindGroup(p.bindGroup)
		p.bindGroup = nil
	}
	if p.pipeline != nil {
		p.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.atlasLayout != nil {
		p.device.DestroyBindGroupLayout(p.atlasLayout)
		p.atlasLayout = nil
	}
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}
