// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/glyphquad"
)

// cursorUniformSize is the byte size of CursorUniforms: one vec4<f32> color.
const cursorUniformSize = 16

// CursorPipeline draws instanced cursor boxes. Each instance is one
// glyphquad.CursorInstance in its 16-byte wire layout. Every covered pixel is
// overwritten with the style color: the pipeline does not blend.
type CursorPipeline struct {
	device hal.Device
	queue  hal.Queue
	config PipelineConfig

	shader        hal.ShaderModule
	uniformLayout hal.BindGroupLayout
	pipeLayout    hal.PipelineLayout
	pipeline      hal.RenderPipeline

	uniformBuf hal.Buffer
	bindGroup  hal.BindGroup
	style      glyphquad.CursorStyle
}

// NewCursorPipeline creates a cursor pipeline drawing in the default style.
func NewCursorPipeline(device hal.Device, queue hal.Queue, config PipelineConfig) *CursorPipeline {
	return &CursorPipeline{
		device: device,
		queue:  queue,
		config: config.normalized(),
		style:  glyphquad.DefaultCursorStyle(),
	}
}

// Init creates the GPU objects and uploads the current style.
func (p *CursorPipeline) Init() error {
	if p.pipeline != nil {
		return nil
	}
	if p.device == nil || p.queue == nil {
		return ErrNilDevice
	}
	if err := p.createPipeline(); err != nil {
		p.destroyPipeline()
		return err
	}
	p.queue.WriteBuffer(p.uniformBuf, 0, glyphquad.EncodeColor(p.style.Color))
	return nil
}

func (p *CursorPipeline) createPipeline() error {
	shader, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "cursor_shader",
		Source: hal.ShaderSource{WGSL: cursorShaderSource},
	})
	if err != nil {
		return fmt.Errorf("compile cursor shader: %w", err)
	}
	p.shader = shader

	uniformLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "cursor_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create cursor uniform layout: %w", err)
	}
	p.uniformLayout = uniformLayout

	pipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "cursor_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.uniformLayout},
	})
	if err != nil {
		return fmt.Errorf("create cursor pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout

	uniformBuf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "cursor_uniforms",
		Size:  cursorUniformSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create cursor uniform buffer: %w", err)
	}
	p.uniformBuf = uniformBuf

	bindGroup, err := p.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "cursor_uniform_bind",
		Layout: p.uniformLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{Buffer: uniformBuf.NativeHandle(), Offset: 0, Size: cursorUniformSize}},
		},
	})
	if err != nil {
		return fmt.Errorf("create cursor bind group: %w", err)
	}
	p.bindGroup = bindGroup

	// Blend is nil: cursor pixels replace whatever is underneath.
	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "cursor_pipeline",
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: vertexEntryPoint,
			Buffers:    cursorInstanceLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: fragmentEntryPoint,
			Targets: []gputypes.ColorTargetState{
				{
					Format:    p.config.TargetFormat,
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
		return fmt.Errorf("create cursor pipeline: %w", err)
	}
	p.pipeline = pipeline
	return nil
}

func cursorInstanceLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: glyphquad.CursorInstanceStride,
			StepMode:    gputypes.VertexStepModeInstance,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: glyphquad.CursorOffsetPosition, ShaderLocation: 0},
				{Format: gputypes.VertexFormatFloat32x2, Offset: glyphquad.CursorOffsetSize, ShaderLocation: 1},
			},
		},
	}
}

// SetStyle changes the cursor color. Once the pipeline exists the new
// color is uploaded immediately and applies to the next draw.
func (p *CursorPipeline) SetStyle(style glyphquad.CursorStyle) {
	p.style = style
	if p.uniformBuf != nil {
		p.queue.WriteBuffer(p.uniformBuf, 0, glyphquad.EncodeColor(style.Color))
	}
}

// Style returns the current cursor style.
func (p *CursorPipeline) Style() glyphquad.CursorStyle { return p.style }

// RecordDraws records one instanced draw of all cursors in instances.
func (p *CursorPipeline) RecordDraws(rp hal.RenderPassEncoder, instances *InstanceBuffer) error {
	if instances == nil || instances.Count() == 0 {
		return nil
	}
	if p.pipeline == nil {
		return ErrPipelineNotInitialized
	}
	rp.SetPipeline(p.pipeline)
	rp.SetBindGroup(0, p.bindGroup, nil)
	rp.SetVertexBuffer(0, instances.Buffer(), 0)
	rp.Draw(glyphquad.VerticesPerQuad, instances.Count(), 0, 0)
	return nil
}

// Destroy releases all GPU resources. Safe to call more than once.
func (p *CursorPipeline) Destroy() {
	p.destroyPipeline()
}

func (p *CursorPipeline) destroyPipeline() {
	if p.device == nil {
		return
	}
	if p.pipeline != nil {
		p.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.bindGroup != nil {
		p.device.DestroyBindGroup(p.bindGroup)
		p.bindGroup = nil
	}
	if p.uniformBuf != nil {
		p.device.DestroyBuffer(p.uniformBuf)
		p.uniformBuf = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.uniformLayout != nil {
		p.device.DestroyBindGroupLayout(p.uniformLayout)
		p.uniformLayout = nil
	}
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}
