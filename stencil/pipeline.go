// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package stencil

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// sampleCount matches the MSAA color and stencil attachments.
const sampleCount = 4

// pipelineKey selects one mask pipeline variant.
type pipelineKey struct {
	mode      Mode
	colorMask gputypes.ColorWriteMask
}

// PipelineCache owns the render pipelines used to draw under each stencil
// mode. Pipelines are created on first request and live until Destroy.
//
// All variants share one shader module (compiled from MaskShaderSource),
// one uniform bind group layout and one pipeline layout.
//
// PipelineCache is not safe for concurrent use.
type PipelineCache struct {
	device hal.Device
	format gputypes.TextureFormat

	shader        hal.ShaderModule
	uniformLayout hal.BindGroupLayout
	pipeLayout    hal.PipelineLayout

	pipelines map[pipelineKey]hal.RenderPipeline
}

// NewPipelineCache creates a cache for color attachments of the given format.
// No GPU objects are created until the first Pipeline call.
func NewPipelineCache(device hal.Device, format gputypes.TextureFormat) *PipelineCache {
	return &PipelineCache{
		device:    device,
		format:    format,
		pipelines: make(map[pipelineKey]hal.RenderPipeline),
	}
}

// Len returns the number of pipeline variants created so far.
func (c *PipelineCache) Len() int {
	return len(c.pipelines)
}

// Pipeline returns the pipeline for mode with the given color write mask,
// creating it if needed.
func (c *PipelineCache) Pipeline(mode Mode, colorMask gputypes.ColorWriteMask) (hal.RenderPipeline, error) {
	key := pipelineKey{mode: mode, colorMask: colorMask}
	if p, ok := c.pipelines[key]; ok {
		return p, nil
	}
	if err := c.ensureShared(); err != nil {
		return nil, err
	}

	p, err := c.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  fmt.Sprintf("mask_%s_pipeline", mode),
		Layout: c.pipeLayout,
		Vertex: hal.VertexState{
			Module:     c.shader,
			EntryPoint: "vs_main",
			Buffers: []gputypes.VertexBufferLayout{
				{
					ArrayStride: vertexStride,
					StepMode:    gputypes.VertexStepModeVertex,
					Attributes: []gputypes.VertexAttribute{
						{
							Format:         gputypes.VertexFormatFloat32x2,
							Offset:         0,
							ShaderLocation: 0,
						},
					},
				},
			},
		},
		Fragment: &hal.FragmentState{
			Module:     c.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    c.format,
					WriteMask: colorMask,
				},
			},
		},
		DepthStencil: DepthStencilState(mode),
		Multisample: gputypes.MultisampleState{
			Count: sampleCount,
			Mask:  0xFFFFFFFF,
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create mask %s pipeline: %w", mode, err)
	}
	c.pipelines[key] = p
	return p, nil
}

// ensureShared creates the shader module and layouts shared by all variants.
func (c *PipelineCache) ensureShared() error {
	if c.pipeLayout != nil {
		return nil
	}

	if c.shader == nil {
		spirv, err := CompileMaskShader()
		if err != nil {
			return err
		}
		shader, err := c.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
			Label:  "mask_shader",
			Source: hal.ShaderSource{SPIRV: spirv},
		})
		if err != nil {
			return fmt.Errorf("create mask shader module: %w", err)
		}
		c.shader = shader
	}

	if c.uniformLayout == nil {
		layout, err := c.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
			Label: "mask_uniform_layout",
			Entries: []gputypes.BindGroupLayoutEntry{
				{
					Binding:    0,
					Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
					Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
				},
			},
		})
		if err != nil {
			return fmt.Errorf("create mask uniform layout: %w", err)
		}
		c.uniformLayout = layout
	}

	pipeLayout, err := c.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "mask_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{c.uniformLayout},
	})
	if err != nil {
		return fmt.Errorf("create mask pipeline layout: %w", err)
	}
	c.pipeLayout = pipeLayout
	return nil
}

// Destroy releases all pipelines and shared resources in reverse creation
// order. The cache may be reused afterwards; resources are recreated on
// demand.
func (c *PipelineCache) Destroy() {
	if c.device == nil {
		return
	}
	for key, p := range c.pipelines {
		c.device.DestroyRenderPipeline(p)
		delete(c.pipelines, key)
	}
	if c.pipeLayout != nil {
		c.device.DestroyPipelineLayout(c.pipeLayout)
		c.pipeLayout = nil
	}
	if c.uniformLayout != nil {
		c.device.DestroyBindGroupLayout(c.uniformLayout)
		c.uniformLayout = nil
	}
	if c.shader != nil {
		c.device.DestroyShaderModule(c.shader)
		c.shader = nil
	}
}
