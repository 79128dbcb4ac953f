package pipeline

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Descriptor describes the pipeline to build.
type Descriptor struct {
	// Label prefixes the debug labels of every created object.
	Label string

	// Source is the WGSL text defining vs_main and fs_main.
	Source string

	// Language selects how Source reaches the backend.
	Language Language

	// Format is the color-target format. It must equal the surface's
	// configured format at build time.
	Format gputypes.TextureFormat

	// Vertices overrides the triangle vertices. Nil uses Triangle.
	Vertices []mgl32.Vec4
}

// Pipeline is a compiled render pipeline together with its static vertex
// buffer. It is safe to reuse across any number of frames.
type Pipeline struct {
	device hal.Device

	shader   hal.ShaderModule
	layout   hal.PipelineLayout
	pipeline hal.RenderPipeline

	vertices    hal.Buffer
	vertexData  []byte
	vertexCount uint32

	format gputypes.TextureFormat
}

// Build compiles the shader, creates an empty pipeline layout and the
// render pipeline, and uploads the vertex buffer through queue.
//
// The pipeline uses a triangle list with clockwise front faces and
// back-face culling, no depth/stencil, single sampling and replace
// blending into one color target of desc.Format.
func Build(device hal.Device, queue hal.Queue, desc Descriptor) (*Pipeline, error) {
	if desc.Format == gputypes.TextureFormatUndefined {
		return nil, ErrUndefinedFormat
	}
	source, err := Source(desc.Source, desc.Language)
	if err != nil {
		return nil, err
	}

	vertices := desc.Vertices
	if vertices == nil {
		vertices = Triangle[:]
	}

	p := &Pipeline{
		device:      device,
		vertexData:  vertexBytes(vertices),
		vertexCount: uint32(len(vertices)), //nolint:gosec // tiny fixed vertex count
		format:      desc.Format,
	}
	if err := p.create(queue, desc.Label, source); err != nil {
		p.Destroy()
		return nil, err
	}
	return p, nil
}

func (p *Pipeline) create(queue hal.Queue, label string, source hal.ShaderSource) error {
	shader, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  label + "_shader",
		Source: source,
	})
	if err != nil {
		return fmt.Errorf("pipeline: create shader module: %w", err)
	}
	p.shader = shader

	// No bind groups and no push constants: the draw needs no uniforms.
	layout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label: label + "_layout",
	})
	if err != nil {
		return fmt.Errorf("pipeline: create pipeline layout: %w", err)
	}
	p.layout = layout

	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  label + "_pipeline",
		Layout: p.layout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: VertexEntryPoint,
			Buffers:    vertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: FragmentEntryPoint,
			Targets: []gputypes.ColorTargetState{
				{
					Format:    p.format,
					Blend:     nil,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology:  gputypes.PrimitiveTopologyTriangleList,
			FrontFace: gputypes.FrontFaceCW,
			CullMode:  gputypes.CullModeBack,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("pipeline: create render pipeline: %w", err)
	}
	p.pipeline = pipeline

	buf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label + "_vertices",
		Size:  uint64(len(p.vertexData)),
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("pipeline: create vertex buffer: %w", err)
	}
	p.vertices = buf
	queue.WriteBuffer(buf, 0, p.vertexData)
	return nil
}

// Record binds the pipeline and vertex buffer and draws the vertices once
// into an open render pass.
func (p *Pipeline) Record(rp hal.RenderPassEncoder) {
	rp.SetPipeline(p.pipeline)
	rp.SetVertexBuffer(0, p.vertices, 0)
	rp.Draw(p.vertexCount, 1, 0, 0)
}

// Format returns the color-target format the pipeline was built for.
func (p *Pipeline) Format() gputypes.TextureFormat { return p.format }

// VertexCount returns the number of vertices drawn per frame.
func (p *Pipeline) VertexCount() uint32 { return p.vertexCount }

// VertexData returns a copy of the uploaded vertex bytes.
func (p *Pipeline) VertexData() []byte {
	out := make([]byte, len(p.vertexData))
	copy(out, p.vertexData)
	return out
}

// Destroy releases all pipeline resources in reverse creation order. It is
// safe on a partially built pipeline and when called more than once.
func (p *Pipeline) Destroy() {
	if p.device == nil {
		return
	}
	if p.vertices != nil {
		p.device.DestroyBuffer(p.vertices)
		p.vertices = nil
	}
	if p.pipeline != nil {
		p.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.layout != nil {
		p.device.DestroyPipelineLayout(p.layout)
		p.layout = nil
	}
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
	p.device = nil
}
