package pipeline

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"
)

// VertexStride is the byte size of one vertex: a vec4<f32> position.
const VertexStride = 16

// Triangle holds the clip-space vertices of the triangle, wound clockwise.
var Triangle = [3]mgl32.Vec4{
	{0.75, 0.75, 0.0, 1.0},
	{0.75, -0.75, 0.0, 1.0},
	{-0.75, -0.75, 0.0, 1.0},
}

// vertexBytes packs vertices as little-endian float32 values.
func vertexBytes(vertices []mgl32.Vec4) []byte {
	buf := make([]byte, len(vertices)*VertexStride)
	for i, v := range vertices {
		for j := 0; j < 4; j++ {
			binary.LittleEndian.PutUint32(buf[i*VertexStride+j*4:], math.Float32bits(v[j]))
		}
	}
	return buf
}

// vertexLayout describes a single float32x4 attribute at location 0.
func vertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{
					Format:         gputypes.VertexFormatFloat32x4,
					Offset:         0,
					ShaderLocation: 0,
				},
			},
		},
	}
}
