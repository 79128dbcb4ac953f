package wsi

import "github.com/gogpu/wgpu/hal"

// Frame is a swap texture acquired from a surface for exactly one frame.
// It must be presented or discarded once and never reused.
type Frame struct {
	texture hal.Texture

	// Suboptimal is set when the texture no longer matches the surface
	// exactly. The frame is still presentable.
	Suboptimal bool

	consumed bool
}

// NewFrame wraps a texture as an acquired frame. Surfaces use it for the
// textures they acquire; alternative swapchains can use it too.
func NewFrame(texture hal.Texture) *Frame {
	return &Frame{texture: texture}
}

// Texture returns the acquired texture.
func (f *Frame) Texture() hal.Texture { return f.texture }

// Consumed reports whether the frame was already presented or discarded.
func (f *Frame) Consumed() bool { return f.consumed }

// Consume marks the frame as used. It returns ErrFrameConsumed on the
// second call.
func (f *Frame) Consume() error {
	if f == nil || f.consumed {
		return ErrFrameConsumed
	}
	f.consumed = true
	return nil
}
