package wsi

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Chain presents the frames of one surface through one queue.
type Chain struct {
	surface *Surface
	queue   hal.Queue
}

// Chain returns the swap chain view of the surface for queue.
func (s *Surface) Chain(queue hal.Queue) Chain {
	return Chain{surface: s, queue: queue}
}

// Acquire returns the next frame of the surface.
func (c Chain) Acquire() (*Frame, error) { return c.surface.Acquire() }

// Present presents f through the chain's queue.
func (c Chain) Present(f *Frame) error { return c.surface.Present(c.queue, f) }

// Discard releases f without presenting it.
func (c Chain) Discard(f *Frame) { c.surface.Discard(f) }

// Format returns the surface's currently configured format.
func (c Chain) Format() gputypes.TextureFormat { return c.surface.config.Format }
