package frame

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gltut/internal/wsi"
)

// DefaultTimeout bounds the wait for the GPU to finish one frame.
const DefaultTimeout = 5 * time.Second

// Swapchain hands out frames and takes them back.
type Swapchain interface {
	Acquire() (*wsi.Frame, error)
	Present(f *wsi.Frame) error
	Discard(f *wsi.Frame)
	Format() gputypes.TextureFormat
}

// Submitter submits recorded command buffers, signaling fence with value
// once they complete. hal.Queue satisfies it.
type Submitter interface {
	Submit(buffers []hal.CommandBuffer, fence hal.Fence, value uint64) error
}

// Drawer records draw commands into an open render pass.
type Drawer interface {
	Record(rp hal.RenderPassEncoder)
}

// Outcome tells what happened to a requested frame.
type Outcome int

const (
	// Skipped means nothing was submitted or presented.
	Skipped Outcome = iota

	// Presented means the frame was rendered and handed to the compositor.
	Presented
)

// String returns the outcome name.
func (o Outcome) String() string {
	if o == Presented {
		return "presented"
	}
	return "skipped"
}

// Stats counts frames since the renderer was created.
type Stats struct {
	Presented uint64
	Skipped   uint64
}

// Renderer renders frames into a swapchain.
type Renderer struct {
	device hal.Device
	queue  Submitter
	chain  Swapchain

	fence      hal.Fence
	fenceValue uint64
	timeout    time.Duration

	pending []submission

	inFlight  atomic.Bool
	stats     Stats
	destroyed bool
}

// submission holds the per-frame objects the GPU may still read.
type submission struct {
	view   hal.TextureView
	cmdBuf hal.CommandBuffer
}

// New creates a frame renderer. The fence used to wait for each frame is
// created once here and reused.
func New(device hal.Device, queue Submitter, chain Swapchain) (*Renderer, error) {
	fence, err := device.CreateFence()
	if err != nil {
		return nil, fmt.Errorf("frame: create fence: %w", err)
	}
	return &Renderer{
		device:  device,
		queue:   queue,
		chain:   chain,
		fence:   fence,
		timeout: DefaultTimeout,
	}, nil
}

// SetTimeout changes how long a frame may take on the GPU.
func (r *Renderer) SetTimeout(d time.Duration) { r.timeout = d }

// Stats returns the frame counters.
func (r *Renderer) Stats() Stats { return r.stats }

// Clear renders a frame that only clears to color.
func (r *Renderer) Clear(color gputypes.Color) (Outcome, error) {
	return r.render(color, nil)
}

// Draw renders a frame that clears to color and then lets d record its
// draw calls into the same render pass.
func (r *Renderer) Draw(d Drawer, color gputypes.Color) (Outcome, error) {
	return r.render(color, d)
}

// render runs acquire, record, submit and present in that order.
//
// An acquisition timeout skips the frame with a nil error. Outdated and
// lost surfaces skip the frame and return the wsi error so the caller can
// reconfigure. Any failure after acquisition discards the frame.
func (r *Renderer) render(color gputypes.Color, d Drawer) (Outcome, error) {
	if !r.inFlight.CompareAndSwap(false, true) {
		return Skipped, ErrFrameInFlight
	}
	defer r.inFlight.Store(false)

	if r.destroyed {
		return Skipped, ErrDestroyed
	}

	f, err := r.chain.Acquire()
	if err != nil {
		r.stats.Skipped++
		switch {
		case errors.Is(err, wsi.ErrTimeout):
			return Skipped, nil
		case wsi.NeedsReconfigure(err):
			return Skipped, err
		default:
			return Skipped, fmt.Errorf("frame: acquire: %w", err)
		}
	}

	if err := r.submit(f, color, d); err != nil {
		r.chain.Discard(f)
		r.stats.Skipped++
		return Skipped, err
	}

	if err := r.chain.Present(f); err != nil {
		if !f.Consumed() {
			r.chain.Discard(f)
		}
		r.stats.Skipped++
		return Skipped, fmt.Errorf("frame: present: %w", err)
	}
	r.stats.Presented++
	return Presented, nil
}

// submit records one render pass targeting f, submits it and waits for
// the GPU to finish.
//
// The view and command buffer of a frame whose fence wait did not complete
// stay pending: the GPU may still use them. They are released once a later
// fence value signals, since fence values complete in submission order.
func (r *Renderer) submit(f *wsi.Frame, color gputypes.Color, d Drawer) error {
	view, err := r.device.CreateTextureView(f.Texture(), &hal.TextureViewDescriptor{
		Label:         "frame_view",
		Format:        r.chain.Format(),
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		return fmt.Errorf("frame: create view: %w", err)
	}

	encoder, err := r.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "frame_encoder",
	})
	if err != nil {
		r.device.DestroyTextureView(view)
		return fmt.Errorf("frame: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("frame"); err != nil {
		encoder.DiscardEncoding()
		r.device.DestroyTextureView(view)
		return fmt.Errorf("frame: begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(passDescriptor(view, color))
	if d != nil {
		d.Record(rp)
	}
	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		encoder.DiscardEncoding()
		r.device.DestroyTextureView(view)
		return fmt.Errorf("frame: end encoding: %w", err)
	}

	r.fenceValue++
	if err := r.queue.Submit([]hal.CommandBuffer{cmdBuf}, r.fence, r.fenceValue); err != nil {
		r.device.FreeCommandBuffer(cmdBuf)
		r.device.DestroyTextureView(view)
		return fmt.Errorf("frame: submit: %w", err)
	}

	// The frame must be complete before it is presented and before the
	// view and command buffer are released.
	r.pending = append(r.pending, submission{view: view, cmdBuf: cmdBuf})
	ok, err := r.device.Wait(r.fence, r.fenceValue, r.timeout)
	if err != nil {
		return fmt.Errorf("frame: wait: %w", err)
	}
	if !ok {
		return ErrGPUTimeout
	}
	r.releasePending()
	return nil
}

// releasePending frees the resources of every submitted frame. Callers
// must know the last submission has completed.
func (r *Renderer) releasePending() {
	for _, p := range r.pending {
		r.device.FreeCommandBuffer(p.cmdBuf)
		r.device.DestroyTextureView(p.view)
	}
	clear(r.pending)
	r.pending = r.pending[:0]
}

// passDescriptor describes the single render pass of a frame: one color
// attachment cleared to color and stored for presentation.
func passDescriptor(view hal.TextureView, color gputypes.Color) *hal.RenderPassDescriptor {
	return &hal.RenderPassDescriptor{
		Label: "frame_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: color,
		}},
	}
}

// Destroy releases the frame fence. Calling Destroy more than once is a
// no-op.
func (r *Renderer) Destroy() {
	if r.destroyed {
		return
	}
	if len(r.pending) > 0 {
		if ok, err := r.device.Wait(r.fence, r.fenceValue, r.timeout); err == nil && ok {
			r.releasePending()
		}
	}
	if r.fence != nil {
		r.device.DestroyFence(r.fence)
		r.fence = nil
	}
	r.destroyed = true
}
