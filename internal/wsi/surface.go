package wsi

import (
	"fmt"

	"github.com/gogpu/wgpu/hal"
)

// Surface is a presentable GPU target bound 1:1 to a host Window.
//
// A Surface is not safe for concurrent use. It is owned by exactly one
// renderer and must not be shared.
type Surface struct {
	raw    hal.Surface
	window Window

	// device is the device the surface is configured against, nil while
	// unconfigured.
	device hal.Device
	config Config

	destroyed bool
}

// Bind creates a surface for the given window.
//
// The window must stay alive until Destroy is called on the returned
// surface. Bind fails if the window is nil or already closed.
func Bind(instance hal.Instance, window Window) (*Surface, error) {
	if window == nil {
		return nil, ErrNilWindow
	}
	if !window.Alive() {
		return nil, ErrWindowClosed
	}
	display, handle := window.NativeHandles()
	raw, err := instance.CreateSurface(display, handle)
	if err != nil {
		return nil, fmt.Errorf("wsi: create surface: %w", err)
	}
	return &Surface{raw: raw, window: window}, nil
}

// Raw returns the backend surface.
func (s *Surface) Raw() hal.Surface { return s.raw }

// Window returns the window the surface is bound to.
func (s *Surface) Window() Window { return s.window }

// Config returns the current presentation configuration.
func (s *Surface) Config() Config { return s.config }

// Configured reports whether Configure succeeded and the surface has not
// been unconfigured since.
func (s *Surface) Configured() bool { return s.device != nil }

// Destroyed reports whether Destroy was called.
func (s *Surface) Destroyed() bool { return s.destroyed }

// DrawableSize returns the window's current framebuffer size clamped to
// unsigned values.
func (s *Surface) DrawableSize() (width, height uint32) {
	w, h := s.window.DrawableSize()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return uint32(w), uint32(h) //nolint:gosec // clamped above
}

// check reports why the surface cannot be used, if anything.
func (s *Surface) check() error {
	if s.destroyed {
		return ErrSurfaceDestroyed
	}
	if !s.window.Alive() {
		return ErrWindowClosed
	}
	return nil
}

// Configure applies cfg to the surface for the given device. It must be
// called again whenever the window's drawable size changes.
func (s *Surface) Configure(device hal.Device, cfg Config) error {
	if err := s.check(); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := s.raw.Configure(device, cfg.toHAL()); err != nil {
		return fmt.Errorf("wsi: configure surface: %w", err)
	}
	s.device = device
	s.config = cfg
	return nil
}

// Unconfigure releases the swap textures. The surface can be configured
// again afterwards.
func (s *Surface) Unconfigure() {
	if s.destroyed || s.device == nil {
		return
	}
	s.raw.Unconfigure(s.device)
	s.device = nil
}

// Acquire returns the next frame. Acquisition failures are mapped to
// ErrTimeout, ErrOutdated and ErrLost where the backend reports them.
func (s *Surface) Acquire() (*Frame, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	if s.device == nil {
		return nil, ErrNotConfigured
	}
	acquired, err := s.raw.AcquireTexture(nil)
	if err != nil {
		return nil, mapAcquireError(err)
	}
	f := NewFrame(acquired.Texture)
	f.Suboptimal = acquired.Suboptimal
	return f, nil
}

// Present hands a rendered frame back to the compositor through queue.
// When Present fails before reaching the queue the frame stays unconsumed
// and must be discarded by the caller.
func (s *Surface) Present(queue hal.Queue, f *Frame) error {
	if err := s.check(); err != nil {
		return err
	}
	if f == nil || f.consumed {
		return ErrFrameConsumed
	}
	tex, ok := f.texture.(hal.SurfaceTexture)
	if !ok {
		return fmt.Errorf("wsi: frame texture %T is not a surface texture", f.texture)
	}
	if err := f.Consume(); err != nil {
		return err
	}
	if err := queue.Present(s.raw, tex); err != nil {
		return fmt.Errorf("wsi: present: %w", mapAcquireError(err))
	}
	return nil
}

// Discard releases a frame without presenting it.
func (s *Surface) Discard(f *Frame) {
	if s.destroyed {
		return
	}
	if err := f.Consume(); err != nil {
		return
	}
	if tex, ok := f.texture.(hal.SurfaceTexture); ok {
		s.raw.DiscardTexture(tex)
	}
}

// Destroy unconfigures and releases the surface. Calling Destroy more than
// once is a no-op.
func (s *Surface) Destroy() {
	if s.destroyed {
		return
	}
	s.Unconfigure()
	s.raw.Destroy()
	s.raw = nil
	s.destroyed = true
}
