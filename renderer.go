package gltut

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gltut/internal/device"
	"github.com/gogpu/gltut/internal/frame"
	"github.com/gogpu/gltut/internal/pipeline"
	"github.com/gogpu/gltut/internal/wsi"
)

// Window is the host window a Renderer draws into. The renderer keeps a
// reference to it for its whole lifetime and checks Alive before every
// frame.
type Window = wsi.Window

// Stats counts presented and skipped frames.
type Stats = frame.Stats

// AdapterInfo describes the adapter a Renderer runs on.
type AdapterInfo = device.AdapterInfo

// Renderer renders frames into one window. It is not safe for concurrent
// use; overlapping RenderFrame calls fail with ErrFrameInFlight.
type Renderer struct {
	opts   options
	logger *slog.Logger
	window Window
	shader string

	instance hal.Instance
	surface  *wsi.Surface
	device   *device.Device
	frames   *frame.Renderer
	pipeline *pipeline.Pipeline

	destroyed bool
}

// New binds a surface to window, negotiates an adapter and device for it,
// configures the surface with the window's current drawable size and builds
// the triangle pipeline. Every GPU object created before a failure is
// released before New returns.
func New(window Window, opts ...Option) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger
	if logger == nil {
		logger = Logger()
	}
	if window == nil {
		return nil, ErrNilWindow
	}

	shader, err := pipeline.LoadShader(o.shaderFS, o.shaderName)
	if err != nil {
		return nil, err
	}

	instance, err := createInstance(o.backend)
	if err != nil {
		return nil, err
	}
	r := &Renderer{
		opts:     o,
		logger:   logger,
		window:   window,
		shader:   shader,
		instance: instance,
	}
	if err := r.init(); err != nil {
		r.Destroy()
		return nil, err
	}
	logger.Info("gltut: renderer ready",
		"backend", o.backend, "adapter", r.device.Info().Name,
		"format", r.device.Format(), "shader", o.shaderName)
	return r, nil
}

func (r *Renderer) init() error {
	surface, err := wsi.Bind(r.instance, r.window)
	if err != nil {
		return err
	}
	r.surface = surface

	dev, err := device.Negotiate(r.instance, surface, device.Options{
		Label:                r.opts.label,
		PowerPreference:      r.opts.powerPref,
		ForceFallbackAdapter: r.opts.forceFallback,
		PresentMode:          r.opts.presentMode.toHAL(),
		Logger:               r.logger,
	})
	if err != nil {
		return err
	}
	r.device = dev

	halDevice, queue := dev.HAL()
	frames, err := frame.New(halDevice, queue, surface.Chain(queue))
	if err != nil {
		return err
	}
	frames.SetTimeout(r.opts.frameTimeout)
	r.frames = frames

	return r.ensurePipeline()
}

// ensurePipeline builds the pipeline for the surface's current format, or
// rebuilds it when the format changed since the last build.
func (r *Renderer) ensurePipeline() error {
	format := r.device.Format()
	if r.pipeline != nil && r.pipeline.Format() == format {
		return nil
	}
	if r.pipeline != nil {
		r.logger.Info("gltut: surface format changed, rebuilding pipeline",
			"old", r.pipeline.Format(), "new", format)
		r.pipeline.Destroy()
		r.pipeline = nil
	}

	halDevice, queue := r.device.HAL()
	p, err := pipeline.Build(halDevice, queue, pipeline.Descriptor{
		Label:    r.opts.label + "_triangle",
		Source:   r.shader,
		Language: r.opts.shaderLanguage(),
		Format:   format,
	})
	if err != nil {
		return err
	}
	r.pipeline = p
	r.logger.Info("gltut: pipeline built",
		"format", format, "language", r.opts.shaderLanguage(), "vertices", p.VertexCount())
	return nil
}

// RenderFrame renders one frame in the given mode. ModeClear clears to
// color; ModeClearAndDraw clears to opaque black and draws the triangle,
// ignoring color.
//
// A frame is skipped, with a nil error, when the swap texture is not
// available in time, when the window has an empty drawable area, or when
// the surface was outdated or lost. In the last case the surface is
// reconfigured from the window's current size first. Any other error is
// returned and the renderer should be destroyed.
func (r *Renderer) RenderFrame(mode Mode, color gputypes.Color) error {
	if r.destroyed {
		return ErrDestroyed
	}
	if !r.window.Alive() {
		return ErrWindowClosed
	}
	if r.device.Suspended() {
		r.logger.Debug("gltut: frame skipped, surface suspended")
		return nil
	}

	var (
		outcome frame.Outcome
		err     error
	)
	switch mode {
	case ModeClear:
		outcome, err = r.frames.Clear(color)
	case ModeClearAndDraw:
		if err := r.ensurePipeline(); err != nil {
			return err
		}
		outcome, err = r.frames.Draw(r.pipeline, Black)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}

	switch {
	case err == nil:
		if outcome == frame.Skipped {
			r.logger.Debug("gltut: frame skipped, acquire timed out")
		}
		return nil
	case wsi.NeedsReconfigure(err):
		r.logger.Warn("gltut: surface needs reconfiguration", "err", err)
		return r.reconfigure()
	case errors.Is(err, frame.ErrDestroyed):
		return ErrDestroyed
	default:
		return err
	}
}

// reconfigure re-applies the surface configuration from the window's
// current drawable size.
func (r *Renderer) reconfigure() error {
	if err := r.device.ReconfigureFromWindow(); err != nil {
		return fmt.Errorf("gltut: reconfigure surface: %w", err)
	}
	return r.ensurePipeline()
}

// Clear renders one frame cleared to color.
func (r *Renderer) Clear(color gputypes.Color) error {
	return r.RenderFrame(ModeClear, color)
}

// Draw renders one frame with the triangle on opaque black.
func (r *Renderer) Draw() error {
	return r.RenderFrame(ModeClearAndDraw, Black)
}

// Resize reconfigures the surface for a new drawable size, in pixels. A
// zero or negative dimension suspends rendering until a non-zero size
// arrives; frames requested meanwhile are skipped.
func (r *Renderer) Resize(width, height int) error {
	if r.destroyed {
		return ErrDestroyed
	}
	if err := r.device.Reconfigure(clampSize(width), clampSize(height)); err != nil {
		return fmt.Errorf("gltut: resize %dx%d: %w", width, height, err)
	}
	if r.device.Suspended() {
		return nil
	}
	return r.ensurePipeline()
}

// SetPresentMode reconfigures the surface with a new present mode and
// returns the mode applied, which is PresentModeFifo when the requested
// mode is not supported.
func (r *Renderer) SetPresentMode(mode PresentMode) (PresentMode, error) {
	if r.destroyed {
		return r.opts.presentMode, ErrDestroyed
	}
	applied, err := r.device.SetPresentMode(mode.toHAL())
	if err != nil {
		return r.opts.presentMode, fmt.Errorf("gltut: set present mode: %w", err)
	}
	r.opts.presentMode = presentModeFromHAL(applied)
	if applied != mode.toHAL() {
		r.logger.Warn("gltut: present mode not supported, using FIFO", "requested", mode)
	}
	return r.opts.presentMode, nil
}

// Format returns the surface's configured texture format.
func (r *Renderer) Format() gputypes.TextureFormat {
	if r.device == nil {
		return gputypes.TextureFormatUndefined
	}
	return r.device.Format()
}

// Size returns the configured surface size in pixels.
func (r *Renderer) Size() (width, height uint32) {
	if r.device == nil {
		return 0, 0
	}
	cfg := r.device.Config()
	return cfg.Width, cfg.Height
}

// Suspended reports whether rendering is paused because the window has an
// empty drawable area.
func (r *Renderer) Suspended() bool {
	return r.device != nil && r.device.Suspended()
}

// Stats returns the frame counters.
func (r *Renderer) Stats() Stats {
	if r.frames == nil {
		return Stats{}
	}
	return r.frames.Stats()
}

// Info describes the selected adapter.
func (r *Renderer) Info() AdapterInfo {
	if r.device == nil {
		return AdapterInfo{}
	}
	return r.device.Info()
}

// Backend returns the backend the renderer runs on.
func (r *Renderer) Backend() Backend { return r.opts.backend }

// Destroy releases every GPU object in reverse creation order: pipeline,
// frame resources, device, surface, instance. It must be called before
// the host destroys the window. Calling Destroy more than once is a no-op.
func (r *Renderer) Destroy() {
	if r.destroyed {
		return
	}
	if r.pipeline != nil {
		r.pipeline.Destroy()
		r.pipeline = nil
	}
	if r.frames != nil {
		r.frames.Destroy()
	}
	if r.device != nil {
		r.device.Destroy()
	}
	if r.surface != nil {
		r.surface.Destroy()
	}
	if r.instance != nil {
		r.instance.Destroy()
		r.instance = nil
	}
	r.destroyed = true
	r.logger.Debug("gltut: renderer destroyed")
}

func clampSize(v int) uint32 {
	if v < 0 {
		return 0
	}
	return uint32(v) //nolint:gosec // non-negative
}
