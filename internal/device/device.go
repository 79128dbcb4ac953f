package device

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gltut/internal/wsi"
)

// Options controls adapter selection and surface configuration.
type Options struct {
	// Label names the logical device in driver diagnostics.
	Label string

	// PowerPreference is a hint for choosing between adapters.
	PowerPreference gputypes.PowerPreference

	// ForceFallbackAdapter restricts selection to software adapters.
	ForceFallbackAdapter bool

	// PresentMode is the requested present mode. Unsupported modes fall
	// back to FIFO.
	PresentMode hal.PresentMode

	// Logger receives lifecycle and diagnostic messages. Nil disables logging.
	Logger *slog.Logger
}

// AdapterInfo describes the selected adapter.
type AdapterInfo struct {
	Name       string
	DeviceType gputypes.DeviceType
}

// String returns a human-readable description of the adapter.
func (a AdapterInfo) String() string {
	return fmt.Sprintf("%s (%v)", a.Name, a.DeviceType)
}

// Device is a logical GPU device negotiated for one surface. It owns the
// device, its queue and the surface configuration.
type Device struct {
	info    AdapterInfo
	adapter hal.Adapter
	device  hal.Device
	queue   hal.Queue
	surface *wsi.Surface
	logger  *slog.Logger

	caps      candidate
	config    wsi.Config
	suspended bool
	destroyed bool
}

// Negotiate selects an adapter compatible with surface, opens a device and
// queue on it and configures the surface with the preferred format, the
// window's current drawable size and the requested present mode.
func Negotiate(instance hal.Instance, surface *wsi.Surface, opts Options) (*Device, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	exposed := instance.EnumerateAdapters(surface.Raw())
	cands := make([]candidate, len(exposed))
	for i := range exposed {
		cands[i] = describe(&exposed[i], surface.Raw())
	}

	idx, err := selectAdapter(cands, opts.PowerPreference, opts.ForceFallbackAdapter)
	if err != nil {
		return nil, err
	}
	selected := &exposed[idx]
	caps := cands[idx]

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return nil, fmt.Errorf("device: open %q: %w", caps.name, err)
	}

	d := &Device{
		info:    AdapterInfo{Name: caps.name, DeviceType: caps.deviceType},
		adapter: selected.Adapter,
		device:  openDev.Device,
		queue:   openDev.Queue,
		surface: surface,
		logger:  logger,
		caps:    caps,
	}
	logger.Info("gltut: GPU adapter selected",
		"adapter", d.info.Name, "type", d.info.DeviceType, "label", opts.Label)

	width, height := surface.DrawableSize()
	cfg := wsi.Config{
		Width:       width,
		Height:      height,
		Format:      caps.formats[0],
		Usage:       gputypes.TextureUsageRenderAttachment,
		PresentMode: choosePresentMode(caps.presentModes, opts.PresentMode),
		AlphaMode:   chooseAlphaMode(caps.alphaModes),
	}
	if cfg.PresentMode != opts.PresentMode {
		logger.Warn("gltut: present mode not supported, using FIFO", "requested", opts.PresentMode)
	}
	if err := d.apply(cfg); err != nil {
		d.device.Destroy()
		return nil, err
	}
	return d, nil
}

// describe queries what the selection policy needs to know about an adapter.
func describe(a *hal.ExposedAdapter, surface hal.Surface) candidate {
	c := candidate{
		name:       a.Info.Name,
		deviceType: a.Info.DeviceType,
	}
	if caps := a.Adapter.SurfaceCapabilities(surface); caps != nil {
		c.formats = caps.Formats
		c.presentModes = caps.PresentModes
		c.alphaModes = caps.AlphaModes
	}
	return c
}

// apply configures the surface with cfg, or marks the device suspended
// when the drawable area is empty. d.config changes only when cfg was
// applied.
func (d *Device) apply(cfg wsi.Config) error {
	if cfg.Width == 0 || cfg.Height == 0 {
		d.surface.Unconfigure()
		d.config = cfg
		d.suspended = true
		d.logger.Debug("gltut: surface suspended, drawable size is empty")
		return nil
	}
	if err := d.surface.Configure(d.device, cfg); err != nil {
		return fmt.Errorf("device: %w", err)
	}
	d.config = cfg
	d.suspended = false
	d.logger.Debug("gltut: surface configured",
		"width", cfg.Width, "height", cfg.Height,
		"format", cfg.Format, "present_mode", cfg.PresentMode)
	return nil
}

// Reconfigure applies a new drawable size. A zero size suspends rendering
// until a non-zero size is applied.
func (d *Device) Reconfigure(width, height uint32) error {
	if d.destroyed {
		return ErrDestroyed
	}
	return d.apply(d.config.WithSize(width, height))
}

// ReconfigureFromWindow re-reads the window's drawable size and applies it.
// It is the recovery path for outdated or lost surfaces.
func (d *Device) ReconfigureFromWindow() error {
	w, h := d.surface.DrawableSize()
	return d.Reconfigure(w, h)
}

// SetPresentMode reconfigures the surface with a new present mode. It
// returns the mode in effect afterwards, which is the previous one when
// reconfiguration fails.
func (d *Device) SetPresentMode(mode hal.PresentMode) (hal.PresentMode, error) {
	if d.destroyed {
		return d.config.PresentMode, ErrDestroyed
	}
	cfg := d.config
	cfg.PresentMode = choosePresentMode(d.caps.presentModes, mode)
	if err := d.apply(cfg); err != nil {
		return d.config.PresentMode, err
	}
	return d.config.PresentMode, nil
}

// Suspended reports whether the surface is unconfigured because its
// drawable area is empty.
func (d *Device) Suspended() bool { return d.suspended }

// Config returns the current surface configuration.
func (d *Device) Config() wsi.Config { return d.config }

// Format returns the configured surface format.
func (d *Device) Format() gputypes.TextureFormat { return d.config.Format }

// Info returns the selected adapter's description.
func (d *Device) Info() AdapterInfo { return d.info }

// Adapter returns the physical adapter the device was opened on, or nil
// once the device is destroyed.
func (d *Device) Adapter() hal.Adapter { return d.adapter }

// HAL returns the logical device and its queue.
func (d *Device) HAL() (hal.Device, hal.Queue) { return d.device, d.queue }

// Destroy unconfigures the surface and releases the device. The surface
// itself stays alive; it belongs to the caller. Calling Destroy more than
// once is a no-op.
func (d *Device) Destroy() {
	if d.destroyed {
		return
	}
	d.surface.Unconfigure()
	d.device.Destroy()
	d.device = nil
	d.queue = nil
	d.adapter = nil
	d.destroyed = true
}
