package wsi

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Config is the presentation configuration of a surface.
type Config struct {
	Width       uint32
	Height      uint32
	Format      gputypes.TextureFormat
	Usage       gputypes.TextureUsage
	PresentMode hal.PresentMode
	AlphaMode   hal.CompositeAlphaMode
}

// Validate checks that the configuration can be applied to a surface.
func (c Config) Validate() error {
	if c.Width == 0 || c.Height == 0 {
		return fmt.Errorf("wsi: invalid surface size %dx%d", c.Width, c.Height)
	}
	if c.Format == gputypes.TextureFormatUndefined {
		return fmt.Errorf("wsi: undefined surface format")
	}
	if c.Usage&gputypes.TextureUsageRenderAttachment == 0 {
		return fmt.Errorf("wsi: surface usage must include RenderAttachment")
	}
	return nil
}

// WithSize returns a copy of c with a new size.
func (c Config) WithSize(width, height uint32) Config {
	c.Width = width
	c.Height = height
	return c
}

func (c Config) toHAL() *hal.SurfaceConfiguration {
	return &hal.SurfaceConfiguration{
		Width:       c.Width,
		Height:      c.Height,
		Format:      c.Format,
		Usage:       c.Usage,
		PresentMode: c.PresentMode,
		AlphaMode:   c.AlphaMode,
	}
}
