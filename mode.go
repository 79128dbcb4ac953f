package gltut

import (
	"fmt"
	"strings"

	"github.com/gogpu/wgpu/hal"
)

// Mode selects what a frame renders.
type Mode int

const (
	// ModeClear clears the window to the requested color.
	ModeClear Mode = iota

	// ModeClearAndDraw clears the window to opaque black and draws the
	// triangle.
	ModeClearAndDraw
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeClear:
		return "clear"
	case ModeClearAndDraw:
		return "draw"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode returns the mode named s ("clear" or "draw").
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "clear":
		return ModeClear, nil
	case "draw", "clear-and-draw", "triangle":
		return ModeClearAndDraw, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// PresentMode controls how presented frames are synchronized with the
// display.
type PresentMode int

const (
	// PresentModeFifo waits for vertical blank. Always supported.
	PresentModeFifo PresentMode = iota

	// PresentModeMailbox replaces the queued frame with the newest one.
	PresentModeMailbox

	// PresentModeImmediate presents without waiting; may tear.
	PresentModeImmediate
)

// String returns the present mode name.
func (p PresentMode) String() string {
	switch p {
	case PresentModeFifo:
		return "fifo"
	case PresentModeMailbox:
		return "mailbox"
	case PresentModeImmediate:
		return "immediate"
	default:
		return fmt.Sprintf("PresentMode(%d)", int(p))
	}
}

// ParsePresentMode returns the present mode named s.
func ParsePresentMode(s string) (PresentMode, error) {
	switch strings.ToLower(s) {
	case "fifo", "vsync":
		return PresentModeFifo, nil
	case "mailbox":
		return PresentModeMailbox, nil
	case "immediate":
		return PresentModeImmediate, nil
	}
	return 0, fmt.Errorf("gltut: unknown present mode %q", s)
}

func (p PresentMode) toHAL() hal.PresentMode {
	switch p {
	case PresentModeMailbox:
		return hal.PresentModeMailbox
	case PresentModeImmediate:
		return hal.PresentModeImmediate
	default:
		return hal.PresentModeFifo
	}
}

func presentModeFromHAL(m hal.PresentMode) PresentMode {
	switch m {
	case hal.PresentModeMailbox:
		return PresentModeMailbox
	case hal.PresentModeImmediate:
		return PresentModeImmediate
	default:
		return PresentModeFifo
	}
}
