package wsi

import (
	"errors"

	"github.com/gogpu/wgpu/hal"
)

var (
	// ErrNilWindow is returned when Bind is called without a window.
	ErrNilWindow = errors.New("wsi: nil window")

	// ErrWindowClosed is returned when the bound window no longer exists.
	ErrWindowClosed = errors.New("wsi: window closed")

	// ErrSurfaceDestroyed is returned when a destroyed surface is used.
	ErrSurfaceDestroyed = errors.New("wsi: surface destroyed")

	// ErrNotConfigured is returned when a frame is acquired before Configure.
	ErrNotConfigured = errors.New("wsi: surface not configured")

	// ErrTimeout reports that no swap texture became available in time.
	// The frame should be skipped; the next tick will try again.
	ErrTimeout = errors.New("wsi: acquire timeout")

	// ErrOutdated reports that the surface no longer matches its window
	// and must be reconfigured.
	ErrOutdated = errors.New("wsi: surface outdated")

	// ErrLost reports that the surface was lost and must be reconfigured.
	ErrLost = errors.New("wsi: surface lost")

	// ErrFrameConsumed is returned when a frame is presented or discarded twice.
	ErrFrameConsumed = errors.New("wsi: frame already consumed")
)

// NeedsReconfigure reports whether err asks for a surface reconfiguration.
func NeedsReconfigure(err error) bool {
	return errors.Is(err, ErrOutdated) || errors.Is(err, ErrLost)
}

// mapAcquireError translates backend acquisition errors into the sentinel
// errors of this package. Unknown errors are returned unchanged.
func mapAcquireError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, hal.ErrTimeout):
		return ErrTimeout
	case errors.Is(err, hal.ErrSurfaceOutdated):
		return ErrOutdated
	case errors.Is(err, hal.ErrSurfaceLost):
		return ErrLost
	default:
		return err
	}
}
