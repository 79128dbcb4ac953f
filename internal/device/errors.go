package device

import "errors"

var (
	// ErrNoAdapter is returned when the instance exposes no adapter at all.
	ErrNoAdapter = errors.New("device: no GPU adapter found")

	// ErrIncompatibleSurface is returned when no adapter can present to
	// the surface under the requested policy.
	ErrIncompatibleSurface = errors.New("device: no adapter compatible with surface")

	// ErrDestroyed is returned when a destroyed device is used.
	ErrDestroyed = errors.New("device: destroyed")
)
