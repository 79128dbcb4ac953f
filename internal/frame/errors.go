package frame

import "errors"

var (
	// ErrFrameInFlight is returned when a frame is requested while another
	// one is still being rendered. Renderers are not reentrant.
	ErrFrameInFlight = errors.New("frame: another frame is in flight")

	// ErrDestroyed is returned when a destroyed renderer is used.
	ErrDestroyed = errors.New("frame: renderer destroyed")

	// ErrGPUTimeout is returned when the GPU does not finish a frame in time.
	ErrGPUTimeout = errors.New("frame: timed out waiting for GPU")
)
