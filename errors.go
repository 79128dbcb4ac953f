package gltut

import (
	"errors"

	"github.com/gogpu/gltut/internal/device"
	"github.com/gogpu/gltut/internal/frame"
	"github.com/gogpu/gltut/internal/pipeline"
	"github.com/gogpu/gltut/internal/wsi"
)

var (
	// ErrDestroyed is returned when a destroyed Renderer is used.
	ErrDestroyed = errors.New("gltut: renderer destroyed")

	// ErrBackendUnavailable is returned when the selected backend is not
	// compiled in or cannot create an instance.
	ErrBackendUnavailable = errors.New("gltut: backend unavailable")

	// ErrUnknownMode is returned for a render mode outside the Mode set.
	ErrUnknownMode = errors.New("gltut: unknown render mode")

	// ErrNilWindow is returned by New when no window is given.
	ErrNilWindow = wsi.ErrNilWindow

	// ErrWindowClosed is returned when the host window no longer exists.
	ErrWindowClosed = wsi.ErrWindowClosed

	// ErrFrameInFlight is returned when RenderFrame is called while another
	// frame is still being rendered.
	ErrFrameInFlight = frame.ErrFrameInFlight

	// ErrNoAdapter is returned by New when no adapter can present to the
	// window.
	ErrNoAdapter = device.ErrNoAdapter

	// ErrShaderCompile is returned by New when the shader does not compile.
	ErrShaderCompile = pipeline.ErrShaderCompile
)
