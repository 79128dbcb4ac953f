package gltut

import (
	"io/fs"
	"log/slog"
	"time"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gltut/internal/frame"
	"github.com/gogpu/gltut/internal/pipeline"
)

// Option configures a Renderer during creation.
//
// Example:
//
//	// Defaults: Vulkan, FIFO presentation, built-in triangle shader
//	r, err := gltut.New(window)
//
//	// Software adapter, no vsync, custom shader
//	r, err := gltut.New(window,
//	    gltut.WithForceFallbackAdapter(true),
//	    gltut.WithPresentMode(gltut.PresentModeImmediate),
//	    gltut.WithShader(os.DirFS("shaders"), "tri.wgsl"),
//	)
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	backend       Backend
	powerPref     gputypes.PowerPreference
	forceFallback bool
	presentMode   PresentMode
	shaderFS      fs.FS
	shaderName    string
	language      pipeline.Language
	languageSet   bool
	label         string
	logger        *slog.Logger
	frameTimeout  time.Duration
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		backend:      BackendVulkan,
		presentMode:  PresentModeFifo,
		shaderFS:     pipeline.Shaders,
		shaderName:   pipeline.DefaultShader,
		label:        "gltut",
		frameTimeout: frame.DefaultTimeout,
	}
}

// shaderLanguage returns the explicit language, or the backend default.
func (o *options) shaderLanguage() pipeline.Language {
	if o.languageSet {
		return o.language
	}
	return o.backend.shaderLanguage()
}

// WithBackend selects the graphics backend. Default: BackendVulkan.
func WithBackend(b Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithPowerPreference hints which adapter to prefer when several can
// present to the window.
func WithPowerPreference(p gputypes.PowerPreference) Option {
	return func(o *options) {
		o.powerPref = p
	}
}

// WithForceFallbackAdapter restricts adapter selection to software
// (CPU) adapters.
func WithForceFallbackAdapter(force bool) Option {
	return func(o *options) {
		o.forceFallback = force
	}
}

// WithPresentMode requests a present mode. A mode the surface does not
// support falls back to PresentModeFifo.
func WithPresentMode(m PresentMode) Option {
	return func(o *options) {
		o.presentMode = m
	}
}

// WithShader loads the triangle shader from fsys instead of the built-in
// one. The shader must define the vs_main and fs_main entry points and
// take a vec4<f32> position at location 0.
func WithShader(fsys fs.FS, name string) Option {
	return func(o *options) {
		o.shaderFS = fsys
		o.shaderName = name
	}
}

// WithShaderLanguage overrides how shader text reaches the backend. By
// default Vulkan receives SPIR-V compiled with naga and the noop backend
// receives WGSL.
func WithShaderLanguage(l pipeline.Language) Option {
	return func(o *options) {
		o.language = l
		o.languageSet = true
	}
}

// WithDeviceLabel sets the label prefix of every GPU object the renderer
// creates.
func WithDeviceLabel(label string) Option {
	return func(o *options) {
		o.label = label
	}
}

// WithLogger sets the logger of one renderer. Without it the package
// logger from SetLogger is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithFrameTimeout bounds how long a frame waits for the GPU to finish.
// Non-positive values keep the default.
func WithFrameTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.frameTimeout = d
		}
	}
}
