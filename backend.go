package gltut

import (
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
	_ "github.com/gogpu/wgpu/hal/vulkan"

	"github.com/gogpu/gltut/internal/pipeline"
)

// Backend selects the graphics API the renderer runs on.
type Backend int

const (
	// BackendVulkan renders through the Vulkan HAL.
	BackendVulkan Backend = iota

	// BackendNoop runs every GPU call without effect. Useful for tests and
	// for headless validation of the host loop.
	BackendNoop
)

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case BackendVulkan:
		return "vulkan"
	case BackendNoop:
		return "noop"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// ParseBackend returns the backend named s.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(s) {
	case "vulkan", "vk":
		return BackendVulkan, nil
	case "noop", "none":
		return BackendNoop, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBackendUnavailable, s)
}

// shaderLanguage is the shader form handed to the backend when no
// WithShaderLanguage option is given.
func (b Backend) shaderLanguage() pipeline.Language {
	if b == BackendVulkan {
		return pipeline.LanguageSPIRV
	}
	return pipeline.LanguageWGSL
}

func createInstance(b Backend) (hal.Instance, error) {
	switch b {
	case BackendVulkan:
		backend, ok := hal.GetBackend(gputypes.BackendVulkan)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrBackendUnavailable, b)
		}
		instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrBackendUnavailable, b, err)
		}
		return instance, nil
	case BackendNoop:
		api := noop.API{}
		instance, err := api.CreateInstance(nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrBackendUnavailable, b, err)
		}
		return instance, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrBackendUnavailable, b)
	}
}
