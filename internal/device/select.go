package device

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// candidate is an adapter as seen by the selection policy.
type candidate struct {
	name         string
	deviceType   gputypes.DeviceType
	formats      []gputypes.TextureFormat
	presentModes []hal.PresentMode
	alphaModes   []hal.CompositeAlphaMode
}

// compatible reports whether the adapter can present to the surface.
func (c *candidate) compatible() bool {
	return len(c.formats) > 0
}

// preferredType maps a power preference to the device type it favors.
func preferredType(pref gputypes.PowerPreference) (gputypes.DeviceType, bool) {
	switch pref {
	case gputypes.PowerPreferenceHighPerformance:
		return gputypes.DeviceTypeDiscreteGPU, true
	case gputypes.PowerPreferenceLowPower:
		return gputypes.DeviceTypeIntegratedGPU, true
	default:
		return 0, false
	}
}

// selectAdapter returns the index of the adapter to use.
//
// Only adapters compatible with the surface are considered. With
// forceFallback only software (CPU) adapters qualify. Otherwise the first
// adapter of the type favored by pref wins, falling back to the first
// compatible adapter of any type.
func selectAdapter(cands []candidate, pref gputypes.PowerPreference, forceFallback bool) (int, error) {
	if len(cands) == 0 {
		return -1, ErrNoAdapter
	}

	first := -1
	want, hasWant := preferredType(pref)
	for i := range cands {
		c := &cands[i]
		if !c.compatible() {
			continue
		}
		if forceFallback {
			if c.deviceType == gputypes.DeviceTypeCPU {
				return i, nil
			}
			continue
		}
		if first < 0 {
			first = i
		}
		if hasWant && c.deviceType == want {
			return i, nil
		}
	}
	if first < 0 {
		return -1, ErrIncompatibleSurface
	}
	return first, nil
}

// choosePresentMode returns want if the surface supports it. FIFO is
// always available and is used otherwise.
func choosePresentMode(supported []hal.PresentMode, want hal.PresentMode) hal.PresentMode {
	for _, m := range supported {
		if m == want {
			return want
		}
	}
	return hal.PresentModeFifo
}

// chooseAlphaMode returns the first reported alpha mode, or opaque.
func chooseAlphaMode(supported []hal.CompositeAlphaMode) hal.CompositeAlphaMode {
	if len(supported) > 0 {
		return supported[0]
	}
	return hal.CompositeAlphaModeOpaque
}
