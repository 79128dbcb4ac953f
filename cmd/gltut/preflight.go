package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"
	vk "github.com/vulkan-go/vulkan"
)

// errNoVulkanLoader is returned when no Vulkan loader is installed.
var errNoVulkanLoader = errors.New("vulkan loader not found")

// vulkanPreflight checks that the Vulkan loader exposes every instance
// extension the window system needs, so a missing driver is reported by
// name instead of as a surface creation failure.
func vulkanPreflight(win *window) ([]string, error) {
	if !glfw.VulkanSupported() {
		return nil, errNoVulkanLoader
	}
	vk.SetGetInstanceProcAddr(glfw.GetVulkanGetInstanceProcAddress())
	if err := vk.Init(); err != nil {
		return nil, fmt.Errorf("vulkan init: %w", err)
	}

	available, err := instanceExtensions()
	if err != nil {
		return nil, err
	}
	required := win.w.GetRequiredInstanceExtensions()
	if missing := missingExtensions(required, available); len(missing) > 0 {
		return available, fmt.Errorf("vulkan loader lacks %s", strings.Join(missing, ", "))
	}
	return available, nil
}

func instanceExtensions() ([]string, error) {
	var count uint32
	if res := vk.EnumerateInstanceExtensionProperties("", &count, nil); res != vk.Success {
		return nil, fmt.Errorf("enumerate instance extensions: result %d", res)
	}
	props := make([]vk.ExtensionProperties, count)
	if res := vk.EnumerateInstanceExtensionProperties("", &count, props); res != vk.Success {
		return nil, fmt.Errorf("enumerate instance extensions: result %d", res)
	}
	names := make([]string, 0, count)
	for i := range props[:count] {
		props[i].Deref()
		names = append(names, vk.ToString(props[i].ExtensionName[:]))
	}
	return names, nil
}

// missingExtensions returns the entries of required absent from available,
// in the order they were required.
func missingExtensions(required, available []string) []string {
	have := make(map[string]bool, len(available))
	for _, name := range available {
		have[name] = true
	}
	var missing []string
	for _, name := range required {
		if !have[name] {
			missing = append(missing, name)
		}
	}
	return missing
}
