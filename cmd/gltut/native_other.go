//go:build !linux && !windows

package main

import "github.com/go-gl/glfw/v3.3/glfw"

// nativeHandles reports no handles; surface creation then fails with a
// backend error on platforms without an X11 or Win32 window.
func nativeHandles(*glfw.Window) (display, window uintptr) {
	return 0, 0
}
