package main

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// window adapts a GLFW window without a client API to gltut.Window.
type window struct {
	w      *glfw.Window
	closed bool
	resize func(width, height int)
}

func openWindow(width, height int, title string) (*window, error) {
	w, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	win := &window{w: w}
	w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if win.resize != nil {
			win.resize(width, height)
		}
	})
	return win, nil
}

// NativeHandles returns the platform display and window handles.
func (win *window) NativeHandles() (display, handle uintptr) {
	if win.closed {
		return 0, 0
	}
	return nativeHandles(win.w)
}

// DrawableSize returns the framebuffer size in pixels, which differs from
// the window size on high-DPI displays.
func (win *window) DrawableSize() (width, height int) {
	if win.closed {
		return 0, 0
	}
	return win.w.GetFramebufferSize()
}

func (win *window) Alive() bool { return !win.closed }

func (win *window) onResize(fn func(width, height int)) { win.resize = fn }

func (win *window) shouldClose() bool { return win.closed || win.w.ShouldClose() }

func (win *window) destroy() {
	if win.closed {
		return
	}
	win.w.Destroy()
	win.closed = true
}
