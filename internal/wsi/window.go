package wsi

// Window is a native window owned by the host application.
//
// The surface keeps a reference to the Window for its whole lifetime. The
// host must not destroy the native window while a surface bound to it is
// still in use; Alive lets the surface detect that case instead of handing a
// dangling handle to the driver.
type Window interface {
	// NativeHandles returns the platform display connection (zero where the
	// platform has none) and the native window handle.
	NativeHandles() (display, window uintptr)

	// DrawableSize returns the current framebuffer size in pixels.
	DrawableSize() (width, height int)

	// Alive reports whether the native window still exists.
	Alive() bool
}
