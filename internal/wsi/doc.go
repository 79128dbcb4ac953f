// Package wsi binds host windows to presentable GPU surfaces.
//
// The window system integration layer owns no window. It borrows the native
// handles of a host [Window] for the whole lifetime of a [Surface] and keeps
// a reference to the Window so the surface can check that it is still alive
// before touching it. Destroying the Surface before the host destroys its
// window is always safe; the reverse order is reported as [ErrWindowClosed].
package wsi
