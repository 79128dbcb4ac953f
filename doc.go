// Package gltut is a minimal real-time rendering core built on gogpu/wgpu.
//
// # Overview
//
// A [Renderer] owns a GPU surface bound to a host window, negotiates an
// adapter, device and queue compatible with it, and renders frames that
// either clear the window to a color or clear it and draw one fixed
// triangle through a programmable pipeline.
//
// # Quick Start
//
//	r, err := gltut.New(window)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Destroy()
//
//	for !window.ShouldClose() {
//	    if err := r.RenderFrame(gltut.ModeClearAndDraw, gltut.Black); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Host Contract
//
// The host owns the window and its event loop and implements [Window]. It
// calls [Renderer.RenderFrame] once per tick from a single goroutine,
// forwards size changes with [Renderer.Resize], and calls [Renderer.Destroy]
// before destroying the window. The renderer never polls the window for
// resizes on its own.
//
// # Frame Outcomes
//
// A frame whose swap texture is not available in time is skipped and
// RenderFrame returns nil. An outdated or lost surface is reconfigured from
// the window's current drawable size and the frame is skipped. Any other
// failure is returned and should be treated as fatal.
//
// # Backends
//
// [BackendVulkan] renders through the Vulkan HAL of gogpu/wgpu and compiles
// shaders to SPIR-V with naga ahead of time. [BackendNoop] runs the whole
// frame sequence without a GPU, which is what the tests use.
//
// # Logging
//
// gltut is silent by default. Use [SetLogger] or [WithLogger] to receive
// lifecycle and per-frame diagnostics through log/slog.
package gltut
