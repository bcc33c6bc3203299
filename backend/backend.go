// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package backend implements the windowing adapter of spec.md §6: window
// creation, required Vulkan instance extensions, event polling, and
// VkSurfaceKHR creation, plus the mouse/keyboard/resize/close callbacks
// that feed the input state machines. Grounded on
// cmd/vulkan-triangle/main.go's window/device split (the teacher's one
// concrete example of a windowed Vulkan client) and on
// hal/vulkan/api_linux.go / api_windows.go / api_darwin.go's per-platform
// surface creation, now generalized behind a backend-toolkit-agnostic
// interface instead of being wired directly into hal.
package backend

import "github.com/dvzkit/dvz/internal/vk"

// Flags configures CreateWindow. Named HIDDEN/HEADLESS per spec.md §6.
type Flags uint32

const (
	// FlagHidden creates the window without showing it, used by
	// cmd/dvz-demo for the throwaway window that discovers present support
	// before any user-visible window exists.
	FlagHidden Flags = 1 << iota

	// FlagHeadless skips real window creation entirely and only reports a
	// virtual framebuffer size, per spec.md §6.
	FlagHeadless
)

// MouseButtonFunc reports a button press/release at a pixel position.
type MouseButtonFunc func(button int, pressed bool, mods uint8, x, y float64)

// CursorPosFunc reports a pointer move to a pixel position.
type CursorPosFunc func(x, y float64)

// ScrollFunc reports a wheel/trackpad scroll delta.
type ScrollFunc func(dx, dy float64)

// KeyFunc reports a key press/release/repeat.
type KeyFunc func(key int, pressed, repeat bool, mods uint8)

// ResizeFunc reports a framebuffer resize, in pixels.
type ResizeFunc func(width, height int)

// CloseFunc reports a close request (window-manager close button, Alt+F4).
type CloseFunc func()

// Window is one on-screen (or, under FlagHeadless, virtual) window.
type Window interface {
	// Size returns the window size in screen coordinates.
	Size() (int, int)
	// FramebufferSize returns the window's drawable size in pixels, which
	// on HiDPI displays differs from Size.
	FramebufferSize() (int, int)
	// SetSize resizes the window.
	SetSize(width, height int)
	// ShouldClose reports whether a close was requested.
	ShouldClose() bool
	// ClearCallbacks unregisters every callback, per spec.md §6's
	// clear_callbacks capability — used during the reverse-order teardown
	// client.Client performs before destroying the backend window.
	ClearCallbacks()

	// CreateSurface produces a VkSurfaceKHR for instance bound to this
	// window. Headless windows return ErrHeadlessSurface: spec.md §6
	// says headless canvases skip surface creation entirely and render
	// into an offscreen framebuffer instead.
	CreateSurface(instance vk.Instance) (vk.SurfaceKHR, error)

	OnMouseButton(fn MouseButtonFunc)
	OnCursorPos(fn CursorPosFunc)
	OnScroll(fn ScrollFunc)
	OnKey(fn KeyFunc)
	OnResize(fn ResizeFunc)
	OnClose(fn CloseFunc)
}

// Adapter is one windowing-toolkit binding (GLFW, or the headless
// no-toolkit stand-in). Capabilities named to match spec.md §6:
// init, required_extensions, create_window, destroy_window, poll_events,
// wait_events.
type Adapter interface {
	// Init performs one-time toolkit initialization.
	Init() error
	// Terminate releases toolkit resources; no window may outlive it.
	Terminate()
	// RequiredExtensions lists the Vulkan instance extensions this
	// adapter's surfaces need (VK_KHR_surface plus the platform-specific
	// one), empty for the headless adapter.
	RequiredExtensions() []string
	// CreateWindow creates a new window of the given size and flags.
	CreateWindow(width, height int, title string, flags Flags) (Window, error)
	// DestroyWindow destroys a window created by this adapter.
	DestroyWindow(w Window)
	// PollEvents processes pending events without blocking, firing
	// registered callbacks synchronously. This is step 1 of
	// client.Client's per-frame loop (spec.md §4.13).
	PollEvents()
	// WaitEvents blocks until at least one event is available, then
	// processes it. Used by a client that wants to idle rather than
	// busy-poll when no animation is running.
	WaitEvents()
}
