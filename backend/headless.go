// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package backend

import "github.com/dvzkit/dvz/internal/vk"

// HeadlessAdapter implements Adapter without any real windowing toolkit:
// every window it creates only tracks a virtual framebuffer size, per
// spec.md §6 ("HEADLESS skips actual window creation and only reports a
// virtual framebuffer size"). Used for CI/test runs; its windows have no
// surface, so it cannot serve present-support discovery.
type HeadlessAdapter struct{}

// NewHeadlessAdapter returns the headless Adapter.
func NewHeadlessAdapter() *HeadlessAdapter { return &HeadlessAdapter{} }

func (a *HeadlessAdapter) Init() error { return nil }

func (a *HeadlessAdapter) Terminate() {}

// RequiredExtensions is empty: a headless adapter never creates a
// VkSurfaceKHR, so it needs none of VK_KHR_surface's platform siblings.
func (a *HeadlessAdapter) RequiredExtensions() []string { return nil }

func (a *HeadlessAdapter) CreateWindow(width, height int, _ string, _ Flags) (Window, error) {
	return newHeadlessWindow(width, height), nil
}

func (a *HeadlessAdapter) DestroyWindow(Window) {}

func (a *HeadlessAdapter) PollEvents() {}

func (a *HeadlessAdapter) WaitEvents() {}

// headlessWindow is a virtual window: it has a size and can be resized
// (for simulating WINDOW_RESIZE in tests) but fires no real input events
// and never closes on its own.
type headlessWindow struct {
	width, height int
	shouldClose   bool

	onMouseButton MouseButtonFunc
	onCursorPos   CursorPosFunc
	onScroll      ScrollFunc
	onKey         KeyFunc
	onResize      ResizeFunc
	onClose       CloseFunc
}

func newHeadlessWindow(width, height int) *headlessWindow {
	return &headlessWindow{width: width, height: height}
}

func (w *headlessWindow) Size() (int, int) { return w.width, w.height }

func (w *headlessWindow) FramebufferSize() (int, int) { return w.width, w.height }

func (w *headlessWindow) SetSize(width, height int) {
	w.width, w.height = width, height
	if w.onResize != nil {
		w.onResize(width, height)
	}
}

func (w *headlessWindow) ShouldClose() bool { return w.shouldClose }

// RequestClose simulates a close request, for tests exercising
// client.Client's teardown path without a real window manager.
func (w *headlessWindow) RequestClose() {
	w.shouldClose = true
	if w.onClose != nil {
		w.onClose()
	}
}

func (w *headlessWindow) ClearCallbacks() {
	w.onMouseButton = nil
	w.onCursorPos = nil
	w.onScroll = nil
	w.onKey = nil
	w.onResize = nil
	w.onClose = nil
}

func (w *headlessWindow) CreateSurface(vk.Instance) (vk.SurfaceKHR, error) {
	return 0, ErrHeadlessSurface
}

func (w *headlessWindow) OnMouseButton(fn MouseButtonFunc) { w.onMouseButton = fn }
func (w *headlessWindow) OnCursorPos(fn CursorPosFunc)     { w.onCursorPos = fn }
func (w *headlessWindow) OnScroll(fn ScrollFunc)           { w.onScroll = fn }
func (w *headlessWindow) OnKey(fn KeyFunc)                 { w.onKey = fn }
func (w *headlessWindow) OnResize(fn ResizeFunc)           { w.onResize = fn }
func (w *headlessWindow) OnClose(fn CloseFunc)             { w.onClose = fn }

// SimulateMouseButton fires the registered mouse-button callback, for
// tests that exercise client.Client's dispatch path without a live GLFW
// window.
func (w *headlessWindow) SimulateMouseButton(button int, pressed bool, mods uint8, x, y float64) {
	if w.onMouseButton != nil {
		w.onMouseButton(button, pressed, mods, x, y)
	}
}

// SimulateCursorPos fires the registered cursor-position callback.
func (w *headlessWindow) SimulateCursorPos(x, y float64) {
	if w.onCursorPos != nil {
		w.onCursorPos(x, y)
	}
}

// SimulateKey fires the registered key callback.
func (w *headlessWindow) SimulateKey(key int, pressed, repeat bool, mods uint8) {
	if w.onKey != nil {
		w.onKey(key, pressed, repeat, mods)
	}
}
