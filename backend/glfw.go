// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/dvzkit/dvz/internal/vk"
)

// GLFWAdapter is the default, on-screen Adapter, grounded on
// cmd/vulkan-triangle/main.go's window pump. GLFW is told to create a
// context-less window (ClientAPI: NoAPI) since this runtime talks to
// Vulkan directly through internal/vk, never through GLFW's own GL/GLES
// context.
type GLFWAdapter struct{}

// NewGLFWAdapter returns the GLFW-backed Adapter.
func NewGLFWAdapter() *GLFWAdapter { return &GLFWAdapter{} }

func (a *GLFWAdapter) Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("%w: %v", ErrToolkitInit, err)
	}
	return nil
}

func (a *GLFWAdapter) Terminate() { glfw.Terminate() }

// RequiredExtensions reports the instance extensions GLFW's surface
// creation needs on the running platform (VK_KHR_surface plus
// VK_KHR_xlib_surface/VK_KHR_wayland_surface/VK_KHR_win32_surface/
// VK_EXT_metal_surface as appropriate).
func (a *GLFWAdapter) RequiredExtensions() []string {
	return glfw.GetRequiredInstanceExtensions()
}

func (a *GLFWAdapter) CreateWindow(width, height int, title string, flags Flags) (Window, error) {
	if flags&FlagHeadless != 0 {
		return newHeadlessWindow(width, height), nil
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	if flags&FlagHidden != 0 {
		glfw.WindowHint(glfw.Visible, glfw.False)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.True)
	}

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrToolkitInit, err)
	}

	w := &glfwWindow{win: win}
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if w.onResize != nil {
			w.onResize(width, height)
		}
	})
	win.SetCloseCallback(func(_ *glfw.Window) {
		if w.onClose != nil {
			w.onClose()
		}
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if w.onMouseButton == nil {
			return
		}
		x, y := win.GetCursorPos()
		w.onMouseButton(int(button), action != glfw.Release, convertMods(mods), x, y)
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if w.onCursorPos != nil {
			w.onCursorPos(x, y)
		}
	})
	win.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		if w.onScroll != nil {
			w.onScroll(dx, dy)
		}
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		if w.onKey == nil {
			return
		}
		w.onKey(int(key), action != glfw.Release, action == glfw.Repeat, convertMods(mods))
	})

	return w, nil
}

func (a *GLFWAdapter) DestroyWindow(w Window) {
	if gw, ok := w.(*glfwWindow); ok {
		gw.win.Destroy()
	}
}

func (a *GLFWAdapter) PollEvents()  { glfw.PollEvents() }
func (a *GLFWAdapter) WaitEvents() { glfw.WaitEvents() }

func convertMods(mods glfw.ModifierKey) uint8 {
	var out uint8
	if mods&glfw.ModShift != 0 {
		out |= 1 << 0
	}
	if mods&glfw.ModControl != 0 {
		out |= 1 << 1
	}
	if mods&glfw.ModAlt != 0 {
		out |= 1 << 2
	}
	if mods&glfw.ModSuper != 0 {
		out |= 1 << 3
	}
	return out
}

// glfwWindow wraps a live *glfw.Window and dispatches its callbacks into
// the backend.Window function-valued hooks.
type glfwWindow struct {
	win *glfw.Window

	onMouseButton MouseButtonFunc
	onCursorPos   CursorPosFunc
	onScroll      ScrollFunc
	onKey         KeyFunc
	onResize      ResizeFunc
	onClose       CloseFunc
}

func (w *glfwWindow) Size() (int, int) { return w.win.GetSize() }

func (w *glfwWindow) FramebufferSize() (int, int) { return w.win.GetFramebufferSize() }

func (w *glfwWindow) SetSize(width, height int) { w.win.SetSize(width, height) }

func (w *glfwWindow) ShouldClose() bool { return w.win.ShouldClose() }

// ClearCallbacks unregisters every GLFW callback, matching spec.md §6's
// clear_callbacks capability: client.Client calls this before destroying
// the window so no input callback races the teardown.
func (w *glfwWindow) ClearCallbacks() {
	w.win.SetFramebufferSizeCallback(nil)
	w.win.SetCloseCallback(nil)
	w.win.SetMouseButtonCallback(nil)
	w.win.SetCursorPosCallback(nil)
	w.win.SetScrollCallback(nil)
	w.win.SetKeyCallback(nil)
	w.onMouseButton = nil
	w.onCursorPos = nil
	w.onScroll = nil
	w.onKey = nil
	w.onResize = nil
	w.onClose = nil
}

// CreateSurface asks GLFW to create the VkSurfaceKHR for this window.
// GLFW's glfwCreateWindowSurface already knows, per-platform, which of
// vkCreateXlibSurfaceKHR/vkCreateWaylandSurfaceKHR/vkCreateWin32SurfaceKHR/
// vkCreateMetalSurfaceEXT to call — the raw instance handle is passed
// through as an opaque pointer since our goffi-based internal/vk
// represents it as a uint64 rather than a cgo pointer type.
func (w *glfwWindow) CreateSurface(instance vk.Instance) (vk.SurfaceKHR, error) {
	surface, err := w.win.CreateWindowSurface(unsafe.Pointer(uintptr(instance)), nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSurfaceCreation, err)
	}
	return vk.SurfaceKHR(surface), nil
}

func (w *glfwWindow) OnMouseButton(fn MouseButtonFunc) { w.onMouseButton = fn }
func (w *glfwWindow) OnCursorPos(fn CursorPosFunc)     { w.onCursorPos = fn }
func (w *glfwWindow) OnScroll(fn ScrollFunc)           { w.onScroll = fn }
func (w *glfwWindow) OnKey(fn KeyFunc)                 { w.onKey = fn }
func (w *glfwWindow) OnResize(fn ResizeFunc)           { w.onResize = fn }
func (w *glfwWindow) OnClose(fn CloseFunc)             { w.onClose = fn }
