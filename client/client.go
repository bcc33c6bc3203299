// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package client implements the window lifecycle and event pump of
// spec.md §4.13: it owns backend windows and a single event queue,
// wires mouse/keyboard callbacks into the input state machines so they
// enqueue client events, and honors per-window input capture (the
// ImGui-overlay hook of spec.md §6). Grounded on
// cmd/vulkan-triangle/main.go's two-thread architecture — a main thread
// that owns the window and polls events, and a render thread that calls
// into the GPU — realized here with internal/thread.RenderLoop driving
// every GPU-touching call (RunFrame, swapchain recreation on resize,
// canvas teardown) on one dedicated, OS-thread-locked goroutine, while
// Client.PollEvents/backend callbacks stay on the caller's thread,
// matching spec.md §5's "backend APIs are main-thread-only" scheduling
// rule.
package client

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/dvzkit/dvz/backend"
	"github.com/dvzkit/dvz/event"
	"github.com/dvzkit/dvz/frame"
	"github.com/dvzkit/dvz/input"
	"github.com/dvzkit/dvz/internal/thread"
	"github.com/dvzkit/dvz/internal/vk"
	"github.com/dvzkit/dvz/present"
	"github.com/dvzkit/dvz/view"
)

// Window is one live backend window plus the gesture state machines and
// canvas it drives.
type Window struct {
	win      backend.Window
	canvasID present.CanvasID

	mouse    input.Mouse
	keyboard input.Keyboard

	// captured suppresses routed mouse/keyboard events while true, per
	// spec.md §6's overlay capture flag (e.g. an ImGui widget has focus).
	captured bool

	// panzoom is the default view controller every window carries (spec
	// §4.10/§2's "mouse events -> view controllers -> MVP upload -> frame
	// loop" data flow). It tracks gestures unconditionally; whether those
	// gestures actually reach the GPU depends on BindPanzoomUniform having
	// been called to attach a uniform dat.
	panzoom *view.Panzoom

	uniformDat present.DatID
	hasUniform bool
}

// Panzoom returns w's pan/zoom view controller.
func (w *Window) Panzoom() *view.Panzoom { return w.panzoom }

// CanvasID returns the present.CanvasID this window's swapchain is
// registered under.
func (w *Window) CanvasID() present.CanvasID { return w.canvasID }

// ShouldClose reports whether the backend window received a close
// request.
func (w *Window) ShouldClose() bool { return w.win.ShouldClose() }

// Client owns every live window and the single event queue spec.md
// §4.13 describes ("the client owns windows and a single event queue").
type Client struct {
	adapter    backend.Adapter
	presenter  *present.Presenter
	events     *event.Queue
	renderLoop *thread.RenderLoop

	mu      sync.Mutex
	windows []*Window
}

// New creates a Client over an already-initialized Adapter and
// Presenter, dispatching through events. It starts a dedicated render
// thread: every call that touches the GPU (RunFrame, swapchain
// recreation, canvas teardown) runs there, never on the thread that
// calls PollEvents.
func New(adapter backend.Adapter, presenter *present.Presenter, events *event.Queue) *Client {
	return &Client{adapter: adapter, presenter: presenter, events: events, renderLoop: thread.NewRenderLoop()}
}

// Close stops the render thread. Call after every window has been
// destroyed.
func (c *Client) Close() { c.renderLoop.Stop() }

// DefaultPresentMode implements the CLI/env surface of spec.md §6:
// DVZ_FPS non-empty selects IMMEDIATE present mode, otherwise FIFO
// (vsync).
func DefaultPresentMode() vk.PresentModeKHR {
	if os.Getenv("DVZ_FPS") != "" {
		return vk.PresentModeImmediate
	}
	return vk.PresentModeFIFO
}

// CreateWindow creates a backend window, its present.Canvas, and wires
// the mouse/keyboard/resize/close callbacks that feed the input state
// machines and enqueue client events.
func (c *Client) CreateWindow(width, height int, title string, flags backend.Flags, canvasFlags present.CanvasFlags) (*Window, error) {
	bwin, err := c.adapter.CreateWindow(width, height, title, flags)
	if err != nil {
		return nil, fmt.Errorf("client: create window: %w", err)
	}

	canvasID, err := c.presenter.CreateCanvas(bwin, uint32(width), uint32(height), DefaultPresentMode(), canvasFlags)
	if err != nil {
		c.adapter.DestroyWindow(bwin)
		return nil, fmt.Errorf("client: create window: %w", err)
	}

	w := &Window{win: bwin, canvasID: canvasID, panzoom: view.NewPanzoom(float64(width), float64(height))}
	c.wireCallbacks(w)

	c.mu.Lock()
	c.windows = append(c.windows, w)
	c.mu.Unlock()

	return w, nil
}

// BindPanzoomUniform attaches a uniform dat that w's panzoom controller
// keeps updated with its MVP matrix (proj*view, spec §4.10) on every
// mouse gesture, realizing spec §2's "mouse events -> view controllers ->
// MVP upload -> frame loop" data flow. Create the dat with
// resources.Uniform/UniformMappable and a size of 16*4 bytes beforehand
// via Presenter.CreateDat.
func (c *Client) BindPanzoomUniform(w *Window, datID present.DatID) {
	w.uniformDat = datID
	w.hasUniform = true
	c.uploadPanzoomMVP(w)
}

func (c *Client) uploadPanzoomMVP(w *Window) {
	if !w.hasUniform {
		return
	}
	viewMat, proj := w.panzoom.MVP()
	mvp := proj.Mul(viewMat)
	if err := c.presenter.UploadDat(w.uniformDat, 0, mvp.UniformBytes()); err != nil {
		Logger().Warn("panzoom uniform upload failed", "error", err)
	}
}

// SetCaptured sets the overlay-capture flag for w (spec.md §6): while
// true, the mouse/keyboard callbacks still run but drop the event
// before it reaches the SM or the event queue, per spec.md §4.13 step 3.
func (c *Client) SetCaptured(w *Window, captured bool) { w.captured = captured }

// wireCallbacks registers w's backend callbacks. Each callback runs on
// whatever goroutine Adapter.PollEvents/WaitEvents calls it from — the
// main thread, per spec.md §5.
func (c *Client) wireCallbacks(w *Window) {
	w.win.OnMouseButton(func(rawButton int, pressed bool, rawMods uint8, x, y float64) {
		if w.captured {
			return
		}
		mods := input.Mods(rawMods)
		btn := mapButton(rawButton)
		now := time.Now()
		var evs []input.MouseEvent
		if pressed {
			evs = w.mouse.Press(btn, [2]float64{x, y}, mods, now)
		} else {
			evs = w.mouse.Release(btn, [2]float64{x, y}, mods, now)
		}
		c.sendMouseEvents(w, evs)
	})

	w.win.OnCursorPos(func(x, y float64) {
		if w.captured {
			return
		}
		evs := w.mouse.Move([2]float64{x, y}, w.mouse.Mods, time.Now())
		c.sendMouseEvents(w, evs)
	})

	w.win.OnScroll(func(dx, dy float64) {
		if w.captured {
			return
		}
		evs := w.mouse.Wheel([2]float64{dx, dy}, w.mouse.Mods)
		c.sendMouseEvents(w, evs)
	})

	w.win.OnKey(func(rawKey int, pressed, repeat bool, rawMods uint8) {
		if w.captured {
			return
		}
		key := mapKey(rawKey)
		now := time.Now()
		switch {
		case repeat:
			ev := w.keyboard.Repeat(key)
			c.events.Send(event.Event{Type: event.TypeKey, Mods: rawMods, Payload: ev})
		case pressed:
			w.keyboard.Press(key, now)
			c.events.Send(event.Event{
				Type: event.TypeKey, Mods: rawMods,
				Payload: input.KeyEvent{Type: key, Kind: input.EventKeyPress, Mods: w.keyboard.Mods},
			})
		default:
			w.keyboard.Release(key)
			c.events.Send(event.Event{
				Type: event.TypeKey, Mods: rawMods,
				Payload: input.KeyEvent{Type: key, Kind: input.EventKeyRelease, Mods: w.keyboard.Mods},
			})
		}
	})

	w.win.OnResize(func(width, height int) {
		// Swapchain recreation runs on the render thread so the callback
		// (fired from the poll/main thread) never blocks on
		// vkDeviceWaitIdle.
		c.renderLoop.RunOnRenderThreadAsync(func() {
			_ = c.presenter.Resize(w.canvasID)
		})
		w.panzoom.Resize(float64(width), float64(height))
		c.events.Send(event.Event{Type: event.TypeResize, Payload: [2]int{width, height}})
	})

	w.win.OnClose(func() {
		c.events.Send(event.Event{Type: event.TypeDestroy, UserData: w})
	})
}

func (c *Client) sendMouseEvents(w *Window, evs []input.MouseEvent) {
	for _, ev := range evs {
		c.events.Send(event.Event{Type: mapMouseEventType(ev.Type), Mods: uint8(ev.Mods), Payload: ev, UserData: w})
		w.panzoom.BindMouse(ev)
		c.uploadPanzoomMVP(w)
	}
}

// PollEvents processes pending backend events without blocking, per
// spec.md §4.13 step 1 — this is what fires the callbacks wired in
// CreateWindow, which in turn drive steps 2 and 3 inline.
func (c *Client) PollEvents() { c.adapter.PollEvents() }

// WaitEvents blocks until at least one backend event is available.
func (c *Client) WaitEvents() { c.adapter.WaitEvents() }

// RunFrame drives one frame of w's canvas on the render thread.
// ErrSwapchainOutOfDate from a recreate is not an error to the caller —
// spec.md §4.5 says the caller should simply run the next frame — so
// RunFrame swallows it after re-scheduling the window's record script
// via Presenter.Resize.
func (c *Client) RunFrame(w *Window) error {
	result := c.renderLoop.RunOnRenderThread(func() any {
		canvas, ok := c.presenter.Canvas(w.canvasID)
		if !ok {
			return ErrUnknownWindow
		}
		err := canvas.RunFrame()
		if err == nil {
			return nil
		}
		if errors.Is(err, frame.ErrSwapchainOutOfDate) {
			return c.presenter.Resize(w.canvasID)
		}
		return err
	})
	if result == nil {
		return nil
	}
	return result.(error)
}

// DestroyWindow tears a window down in the reverse-callback order
// spec.md §4.13 requires: input teardown (ClearCallbacks) runs before
// the backend destroy path, and the canvas is deleted before the
// backend window itself so no in-flight present targets a freed surface
// prematurely.
func (c *Client) DestroyWindow(w *Window) error {
	w.win.ClearCallbacks()

	var deleteErr error
	c.renderLoop.RunOnRenderThreadVoid(func() {
		deleteErr = c.presenter.DeleteCanvas(w.canvasID)
	})
	if deleteErr != nil {
		return deleteErr
	}
	c.adapter.DestroyWindow(w.win)

	c.mu.Lock()
	for i, ww := range c.windows {
		if ww == w {
			c.windows = append(c.windows[:i], c.windows[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
	return nil
}

// Windows returns a snapshot of the currently live windows.
func (c *Client) Windows() []*Window {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Window, len(c.windows))
	copy(out, c.windows)
	return out
}

func mapMouseEventType(t input.MouseEventType) event.Type {
	switch t {
	case input.EventMousePress, input.EventMouseRelease:
		return event.TypeMouseButton
	case input.EventMouseMove:
		return event.TypeMouseMove
	case input.EventMouseWheel:
		return event.TypeMouseWheel
	case input.EventMouseDragStart, input.EventMouseDrag, input.EventMouseDragStop:
		return event.TypeMouseDrag
	case input.EventMouseClick:
		return event.TypeMouseClick
	case input.EventMouseDoubleClick:
		return event.TypeMouseDoubleClick
	default:
		return event.TypeNone
	}
}

// mapButton converts a GLFW mouse-button code (GLFW_MOUSE_BUTTON_1..3 are
// Left/Right/Middle) into input.Button.
func mapButton(raw int) input.Button {
	switch raw {
	case 0:
		return input.ButtonLeft
	case 1:
		return input.ButtonRight
	case 2:
		return input.ButtonMiddle
	default:
		return input.ButtonNone
	}
}

// GLFW key codes for the modifier keys (glfw3.h's GLFW_KEY_LEFT_SHIFT..
// GLFW_KEY_RIGHT_SUPER), the only codes mapKey treats specially.
const (
	glfwKeyLeftShift    = 340
	glfwKeyLeftControl  = 341
	glfwKeyLeftAlt      = 342
	glfwKeyLeftSuper    = 343
	glfwKeyRightShift   = 344
	glfwKeyRightControl = 345
	glfwKeyRightAlt     = 346
	glfwKeyRightSuper   = 347
)

// mapKey converts a raw backend key code into an input.Key. Modifier
// codes map onto input's dedicated modifier keys so Keyboard.Press/
// Release can fold them into Mods instead of the key set; every other
// code is offset past KeyFirstNonModifier so it can never collide with
// a modifier, without this package needing to enumerate every key GLFW
// defines.
func mapKey(raw int) input.Key {
	switch raw {
	case glfwKeyLeftShift:
		return input.KeyShiftLeft
	case glfwKeyRightShift:
		return input.KeyShiftRight
	case glfwKeyLeftControl:
		return input.KeyControlLeft
	case glfwKeyRightControl:
		return input.KeyControlRight
	case glfwKeyLeftAlt:
		return input.KeyAltLeft
	case glfwKeyRightAlt:
		return input.KeyAltRight
	case glfwKeyLeftSuper:
		return input.KeySuperLeft
	case glfwKeyRightSuper:
		return input.KeySuperRight
	default:
		return input.Key(raw) + input.KeyFirstNonModifier
	}
}
