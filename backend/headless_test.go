// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package backend

import "testing"

func TestHeadlessAdapterCreateWindow(t *testing.T) {
	a := NewHeadlessAdapter()
	if err := a.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer a.Terminate()

	if exts := a.RequiredExtensions(); len(exts) != 0 {
		t.Fatalf("RequiredExtensions() = %v, want empty", exts)
	}

	w, err := a.CreateWindow(320, 240, "test", FlagHeadless)
	if err != nil {
		t.Fatalf("CreateWindow: %v", err)
	}

	width, height := w.Size()
	if width != 320 || height != 240 {
		t.Fatalf("Size() = (%d, %d), want (320, 240)", width, height)
	}
	fw, fh := w.FramebufferSize()
	if fw != 320 || fh != 240 {
		t.Fatalf("FramebufferSize() = (%d, %d), want (320, 240)", fw, fh)
	}
	if w.ShouldClose() {
		t.Fatal("ShouldClose() = true before any close request")
	}
}

func TestHeadlessWindowCreateSurfaceFails(t *testing.T) {
	w := newHeadlessWindow(100, 100)
	if _, err := w.CreateSurface(0); err != ErrHeadlessSurface {
		t.Fatalf("CreateSurface() error = %v, want ErrHeadlessSurface", err)
	}
}

func TestHeadlessWindowResizeFiresCallback(t *testing.T) {
	w := newHeadlessWindow(100, 100)

	var gotW, gotH int
	w.OnResize(func(width, height int) { gotW, gotH = width, height })

	w.SetSize(640, 480)

	if gotW != 640 || gotH != 480 {
		t.Fatalf("resize callback got (%d, %d), want (640, 480)", gotW, gotH)
	}
	width, height := w.Size()
	if width != 640 || height != 480 {
		t.Fatalf("Size() after SetSize = (%d, %d), want (640, 480)", width, height)
	}
}

func TestHeadlessWindowRequestCloseFiresCallback(t *testing.T) {
	w := newHeadlessWindow(100, 100)

	closed := false
	w.OnClose(func() { closed = true })

	w.RequestClose()

	if !closed {
		t.Fatal("OnClose callback did not fire")
	}
	if !w.ShouldClose() {
		t.Fatal("ShouldClose() = false after RequestClose")
	}
}

func TestHeadlessWindowSimulateInput(t *testing.T) {
	w := newHeadlessWindow(100, 100)

	var gotButton int
	var gotPressed bool
	var gotX, gotY float64
	w.OnMouseButton(func(button int, pressed bool, mods uint8, x, y float64) {
		gotButton, gotPressed, gotX, gotY = button, pressed, x, y
	})
	w.SimulateMouseButton(1, true, 0, 12, 34)
	if gotButton != 1 || !gotPressed || gotX != 12 || gotY != 34 {
		t.Fatalf("mouse callback got (%d, %v, %v, %v), want (1, true, 12, 34)", gotButton, gotPressed, gotX, gotY)
	}

	var gotKey int
	var gotKeyPressed, gotRepeat bool
	w.OnKey(func(key int, pressed, repeat bool, mods uint8) {
		gotKey, gotKeyPressed, gotRepeat = key, pressed, repeat
	})
	w.SimulateKey(65, true, false, 0)
	if gotKey != 65 || !gotKeyPressed || gotRepeat {
		t.Fatalf("key callback got (%d, %v, %v), want (65, true, false)", gotKey, gotKeyPressed, gotRepeat)
	}

	w.ClearCallbacks()
	gotButton = -1
	w.SimulateMouseButton(2, true, 0, 0, 0)
	if gotButton != -1 {
		t.Fatal("mouse callback fired after ClearCallbacks")
	}
}
