// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package client

import (
	"os"
	"testing"

	"github.com/dvzkit/dvz/backend"
	"github.com/dvzkit/dvz/event"
	"github.com/dvzkit/dvz/input"
	"github.com/dvzkit/dvz/internal/vk"
	"github.com/dvzkit/dvz/present"
)

func TestMapButton(t *testing.T) {
	tests := []struct {
		raw  int
		want input.Button
	}{
		{0, input.ButtonLeft},
		{1, input.ButtonRight},
		{2, input.ButtonMiddle},
		{7, input.ButtonNone},
	}
	for _, tt := range tests {
		if got := mapButton(tt.raw); got != tt.want {
			t.Errorf("mapButton(%d) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestMapKeyModifiers(t *testing.T) {
	tests := []struct {
		raw  int
		want input.Key
	}{
		{glfwKeyLeftShift, input.KeyShiftLeft},
		{glfwKeyRightShift, input.KeyShiftRight},
		{glfwKeyLeftControl, input.KeyControlLeft},
		{glfwKeyRightControl, input.KeyControlRight},
		{glfwKeyLeftAlt, input.KeyAltLeft},
		{glfwKeyRightAlt, input.KeyAltRight},
		{glfwKeyLeftSuper, input.KeySuperLeft},
		{glfwKeyRightSuper, input.KeySuperRight},
	}
	for _, tt := range tests {
		if got := mapKey(tt.raw); got != tt.want {
			t.Errorf("mapKey(%d) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestMapKeyNonModifierNeverCollidesWithModifier(t *testing.T) {
	// Keys 0..339 are non-modifier GLFW key codes; none of their mapped
	// input.Key values may land in the modifier sub-range
	// [KeyShiftLeft, KeyFirstNonModifier).
	for raw := 0; raw < glfwKeyLeftShift; raw++ {
		k := mapKey(raw)
		if k >= input.KeyShiftLeft && k < input.KeyFirstNonModifier {
			t.Fatalf("mapKey(%d) = %v, collides with modifier range", raw, k)
		}
	}
}

func TestMapMouseEventType(t *testing.T) {
	tests := []struct {
		in   input.MouseEventType
		want event.Type
	}{
		{input.EventMousePress, event.TypeMouseButton},
		{input.EventMouseRelease, event.TypeMouseButton},
		{input.EventMouseMove, event.TypeMouseMove},
		{input.EventMouseWheel, event.TypeMouseWheel},
		{input.EventMouseDragStart, event.TypeMouseDrag},
		{input.EventMouseDrag, event.TypeMouseDrag},
		{input.EventMouseDragStop, event.TypeMouseDrag},
		{input.EventMouseClick, event.TypeMouseClick},
		{input.EventMouseDoubleClick, event.TypeMouseDoubleClick},
	}
	for _, tt := range tests {
		if got := mapMouseEventType(tt.in); got != tt.want {
			t.Errorf("mapMouseEventType(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDefaultPresentModeHonorsDVZFPS(t *testing.T) {
	orig, had := os.LookupEnv("DVZ_FPS")
	defer func() {
		if had {
			os.Setenv("DVZ_FPS", orig)
		} else {
			os.Unsetenv("DVZ_FPS")
		}
	}()

	os.Unsetenv("DVZ_FPS")
	if mode := DefaultPresentMode(); mode != vk.PresentModeFIFO {
		t.Fatalf("DefaultPresentMode() with no DVZ_FPS = %v, want FIFO", mode)
	}

	os.Setenv("DVZ_FPS", "1")
	if mode := DefaultPresentMode(); mode != vk.PresentModeImmediate {
		t.Fatalf("DefaultPresentMode() with DVZ_FPS set = %v, want IMMEDIATE", mode)
	}
}

func TestWindowAccessors(t *testing.T) {
	wantID := present.CanvasID{Index: 5, Epoch: 1}
	bwin := backend.HeadlessAdapter{}
	hw, err := bwin.CreateWindow(640, 480, "test", 0)
	if err != nil {
		t.Fatalf("CreateWindow: %v", err)
	}

	w := &Window{win: hw, canvasID: wantID}
	if w.CanvasID() != wantID {
		t.Fatalf("CanvasID() = %v, want %v", w.CanvasID(), wantID)
	}
	if w.ShouldClose() {
		t.Fatal("ShouldClose() on a freshly created headless window should not report true")
	}
}
