// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package frame

import "testing"

func TestScreencastCaptureNoopWithoutEventQueue(t *testing.T) {
	c := &Canvas{}
	s := newScreencast(c)

	// With no EventQueue installed, capture must return without touching
	// the (nil) resource context or image list.
	s.capture(0)

	if s.index != 0 {
		t.Fatalf("index = %d, want 0 (capture should have been a no-op)", s.index)
	}
}

func TestReadScreencastDisabled(t *testing.T) {
	c := &Canvas{}
	if _, err := c.ReadScreencast(); err != ErrScreencastDisabled {
		t.Fatalf("ReadScreencast on a non-screencast canvas = %v, want ErrScreencastDisabled", err)
	}
}
