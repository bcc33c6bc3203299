// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package frame

import "errors"

var (
	// ErrSwapchainOutOfDate is returned from RunFrame when the swapchain
	// needed recreation; the caller should simply run the next frame.
	ErrSwapchainOutOfDate = errors.New("frame: swapchain out of date, recreated")

	// ErrSwapchainInvalid is returned when the acquire/present path reports
	// a condition recreation cannot fix (surface lost, device lost).
	ErrSwapchainInvalid = errors.New("frame: swapchain invalid")

	// ErrNoRecordCallback is returned by RunFrame when a refill is due but
	// no refill callback was registered.
	ErrNoRecordCallback = errors.New("frame: no command-buffer refill callback registered")

	// ErrScreencastDisabled is returned by ReadScreencast when the canvas
	// was not created with screencast support.
	ErrScreencastDisabled = errors.New("frame: screencast not enabled on this canvas")
)
