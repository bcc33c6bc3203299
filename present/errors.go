// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package present

import "errors"

var (
	// ErrInvalidCanvas is returned for a canvas id that does not resolve
	// (never allocated, or already deleted) — a misuse per spec.md §7.
	ErrInvalidCanvas = errors.New("present: invalid canvas id")

	// ErrInvalidGraphics is returned for a graphics id that does not
	// resolve, or that belongs to a different canvas than the request
	// names.
	ErrInvalidGraphics = errors.New("present: invalid graphics id")

	// ErrInvalidDat is returned for a dat id that does not resolve.
	ErrInvalidDat = errors.New("present: invalid dat id")

	// ErrNotRecording is returned by record_viewport/record_draw when no
	// record_begin is open on the canvas.
	ErrNotRecording = errors.New("present: record_viewport/record_draw outside record_begin/record_end")
)
