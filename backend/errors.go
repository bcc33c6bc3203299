// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package backend

import "errors"

var (
	// ErrHeadlessSurface is returned by a headless Window's CreateSurface:
	// spec.md §6 says headless canvases skip surface creation entirely.
	ErrHeadlessSurface = errors.New("backend: headless window has no surface")

	// ErrSurfaceCreation wraps a platform surface-creation call failure.
	ErrSurfaceCreation = errors.New("backend: surface creation failed")

	// ErrToolkitInit is returned when the underlying windowing toolkit
	// fails to initialize.
	ErrToolkitInit = errors.New("backend: toolkit initialization failed")
)
