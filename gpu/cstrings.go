// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gpu

import "unsafe"

// cString returns a pointer to a NUL-terminated copy of s.
func cString(s string) unsafe.Pointer {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return unsafe.Pointer(&b[0])
}

// cStringArray builds a contiguous array of NUL-terminated C strings and
// returns a pointer to the first element, suitable for
// ppEnabledExtensionNames/ppEnabledLayerNames. The returned slice keeps
// the individual string pointers alive for the caller's stack frame.
func cStringArray(strs []string) (unsafe.Pointer, []unsafe.Pointer) {
	if len(strs) == 0 {
		return nil, nil
	}
	ptrs := make([]unsafe.Pointer, len(strs))
	for i, s := range strs {
		ptrs[i] = cString(s)
	}
	return unsafe.Pointer(&ptrs[0]), ptrs
}
