// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package frame implements the per-canvas frame loop of spec.md §4.5: a
// swapchain, a depth image, a render pass, per-image framebuffers, and a
// fixed two-slot (MAX_IN_FLIGHT) set of fences and semaphores driving the
// nine-step acquire/record/submit/present sequence. It is grounded on
// hal/vulkan/swapchain.go's acquire/recreate/present flow, hal/vulkan/
// fence.go + fence_pool.go's fence-recycling discipline (adapted here from
// an arbitrary-submission-value pool down to the spec's fixed two-slot
// array), and internal/thread.RenderLoop's dedicated render-thread pump.
package frame

import (
	"github.com/dvzkit/dvz/internal/vk"
	"github.com/dvzkit/dvz/resources"
)

// Device is the subset of gpu.GPU a Canvas needs: everything
// resources.Context already requires, plus the present queue, the render
// queue's family index (command pool allocation), and the instance handle
// (surface teardown). Canvas depends on this local interface rather than
// importing gpu directly, the same dependency-inversion resources.Context
// uses.
type Device interface {
	resources.Device

	InstanceHandle() vk.Instance
	PresentQueueHandle() vk.Queue
	RenderFamilyIndex() uint32
}
