// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"fmt"
	"unsafe"

	"github.com/dvzkit/dvz/internal/vk"
)

// MaxInFlight is the fixed number of frames the render thread may have
// outstanding at once. Grounded on hal/vulkan/fence.go's fence pool, but
// adapted down to a fixed two-slot array: the pool's arbitrary monotonic
// submission values exist to let multiple in-flight command buffers share
// a timeline semaphore, which a single-canvas frame loop doesn't need.
const MaxInFlight = 2

// frameSync holds the three per-frame-slot synchronization primitives the
// nine-step frame loop waits on and signals. The per-swapchain-image fence
// bookkeeping lives on Canvas (imagesInFlight), not here.
type frameSync struct {
	imgAvailable        [MaxInFlight]vk.Semaphore
	renderFinishedSem   [MaxInFlight]vk.Semaphore
	renderFinishedFence [MaxInFlight]vk.Fence
}

func (c *Canvas) createSyncObjects() error {
	cmds := c.dev.CommandsHandle()
	device := c.dev.DeviceHandle()

	semInfo := vk.SemaphoreCreateInfo{SType: vk.StructureTypeSemaphoreCreateInfo}
	fenceInfo := vk.FenceCreateInfo{SType: vk.StructureTypeFenceCreateInfo, Flags: vk.FenceCreateSignaledBit}

	for i := 0; i < MaxInFlight; i++ {
		sem, r := cmds.CreateSemaphore(device, unsafe.Pointer(&semInfo))
		if r.IsError() {
			return fmt.Errorf("frame: vkCreateSemaphore (image available): %d", r)
		}
		c.sync.imgAvailable[i] = sem

		sem, r = cmds.CreateSemaphore(device, unsafe.Pointer(&semInfo))
		if r.IsError() {
			return fmt.Errorf("frame: vkCreateSemaphore (render finished): %d", r)
		}
		c.sync.renderFinishedSem[i] = sem

		fence, r := cmds.CreateFence(device, unsafe.Pointer(&fenceInfo))
		if r.IsError() {
			return fmt.Errorf("frame: vkCreateFence: %d", r)
		}
		c.sync.renderFinishedFence[i] = fence
	}
	return nil
}

func (c *Canvas) destroySyncObjects() {
	cmds := c.dev.CommandsHandle()
	device := c.dev.DeviceHandle()
	for i := 0; i < MaxInFlight; i++ {
		cmds.DestroySemaphore(device, c.sync.imgAvailable[i])
		cmds.DestroySemaphore(device, c.sync.renderFinishedSem[i])
		cmds.DestroyFence(device, c.sync.renderFinishedFence[i])
	}
	c.sync = frameSync{}
}
