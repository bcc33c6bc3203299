// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package resources

import (
	"fmt"
	"unsafe"

	"github.com/dvzkit/dvz/internal/vk"
)

// ensurePool lazily creates the transfer-family command pool every
// one-shot transfer command buffer is allocated from.
func (c *Context) ensurePool() error {
	if c.cmdPool != 0 {
		return nil
	}
	createInfo := vk.CommandPoolCreateInfo{
		SType:            vk.StructureTypeCommandPoolCreateInfo,
		Flags:            vk.CommandPoolCreateResetCommandBufferBit,
		QueueFamilyIndex: c.dev.TransferFamilyIndex(),
	}
	pool, result := c.dev.CommandsHandle().CreateCommandPool(c.dev.DeviceHandle(), unsafe.Pointer(&createInfo))
	if result.IsError() {
		return fmt.Errorf("%w: vkCreateCommandPool returned %d", ErrAllocationFailed, result)
	}
	c.cmdPool = pool
	return nil
}

// oneShot allocates a single primary command buffer, records record into
// it, submits it to the transfer queue, and waits the transfer queue
// idle before returning — the hard-synchronization transfer policy of
// spec.md §4.4. Before submitting, it waits the render queue idle so a
// transfer never races an in-flight frame's use of a shared arena.
func (c *Context) oneShot(record func(cb vk.CommandBuffer)) error {
	if err := c.ensurePool(); err != nil {
		return err
	}
	cmds := c.dev.CommandsHandle()
	device := c.dev.DeviceHandle()

	allocInfo := vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        c.cmdPool,
		Level:              vk.CommandBufferLevelPrimary,
		CommandBufferCount: 1,
	}
	cbs, result := cmds.AllocateCommandBuffers(device, unsafe.Pointer(&allocInfo), 1)
	if result.IsError() || len(cbs) == 0 {
		return fmt.Errorf("%w: vkAllocateCommandBuffers returned %d", ErrAllocationFailed, result)
	}
	cb := cbs[0]

	beginInfo := vk.CommandBufferBeginInfo{
		SType: vk.StructureTypeCommandBufferBeginInfo,
		Flags: vk.CommandBufferUsageOneTimeSubmitBit,
	}
	if result := cmds.BeginCommandBuffer(cb, unsafe.Pointer(&beginInfo)); result.IsError() {
		return fmt.Errorf("%w: vkBeginCommandBuffer returned %d", ErrAllocationFailed, result)
	}

	record(cb)

	if result := cmds.EndCommandBuffer(cb); result.IsError() {
		return fmt.Errorf("%w: vkEndCommandBuffer returned %d", ErrAllocationFailed, result)
	}

	// Render queue quiesced first: transfers are rare relative to frames,
	// so hard-synchronizing here is cheap and avoids any overlap between
	// a transfer writing an arena and a frame reading it, per spec.md §4.4.
	cmds.QueueWaitIdle(c.dev.RenderQueueHandle())

	cbHandle := uint64(cb)
	submitInfo := vk.SubmitInfo{
		SType:              vk.StructureTypeSubmitInfo,
		CommandBufferCount: 1,
		PCommandBuffers:    unsafe.Pointer(&cbHandle),
	}
	if result := cmds.QueueSubmit(c.dev.TransferQueueHandle(), 1, unsafe.Pointer(&submitInfo), 0); result.IsError() {
		return fmt.Errorf("%w: vkQueueSubmit returned %d", ErrAllocationFailed, result)
	}
	return resultErr(cmds.QueueWaitIdle(c.dev.TransferQueueHandle()))
}

// resultErr converts a vk.Result into an error, nil on success.
func resultErr(r vk.Result) error {
	if r.IsError() {
		return fmt.Errorf("%w: vulkan result %d", ErrAllocationFailed, r)
	}
	return nil
}
