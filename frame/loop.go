// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"fmt"
	"unsafe"

	"github.com/dvzkit/dvz/internal/vk"
)

// RunFrame executes one iteration of the nine-step canvas frame loop.
// Steps 1 (poll events) and 2 (close check) are the caller's
// responsibility — typically the client package's window pump — since
// they belong to the windowing backend, not to a single canvas. RunFrame
// begins at step 3.
//
// On a recreated swapchain (steps 4/7 reporting out-of-date or
// suboptimal), RunFrame recreates it and returns ErrSwapchainOutOfDate;
// the caller should simply invoke RunFrame again for the next frame.
func (c *Canvas) RunFrame() error {
	c.clk.Tick()

	cmds := c.dev.CommandsHandle()
	device := c.dev.DeviceHandle()
	cur := c.cur

	// Step 3: wait for this frame slot's previous submission to finish.
	if r := cmds.WaitForFences(device, []vk.Fence{c.sync.renderFinishedFence[cur]}, true, ^uint64(0)); r.IsError() {
		return fmt.Errorf("frame: vkWaitForFences: %d", r)
	}

	// Step 4: acquire the next swapchain image.
	imgIdx, result := cmds.AcquireNextImageKHR(device, c.swapchain, ^uint64(0), c.sync.imgAvailable[cur], 0)
	if result == vk.ErrorOutOfDate || result == vk.Suboptimal {
		if err := c.recreate(); err != nil {
			return err
		}
		return ErrSwapchainOutOfDate
	}
	if result.IsError() {
		cmds.DeviceWaitIdle(device)
		return fmt.Errorf("%w: vkAcquireNextImageKHR returned %d", ErrSwapchainInvalid, result)
	}

	// Step 5: record which frame slot's fence now owns this image index,
	// so a future acquire of the same index knows what it would be
	// waiting on. The fixed two-slot model makes this bookkeeping only —
	// step 3 already waited on the fence that matters for this slot.
	if int(imgIdx) < len(c.imagesInFlight) {
		c.imagesInFlight[imgIdx] = c.sync.renderFinishedFence[cur]
	}

	if err := c.refillIfDue(int(imgIdx)); err != nil {
		return err
	}

	// Step 6: reset, then submit.
	if r := cmds.ResetFences(device, []vk.Fence{c.sync.renderFinishedFence[cur]}); r.IsError() {
		return fmt.Errorf("frame: vkResetFences: %d", r)
	}

	waitStage := vk.PipelineStageColorAttachmentOutputBit
	waitSem := c.sync.imgAvailable[cur]
	signalSem := c.sync.renderFinishedSem[cur]
	cb := c.cmdBuffers[imgIdx]

	submitInfo := vk.SubmitInfo{
		SType:                vk.StructureTypeSubmitInfo,
		WaitSemaphoreCount:   1,
		PWaitSemaphores:      unsafe.Pointer(&waitSem),
		PWaitDstStageMask:    unsafe.Pointer(&waitStage),
		CommandBufferCount:   1,
		PCommandBuffers:      unsafe.Pointer(&cb),
		SignalSemaphoreCount: 1,
		PSignalSemaphores:    unsafe.Pointer(&signalSem),
	}
	if r := cmds.QueueSubmit(c.dev.RenderQueueHandle(), 1, unsafe.Pointer(&submitInfo), c.sync.renderFinishedFence[cur]); r.IsError() {
		return fmt.Errorf("frame: vkQueueSubmit: %d", r)
	}

	// Step 7: present.
	presentInfo := vk.PresentInfoKHR{
		SType:              vk.StructureTypePresentInfoKHR,
		WaitSemaphoreCount: 1,
		PWaitSemaphores:    unsafe.Pointer(&signalSem),
		SwapchainCount:     1,
		PSwapchains:        unsafe.Pointer(&c.swapchain),
		PImageIndices:      unsafe.Pointer(&imgIdx),
	}
	presentResult := cmds.QueuePresentKHR(c.dev.PresentQueueHandle(), unsafe.Pointer(&presentInfo))

	// Step 8: advance to the next frame slot.
	c.cur = (c.cur + 1) % MaxInFlight

	// Step 9: wait for the present queue to drain before returning, so the
	// caller never races ahead of the display engine by more than one
	// frame.
	cmds.QueueWaitIdle(c.dev.PresentQueueHandle())

	if presentResult == vk.ErrorOutOfDate || presentResult == vk.Suboptimal {
		if err := c.recreate(); err != nil {
			return err
		}
		return ErrSwapchainOutOfDate
	}
	if presentResult.IsError() {
		return fmt.Errorf("%w: vkQueuePresentKHR returned %d", ErrSwapchainInvalid, presentResult)
	}

	if c.screencast != nil {
		c.screencast.capture(int(imgIdx))
	}

	return nil
}

func (c *Canvas) refillIfDue(imgIdx int) error {
	if !c.refillPending.Load() || c.refilled[imgIdx] {
		return nil
	}
	if c.RecordFunc == nil {
		return ErrNoRecordCallback
	}
	if err := c.recordImage(imgIdx); err != nil {
		return err
	}
	c.refilled[imgIdx] = true
	for _, done := range c.refilled {
		if !done {
			return nil
		}
	}
	c.refillPending.Store(false)
	return nil
}

func (c *Canvas) recordImage(imgIdx int) error {
	cmds := c.dev.CommandsHandle()
	cb := c.cmdBuffers[imgIdx]

	if r := cmds.ResetCommandBuffer(cb, 0); r.IsError() {
		return fmt.Errorf("frame: vkResetCommandBuffer: %d", r)
	}
	beginInfo := vk.CommandBufferBeginInfo{SType: vk.StructureTypeCommandBufferBeginInfo}
	if r := cmds.BeginCommandBuffer(cb, unsafe.Pointer(&beginInfo)); r.IsError() {
		return fmt.Errorf("frame: vkBeginCommandBuffer: %d", r)
	}

	clearValues := []vk.ClearValue{
		{Color: vk.ClearColorValue{Float32: [4]float32{0, 0, 0, 1}}},
		{DepthStencil: vk.ClearDepthStencilValue{Depth: 1}},
	}
	rpBegin := vk.RenderPassBeginInfo{
		SType:           vk.StructureTypeRenderPassBeginInfo,
		RenderPass:      c.renderPass,
		Framebuffer:     c.framebuffers[imgIdx],
		RenderArea:      vk.Rect2D{Extent: c.extent},
		ClearValueCount: uint32(len(clearValues)),
		PClearValues:    unsafe.Pointer(&clearValues[0]),
	}
	cmds.CmdBeginRenderPass(cb, unsafe.Pointer(&rpBegin), vk.SubpassContentsInline)

	if c.RecordFunc != nil {
		if err := c.RecordFunc(cb, imgIdx); err != nil {
			cmds.CmdEndRenderPass(cb)
			cmds.EndCommandBuffer(cb)
			return fmt.Errorf("frame: record callback: %w", err)
		}
	}

	cmds.CmdEndRenderPass(cb)
	if r := cmds.EndCommandBuffer(cb); r.IsError() {
		return fmt.Errorf("frame: vkEndCommandBuffer: %d", r)
	}
	return nil
}

// recreate rebuilds the swapchain and everything derived from it at the
// surface's current extent, then marks every image as needing
// re-recording. The device must be idle before a swapchain can be
// replaced.
func (c *Canvas) recreate() error {
	cmds := c.dev.CommandsHandle()
	cmds.DeviceWaitIdle(c.dev.DeviceHandle())

	if err := c.createSwapchainSet(c.cfg.Width, c.cfg.Height); err != nil {
		return fmt.Errorf("frame: swapchain recreation: %w", err)
	}
	return nil
}
