// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import (
	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

// Shared CallInterface templates, one per distinct C argument shape
// (scalar handle vs. pointer matters — two Vulkan functions only share a
// signature here when every argument position agrees on both). Vulkan has
// ~700 functions behind a few dozen such shapes, so each is prepared once
// and reused by every Commands method built on it.
var (
	sig3Ptr          types.CallInterface // VkResult(ptr,ptr,ptr): vkCreateInstance
	sigH1Ptr2        types.CallInterface // VkResult(handle,ptr,ptr): count-then-fill with one handle
	sigH1Ptr3        types.CallInterface // VkResult(handle,ptr,ptr,ptr): vkCreateBuffer/Image/Fence/.../Device/Swapchain
	sigH2Ptr2        types.CallInterface // VkResult(handle,handle,ptr,ptr): vkGetSwapchainImagesKHR
	sigH1U32Ptr      types.CallInterface // VkResult(handle,u32,ptr): vkResetFences
	sigH1U32PtrH1    types.CallInterface // VkResult(handle,u32,ptr,handle): vkQueueSubmit(queue,count,pSubmits,fence)
	sigH1Ptr         types.CallInterface // VkResult(handle,ptr): vkQueuePresentKHR, vkBeginCommandBuffer
	sigH1            types.CallInterface // VkResult(handle): vkDeviceWaitIdle, vkQueueWaitIdle, vkEndCommandBuffer
	sigH1U32         types.CallInterface // VkResult(handle,u32): vkResetCommandBuffer
	sigWaitForFences types.CallInterface // VkResult(handle,u32,ptr,u32,u64): vkWaitForFences
	sigMapMemory     types.CallInterface // VkResult(handle,handle,u64,u64,u32,ptr): vkMapMemory
	sigBindMemory    types.CallInterface // VkResult(handle,handle,handle,u64): vkBindBufferMemory/vkBindImageMemory
	sigAcquireImage  types.CallInterface // VkResult(handle,handle,u64,handle,handle,ptr): vkAcquireNextImageKHR
	sigH2Ptr         types.CallInterface // VkResult(handle,handle,ptr): vkGetPhysicalDeviceSurfaceCapabilitiesKHR
	sigSurfaceSupport types.CallInterface // VkResult(handle,u32,handle,ptr): vkGetPhysicalDeviceSurfaceSupportKHR

	sigVoidH1Ptr    types.CallInterface // void(handle,ptr): vkDestroyInstance/Device, vkGetPhysicalDeviceMemoryProperties
	sigVoidH2Ptr    types.CallInterface // void(handle,handle,ptr): vkDestroyBuffer/Image/Fence/Semaphore/Pool/..., vkGetBufferMemoryRequirements
	sigVoidH1Ptr2   types.CallInterface // void(handle,ptr,ptr): vkGetPhysicalDeviceQueueFamilyProperties
	sigVoidH2       types.CallInterface // void(handle,handle): vkUnmapMemory
	sigVoidH1U32x2Ptr types.CallInterface // void(handle,u32,u32,ptr): vkGetDeviceQueue
	sigVoidH2U64U32 types.CallInterface // void(handle,handle,u64,u32): vkCmdBindIndexBuffer
	sigVoidH1U32x2PtrPtr types.CallInterface // void(handle,u32,u32,ptr,ptr): vkCmdBindVertexBuffers
	sigVoidH1U32U32Ptr types.CallInterface // void(handle,u32,u32,ptr): vkCmdSetViewport/Scissor
	sigVoidH3U32Ptr types.CallInterface // void(handle,handle,handle,u32,ptr): vkCmdCopyBuffer
	sigVoidH3U32x2Ptr types.CallInterface // void(handle,handle,handle,u32,u32,ptr): vkCmdCopyBufferToImage
	sigVoidH1U32x4  types.CallInterface // void(handle,u32,u32,u32,u32): vkCmdDraw
	sigVoidH3       types.CallInterface // void(handle,handle,handle): vkCmdBindPipeline
	sigVoidH1PtrU32 types.CallInterface // void(handle,ptr,u32): vkCmdBeginRenderPass
	sigVoidH1       types.CallInterface // void(handle): vkCmdEndRenderPass

	sigVoidCopyImageToBuffer types.CallInterface // void(handle,handle,u32,handle,u32,ptr): vkCmdCopyImageToBuffer
	sigVoidPipelineBarrier   types.CallInterface // void(handle,u32,u32,u32,u32,ptr,u32,ptr,u32,ptr): vkCmdPipelineBarrier
)

func initSignatures() error {
	ptr := types.PointerTypeDescriptor
	u32 := types.UInt32TypeDescriptor
	u64 := types.UInt64TypeDescriptor
	resultRet := types.SInt32TypeDescriptor
	voidRet := types.VoidTypeDescriptor

	type prep struct {
		cif  *types.CallInterface
		ret  *types.TypeDescriptor
		args []*types.TypeDescriptor
	}

	specs := []prep{
		{&sig3Ptr, resultRet, []*types.TypeDescriptor{ptr, ptr, ptr}},
		{&sigH1Ptr2, resultRet, []*types.TypeDescriptor{u64, ptr, ptr}},
		{&sigH1Ptr3, resultRet, []*types.TypeDescriptor{u64, ptr, ptr, ptr}},
		{&sigH2Ptr2, resultRet, []*types.TypeDescriptor{u64, u64, ptr, ptr}},
		{&sigH1U32Ptr, resultRet, []*types.TypeDescriptor{u64, u32, ptr}},
		{&sigH1U32PtrH1, resultRet, []*types.TypeDescriptor{u64, u32, ptr, u64}},
		{&sigH1Ptr, resultRet, []*types.TypeDescriptor{u64, ptr}},
		{&sigH1, resultRet, []*types.TypeDescriptor{u64}},
		{&sigH1U32, resultRet, []*types.TypeDescriptor{u64, u32}},
		{&sigWaitForFences, resultRet, []*types.TypeDescriptor{u64, u32, ptr, u32, u64}},
		{&sigMapMemory, resultRet, []*types.TypeDescriptor{u64, u64, u64, u64, u32, ptr}},
		{&sigBindMemory, resultRet, []*types.TypeDescriptor{u64, u64, u64, u64}},
		{&sigAcquireImage, resultRet, []*types.TypeDescriptor{u64, u64, u64, u64, u64, ptr}},
		{&sigH2Ptr, resultRet, []*types.TypeDescriptor{u64, u64, ptr}},
		{&sigSurfaceSupport, resultRet, []*types.TypeDescriptor{u64, u32, u64, ptr}},

		{&sigVoidH1Ptr, voidRet, []*types.TypeDescriptor{u64, ptr}},
		{&sigVoidH2Ptr, voidRet, []*types.TypeDescriptor{u64, u64, ptr}},
		{&sigVoidH1Ptr2, voidRet, []*types.TypeDescriptor{u64, ptr, ptr}},
		{&sigVoidH2, voidRet, []*types.TypeDescriptor{u64, u64}},
		{&sigVoidH1U32x2Ptr, voidRet, []*types.TypeDescriptor{u64, u32, u32, ptr}},
		{&sigVoidH2U64U32, voidRet, []*types.TypeDescriptor{u64, u64, u64, u32}},
		{&sigVoidH1U32x2PtrPtr, voidRet, []*types.TypeDescriptor{u64, u32, u32, ptr, ptr}},
		{&sigVoidH1U32U32Ptr, voidRet, []*types.TypeDescriptor{u64, u32, u32, ptr}},
		{&sigVoidH3U32Ptr, voidRet, []*types.TypeDescriptor{u64, u64, u64, u32, ptr}},
		{&sigVoidH3U32x2Ptr, voidRet, []*types.TypeDescriptor{u64, u64, u64, u32, u32, ptr}},
		{&sigVoidH1U32x4, voidRet, []*types.TypeDescriptor{u64, u32, u32, u32, u32}},
		{&sigVoidH3, voidRet, []*types.TypeDescriptor{u64, u64, u64}},
		{&sigVoidH1PtrU32, voidRet, []*types.TypeDescriptor{u64, ptr, u32}},
		{&sigVoidH1, voidRet, []*types.TypeDescriptor{u64}},

		{&sigVoidCopyImageToBuffer, voidRet, []*types.TypeDescriptor{u64, u64, u32, u64, u32, ptr}},
		{&sigVoidPipelineBarrier, voidRet, []*types.TypeDescriptor{u64, u32, u32, u32, u32, ptr, u32, ptr, u32, ptr}},
	}

	for _, s := range specs {
		if err := ffi.PrepareCallInterface(s.cif, types.DefaultCall, s.ret, s.args); err != nil {
			return err
		}
	}
	return nil
}
