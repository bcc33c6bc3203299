// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import (
	"fmt"
	"unsafe"
)

// Commands holds the loaded function pointers this runtime calls, in the
// three-stage hierarchy of the original bindings: global (pre-instance),
// instance-level, and device-level.
type Commands struct {
	createInstance unsafe.Pointer

	destroyInstance                    unsafe.Pointer
	enumeratePhysicalDevices            unsafe.Pointer
	getPhysicalDeviceQueueFamilyProps   unsafe.Pointer
	getPhysicalDeviceMemoryProperties   unsafe.Pointer
	createDevice                        unsafe.Pointer
	createSwapchainKHR                  unsafe.Pointer
	createDebugUtilsMessengerEXT        unsafe.Pointer
	destroyDebugUtilsMessengerEXT       unsafe.Pointer
	destroySurfaceKHR                         unsafe.Pointer
	getPhysicalDeviceSurfaceCapabilitiesKHR   unsafe.Pointer
	getPhysicalDeviceSurfaceSupportKHR        unsafe.Pointer
	getPhysicalDeviceSurfacePresentModesKHR   unsafe.Pointer
	createXlibSurfaceKHR                      unsafe.Pointer
	createWaylandSurfaceKHR                   unsafe.Pointer
	createWin32SurfaceKHR                     unsafe.Pointer
	createMetalSurfaceEXT                     unsafe.Pointer

	destroyDevice               unsafe.Pointer
	getDeviceQueue               unsafe.Pointer
	deviceWaitIdle               unsafe.Pointer
	queueWaitIdle                unsafe.Pointer
	queueSubmit                  unsafe.Pointer
	queuePresentKHR              unsafe.Pointer
	destroySwapchainKHR          unsafe.Pointer
	getSwapchainImagesKHR        unsafe.Pointer
	acquireNextImageKHR          unsafe.Pointer
	createFence                  unsafe.Pointer
	destroyFence                 unsafe.Pointer
	waitForFences                unsafe.Pointer
	resetFences                  unsafe.Pointer
	createSemaphore              unsafe.Pointer
	destroySemaphore             unsafe.Pointer
	createCommandPool            unsafe.Pointer
	destroyCommandPool           unsafe.Pointer
	allocateCommandBuffers       unsafe.Pointer
	beginCommandBuffer           unsafe.Pointer
	endCommandBuffer             unsafe.Pointer
	resetCommandBuffer           unsafe.Pointer
	createBuffer                 unsafe.Pointer
	destroyBuffer                unsafe.Pointer
	getBufferMemoryRequirements  unsafe.Pointer
	getImageMemoryRequirements   unsafe.Pointer
	allocateMemory               unsafe.Pointer
	freeMemory                   unsafe.Pointer
	bindBufferMemory             unsafe.Pointer
	mapMemory                    unsafe.Pointer
	unmapMemory                  unsafe.Pointer
	createImage                  unsafe.Pointer
	destroyImage                 unsafe.Pointer
	bindImageMemory              unsafe.Pointer
	createImageView              unsafe.Pointer
	destroyImageView             unsafe.Pointer
	createRenderPass             unsafe.Pointer
	destroyRenderPass            unsafe.Pointer
	createFramebuffer            unsafe.Pointer
	destroyFramebuffer           unsafe.Pointer
	createDescriptorPool         unsafe.Pointer
	destroyDescriptorPool        unsafe.Pointer

	cmdBeginRenderPass   unsafe.Pointer
	cmdEndRenderPass     unsafe.Pointer
	cmdBindPipeline      unsafe.Pointer
	cmdBindVertexBuffers unsafe.Pointer
	cmdBindIndexBuffer   unsafe.Pointer
	cmdSetViewport       unsafe.Pointer
	cmdSetScissor        unsafe.Pointer
	cmdDraw              unsafe.Pointer
	cmdCopyBuffer        unsafe.Pointer
	cmdCopyBufferToImage unsafe.Pointer
	cmdCopyImageToBuffer unsafe.Pointer
	cmdPipelineBarrier   unsafe.Pointer
}

// NewCommands creates an unloaded Commands table; call LoadGlobal,
// LoadInstance, and LoadDevice in order.
func NewCommands() *Commands { return &Commands{} }

// LoadGlobal loads the pre-instance functions.
func (c *Commands) LoadGlobal() error {
	c.createInstance = GetInstanceProcAddr(0, "vkCreateInstance")
	if c.createInstance == nil {
		return fmt.Errorf("vkCreateInstance not found")
	}
	return nil
}

// LoadInstance loads instance-level functions after vkCreateInstance
// succeeds.
func (c *Commands) LoadInstance(instance Instance) error {
	if instance == 0 {
		return fmt.Errorf("invalid instance")
	}
	c.destroyInstance = GetInstanceProcAddr(instance, "vkDestroyInstance")
	c.enumeratePhysicalDevices = GetInstanceProcAddr(instance, "vkEnumeratePhysicalDevices")
	c.getPhysicalDeviceQueueFamilyProps = GetInstanceProcAddr(instance, "vkGetPhysicalDeviceQueueFamilyProperties")
	c.getPhysicalDeviceMemoryProperties = GetInstanceProcAddr(instance, "vkGetPhysicalDeviceMemoryProperties")
	c.createDevice = GetInstanceProcAddr(instance, "vkCreateDevice")
	c.createSwapchainKHR = GetInstanceProcAddr(instance, "vkCreateSwapchainKHR")
	c.createDebugUtilsMessengerEXT = GetInstanceProcAddr(instance, "vkCreateDebugUtilsMessengerEXT")
	c.destroyDebugUtilsMessengerEXT = GetInstanceProcAddr(instance, "vkDestroyDebugUtilsMessengerEXT")
	c.destroySurfaceKHR = GetInstanceProcAddr(instance, "vkDestroySurfaceKHR")
	c.getPhysicalDeviceSurfaceCapabilitiesKHR = GetInstanceProcAddr(instance, "vkGetPhysicalDeviceSurfaceCapabilitiesKHR")
	c.getPhysicalDeviceSurfaceSupportKHR = GetInstanceProcAddr(instance, "vkGetPhysicalDeviceSurfaceSupportKHR")
	c.getPhysicalDeviceSurfacePresentModesKHR = GetInstanceProcAddr(instance, "vkGetPhysicalDeviceSurfacePresentModesKHR")
	// Platform surface entry points: only the one matching the enabled
	// instance extension resolves to a non-nil pointer, which the matching
	// Has* method reports. backend creates surfaces through GLFW and does
	// not call these.
	c.createXlibSurfaceKHR = GetInstanceProcAddr(instance, "vkCreateXlibSurfaceKHR")
	c.createWaylandSurfaceKHR = GetInstanceProcAddr(instance, "vkCreateWaylandSurfaceKHR")
	c.createWin32SurfaceKHR = GetInstanceProcAddr(instance, "vkCreateWin32SurfaceKHR")
	c.createMetalSurfaceEXT = GetInstanceProcAddr(instance, "vkCreateMetalSurfaceEXT")
	SetDeviceProcAddr(instance)
	return nil
}

// LoadDevice loads device-level functions after vkCreateDevice succeeds.
func (c *Commands) LoadDevice(device Device) error {
	if device == 0 {
		return fmt.Errorf("invalid device")
	}
	load := func(name string) unsafe.Pointer { return GetDeviceProcAddr(device, name) }

	c.destroyDevice = load("vkDestroyDevice")
	c.getDeviceQueue = load("vkGetDeviceQueue")
	c.deviceWaitIdle = load("vkDeviceWaitIdle")
	c.queueWaitIdle = load("vkQueueWaitIdle")
	c.queueSubmit = load("vkQueueSubmit")
	c.queuePresentKHR = load("vkQueuePresentKHR")
	c.destroySwapchainKHR = load("vkDestroySwapchainKHR")
	c.getSwapchainImagesKHR = load("vkGetSwapchainImagesKHR")
	c.acquireNextImageKHR = load("vkAcquireNextImageKHR")
	c.createFence = load("vkCreateFence")
	c.destroyFence = load("vkDestroyFence")
	c.waitForFences = load("vkWaitForFences")
	c.resetFences = load("vkResetFences")
	c.createSemaphore = load("vkCreateSemaphore")
	c.destroySemaphore = load("vkDestroySemaphore")
	c.createCommandPool = load("vkCreateCommandPool")
	c.destroyCommandPool = load("vkDestroyCommandPool")
	c.allocateCommandBuffers = load("vkAllocateCommandBuffers")
	c.beginCommandBuffer = load("vkBeginCommandBuffer")
	c.endCommandBuffer = load("vkEndCommandBuffer")
	c.resetCommandBuffer = load("vkResetCommandBuffer")
	c.createBuffer = load("vkCreateBuffer")
	c.destroyBuffer = load("vkDestroyBuffer")
	c.getBufferMemoryRequirements = load("vkGetBufferMemoryRequirements")
	c.getImageMemoryRequirements = load("vkGetImageMemoryRequirements")
	c.allocateMemory = load("vkAllocateMemory")
	c.freeMemory = load("vkFreeMemory")
	c.bindBufferMemory = load("vkBindBufferMemory")
	c.mapMemory = load("vkMapMemory")
	c.unmapMemory = load("vkUnmapMemory")
	c.createImage = load("vkCreateImage")
	c.destroyImage = load("vkDestroyImage")
	c.bindImageMemory = load("vkBindImageMemory")
	c.createImageView = load("vkCreateImageView")
	c.destroyImageView = load("vkDestroyImageView")
	c.createRenderPass = load("vkCreateRenderPass")
	c.destroyRenderPass = load("vkDestroyRenderPass")
	c.createFramebuffer = load("vkCreateFramebuffer")
	c.destroyFramebuffer = load("vkDestroyFramebuffer")
	c.createDescriptorPool = load("vkCreateDescriptorPool")
	c.destroyDescriptorPool = load("vkDestroyDescriptorPool")

	c.cmdBeginRenderPass = load("vkCmdBeginRenderPass")
	c.cmdEndRenderPass = load("vkCmdEndRenderPass")
	c.cmdBindPipeline = load("vkCmdBindPipeline")
	c.cmdBindVertexBuffers = load("vkCmdBindVertexBuffers")
	c.cmdBindIndexBuffer = load("vkCmdBindIndexBuffer")
	c.cmdSetViewport = load("vkCmdSetViewport")
	c.cmdSetScissor = load("vkCmdSetScissor")
	c.cmdDraw = load("vkCmdDraw")
	c.cmdCopyBuffer = load("vkCmdCopyBuffer")
	c.cmdCopyBufferToImage = load("vkCmdCopyBufferToImage")
	c.cmdCopyImageToBuffer = load("vkCmdCopyImageToBuffer")
	c.cmdPipelineBarrier = load("vkCmdPipelineBarrier")
	return nil
}

// CreateInstance wraps vkCreateInstance(pCreateInfo, pAllocator, *pInstance).
func (c *Commands) CreateInstance(createInfo unsafe.Pointer) (Instance, Result) {
	var out Instance
	r := call3Ptr(c.createInstance, createInfo, nil, unsafe.Pointer(&out))
	return out, r
}

// CreateDebugUtilsMessengerEXT wraps
// vkCreateDebugUtilsMessengerEXT(instance, pCreateInfo, pAllocator, *out).
// Absent when the loader/validation layer doesn't export the extension.
func (c *Commands) CreateDebugUtilsMessengerEXT(instance Instance, createInfo unsafe.Pointer) (uint64, Result) {
	if c.createDebugUtilsMessengerEXT == nil {
		return 0, ErrorExtensionNotPresent
	}
	var out uint64
	r := callH1Ptr3(c.createDebugUtilsMessengerEXT, uint64(instance), createInfo, nil, unsafe.Pointer(&out))
	return out, r
}

// DestroyDebugUtilsMessengerEXT wraps
// vkDestroyDebugUtilsMessengerEXT(instance, messenger, pAllocator).
func (c *Commands) DestroyDebugUtilsMessengerEXT(instance Instance, messenger uint64) {
	if c.destroyDebugUtilsMessengerEXT == nil || messenger == 0 {
		return
	}
	callVoidH2Ptr(c.destroyDebugUtilsMessengerEXT, uint64(instance), messenger, nil)
}

// DestroyInstance wraps vkDestroyInstance(instance, pAllocator).
func (c *Commands) DestroyInstance(instance Instance) {
	callVoidH1Ptr(c.destroyInstance, uint64(instance), nil)
}

// EnumeratePhysicalDevices wraps
// vkEnumeratePhysicalDevices(instance, *count, devices) with the
// count-then-fill two-call pattern Vulkan uses for every enumeration.
func (c *Commands) EnumeratePhysicalDevices(instance Instance) ([]PhysicalDevice, Result) {
	var count uint32
	r := callH1Ptr2(c.enumeratePhysicalDevices, uint64(instance), unsafe.Pointer(&count), nil)
	if r.IsError() || count == 0 {
		return nil, r
	}
	devices := make([]PhysicalDevice, count)
	r = callH1Ptr2(c.enumeratePhysicalDevices, uint64(instance), unsafe.Pointer(&count), unsafe.Pointer(&devices[0]))
	return devices, r
}

// GetPhysicalDeviceQueueFamilyProperties wraps the count-then-fill
// vkGetPhysicalDeviceQueueFamilyProperties pattern.
func (c *Commands) GetPhysicalDeviceQueueFamilyProperties(pd PhysicalDevice) []QueueFamilyProperties {
	var count uint32
	callVoidH1Ptr2(c.getPhysicalDeviceQueueFamilyProps, uint64(pd), unsafe.Pointer(&count), nil)
	if count == 0 {
		return nil
	}
	props := make([]QueueFamilyProperties, count)
	callVoidH1Ptr2(c.getPhysicalDeviceQueueFamilyProps, uint64(pd), unsafe.Pointer(&count), unsafe.Pointer(&props[0]))
	return props
}

// GetPhysicalDeviceMemoryProperties wraps
// vkGetPhysicalDeviceMemoryProperties(pd, *out).
func (c *Commands) GetPhysicalDeviceMemoryProperties(pd PhysicalDevice) PhysicalDeviceMemoryProperties {
	var out PhysicalDeviceMemoryProperties
	callVoidH1Ptr(c.getPhysicalDeviceMemoryProperties, uint64(pd), unsafe.Pointer(&out))
	return out
}

// CreateDevice wraps
// vkCreateDevice(pd, pCreateInfo, pAllocator, *pDevice).
func (c *Commands) CreateDevice(pd PhysicalDevice, createInfo unsafe.Pointer) (Device, Result) {
	var out Device
	r := callH1Ptr3(c.createDevice, uint64(pd), createInfo, nil, unsafe.Pointer(&out))
	return out, r
}

// DestroyDevice wraps vkDestroyDevice(device, pAllocator).
func (c *Commands) DestroyDevice(device Device) { callVoidH1Ptr(c.destroyDevice, uint64(device), nil) }

// GetDeviceQueue wraps vkGetDeviceQueue(device, family, index, *queue).
func (c *Commands) GetDeviceQueue(device Device, family, index uint32) Queue {
	var out Queue
	callVoidH1U32x2Ptr(c.getDeviceQueue, uint64(device), family, index, unsafe.Pointer(&out))
	return out
}

// DeviceWaitIdle wraps vkDeviceWaitIdle(device).
func (c *Commands) DeviceWaitIdle(device Device) Result { return callH1(c.deviceWaitIdle, uint64(device)) }

// QueueWaitIdle wraps vkQueueWaitIdle(queue).
func (c *Commands) QueueWaitIdle(queue Queue) Result { return callH1(c.queueWaitIdle, uint64(queue)) }

// CreateFence wraps vkCreateFence(device, pCreateInfo, pAllocator, *out).
func (c *Commands) CreateFence(device Device, createInfo unsafe.Pointer) (Fence, Result) {
	var out Fence
	r := callH1Ptr3(c.createFence, uint64(device), createInfo, nil, unsafe.Pointer(&out))
	return out, r
}

// DestroyFence wraps vkDestroyFence(device, fence, pAllocator).
func (c *Commands) DestroyFence(device Device, fence Fence) {
	callVoidH2Ptr(c.destroyFence, uint64(device), uint64(fence), nil)
}

// WaitForFences wraps
// vkWaitForFences(device, count, pFences, waitAll, timeout).
func (c *Commands) WaitForFences(device Device, fences []Fence, waitAll bool, timeout uint64) Result {
	var waitAllU32 uint32
	if waitAll {
		waitAllU32 = 1
	}
	var fp unsafe.Pointer
	if len(fences) > 0 {
		fp = unsafe.Pointer(&fences[0])
	}
	return callWaitForFences(c.waitForFences, uint64(device), uint32(len(fences)), fp, waitAllU32, timeout)
}

// ResetFences wraps vkResetFences(device, count, pFences).
func (c *Commands) ResetFences(device Device, fences []Fence) Result {
	var fp unsafe.Pointer
	if len(fences) > 0 {
		fp = unsafe.Pointer(&fences[0])
	}
	return callH1U32Ptr(c.resetFences, uint64(device), uint32(len(fences)), fp)
}

// CreateSemaphore wraps
// vkCreateSemaphore(device, pCreateInfo, pAllocator, *out).
func (c *Commands) CreateSemaphore(device Device, createInfo unsafe.Pointer) (Semaphore, Result) {
	var out Semaphore
	r := callH1Ptr3(c.createSemaphore, uint64(device), createInfo, nil, unsafe.Pointer(&out))
	return out, r
}

// DestroySemaphore wraps vkDestroySemaphore(device, sem, pAllocator).
func (c *Commands) DestroySemaphore(device Device, sem Semaphore) {
	callVoidH2Ptr(c.destroySemaphore, uint64(device), uint64(sem), nil)
}

// DestroySurfaceKHR wraps vkDestroySurfaceKHR(instance, surface, pAllocator).
func (c *Commands) DestroySurfaceKHR(instance Instance, surface SurfaceKHR) {
	if c.destroySurfaceKHR == nil || surface == 0 {
		return
	}
	callVoidH2Ptr(c.destroySurfaceKHR, uint64(instance), uint64(surface), nil)
}

// GetPhysicalDeviceSurfaceCapabilitiesKHR wraps
// vkGetPhysicalDeviceSurfaceCapabilitiesKHR(pd, surface, *out).
func (c *Commands) GetPhysicalDeviceSurfaceCapabilitiesKHR(pd PhysicalDevice, surface SurfaceKHR) (SurfaceCapabilitiesKHR, Result) {
	var out SurfaceCapabilitiesKHR
	r := callH2Ptr(c.getPhysicalDeviceSurfaceCapabilitiesKHR, uint64(pd), uint64(surface), unsafe.Pointer(&out))
	return out, r
}

// GetPhysicalDeviceSurfaceSupportKHR wraps
// vkGetPhysicalDeviceSurfaceSupportKHR(pd, family, surface, *pSupported).
func (c *Commands) GetPhysicalDeviceSurfaceSupportKHR(pd PhysicalDevice, family uint32, surface SurfaceKHR) (bool, Result) {
	var supported uint32
	r := callSurfaceSupport(c.getPhysicalDeviceSurfaceSupportKHR, uint64(pd), family, uint64(surface), unsafe.Pointer(&supported))
	return supported != 0, r
}

// GetPhysicalDeviceSurfacePresentModesKHR wraps the count-then-fill
// vkGetPhysicalDeviceSurfacePresentModesKHR pattern.
func (c *Commands) GetPhysicalDeviceSurfacePresentModesKHR(pd PhysicalDevice, surface SurfaceKHR) ([]PresentModeKHR, Result) {
	var count uint32
	r := callH2Ptr2(c.getPhysicalDeviceSurfacePresentModesKHR, uint64(pd), uint64(surface), unsafe.Pointer(&count), nil)
	if r.IsError() || count == 0 {
		return nil, r
	}
	modes := make([]PresentModeKHR, count)
	r = callH2Ptr2(c.getPhysicalDeviceSurfacePresentModesKHR, uint64(pd), uint64(surface), unsafe.Pointer(&count), unsafe.Pointer(&modes[0]))
	return modes, r
}

// HasCreateXlibSurfaceKHR reports whether vkCreateXlibSurfaceKHR resolved
// (the instance enabled VK_KHR_xlib_surface).
func (c *Commands) HasCreateXlibSurfaceKHR() bool { return c.createXlibSurfaceKHR != nil }

// HasCreateWaylandSurfaceKHR reports whether vkCreateWaylandSurfaceKHR
// resolved (the instance enabled VK_KHR_wayland_surface).
func (c *Commands) HasCreateWaylandSurfaceKHR() bool { return c.createWaylandSurfaceKHR != nil }

// HasCreateWin32SurfaceKHR reports whether vkCreateWin32SurfaceKHR
// resolved (the instance enabled VK_KHR_win32_surface).
func (c *Commands) HasCreateWin32SurfaceKHR() bool { return c.createWin32SurfaceKHR != nil }

// HasCreateMetalSurfaceEXT reports whether vkCreateMetalSurfaceEXT
// resolved (the instance enabled VK_EXT_metal_surface).
func (c *Commands) HasCreateMetalSurfaceEXT() bool { return c.createMetalSurfaceEXT != nil }

// CreateXlibSurfaceKHR wraps
// vkCreateXlibSurfaceKHR(instance, pCreateInfo, pAllocator, *out).
func (c *Commands) CreateXlibSurfaceKHR(instance Instance, createInfo unsafe.Pointer) (SurfaceKHR, Result) {
	var out SurfaceKHR
	r := callH1Ptr3(c.createXlibSurfaceKHR, uint64(instance), createInfo, nil, unsafe.Pointer(&out))
	return out, r
}

// CreateWaylandSurfaceKHR wraps
// vkCreateWaylandSurfaceKHR(instance, pCreateInfo, pAllocator, *out).
func (c *Commands) CreateWaylandSurfaceKHR(instance Instance, createInfo unsafe.Pointer) (SurfaceKHR, Result) {
	var out SurfaceKHR
	r := callH1Ptr3(c.createWaylandSurfaceKHR, uint64(instance), createInfo, nil, unsafe.Pointer(&out))
	return out, r
}

// CreateWin32SurfaceKHR wraps
// vkCreateWin32SurfaceKHR(instance, pCreateInfo, pAllocator, *out).
func (c *Commands) CreateWin32SurfaceKHR(instance Instance, createInfo unsafe.Pointer) (SurfaceKHR, Result) {
	var out SurfaceKHR
	r := callH1Ptr3(c.createWin32SurfaceKHR, uint64(instance), createInfo, nil, unsafe.Pointer(&out))
	return out, r
}

// CreateMetalSurfaceEXT wraps
// vkCreateMetalSurfaceEXT(instance, pCreateInfo, pAllocator, *out).
func (c *Commands) CreateMetalSurfaceEXT(instance Instance, createInfo unsafe.Pointer) (SurfaceKHR, Result) {
	var out SurfaceKHR
	r := callH1Ptr3(c.createMetalSurfaceEXT, uint64(instance), createInfo, nil, unsafe.Pointer(&out))
	return out, r
}

// CreateSwapchainKHR wraps
// vkCreateSwapchainKHR(device, pCreateInfo, pAllocator, *out).
func (c *Commands) CreateSwapchainKHR(device Device, createInfo unsafe.Pointer) (SwapchainKHR, Result) {
	var out SwapchainKHR
	r := callH1Ptr3(c.createSwapchainKHR, uint64(device), createInfo, nil, unsafe.Pointer(&out))
	return out, r
}

// DestroySwapchainKHR wraps
// vkDestroySwapchainKHR(device, swapchain, pAllocator).
func (c *Commands) DestroySwapchainKHR(device Device, sc SwapchainKHR) {
	callVoidH2Ptr(c.destroySwapchainKHR, uint64(device), uint64(sc), nil)
}

// GetSwapchainImagesKHR wraps the count-then-fill
// vkGetSwapchainImagesKHR pattern.
func (c *Commands) GetSwapchainImagesKHR(device Device, sc SwapchainKHR) ([]Image, Result) {
	var count uint32
	r := callH2Ptr2(c.getSwapchainImagesKHR, uint64(device), uint64(sc), unsafe.Pointer(&count), nil)
	if r.IsError() || count == 0 {
		return nil, r
	}
	images := make([]Image, count)
	r = callH2Ptr2(c.getSwapchainImagesKHR, uint64(device), uint64(sc), unsafe.Pointer(&count), unsafe.Pointer(&images[0]))
	return images, r
}

// AcquireNextImageKHR wraps
// vkAcquireNextImageKHR(device, swapchain, timeout, semaphore, fence, *index).
func (c *Commands) AcquireNextImageKHR(device Device, sc SwapchainKHR, timeout uint64, sem Semaphore, fence Fence) (uint32, Result) {
	var index uint32
	r := callAcquireImage(c.acquireNextImageKHR, uint64(device), uint64(sc), timeout, uint64(sem), uint64(fence), unsafe.Pointer(&index))
	return index, r
}

// QueueSubmit wraps vkQueueSubmit(queue, count, pSubmits, fence).
func (c *Commands) QueueSubmit(queue Queue, submitCount uint32, submits unsafe.Pointer, fence Fence) Result {
	return callH1U32PtrH1(c.queueSubmit, uint64(queue), submitCount, submits, uint64(fence))
}

// QueuePresentKHR wraps vkQueuePresentKHR(queue, pPresentInfo).
func (c *Commands) QueuePresentKHR(queue Queue, presentInfo unsafe.Pointer) Result {
	return callH1Ptr(c.queuePresentKHR, uint64(queue), presentInfo)
}

// CreateCommandPool wraps
// vkCreateCommandPool(device, pCreateInfo, pAllocator, *out).
func (c *Commands) CreateCommandPool(device Device, createInfo unsafe.Pointer) (CommandPool, Result) {
	var out CommandPool
	r := callH1Ptr3(c.createCommandPool, uint64(device), createInfo, nil, unsafe.Pointer(&out))
	return out, r
}

// DestroyCommandPool wraps
// vkDestroyCommandPool(device, pool, pAllocator).
func (c *Commands) DestroyCommandPool(device Device, pool CommandPool) {
	callVoidH2Ptr(c.destroyCommandPool, uint64(device), uint64(pool), nil)
}

// AllocateCommandBuffers wraps
// vkAllocateCommandBuffers(device, pAllocateInfo, pCommandBuffers).
func (c *Commands) AllocateCommandBuffers(device Device, allocInfo unsafe.Pointer, count uint32) ([]CommandBuffer, Result) {
	buffers := make([]CommandBuffer, count)
	r := callH1Ptr2(c.allocateCommandBuffers, uint64(device), allocInfo, unsafe.Pointer(&buffers[0]))
	return buffers, r
}

// BeginCommandBuffer wraps vkBeginCommandBuffer(cb, pBeginInfo).
func (c *Commands) BeginCommandBuffer(cb CommandBuffer, beginInfo unsafe.Pointer) Result {
	return callH1Ptr(c.beginCommandBuffer, uint64(cb), beginInfo)
}

// EndCommandBuffer wraps vkEndCommandBuffer(cb).
func (c *Commands) EndCommandBuffer(cb CommandBuffer) Result { return callH1(c.endCommandBuffer, uint64(cb)) }

// ResetCommandBuffer wraps vkResetCommandBuffer(cb, flags).
func (c *Commands) ResetCommandBuffer(cb CommandBuffer, flags uint32) Result {
	return callH1U32(c.resetCommandBuffer, uint64(cb), flags)
}

// CreateBuffer wraps vkCreateBuffer(device, pCreateInfo, pAllocator, *out).
func (c *Commands) CreateBuffer(device Device, createInfo unsafe.Pointer) (Buffer, Result) {
	var out Buffer
	r := callH1Ptr3(c.createBuffer, uint64(device), createInfo, nil, unsafe.Pointer(&out))
	return out, r
}

// DestroyBuffer wraps vkDestroyBuffer(device, buffer, pAllocator).
func (c *Commands) DestroyBuffer(device Device, buf Buffer) {
	callVoidH2Ptr(c.destroyBuffer, uint64(device), uint64(buf), nil)
}

// GetBufferMemoryRequirements wraps
// vkGetBufferMemoryRequirements(device, buffer, *out).
func (c *Commands) GetBufferMemoryRequirements(device Device, buf Buffer) MemoryRequirements {
	var out MemoryRequirements
	callVoidH2Ptr(c.getBufferMemoryRequirements, uint64(device), uint64(buf), unsafe.Pointer(&out))
	return out
}

// GetImageMemoryRequirements wraps
// vkGetImageMemoryRequirements(device, image, *out).
func (c *Commands) GetImageMemoryRequirements(device Device, img Image) MemoryRequirements {
	var out MemoryRequirements
	callVoidH2Ptr(c.getImageMemoryRequirements, uint64(device), uint64(img), unsafe.Pointer(&out))
	return out
}

// AllocateMemory wraps
// vkAllocateMemory(device, pAllocateInfo, pAllocator, *out).
func (c *Commands) AllocateMemory(device Device, allocInfo unsafe.Pointer) (DeviceMemory, Result) {
	var out DeviceMemory
	r := callH1Ptr3(c.allocateMemory, uint64(device), allocInfo, nil, unsafe.Pointer(&out))
	return out, r
}

// FreeMemory wraps vkFreeMemory(device, memory, pAllocator).
func (c *Commands) FreeMemory(device Device, mem DeviceMemory) {
	callVoidH2Ptr(c.freeMemory, uint64(device), uint64(mem), nil)
}

// BindBufferMemory wraps
// vkBindBufferMemory(device, buffer, memory, offset).
func (c *Commands) BindBufferMemory(device Device, buf Buffer, mem DeviceMemory, offset uint64) Result {
	return callBindMemory(c.bindBufferMemory, uint64(device), uint64(buf), uint64(mem), offset)
}

// MapMemory wraps vkMapMemory(device, memory, offset, size, flags, *ppData).
func (c *Commands) MapMemory(device Device, mem DeviceMemory, offset, size uint64) (unsafe.Pointer, Result) {
	var data unsafe.Pointer
	r := callMapMemory(c.mapMemory, uint64(device), uint64(mem), offset, size, 0, unsafe.Pointer(&data))
	return data, r
}

// UnmapMemory wraps vkUnmapMemory(device, memory).
func (c *Commands) UnmapMemory(device Device, mem DeviceMemory) {
	callVoidH2(c.unmapMemory, uint64(device), uint64(mem))
}

// CreateImage wraps vkCreateImage(device, pCreateInfo, pAllocator, *out).
func (c *Commands) CreateImage(device Device, createInfo unsafe.Pointer) (Image, Result) {
	var out Image
	r := callH1Ptr3(c.createImage, uint64(device), createInfo, nil, unsafe.Pointer(&out))
	return out, r
}

// DestroyImage wraps vkDestroyImage(device, image, pAllocator).
func (c *Commands) DestroyImage(device Device, img Image) {
	callVoidH2Ptr(c.destroyImage, uint64(device), uint64(img), nil)
}

// BindImageMemory wraps vkBindImageMemory(device, image, memory, offset).
func (c *Commands) BindImageMemory(device Device, img Image, mem DeviceMemory, offset uint64) Result {
	return callBindMemory(c.bindImageMemory, uint64(device), uint64(img), uint64(mem), offset)
}

// CreateImageView wraps
// vkCreateImageView(device, pCreateInfo, pAllocator, *out).
func (c *Commands) CreateImageView(device Device, createInfo unsafe.Pointer) (ImageView, Result) {
	var out ImageView
	r := callH1Ptr3(c.createImageView, uint64(device), createInfo, nil, unsafe.Pointer(&out))
	return out, r
}

// DestroyImageView wraps vkDestroyImageView(device, view, pAllocator).
func (c *Commands) DestroyImageView(device Device, view ImageView) {
	callVoidH2Ptr(c.destroyImageView, uint64(device), uint64(view), nil)
}

// CreateRenderPass wraps
// vkCreateRenderPass(device, pCreateInfo, pAllocator, *out).
func (c *Commands) CreateRenderPass(device Device, createInfo unsafe.Pointer) (RenderPass, Result) {
	var out RenderPass
	r := callH1Ptr3(c.createRenderPass, uint64(device), createInfo, nil, unsafe.Pointer(&out))
	return out, r
}

// DestroyRenderPass wraps vkDestroyRenderPass(device, rp, pAllocator).
func (c *Commands) DestroyRenderPass(device Device, rp RenderPass) {
	callVoidH2Ptr(c.destroyRenderPass, uint64(device), uint64(rp), nil)
}

// CreateFramebuffer wraps
// vkCreateFramebuffer(device, pCreateInfo, pAllocator, *out).
func (c *Commands) CreateFramebuffer(device Device, createInfo unsafe.Pointer) (Framebuffer, Result) {
	var out Framebuffer
	r := callH1Ptr3(c.createFramebuffer, uint64(device), createInfo, nil, unsafe.Pointer(&out))
	return out, r
}

// DestroyFramebuffer wraps vkDestroyFramebuffer(device, fb, pAllocator).
func (c *Commands) DestroyFramebuffer(device Device, fb Framebuffer) {
	callVoidH2Ptr(c.destroyFramebuffer, uint64(device), uint64(fb), nil)
}

// CreateDescriptorPool wraps
// vkCreateDescriptorPool(device, pCreateInfo, pAllocator, *out).
func (c *Commands) CreateDescriptorPool(device Device, createInfo unsafe.Pointer) (DescriptorPool, Result) {
	var out DescriptorPool
	r := callH1Ptr3(c.createDescriptorPool, uint64(device), createInfo, nil, unsafe.Pointer(&out))
	return out, r
}

// DestroyDescriptorPool wraps
// vkDestroyDescriptorPool(device, pool, pAllocator).
func (c *Commands) DestroyDescriptorPool(device Device, pool DescriptorPool) {
	callVoidH2Ptr(c.destroyDescriptorPool, uint64(device), uint64(pool), nil)
}

// CmdBeginRenderPass wraps
// vkCmdBeginRenderPass(cb, pRenderPassBegin, contents).
func (c *Commands) CmdBeginRenderPass(cb CommandBuffer, beginInfo unsafe.Pointer, contents uint32) {
	callVoidH1PtrU32(c.cmdBeginRenderPass, uint64(cb), beginInfo, contents)
}

// CmdEndRenderPass wraps vkCmdEndRenderPass(cb).
func (c *Commands) CmdEndRenderPass(cb CommandBuffer) { callVoidH1(c.cmdEndRenderPass, uint64(cb)) }

// CmdBindPipeline wraps vkCmdBindPipeline(cb, bindPoint, pipeline).
func (c *Commands) CmdBindPipeline(cb CommandBuffer, bindPoint uint32, pipeline Pipeline) {
	callVoidH3(c.cmdBindPipeline, uint64(cb), uint64(bindPoint), uint64(pipeline))
}

// CmdBindVertexBuffers wraps
// vkCmdBindVertexBuffers(cb, firstBinding, count, pBuffers, pOffsets).
func (c *Commands) CmdBindVertexBuffers(cb CommandBuffer, first uint32, buffers []Buffer, offsets []uint64) {
	count := uint32(len(buffers))
	var bp, op unsafe.Pointer
	if count > 0 {
		bp, op = unsafe.Pointer(&buffers[0]), unsafe.Pointer(&offsets[0])
	}
	callVoidH1U32x2PtrPtr(c.cmdBindVertexBuffers, uint64(cb), first, count, bp, op)
}

// CmdBindIndexBuffer wraps
// vkCmdBindIndexBuffer(cb, buffer, offset, indexType).
func (c *Commands) CmdBindIndexBuffer(cb CommandBuffer, buf Buffer, offset uint64, indexType uint32) {
	callVoidH2U64U32(c.cmdBindIndexBuffer, uint64(cb), uint64(buf), offset, indexType)
}

// CmdSetViewport wraps vkCmdSetViewport(cb, first, count, pViewports).
func (c *Commands) CmdSetViewport(cb CommandBuffer, first uint32, viewports []Viewport) {
	count := uint32(len(viewports))
	var vp unsafe.Pointer
	if count > 0 {
		vp = unsafe.Pointer(&viewports[0])
	}
	callVoidH1U32U32Ptr(c.cmdSetViewport, uint64(cb), first, count, vp)
}

// CmdSetScissor wraps vkCmdSetScissor(cb, first, count, pScissors).
func (c *Commands) CmdSetScissor(cb CommandBuffer, first uint32, scissors []Rect2D) {
	count := uint32(len(scissors))
	var sp unsafe.Pointer
	if count > 0 {
		sp = unsafe.Pointer(&scissors[0])
	}
	callVoidH1U32U32Ptr(c.cmdSetScissor, uint64(cb), first, count, sp)
}

// CmdDraw wraps
// vkCmdDraw(cb, vertexCount, instanceCount, firstVertex, firstInstance).
func (c *Commands) CmdDraw(cb CommandBuffer, vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	callVoidH1U32x4(c.cmdDraw, uint64(cb), vertexCount, instanceCount, firstVertex, firstInstance)
}

// CmdCopyBuffer wraps
// vkCmdCopyBuffer(cb, src, dst, regionCount, pRegions).
func (c *Commands) CmdCopyBuffer(cb CommandBuffer, src, dst Buffer, regions unsafe.Pointer, regionCount uint32) {
	callVoidH3U32Ptr(c.cmdCopyBuffer, uint64(cb), uint64(src), uint64(dst), regionCount, regions)
}

// CmdCopyBufferToImage wraps
// vkCmdCopyBufferToImage(cb, buffer, image, layout, regionCount, pRegions).
func (c *Commands) CmdCopyBufferToImage(cb CommandBuffer, buf Buffer, img Image, layout uint32, regions unsafe.Pointer, regionCount uint32) {
	callVoidH3U32x2Ptr(c.cmdCopyBufferToImage, uint64(cb), uint64(buf), uint64(img), layout, regionCount, regions)
}

// CmdCopyImageToBuffer wraps
// vkCmdCopyImageToBuffer(cb, image, layout, buffer, regionCount, pRegions).
func (c *Commands) CmdCopyImageToBuffer(cb CommandBuffer, img Image, layout uint32, buf Buffer, regions unsafe.Pointer, regionCount uint32) {
	callVoidCopyImageToBuffer(c.cmdCopyImageToBuffer, uint64(cb), uint64(img), layout, uint64(buf), regionCount, regions)
}

// CmdPipelineBarrier wraps
// vkCmdPipelineBarrier(cb, srcStage, dstStage, depFlags,
// memCount, pMemBarriers, bufCount, pBufferBarriers, imgCount, pImageBarriers).
func (c *Commands) CmdPipelineBarrier(cb CommandBuffer, srcStage, dstStage, depFlags uint32, imageBarriers unsafe.Pointer, imageBarrierCount uint32) {
	callVoidPipelineBarrier(c.cmdPipelineBarrier, uint64(cb), srcStage, dstStage, depFlags, 0, nil, 0, nil, imageBarrierCount, imageBarriers)
}
