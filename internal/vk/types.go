// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package vk provides pure-Go Vulkan bindings over goffi, trimmed to the
// subset of the API this runtime actually calls: instance/device/queue
// setup, swapchain, fences/semaphores, buffers/images, command buffers,
// render passes/framebuffers, and descriptor pools. It follows the calling
// convention and signature-sharing idiom of hal/vulkan/vk in this module's
// history — Vulkan exposes ~700 functions through a few dozen distinct C
// signatures, so one CallInterface template is prepared per signature and
// reused across every function that shares it.
package vk

// Handles are opaque 64-bit dispatchable/non-dispatchable handles, matched
// 1:1 to the C ABI's pointer-sized VkInstance/VkDevice/... typedefs.
type (
	Instance       uint64
	PhysicalDevice uint64
	Device         uint64
	Queue          uint64
	CommandPool    uint64
	CommandBuffer  uint64
	Semaphore      uint64
	Fence          uint64
	DeviceMemory   uint64
	Buffer         uint64
	Image          uint64
	ImageView      uint64
	ShaderModule   uint64
	RenderPass     uint64
	Pipeline       uint64
	PipelineLayout uint64
	Framebuffer    uint64
	DescriptorPool uint64
	DescriptorSet  uint64
	DescriptorSetLayout uint64
	SurfaceKHR     uint64
	SwapchainKHR   uint64
	DeviceAddress  uint64
)

// Result mirrors VkResult; zero (Success) is the only non-error value most
// callers need to check for.
type Result int32

const (
	Success      Result = 0
	NotReady     Result = 1
	Timeout      Result = 2
	EventSet     Result = 3
	EventReset   Result = 4
	Incomplete   Result = 5
	ErrorOutOfDate           Result = -1000001004
	Suboptimal               Result = 1000001003
	ErrorExtensionNotPresent Result = -7
)

func (r Result) IsError() bool { return r < 0 }

// Extent2D / Extent3D mirror the C structs used throughout swapchain and
// image creation.
type Extent2D struct{ Width, Height uint32 }
type Extent3D struct{ Width, Height, Depth uint32 }

type Offset2D struct{ X, Y int32 }

type Rect2D struct {
	Offset Offset2D
	Extent Extent2D
}

type Viewport struct {
	X, Y, Width, Height, MinDepth, MaxDepth float32
}

// Format mirrors VkFormat; only the subset this runtime creates images and
// swapchains with is named.
type Format uint32

const (
	FormatUndefined        Format = 0
	FormatB8G8R8A8Unorm    Format = 44
	FormatB8G8R8A8Srgb     Format = 50
	FormatR8G8B8A8Unorm    Format = 37
	FormatD32Sfloat        Format = 126
	FormatD32SfloatS8Uint  Format = 130
)

// ColorSpaceKHR mirrors VkColorSpaceKHR.
type ColorSpaceKHR uint32

const ColorSpaceSRGBNonlinear ColorSpaceKHR = 0

// PresentModeKHR mirrors VkPresentModeKHR.
type PresentModeKHR uint32

const (
	PresentModeImmediate   PresentModeKHR = 0
	PresentModeMailbox     PresentModeKHR = 1
	PresentModeFIFO        PresentModeKHR = 2
	PresentModeFIFORelaxed PresentModeKHR = 3
)

// QueueFlags mirrors VkQueueFlagBits.
type QueueFlags uint32

const (
	QueueGraphicsBit      QueueFlags = 1 << 0
	QueueComputeBit       QueueFlags = 1 << 1
	QueueTransferBit      QueueFlags = 1 << 2
	QueueSparseBindingBit QueueFlags = 1 << 3
)

// QueueFamilyProperties mirrors VkQueueFamilyProperties (the subset this
// runtime inspects).
type QueueFamilyProperties struct {
	QueueFlags       QueueFlags
	QueueCount       uint32
	TimestampValidBits uint32
}

// BufferUsageFlags mirrors VkBufferUsageFlagBits (spec §4.6 typed arenas).
type BufferUsageFlags uint32

const (
	BufferUsageTransferSrcBit BufferUsageFlags = 1 << 0
	BufferUsageTransferDstBit BufferUsageFlags = 1 << 1
	BufferUsageUniformBufferBit BufferUsageFlags = 1 << 4
	BufferUsageStorageBufferBit BufferUsageFlags = 1 << 5
	BufferUsageIndexBufferBit   BufferUsageFlags = 1 << 6
	BufferUsageVertexBufferBit  BufferUsageFlags = 1 << 7
)

// MemoryPropertyFlags mirrors VkMemoryPropertyFlagBits.
type MemoryPropertyFlags uint32

const (
	MemoryPropertyDeviceLocalBit  MemoryPropertyFlags = 1 << 0
	MemoryPropertyHostVisibleBit  MemoryPropertyFlags = 1 << 1
	MemoryPropertyHostCoherentBit MemoryPropertyFlags = 1 << 2
)

// ImageUsageFlags mirrors VkImageUsageFlagBits.
type ImageUsageFlags uint32

const (
	ImageUsageTransferSrcBit            ImageUsageFlags = 1 << 0
	ImageUsageTransferDstBit            ImageUsageFlags = 1 << 1
	ImageUsageColorAttachmentBit        ImageUsageFlags = 1 << 4
	ImageUsageDepthStencilAttachmentBit ImageUsageFlags = 1 << 5
)

// CommandBufferLevel mirrors VkCommandBufferLevel.
type CommandBufferLevel uint32

const CommandBufferLevelPrimary CommandBufferLevel = 0

// MemoryRequirements mirrors the VkMemoryRequirements subset this runtime
// actually reads.
type MemoryRequirements struct {
	Size           uint64
	Alignment      uint64
	MemoryTypeBits uint32
}

// PhysicalDeviceMemoryProperties mirrors VkPhysicalDeviceMemoryProperties,
// trimmed to the arrays resources.findMemoryType walks.
type PhysicalDeviceMemoryProperties struct {
	MemoryTypeCount uint32
	MemoryTypes     [32]MemoryType
	MemoryHeapCount uint32
	MemoryHeaps     [16]MemoryHeap
}

type MemoryType struct {
	PropertyFlags MemoryPropertyFlags
	HeapIndex     uint32
}

type MemoryHeap struct {
	Size  uint64
	Flags uint32
}
