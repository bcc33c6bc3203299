// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import "unsafe"

// StructureType mirrors VkStructureType, trimmed to the sTypes this
// runtime sets.
type StructureType uint32

const (
	StructureTypeApplicationInfo                StructureType = 0
	StructureTypeInstanceCreateInfo             StructureType = 1
	StructureTypeDeviceQueueCreateInfo          StructureType = 2
	StructureTypeDeviceCreateInfo               StructureType = 3
	StructureTypeSubmitInfo                     StructureType = 4
	StructureTypeMemoryAllocateInfo             StructureType = 5
	StructureTypeFenceCreateInfo                StructureType = 8
	StructureTypeSemaphoreCreateInfo            StructureType = 9
	StructureTypeBufferCreateInfo               StructureType = 12
	StructureTypeImageCreateInfo                StructureType = 14
	StructureTypeImageViewCreateInfo            StructureType = 15
	StructureTypeCommandPoolCreateInfo          StructureType = 39
	StructureTypeCommandBufferAllocateInfo       StructureType = 40
	StructureTypeRenderPassBeginInfo            StructureType = 43
	StructureTypeFramebufferCreateInfo          StructureType = 37
	StructureTypeRenderPassCreateInfo           StructureType = 38
	StructureTypeDescriptorPoolCreateInfo       StructureType = 33
	StructureTypeSwapchainCreateInfoKHR         StructureType = 1000001000
	StructureTypePresentInfoKHR                 StructureType = 1000001001
	StructureTypeDebugUtilsMessengerCreateInfoEXT StructureType = 1000128004
	StructureTypeXlibSurfaceCreateInfoKHR        StructureType = 1000004000
	StructureTypeWaylandSurfaceCreateInfoKHR     StructureType = 1000006000
	StructureTypeWin32SurfaceCreateInfoKHR       StructureType = 1000009000
	StructureTypeMetalSurfaceCreateInfoEXT       StructureType = 1000217000
)

// ApplicationInfo mirrors VkApplicationInfo.
type ApplicationInfo struct {
	SType              StructureType
	PNext              unsafe.Pointer
	PApplicationName   unsafe.Pointer
	ApplicationVersion uint32
	PEngineName        unsafe.Pointer
	EngineVersion      uint32
	APIVersion         uint32
}

// InstanceCreateInfo mirrors VkInstanceCreateInfo.
type InstanceCreateInfo struct {
	SType                   StructureType
	PNext                   unsafe.Pointer
	Flags                   uint32
	PApplicationInfo        *ApplicationInfo
	EnabledLayerCount       uint32
	PpEnabledLayerNames     unsafe.Pointer
	EnabledExtensionCount   uint32
	PpEnabledExtensionNames unsafe.Pointer
}

// DeviceQueueCreateInfo mirrors VkDeviceQueueCreateInfo.
type DeviceQueueCreateInfo struct {
	SType            StructureType
	PNext            unsafe.Pointer
	Flags            uint32
	QueueFamilyIndex uint32
	QueueCount       uint32
	PQueuePriorities *float32
}

// DeviceCreateInfo mirrors VkDeviceCreateInfo.
type DeviceCreateInfo struct {
	SType                   StructureType
	PNext                   unsafe.Pointer
	Flags                   uint32
	QueueCreateInfoCount    uint32
	PQueueCreateInfos       *DeviceQueueCreateInfo
	EnabledLayerCount       uint32
	PpEnabledLayerNames     unsafe.Pointer
	EnabledExtensionCount   uint32
	PpEnabledExtensionNames unsafe.Pointer
	PEnabledFeatures        unsafe.Pointer
}

// BufferCreateInfo mirrors VkBufferCreateInfo.
type BufferCreateInfo struct {
	SType                 StructureType
	PNext                 unsafe.Pointer
	Flags                 uint32
	Size                  uint64
	Usage                 BufferUsageFlags
	SharingMode           uint32
	QueueFamilyIndexCount uint32
	PQueueFamilyIndices   unsafe.Pointer
}

// ImageCreateInfo mirrors VkImageCreateInfo.
type ImageCreateInfo struct {
	SType                 StructureType
	PNext                 unsafe.Pointer
	Flags                 uint32
	ImageType             uint32
	Format                Format
	Extent                Extent3D
	MipLevels             uint32
	ArrayLayers           uint32
	Samples               uint32
	Tiling                uint32
	Usage                 ImageUsageFlags
	SharingMode           uint32
	QueueFamilyIndexCount uint32
	PQueueFamilyIndices   unsafe.Pointer
	InitialLayout         uint32
}

// ComponentMapping mirrors VkComponentMapping.
type ComponentMapping struct{ R, G, B, A uint32 }

// ImageSubresourceRange mirrors VkImageSubresourceRange.
type ImageSubresourceRange struct {
	AspectMask     uint32
	BaseMipLevel   uint32
	LevelCount     uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

// ImageViewCreateInfo mirrors VkImageViewCreateInfo.
type ImageViewCreateInfo struct {
	SType            StructureType
	PNext            unsafe.Pointer
	Flags            uint32
	Image            Image
	ViewType         uint32
	Format           Format
	Components       ComponentMapping
	SubresourceRange ImageSubresourceRange
}

// CommandPoolCreateInfo mirrors VkCommandPoolCreateInfo.
type CommandPoolCreateInfo struct {
	SType            StructureType
	PNext            unsafe.Pointer
	Flags            uint32
	QueueFamilyIndex uint32
}

const CommandPoolCreateResetCommandBufferBit uint32 = 1 << 1

// CommandBufferAllocateInfo mirrors VkCommandBufferAllocateInfo.
type CommandBufferAllocateInfo struct {
	SType              StructureType
	PNext              unsafe.Pointer
	CommandPool        CommandPool
	Level              CommandBufferLevel
	CommandBufferCount uint32
}

// CommandBufferBeginInfo mirrors VkCommandBufferBeginInfo.
type CommandBufferBeginInfo struct {
	SType            StructureType
	PNext            unsafe.Pointer
	Flags            uint32
	PInheritanceInfo unsafe.Pointer
}

const CommandBufferUsageOneTimeSubmitBit uint32 = 1

const StructureTypeCommandBufferBeginInfo StructureType = 42

// FenceCreateInfo mirrors VkFenceCreateInfo.
type FenceCreateInfo struct {
	SType StructureType
	PNext unsafe.Pointer
	Flags uint32
}

const FenceCreateSignaledBit uint32 = 1

// SemaphoreCreateInfo mirrors VkSemaphoreCreateInfo.
type SemaphoreCreateInfo struct {
	SType StructureType
	PNext unsafe.Pointer
	Flags uint32
}

// SubmitInfo mirrors VkSubmitInfo.
type SubmitInfo struct {
	SType                StructureType
	PNext                unsafe.Pointer
	WaitSemaphoreCount   uint32
	PWaitSemaphores      unsafe.Pointer
	PWaitDstStageMask    unsafe.Pointer
	CommandBufferCount   uint32
	PCommandBuffers      unsafe.Pointer
	SignalSemaphoreCount uint32
	PSignalSemaphores    unsafe.Pointer
}

// PresentInfoKHR mirrors VkPresentInfoKHR.
type PresentInfoKHR struct {
	SType              StructureType
	PNext              unsafe.Pointer
	WaitSemaphoreCount uint32
	PWaitSemaphores    unsafe.Pointer
	SwapchainCount     uint32
	PSwapchains        unsafe.Pointer
	PImageIndices      unsafe.Pointer
	PResults           unsafe.Pointer
}

// SwapchainCreateInfoKHR mirrors VkSwapchainCreateInfoKHR.
type SwapchainCreateInfoKHR struct {
	SType                 StructureType
	PNext                 unsafe.Pointer
	Flags                 uint32
	Surface               SurfaceKHR
	MinImageCount         uint32
	ImageFormat           Format
	ImageColorSpace       ColorSpaceKHR
	ImageExtent           Extent2D
	ImageArrayLayers      uint32
	ImageUsage            ImageUsageFlags
	ImageSharingMode      uint32
	QueueFamilyIndexCount uint32
	PQueueFamilyIndices   unsafe.Pointer
	PreTransform          uint32
	CompositeAlpha        uint32
	PresentMode           PresentModeKHR
	Clipped               uint32
	OldSwapchain          SwapchainKHR
}

// MemoryAllocateInfo mirrors VkMemoryAllocateInfo.
type MemoryAllocateInfo struct {
	SType           StructureType
	PNext           unsafe.Pointer
	AllocationSize  uint64
	MemoryTypeIndex uint32
}

// DescriptorPoolSize mirrors VkDescriptorPoolSize.
type DescriptorPoolSize struct {
	Type            uint32
	DescriptorCount uint32
}

// DescriptorPoolCreateInfo mirrors VkDescriptorPoolCreateInfo.
type DescriptorPoolCreateInfo struct {
	SType         StructureType
	PNext         unsafe.Pointer
	Flags         uint32
	MaxSets       uint32
	PoolSizeCount uint32
	PPoolSizes    *DescriptorPoolSize
}

const DescriptorPoolCreateFreeDescriptorSetBit uint32 = 1

// FramebufferCreateInfo mirrors VkFramebufferCreateInfo.
type FramebufferCreateInfo struct {
	SType           StructureType
	PNext           unsafe.Pointer
	Flags           uint32
	RenderPass      RenderPass
	AttachmentCount uint32
	PAttachments    unsafe.Pointer
	Width           uint32
	Height          uint32
	Layers          uint32
}

// AttachmentDescription mirrors VkAttachmentDescription.
type AttachmentDescription struct {
	Flags          uint32
	Format         Format
	Samples        uint32
	LoadOp         uint32
	StoreOp        uint32
	StencilLoadOp  uint32
	StencilStoreOp uint32
	InitialLayout  uint32
	FinalLayout    uint32
}

// AttachmentReference mirrors VkAttachmentReference.
type AttachmentReference struct {
	Attachment uint32
	Layout     uint32
}

// SubpassDescription mirrors VkSubpassDescription.
type SubpassDescription struct {
	Flags                   uint32
	PipelineBindPoint       uint32
	InputAttachmentCount    uint32
	PInputAttachments       unsafe.Pointer
	ColorAttachmentCount    uint32
	PColorAttachments       unsafe.Pointer
	PResolveAttachments     unsafe.Pointer
	PDepthStencilAttachment *AttachmentReference
	PreserveAttachmentCount uint32
	PPreserveAttachments    unsafe.Pointer
}

// SubpassDependency mirrors VkSubpassDependency.
type SubpassDependency struct {
	SrcSubpass      uint32
	DstSubpass      uint32
	SrcStageMask    uint32
	DstStageMask    uint32
	SrcAccessMask   uint32
	DstAccessMask   uint32
	DependencyFlags uint32
}

// RenderPassCreateInfo mirrors VkRenderPassCreateInfo.
type RenderPassCreateInfo struct {
	SType           StructureType
	PNext           unsafe.Pointer
	Flags           uint32
	AttachmentCount uint32
	PAttachments    unsafe.Pointer
	SubpassCount    uint32
	PSubpasses      unsafe.Pointer
	DependencyCount uint32
	PDependencies   unsafe.Pointer
}

// ClearColorValue mirrors VkClearColorValue (float32 variant only).
type ClearColorValue struct{ Float32 [4]float32 }

// ClearDepthStencilValue mirrors VkClearDepthStencilValue.
type ClearDepthStencilValue struct {
	Depth   float32
	Stencil uint32
}

// ClearValue mirrors the VkClearValue union; callers set exactly one of
// Color/DepthStencil and the struct's first 16 bytes alias correctly for
// either interpretation, matching the C union layout.
type ClearValue struct {
	Color        ClearColorValue
	DepthStencil ClearDepthStencilValue
}

// RenderPassBeginInfo mirrors VkRenderPassBeginInfo.
type RenderPassBeginInfo struct {
	SType           StructureType
	PNext           unsafe.Pointer
	RenderPass      RenderPass
	Framebuffer     Framebuffer
	RenderArea      Rect2D
	ClearValueCount uint32
	PClearValues    unsafe.Pointer
}

// DebugUtilsMessengerCreateInfoEXT mirrors
// VkDebugUtilsMessengerCreateInfoEXT, trimmed to the fields Host sets.
type DebugUtilsMessengerCreateInfoEXT struct {
	SType           StructureType
	PNext           unsafe.Pointer
	Flags           uint32
	MessageSeverity uint32
	MessageType     uint32
	PfnUserCallback unsafe.Pointer
	PUserData       unsafe.Pointer
}

// Offset3D mirrors VkOffset3D.
type Offset3D struct{ X, Y, Z int32 }

// BufferCopy mirrors VkBufferCopy, used by resources.Context for
// buffer-to-buffer transfers (buffer copy, upload, download).
type BufferCopy struct {
	SrcOffset uint64
	DstOffset uint64
	Size      uint64
}

// ImageSubresourceLayers mirrors VkImageSubresourceLayers.
type ImageSubresourceLayers struct {
	AspectMask     uint32
	MipLevel       uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

// BufferImageCopy mirrors VkBufferImageCopy, used for texture upload and
// download through the staging arena.
type BufferImageCopy struct {
	BufferOffset      uint64
	BufferRowLength   uint32
	BufferImageHeight uint32
	ImageSubresource  ImageSubresourceLayers
	ImageOffset       Offset3D
	ImageExtent       Extent3D
}

// ImageMemoryBarrier mirrors VkImageMemoryBarrier, used for the layout
// transitions around texture upload/download.
type ImageMemoryBarrier struct {
	SType               StructureType
	PNext               unsafe.Pointer
	SrcAccessMask       uint32
	DstAccessMask       uint32
	OldLayout           uint32
	NewLayout           uint32
	SrcQueueFamilyIndex uint32
	DstQueueFamilyIndex uint32
	Image               Image
	SubresourceRange    ImageSubresourceRange
}

const StructureTypeImageMemoryBarrier StructureType = 45

// Image layouts (VkImageLayout), the subset texture upload/download
// transitions between.
const (
	ImageLayoutUndefined            uint32 = 0
	ImageLayoutTransferDstOptimal   uint32 = 7
	ImageLayoutTransferSrcOptimal   uint32 = 6
	ImageLayoutShaderReadOnlyOptimal uint32 = 5
)

// Pipeline stage flags (VkPipelineStageFlagBits), the subset
// resources.Context's barriers use.
const (
	PipelineStageTopOfPipeBit    uint32 = 1 << 0
	PipelineStageTransferBit     uint32 = 1 << 12
	PipelineStageFragmentShaderBit uint32 = 1 << 7
)

// Access flags (VkAccessFlagBits).
const (
	AccessTransferWriteBit uint32 = 1 << 11
	AccessTransferReadBit  uint32 = 1 << 10
	AccessShaderReadBit    uint32 = 1 << 5

	AccessColorAttachmentWriteBit        uint32 = 1 << 8
	AccessDepthStencilAttachmentWriteBit uint32 = 1 << 10
)

// PipelineStageColorAttachmentOutputBit mirrors
// VK_PIPELINE_STAGE_COLOR_ATTACHMENT_OUTPUT_BIT, the wait stage for the
// swapchain image-available semaphore in frame.Canvas's submit.
const PipelineStageColorAttachmentOutputBit uint32 = 1 << 10

// ImageAspectColorBit mirrors VK_IMAGE_ASPECT_COLOR_BIT.
const ImageAspectColorBit uint32 = 1 << 0

// QueueFamilyIgnored mirrors VK_QUEUE_FAMILY_IGNORED.
const QueueFamilyIgnored uint32 = 0xFFFFFFFF

// SurfaceCapabilitiesKHR mirrors VkSurfaceCapabilitiesKHR, the subset of
// fields frame.Canvas reads when (re)creating a swapchain.
type SurfaceCapabilitiesKHR struct {
	MinImageCount           uint32
	MaxImageCount           uint32
	CurrentExtent           Extent2D
	MinImageExtent          Extent2D
	MaxImageExtent          Extent2D
	MaxImageArrayLayers     uint32
	SupportedTransforms     uint32
	CurrentTransform        uint32
	SupportedCompositeAlpha uint32
	SupportedUsageFlags     uint32
}

// CompositeAlphaOpaqueBit mirrors VK_COMPOSITE_ALPHA_OPAQUE_BIT_KHR.
const CompositeAlphaOpaqueBit uint32 = 1

// Special CurrentExtent sentinel (0xFFFFFFFF on both dimensions) meaning
// the surface size tracks the window and the caller must supply it.
const SurfaceExtentUndefined uint32 = 0xFFFFFFFF

// Render pass / image view enum values frame.Canvas needs to build its
// swapchain image views, depth attachment, and render pass.
const (
	ImageViewType2D           uint32 = 1
	ComponentSwizzleIdentity  uint32 = 0
	SharingModeExclusive      uint32 = 0
	SampleCount1Bit           uint32 = 1
	ImageTilingOptimal        uint32 = 0
	ImageType2D               uint32 = 1

	AttachmentLoadOpLoad  uint32 = 0
	AttachmentLoadOpClear uint32 = 1
	AttachmentLoadOpDontCare uint32 = 2

	AttachmentStoreOpStore    uint32 = 0
	AttachmentStoreOpDontCare uint32 = 1

	PipelineBindPointGraphics uint32 = 0

	ImageLayoutColorAttachmentOptimal       uint32 = 2
	ImageLayoutDepthStencilAttachmentOptimal uint32 = 3
	ImageLayoutPresentSrc                    uint32 = 1000001002

	SubpassContentsInline uint32 = 0

	SubpassExternal uint32 = 0xFFFFFFFF
)

// ImageAspectDepthBit mirrors VK_IMAGE_ASPECT_DEPTH_BIT.
const ImageAspectDepthBit uint32 = 1 << 1

// XlibSurfaceCreateInfoKHR mirrors VkXlibSurfaceCreateInfoKHR. Dpy must be
// written with the raw C Display* value.
type XlibSurfaceCreateInfoKHR struct {
	SType  StructureType
	PNext  unsafe.Pointer
	Flags  uint32
	Dpy    unsafe.Pointer
	Window uint64
}

// WaylandSurfaceCreateInfoKHR mirrors VkWaylandSurfaceCreateInfoKHR.
type WaylandSurfaceCreateInfoKHR struct {
	SType   StructureType
	PNext   unsafe.Pointer
	Flags   uint32
	Display unsafe.Pointer
	Surface unsafe.Pointer
}

// Win32SurfaceCreateInfoKHR mirrors VkWin32SurfaceCreateInfoKHR.
type Win32SurfaceCreateInfoKHR struct {
	SType     StructureType
	PNext     unsafe.Pointer
	Flags     uint32
	Hinstance uintptr
	Hwnd      uintptr
}

// MetalSurfaceCreateInfoEXT mirrors VkMetalSurfaceCreateInfoEXT.
type MetalSurfaceCreateInfoEXT struct {
	SType  StructureType
	PNext  unsafe.Pointer
	Flags  uint32
	PLayer unsafe.Pointer
}
