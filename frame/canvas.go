// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/dvzkit/dvz/clock"
	"github.com/dvzkit/dvz/event"
	"github.com/dvzkit/dvz/internal/vk"
	"github.com/dvzkit/dvz/resources"
)

// Config pins the choices an application makes once up front: the
// surface format/color space/present mode it wants, and the fallback
// extent to use when the surface capabilities report an undefined
// current extent (Wayland, some embedded compositors). Grounded on
// hal/vulkan/swapchain.go's config-driven (rather than negotiated)
// creation: the caller has already queried formats/present modes if it
// cares to, Canvas just consumes the result.
type Config struct {
	Format      vk.Format
	ColorSpace  vk.ColorSpaceKHR
	PresentMode vk.PresentModeKHR
	Width       uint32
	Height      uint32

	// Screencast enables the host-coherent copy-image path described in
	// spec.md's screencast section; see screencast.go.
	Screencast bool
}

// Canvas owns one surface's swapchain, depth image, render pass, and
// per-image framebuffers, plus the fixed two-slot synchronization state
// driving RunFrame's nine-step loop. One Canvas exists per on-screen (or
// offscreen-with-present, e.g. screencast) window. Grounded on
// hal/vulkan/swapchain.go (acquire/recreate/present) and
// internal/thread/renderloop.go (the dedicated thread a Canvas is meant
// to be pumped from).
type Canvas struct {
	dev Device
	res *resources.Context

	surface     vk.SurfaceKHR
	ownsSurface bool

	cfg Config

	swapchain vk.SwapchainKHR
	extent    vk.Extent2D

	images       []vk.Image
	imageViews   []vk.ImageView
	framebuffers []vk.Framebuffer

	depth     *resources.Texture
	depthView vk.ImageView

	renderPass vk.RenderPass

	cmdPool    vk.CommandPool
	cmdBuffers []vk.CommandBuffer

	sync           frameSync
	imagesInFlight []vk.Fence
	cur            int

	refillPending atomic.Bool
	refilled      []bool

	// RecordFunc records the draw commands for one swapchain image inside
	// an already-open render pass instance. Canvas calls it whenever an
	// image's command buffer needs (re)recording: the first time it is
	// used, and again after every swapchain recreation.
	RecordFunc func(cb vk.CommandBuffer, imageIndex int) error

	// GetFramebufferSize is consulted on swapchain recreation when the
	// surface capabilities report an undefined current extent. If nil,
	// cfg.Width/Height is used as-is.
	GetFramebufferSize func() (uint32, uint32)

	// EventQueue, if set, receives TypeScreencast events from a
	// screencast-enabled canvas. Owned by the caller (the client/present
	// package); Canvas never creates one itself.
	EventQueue *event.Queue

	// clk is the clock a Canvas aggregates per spec §3; RunFrame ticks it
	// once per frame and the screencast path stamps captured frames from
	// it (spec §4.5, §4.8).
	clk *clock.Clock

	screencast *screencast
}

// NewCanvas creates a Canvas over an already-created surface. The caller
// (the backend package) owns surface creation since that is
// windowing-toolkit-specific; ownsSurface controls whether Destroy also
// tears the surface down.
func NewCanvas(dev Device, res *resources.Context, surface vk.SurfaceKHR, ownsSurface bool, cfg Config) (*Canvas, error) {
	c := &Canvas{
		dev:         dev,
		res:         res,
		surface:     surface,
		ownsSurface: ownsSurface,
		cfg:         cfg,
		clk:         clock.New(),
	}

	if err := c.createSyncObjects(); err != nil {
		return nil, err
	}
	if err := c.createCommandPool(); err != nil {
		c.destroySyncObjects()
		return nil, err
	}
	if err := c.createRenderPass(); err != nil {
		c.destroyCommandPool()
		c.destroySyncObjects()
		return nil, err
	}
	if err := c.createSwapchainSet(cfg.Width, cfg.Height); err != nil {
		c.destroyRenderPass()
		c.destroyCommandPool()
		c.destroySyncObjects()
		return nil, err
	}

	if cfg.Screencast {
		c.screencast = newScreencast(c)
	}

	return c, nil
}

func (c *Canvas) createCommandPool() error {
	cmds := c.dev.CommandsHandle()
	createInfo := vk.CommandPoolCreateInfo{
		SType:            vk.StructureTypeCommandPoolCreateInfo,
		Flags:            vk.CommandPoolCreateResetCommandBufferBit,
		QueueFamilyIndex: c.dev.RenderFamilyIndex(),
	}
	pool, r := cmds.CreateCommandPool(c.dev.DeviceHandle(), unsafe.Pointer(&createInfo))
	if r.IsError() {
		return fmt.Errorf("frame: vkCreateCommandPool: %d", r)
	}
	c.cmdPool = pool
	return nil
}

func (c *Canvas) destroyCommandPool() {
	if c.cmdPool != 0 {
		c.dev.CommandsHandle().DestroyCommandPool(c.dev.DeviceHandle(), c.cmdPool)
		c.cmdPool = 0
	}
}

// createRenderPass builds the single color+depth render pass used by
// every swapchain image and every swapchain generation: the attachment
// formats never change across a resize, only the framebuffers' extent
// does, so unlike the swapchain this only runs once.
func (c *Canvas) createRenderPass() error {
	attachments := []vk.AttachmentDescription{
		{ // color
			Format:         c.cfg.Format,
			Samples:        vk.SampleCount1Bit,
			LoadOp:         vk.AttachmentLoadOpClear,
			StoreOp:        vk.AttachmentStoreOpStore,
			StencilLoadOp:  vk.AttachmentLoadOpDontCare,
			StencilStoreOp: vk.AttachmentStoreOpDontCare,
			InitialLayout:  vk.ImageLayoutUndefined,
			FinalLayout:    vk.ImageLayoutPresentSrc,
		},
		{ // depth
			Format:         vk.FormatD32Sfloat,
			Samples:        vk.SampleCount1Bit,
			LoadOp:         vk.AttachmentLoadOpClear,
			StoreOp:        vk.AttachmentStoreOpDontCare,
			StencilLoadOp:  vk.AttachmentLoadOpDontCare,
			StencilStoreOp: vk.AttachmentStoreOpDontCare,
			InitialLayout:  vk.ImageLayoutUndefined,
			FinalLayout:    vk.ImageLayoutDepthStencilAttachmentOptimal,
		},
	}

	colorRef := vk.AttachmentReference{Attachment: 0, Layout: vk.ImageLayoutColorAttachmentOptimal}
	depthRef := vk.AttachmentReference{Attachment: 1, Layout: vk.ImageLayoutDepthStencilAttachmentOptimal}

	subpass := vk.SubpassDescription{
		PipelineBindPoint:       vk.PipelineBindPointGraphics,
		ColorAttachmentCount:    1,
		PColorAttachments:       unsafe.Pointer(&colorRef),
		PDepthStencilAttachment: &depthRef,
	}

	dependency := vk.SubpassDependency{
		SrcSubpass:    vk.SubpassExternal,
		DstSubpass:    0,
		SrcStageMask:  vk.PipelineStageColorAttachmentOutputBit,
		DstStageMask:  vk.PipelineStageColorAttachmentOutputBit,
		SrcAccessMask: 0,
		DstAccessMask: vk.AccessColorAttachmentWriteBit | vk.AccessDepthStencilAttachmentWriteBit,
	}

	createInfo := vk.RenderPassCreateInfo{
		SType:           vk.StructureTypeRenderPassCreateInfo,
		AttachmentCount: uint32(len(attachments)),
		PAttachments:    unsafe.Pointer(&attachments[0]),
		SubpassCount:    1,
		PSubpasses:      unsafe.Pointer(&subpass),
		DependencyCount: 1,
		PDependencies:   unsafe.Pointer(&dependency),
	}

	rp, r := c.dev.CommandsHandle().CreateRenderPass(c.dev.DeviceHandle(), unsafe.Pointer(&createInfo))
	if r.IsError() {
		return fmt.Errorf("frame: vkCreateRenderPass: %d", r)
	}
	c.renderPass = rp
	return nil
}

func (c *Canvas) destroyRenderPass() {
	if c.renderPass != 0 {
		c.dev.CommandsHandle().DestroyRenderPass(c.dev.DeviceHandle(), c.renderPass)
		c.renderPass = 0
	}
}

// createSwapchainSet (re)creates the swapchain, image views, depth
// image, and framebuffers at the surface's current extent. Grounded on
// hal/vulkan/swapchain.go's recreate path: the old swapchain is passed
// as OldSwapchain so the driver can reuse resources, and is only torn
// down after the new one is live.
func (c *Canvas) createSwapchainSet(fallbackWidth, fallbackHeight uint32) error {
	cmds := c.dev.CommandsHandle()
	device := c.dev.DeviceHandle()

	caps, r := cmds.GetPhysicalDeviceSurfaceCapabilitiesKHR(c.dev.PhysicalDeviceHandle(), c.surface)
	if r.IsError() {
		return fmt.Errorf("frame: vkGetPhysicalDeviceSurfaceCapabilitiesKHR: %d", r)
	}

	extent := caps.CurrentExtent
	if extent.Width == vk.SurfaceExtentUndefined {
		w, h := fallbackWidth, fallbackHeight
		if c.GetFramebufferSize != nil {
			w, h = c.GetFramebufferSize()
		}
		extent = vk.Extent2D{Width: w, Height: h}
	}
	if extent.Width == 0 || extent.Height == 0 {
		return fmt.Errorf("frame: zero-area surface extent")
	}

	imageCount := caps.MinImageCount + 1
	if caps.MaxImageCount > 0 && imageCount > caps.MaxImageCount {
		imageCount = caps.MaxImageCount
	}

	createInfo := vk.SwapchainCreateInfoKHR{
		SType:            vk.StructureTypeSwapchainCreateInfoKHR,
		Surface:          c.surface,
		MinImageCount:    imageCount,
		ImageFormat:      c.cfg.Format,
		ImageColorSpace:  c.cfg.ColorSpace,
		ImageExtent:      extent,
		ImageArrayLayers: 1,
		ImageUsage:       vk.ImageUsageColorAttachmentBit | vk.ImageUsageTransferDstBit,
		ImageSharingMode: vk.SharingModeExclusive,
		PreTransform:     caps.CurrentTransform,
		CompositeAlpha:   vk.CompositeAlphaOpaqueBit,
		PresentMode:      c.cfg.PresentMode,
		Clipped:          1,
		OldSwapchain:     c.swapchain,
	}

	newSwapchain, r := cmds.CreateSwapchainKHR(device, unsafe.Pointer(&createInfo))
	if r.IsError() {
		return fmt.Errorf("frame: vkCreateSwapchainKHR: %d", r)
	}

	// Tear down the previous generation's per-image resources (and the
	// previous swapchain handle itself) only now that the new swapchain
	// exists, matching hal/vulkan/swapchain.go's recreate ordering.
	oldSwapchain := c.swapchain
	c.destroySwapchainImageResources()
	if oldSwapchain != 0 {
		cmds.DestroySwapchainKHR(device, oldSwapchain)
	}

	c.swapchain = newSwapchain
	c.extent = extent

	images, r := cmds.GetSwapchainImagesKHR(device, newSwapchain)
	if r.IsError() {
		return fmt.Errorf("frame: vkGetSwapchainImagesKHR: %d", r)
	}
	c.images = images

	if err := c.createImageViews(); err != nil {
		return err
	}
	if err := c.createDepthResources(); err != nil {
		return err
	}
	if err := c.createFramebuffers(); err != nil {
		return err
	}
	if err := c.allocateCommandBuffers(); err != nil {
		return err
	}

	c.imagesInFlight = make([]vk.Fence, len(c.images))
	c.refilled = make([]bool, len(c.images))
	c.refillPending.Store(true)

	return nil
}

func (c *Canvas) createImageViews() error {
	cmds := c.dev.CommandsHandle()
	device := c.dev.DeviceHandle()

	c.imageViews = make([]vk.ImageView, len(c.images))
	for i, img := range c.images {
		createInfo := vk.ImageViewCreateInfo{
			SType:    vk.StructureTypeImageViewCreateInfo,
			Image:    img,
			ViewType: vk.ImageViewType2D,
			Format:   c.cfg.Format,
			Components: vk.ComponentMapping{
				R: vk.ComponentSwizzleIdentity, G: vk.ComponentSwizzleIdentity,
				B: vk.ComponentSwizzleIdentity, A: vk.ComponentSwizzleIdentity,
			},
			SubresourceRange: vk.ImageSubresourceRange{
				AspectMask: vk.ImageAspectColorBit,
				LevelCount: 1,
				LayerCount: 1,
			},
		}
		view, r := cmds.CreateImageView(device, unsafe.Pointer(&createInfo))
		if r.IsError() {
			return fmt.Errorf("frame: vkCreateImageView (color %d): %d", i, r)
		}
		c.imageViews[i] = view
	}
	return nil
}

func (c *Canvas) createDepthResources() error {
	extent3 := vk.Extent3D{Width: c.extent.Width, Height: c.extent.Height, Depth: 1}

	var err error
	if c.depth == nil {
		c.depth, err = c.res.CreateTexture(vk.FormatD32Sfloat, extent3, vk.ImageUsageDepthStencilAttachmentBit)
	} else {
		if c.depthView != 0 {
			c.dev.CommandsHandle().DestroyImageView(c.dev.DeviceHandle(), c.depthView)
			c.depthView = 0
		}
		err = c.res.ResizeTexture(c.depth, extent3, vk.ImageUsageDepthStencilAttachmentBit)
	}
	if err != nil {
		return fmt.Errorf("frame: depth image: %w", err)
	}

	createInfo := vk.ImageViewCreateInfo{
		SType:    vk.StructureTypeImageViewCreateInfo,
		Image:    c.depth.Image,
		ViewType: vk.ImageViewType2D,
		Format:   vk.FormatD32Sfloat,
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask: vk.ImageAspectDepthBit,
			LevelCount: 1,
			LayerCount: 1,
		},
	}
	view, r := c.dev.CommandsHandle().CreateImageView(c.dev.DeviceHandle(), unsafe.Pointer(&createInfo))
	if r.IsError() {
		return fmt.Errorf("frame: vkCreateImageView (depth): %d", r)
	}
	c.depthView = view
	return nil
}

func (c *Canvas) createFramebuffers() error {
	cmds := c.dev.CommandsHandle()
	device := c.dev.DeviceHandle()

	c.framebuffers = make([]vk.Framebuffer, len(c.imageViews))
	for i, view := range c.imageViews {
		attachments := []vk.ImageView{view, c.depthView}
		createInfo := vk.FramebufferCreateInfo{
			SType:           vk.StructureTypeFramebufferCreateInfo,
			RenderPass:      c.renderPass,
			AttachmentCount: uint32(len(attachments)),
			PAttachments:    unsafe.Pointer(&attachments[0]),
			Width:           c.extent.Width,
			Height:          c.extent.Height,
			Layers:          1,
		}
		fb, r := cmds.CreateFramebuffer(device, unsafe.Pointer(&createInfo))
		if r.IsError() {
			return fmt.Errorf("frame: vkCreateFramebuffer (%d): %d", i, r)
		}
		c.framebuffers[i] = fb
	}
	return nil
}

func (c *Canvas) allocateCommandBuffers() error {
	allocInfo := vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        c.cmdPool,
		Level:              vk.CommandBufferLevelPrimary,
		CommandBufferCount: uint32(len(c.images)),
	}
	cbs, r := c.dev.CommandsHandle().AllocateCommandBuffers(c.dev.DeviceHandle(), unsafe.Pointer(&allocInfo), uint32(len(c.images)))
	if r.IsError() {
		return fmt.Errorf("frame: vkAllocateCommandBuffers: %d", r)
	}
	c.cmdBuffers = cbs
	return nil
}

// destroySwapchainImageResources tears down everything that depends on
// the swapchain's image count or extent, but not the swapchain handle or
// the render pass, which outlive a single generation.
func (c *Canvas) destroySwapchainImageResources() {
	cmds := c.dev.CommandsHandle()
	device := c.dev.DeviceHandle()

	if len(c.cmdBuffers) > 0 {
		cmds.DestroyCommandPool(device, c.cmdPool)
		c.cmdPool = 0
		c.cmdBuffers = nil
		_ = c.createCommandPool()
	}
	for _, fb := range c.framebuffers {
		cmds.DestroyFramebuffer(device, fb)
	}
	c.framebuffers = nil
	for _, view := range c.imageViews {
		cmds.DestroyImageView(device, view)
	}
	c.imageViews = nil
	c.images = nil
}

// Destroy releases every Vulkan object the Canvas owns, in the reverse
// order of creation. The caller must ensure no frame is in flight
// (vkDeviceWaitIdle) before calling Destroy.
func (c *Canvas) Destroy() {
	if c.screencast != nil {
		c.screencast.destroy()
		c.screencast = nil
	}

	cmds := c.dev.CommandsHandle()
	device := c.dev.DeviceHandle()

	c.destroySwapchainImageResources()

	if c.depthView != 0 {
		cmds.DestroyImageView(device, c.depthView)
		c.depthView = 0
	}
	if c.depth != nil {
		c.res.DestroyTexture(c.depth)
		c.depth = nil
	}

	c.destroyRenderPass()

	if c.swapchain != 0 {
		cmds.DestroySwapchainKHR(device, c.swapchain)
		c.swapchain = 0
	}
	if c.cmdPool != 0 {
		cmds.DestroyCommandPool(device, c.cmdPool)
		c.cmdPool = 0
	}

	c.destroySyncObjects()

	if c.ownsSurface && c.surface != 0 {
		cmds.DestroySurfaceKHR(c.dev.InstanceHandle(), c.surface)
		c.surface = 0
	}
}

// Extent returns the current swapchain extent.
func (c *Canvas) Extent() vk.Extent2D { return c.extent }

// RequestRefill marks every swapchain image's command buffer as needing
// re-recording before its next use, e.g. after a scene change.
func (c *Canvas) RequestRefill() {
	for i := range c.refilled {
		c.refilled[i] = false
	}
	c.refillPending.Store(true)
}
