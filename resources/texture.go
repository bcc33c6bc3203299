// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package resources

import (
	"fmt"
	"unsafe"

	"github.com/dvzkit/dvz/internal/vk"
)

// Texture is a Context-managed image: a VkImage/VkDeviceMemory pair plus
// the format/extent/layout Context needs to transition it during upload,
// download, and resize. Descriptor sets that bind a Texture are the
// caller's (present package's) responsibility to mark NEED_UPDATE after
// a resize — Context has no visibility into descriptor bindings.
type Texture struct {
	Image  vk.Image
	Memory vk.DeviceMemory
	Format vk.Format
	Extent vk.Extent3D
	Layout uint32
}

// CreateTexture allocates a 2D image whose usage is the caller's usage
// plus TRANSFER_SRC|TRANSFER_DST, starting in UNDEFINED layout.
func (c *Context) CreateTexture(format vk.Format, extent vk.Extent3D, usage vk.ImageUsageFlags) (*Texture, error) {
	cmds := c.dev.CommandsHandle()
	device := c.dev.DeviceHandle()

	createInfo := vk.ImageCreateInfo{
		SType:         vk.StructureTypeImageCreateInfo,
		ImageType:     1, // VK_IMAGE_TYPE_2D
		Format:        format,
		Extent:        extent,
		MipLevels:     1,
		ArrayLayers:   1,
		Samples:       1, // VK_SAMPLE_COUNT_1_BIT
		Tiling:        0, // VK_IMAGE_TILING_OPTIMAL
		Usage:         usage | vk.ImageUsageTransferSrcBit | vk.ImageUsageTransferDstBit,
		InitialLayout: vk.ImageLayoutUndefined,
	}
	img, result := cmds.CreateImage(device, unsafe.Pointer(&createInfo))
	if result.IsError() {
		return nil, fmt.Errorf("%w: vkCreateImage returned %d", ErrAllocationFailed, result)
	}

	reqs := cmds.GetImageMemoryRequirements(device, img)
	memTypeIndex, err := findMemoryType(cmds, c.dev.PhysicalDeviceHandle(), reqs.MemoryTypeBits, vk.MemoryPropertyDeviceLocalBit)
	if err != nil {
		cmds.DestroyImage(device, img)
		return nil, err
	}
	allocInfo := vk.MemoryAllocateInfo{
		SType:           vk.StructureTypeMemoryAllocateInfo,
		AllocationSize:  reqs.Size,
		MemoryTypeIndex: memTypeIndex,
	}
	mem, result := cmds.AllocateMemory(device, unsafe.Pointer(&allocInfo))
	if result.IsError() {
		cmds.DestroyImage(device, img)
		return nil, fmt.Errorf("%w: vkAllocateMemory returned %d", ErrAllocationFailed, result)
	}
	if result := cmds.BindImageMemory(device, img, mem, 0); result.IsError() {
		cmds.FreeMemory(device, mem)
		cmds.DestroyImage(device, img)
		return nil, fmt.Errorf("%w: vkBindImageMemory returned %d", ErrAllocationFailed, result)
	}

	return &Texture{Image: img, Memory: mem, Format: format, Extent: extent, Layout: vk.ImageLayoutUndefined}, nil
}

// UploadTexture copies data into the staging arena, transitions t from
// UNDEFINED to TRANSFER_DST_OPTIMAL, issues the copyBufferToImage, then
// transitions back to finalLayout, per spec.md §4.4.
func (c *Context) UploadTexture(t *Texture, data []byte, finalLayout uint32) error {
	c.mu.Lock()
	staging, err := c.arenaFor(Staging)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	needed := uint64(len(data))
	if staging.cursor+needed > staging.capacity {
		if err := c.growStaging(staging, staging.cursor+needed); err != nil {
			c.mu.Unlock()
			return err
		}
		staging = c.arenas[Staging]
	}
	offset, err := staging.alloc(needed)
	c.mu.Unlock()
	if err != nil {
		return err
	}
	if err := c.writeStaging(staging, offset, data); err != nil {
		return err
	}

	region := vk.BufferImageCopy{
		BufferOffset:     offset,
		ImageSubresource: vk.ImageSubresourceLayers{AspectMask: vk.ImageAspectColorBit, LayerCount: 1},
		ImageExtent:      t.Extent,
	}
	err = c.oneShot(func(cb vk.CommandBuffer) {
		c.transitionLayout(cb, t, vk.ImageLayoutUndefined, vk.ImageLayoutTransferDstOptimal)
		c.dev.CommandsHandle().CmdCopyBufferToImage(cb, staging.buffer, t.Image, vk.ImageLayoutTransferDstOptimal, unsafe.Pointer(&region), 1)
		c.transitionLayout(cb, t, vk.ImageLayoutTransferDstOptimal, finalLayout)
	})
	if err != nil {
		return err
	}
	t.Layout = finalLayout
	return nil
}

// DownloadTexture is the symmetric counterpart of UploadTexture: it
// transitions t to TRANSFER_SRC_OPTIMAL, copies into the staging arena,
// transitions back to its prior layout, then reads the bytes out.
func (c *Context) DownloadTexture(t *Texture) ([]byte, error) {
	out, err := c.downloadImage(t.Image, t.Extent, t.Layout, t.Layout)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DownloadImage is DownloadTexture generalized to an image Context
// didn't allocate itself — a swapchain color image, say — which must be
// returned to exactly the layout it was found in (a swapchain image's
// final layout is fixed by the render pass that produced it, not a
// choice DownloadImage gets to make). Used by the frame package's
// screencast capture.
func (c *Context) DownloadImage(img vk.Image, extent vk.Extent3D, layout uint32) ([]byte, error) {
	return c.downloadImage(img, extent, layout, layout)
}

func (c *Context) downloadImage(img vk.Image, extent vk.Extent3D, fromLayout, toLayout uint32) ([]byte, error) {
	size := uint64(extent.Width) * uint64(extent.Height) * uint64(extent.Depth) * 4 // assumes 4-byte-per-texel formats
	c.mu.Lock()
	staging, err := c.arenaFor(Staging)
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}
	if staging.cursor+size > staging.capacity {
		if err := c.growStaging(staging, staging.cursor+size); err != nil {
			c.mu.Unlock()
			return nil, err
		}
		staging = c.arenas[Staging]
	}
	offset, err := staging.alloc(size)
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}

	tmp := &Texture{Image: img}
	region := vk.BufferImageCopy{
		BufferOffset:     offset,
		ImageSubresource: vk.ImageSubresourceLayers{AspectMask: vk.ImageAspectColorBit, LayerCount: 1},
		ImageExtent:      extent,
	}
	err = c.oneShot(func(cb vk.CommandBuffer) {
		c.transitionLayout(cb, tmp, fromLayout, vk.ImageLayoutTransferSrcOptimal)
		c.dev.CommandsHandle().CmdCopyImageToBuffer(cb, img, vk.ImageLayoutTransferSrcOptimal, staging.buffer, unsafe.Pointer(&region), 1)
		c.transitionLayout(cb, tmp, vk.ImageLayoutTransferSrcOptimal, toLayout)
	})
	if err != nil {
		return nil, err
	}

	cmds := c.dev.CommandsHandle()
	device := c.dev.DeviceHandle()
	ptr, result := cmds.MapMemory(device, staging.memory, offset, size)
	if result.IsError() {
		return nil, fmt.Errorf("%w: vkMapMemory returned %d", ErrAllocationFailed, result)
	}
	out := make([]byte, size)
	copy(out, unsafe.Slice((*byte)(ptr), size))
	cmds.UnmapMemory(device, staging.memory)
	return out, nil
}

// ResizeTexture destroys t's image and recreates it at newExtent,
// leaving layout UNDEFINED. Per spec.md §4.4, any binding that
// references t is left in NEED_UPDATE — it is the present package's
// responsibility to re-create the descriptor write after a resize,
// since Context doesn't track descriptor bindings.
func (c *Context) ResizeTexture(t *Texture, newExtent vk.Extent3D, usage vk.ImageUsageFlags) error {
	cmds := c.dev.CommandsHandle()
	device := c.dev.DeviceHandle()
	cmds.DestroyImage(device, t.Image)
	cmds.FreeMemory(device, t.Memory)

	fresh, err := c.CreateTexture(t.Format, newExtent, usage)
	if err != nil {
		return err
	}
	t.Image = fresh.Image
	t.Memory = fresh.Memory
	t.Extent = newExtent
	t.Layout = vk.ImageLayoutUndefined
	return nil
}

// DestroyTexture frees t's image and memory.
func (c *Context) DestroyTexture(t *Texture) {
	cmds := c.dev.CommandsHandle()
	device := c.dev.DeviceHandle()
	cmds.DestroyImage(device, t.Image)
	cmds.FreeMemory(device, t.Memory)
}

func (c *Context) transitionLayout(cb vk.CommandBuffer, t *Texture, oldLayout, newLayout uint32) {
	barrier := vk.ImageMemoryBarrier{
		SType:               vk.StructureTypeImageMemoryBarrier,
		OldLayout:           oldLayout,
		NewLayout:           newLayout,
		SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
		DstQueueFamilyIndex: vk.QueueFamilyIgnored,
		Image:               t.Image,
		SubresourceRange:    vk.ImageSubresourceRange{AspectMask: vk.ImageAspectColorBit, LevelCount: 1, LayerCount: 1},
		SrcAccessMask:       accessMaskFor(oldLayout),
		DstAccessMask:       accessMaskFor(newLayout),
	}
	c.dev.CommandsHandle().CmdPipelineBarrier(cb,
		vk.PipelineStageTopOfPipeBit, vk.PipelineStageTransferBit, 0,
		unsafe.Pointer(&barrier), 1)
}

func accessMaskFor(layout uint32) uint32 {
	switch layout {
	case vk.ImageLayoutTransferDstOptimal:
		return vk.AccessTransferWriteBit
	case vk.ImageLayoutTransferSrcOptimal:
		return vk.AccessTransferReadBit
	case vk.ImageLayoutShaderReadOnlyOptimal:
		return vk.AccessShaderReadBit
	default:
		return 0
	}
}
