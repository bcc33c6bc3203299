// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package resources

import (
	"fmt"
	"unsafe"

	"github.com/dvzkit/dvz/internal/vk"
)

// CopyBuffer records and submits a buffer-to-buffer copy from src at
// srcOffset to dst at dstOffset, using the transfer queue with a single
// VkBufferCopy region. Per spec.md §4.4 this hard-synchronizes: the
// render queue is waited idle before submission and the transfer queue
// is waited idle before this call returns. Transfers are assumed rare
// relative to frames, so the cost of coarse synchronization here is
// accepted rather than optimized with semaphores (§9 open question,
// resolved: kept hard-synchronized).
func (c *Context) CopyBuffer(src vk.Buffer, srcOffset uint64, dst vk.Buffer, dstOffset uint64, size uint64) error {
	region := vk.BufferCopy{SrcOffset: srcOffset, DstOffset: dstOffset, Size: size}
	return c.oneShot(func(cb vk.CommandBuffer) {
		c.dev.CommandsHandle().CmdCopyBuffer(cb, src, dst, unsafe.Pointer(&region), 1)
	})
}

// UploadBuffer copies data into the staging arena (growing it if
// needed), then records a buffer-to-buffer copy from staging to dst at
// dstOffset. Per spec.md §4.4's staging growth policy, a single upload
// larger than the current staging capacity triggers a power-of-two
// regrowth rather than failing.
func (c *Context) UploadBuffer(dst vk.Buffer, dstOffset uint64, data []byte) error {
	if len(data) == 0 {
		return nil
	}
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
	srcOffset, err := staging.alloc(needed)
	c.mu.Unlock()
	if err != nil {
		return err
	}

	if err := c.writeStaging(staging, srcOffset, data); err != nil {
		return err
	}
	return c.CopyBuffer(staging.buffer, srcOffset, dst, dstOffset, needed)
}

// writeStaging copies data into the staging arena's mapped memory at
// offset, mapping it transiently if it was not already mapped (the
// STAGING arena, unlike UNIFORM_MAPPABLE, is not kept persistently
// mapped since it is also the target of device-side copies).
func (c *Context) writeStaging(a *arena, offset uint64, data []byte) error {
	cmds := c.dev.CommandsHandle()
	device := c.dev.DeviceHandle()

	ptr, result := cmds.MapMemory(device, a.memory, offset, uint64(len(data)))
	if result.IsError() {
		return fmt.Errorf("%w: vkMapMemory returned %d", ErrAllocationFailed, result)
	}
	dstSlice := unsafe.Slice((*byte)(ptr), len(data))
	copy(dstSlice, data)
	cmds.UnmapMemory(device, a.memory)
	return nil
}

// DownloadBuffer copies size bytes starting at srcOffset from src
// into the staging arena, waits the transfer to complete, then reads it
// back into a freshly allocated []byte. Per spec.md §4.4, downloads of
// more than one slice require the slices to be consecutive in the
// source arena — Context.Buffers guarantees this for any region it
// returned, so callers pass the already-known total size.
func (c *Context) DownloadBuffer(src vk.Buffer, srcOffset uint64, size uint64) ([]byte, error) {
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
	dstOffset, err := staging.alloc(size)
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}

	if err := c.CopyBuffer(src, srcOffset, staging.buffer, dstOffset, size); err != nil {
		return nil, err
	}

	cmds := c.dev.CommandsHandle()
	device := c.dev.DeviceHandle()
	ptr, result := cmds.MapMemory(device, staging.memory, dstOffset, size)
	if result.IsError() {
		return nil, fmt.Errorf("%w: vkMapMemory returned %d", ErrAllocationFailed, result)
	}
	out := make([]byte, size)
	copy(out, unsafe.Slice((*byte)(ptr), size))
	cmds.UnmapMemory(device, staging.memory)
	return out, nil
}
