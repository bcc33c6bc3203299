// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package resources implements the per-GPU resource manager of spec.md
// §4.4: lazily-created typed buffer arenas with monotonic cursor
// sub-allocation, staging-backed buffer/texture upload and download, and
// hard-synchronized buffer-to-buffer transfers. It is grounded on
// hal/vulkan/memory's buddy allocator (generalized here to a simpler
// bump allocator, since the spec's arenas never free individual
// sub-allocations) and hal/vulkan/descriptor.go's idle-before-mutate
// discipline for anything that touches shared device state.
package resources

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/dvzkit/dvz/internal/vk"
)

// Device is the subset of *gpu.GPU the resource manager needs. Declared
// as an interface here (rather than importing package gpu directly) to
// keep resources testable without a live Vulkan device, and to avoid a
// dependency cycle should gpu ever want to embed a Context.
type Device interface {
	DeviceHandle() vk.Device
	PhysicalDeviceHandle() vk.PhysicalDevice
	CommandsHandle() *vk.Commands
	TransferQueueHandle() vk.Queue
	RenderQueueHandle() vk.Queue
	TransferFamilyIndex() uint32
}

// BufferRegion is the result of a Context.Buffers call: count
// sub-allocations inside one typed arena, each size bytes long.
type BufferRegion struct {
	Type    BufferType
	Buffer  vk.Buffer
	Size    uint64   // size of a single slice
	Offsets []uint64 // one offset per slice, len == count
}

// SliceOffset returns the absolute byte offset of slice i.
func (r BufferRegion) SliceOffset(i int) uint64 { return r.Offsets[i] }

// Context owns the six typed arenas for one GPU: VERTEX, INDEX, UNIFORM,
// UNIFORM_MAPPABLE, STORAGE, STAGING. Operations are single-threaded
// with respect to submission — callers outside the frame loop must
// serialize access, per spec.md §4.4.
type Context struct {
	dev Device

	mu      sync.Mutex
	arenas  [bufferTypeCount]*arena
	cmdPool vk.CommandPool
}

// NewContext creates an empty Context; arenas are created lazily on
// first use by Buffers.
func NewContext(dev Device) *Context {
	return &Context{dev: dev}
}

// Buffers returns count slices of size bytes each from the named arena,
// creating the arena on first use. Offsets come from the arena's
// monotonically advancing cursor; freed regions are never reused within
// an arena's lifetime, matching spec.md §4.4's "destruction only at
// teardown" rule. Only the STAGING arena grows on overflow; every other
// type returns ErrArenaOverflow.
func (c *Context) Buffers(typ BufferType, count int, size uint64) (BufferRegion, error) {
	if typ < 0 || typ >= bufferTypeCount {
		return BufferRegion{}, ErrUnknownBufferType
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	a, err := c.arenaFor(typ)
	if err != nil {
		return BufferRegion{}, err
	}

	total := size * uint64(count)
	if typ == Staging && a.cursor+total > a.capacity {
		if err := c.growStaging(a, a.cursor+total); err != nil {
			return BufferRegion{}, err
		}
	}

	offsets := make([]uint64, count)
	for i := 0; i < count; i++ {
		off, err := a.alloc(size)
		if err != nil {
			return BufferRegion{}, err
		}
		offsets[i] = off
	}
	return BufferRegion{Type: typ, Buffer: a.buffer, Size: size, Offsets: offsets}, nil
}

func (c *Context) arenaFor(typ BufferType) (*arena, error) {
	if c.arenas[typ] != nil {
		return c.arenas[typ], nil
	}
	a, err := c.createArena(typ, defaultSize(typ))
	if err != nil {
		return nil, err
	}
	c.arenas[typ] = a
	return a, nil
}

func (c *Context) createArena(typ BufferType, size uint64) (*arena, error) {
	cmds := c.dev.CommandsHandle()
	device := c.dev.DeviceHandle()

	createInfo := vk.BufferCreateInfo{
		SType: vk.StructureTypeBufferCreateInfo,
		Size:  size,
		Usage: usageFlags(typ),
	}
	buf, result := cmds.CreateBuffer(device, unsafe.Pointer(&createInfo))
	if result.IsError() {
		return nil, fmt.Errorf("%w: vkCreateBuffer(%s) returned %d", ErrAllocationFailed, typ, result)
	}

	reqs := cmds.GetBufferMemoryRequirements(device, buf)
	memTypeIndex, err := findMemoryType(cmds, c.dev.PhysicalDeviceHandle(), reqs.MemoryTypeBits, memoryFlags(typ))
	if err != nil {
		cmds.DestroyBuffer(device, buf)
		return nil, err
	}

	allocInfo := vk.MemoryAllocateInfo{
		SType:           vk.StructureTypeMemoryAllocateInfo,
		AllocationSize:  reqs.Size,
		MemoryTypeIndex: memTypeIndex,
	}
	mem, result := cmds.AllocateMemory(device, unsafe.Pointer(&allocInfo))
	if result.IsError() {
		cmds.DestroyBuffer(device, buf)
		return nil, fmt.Errorf("%w: vkAllocateMemory(%s) returned %d", ErrAllocationFailed, typ, result)
	}

	if result := cmds.BindBufferMemory(device, buf, mem, 0); result.IsError() {
		cmds.FreeMemory(device, mem)
		cmds.DestroyBuffer(device, buf)
		return nil, fmt.Errorf("%w: vkBindBufferMemory(%s) returned %d", ErrAllocationFailed, typ, result)
	}

	a := &arena{typ: typ, buffer: buf, memory: mem, capacity: size}
	if typ == UniformMappable {
		ptr, result := cmds.MapMemory(device, mem, 0, size)
		if result.IsError() {
			Logger().Warn("vkMapMemory failed for UNIFORM_MAPPABLE arena", "result", result)
		} else {
			a.mapped = ptr
		}
	}
	return a, nil
}

// growStaging reallocates the staging arena to the next power of two ≥
// needed, per spec.md §4.4. The old buffer/memory are destroyed only
// after the new one is bound — any in-flight copy reading from the old
// staging buffer must have already completed, which the hard-sync
// transfer discipline (CopyBuffer waits transfer idle before returning)
// guarantees.
func (c *Context) growStaging(a *arena, needed uint64) error {
	newSize := nextPowerOfTwo(needed)
	Logger().Debug("growing staging arena", "from", a.capacity, "to", newSize)

	newArena, err := c.createArena(Staging, newSize)
	if err != nil {
		return err
	}

	cmds := c.dev.CommandsHandle()
	device := c.dev.DeviceHandle()
	oldBuf, oldMem := a.buffer, a.memory
	*a = *newArena
	cmds.DestroyBuffer(device, oldBuf)
	cmds.FreeMemory(device, oldMem)
	return nil
}

func findMemoryType(cmds *vk.Commands, pd vk.PhysicalDevice, typeBits uint32, want vk.MemoryPropertyFlags) (uint32, error) {
	props := cmds.GetPhysicalDeviceMemoryProperties(pd)
	for i := uint32(0); i < props.MemoryTypeCount; i++ {
		if typeBits&(1<<i) == 0 {
			continue
		}
		if props.MemoryTypes[i].PropertyFlags&want == want {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: no memory type satisfies flags %d (typeBits %#x)", ErrAllocationFailed, want, typeBits)
}

// Destroy frees every arena's buffer and memory. The caller (GPU
// teardown) must have waited the device idle first.
func (c *Context) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	cmds := c.dev.CommandsHandle()
	device := c.dev.DeviceHandle()
	for i, a := range c.arenas {
		if a == nil {
			continue
		}
		if a.mapped != nil {
			cmds.UnmapMemory(device, a.memory)
		}
		cmds.DestroyBuffer(device, a.buffer)
		cmds.FreeMemory(device, a.memory)
		c.arenas[i] = nil
	}
	if c.cmdPool != 0 {
		cmds.DestroyCommandPool(device, c.cmdPool)
		c.cmdPool = 0
	}
}
