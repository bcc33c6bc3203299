// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package resources

import (
	"fmt"
	"unsafe"

	"github.com/dvzkit/dvz/internal/vk"
)

// BufferType names one of the six typed arenas a Context manages, per
// spec.md §4.4.
type BufferType int

const (
	Vertex BufferType = iota
	Index
	Uniform
	UniformMappable
	Storage
	Staging

	bufferTypeCount
)

func (t BufferType) String() string {
	switch t {
	case Vertex:
		return "VERTEX"
	case Index:
		return "INDEX"
	case Uniform:
		return "UNIFORM"
	case UniformMappable:
		return "UNIFORM_MAPPABLE"
	case Storage:
		return "STORAGE"
	case Staging:
		return "STAGING"
	default:
		return "UNKNOWN"
	}
}

const (
	defaultArenaSize        uint64 = 16 << 20 // 16 MiB: STAGING/VERTEX/INDEX/STORAGE
	defaultUniformArenaSize uint64 = 4 << 20  // 4 MiB: UNIFORM/UNIFORM_MAPPABLE

	// uniformAlignment is the alignment every uniform sub-allocation is
	// rounded up to. Real hardware reports this via
	// minUniformBufferOffsetAlignment; 256 is the conservative value
	// every desktop Vulkan driver accepts.
	uniformAlignment uint64 = 256
)

func defaultSize(t BufferType) uint64 {
	if t == Uniform || t == UniformMappable {
		return defaultUniformArenaSize
	}
	return defaultArenaSize
}

func usageFlags(t BufferType) vk.BufferUsageFlags {
	switch t {
	case Vertex:
		return vk.BufferUsageVertexBufferBit | vk.BufferUsageTransferDstBit
	case Index:
		return vk.BufferUsageIndexBufferBit | vk.BufferUsageTransferDstBit
	case Uniform, UniformMappable:
		return vk.BufferUsageUniformBufferBit | vk.BufferUsageTransferDstBit
	case Storage:
		return vk.BufferUsageStorageBufferBit | vk.BufferUsageTransferSrcBit | vk.BufferUsageTransferDstBit
	case Staging:
		return vk.BufferUsageTransferSrcBit | vk.BufferUsageTransferDstBit
	default:
		return 0
	}
}

func memoryFlags(t BufferType) vk.MemoryPropertyFlags {
	switch t {
	case UniformMappable, Staging:
		return vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCoherentBit
	default:
		return vk.MemoryPropertyDeviceLocalBit
	}
}

func requiresAlignment(t BufferType) bool {
	return t == Uniform || t == UniformMappable
}

// arena is one typed buffer: a fixed-capacity backing VkBuffer and a
// monotonically advancing cursor that sub-allocations carve offsets from.
// Freed regions are never reclaimed within an arena's lifetime — only the
// staging arena is ever reallocated, and only to grow.
type arena struct {
	typ      BufferType
	buffer   vk.Buffer
	memory   vk.DeviceMemory
	capacity uint64
	cursor   uint64
	mapped   unsafe.Pointer // non-nil for UniformMappable/Staging once mapped
}

// alloc reserves size bytes at the arena's current cursor, rounding the
// offset up to uniformAlignment when the arena type requires it. Returns
// ErrArenaOverflow (not grown here — growth is the Context's job, and
// only Staging is allowed to grow).
func (a *arena) alloc(size uint64) (uint64, error) {
	offset := a.cursor
	if requiresAlignment(a.typ) {
		offset = alignUp(offset, uniformAlignment)
	}
	if offset+size > a.capacity {
		return 0, fmt.Errorf("%w: %s arena (cursor %d, capacity %d, requested %d)",
			ErrArenaOverflow, a.typ, a.cursor, a.capacity, size)
	}
	a.cursor = offset + size
	return offset, nil
}

func alignUp(v, align uint64) uint64 {
	if align == 0 {
		return v
	}
	return (v + align - 1) &^ (align - 1)
}

// nextPowerOfTwo returns the smallest power of two ≥ v, per spec.md's
// staging regrowth policy.
func nextPowerOfTwo(v uint64) uint64 {
	if v == 0 {
		return 1
	}
	p := uint64(1)
	for p < v {
		p <<= 1
	}
	return p
}
