// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gpu

import "github.com/dvzkit/dvz/internal/vk"

// QueueFamilies records the family index chosen for each capability this
// runtime needs. Render and present frequently coalesce onto the same
// family (the common case on desktop drivers), per spec.
type QueueFamilies struct {
	Transfer uint32
	Compute  uint32
	Render   uint32
	Present  uint32

	TransferIsDedicated bool
	ComputeIsDedicated  bool
	RenderPresentSame   bool
}

// Unique returns the distinct family indices among Transfer/Compute/
// Render/Present, in stable order, for building DeviceQueueCreateInfo
// entries (Vulkan rejects duplicate family indices in one device create).
func (q QueueFamilies) Unique() []uint32 {
	seen := map[uint32]bool{}
	var out []uint32
	for _, f := range []uint32{q.Render, q.Present, q.Compute, q.Transfer} {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}

// DiscoverQueueFamilies picks a family for each of transfer/compute/
// render/present from the physical device's queue family properties, per
// spec.md §4.3. presentSupport may be nil (headless discovery with no
// surface yet); when nil, Present coalesces with Render unconditionally.
//
// Preference order: a dedicated transfer-only family over one that also
// supports graphics/compute (minimizes contention on the graphics queue);
// a dedicated compute-only family over one shared with graphics, same
// reasoning; render always the first family advertising
// VK_QUEUE_GRAPHICS_BIT; present the first family presentSupport reports
// true for, preferring the render family itself so the two coalesce.
func DiscoverQueueFamilies(props []vk.QueueFamilyProperties, presentSupport func(family uint32) bool) (QueueFamilies, error) {
	if len(props) == 0 {
		return QueueFamilies{}, ErrNoQueueFamily
	}

	var q QueueFamilies
	renderFound := false
	for i, p := range props {
		if !renderFound && p.QueueFlags&vk.QueueGraphicsBit != 0 {
			q.Render = uint32(i)
			renderFound = true
		}
	}
	if !renderFound {
		return QueueFamilies{}, ErrNoQueueFamily
	}

	// Transfer: prefer a family with TransferBit and neither Graphics nor
	// Compute (a true copy-only DMA queue); fall back to the render family.
	q.Transfer = q.Render
	for i, p := range props {
		if p.QueueFlags&vk.QueueTransferBit != 0 &&
			p.QueueFlags&vk.QueueGraphicsBit == 0 &&
			p.QueueFlags&vk.QueueComputeBit == 0 {
			q.Transfer = uint32(i)
			q.TransferIsDedicated = true
			break
		}
	}

	// Compute: prefer a family with ComputeBit and no Graphics bit.
	q.Compute = q.Render
	for i, p := range props {
		if p.QueueFlags&vk.QueueComputeBit != 0 && p.QueueFlags&vk.QueueGraphicsBit == 0 {
			q.Compute = uint32(i)
			q.ComputeIsDedicated = true
			break
		}
	}

	// Present: coalesce with render unless told otherwise.
	q.Present = q.Render
	q.RenderPresentSame = true
	if presentSupport != nil && !presentSupport(q.Render) {
		found := false
		for i := range props {
			if presentSupport(uint32(i)) {
				q.Present = uint32(i)
				q.RenderPresentSame = false
				found = true
				break
			}
		}
		if !found {
			return QueueFamilies{}, ErrNoQueueFamily
		}
	}

	return q, nil
}
