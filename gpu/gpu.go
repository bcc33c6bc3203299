// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"fmt"
	"unsafe"

	"github.com/dvzkit/dvz/internal/vk"
	"github.com/dvzkit/dvz/resources"
)

const (
	descriptorPoolMaxSets               = 1000
	descriptorPoolUniformBuffers        = 1000
	descriptorPoolStorageBuffers        = 1000
	descriptorPoolCombinedImageSamplers = 1000

	descriptorTypeUniformBuffer        = 6
	descriptorTypeStorageBuffer        = 7
	descriptorTypeCombinedImageSampler = 1
)

// GPU binds one physical device: its queue-family discovery, logical
// device, queues, and the single descriptor pool that lives for the
// canvas set's lifetime. Grounded on hal/vulkan/adapter.go's Open and
// root instance.go's RequestAdapter→device flow.
type GPU struct {
	Host           *Host
	PhysicalDevice vk.PhysicalDevice
	Device         vk.Device
	Commands       *vk.Commands // instance pointers shared with Host, device pointers loaded per-GPU
	Families       QueueFamilies

	TransferQueue vk.Queue
	ComputeQueue  vk.Queue
	RenderQueue   vk.Queue
	PresentQueue  vk.Queue

	DescriptorPool vk.DescriptorPool

	// Context owns the typed buffer/texture arenas for this GPU, per
	// spec.md §4.3's "embedded Context that owns resource containers".
	Context *resources.Context
}

// DeviceHandle implements resources.Device.
func (g *GPU) DeviceHandle() vk.Device { return g.Device }

// PhysicalDeviceHandle implements resources.Device.
func (g *GPU) PhysicalDeviceHandle() vk.PhysicalDevice { return g.PhysicalDevice }

// CommandsHandle implements resources.Device.
func (g *GPU) CommandsHandle() *vk.Commands { return g.Commands }

// TransferQueueHandle implements resources.Device.
func (g *GPU) TransferQueueHandle() vk.Queue { return g.TransferQueue }

// RenderQueueHandle implements resources.Device.
func (g *GPU) RenderQueueHandle() vk.Queue { return g.RenderQueue }

// TransferFamilyIndex implements resources.Device.
func (g *GPU) TransferFamilyIndex() uint32 { return g.Families.Transfer }

// InstanceHandle implements frame.Device.
func (g *GPU) InstanceHandle() vk.Instance { return g.Host.Instance }

// PresentQueueHandle implements frame.Device.
func (g *GPU) PresentQueueHandle() vk.Queue { return g.PresentQueue }

// RenderFamilyIndex implements frame.Device.
func (g *GPU) RenderFamilyIndex() uint32 { return g.Families.Render }

// Open creates a logical device against host.PhysicalDevices[deviceIndex].
// presentSupport reports whether a given queue family can present to the
// surface this GPU will draw to; pass nil for a surface-less (headless)
// GPU, per spec.md §4.3's throwaway-hidden-window discovery path — the
// caller (backend) is expected to have already used such a window to
// answer presentSupport, or to pass nil when no window exists at all.
// extraDeviceExtensions are appended to VK_KHR_swapchain when presentSupport
// is non-nil (a headless GPU has no swapchain to support).
func Open(host *Host, deviceIndex int, presentSupport func(family uint32) bool, extraDeviceExtensions []string) (*GPU, error) {
	if deviceIndex < 0 || deviceIndex >= len(host.PhysicalDevices) {
		return nil, ErrNoDevice
	}
	pd := host.PhysicalDevices[deviceIndex]

	props := host.Commands.GetPhysicalDeviceQueueFamilyProperties(pd)
	families, err := DiscoverQueueFamilies(props, presentSupport)
	if err != nil {
		return nil, err
	}

	uniqueFamilies := families.Unique()
	priority := float32(1.0)
	queueInfos := make([]vk.DeviceQueueCreateInfo, len(uniqueFamilies))
	for i, fam := range uniqueFamilies {
		queueInfos[i] = vk.DeviceQueueCreateInfo{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: fam,
			QueueCount:       1,
			PQueuePriorities: &priority,
		}
	}

	var extensions []string
	if presentSupport != nil {
		extensions = append(extensions, "VK_KHR_swapchain")
	}
	extensions = append(extensions, extraDeviceExtensions...)
	extPtr, extKeepAlive := cStringArray(extensions)
	_ = extKeepAlive

	deviceCreateInfo := vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount:    uint32(len(queueInfos)),
		PQueueCreateInfos:       &queueInfos[0],
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: extPtr,
	}

	// Device-level function pointers are per-device: clone the instance
	// pointers already loaded on host.Commands rather than mutating them,
	// so multiple GPUs opened against the same Host don't clobber each
	// other's device dispatch table.
	cmds := *host.Commands
	device, result := cmds.CreateDevice(pd, unsafe.Pointer(&deviceCreateInfo))
	if result.IsError() {
		Logger().Error("gpu: vkCreateDevice failed", "result", result)
		return nil, fmt.Errorf("%w: vkCreateDevice returned %d", ErrDeviceCreation, result)
	}
	if err := cmds.LoadDevice(device); err != nil {
		cmds.DestroyDevice(device)
		Logger().Error("gpu: loading device commands failed", "err", err)
		return nil, fmt.Errorf("%w: %v", ErrDeviceCreation, err)
	}

	g := &GPU{
		Host:           host,
		PhysicalDevice: pd,
		Device:         device,
		Commands:       &cmds,
		Families:       families,
		TransferQueue:  cmds.GetDeviceQueue(device, families.Transfer, 0),
		ComputeQueue:   cmds.GetDeviceQueue(device, families.Compute, 0),
		RenderQueue:    cmds.GetDeviceQueue(device, families.Render, 0),
		PresentQueue:   cmds.GetDeviceQueue(device, families.Present, 0),
	}

	pool, result := g.createDescriptorPool()
	if result.IsError() {
		cmds.DestroyDevice(device)
		Logger().Error("gpu: vkCreateDescriptorPool failed", "result", result)
		return nil, fmt.Errorf("%w: vkCreateDescriptorPool returned %d", ErrDeviceCreation, result)
	}
	g.DescriptorPool = pool
	g.Context = resources.NewContext(g)

	host.register(g)
	return g, nil
}

func (g *GPU) createDescriptorPool() (vk.DescriptorPool, vk.Result) {
	sizes := []vk.DescriptorPoolSize{
		{Type: descriptorTypeUniformBuffer, DescriptorCount: descriptorPoolUniformBuffers},
		{Type: descriptorTypeStorageBuffer, DescriptorCount: descriptorPoolStorageBuffers},
		{Type: descriptorTypeCombinedImageSampler, DescriptorCount: descriptorPoolCombinedImageSamplers},
	}
	createInfo := vk.DescriptorPoolCreateInfo{
		SType:         vk.StructureTypeDescriptorPoolCreateInfo,
		Flags:         vk.DescriptorPoolCreateFreeDescriptorSetBit,
		MaxSets:       descriptorPoolMaxSets,
		PoolSizeCount: uint32(len(sizes)),
		PPoolSizes:    &sizes[0],
	}
	return g.Commands.CreateDescriptorPool(g.Device, unsafe.Pointer(&createInfo))
}

// WaitIdle blocks until every queued operation on this device completes.
// Required before descriptor set updates, pipeline creation, and
// swapchain recreation, per spec.md's shared-resource policy.
func (g *GPU) WaitIdle() vk.Result { return g.Commands.DeviceWaitIdle(g.Device) }

func (g *GPU) waitIdle() {
	if g.Device != 0 {
		g.Commands.DeviceWaitIdle(g.Device)
	}
}

func (g *GPU) destroy() {
	if g.Context != nil {
		g.Context.Destroy()
		g.Context = nil
	}
	if g.DescriptorPool != 0 {
		g.Commands.DestroyDescriptorPool(g.Device, g.DescriptorPool)
		g.DescriptorPool = 0
	}
	if g.Device != 0 {
		g.Commands.DestroyDevice(g.Device)
		g.Device = 0
	}
}
