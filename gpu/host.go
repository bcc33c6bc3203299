// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package gpu implements the Host/GPU layer of spec.md §4.3: a Vulkan
// instance with backend-required extensions and optional debug
// utilities, physical device enumeration, and per-device logical device
// plus descriptor pool creation. It is grounded on hal/vulkan/device.go
// and the root instance.go/adapter.go's queue-discovery and device-open
// flow, adapted onto the trimmed internal/vk bindings.
package gpu

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/dvzkit/dvz/internal/vk"
)

const validationLayer = "VK_LAYER_KHRONOS_validation"
const debugUtilsExtension = "VK_EXT_debug_utils"

// Host owns the Vulkan instance and every GPU opened against it. Destroy
// waits every open GPU idle and tears instance-level state down in
// dependency order: GPUs, messenger, instance.
type Host struct {
	Commands        *vk.Commands
	Instance        vk.Instance
	Debug           bool
	messenger       uint64
	PhysicalDevices []vk.PhysicalDevice

	gpus []*GPU
}

// NewHost creates a Vulkan instance. requiredExtensions are the
// backend-specific extensions a window surface needs (supplied by
// backend.RequiredInstanceExtensions); debug additionally enables
// VK_EXT_debug_utils and the khronos validation layer. debug is OR'd with
// the DVZ_DEBUG environment variable, read once here, per the ambient
// configuration surface.
func NewHost(appName string, requiredExtensions []string, debug bool) (*Host, error) {
	if os.Getenv("DVZ_DEBUG") != "" {
		debug = true
	}

	if err := vk.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoInstance, err)
	}

	cmds := vk.NewCommands()
	if err := cmds.LoadGlobal(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoInstance, err)
	}

	extensions := append([]string{}, requiredExtensions...)
	var layers []string
	if debug {
		extensions = append(extensions, debugUtilsExtension)
		layers = append(layers, validationLayer)
	}

	appNamePtr := cString(appName)
	engineNamePtr := cString("dvz")
	appInfo := vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		PApplicationName:   appNamePtr,
		ApplicationVersion: 1,
		PEngineName:        engineNamePtr,
		EngineVersion:      1,
		APIVersion:         (1 << 22) | (2 << 12), // VK_API_VERSION_1_2
	}

	extPtr, extKeepAlive := cStringArray(extensions)
	_ = extKeepAlive
	layerPtr, layerKeepAlive := cStringArray(layers)
	_ = layerKeepAlive

	createInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        &appInfo,
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: extPtr,
		EnabledLayerCount:       uint32(len(layers)),
		PpEnabledLayerNames:     layerPtr,
	}

	instance, result := cmds.CreateInstance(unsafe.Pointer(&createInfo))
	if result.IsError() {
		return nil, fmt.Errorf("%w: vkCreateInstance returned %d", ErrNoInstance, result)
	}

	if err := cmds.LoadInstance(instance); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoInstance, err)
	}

	h := &Host{
		Commands: cmds,
		Instance: instance,
		Debug:    debug,
	}

	if debug {
		h.messenger = h.createMessenger()
	}

	devices, result := cmds.EnumeratePhysicalDevices(instance)
	if result.IsError() {
		Logger().Warn("vkEnumeratePhysicalDevices failed", "result", result)
	}
	h.PhysicalDevices = devices

	return h, nil
}

// createMessenger attaches the debug utils messenger when the extension
// was enabled. Failure is logged, not fatal — validation is a developer
// aid, not a dependency of correct operation.
func (h *Host) createMessenger() uint64 {
	createInfo := vk.DebugUtilsMessengerCreateInfoEXT{
		SType:           vk.StructureTypeDebugUtilsMessengerCreateInfoEXT,
		MessageSeverity: 0xFFFF, // all severities
		MessageType:     0x7,    // general | validation | performance
	}
	messenger, result := h.Commands.CreateDebugUtilsMessengerEXT(h.Instance, unsafe.Pointer(&createInfo))
	if result.IsError() {
		Logger().Warn("vkCreateDebugUtilsMessengerEXT failed, continuing without validation callback", "result", result)
		return 0
	}
	return messenger
}

// register tracks a GPU for idle-on-exit teardown.
func (h *Host) register(g *GPU) { h.gpus = append(h.gpus, g) }

// Destroy waits every open GPU idle, destroys them, then the debug
// messenger and the instance, in that order, per spec.md §4.3. Canvas
// and window teardown (which must precede GPU teardown) is the caller's
// responsibility — Host has no visibility into frame.Canvas/backend
// windows, which sit above gpu in the dependency graph.
func (h *Host) Destroy() {
	for _, g := range h.gpus {
		g.waitIdle()
	}
	for _, g := range h.gpus {
		g.destroy()
	}
	h.gpus = nil

	if h.messenger != 0 {
		h.Commands.DestroyDebugUtilsMessengerEXT(h.Instance, h.messenger)
		h.messenger = 0
	}
	if h.Instance != 0 {
		h.Commands.DestroyInstance(h.Instance)
		h.Instance = 0
	}
}
