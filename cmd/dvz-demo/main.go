// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Command dvz-demo is a full integration test for the Vulkan-backed
// interactive visualization runtime: it opens a window, records a
// single static triangle through the request router, and drives the
// frame loop until the window closes. Grounded on
// cmd/vulkan-triangle/main.go's step-numbered bring-up sequence, adapted
// onto backend/gpu/present/client instead of a direct HAL/core call
// chain.
package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/dvzkit/dvz/backend"
	"github.com/dvzkit/dvz/client"
	"github.com/dvzkit/dvz/event"
	"github.com/dvzkit/dvz/gpu"
	"github.com/dvzkit/dvz/present"
	"github.com/dvzkit/dvz/resources"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "dvz demo"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fmt.Println("1. Initializing backend...")
	adapter := backend.NewGLFWAdapter()
	if err := adapter.Init(); err != nil {
		return fmt.Errorf("init backend: %w", err)
	}
	defer adapter.Terminate()

	fmt.Println("2. Creating Vulkan instance...")
	host, err := gpu.NewHost("dvz-demo", adapter.RequiredExtensions(), false)
	if err != nil {
		return fmt.Errorf("create host: %w", err)
	}
	defer host.Destroy()

	fmt.Println("3. Probing present support...")
	dev, err := openDeviceForPresenting(adapter, host)
	if err != nil {
		return fmt.Errorf("open device: %w", err)
	}

	fmt.Println("4. Creating presenter and window...")
	presenter := present.New(dev)
	events := event.NewQueue(256)
	go events.Run(context.Background())
	defer events.Close()

	c := client.New(adapter, presenter, events)
	defer c.Close()

	win, err := c.CreateWindow(windowWidth, windowHeight, windowTitle, 0, 0)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	fmt.Println("5. Recording a triangle...")
	if err := recordTriangle(presenter, win.CanvasID()); err != nil {
		return fmt.Errorf("record triangle: %w", err)
	}

	fmt.Println()
	fmt.Println("=== Running ===")
	fmt.Println("Close the window to exit")
	fmt.Println()

	frameCount := 0
	start := time.Now()
	for !win.ShouldClose() {
		c.PollEvents()

		if err := c.RunFrame(win); err != nil {
			fmt.Fprintf(os.Stderr, "frame error: %v\n", err)
			continue
		}

		frameCount++
		if frameCount%60 == 0 {
			elapsed := time.Since(start).Seconds()
			fmt.Printf("Rendered %d frames (%.1f FPS)\n", frameCount, float64(frameCount)/elapsed)
		}
	}

	return c.DestroyWindow(win)
}

// openDeviceForPresenting answers gpu.Open's presentSupport callback by
// creating a throwaway hidden window purely to get a VkSurfaceKHR, per
// spec.md §4.3's documented discovery path (gpu.Open's own doc comment:
// "the caller is expected to have already used such a window"). The
// probe window is destroyed once the device is open; every canvas
// created afterward gets its own real surface from its own window.
func openDeviceForPresenting(adapter backend.Adapter, host *gpu.Host) (*gpu.GPU, error) {
	probe, err := adapter.CreateWindow(10, 10, "dvz-probe", backend.FlagHidden)
	if err != nil {
		return nil, fmt.Errorf("create probe window: %w", err)
	}
	defer adapter.DestroyWindow(probe)

	surface, err := probe.CreateSurface(host.Instance)
	if err != nil {
		return nil, fmt.Errorf("create probe surface: %w", err)
	}

	pd := host.PhysicalDevices[0]
	presentSupport := func(family uint32) bool {
		ok, _ := host.Commands.GetPhysicalDeviceSurfaceSupportKHR(pd, family, surface)
		return ok
	}

	return gpu.Open(host, 0, presentSupport, nil)
}

// recordTriangle builds a three-vertex dat (2D position + RGB color,
// interleaved as spec.md §4.12's vertex layout expects), binds it to a
// single Graphics object, and records the canvas's one-time draw script.
func recordTriangle(p *present.Presenter, canvasID present.CanvasID) error {
	gfx, err := p.CreateGraphics(canvasID, 0, 0)
	if err != nil {
		return fmt.Errorf("create_graphics: %w", err)
	}

	vertices := triangleVertexBytes()
	dat, err := p.CreateDat(resources.Vertex, uint64(len(vertices)), 0)
	if err != nil {
		return fmt.Errorf("create_dat: %w", err)
	}
	if err := p.UploadDat(dat, 0, vertices); err != nil {
		return fmt.Errorf("upload_dat: %w", err)
	}
	if err := p.SetVertex(gfx, dat); err != nil {
		return fmt.Errorf("set_vertex: %w", err)
	}

	if err := p.RecordBegin(canvasID); err != nil {
		return fmt.Errorf("record_begin: %w", err)
	}
	if err := p.RecordViewport(canvasID, 0, 0, windowWidth, windowHeight); err != nil {
		return fmt.Errorf("record_viewport: %w", err)
	}
	if err := p.RecordDraw(canvasID, gfx, 3, 1); err != nil {
		return fmt.Errorf("record_draw: %w", err)
	}
	return p.RecordEnd(canvasID)
}

// triangleVertexBytes packs three (x, y, r, g, b) float32 vertices for a
// unit-circumscribed triangle centered at the origin.
func triangleVertexBytes() []byte {
	type vertex struct {
		x, y    float32
		r, g, b float32
	}
	verts := [3]vertex{
		{x: 0, y: -1, r: 1, g: 0, b: 0},
		{x: float32(math.Sqrt(3) / 2), y: 0.5, r: 0, g: 1, b: 0},
		{x: float32(-math.Sqrt(3) / 2), y: 0.5, r: 0, g: 0, b: 1},
	}

	buf := make([]byte, 0, len(verts)*5*4)
	for _, v := range verts {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.x))
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.y))
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.r))
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.g))
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.b))
	}
	return buf
}
