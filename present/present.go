// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package present implements the request router of spec.md §4.12: a
// Presenter that owns the resource manager and frame loop (the
// "Renderer" half) plus backend windows (the "Client" half), and maps
// a small tagged-request vocabulary onto resources.Context and
// frame.Canvas operations. Grounded on core/command.go + core/queue.go's
// "validate then translate to HAL calls" shape — the teacher's core
// package is itself exactly a request router from a public API onto a
// HAL — and on cmd/vulkan-triangle/main.go's resize→re-record flow for
// the WINDOW_RESIZE handling.
//
// Concrete graphics-pipeline objects (VkPipeline, shader modules) are
// out of scope: spec.md §1 places "specific graphics shaders" with an
// external collaborator, and no shader-translation dependency is wired
// in (see DESIGN.md). A Graphics here tracks the state a pipeline would
// need — vertex source, descriptor bindings, draw parameters — and
// record_draw emits vkCmdBindVertexBuffers/vkCmdDraw directly against
// the canvas's render pass; binding an actual VkPipeline is the
// responsibility of whatever supplies compiled shaders.
package present

import (
	"fmt"
	"sync"

	"github.com/dvzkit/dvz/backend"
	"github.com/dvzkit/dvz/container"
	"github.com/dvzkit/dvz/frame"
	"github.com/dvzkit/dvz/gpu"
	"github.com/dvzkit/dvz/internal/vk"
	"github.com/dvzkit/dvz/resources"
)

type canvasMarker struct{}
type graphicsMarker struct{}
type datMarker struct{}

// CanvasID, GraphicsID, and DatID are the generational handles the
// request table's create_canvas/create_graphics/create_dat hand back.
type (
	CanvasID   = container.ID[canvasMarker]
	GraphicsID = container.ID[graphicsMarker]
	DatID      = container.ID[datMarker]
)

// CanvasFlags mirrors the create_canvas flags of spec.md §4.12.
type CanvasFlags uint32

const (
	// CanvasFlagScreencast enables the host-coherent screencast capture
	// path on the underlying frame.Canvas.
	CanvasFlagScreencast CanvasFlags = 1 << iota
)

// GraphicsKind names the category of draw a Graphics object performs.
// Spec.md leaves the concrete set of kinds to the (out-of-scope)
// graphics-shader layer; Presenter only needs kind as an opaque tag it
// can hand back to the caller and log.
type GraphicsKind int

// command is one entry in a canvas's record script, built by
// RecordViewport/RecordDraw and replayed by Presenter.replay whenever
// frame.Canvas needs a swapchain image re-recorded.
type command func(cb vk.CommandBuffer, imageIndex int, p *Presenter) error

type canvasEntry struct {
	canvas    *frame.Canvas
	win       backend.Window
	recCmds   []command
	recording bool
}

type graphicsEntry struct {
	canvas   CanvasID
	kind     GraphicsKind
	flags    uint32
	vertex   DatID
	bindings map[uint32]DatID
}

type datEntry struct {
	typ    resources.BufferType
	region resources.BufferRegion
}

// Presenter is the request router of spec.md §4.12. One Presenter is
// created per GPU; it owns every canvas/graphics/dat allocated against
// that GPU's resources.Context.
type Presenter struct {
	dev *gpu.GPU
	res *resources.Context

	mu       sync.Mutex
	canvases *container.Container[canvasEntry, canvasMarker]
	graphics *container.Container[graphicsEntry, graphicsMarker]
	dats     *container.Container[datEntry, datMarker]
}

// New creates a Presenter bound to one GPU's resource manager.
func New(dev *gpu.GPU) *Presenter {
	return &Presenter{
		dev:      dev,
		res:      dev.Context,
		canvases: container.New[canvasEntry, canvasMarker](4),
		graphics: container.New[graphicsEntry, graphicsMarker](16),
		dats:     container.New[datEntry, datMarker](64),
	}
}

// CreateCanvas implements create_canvas(w,h,clear,flags): it asks win
// for a VkSurfaceKHR, creates its swapchain via frame.NewCanvas, and
// registers the refill hook (Presenter.replay) spec.md §4.12 calls for.
func (p *Presenter) CreateCanvas(win backend.Window, width, height uint32, presentMode vk.PresentModeKHR, flags CanvasFlags) (CanvasID, error) {
	surface, err := win.CreateSurface(p.dev.InstanceHandle())
	if err != nil {
		return CanvasID{}, fmt.Errorf("present: create_canvas: %w", err)
	}

	cfg := frame.Config{
		Format:      vk.FormatB8G8R8A8Unorm,
		ColorSpace:  vk.ColorSpaceSRGBNonlinear,
		PresentMode: presentMode,
		Width:       width,
		Height:      height,
		Screencast:  flags&CanvasFlagScreencast != 0,
	}

	canvas, err := frame.NewCanvas(p.dev, p.res, surface, true, cfg)
	if err != nil {
		return CanvasID{}, fmt.Errorf("present: create_canvas: %w", err)
	}
	canvas.GetFramebufferSize = func() (uint32, uint32) {
		w, h := win.FramebufferSize()
		return uint32(w), uint32(h)
	}

	id, entry := p.canvases.Alloc()
	entry.canvas = canvas
	entry.win = win
	canvas.RecordFunc = func(cb vk.CommandBuffer, imageIndex int) error {
		return p.replay(id, cb, imageIndex)
	}
	p.canvases.SetStatus(id, container.StatusCreated)
	return id, nil
}

// Canvas returns the live frame.Canvas behind id, for callers (client)
// that need to drive RunFrame directly.
func (p *Presenter) Canvas(id CanvasID) (*frame.Canvas, bool) {
	e, ok := p.canvases.Get(id)
	if !ok {
		return nil, false
	}
	return e.canvas, true
}

// DeleteCanvas implements delete_canvas(id): wait the GPU idle, then
// destroy every Vulkan object the canvas owns.
func (p *Presenter) DeleteCanvas(id CanvasID) error {
	e, ok := p.canvases.Get(id)
	if !ok {
		return ErrInvalidCanvas
	}
	p.dev.WaitIdle()
	e.canvas.Destroy()
	p.canvases.Destroy(id)
	return nil
}

// CreateGraphics implements create_graphics(canvas_id, kind, flags).
func (p *Presenter) CreateGraphics(canvasID CanvasID, kind GraphicsKind, flags uint32) (GraphicsID, error) {
	if _, ok := p.canvases.Get(canvasID); !ok {
		return GraphicsID{}, ErrInvalidCanvas
	}
	id, entry := p.graphics.Alloc()
	entry.canvas = canvasID
	entry.kind = kind
	entry.flags = flags
	entry.bindings = make(map[uint32]DatID)
	p.graphics.SetStatus(id, container.StatusCreated)
	return id, nil
}

// CreateDat implements create_dat(type, size, flags): a single
// sub-region on the named typed arena.
func (p *Presenter) CreateDat(typ resources.BufferType, size uint64, _ uint32) (DatID, error) {
	region, err := p.res.Buffers(typ, 1, size)
	if err != nil {
		return DatID{}, fmt.Errorf("present: create_dat: %w", err)
	}
	id, entry := p.dats.Alloc()
	entry.typ = typ
	entry.region = region
	p.dats.SetStatus(id, container.StatusCreated)
	return id, nil
}

// SetVertex implements set_vertex(graphics_id, dat_id): records the
// vertex buffer graphics draws will bind at draw time, then schedules a
// refill per spec.md §8's binding-mutation invariant.
func (p *Presenter) SetVertex(graphicsID GraphicsID, datID DatID) error {
	g, ok := p.graphics.Get(graphicsID)
	if !ok {
		return ErrInvalidGraphics
	}
	if _, ok := p.dats.Get(datID); !ok {
		return ErrInvalidDat
	}
	g.vertex = datID
	p.requestRefill(g.canvas)
	return nil
}

// BindDat implements bind_dat(graphics_id, slot, dat_id).
func (p *Presenter) BindDat(graphicsID GraphicsID, slot uint32, datID DatID) error {
	g, ok := p.graphics.Get(graphicsID)
	if !ok {
		return ErrInvalidGraphics
	}
	if _, ok := p.dats.Get(datID); !ok {
		return ErrInvalidDat
	}
	g.bindings[slot] = datID
	p.requestRefill(g.canvas)
	return nil
}

// UploadDat implements upload_dat(dat_id, offset, size, ptr): a
// stage-and-copy into the region through resources.Context.
func (p *Presenter) UploadDat(datID DatID, offset uint64, data []byte) error {
	d, ok := p.dats.Get(datID)
	if !ok {
		return ErrInvalidDat
	}
	if offset+uint64(len(data)) > d.region.Size {
		return &resources.ValidationError{Resource: "dat", Field: "offset", Message: "upload exceeds region size"}
	}
	return p.res.UploadBuffer(d.region.Buffer, d.region.SliceOffset(0)+offset, data)
}

// DownloadDat reads back count bytes at offset from the region — not in
// the request table by name, but the read half every upload_dat implies
// and every consumer of an out-parameter dat needs.
func (p *Presenter) DownloadDat(datID DatID, offset, size uint64) ([]byte, error) {
	d, ok := p.dats.Get(datID)
	if !ok {
		return nil, ErrInvalidDat
	}
	return p.res.DownloadBuffer(d.region.Buffer, d.region.SliceOffset(0)+offset, size)
}

// RecordBegin implements record_begin(canvas_id): starts a fresh record
// script, discarding whatever was recorded before.
func (p *Presenter) RecordBegin(canvasID CanvasID) error {
	e, ok := p.canvases.Get(canvasID)
	if !ok {
		return ErrInvalidCanvas
	}
	e.recCmds = e.recCmds[:0]
	e.recording = true
	return nil
}

// RecordViewport implements record_viewport(canvas_id, x, y, w, h).
func (p *Presenter) RecordViewport(canvasID CanvasID, x, y, width, height float32) error {
	e, ok := p.canvases.Get(canvasID)
	if !ok {
		return ErrInvalidCanvas
	}
	if !e.recording {
		return ErrNotRecording
	}
	vp := vk.Viewport{X: x, Y: y, Width: width, Height: height, MinDepth: 0, MaxDepth: 1}
	e.recCmds = append(e.recCmds, func(cb vk.CommandBuffer, _ int, p *Presenter) error {
		p.dev.CommandsHandle().CmdSetViewport(cb, 0, []vk.Viewport{vp})
		return nil
	})
	return nil
}

// RecordDraw implements record_draw(canvas_id, graphics_id, vertex_count,
// instance_count): binds the graphics object's vertex dat and issues
// vkCmdDraw.
func (p *Presenter) RecordDraw(canvasID CanvasID, graphicsID GraphicsID, vertexCount, instanceCount uint32) error {
	e, ok := p.canvases.Get(canvasID)
	if !ok {
		return ErrInvalidCanvas
	}
	if !e.recording {
		return ErrNotRecording
	}
	g, ok := p.graphics.Get(graphicsID)
	if !ok {
		return ErrInvalidGraphics
	}
	if g.canvas != canvasID {
		return ErrInvalidGraphics
	}

	e.recCmds = append(e.recCmds, func(cb vk.CommandBuffer, _ int, pr *Presenter) error {
		vd, ok := pr.dats.Get(g.vertex)
		if !ok {
			Logger().Warn("record_draw: graphics has no bound vertex dat, skipping", "graphics_id", graphicsID.Index)
			return nil
		}
		buffers := []vk.Buffer{vd.region.Buffer}
		offsets := []uint64{vd.region.SliceOffset(0)}
		cmds := pr.dev.CommandsHandle()
		cmds.CmdBindVertexBuffers(cb, 0, buffers, offsets)
		cmds.CmdDraw(cb, vertexCount, instanceCount, 0, 0)
		return nil
	})
	return nil
}

// RecordEnd implements record_end(canvas_id): closes the current record
// script and schedules exactly one refill per swapchain image, matching
// spec.md §8's refill invariant.
func (p *Presenter) RecordEnd(canvasID CanvasID) error {
	e, ok := p.canvases.Get(canvasID)
	if !ok {
		return ErrInvalidCanvas
	}
	if !e.recording {
		return ErrNotRecording
	}
	e.recording = false
	p.requestRefill(canvasID)
	return nil
}

// requestRefill marks the named canvas's frame.Canvas as needing every
// swapchain image's command buffer re-recorded.
func (p *Presenter) requestRefill(canvasID CanvasID) {
	if e, ok := p.canvases.Get(canvasID); ok {
		e.canvas.RequestRefill()
	}
}

// Resize implements the WINDOW_RESIZE re-record behavior of spec.md
// §4.12: the swapchain itself is recreated lazily by frame.Canvas on
// the next RunFrame (it reads the surface's current extent), so Resize
// only needs to re-schedule the record script.
func (p *Presenter) Resize(canvasID CanvasID) error {
	p.requestRefill(canvasID)
	return nil
}

// replay re-executes a canvas's record script inside the render pass
// instance frame.Canvas has already begun for this image, per §4.12's
// "router maps requests onto frame-loop operations."
func (p *Presenter) replay(canvasID CanvasID, cb vk.CommandBuffer, imageIndex int) error {
	e, ok := p.canvases.Get(canvasID)
	if !ok {
		return ErrInvalidCanvas
	}
	for _, c := range e.recCmds {
		if err := c(cb, imageIndex, p); err != nil {
			return err
		}
	}
	return nil
}
