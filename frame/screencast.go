// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"github.com/dvzkit/dvz/event"
	"github.com/dvzkit/dvz/internal/vk"
)

// screencast drives the host-coherent copy-image capture path: after
// every present, the just-drawn swapchain image is copied out through
// the resource manager's staging arena and handed to the canvas's event
// queue as a TypeScreencast event. Grounded on resources.Context's
// existing DownloadTexture/DownloadImage staging-buffer round trip —
// screencast adds no GPU-memory management of its own, it only drives
// the existing one against an image Context doesn't own.
type screencast struct {
	canvas *Canvas
	index  uint64
}

func newScreencast(c *Canvas) *screencast {
	return &screencast{canvas: c}
}

// capture downloads swapchain image imgIdx and, if the canvas has an
// EventQueue installed, posts it as a TypeScreencast event. A queue-less
// canvas (common in headless/offscreen render-only use) simply discards
// the frame — ReadScreencast below is the pull-based alternative for
// that case.
func (s *screencast) capture(imgIdx int) {
	c := s.canvas
	if c.EventQueue == nil {
		return
	}

	rgba, err := s.download(imgIdx)
	if err != nil {
		Logger().Warn("screencast capture failed", "error", err)
		return
	}

	s.index++
	c.EventQueue.Send(event.Event{
		Type: event.TypeScreencast,
		Payload: event.ScreencastFrame{
			Index:    s.index,
			Time:     c.clk.Current(),
			Interval: c.clk.Interval(),
			Width:    int(c.extent.Width),
			Height:   int(c.extent.Height),
			RGBA:     rgba,
		},
	})
}

func (s *screencast) download(imgIdx int) ([]byte, error) {
	c := s.canvas
	extent := vk.Extent3D{Width: c.extent.Width, Height: c.extent.Height, Depth: 1}
	return c.res.DownloadImage(c.images[imgIdx], extent, vk.ImageLayoutPresentSrc)
}

func (s *screencast) destroy() {}

// ReadScreencast downloads the most recently presented image on demand,
// for callers that poll instead of subscribing to the event queue (e.g.
// a test harness or a one-shot CLI screenshot). It re-downloads the
// image every call; it is not a cache.
func (c *Canvas) ReadScreencast() ([]byte, error) {
	if !c.cfg.Screencast {
		return nil, ErrScreencastDisabled
	}
	// RunFrame doesn't retain which image index it last acquired, since
	// the event-queue path (capture, above) doesn't need it kept around.
	// Pull-based reads therefore only support the common single-image
	// (headless, offscreen) swapchain; multi-image canvases should
	// subscribe to EventQueue's TypeScreencast instead.
	if len(c.images) != 1 {
		return nil, ErrScreencastDisabled
	}
	extent := vk.Extent3D{Width: c.extent.Width, Height: c.extent.Height, Depth: 1}
	return c.res.DownloadImage(c.images[0], extent, vk.ImageLayoutPresentSrc)
}
