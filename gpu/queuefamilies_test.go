// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"testing"

	"github.com/dvzkit/dvz/internal/vk"
)

func TestDiscoverQueueFamiliesNoFamiliesIsError(t *testing.T) {
	if _, err := DiscoverQueueFamilies(nil, nil); err != ErrNoQueueFamily {
		t.Fatalf("got err %v, want ErrNoQueueFamily", err)
	}
}

func TestDiscoverQueueFamiliesNoGraphicsIsError(t *testing.T) {
	props := []vk.QueueFamilyProperties{
		{QueueFlags: vk.QueueComputeBit, QueueCount: 1},
	}
	if _, err := DiscoverQueueFamilies(props, nil); err != ErrNoQueueFamily {
		t.Fatalf("got err %v, want ErrNoQueueFamily", err)
	}
}

func TestDiscoverQueueFamiliesSingleCombinedFamily(t *testing.T) {
	props := []vk.QueueFamilyProperties{
		{QueueFlags: vk.QueueGraphicsBit | vk.QueueComputeBit | vk.QueueTransferBit, QueueCount: 1},
	}
	q, err := DiscoverQueueFamilies(props, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Render != 0 || q.Compute != 0 || q.Transfer != 0 || q.Present != 0 {
		t.Fatalf("expected every capability to coalesce onto family 0, got %+v", q)
	}
	if q.TransferIsDedicated || q.ComputeIsDedicated {
		t.Fatalf("single combined family should not report dedicated queues: %+v", q)
	}
	if !q.RenderPresentSame {
		t.Fatalf("expected render/present to coalesce with nil presentSupport")
	}
	if got := q.Unique(); len(got) != 1 || got[0] != 0 {
		t.Fatalf("Unique() = %v, want [0]", got)
	}
}

func TestDiscoverQueueFamiliesPrefersDedicatedTransfer(t *testing.T) {
	props := []vk.QueueFamilyProperties{
		{QueueFlags: vk.QueueGraphicsBit | vk.QueueComputeBit | vk.QueueTransferBit, QueueCount: 1},
		{QueueFlags: vk.QueueTransferBit, QueueCount: 1},
	}
	q, err := DiscoverQueueFamilies(props, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Render != 0 {
		t.Fatalf("expected render on family 0, got %d", q.Render)
	}
	if q.Transfer != 1 || !q.TransferIsDedicated {
		t.Fatalf("expected dedicated transfer family 1, got %+v", q)
	}
}

func TestDiscoverQueueFamiliesPrefersDedicatedCompute(t *testing.T) {
	props := []vk.QueueFamilyProperties{
		{QueueFlags: vk.QueueGraphicsBit | vk.QueueTransferBit, QueueCount: 1},
		{QueueFlags: vk.QueueComputeBit, QueueCount: 1},
	}
	q, err := DiscoverQueueFamilies(props, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Compute != 1 || !q.ComputeIsDedicated {
		t.Fatalf("expected dedicated compute family 1, got %+v", q)
	}
}

func TestDiscoverQueueFamiliesPresentOnSeparateFamily(t *testing.T) {
	props := []vk.QueueFamilyProperties{
		{QueueFlags: vk.QueueGraphicsBit | vk.QueueComputeBit | vk.QueueTransferBit, QueueCount: 1},
		{QueueFlags: vk.QueueTransferBit, QueueCount: 1},
	}
	presentSupport := func(family uint32) bool { return family == 1 }

	q, err := DiscoverQueueFamilies(props, presentSupport)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Present != 1 || q.RenderPresentSame {
		t.Fatalf("expected present on family 1, not coalesced with render: %+v", q)
	}
}

func TestDiscoverQueueFamiliesNoPresentSupportIsError(t *testing.T) {
	props := []vk.QueueFamilyProperties{
		{QueueFlags: vk.QueueGraphicsBit, QueueCount: 1},
	}
	presentSupport := func(uint32) bool { return false }

	if _, err := DiscoverQueueFamilies(props, presentSupport); err != ErrNoQueueFamily {
		t.Fatalf("got err %v, want ErrNoQueueFamily", err)
	}
}

func TestQueueFamiliesUniqueDeduplicates(t *testing.T) {
	q := QueueFamilies{Render: 0, Present: 0, Compute: 1, Transfer: 2}
	got := q.Unique()
	want := map[uint32]bool{0: true, 1: true, 2: true}
	if len(got) != 3 {
		t.Fatalf("Unique() = %v, want 3 distinct entries", got)
	}
	for _, f := range got {
		if !want[f] {
			t.Fatalf("unexpected family %d in %v", f, got)
		}
	}
}
