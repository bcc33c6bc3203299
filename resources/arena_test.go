// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package resources

import "testing"

func TestAlignUp(t *testing.T) {
	cases := []struct {
		v, align, want uint64
	}{
		{0, 256, 0},
		{1, 256, 256},
		{256, 256, 256},
		{257, 256, 512},
		{100, 1, 100},
		{100, 0, 100},
	}
	for _, c := range cases {
		if got := alignUp(c.v, c.align); got != c.want {
			t.Errorf("alignUp(%d, %d) = %d, want %d", c.v, c.align, got, c.want)
		}
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	cases := []struct{ v, want uint64 }{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{16 << 20, 16 << 20},
		{(16 << 20) + 1, 32 << 20},
		{32 << 20, 32 << 20},
	}
	for _, c := range cases {
		if got := nextPowerOfTwo(c.v); got != c.want {
			t.Errorf("nextPowerOfTwo(%d) = %d, want %d", c.v, got, c.want)
		}
	}
}

func TestArenaAllocRejectsOverflow(t *testing.T) {
	a := &arena{typ: Vertex, capacity: 128}
	if _, err := a.alloc(64); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := a.alloc(64); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := a.alloc(1); err == nil {
		t.Fatal("expected ErrArenaOverflow, got nil")
	}
}

func TestArenaAllocAlignsUniformOffsets(t *testing.T) {
	a := &arena{typ: Uniform, capacity: 4096}
	off1, err := a.alloc(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if off1 != 0 {
		t.Fatalf("first offset = %d, want 0", off1)
	}
	off2, err := a.alloc(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if off2 != uniformAlignment {
		t.Fatalf("second uniform offset = %d, want %d (rounded up from 10)", off2, uniformAlignment)
	}
}

func TestArenaAllocDoesNotAlignVertexOffsets(t *testing.T) {
	a := &arena{typ: Vertex, capacity: 4096}
	if _, err := a.alloc(10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	off2, err := a.alloc(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if off2 != 10 {
		t.Fatalf("second vertex offset = %d, want 10 (no alignment)", off2)
	}
}

func TestDefaultSizePerType(t *testing.T) {
	cases := []struct {
		typ  BufferType
		want uint64
	}{
		{Vertex, defaultArenaSize},
		{Index, defaultArenaSize},
		{Storage, defaultArenaSize},
		{Staging, defaultArenaSize},
		{Uniform, defaultUniformArenaSize},
		{UniformMappable, defaultUniformArenaSize},
	}
	for _, c := range cases {
		if got := defaultSize(c.typ); got != c.want {
			t.Errorf("defaultSize(%s) = %d, want %d", c.typ, got, c.want)
		}
	}
}

func TestBufferTypeString(t *testing.T) {
	cases := map[BufferType]string{
		Vertex:          "VERTEX",
		Index:           "INDEX",
		Uniform:         "UNIFORM",
		UniformMappable: "UNIFORM_MAPPABLE",
		Storage:         "STORAGE",
		Staging:         "STAGING",
	}
	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", int(typ), got, want)
		}
	}
}
