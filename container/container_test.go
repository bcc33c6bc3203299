package container

import "testing"

type canvasMarker struct{}

func TestAllocGetDestroy(t *testing.T) {
	c := New[int, canvasMarker](0)

	id, item := c.Alloc()
	*item = 42

	got, ok := c.Get(id)
	if !ok || *got != 42 {
		t.Fatalf("Get(%v) = %v, %v; want 42, true", id, got, ok)
	}

	c.Destroy(id)
	if _, ok := c.Get(id); ok {
		t.Fatalf("Get after Destroy should fail")
	}
}

func TestDestroyedSlotReuse(t *testing.T) {
	c := New[int, canvasMarker](0)

	id1, item1 := c.Alloc()
	*item1 = 1
	c.Destroy(id1)

	id2, item2 := c.Alloc()
	*item2 = 2

	if id1.Index != id2.Index {
		t.Fatalf("expected destroyed slot %d to be reused, got new slot %d", id1.Index, id2.Index)
	}
	if id1.Epoch == id2.Epoch {
		t.Fatalf("expected epoch to advance on reuse, both were %d", id1.Epoch)
	}

	if _, ok := c.Get(id1); ok {
		t.Fatalf("stale handle id1 must not resolve after slot reuse")
	}
	got, ok := c.Get(id2)
	if !ok || *got != 2 {
		t.Fatalf("Get(id2) = %v, %v; want 2, true", got, ok)
	}
}

func TestForEachSkipsDestroyed(t *testing.T) {
	tests := []struct {
		name    string
		values  []int
		destroy int // index into values to destroy, -1 for none
	}{
		{name: "three live", values: []int{1, 2, 3}, destroy: -1},
		{name: "middle destroyed", values: []int{1, 2, 3}, destroy: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New[int, canvasMarker](0)
			var ids []ID[canvasMarker]
			for _, v := range tt.values {
				id, item := c.Alloc()
				*item = v
				ids = append(ids, id)
			}
			if tt.destroy >= 0 {
				c.Destroy(ids[tt.destroy])
			}

			var seen []int
			c.ForEach(func(id ID[canvasMarker], item *int) {
				seen = append(seen, *item)
			})

			want := len(tt.values)
			if tt.destroy >= 0 {
				want--
			}
			if len(seen) != want {
				t.Fatalf("ForEach visited %d items, want %d", len(seen), want)
			}
			_ = c
		})
	}
}

func TestGetOnZeroHandle(t *testing.T) {
	c := New[int, canvasMarker](0)
	if _, ok := c.Get(ID[canvasMarker]{}); ok {
		t.Fatalf("zero handle must never resolve")
	}
}
