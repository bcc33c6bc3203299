// Package container implements the generic slot-indexed object pool shared
// by every GPU-facing subsystem (canvases, graphics pipelines, buffer
// regions, textures, ...). Handles are generational indices: an index plus
// an epoch that increments every time the slot is recycled, so a stale
// handle into a destroyed-and-reused slot is rejected rather than silently
// aliasing unrelated data.
package container

import "sync"

// Status is the lifecycle state of a pooled object.
type Status int

const (
	StatusNone Status = iota
	StatusAlloc
	StatusInit
	StatusCreated
	StatusNeedUpdate
	StatusNeedDestroy
	StatusDestroyed
)

// Request is an optional upload/refill flag carried by an object header.
type Request int

const (
	RequestNotSet Request = iota
	RequestSet
	RequestUpload
	RequestRefill
)

// Header is embedded (by convention, as a field named Header) in every
// object stored in a Container.
type Header struct {
	Kind    int
	Status  Status
	ID      uint32
	Request Request
}

// ID is a type-safe generational handle: Index selects the slot, Epoch
// must match the slot's current epoch for the handle to resolve.
type ID[M any] struct {
	Index uint32
	Epoch uint32
}

// IsZero reports whether id is the zero value (never a valid allocation).
func (id ID[M]) IsZero() bool { return id.Index == 0 && id.Epoch == 0 }

type slot[T any] struct {
	item   T
	epoch  uint32
	status Status
}

// Container is a fixed-stride slot array that doubles on overflow and
// reuses destroyed slots. Stable pointers are invalidated only when the
// backing array grows, which is rare in steady state: most canvases,
// graphics pipelines, and buffer regions live until explicit destruction.
type Container[T any, M any] struct {
	mu    sync.Mutex
	slots []slot[T]
	free  []uint32
	next  uint32
}

// New creates an empty container with the given initial capacity.
func New[T any, M any](capacity int) *Container[T, M] {
	if capacity <= 0 {
		capacity = 16
	}
	return &Container[T, M]{slots: make([]slot[T], 0, capacity)}
}

// Alloc reserves a slot, preferring a destroyed slot's memory for reuse, and
// returns its handle alongside a pointer to the stored item for in-place
// initialization.
func (c *Container[T, M]) Alloc() (ID[M], *T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n := len(c.free); n > 0 {
		idx := c.free[n-1]
		c.free = c.free[:n-1]
		s := &c.slots[idx]
		var zero T
		s.item = zero
		s.epoch++
		s.status = StatusAlloc
		return ID[M]{Index: idx, Epoch: s.epoch}, &s.item
	}

	idx := uint32(len(c.slots))
	c.slots = append(c.slots, slot[T]{status: StatusAlloc, epoch: 1})
	return ID[M]{Index: idx, Epoch: 1}, &c.slots[idx].item
}

// Get resolves a handle to its item, validating the epoch. ok is false for
// a zero, out-of-range, destroyed, or stale (recycled) handle.
func (c *Container[T, M]) Get(id ID[M]) (item *T, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if id.IsZero() || int(id.Index) >= len(c.slots) {
		return nil, false
	}
	s := &c.slots[id.Index]
	if s.epoch != id.Epoch || s.status == StatusDestroyed || s.status == StatusNone {
		return nil, false
	}
	return &s.item, true
}

// SetStatus updates the status of an allocated slot.
func (c *Container[T, M]) SetStatus(id ID[M], status Status) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if int(id.Index) >= len(c.slots) {
		return
	}
	s := &c.slots[id.Index]
	if s.epoch == id.Epoch {
		s.status = status
	}
}

// Status returns the status of a handle, or StatusNone if it does not
// resolve.
func (c *Container[T, M]) Status(id ID[M]) Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	if int(id.Index) >= len(c.slots) {
		return StatusNone
	}
	s := &c.slots[id.Index]
	if s.epoch != id.Epoch {
		return StatusNone
	}
	return s.status
}

// Destroy marks a slot destroyed and returns it to the free list for reuse
// by a future Alloc. The slot's epoch is bumped on the next Alloc, not here,
// so in-flight readers that already resolved the handle this tick still see
// StatusDestroyed rather than racing a reused epoch.
func (c *Container[T, M]) Destroy(id ID[M]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if int(id.Index) >= len(c.slots) {
		return
	}
	s := &c.slots[id.Index]
	if s.epoch != id.Epoch || s.status == StatusDestroyed {
		return
	}
	s.status = StatusDestroyed
	c.free = append(c.free, id.Index)
}

// ForEach applies fn to every allocated (non-destroyed, non-none) item in
// slot order. fn may read or mutate the item in place.
func (c *Container[T, M]) ForEach(fn func(ID[M], *T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.slots {
		s := &c.slots[i]
		if s.status == StatusDestroyed || s.status == StatusNone {
			continue
		}
		fn(ID[M]{Index: uint32(i), Epoch: s.epoch}, &s.item)
	}
}

// DestroyAll applies fn to every allocated item (for teardown) and then
// marks the container empty.
func (c *Container[T, M]) DestroyAll(fn func(ID[M], *T)) {
	c.mu.Lock()
	ids := make([]ID[M], 0, len(c.slots))
	for i := range c.slots {
		s := &c.slots[i]
		if s.status == StatusDestroyed || s.status == StatusNone {
			continue
		}
		ids = append(ids, ID[M]{Index: uint32(i), Epoch: s.epoch})
	}
	c.mu.Unlock()

	for _, id := range ids {
		item, ok := c.Get(id)
		if !ok {
			continue
		}
		fn(id, item)
		c.Destroy(id)
	}
}

// Len returns the number of live (allocated, non-destroyed) slots.
func (c *Container[T, M]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for i := range c.slots {
		if c.slots[i].status != StatusDestroyed && c.slots[i].status != StatusNone {
			n++
		}
	}
	return n
}
