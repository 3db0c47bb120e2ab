// Package handle implements the generational slot maps backing the three
// opaque handle spaces exposed to the host: action sets, actions, and
// input sources. Handles are stable for the lifetime of the process and
// never alias: a freed slot's generation is bumped before reuse, so a
// stale handle from before the free is rejected rather than silently
// resolving to whatever reused the slot.
package handle

import "sync"

// pack folds a 1-based slot index and a generation into a single opaque
// uint64: high 32 bits index, low 32 bits generation. 0 is never
// produced and is reserved as the "invalid handle" sentinel.
func pack(index uint32, generation uint32) uint64 {
	return uint64(index)<<32 | uint64(generation)
}

func unpack(h uint64) (index uint32, generation uint32) {
	return uint32(h >> 32), uint32(h)
}

type slot[T any] struct {
	generation uint32
	occupied   bool
	value      T
}

// Table is a generational slot map: Alloc returns a handle that Get can
// resolve in O(1) until Free is called on it, after which the same
// handle (and any handle pointing at the reused index before its
// generation bump) resolves to "not found" rather than the new
// occupant.
type Table[T any] struct {
	mu    sync.RWMutex
	slots []slot[T]
	free  []uint32 // 0-based indices available for reuse
}

// NewTable returns an empty Table.
func NewTable[T any]() *Table[T] {
	return &Table[T]{}
}

// Alloc inserts value and returns its handle.
func (t *Table[T]) Alloc(value T) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	var idx uint32
	if n := len(t.free); n > 0 {
		idx = t.free[n-1]
		t.free = t.free[:n-1]
		t.slots[idx].occupied = true
		t.slots[idx].value = value
	} else {
		idx = uint32(len(t.slots))
		t.slots = append(t.slots, slot[T]{generation: 1, occupied: true, value: value})
	}
	return pack(idx+1, t.slots[idx].generation)
}

// Get resolves h to its value. ok is false for handle 0, an out-of-range
// index, a generation mismatch (stale handle), or a freed slot.
func (t *Table[T]) Get(h uint64) (value T, ok bool) {
	if h == 0 {
		return value, false
	}
	packedIdx, gen := unpack(h)
	if packedIdx == 0 {
		return value, false
	}
	idx := packedIdx - 1

	t.mu.RLock()
	defer t.mu.RUnlock()

	if int(idx) >= len(t.slots) {
		return value, false
	}
	s := &t.slots[idx]
	if !s.occupied || s.generation != gen {
		return value, false
	}
	return s.value, true
}

// Set overwrites the value stored at h's slot, if h still resolves.
// Returns false under the same conditions as Get.
func (t *Table[T]) Set(h uint64, value T) bool {
	if h == 0 {
		return false
	}
	packedIdx, gen := unpack(h)
	if packedIdx == 0 {
		return false
	}
	idx := packedIdx - 1

	t.mu.Lock()
	defer t.mu.Unlock()

	if int(idx) >= len(t.slots) {
		return false
	}
	s := &t.slots[idx]
	if !s.occupied || s.generation != gen {
		return false
	}
	s.value = value
	return true
}

// Free releases h's slot for reuse by a future Alloc, bumping its
// generation so any outstanding copy of h becomes stale.
func (t *Table[T]) Free(h uint64) bool {
	if h == 0 {
		return false
	}
	packedIdx, gen := unpack(h)
	if packedIdx == 0 {
		return false
	}
	idx := packedIdx - 1

	t.mu.Lock()
	defer t.mu.Unlock()

	if int(idx) >= len(t.slots) {
		return false
	}
	s := &t.slots[idx]
	if !s.occupied || s.generation != gen {
		return false
	}
	var zero T
	s.occupied = false
	s.value = zero
	s.generation++
	t.free = append(t.free, idx)
	return true
}

// Len returns the number of currently occupied slots.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.slots) - len(t.free)
}

// Range calls fn for every occupied slot, in index order. fn must not
// call back into the Table.
func (t *Table[T]) Range(fn func(h uint64, value T)) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for i := range t.slots {
		if t.slots[i].occupied {
			fn(pack(uint32(i)+1, t.slots[i].generation), t.slots[i].value)
		}
	}
}
