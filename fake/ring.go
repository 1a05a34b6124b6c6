// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake implementations for testing and development.
// Provides predictable, controllable behavior for the core interfaces.

package fake

import (
	"sync"

	"github.com/momentics/hioload-ring/api"
)

// Ring is a mutex-guarded reference implementation of api.OverwriteRing.
//
// Unlike the production ring it is safe from any number of goroutines and
// trades throughput for obviousness: retained elements live at the front
// of a plain slice. Intended for tests of code that consumes the
// interface, and as an executable statement of the eviction semantics.
type Ring[T any] struct {
	mu       sync.Mutex
	capacity int
	items    []T
	totalPut uint64
	totalGet uint64
	dropped  uint64
}

var _ api.OverwriteRing[any] = (*Ring[any])(nil)

// NewRing creates a fake ring. Capacity follows production rules:
// a power of two, at least 2. Panics otherwise.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 2 || capacity&(capacity-1) != 0 {
		panic(api.ErrInvalidCapacity)
	}
	return &Ring[T]{capacity: capacity}
}

// Put appends v, evicting the oldest element when full.
func (r *Ring[T]) Put(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.put(v)
}

// PutSlice appends all values of vs in order.
func (r *Ring[T]) PutSlice(vs []T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range vs {
		r.put(v)
	}
}

func (r *Ring[T]) put(v T) {
	if len(r.items) == r.capacity {
		r.items = r.items[1:]
		r.dropped++
	}
	r.items = append(r.items, v)
	r.totalPut++
}

// Get removes and returns the oldest element.
func (r *Ring[T]) Get() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var zero T
	if len(r.items) == 0 {
		return zero, false
	}
	v := r.items[0]
	r.items = r.items[1:]
	r.totalGet++
	return v, true
}

// Peek returns the oldest element without consuming it.
func (r *Ring[T]) Peek() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var zero T
	if len(r.items) == 0 {
		return zero, false
	}
	return r.items[0], true
}

// Drain removes up to len(dst) elements into dst, oldest first.
func (r *Ring[T]) Drain(dst []T) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := copy(dst, r.items)
	r.items = r.items[n:]
	r.totalGet += uint64(n)
	return n
}

// Snapshot copies up to len(dst) elements without consuming them.
func (r *Ring[T]) Snapshot(dst []T) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return copy(dst, r.items)
}

// Count returns the number of retained elements.
func (r *Ring[T]) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// Cap returns the fixed capacity.
func (r *Ring[T]) Cap() int { return r.capacity }

// Full reports whether occupancy has reached capacity.
func (r *Ring[T]) Full() bool { return r.Count() == r.capacity }

// Empty reports whether no elements remain.
func (r *Ring[T]) Empty() bool { return r.Count() == 0 }

// Clear discards retained elements, preserving counters.
func (r *Ring[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
}

// Reset returns the ring to its construction state.
func (r *Ring[T]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
	r.totalPut, r.totalGet, r.dropped = 0, 0, 0
}

// Stats returns a snapshot of the ring's counters.
func (r *Ring[T]) Stats() api.Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return api.Stats{
		Cap:      r.capacity,
		Len:      len(r.items),
		TotalPut: r.totalPut,
		TotalGet: r.totalGet,
		Dropped:  r.dropped,
	}
}
