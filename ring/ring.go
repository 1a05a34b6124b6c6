// File: ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Buffer adapts the internal overwrite engine as the public ring type.

package ring

import (
	"fmt"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/internal/concurrency"
)

// Buffer is a single-producer/single-consumer overwrite ring of fixed
// power-of-two capacity.
type Buffer[T any] struct {
	*concurrency.OverwriteRing[T]
}

// Ensure compile-time interface compliance.
var (
	_ api.OverwriteRing[any] = (*Buffer[any])(nil)
	_ api.Ring[any]          = (*Buffer[any])(nil)
)

// New creates a Buffer with the given capacity. The capacity must be a
// power of two and at least 2; anything else fails with
// api.ErrInvalidCapacity.
func New[T any](capacity int) (*Buffer[T], error) {
	if capacity < 2 || capacity&(capacity-1) != 0 {
		return nil, fmt.Errorf("ring: capacity %d: %w", capacity, api.ErrInvalidCapacity)
	}
	return &Buffer[T]{OverwriteRing: concurrency.NewOverwriteRing[T](uint64(capacity))}, nil
}

// Must is New for statically known capacities; it panics on error.
func Must[T any](capacity int) *Buffer[T] {
	b, err := New[T](capacity)
	if err != nil {
		panic(err)
	}
	return b
}

// Enqueue implements api.Ring. An overwrite ring cannot refuse a value,
// so Enqueue always reports true; when the ring is full the oldest
// unread element is evicted instead.
func (b *Buffer[T]) Enqueue(item T) bool {
	b.Put(item)
	return true
}

// Dequeue implements api.Ring.
func (b *Buffer[T]) Dequeue() (T, bool) {
	return b.Get()
}

// Len implements api.Ring; it reports Count under the queue contract.
func (b *Buffer[T]) Len() int {
	return b.Count()
}
