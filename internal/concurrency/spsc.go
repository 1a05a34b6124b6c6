// File: internal/concurrency/spsc.go
// Package concurrency implements the lock-free overwrite ring engine.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// OverwriteRing is a bounded circular buffer with atomic absolute
// cursors, padded to prevent false sharing. The producer never blocks:
// once occupancy reaches capacity, each write lands on the slot of the
// oldest unread element, which is lost. The read cursor is corrected
// lazily on the consumer side when writes have outrun reads by a full
// lap.

package concurrency

import (
	"sync/atomic"

	"github.com/momentics/hioload-ring/api"
)

const cacheLinePad = 64

// OverwriteRing is a single-producer/single-consumer ring with
// overwrite-on-full semantics. Cursors are absolute element counts;
// the physical slot of absolute position p is p & mask. Cursors
// pre-increment before store and load, so position 0 never holds data
// and the first element written lives in slot 1.
type OverwriteRing[T any] struct {
	write   atomic.Uint64 // producer cursor: elements ever written
	dropped atomic.Uint64 // producer: unread elements evicted by overwrite
	_       [cacheLinePad]byte
	read    atomic.Uint64 // consumer cursor: absolute read position
	got     atomic.Uint64 // consumer: elements returned to callers
	_       [cacheLinePad]byte
	mask    uint64
	slots   []T
}

// NewOverwriteRing allocates an engine with exactly capacity slots.
// Capacity must be a power of two and at least 2; callers validate,
// this constructor only asserts.
func NewOverwriteRing[T any](capacity uint64) *OverwriteRing[T] {
	if capacity < 2 || capacity&(capacity-1) != 0 {
		panic("concurrency: overwrite ring capacity must be a power of two >= 2")
	}
	return &OverwriteRing[T]{
		mask:  capacity - 1,
		slots: make([]T, capacity),
	}
}

// Put appends v. Never fails, never blocks. The slot is written before
// the cursor is published so the consumer cannot observe an unwritten
// slot. Producer-side only.
func (r *OverwriteRing[T]) Put(v T) {
	w := r.write.Load() + 1
	if w-r.read.Load() > uint64(len(r.slots)) {
		r.dropped.Add(1)
	}
	r.slots[w&r.mask] = v
	r.write.Store(w)
}

// PutSlice appends all values of vs in order, as if by repeated Put.
// When len(vs) exceeds capacity only the trailing capacity values are
// stored (the earlier ones would be evicted before ever becoming
// readable), but the write cursor still advances by the full length so
// history and drop accounting stay exact. Producer-side only.
func (r *OverwriteRing[T]) PutSlice(vs []T) {
	k := uint64(len(vs))
	if k == 0 {
		return
	}
	n := uint64(len(r.slots))
	w := r.write.Load()
	if lag := w - r.read.Load(); lag >= n {
		r.dropped.Add(k)
	} else if free := n - lag; k > free {
		r.dropped.Add(k - free)
	}
	src := vs
	if k > n {
		src = vs[k-n:]
	}
	pos := w + k - uint64(len(src))
	for i := range src {
		pos++
		r.slots[pos&r.mask] = src[i]
	}
	r.write.Store(w + k)
}

// Get removes and returns the oldest unread element. A read from an
// empty ring misses with ok=false and changes nothing. Otherwise, if
// writes have outrun reads by at least a full buffer, the read cursor
// first fast-forwards to the oldest element still physically present.
// The slot is read before the new cursor is published. Consumer-side
// only.
func (r *OverwriteRing[T]) Get() (T, bool) {
	var zero T
	p := r.read.Load()
	w := r.write.Load()
	if w == p {
		return zero, false
	}
	if w-p >= uint64(len(r.slots)) {
		p = w - uint64(len(r.slots))
	}
	p++
	v := r.slots[p&r.mask]
	r.read.Store(p)
	r.got.Add(1)
	return v, true
}

// Peek returns the element Get would return next without consuming it.
// The fast-forward correction is applied to a local copy of the read
// cursor, so Peek never mutates the ring. Consumer-side only.
func (r *OverwriteRing[T]) Peek() (T, bool) {
	var zero T
	p := r.read.Load()
	w := r.write.Load()
	if w == p {
		return zero, false
	}
	if w-p >= uint64(len(r.slots)) {
		p = w - uint64(len(r.slots))
	}
	return r.slots[(p+1)&r.mask], true
}

// Drain removes up to len(dst) elements into dst, oldest first, and
// returns the number copied. Consumer-side only.
func (r *OverwriteRing[T]) Drain(dst []T) int {
	n := 0
	for n < len(dst) {
		v, ok := r.Get()
		if !ok {
			break
		}
		dst[n] = v
		n++
	}
	return n
}

// Snapshot copies up to len(dst) unread elements into dst, oldest
// first, without consuming them. Returns the number copied.
// Consumer-side only.
func (r *OverwriteRing[T]) Snapshot(dst []T) int {
	p := r.read.Load()
	w := r.write.Load()
	if w-p >= uint64(len(r.slots)) {
		p = w - uint64(len(r.slots))
	}
	n := 0
	for n < len(dst) && p != w {
		p++
		dst[n] = r.slots[p&r.mask]
		n++
	}
	return n
}

// Count returns the number of unread elements, always in [0, Cap].
// The read cursor is loaded first so a concurrent consumer can only
// inflate the estimate, never underflow it.
func (r *OverwriteRing[T]) Count() int {
	p := r.read.Load()
	w := r.write.Load()
	if d := w - p; d < uint64(len(r.slots)) {
		return int(d)
	}
	return len(r.slots)
}

// Cap returns the fixed capacity.
func (r *OverwriteRing[T]) Cap() int {
	return len(r.slots)
}

// Full reports whether occupancy has reached capacity.
func (r *OverwriteRing[T]) Full() bool {
	p := r.read.Load()
	return r.write.Load()-p >= uint64(len(r.slots))
}

// Empty reports whether no unread elements remain.
func (r *OverwriteRing[T]) Empty() bool {
	return r.write.Load() == r.read.Load()
}

// Clear discards all unread elements and zeroes the slots. The write
// cursor keeps its value so total-written history survives. Requires
// external quiescence: not safe concurrently with Put or Get.
func (r *OverwriteRing[T]) Clear() {
	clear(r.slots)
	r.read.Store(r.write.Load())
}

// Reset returns the ring to its construction state: cursors,
// accounting and slots all zeroed. Requires external quiescence.
func (r *OverwriteRing[T]) Reset() {
	clear(r.slots)
	r.write.Store(0)
	r.read.Store(0)
	r.dropped.Store(0)
	r.got.Store(0)
}

// Stats returns a point-in-time snapshot of the ring's counters.
// Safe from any goroutine. Consumer-side counters are loaded before the
// write cursor so a racing snapshot never shows TotalGet > TotalPut.
func (r *OverwriteRing[T]) Stats() api.Stats {
	got := r.got.Load()
	dropped := r.dropped.Load()
	n := r.Count()
	return api.Stats{
		Cap:      len(r.slots),
		Len:      n,
		TotalPut: r.write.Load(),
		TotalGet: got,
		Dropped:  dropped,
	}
}
