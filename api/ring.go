// Package api
// Author: momentics@gmail.com
//
// Ring buffer contracts for single-producer/single-consumer pipelines.

package api

// Ring is a lock-free ring buffer contract.
type Ring[T any] interface {
	// Enqueue adds an item, returns false if full.
	Enqueue(item T) bool
	// Dequeue removes oldest item, returns false if empty.
	Dequeue() (T, bool)
	// Len returns current number of items.
	Len() int
	// Cap returns buffer capacity.
	Cap() int
}

// OverwriteRing is the last-N retention contract: a fixed-capacity FIFO
// whose producer never blocks and never fails. Writing into a full ring
// silently evicts the oldest unread element.
//
// Exactly one goroutine may use the producer side (Put, PutSlice) and
// exactly one goroutine the consumer side (Get, Peek, Drain, Snapshot).
// Count, Cap, Full, Empty and Stats are safe from any goroutine. Clear
// and Reset require external quiescence. The ring does not verify these
// restrictions; callers enforce them.
type OverwriteRing[T any] interface {
	// Put appends v, evicting the oldest unread element when full.
	Put(v T)
	// PutSlice appends all values of vs in order, as if by repeated Put.
	PutSlice(vs []T)
	// Get removes and returns the oldest unread element; ok is false
	// when the ring is empty, in which case no state changes.
	Get() (v T, ok bool)
	// Peek returns the element Get would return next without consuming
	// it or mutating the ring.
	Peek() (v T, ok bool)
	// Drain removes up to len(dst) elements into dst, oldest first,
	// and returns the number copied.
	Drain(dst []T) int
	// Snapshot copies up to len(dst) unread elements into dst, oldest
	// first, without consuming them. Returns the number copied.
	Snapshot(dst []T) int
	// Count returns the number of unread elements, always in [0, Cap].
	Count() int
	// Cap returns the fixed capacity.
	Cap() int
	// Full reports whether occupancy has reached capacity.
	Full() bool
	// Empty reports whether no unread elements remain.
	Empty() bool
	// Clear discards all unread elements and zeroes the slots while
	// preserving total-written history.
	Clear()
	// Reset returns the ring to its construction state.
	Reset()
	// Stats returns a point-in-time snapshot of the ring's counters.
	Stats() Stats
}

// Stats aggregates ring accounting counters. All values are read
// atomically but independently, so a snapshot taken while the ring is
// in motion is internally consistent only to within in-flight
// operations.
type Stats struct {
	Cap      int    // fixed capacity
	Len      int    // unread elements, in [0, Cap]
	TotalPut uint64 // elements written since construction or Reset
	TotalGet uint64 // elements returned by Get or Drain
	Dropped  uint64 // unread elements evicted by overwrite
}

// StatsFunc supplies a point-in-time Stats snapshot to observability
// sinks such as debug probes or metrics collectors.
type StatsFunc func() Stats
