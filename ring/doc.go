// Package ring
// Author: momentics <momentics@gmail.com>
//
// Public surface of hioload-ring: a fixed-capacity, allocation-free
// FIFO for exactly one producer and one consumer goroutine, with
// overwrite-on-full ("last-N retention") semantics. The producer never
// blocks and never fails; when the ring is full each write silently
// evicts the oldest unread element.
//
// Buffer wraps the internal engine and adds construction-time capacity
// validation plus the api.Ring queue adapter. See api for the full
// concurrency contract.
package ring
