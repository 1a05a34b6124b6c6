// File: internal/concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lock-free concurrency engine for hioload-ring. Implements the
// single-producer/single-consumer overwrite ring on two padded atomic
// absolute cursors with power-of-two index masking.
//
// The engine is allocation-free after construction and is the single
// source of truth for cursor arithmetic; public packages wrap it
// without re-implementing any of it.
package concurrency
