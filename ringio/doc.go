// Package ringio
// Author: momentics <momentics@gmail.com>
//
// io.Writer adapter over a byte ring.
//
// A Writer never blocks and never fails: once the ring is full each write
// evicts the oldest bytes, so the buffer always holds the most recent
// window of output. Useful as a crash-dump tail for verbose streams where
// only the last few kilobytes matter.
package ringio
