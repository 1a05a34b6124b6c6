// File: ringio/writer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ringio

import (
	"io"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/ring"
)

// Writer retains the newest Cap() bytes written through it.
//
// Write is single-producer, Bytes and Len are safe from one concurrent
// reader. Same discipline as the underlying ring.
type Writer struct {
	rb *ring.Buffer[byte]
}

var _ io.Writer = (*Writer)(nil)

// NewWriter creates a tail buffer of the given byte capacity.
// Capacity follows ring rules: a power of two, at least 2.
func NewWriter(capacity int) (*Writer, error) {
	rb, err := ring.New[byte](capacity)
	if err != nil {
		return nil, err
	}
	return &Writer{rb: rb}, nil
}

// Write appends p, evicting the oldest bytes once full. Never fails.
func (w *Writer) Write(p []byte) (int, error) {
	w.rb.PutSlice(p)
	return len(p), nil
}

// Bytes returns a copy of the retained tail, oldest byte first.
func (w *Writer) Bytes() []byte {
	dst := make([]byte, w.rb.Count())
	n := w.rb.Snapshot(dst)
	return dst[:n]
}

// Len reports how many bytes are currently retained.
func (w *Writer) Len() int { return w.rb.Count() }

// Cap reports the fixed window size.
func (w *Writer) Cap() int { return w.rb.Cap() }

// TotalWritten reports the lifetime byte count, including evicted bytes.
func (w *Writer) TotalWritten() uint64 { return w.rb.Stats().TotalPut }

// Reset drops the retained tail but keeps lifetime counters.
func (w *Writer) Reset() { w.rb.Clear() }

// Stats exposes the underlying ring counters.
func (w *Writer) Stats() api.Stats { return w.rb.Stats() }
