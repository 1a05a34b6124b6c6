// File: ringio/writer_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ringio_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/ringio"
)

func TestNewWriter_CapacityValidation(t *testing.T) {
	_, err := ringio.NewWriter(100)
	assert.ErrorIs(t, err, api.ErrInvalidCapacity)

	w, err := ringio.NewWriter(128)
	require.NoError(t, err)
	assert.Equal(t, 128, w.Cap())
}

func TestWriter_RetainsTail(t *testing.T) {
	w, err := ringio.NewWriter(8)
	require.NoError(t, err)

	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, []byte("hello"), w.Bytes())

	n, err = w.Write([]byte(" world"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, []byte("lo world"), w.Bytes(), "oldest bytes evicted")
	assert.Equal(t, 8, w.Len())
	assert.Equal(t, uint64(11), w.TotalWritten())
}

// The retained window is identical no matter how writes are chunked.
func TestWriter_SplitIndependence(t *testing.T) {
	payload := []byte("the quick brown fox jumps over the lazy dog")

	for _, chunk := range []int{1, 3, 7, len(payload)} {
		w, err := ringio.NewWriter(16)
		require.NoError(t, err)

		for i := 0; i < len(payload); i += chunk {
			end := i + chunk
			if end > len(payload) {
				end = len(payload)
			}
			_, err := w.Write(payload[i:end])
			require.NoError(t, err)
		}

		assert.Equal(t, payload[len(payload)-16:], w.Bytes(), "chunk size %d", chunk)
	}
}

// A write larger than the window keeps only its own tail.
func TestWriter_OversizedWrite(t *testing.T) {
	w, err := ringio.NewWriter(4)
	require.NoError(t, err)

	n, err := w.Write([]byte("abcdefgh"))
	require.NoError(t, err)
	assert.Equal(t, 8, n, "io.Writer contract reports full length")
	assert.Equal(t, []byte("efgh"), w.Bytes())
	assert.Equal(t, uint64(4), w.Stats().Dropped)
}

func TestWriter_WorksWithFmt(t *testing.T) {
	w, err := ringio.NewWriter(64)
	require.NoError(t, err)

	var out io.Writer = w
	fmt.Fprintf(out, "event %d: %s", 7, "ok")
	assert.Equal(t, []byte("event 7: ok"), w.Bytes())

	w.Reset()
	assert.Equal(t, 0, w.Len())
	assert.NotZero(t, w.TotalWritten(), "Reset keeps lifetime counters")
}
