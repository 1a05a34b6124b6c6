// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// ring_concurrent_test.go — Cross-thread behavior of the SPSC ring.
//
// Discipline note: overwriting a slot the consumer is mid-read on is a
// data race by construction, exactly as in any mmap'd last-N log. Tests
// therefore either pace the producer on Full (no eviction while the
// consumer runs) or let the producer run free and only drain after it
// quiesces. Observer methods touch cursors only and are safe throughout.
package tests

import (
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/momentics/hioload-ring/ring"
)

// One producer, one consumer, producer paced to avoid overwrites:
// every element arrives exactly once, in order.
func TestRing_SPSCInOrderDelivery(t *testing.T) {
	defer goleak.VerifyNone(t)

	const total = 1_000_000
	rb := ring.Must[int](1024)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < total; i++ {
			// Full overestimates occupancy from the producer side, so
			// waiting on it guarantees a free slot and no overwrite.
			for rb.Full() {
				runtime.Gosched()
			}
			rb.Put(i)
		}
	}()

	expect := 0
	for expect < total {
		v, ok := rb.Get()
		if !ok {
			runtime.Gosched()
			continue
		}
		require.Equal(t, expect, v)
		expect++
	}
	wg.Wait()

	assert.True(t, rb.Empty())
	st := rb.Stats()
	assert.Zero(t, st.Dropped)
	assert.Equal(t, uint64(total), st.TotalGet)
}

// Free-running producer with an idle consumer: after quiescence the ring
// holds exactly the newest window and the counters add up.
func TestRing_FreeRunningProducerKeepsNewest(t *testing.T) {
	defer goleak.VerifyNone(t)

	const total = 200_000
	const capacity = 64
	rb := ring.Must[uint64](capacity)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := uint64(1); i <= total; i++ {
			rb.Put(i)
		}
	}()

	// Observe cursor-only state while the producer hammers.
	for i := 0; i < 10_000; i++ {
		n := rb.Count()
		require.GreaterOrEqual(t, n, 0)
		require.LessOrEqual(t, n, capacity)
	}
	<-done

	var drained []uint64
	for {
		v, ok := rb.Get()
		if !ok {
			break
		}
		drained = append(drained, v)
	}

	require.Len(t, drained, capacity)
	for i, v := range drained {
		assert.Equal(t, uint64(total-capacity+1+i), v, "index %d", i)
	}

	st := rb.Stats()
	assert.Equal(t, uint64(total), st.TotalPut)
	assert.Equal(t, uint64(capacity), st.TotalGet)
	assert.Equal(t, uint64(total-capacity), st.Dropped)
	assert.Equal(t, st.TotalPut, st.TotalGet+st.Dropped+uint64(st.Len))
}

// Observer calls are safe alongside live traffic and never report
// impossible occupancy.
func TestRing_ObserversDuringTraffic(t *testing.T) {
	defer goleak.VerifyNone(t)

	rb := ring.Must[int](32)
	stop := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
				for rb.Full() {
					select {
					case <-stop:
						return
					default:
						runtime.Gosched()
					}
				}
				rb.Put(i)
			}
		}
	}()
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				if _, ok := rb.Get(); !ok {
					runtime.Gosched()
				}
			}
		}
	}()

	for i := 0; i < 10_000; i++ {
		n := rb.Count()
		require.GreaterOrEqual(t, n, 0)
		require.LessOrEqual(t, n, rb.Cap())

		st := rb.Stats()
		require.LessOrEqual(t, st.Len, st.Cap)
		require.GreaterOrEqual(t, st.TotalPut, st.TotalGet)
	}
	close(stop)
	wg.Wait()
}
