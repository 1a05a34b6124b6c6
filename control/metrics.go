// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics registry for ring-level monitoring.
// Exposes counter snapshots in a thread-safe map with dynamic registration.

package control

import (
	"sync"
	"time"

	"github.com/momentics/hioload-ring/api"
)

// MetricsRegistry holds the latest published stats per ring.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]api.Stats
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]api.Stats),
	}
}

// Publish sets or updates the stats for a named ring.
func (mr *MetricsRegistry) Publish(name string, st api.Stats) {
	mr.mu.Lock()
	mr.metrics[name] = st
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Snapshot returns a copy of the latest published stats.
func (mr *MetricsRegistry) Snapshot() map[string]api.Stats {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]api.Stats, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}

// Updated reports when the registry last changed.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}
