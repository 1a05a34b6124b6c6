// File: metric/collector.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package metric

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/momentics/hioload-ring/api"
)

const (
	namespace = "hioload"
	subsystem = "ring"
)

// Collector exports ring stats to Prometheus.
//
// Rings register a stats reader under a unique name; every scrape invokes
// the readers and emits one sample set per ring. Cursor counters are
// monotonic absolute values, so they surface as const counters rather
// than client-side accumulators.
type Collector struct {
	mu      sync.RWMutex
	sources map[string]api.StatsFunc

	capacity *prometheus.Desc
	length   *prometheus.Desc
	puts     *prometheus.Desc
	gets     *prometheus.Desc
	dropped  *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a collector with no registered rings.
func NewCollector() *Collector {
	labels := []string{"ring"}
	return &Collector{
		sources: make(map[string]api.StatsFunc),
		capacity: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "capacity"),
			"Fixed slot capacity of the ring.",
			labels, nil,
		),
		length: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "length"),
			"Occupancy estimate at scrape time.",
			labels, nil,
		),
		puts: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "puts_total"),
			"Total elements written to the ring.",
			labels, nil,
		),
		gets: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "gets_total"),
			"Total elements consumed from the ring.",
			labels, nil,
		),
		dropped: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "dropped_total"),
			"Total elements overwritten before consumption.",
			labels, nil,
		),
	}
}

// Register wires a ring's stats reader under a unique name.
func (c *Collector) Register(name string, fn api.StatsFunc) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.sources[name]; exists {
		return api.NewError(api.ErrCodeAlreadyExists, "ring already registered").
			WithContext("ring", name)
	}
	c.sources[name] = fn
	return nil
}

// Unregister removes a ring and reports whether it was present.
func (c *Collector) Unregister(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, exists := c.sources[name]
	delete(c.sources, name)
	return exists
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.capacity
	ch <- c.length
	ch <- c.puts
	ch <- c.gets
	ch <- c.dropped
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for name, fn := range c.sources {
		st := fn()
		ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(st.Cap), name)
		ch <- prometheus.MustNewConstMetric(c.length, prometheus.GaugeValue, float64(st.Len), name)
		ch <- prometheus.MustNewConstMetric(c.puts, prometheus.CounterValue, float64(st.TotalPut), name)
		ch <- prometheus.MustNewConstMetric(c.gets, prometheus.CounterValue, float64(st.TotalGet), name)
		ch <- prometheus.MustNewConstMetric(c.dropped, prometheus.CounterValue, float64(st.Dropped), name)
	}
}
