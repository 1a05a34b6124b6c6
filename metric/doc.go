// Package metric
// Author: momentics <momentics@gmail.com>
//
// Prometheus exposition for ring buffers.
//
// A single Collector serves any number of registered rings. Collection is
// pull-based: each scrape reads the live stats readers, so no background
// goroutine or publish loop is required. Metric names follow the
// hioload_ring_* scheme with a "ring" label carrying the registered name.
package metric
