// Package api
// Author: momentics
//
// Live debug and introspection support for production workloads.

package api

// Debug exposes runtime introspection for rings and their surroundings.
type Debug interface {
	// DumpState emits a snapshot of registered state for diagnostics.
	DumpState() map[string]any

	// RegisterProbe dynamically registers new debug probes.
	RegisterProbe(name string, fn func() any)
}
