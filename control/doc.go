// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and debug introspection layer.
// Part of hioload-ring high-load architecture core.
//
// Provides concurrent-safe state handling primitives including:
//   - Published per-ring stats snapshots with timestamps
//   - State export, debug hooks, and probe registration
//
// Registries here are pull-free and allocation-light: rings publish or
// expose readers, operators snapshot on demand.
package control
