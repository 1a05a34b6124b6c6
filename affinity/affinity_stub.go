//go:build !linux && !windows
// +build !linux,!windows

// File: affinity/affinity_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub implementation for unsupported platforms.
// Returns error to indicate unavailability.

package affinity

import (
	"fmt"

	"github.com/momentics/hioload-ring/api"
)

// setAffinityPlatform is a stub for platforms where CPU affinity is not supported.
func setAffinityPlatform(cpuID int) error {
	return fmt.Errorf("affinity: cpu %d: %w", cpuID, api.ErrNotSupported)
}

func clearAffinityPlatform() error {
	return api.ErrNotSupported
}
