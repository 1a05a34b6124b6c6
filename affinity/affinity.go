// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. Platform-specific implementations are located
// in separate files (affinity_linux.go, affinity_windows.go, etc.) guarded by build tags.
//
// Pinning the producer and consumer goroutines of a ring to distinct cores
// keeps the cursor cache lines from bouncing. Callers must hold
// runtime.LockOSThread for the pin to outlive the next reschedule.

package affinity

import (
	"runtime"

	"github.com/momentics/hioload-ring/api"
)

// SetAffinity pins the current OS thread to a given logical CPU on supported
// platforms. On unsupported platforms returns api.ErrNotSupported.
func SetAffinity(cpuID int) error {
	if cpuID < 0 || cpuID >= runtime.NumCPU() {
		return api.NewError(api.ErrCodeInvalidArgument, "cpu id out of range").
			WithContext("cpu", cpuID).
			WithContext("ncpu", runtime.NumCPU())
	}
	return setAffinityPlatform(cpuID)
}

// ClearAffinity restores the thread's mask to all online CPUs.
func ClearAffinity() error {
	return clearAffinityPlatform()
}
