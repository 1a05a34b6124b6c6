// control/platform.go
// Author: momentics <momentics@gmail.com>
//
// Runtime environment probes useful next to ring state dumps.

package control

import (
	"runtime"
)

// RegisterPlatformProbes adds process-level probes to a registry.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.gomaxprocs", func() any {
		return runtime.GOMAXPROCS(0)
	})
	dp.RegisterProbe("platform.goroutines", func() any {
		return runtime.NumGoroutine()
	})
}
