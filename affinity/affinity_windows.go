//go:build windows
// +build windows

// File: affinity/affinity_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows-specific implementation for setting thread CPU affinity.

package affinity

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/windows"
)

var (
	modkernel32               = windows.NewLazySystemDLL("kernel32.dll")
	procSetThreadAffinityMask = modkernel32.NewProc("SetThreadAffinityMask")
	procGetCurrentThread      = modkernel32.NewProc("GetCurrentThread")
)

// setAffinityPlatform sets thread affinity to a given CPU for Windows.
// SetThreadAffinityMask is limited to the first 64 logical processors.
func setAffinityPlatform(cpuID int) error {
	if cpuID >= 64 {
		return fmt.Errorf("affinity: cpu %d beyond SetThreadAffinityMask reach", cpuID)
	}
	return applyMask(uintptr(1) << cpuID)
}

// clearAffinityPlatform widens the mask back to every online CPU.
func clearAffinityPlatform() error {
	n := runtime.NumCPU()
	mask := ^uintptr(0)
	if n < 64 {
		mask = uintptr(1)<<n - 1
	}
	return applyMask(mask)
}

func applyMask(mask uintptr) error {
	hThread, _, _ := procGetCurrentThread.Call()
	ret, _, err := procSetThreadAffinityMask.Call(hThread, mask)
	if ret == 0 {
		return fmt.Errorf("affinity: SetThreadAffinityMask: %w", err)
	}
	return nil
}
