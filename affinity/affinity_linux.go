//go:build linux
// +build linux

// File: affinity/affinity_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux-specific implementation for setting thread CPU affinity.
// Uses sched_setaffinity on the calling thread, no CGO required.

package affinity

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// setAffinityPlatform sets thread affinity to a given CPU for Linux.
func setAffinityPlatform(cpuID int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpuID)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("affinity: sched_setaffinity cpu %d: %w", cpuID, err)
	}
	return nil
}

// clearAffinityPlatform widens the mask back to every online CPU.
func clearAffinityPlatform() error {
	var set unix.CPUSet
	set.Zero()
	for cpu := 0; cpu < runtime.NumCPU(); cpu++ {
		set.Set(cpu)
	}
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("affinity: sched_setaffinity reset: %w", err)
	}
	return nil
}
