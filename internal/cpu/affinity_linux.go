//go:build linux

package cpu

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// pinToCore restricts the calling OS thread to a single logical CPU.
// Must be called after runtime.LockOSThread(). Out-of-range IDs wrap around
// the available CPUs so every worker ID maps to a core.
func pinToCore(cpuID int) (int, error) {
	cpuID = wrapCPU(cpuID)

	var mask unix.CPUSet
	mask.Zero()
	mask.Set(cpuID)

	if err := unix.SchedSetaffinity(0, &mask); err != nil { // 0 = current thread
		return 0, err
	}
	return cpuID, nil
}

// currentAffinity reports how many CPUs the calling thread may run on.
func currentAffinity() (int, error) {
	var mask unix.CPUSet
	if err := unix.SchedGetaffinity(0, &mask); err != nil {
		return 0, err
	}
	return mask.Count(), nil
}

// SetupWorkerAffinity locks the goroutine to its OS thread and pins that
// thread to the core derived from workerID. The returned cleanup restores the
// thread's previous affinity and unlocks it; it should be deferred.
//
// Pinning failures are ignored: the worker still runs, just unpinned.
func SetupWorkerAffinity(workerID int) func() {
	runtime.LockOSThread()

	var prev unix.CPUSet
	havePrev := unix.SchedGetaffinity(0, &prev) == nil
	_, _ = pinToCore(workerID)

	return func() {
		if havePrev {
			_ = unix.SchedSetaffinity(0, &prev)
		}
		runtime.UnlockOSThread()
	}
}

// PinningSupported reports whether SetupWorkerAffinity pins threads on this
// platform.
func PinningSupported() bool {
	return true
}
