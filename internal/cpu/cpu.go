// Package cpu pins benchmark workers to CPU cores so local load runs do not
// migrate between cores mid-measurement.
package cpu

import "runtime"

// NumCPU returns the number of logical CPUs usable by the process.
func NumCPU() int {
	return runtime.NumCPU()
}

func wrapCPU(cpuID int) int {
	n := NumCPU()
	cpuID %= n
	if cpuID < 0 {
		cpuID += n
	}
	return cpuID
}
