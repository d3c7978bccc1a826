//go:build linux

package engine

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// NumCPU returns the number of CPUs this process may run on,
// honoring the scheduler affinity mask (taskset, cgroup cpusets)
func NumCPU() int {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return runtime.NumCPU()
	}
	if n := set.Count(); n > 0 {
		return n
	}
	return runtime.NumCPU()
}
