//go:build !linux

package engine

import (
	"runtime"
)

func NumCPU() int {
	return runtime.NumCPU()
}
