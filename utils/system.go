package utils

import (
	"math"
	"runtime"
)

// MemUsage returns allocation statistics in MiB as key value pairs for structured logging
func MemUsage() []any {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	// For info on each, see: https://golang.org/pkg/runtime/#MemStats
	bToMb := func(b uint64) uint64 {
		return b / 1024 / 1024
	}
	return []any{"alloc_mib", bToMb(m.Alloc), "total_alloc_mib", bToMb(m.TotalAlloc),
		"sys_mib", bToMb(m.Sys), "num_gc", m.NumGC}
}

func IsNan(A []float64) bool {
	for _, f := range A {
		if math.IsNaN(f) {
			return true
		}
	}
	return false
}
