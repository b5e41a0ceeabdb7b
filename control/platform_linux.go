//go:build linux
// +build linux

// control/platform_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux-specific platform probes. The transparent hugepage mode matters to
// arena-backed pools, which request MADV_HUGEPAGE on a best-effort basis.

package control

import (
	"os"
	"runtime"
	"strings"
)

// RegisterPlatformProbes sets Linux-specific debug probes.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.pagesize", func() any {
		return os.Getpagesize()
	})
	dp.RegisterProbe("platform.thp", func() any {
		raw, err := os.ReadFile("/sys/kernel/mm/transparent_hugepage/enabled")
		if err != nil {
			return "unavailable"
		}
		return strings.TrimSpace(string(raw))
	})
}
