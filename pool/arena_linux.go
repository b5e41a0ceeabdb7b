//go:build linux
// +build linux

// File: pool/arena_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux-specific arena reservation. Arenas are reserved with anonymous mmap
// so pool memory stays out of the Go heap, and transparent hugepages are
// requested on a best-effort basis. Falls back to the Go heap if the
// mapping fails.

package pool

import "golang.org/x/sys/unix"

// newArena reserves size bytes of backing storage. The mmap base is page
// aligned, which covers every alignment a pool accepts.
func newArena(size, align int) *arena {
	mem, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return newHeapArena(size, align)
	}
	// Advisory only; kernels built without THP just refuse.
	_ = unix.Madvise(mem, unix.MADV_HUGEPAGE)
	return &arena{mem: mem, unmap: unix.Munmap}
}
