//go:build windows
// +build windows

// File: pool/arena_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Windows-specific arena reservation. Arenas are committed with
// VirtualAlloc, which hands back allocation granularity aligned regions.
// Falls back to the Go heap if the reservation fails.

package pool

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func newArena(size, align int) *arena {
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil || addr == 0 {
		return newHeapArena(size, align)
	}
	mem := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	return &arena{mem: mem, unmap: func([]byte) error {
		return windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
	}}
}
