//go:build !linux && !windows
// +build !linux,!windows

// File: pool/arena_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Arena reservation fallback for platforms without a mapped path. Serves
// arenas straight from the Go heap.

package pool

func newArena(size, align int) *arena {
	return newHeapArena(size, align)
}
