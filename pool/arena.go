// File: pool/arena.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Contiguous backing storage for one slab pool, carved into equal blocks.
// Platform-specific reservation lives in arena_linux.go, arena_windows.go
// and arena_stub.go; this file holds the shared carving logic plus the Go
// heap fallback used when mapping fails.

package pool

import "unsafe"

// arena is one contiguous memory region backing a single pool.
type arena struct {
	mem   []byte
	unmap func([]byte) error // nil when the region came from the Go heap
}

// block returns the i-th blockSize region as a full-capacity slice. The
// three-index form keeps appends and writes from crossing into the next
// block.
func (a *arena) block(i, blockSize int) []byte {
	lo := i * blockSize
	hi := lo + blockSize
	return a.mem[lo:hi:hi]
}

// size returns the usable arena length in bytes.
func (a *arena) size() int { return len(a.mem) }

// release returns a mapped region to the OS and drops heap regions for the
// collector. Safe to call once.
func (a *arena) release() error {
	mem, f := a.mem, a.unmap
	a.mem, a.unmap = nil, nil
	if f == nil || mem == nil {
		return nil
	}
	return f(mem)
}

// newHeapArena allocates from the Go heap, shifting the base so the first
// block lands on an align boundary.
func newHeapArena(size, align int) *arena {
	raw := make([]byte, size+align)
	off := 0
	if align > 1 {
		addr := uintptr(unsafe.Pointer(&raw[0]))
		if rem := int(addr % uintptr(align)); rem != 0 {
			off = align - rem
		}
	}
	return &arena{mem: raw[off : off+size : off+size]}
}

// alignUp rounds n up to the nearest multiple of align, a power of two.
func alignUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}
