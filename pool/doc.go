// Package pool
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity slab pools for hioload-slab.
// Each pool carves equal-sized blocks out of one contiguous arena and hands
// them out through a blocking free list with atomic lease accounting. The
// ordered small/medium/large triple lives in tierset.go; platform-specific
// arena reservation in arena_linux.go and arena_windows.go.
// See slabpool.go, header.go, block.go for implementation details.
package pool
