// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Defines abstract pooling APIs: fixed-capacity block pools and the tiered
// allocator facade built on top of them.

package api

// Pool describes the query surface of one fixed-capacity block pool.
type Pool interface {
	// Class identifies the tier this pool serves.
	Class() TierClass

	// Capacity returns the payload bytes every block can hold.
	Capacity() int

	// BlockSize returns the full block footprint, header included.
	BlockSize() int

	// Count returns the total number of blocks.
	Count() int

	// FreeCount reports how many blocks sit on the free list right now.
	FreeCount() int

	// Stats returns a point-in-time accounting snapshot.
	Stats() PoolStats
}

// Allocator is the tiered facade: smallest-fit allocation with overflow to
// larger tiers and validated release.
type Allocator interface {
	// Alloc returns a buffer holding at least size payload bytes. Blocks
	// while the selected pool is momentarily empty; fails with an
	// out-of-memory error only when every fitting tier is exhausted.
	Alloc(size int) (Buffer, error)

	// Free validates buf against its recorded pool and returns the block.
	// Rejections leave pool state untouched.
	Free(buf Buffer) error

	// Stats aggregates facade and per-tier accounting.
	Stats() AllocatorStats

	// Close tears the allocator down once every block is back.
	Close() error
}
