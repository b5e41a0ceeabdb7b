// File: api/types.go
// Author: momentics <momentics@gmail.com>
//
// Shared API-level type declarations, DTOs, and constants.

package api

// NumTiers is the number of size tiers an allocator manages.
const NumTiers = 3

// TierClass identifies one of the fixed block-size tiers, ordered by
// ascending payload capacity.
type TierClass uint8

const (
	TierSmall TierClass = iota
	TierMedium
	TierLarge
)

func (c TierClass) String() string {
	switch c {
	case TierSmall:
		return "small"
	case TierMedium:
		return "medium"
	case TierLarge:
		return "large"
	default:
		return "unknown"
	}
}

// Valid reports whether c names one of the live tiers.
func (c TierClass) Valid() bool { return c < NumTiers }

// PoolStats provides a standard layout for per-pool accounting snapshots.
type PoolStats struct {
	Class     TierClass
	BlockSize int // bytes per block, header included
	Capacity  int // payload bytes per block
	Count     int // total blocks
	Free      int // blocks on the free list
	InUse     int // blocks on loan
	Acquired  uint64
	Released  uint64
}

// AllocatorStats aggregates facade-level accounting across all tiers.
type AllocatorStats struct {
	Allocs       uint64 // buffers handed out
	Frees        uint64 // buffers accepted back
	AllocRejects uint64 // allocations refused as invalid
	FreeRejects  uint64 // releases refused by validation
	OutOfMemory  uint64 // allocations refused with all tiers exhausted
	Tiers        [NumTiers]PoolStats
}
