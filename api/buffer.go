// Package api
// Author: momentics
//
// Leased memory buffers for fixed-tier slab allocation.
//
// A Buffer is a loan, not an owned region: the payload stays valid until
// Release, and the allocator validates every release against the recorded
// pool identity before the block re-enters circulation.

package api

// Buffer describes one leased block payload.
type Buffer interface {
	// Bytes returns the full payload region of the serving tier. The
	// slice stays valid until Release; writes cannot reach neighbouring
	// blocks.
	Bytes() []byte

	// Cap returns the payload capacity of the serving tier.
	Cap() int

	// Tier reports which tier the block was drawn from.
	Tier() TierClass

	// Copy returns a deep copy of the payload as a standalone []byte.
	Copy() []byte

	// Release returns the block to its recorded pool, equivalent to
	// Allocator.Free on this buffer. After a nil return the buffer must
	// not be used.
	Release() error
}
