// File: pool/tierset.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// TierSet owns the ordered small/medium/large pool triple and implements
// tier selection: the smallest tier that fits the request and reports a
// free block, falling through to larger tiers when the preferred one is
// exhausted.

package pool

import (
	"fmt"
	"sync/atomic"

	"github.com/momentics/hioload-slab/api"
)

// TierSpec fixes the geometry shared by the pools of one set.
type TierSpec struct {
	// Capacities holds payload bytes per block for the small, medium and
	// large tiers. Must be strictly increasing.
	Capacities [api.NumTiers]int

	// Blocks is the block count of every tier.
	Blocks int

	// Align is the block alignment: a power of two, at most one page.
	Align int

	// ZeroOnFree wipes payloads before blocks re-enter the free lists.
	ZeroOnFree bool
}

// TierSet is the immutable ordered pool triple behind an allocator.
type TierSet struct {
	pools  [api.NumTiers]*SlabPool
	closed atomic.Bool
}

// NewTierSet builds one pool per tier. Payload capacities and the
// align-rounded block sizes must both be strictly increasing. On a partial
// failure every pool built so far is torn down before the error returns.
func NewTierSet(spec TierSpec) (*TierSet, error) {
	if spec.Align <= 0 || spec.Align&(spec.Align-1) != 0 || spec.Align > MaxAlign {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "slab: alignment must be a power of two within one page").
			WithContext("align", spec.Align)
	}
	for i := 1; i < api.NumTiers; i++ {
		if spec.Capacities[i] <= spec.Capacities[i-1] {
			return nil, api.NewError(api.ErrCodeInvalidArgument, "slab: tier capacities must be strictly increasing").
				WithContext("capacities", spec.Capacities)
		}
	}
	// Rounding may fuse close capacities into equal block footprints; the
	// tier order must survive the rounding.
	for i := 1; i < api.NumTiers; i++ {
		prev := alignUp(HeaderSize+spec.Capacities[i-1], spec.Align)
		if alignUp(HeaderSize+spec.Capacities[i], spec.Align) <= prev {
			return nil, api.NewError(api.ErrCodeInvalidArgument, "slab: tier block sizes must be strictly increasing after alignment").
				WithContext("capacities", spec.Capacities).
				WithContext("align", spec.Align)
		}
	}
	ts := &TierSet{}
	for i := range ts.pools {
		p, err := NewSlabPool(api.TierClass(i), spec.Capacities[i], spec.Blocks, spec.Align, spec.ZeroOnFree)
		if err != nil {
			for j := 0; j < i; j++ {
				_ = ts.pools[j].Close()
			}
			return nil, err
		}
		ts.pools[i] = p
	}
	return ts, nil
}

// Select returns the smallest tier able to hold size payload bytes that
// currently reports a free block. A fitting but exhausted tier is skipped
// in favour of the next larger one. Pure query: the free-count read is
// advisory and the caller must treat the acquire itself as authoritative.
func (ts *TierSet) Select(size int) (*SlabPool, bool) {
	for _, p := range ts.pools {
		if size <= p.capacity && p.FreeCount() > 0 {
			return p, true
		}
	}
	return nil, false
}

// Pool returns the tier's pool, nil for an invalid class.
func (ts *TierSet) Pool(class api.TierClass) *SlabPool {
	if !class.Valid() {
		return nil
	}
	return ts.pools[class]
}

// Pools returns the ordered pool triple.
func (ts *TierSet) Pools() [api.NumTiers]*SlabPool { return ts.pools }

// Contains reports whether p is one of the set's live pools. Release
// validation uses this as the pool-identity check.
func (ts *TierSet) Contains(p *SlabPool) bool {
	if p == nil {
		return false
	}
	for _, own := range ts.pools {
		if own == p {
			return true
		}
	}
	return false
}

// MaxPayload returns the largest tier's payload capacity, the upper bound
// on any single allocation.
func (ts *TierSet) MaxPayload() int { return ts.pools[api.NumTiers-1].capacity }

// Outstanding returns the number of blocks currently on loan across all
// tiers.
func (ts *TierSet) Outstanding() int {
	n := 0
	for _, p := range ts.pools {
		n += p.count - p.FreeCount()
	}
	return n
}

// Stats snapshots all pools in tier order.
func (ts *TierSet) Stats() [api.NumTiers]api.PoolStats {
	var out [api.NumTiers]api.PoolStats
	for i, p := range ts.pools {
		out[i] = p.Stats()
	}
	return out
}

// Close tears down every pool and returns their arenas. It fails with
// api.ErrInUse while any block is on loan, leaving all pools usable, and
// is a no-op once it has succeeded.
func (ts *TierSet) Close() error {
	if ts.closed.Load() {
		return nil
	}
	if n := ts.Outstanding(); n > 0 {
		return fmt.Errorf("slab: %d blocks still on loan: %w", n, api.ErrInUse)
	}
	if ts.closed.Swap(true) {
		return nil
	}
	for _, p := range ts.pools {
		if err := p.Close(); err != nil {
			return err
		}
	}
	return nil
}
