// File: pool/slabpool.go
// Package pool implements fixed-capacity slab pools with tier classes.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/momentics/hioload-slab/api"
)

// MaxAlign caps block alignment at one page; the arena base is only
// guaranteed that far.
const MaxAlign = 4096

// SlabPool hands out fixed-size blocks carved from one contiguous arena.
// The free list is a buffered channel, so the blocking acquire path parks
// the caller until another goroutine releases a block.
type SlabPool struct {
	class     api.TierClass
	capacity  int    // payload bytes per block
	blockSize int    // HeaderSize+capacity rounded up to the alignment
	count     int    // total blocks
	nonce     uint32 // pool identity stamped into block headers

	zeroOnFree bool

	arena *arena
	free  chan *Block

	acquired atomic.Uint64
	released atomic.Uint64
	closed   atomic.Bool
}

// NewSlabPool carves count blocks of capacity payload bytes each out of a
// fresh arena. Block footprints are HeaderSize+capacity rounded up to
// align, and all blocks start on the free list.
func NewSlabPool(class api.TierClass, capacity, count, align int, zeroOnFree bool) (*SlabPool, error) {
	if !class.Valid() {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "slab: invalid tier class").
			WithContext("class", int(class))
	}
	if capacity <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "slab: block capacity must be positive").
			WithContext("capacity", capacity)
	}
	if count <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "slab: block count must be positive").
			WithContext("count", count)
	}
	if align <= 0 || align&(align-1) != 0 || align > MaxAlign {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "slab: alignment must be a power of two within one page").
			WithContext("align", align)
	}

	p := &SlabPool{
		class:      class,
		capacity:   capacity,
		blockSize:  alignUp(HeaderSize+capacity, align),
		count:      count,
		nonce:      rand.Uint32() | 1, // nonzero so a zeroed header never matches
		zeroOnFree: zeroOnFree,
	}
	p.arena = newArena(p.blockSize*count, align)
	p.free = make(chan *Block, count)
	for i := 0; i < count; i++ {
		blk := &Block{pool: p, index: i, buf: p.arena.block(i, p.blockSize)}
		invalidateHeader(blk.buf[:HeaderSize])
		p.free <- blk
	}
	return p, nil
}

// Class identifies the tier this pool serves.
func (p *SlabPool) Class() api.TierClass { return p.class }

// Capacity returns the payload bytes every block can hold.
func (p *SlabPool) Capacity() int { return p.capacity }

// BlockSize returns the full block footprint, header included.
func (p *SlabPool) BlockSize() int { return p.blockSize }

// Count returns the total number of blocks.
func (p *SlabPool) Count() int { return p.count }

// Nonce returns the pool identity stamped into block headers.
func (p *SlabPool) Nonce() uint32 { return p.nonce }

// FreeCount reports how many blocks sit on the free list right now.
func (p *SlabPool) FreeCount() int { return len(p.free) }

// Acquire takes a free block, waiting indefinitely while the pool is
// empty. The returned block carries a fresh generation; hand it back to
// Release together with that generation.
func (p *SlabPool) Acquire() *Block {
	b := <-p.free
	p.lease(b)
	return b
}

// TryAcquire takes a free block without waiting.
func (p *SlabPool) TryAcquire() (*Block, bool) {
	select {
	case b := <-p.free:
		p.lease(b)
		return b, true
	default:
		return nil, false
	}
}

// AcquireTimeout takes a free block, waiting at most d. A non-positive d
// degenerates to TryAcquire.
func (p *SlabPool) AcquireTimeout(d time.Duration) (*Block, bool) {
	if d <= 0 {
		return p.TryAcquire()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case b := <-p.free:
		p.lease(b)
		return b, true
	case <-t.C:
		return nil, false
	}
}

// lease stamps the next generation on a block just taken off the free list.
func (p *SlabPool) lease(b *Block) {
	gen := uint32(b.state.Load()>>32) + 1
	b.state.Store(packState(gen, phaseLoaned))
	p.acquired.Add(1)
}

// Release parks a loaned block back on the free list. gen must be the
// generation observed at acquire; a repeated or stale release fails the
// CAS and leaves pool state untouched.
func (p *SlabPool) Release(b *Block, gen uint32) error {
	if b == nil || b.pool != p {
		return api.NewError(api.ErrCodeInvalidArgument, "slab: release of foreign block")
	}
	if !b.state.CompareAndSwap(packState(gen, phaseLoaned), packState(gen, phaseFree)) {
		return api.NewError(api.ErrCodeInvalidArgument, "slab: duplicate or stale release").
			WithContext("tier", p.class.String()).
			WithContext("index", b.index)
	}
	// Only the CAS winner reaches the block bytes here.
	invalidateHeader(b.buf[:HeaderSize])
	if p.zeroOnFree {
		clear(b.buf[HeaderSize:])
	}
	p.released.Add(1)
	p.free <- b
	return nil
}

// Stats returns a point-in-time accounting snapshot.
func (p *SlabPool) Stats() api.PoolStats {
	free := len(p.free)
	return api.PoolStats{
		Class:     p.class,
		BlockSize: p.blockSize,
		Capacity:  p.capacity,
		Count:     p.count,
		Free:      free,
		InUse:     p.count - free,
		Acquired:  p.acquired.Load(),
		Released:  p.released.Load(),
	}
}

// Close drains the free list and releases the arena. It fails with
// api.ErrInUse while any block is on loan and must not race acquires;
// teardown is a single-owner affair.
func (p *SlabPool) Close() error {
	if p.closed.Load() {
		return nil
	}
	if n := p.count - len(p.free); n > 0 {
		return fmt.Errorf("slab: %d %s blocks on loan: %w", n, p.class, api.ErrInUse)
	}
	if p.closed.Swap(true) {
		return nil
	}
	for len(p.free) > 0 {
		<-p.free
	}
	return p.arena.release()
}

var _ api.Pool = (*SlabPool)(nil)
