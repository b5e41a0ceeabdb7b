// File: pool/block.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "sync/atomic"

// Loan phases packed into the low half of Block.state. The high half holds
// the generation stamped at the most recent acquire.
const (
	phaseFree   uint64 = 0
	phaseLoaned uint64 = 1
)

func packState(gen uint32, phase uint64) uint64 {
	return uint64(gen)<<32 | phase
}

// Block is one fixed-size unit of pool storage: the raw region plus side
// metadata tying header and payload together without pointer arithmetic.
type Block struct {
	pool  *SlabPool
	index int
	buf   []byte // HeaderSize bytes of metadata, then the payload region

	// state packs generation<<32|phase. The release-time CAS on this
	// word is the single authority on duplicate and stale releases.
	state atomic.Uint64
}

// Pool returns the owning slab pool.
func (b *Block) Pool() *SlabPool { return b.pool }

// Index returns the block's position within its arena.
func (b *Block) Index() int { return b.index }

// Generation returns the loan generation stamped at the last acquire.
func (b *Block) Generation() uint32 { return uint32(b.state.Load() >> 32) }

// Loaned reports whether the block is currently out on loan.
func (b *Block) Loaned() bool { return b.state.Load()&1 == phaseLoaned }

// Payload returns the caller-usable region behind the header, capacity
// capped so writes stay inside the block.
func (b *Block) Payload() []byte {
	end := HeaderSize + b.pool.capacity
	return b.buf[HeaderSize:end:end]
}

// Header decodes the block's embedded ownership record.
func (b *Block) Header() Header { return readHeader(b.buf[:HeaderSize]) }

// StampHeader writes a live ownership record naming the owning pool.
// The allocator facade calls this once per hand-out.
func (b *Block) StampHeader() {
	writeHeader(b.buf[:HeaderSize], b.pool.class, b.pool.nonce)
}
