// File: facade/buffer.go
// Leased buffer handle returned by the allocator.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package facade

import (
	"github.com/momentics/hioload-slab/api"
	"github.com/momentics/hioload-slab/pool"
)

// buffer is the api.Buffer implementation handed out by Alloc. It couples
// the loaned block with the generation observed at acquire; Free validates
// both before the block re-enters circulation.
type buffer struct {
	owner *HioloadSlab
	blk   *pool.Block
	gen   uint32
}

// Bytes returns the full payload region of the serving tier. The slice is
// capacity-capped, so writes cannot reach the neighbouring block.
func (b *buffer) Bytes() []byte { return b.blk.Payload() }

// Cap returns the payload capacity of the serving tier.
func (b *buffer) Cap() int { return b.blk.Pool().Capacity() }

// Tier reports which tier the block was drawn from.
func (b *buffer) Tier() api.TierClass { return b.blk.Pool().Class() }

// Copy returns the payload as a standalone slice.
func (b *buffer) Copy() []byte {
	out := make([]byte, len(b.blk.Payload()))
	copy(out, b.blk.Payload())
	return out
}

// Release returns the block through the owning allocator, validation
// included. Equivalent to owner.Free(b).
func (b *buffer) Release() error { return b.owner.Free(b) }

var _ api.Buffer = (*buffer)(nil)
