// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake buffer implementation for testing. Satisfies api.Buffer without any
// backing pool, so it doubles as the canonical foreign buffer when testing
// allocator release validation.

package fake

import (
	"sync"

	"github.com/momentics/hioload-slab/api"
)

// Buffer is a fake implementation of api.Buffer.
type Buffer struct {
	mu       sync.Mutex
	data     []byte
	tier     api.TierClass
	released bool
}

// NewBuffer creates a fake buffer holding a copy of data.
func NewBuffer(data []byte, tier api.TierClass) *Buffer {
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)
	return &Buffer{
		data: dataCopy,
		tier: tier,
	}
}

// Bytes returns the fake payload region.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.released {
		return nil
	}
	return b.data
}

// Cap returns the fake payload capacity.
func (b *Buffer) Cap() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}

// Tier reports the canned tier class.
func (b *Buffer) Tier() api.TierClass { return b.tier }

// Copy returns a deep copy of the payload.
func (b *Buffer) Copy() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.released {
		return nil
	}
	result := make([]byte, len(b.data))
	copy(result, b.data)
	return result
}

// Release marks the buffer released. The second call fails, mirroring the
// real allocator's duplicate-release rejection.
func (b *Buffer) Release() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.released {
		return api.NewError(api.ErrCodeInvalidArgument, "fake: buffer already released")
	}
	b.released = true
	b.data = nil
	return nil
}

// Released reports whether Release has run.
func (b *Buffer) Released() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.released
}

var _ api.Buffer = (*Buffer)(nil)
