// File: facade/slab.go
// Unified facade layer for hioload-slab library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file defines the HioloadSlab struct, which ties the core components
// of the library behind a single facade: the ordered tier set, smallest-fit
// selection with overflow, ownership-header stamping, release validation,
// the error-event journal, and debug probes. The facade exposes Alloc and
// Free as the two hot operations plus statistics and lifecycle methods.

// Package facade assembles the tiered slab allocator from the pool and
// control layers.
package facade

import (
	"fmt"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/momentics/hioload-slab/api"
	"github.com/momentics/hioload-slab/control"
	"github.com/momentics/hioload-slab/pool"
)

// DefaultJournalSize bounds the error-event journal unless WithJournalSize
// overrides it.
const DefaultJournalSize = 64

// HioloadSlab is the main facade type. It serves bounded allocations out
// of three fixed-capacity tiers and validates every release against the
// recorded pool identity. Safe for concurrent use; owns no goroutines.
type HioloadSlab struct {
	tiers  *pool.TierSet
	config *Config

	log     logrus.FieldLogger
	journal *control.Journal
	probes  *control.DebugProbes

	journalSize int
	zeroOnFree  bool
	closed      atomic.Bool

	allocs       atomic.Uint64
	frees        atomic.Uint64
	allocRejects atomic.Uint64
	freeRejects  atomic.Uint64
	oom          atomic.Uint64
}

// Ensure compliance with the allocator contract.
var _ api.Allocator = (*HioloadSlab)(nil)

// New constructs a HioloadSlab with the given configuration. It validates
// the geometry, builds one arena-backed pool per tier, and registers the
// default debug probes. A nil cfg means DefaultConfig.
func New(cfg *Config, opts ...Option) (*HioloadSlab, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	h := &HioloadSlab{
		config:      cfg,
		log:         logrus.StandardLogger(),
		journalSize: DefaultJournalSize,
	}
	for _, opt := range opts {
		opt(h)
	}

	tiers, err := pool.NewTierSet(pool.TierSpec{
		Capacities: cfg.capacities(),
		Blocks:     cfg.BlocksPerTier,
		Align:      cfg.Align,
		ZeroOnFree: h.zeroOnFree,
	})
	if err != nil {
		return nil, err
	}
	h.tiers = tiers
	h.journal = control.NewJournal(h.journalSize)

	h.probes = control.NewDebugProbes()
	h.probes.RegisterProbe("stats", func() any { return h.Stats() })
	h.probes.RegisterProbe("journal", func() any { return h.journal.Snapshot() })
	h.probes.RegisterProbe("config", func() any { return cfg.String() })
	control.RegisterPlatformProbes(h.probes)

	h.log.WithField("config", cfg.String()).Debug("slab: allocator ready")
	return h, nil
}

// Alloc returns a buffer able to hold at least size payload bytes, drawn
// from the smallest tier that fits and currently has a free block. A
// fitting but exhausted tier overflows to the next larger one. Once a tier
// is selected the call commits to it: if another goroutine wins the last
// block in between, Alloc parks on that tier's free list until a release
// arrives. It fails with an out-of-memory error only when every fitting
// tier reports zero free blocks at selection time.
func (h *HioloadSlab) Alloc(size int) (api.Buffer, error) {
	if h.closed.Load() {
		return nil, api.ErrClosed
	}
	if size <= 0 {
		h.allocRejects.Add(1)
		h.journal.Record(control.Event{Kind: control.EventAllocRejected, Detail: "non-positive size"})
		return nil, api.NewError(api.ErrCodeInvalidArgument, "slab: allocation size must be positive").
			WithContext("size", size)
	}
	if max := h.tiers.MaxPayload(); size > max {
		h.allocRejects.Add(1)
		h.journal.Record(control.Event{Kind: control.EventAllocRejected, Detail: "size exceeds largest tier"})
		return nil, api.NewError(api.ErrCodeInvalidArgument, "slab: allocation size exceeds largest tier").
			WithContext("size", size).
			WithContext("max", max)
	}

	p, ok := h.tiers.Select(size)
	if !ok {
		h.oom.Add(1)
		h.journal.Record(control.Event{Kind: control.EventOutOfMemory, Detail: "all fitting tiers exhausted"})
		return nil, api.NewError(api.ErrCodeOutOfMemory, "slab: all fitting tiers exhausted").
			WithContext("size", size)
	}

	// The selector's free-count read is advisory. The acquire below is
	// authoritative and waits out a lost race.
	blk := p.Acquire()
	blk.StampHeader()
	h.allocs.Add(1)
	return &buffer{owner: h, blk: blk, gen: blk.Generation()}, nil
}

// Free validates buf against its recorded pool and returns the block to
// that pool's free list. Every rejection leaves pool state untouched, is
// logged at error level and lands in the journal.
func (h *HioloadSlab) Free(buf api.Buffer) error {
	if h.closed.Load() {
		return api.ErrClosed
	}
	if buf == nil {
		return h.reject("nil buffer", "", nil)
	}
	b, ok := buf.(*buffer)
	if !ok || b == nil || b.blk == nil {
		return h.reject("foreign buffer implementation", "", logrus.Fields{"type": fmt.Sprintf("%T", buf)})
	}
	if b.owner != h {
		return h.reject("buffer owned by another allocator", b.blk.Pool().Class().String(), nil)
	}

	p := b.blk.Pool()
	if !h.tiers.Contains(p) {
		return h.reject("unknown pool identity", p.Class().String(), nil)
	}

	hdr := b.blk.Header()
	if !hdr.Live() {
		return h.reject("header not live, duplicate release", p.Class().String(),
			logrus.Fields{"index": b.blk.Index()})
	}
	if hdr.Class != p.Class() || hdr.Nonce != p.Nonce() {
		return h.reject("header corrupted", p.Class().String(), logrus.Fields{
			"index":        b.blk.Index(),
			"header_class": hdr.Class.String(),
			"header_nonce": hdr.Nonce,
			"pool_nonce":   p.Nonce(),
		})
	}

	if err := p.Release(b.blk, b.gen); err != nil {
		return h.reject("duplicate or stale release", p.Class().String(),
			logrus.Fields{"index": b.blk.Index()})
	}
	h.frees.Add(1)
	return nil
}

// reject counts, journals and logs one refused release.
func (h *HioloadSlab) reject(reason, tier string, fields logrus.Fields) error {
	h.freeRejects.Add(1)
	h.journal.Record(control.Event{Kind: control.EventFreeRejected, Tier: tier, Detail: reason})
	entry := h.log.WithField("reason", reason)
	if tier != "" {
		entry = entry.WithField("tier", tier)
	}
	if len(fields) > 0 {
		entry = entry.WithFields(fields)
	}
	entry.Error("slab: release rejected")
	return api.NewError(api.ErrCodeInvalidArgument, "slab: release rejected: "+reason)
}

// Stats aggregates facade counters and per-tier pool snapshots.
func (h *HioloadSlab) Stats() api.AllocatorStats {
	return api.AllocatorStats{
		Allocs:       h.allocs.Load(),
		Frees:        h.frees.Load(),
		AllocRejects: h.allocRejects.Load(),
		FreeRejects:  h.freeRejects.Load(),
		OutOfMemory:  h.oom.Load(),
		Tiers:        h.tiers.Stats(),
	}
}

// Config returns the immutable geometry this allocator was built with.
func (h *HioloadSlab) Config() Config { return *h.config }

// MaxPayload returns the largest allocatable payload size.
func (h *HioloadSlab) MaxPayload() int { return h.tiers.MaxPayload() }

// FreeCount reports the free blocks of one tier, zero for an invalid class.
func (h *HioloadSlab) FreeCount(class api.TierClass) int {
	p := h.tiers.Pool(class)
	if p == nil {
		return 0
	}
	return p.FreeCount()
}

// GetJournal returns the error-event journal for inspection.
func (h *HioloadSlab) GetJournal() *control.Journal { return h.journal }

// GetProbes returns the debug probe registry.
func (h *HioloadSlab) GetProbes() *control.DebugProbes { return h.probes }

// Close tears the allocator down: refuses with api.ErrInUse while any
// block is on loan, then releases every arena. Alloc and Free fail with
// api.ErrClosed afterwards. Close must not race in-flight operations;
// teardown is a single-owner affair. Idempotent once it has succeeded.
func (h *HioloadSlab) Close() error {
	if h.closed.Load() {
		return nil
	}
	if err := h.tiers.Close(); err != nil {
		return err
	}
	h.closed.Store(true)
	h.log.Debug("slab: allocator closed")
	return nil
}
