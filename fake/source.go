// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake statistics source for exporter and probe tests.

package fake

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/hioload-slab/api"
)

// StatsSource serves canned allocator statistics and counts the reads.
type StatsSource struct {
	mu    sync.Mutex
	stats api.AllocatorStats
	calls atomic.Int64
}

// NewStatsSource seeds the source with s.
func NewStatsSource(s api.AllocatorStats) *StatsSource {
	return &StatsSource{stats: s}
}

// Stats returns the canned snapshot.
func (f *StatsSource) Stats() api.AllocatorStats {
	f.calls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stats
}

// Set replaces the canned snapshot.
func (f *StatsSource) Set(s api.AllocatorStats) {
	f.mu.Lock()
	f.stats = s
	f.mu.Unlock()
}

// Calls reports how many times Stats ran.
func (f *StatsSource) Calls() int64 { return f.calls.Load() }
