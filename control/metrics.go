// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Prometheus export of allocator statistics via docker/go-metrics.
// Snapshot-driven: callers refresh the namespace manually with Update or
// run the Start ticker against a StatsSource. Registration with the global
// Prometheus registry stays with the caller so tests and multi-allocator
// setups keep control of it.

package control

import (
	"sync"
	"time"

	metrics "github.com/docker/go-metrics"

	"github.com/momentics/hioload-slab/api"
)

// StatsSource yields point-in-time allocator statistics.
type StatsSource interface {
	Stats() api.AllocatorStats
}

// Exporter mirrors allocator statistics into a go-metrics namespace.
type Exporter struct {
	ns *metrics.Namespace

	allocs  metrics.Counter
	frees   metrics.Counter
	oom     metrics.Counter
	rejects metrics.LabeledCounter
	free    metrics.LabeledGauge
	inUse   metrics.LabeledGauge

	mu   sync.Mutex
	last api.AllocatorStats
}

// NewExporter builds the hioload_slab namespace and its instruments.
// Register the result of Namespace with metrics.Register to publish.
func NewExporter() *Exporter {
	ns := metrics.NewNamespace("hioload", "slab", nil)
	e := &Exporter{
		ns:      ns,
		allocs:  ns.NewCounter("allocations", "Buffers handed out"),
		frees:   ns.NewCounter("releases", "Buffers accepted back"),
		oom:     ns.NewCounter("exhaustions", "Allocations refused with every tier exhausted"),
		rejects: ns.NewLabeledCounter("rejects", "Operations refused by validation", "op"),
		free:    ns.NewLabeledGauge("free", "Blocks currently on the free list", metrics.Unit("blocks"), "tier"),
		inUse:   ns.NewLabeledGauge("inuse", "Blocks currently on loan", metrics.Unit("blocks"), "tier"),
	}
	return e
}

// Namespace returns the underlying go-metrics namespace for registration.
func (e *Exporter) Namespace() *metrics.Namespace { return e.ns }

// Update refreshes every instrument from one snapshot. Counters advance by
// the delta against the previous snapshot, so the source must be a single
// monotonic allocator.
func (e *Exporter) Update(s api.AllocatorStats) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.allocs.Inc(float64(s.Allocs - e.last.Allocs))
	e.frees.Inc(float64(s.Frees - e.last.Frees))
	e.oom.Inc(float64(s.OutOfMemory - e.last.OutOfMemory))
	e.rejects.WithValues("alloc").Inc(float64(s.AllocRejects - e.last.AllocRejects))
	e.rejects.WithValues("free").Inc(float64(s.FreeRejects - e.last.FreeRejects))
	for _, tier := range s.Tiers {
		e.free.WithValues(tier.Class.String()).Set(float64(tier.Free))
		e.inUse.WithValues(tier.Class.String()).Set(float64(tier.InUse))
	}
	e.last = s
}

// Last returns the most recently applied snapshot.
func (e *Exporter) Last() api.AllocatorStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.last
}

// Start refreshes from src every interval until the returned stop function
// runs. Stop is idempotent.
func (e *Exporter) Start(src StatsSource, interval time.Duration) (stop func()) {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	done := make(chan struct{})
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				e.Update(src.Stats())
			case <-done:
				return
			}
		}
	}()
	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}
