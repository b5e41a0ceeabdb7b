// control/journal.go
// Author: momentics <momentics@gmail.com>
//
// Bounded in-memory trail of allocator error events: rejected releases,
// refused allocations, pool exhaustion. Journaling happens on cold paths
// only, so a mutex around the ring queue is enough.

package control

import (
	"sync"
	"time"

	"github.com/eapache/queue"
)

// EventKind labels a journal entry.
type EventKind int

const (
	EventOutOfMemory EventKind = iota
	EventAllocRejected
	EventFreeRejected
)

func (k EventKind) String() string {
	switch k {
	case EventOutOfMemory:
		return "out_of_memory"
	case EventAllocRejected:
		return "alloc_rejected"
	case EventFreeRejected:
		return "free_rejected"
	default:
		return "unknown"
	}
}

// Event is one journal entry.
type Event struct {
	Time   time.Time
	Kind   EventKind
	Tier   string // tier name when known, empty otherwise
	Detail string
}

// Journal keeps the most recent events up to a fixed capacity. A nil or
// zero-capacity journal drops everything, so callers never guard Record.
type Journal struct {
	mu  sync.Mutex
	q   *queue.Queue
	max int
}

// NewJournal creates a journal bounded to capacity events; a non-positive
// capacity disables retention.
func NewJournal(capacity int) *Journal {
	if capacity <= 0 {
		return &Journal{}
	}
	return &Journal{q: queue.New(), max: capacity}
}

// Record appends ev, evicting the oldest entry at capacity. A zero
// timestamp is filled in with the current time.
func (j *Journal) Record(ev Event) {
	if j == nil || j.q == nil {
		return
	}
	if ev.Time.IsZero() {
		ev.Time = time.Now()
	}
	j.mu.Lock()
	if j.q.Length() >= j.max {
		j.q.Remove()
	}
	j.q.Add(ev)
	j.mu.Unlock()
}

// Snapshot returns the retained events, oldest first.
func (j *Journal) Snapshot() []Event {
	if j == nil || j.q == nil {
		return nil
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]Event, 0, j.q.Length())
	for i := 0; i < j.q.Length(); i++ {
		out = append(out, j.q.Get(i).(Event))
	}
	return out
}

// Len returns the number of retained events.
func (j *Journal) Len() int {
	if j == nil || j.q == nil {
		return 0
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.q.Length()
}
