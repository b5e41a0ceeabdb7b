// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// journal_test.go — tests for the bounded error-event journal.
package control_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/momentics/hioload-slab/control"
)

// TestJournal_RecordAndSnapshot retains events oldest-first with filled
// timestamps.
func TestJournal_RecordAndSnapshot(t *testing.T) {
	j := control.NewJournal(8)
	j.Record(control.Event{Kind: control.EventOutOfMemory, Detail: "first"})
	j.Record(control.Event{Kind: control.EventFreeRejected, Tier: "small", Detail: "second"})

	events := j.Snapshot()
	if len(events) != 2 {
		t.Fatalf("snapshot length = %d, want 2", len(events))
	}
	if events[0].Detail != "first" || events[1].Detail != "second" {
		t.Errorf("snapshot out of order: %+v", events)
	}
	if events[0].Time.IsZero() {
		t.Error("timestamp not filled in")
	}
	if events[1].Kind != control.EventFreeRejected || events[1].Tier != "small" {
		t.Errorf("event fields lost: %+v", events[1])
	}
}

// TestJournal_Eviction drops the oldest entries beyond capacity.
func TestJournal_Eviction(t *testing.T) {
	j := control.NewJournal(3)
	for i := 0; i < 5; i++ {
		j.Record(control.Event{Kind: control.EventAllocRejected, Detail: fmt.Sprintf("ev%d", i)})
	}
	if j.Len() != 3 {
		t.Fatalf("journal length = %d, want 3", j.Len())
	}
	events := j.Snapshot()
	for i, want := range []string{"ev2", "ev3", "ev4"} {
		if events[i].Detail != want {
			t.Errorf("event %d = %q, want %q", i, events[i].Detail, want)
		}
	}
}

// TestJournal_Disabled swallows records without retaining anything.
func TestJournal_Disabled(t *testing.T) {
	j := control.NewJournal(0)
	j.Record(control.Event{Detail: "dropped"})
	if j.Len() != 0 || j.Snapshot() != nil {
		t.Error("disabled journal retained events")
	}

	var nilJournal *control.Journal
	nilJournal.Record(control.Event{Detail: "dropped"})
	if nilJournal.Len() != 0 {
		t.Error("nil journal misbehaved")
	}
}

// TestJournal_KeepsExplicitTimestamps leaves caller-provided times alone.
func TestJournal_KeepsExplicitTimestamps(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	j := control.NewJournal(1)
	j.Record(control.Event{Time: at, Detail: "stamped"})
	if got := j.Snapshot()[0].Time; !got.Equal(at) {
		t.Errorf("timestamp rewritten: %v", got)
	}
}

// TestJournal_ConcurrentRecord keeps the bound under parallel writers.
func TestJournal_ConcurrentRecord(t *testing.T) {
	j := control.NewJournal(16)
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				j.Record(control.Event{Kind: control.EventFreeRejected})
			}
		}()
	}
	wg.Wait()
	if j.Len() != 16 {
		t.Errorf("journal length = %d, want 16", j.Len())
	}
}
