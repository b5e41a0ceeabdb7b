// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// bench_test.go — allocation path benchmarks.
package facade_test

import (
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/momentics/hioload-slab/facade"
)

func newBenchAllocator(b *testing.B, blocks int) *facade.HioloadSlab {
	b.Helper()
	logger, _ := logtest.NewNullLogger()
	cfg := facade.DefaultConfig()
	cfg.BlocksPerTier = blocks
	h, err := facade.New(cfg, facade.WithLogger(logger))
	if err != nil {
		b.Fatal(err)
	}
	return h
}

// BenchmarkAllocFree_Small cycles one small-tier block.
func BenchmarkAllocFree_Small(b *testing.B) {
	h := newBenchAllocator(b, 16)
	defer h.Close()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf, err := h.Alloc(20)
		if err != nil {
			b.Fatal(err)
		}
		if err := buf.Release(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAllocFree_MixedSizes walks all three tiers.
func BenchmarkAllocFree_MixedSizes(b *testing.B) {
	h := newBenchAllocator(b, 16)
	defer h.Close()
	sizes := []int{20, 200, 1000}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf, err := h.Alloc(sizes[i%len(sizes)])
		if err != nil {
			b.Fatal(err)
		}
		if err := buf.Release(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAllocFree_Parallel contends per-tier free lists across
// GOMAXPROCS goroutines.
func BenchmarkAllocFree_Parallel(b *testing.B) {
	h := newBenchAllocator(b, 128)
	defer h.Close()
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			buf, err := h.Alloc(100)
			if err != nil {
				b.Error(err)
				return
			}
			if err := buf.Release(); err != nil {
				b.Error(err)
				return
			}
		}
	})
}
