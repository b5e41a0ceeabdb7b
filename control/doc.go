// Package control
// Author: momentics <momentics@gmail.com>
//
// Observability and introspection layer for the hioload-slab allocator.
//
// Provides concurrent-safe sidecar primitives including:
//   - Bounded journal of rejected and exhausted operations
//   - Debug hooks and probe registration
//   - Prometheus export of allocator statistics via docker/go-metrics
//
// Nothing in this package sits on the allocation fast path; everything is
// fed from snapshots and cold-path events.
package control
