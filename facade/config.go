// File: facade/config.go
// Configuration for the hioload-slab facade.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package facade

import (
	"fmt"

	units "github.com/docker/go-units"

	"github.com/momentics/hioload-slab/api"
	"github.com/momentics/hioload-slab/pool"
)

// Config holds parameters immutable per allocator instance.
// All fields shape the pool geometry at construction time and cannot be
// changed afterwards; replace the allocator to resize.
type Config struct {
	SmallCapacity  int // Payload bytes per small-tier block
	MediumCapacity int // Payload bytes per medium-tier block
	LargeCapacity  int // Payload bytes per large-tier block
	BlocksPerTier  int // Block count of every tier
	Align          int // Block alignment, power of two up to one page
}

// DefaultConfig returns default configuration values.
// The 64/256/1024 geometry with ten blocks per tier suits small-message
// protocol workloads without tuning.
func DefaultConfig() *Config {
	return &Config{
		SmallCapacity:  64,   // 64 B payloads: headers, acks, tokens
		MediumCapacity: 256,  // 256 B payloads: typical control frames
		LargeCapacity:  1024, // 1 KiB payloads: bulk messages
		BlocksPerTier:  10,
		Align:          8, // 64-bit word alignment
	}
}

// Validate checks geometry: positive capacities, strictly increasing
// tiers, positive block count, power-of-two alignment within one page.
func (c *Config) Validate() error {
	caps := c.capacities()
	for i, n := range caps {
		if n <= 0 {
			return api.NewError(api.ErrCodeInvalidArgument, "slab: tier capacity must be positive").
				WithContext("tier", api.TierClass(i).String()).
				WithContext("capacity", n)
		}
	}
	for i := 1; i < len(caps); i++ {
		if caps[i] <= caps[i-1] {
			return api.NewError(api.ErrCodeInvalidArgument, "slab: tier capacities must be strictly increasing").
				WithContext("capacities", caps)
		}
	}
	if c.BlocksPerTier <= 0 {
		return api.NewError(api.ErrCodeInvalidArgument, "slab: blocks per tier must be positive").
			WithContext("blocks", c.BlocksPerTier)
	}
	if c.Align <= 0 || c.Align&(c.Align-1) != 0 || c.Align > pool.MaxAlign {
		return api.NewError(api.ErrCodeInvalidArgument, "slab: alignment must be a power of two within one page").
			WithContext("align", c.Align)
	}
	return nil
}

func (c *Config) capacities() [api.NumTiers]int {
	return [api.NumTiers]int{c.SmallCapacity, c.MediumCapacity, c.LargeCapacity}
}

// String renders the geometry in human units for logs and banners.
func (c *Config) String() string {
	return fmt.Sprintf("tiers %s/%s/%s, %d blocks each, align %d",
		units.BytesSize(float64(c.SmallCapacity)),
		units.BytesSize(float64(c.MediumCapacity)),
		units.BytesSize(float64(c.LargeCapacity)),
		c.BlocksPerTier, c.Align)
}

// ParseCapacity converts a human-readable size ("64KiB", "256") into a
// tier capacity in bytes.
func ParseCapacity(s string) (int, error) {
	n, err := units.RAMInBytes(s)
	if err != nil {
		return 0, api.NewError(api.ErrCodeInvalidArgument, "slab: unparsable capacity").
			WithContext("value", s)
	}
	if n <= 0 || n > 1<<30 {
		return 0, api.NewError(api.ErrCodeInvalidArgument, "slab: capacity out of range").
			WithContext("value", s)
	}
	return int(n), nil
}
