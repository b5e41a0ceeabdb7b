// File: facade/options.go
// Functional options for allocator construction.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package facade

import "github.com/sirupsen/logrus"

// Option customizes allocator construction beyond the geometry Config.
type Option func(*HioloadSlab)

// WithLogger routes allocator logging through l instead of the standard
// logrus logger. Validation failures land here at error level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(h *HioloadSlab) {
		if l != nil {
			h.log = l
		}
	}
}

// WithZeroOnFree wipes payload bytes before blocks re-enter the free
// lists. Costs one clear per release.
func WithZeroOnFree() Option {
	return func(h *HioloadSlab) {
		h.zeroOnFree = true
	}
}

// WithJournalSize bounds the error-event journal to n entries. A
// non-positive n disables journaling entirely.
func WithJournalSize(n int) Option {
	return func(h *HioloadSlab) {
		h.journalSize = n
	}
}
