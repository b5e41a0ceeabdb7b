// File: pool/header.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Block ownership header codec. Every block starts with a fixed 8-byte
// record placed immediately ahead of the payload: a live/free magic word,
// the tier class, and the owning pool's nonce. The allocator stamps it at
// hand-out and the pool invalidates it on release, so a header can never
// pass validation twice for the same loan.

package pool

import (
	"encoding/binary"

	"github.com/momentics/hioload-slab/api"
)

// HeaderSize is the number of bytes reserved ahead of every payload region.
const HeaderSize = 8

// Header magic words. magicLive marks a block on loan, magicFree a block
// parked on a free list.
const (
	magicLive uint16 = 0xB10C
	magicFree uint16 = 0xDEAD
)

// Header is the decoded form of a block's embedded ownership record.
type Header struct {
	Magic uint16
	Class api.TierClass
	Nonce uint32
}

// Live reports whether the record marks a block currently on loan.
func (h Header) Live() bool { return h.Magic == magicLive }

func writeHeader(b []byte, class api.TierClass, nonce uint32) {
	binary.LittleEndian.PutUint16(b[0:2], magicLive)
	b[2] = byte(class)
	b[3] = 0
	binary.LittleEndian.PutUint32(b[4:8], nonce)
}

// invalidateHeader flips the magic word only; class and nonce stay behind
// as a forensic trail for rejected double releases.
func invalidateHeader(b []byte) {
	binary.LittleEndian.PutUint16(b[0:2], magicFree)
}

func readHeader(b []byte) Header {
	return Header{
		Magic: binary.LittleEndian.Uint16(b[0:2]),
		Class: api.TierClass(b[2]),
		Nonce: binary.LittleEndian.Uint32(b[4:8]),
	}
}
