// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package md5

import (
	"encoding/binary"
)

// lengthOffset is where the bit-length trailer starts within a block.
const lengthOffset = BlockSize - 8

// final pads the unprocessed tail of the message and absorbs the
// resulting one or two blocks. msgLen is the length of the whole
// message in bytes, not just the tail.
//
// 1 byte end marker :: 0-63 padding bytes :: 8 byte length
func (d *digest) final(tail []byte, msgLen uint64) {
	if len(tail) >= BlockSize {
		panic("md5: tail holds a full block")
	}

	var buf [2 * BlockSize]byte
	r := copy(buf[:], tail)
	buf[r] = 0x80

	// A tail of 56 bytes or more leaves no room for the marker and
	// trailer, so they spill into a second block.
	end := BlockSize
	if r >= lengthOffset {
		end = 2 * BlockSize
	}

	// Shifting a uint64 drops the high bits, so lengths beyond 2^61
	// bytes are recorded modulo 2^64 bits.
	binary.LittleEndian.PutUint64(buf[end-8:end], msgLen<<3)
	d.blocks(buf[:end])
}

// PaddedLen returns the number of bytes a message of n bytes occupies
// once padded: the smallest multiple of BlockSize that is at least n+9.
func PaddedLen(n uint64) uint64 {
	r := n % BlockSize
	full := n - r
	if r >= lengthOffset {
		return full + 2*BlockSize
	}
	return full + BlockSize
}
