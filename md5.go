// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package md5 implements the MD5 hash algorithm as defined in RFC 1321.
//
// Every call hashes one complete message. There is no incremental
// interface: ComputeHash owns its state from start to finish, so
// concurrent calls on independent inputs need no coordination.
//
// MD5 is cryptographically broken and should not be used for secure
// applications.
package md5

import (
	"encoding/binary"
)

// The size of an MD5 checksum in bytes.
const Size = 16

// The blocksize of MD5 in bytes.
const BlockSize = 64

const (
	init0 = 0x67452301
	init1 = 0xEFCDAB89
	init2 = 0x98BADCFE
	init3 = 0x10325476
)

// digest holds the running state of a single ComputeHash call.
type digest struct {
	s [4]uint32
}

func (d *digest) reset() {
	d.s[0] = init0
	d.s[1] = init1
	d.s[2] = init2
	d.s[3] = init3
}

// checkSum serializes the state words A, B, C, D, each little-endian.
func (d *digest) checkSum() [Size]byte {
	var sum [Size]byte
	binary.LittleEndian.PutUint32(sum[0:], d.s[0])
	binary.LittleEndian.PutUint32(sum[4:], d.s[1])
	binary.LittleEndian.PutUint32(sum[8:], d.s[2])
	binary.LittleEndian.PutUint32(sum[12:], d.s[3])
	return sum
}

// ComputeHash returns the MD5 digest of message. The message is only
// read, never retained or modified.
func ComputeHash(message []byte) [Size]byte {
	var d digest
	d.reset()

	// Full blocks are folded straight from the caller's slice.
	n := len(message) &^ (BlockSize - 1)
	d.blocks(message[:n])

	d.final(message[n:], uint64(len(message)))
	return d.checkSum()
}

// Sum returns the MD5 checksum of the data. It is equivalent to
// ComputeHash.
func Sum(data []byte) [Size]byte {
	return ComputeHash(data)
}
