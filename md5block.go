// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package md5

import (
	"encoding/binary"
	"math/bits"
)

// Round constants from RFC 1321: floor(abs(sin(i+1)) * 2^32).
var k = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee,
	0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
	0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,

	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa,
	0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed,
	0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,

	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
	0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05,
	0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,

	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039,
	0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
	0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

// Left-rotation amounts, cycling within each group of 16 rounds.
var shifts = [4][4]int{
	{7, 12, 17, 22},
	{5, 9, 14, 20},
	{4, 11, 16, 23},
	{6, 10, 15, 21},
}

// blocks folds every 64-byte block of p into the state. len(p) must be
// a multiple of BlockSize.
func (d *digest) blocks(p []byte) {
	for len(p) >= BlockSize {
		d.compress((*[BlockSize]byte)(p[:BlockSize]))
		p = p[BlockSize:]
	}
}

// compress runs the 64 rounds over a single block. All arithmetic is
// on uint32 and wraps modulo 2^32.
func (d *digest) compress(block *[BlockSize]byte) {
	var m [16]uint32
	for i := range m {
		m[i] = binary.LittleEndian.Uint32(block[4*i:])
	}

	a, b, c, dd := d.s[0], d.s[1], d.s[2], d.s[3]

	for i := 0; i < 64; i++ {
		var f uint32
		var g int
		switch i >> 4 {
		case 0:
			f = (b & c) | (^b & dd)
			g = i
		case 1:
			f = (b & dd) | (c &^ dd)
			g = (1 + 5*i) & 15
		case 2:
			f = b ^ c ^ dd
			g = (5 + 3*i) & 15
		default:
			f = c ^ (b | ^dd)
			g = (7 * i) & 15
		}
		f += a + k[i] + m[g]
		a, dd, c, b = dd, c, b, b+bits.RotateLeft32(f, shifts[i>>4][i&3])
	}

	d.s[0] += a
	d.s[1] += b
	d.s[2] += c
	d.s[3] += dd
}
