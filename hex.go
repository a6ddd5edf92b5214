// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package md5

import (
	"encoding/hex"
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned by HashToHex when the text is not valid
// UTF-8. It is a usage error; hashing itself cannot fail.
var ErrInvalidUTF8 = errors.New("md5: invalid UTF-8 input")

// HashToHex returns the MD5 digest of the UTF-8 encoding of text as 32
// lowercase hexadecimal characters.
func HashToHex(text string) (string, error) {
	if !utf8.ValidString(text) {
		return "", fmt.Errorf("%w: %q", ErrInvalidUTF8, text)
	}
	return Hash(text), nil
}

// Hash is like HashToHex, but hashes the bytes of text as-is without
// checking that they form valid UTF-8.
func Hash(text string) string {
	sum := ComputeHash([]byte(text))
	return hex.EncodeToString(sum[:])
}
