// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package invidx

import (
	"fmt"
	"io"
)

// ByteReader is the reader interface the decoders accept. *bufio.Reader and
// *bytes.Reader both satisfy it without extra wrapping. The decoders read
// every field, the fixed-width ones included, one byte at a time through
// ReadByte; the embedded io.Reader is not called.
type ByteReader interface {
	io.Reader
	io.ByteReader
}

// maxVarintBytes bounds how many bytes a standard base-128 continuation
// varint may occupy before it is declared malformed: 10 bytes is enough for
// any uint64 (70 bits of raw capacity against 64 bits of real value).
const maxVarintBytes = 10

// appendVarint writes v as a base-128 continuation varint: 7-bit groups are
// emitted most-significant group first; every byte but the last has its high
// bit set and carries (group-1) in its low 7 bits, and the last byte is the
// least-significant group written plain. This is the same construction
// RediSearch's WriteVarint uses, verified here against every wire example
// RediSearch itself ships.
func appendVarint(dst []byte, v uint64) []byte {
	last := byte(v & 0x7f)
	q := v >> 7
	if q == 0 {
		return append(dst, last)
	}

	// Collect the continuation digits of q in least-significant-first
	// order; each digit is in [1,128], computed as ((q-1) mod 128) + 1 so
	// that a q which is an exact nonzero multiple of 128 still yields 128
	// rather than 0 (subtracting 1 before masking, not after, is what
	// makes that case come out right).
	var digits [9]byte
	n := 0
	for q > 0 {
		d := byte((q-1)&0x7f) + 1
		digits[n] = d
		n++
		q = (q - uint64(d)) >> 7
	}
	for i := n - 1; i >= 0; i-- {
		dst = append(dst, 0x80|(digits[i]-1))
	}
	return append(dst, last)
}

// varintSize returns the number of bytes appendVarint would write for v.
func varintSize(v uint64) int {
	n := 1
	q := v >> 7
	for q > 0 {
		d := byte((q-1)&0x7f) + 1
		q = (q - uint64(d)) >> 7
		n++
	}
	return n
}

// readVarint reads one base-128 continuation varint as written by
// appendVarint. It returns ErrOverflow as soon as the value is known not to
// fit in 64 bits, leaving any remaining bytes of that varint unread.
func readVarint(r io.ByteReader) (uint64, error) {
	const maxShiftable = (1<<64 - 1 - 128) >> 7 // largest v for which v<<7+128 cannot wrap
	const maxFinal = (1<<64 - 1) >> 7           // largest v for which v<<7+127 cannot wrap

	var v uint64
	for i := 0; ; i++ {
		if i >= maxVarintBytes {
			return 0, ErrOverflow
		}
		b, err := r.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("%w: varint", ErrTruncated)
		}
		if b&0x80 != 0 {
			if v > maxShiftable {
				return 0, ErrOverflow
			}
			v = v<<7 + uint64(b&0x7f) + 1
			continue
		}
		if v > maxFinal {
			return 0, ErrOverflow
		}
		return v<<7 + uint64(b), nil
	}
}
