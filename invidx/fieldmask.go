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
	"math/bits"

	"github.com/sneller-labs/invidx/ints"
)

// FieldMask128 is an unsigned 128-bit bitset identifying which document
// fields contain a term. Go has no native 128-bit integer, so the value is
// carried as a high/low uint64 pair, the same split math/bits.Add64 and
// math/bits.Sub64 are built around.
type FieldMask128 struct {
	Hi, Lo uint64
}

// FieldMaskFromUint64 builds a FieldMask128 out of a narrow (<=64-bit) mask.
func FieldMaskFromUint64(v uint64) FieldMask128 {
	return FieldMask128{Lo: v}
}

// FieldMaskFromUint32 builds a FieldMask128 out of a 32-bit narrow mask.
func FieldMaskFromUint32(v uint32) FieldMask128 {
	return FieldMask128{Lo: uint64(v)}
}

// IsZero reports whether m has no bits set.
func (m FieldMask128) IsZero() bool {
	return m.Hi == 0 && m.Lo == 0
}

// Or returns the bitwise OR of m and n.
func (m FieldMask128) Or(n FieldMask128) FieldMask128 {
	return FieldMask128{Hi: m.Hi | n.Hi, Lo: m.Lo | n.Lo}
}

// And returns the bitwise AND of m and n.
func (m FieldMask128) And(n FieldMask128) FieldMask128 {
	return FieldMask128{Hi: m.Hi & n.Hi, Lo: m.Lo & n.Lo}
}

// Bit reports whether field index i (0..127) is set in m.
func (m FieldMask128) Bit(i int) bool {
	words := [2]uint64{m.Lo, m.Hi}
	return ints.TestBit(words[:], i)
}

// WithBit returns m with field index i (0..127) set.
func (m FieldMask128) WithBit(i int) FieldMask128 {
	words := [2]uint64{m.Lo, m.Hi}
	ints.SetBit(words[:], i)
	return FieldMask128{Lo: words[0], Hi: words[1]}
}

// low7 returns the low 7 bits of m.
func (m FieldMask128) low7() byte {
	return byte(m.Lo & 0x7f)
}

// shr7 returns m shifted right by 7 bits, carrying bits across the Hi/Lo
// split the way a single 128-bit register would.
func (m FieldMask128) shr7() FieldMask128 {
	return FieldMask128{
		Hi: m.Hi >> 7,
		Lo: (m.Lo >> 7) | (m.Hi << 57),
	}
}

// shl7 returns m shifted left by 7 bits; bits shifted out of Hi are dropped.
// readFieldMaskVarint checks that the top 7 bits are clear before shifting,
// so none are lost there.
func (m FieldMask128) shl7() FieldMask128 {
	return FieldMask128{
		Hi: (m.Hi << 7) | (m.Lo >> 57),
		Lo: m.Lo << 7,
	}
}

// subSmall returns m-d for a d small enough to fit a byte, borrowing across
// the Hi/Lo split via math/bits.Sub64.
func (m FieldMask128) subSmall(d uint64) FieldMask128 {
	lo, borrow := bits.Sub64(m.Lo, d, 0)
	hi, _ := bits.Sub64(m.Hi, 0, borrow)
	return FieldMask128{Hi: hi, Lo: lo}
}

// addSmall returns m+d for a d small enough to fit a byte, carrying across
// the Hi/Lo split via math/bits.Add64.
func (m FieldMask128) addSmall(d uint64) FieldMask128 {
	lo, carry := bits.Add64(m.Lo, d, 0)
	hi, _ := bits.Add64(m.Hi, 0, carry)
	return FieldMask128{Hi: hi, Lo: lo}
}

// maxFieldMaskVarintBytes bounds a field-mask varint: 19 bytes covers the
// full 128-bit range (18 continuation bytes of 7 bits plus one final byte).
const maxFieldMaskVarintBytes = 19

// appendFieldMaskVarint writes v using the same base-128 continuation
// varint algorithm as appendVarint. It shares appendVarint's big-endian-group,
// minus-one-biased continuation-byte construction; the two are implemented
// as separate functions (rather than one generic over the integer width)
// because this one must operate on a 128-bit value and the standard delta
// varint never does. Wire examples for both u32::MAX and u128::MAX masks are
// reproduced exactly by this same construction, which is expected: RediSearch
// ships WriteVarint and WriteVarintFieldMask as separate C functions that
// happen to implement the identical algorithm over different integer
// widths, not two different algorithms.
func appendFieldMaskVarint(dst []byte, v FieldMask128) []byte {
	last := v.low7()
	q := v.shr7()
	if q.IsZero() {
		return append(dst, last)
	}

	var digits [19]byte
	n := 0
	for !q.IsZero() {
		d := q.subSmall(1).low7() + 1
		digits[n] = d
		n++
		q = q.subSmall(uint64(d)).shr7()
	}
	for i := n - 1; i >= 0; i-- {
		dst = append(dst, 0x80|(digits[i]-1))
	}
	return append(dst, last)
}

// fieldMaskVarintSize returns the number of bytes appendFieldMaskVarint
// would write for v.
func fieldMaskVarintSize(v FieldMask128) int {
	n := 1
	q := v.shr7()
	for !q.IsZero() {
		d := q.subSmall(1).low7() + 1
		q = q.subSmall(uint64(d)).shr7()
		n++
	}
	return n
}

// readFieldMaskVarint reads one field-mask varint as written by
// appendFieldMaskVarint. It returns ErrOverflow for a value that does not
// fit in 128 bits.
func readFieldMaskVarint(r io.ByteReader) (FieldMask128, error) {
	var v FieldMask128
	for i := 0; ; i++ {
		if i >= maxFieldMaskVarintBytes {
			return FieldMask128{}, ErrOverflow
		}
		b, err := r.ReadByte()
		if err != nil {
			return FieldMask128{}, fmt.Errorf("%w: field mask varint", ErrTruncated)
		}
		if v.Hi>>57 != 0 {
			return FieldMask128{}, ErrOverflow
		}
		if b&0x80 != 0 {
			shifted := v.shl7()
			v = shifted.addSmall(uint64(b&0x7f) + 1)
			if v.Hi < shifted.Hi {
				return FieldMask128{}, ErrOverflow
			}
			continue
		}
		return v.shl7().addSmall(uint64(b)), nil
	}
}
