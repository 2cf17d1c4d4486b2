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

import "fmt"

// Encoder appends one record's delta-encoded wire representation to buf and
// returns the extended slice along with the number of bytes written. delta
// is the gap between this record's doc id and the previous one written to
// the same block (or the doc id itself, for the first record); every codec
// in this package stores gaps, never absolute doc ids, on the wire.
type Encoder interface {
	Encode(buf []byte, delta uint64, rec *IndexResult) ([]byte, int, error)
}

// Decoder reads one record previously written by the matching Encoder,
// reconstructing rec's absolute doc id from baseID plus the record's
// decoded delta. It returns the number of bytes consumed from r and a
// match predicate: whether the decoded record passes the decoder's filter
// (always true for codecs with nothing to filter on). A non-matching
// record still fully advances the cursor, so callers can skip straight to
// the next record without re-reading anything.
type Decoder interface {
	Decode(r ByteReader, baseID uint64, rec *IndexResult) (int, bool, error)
}

// NumericFilter restricts numeric decoding to values within [Min, Max].
// Decoders accept a nil filter to mean "no restriction."
type NumericFilter struct {
	Min, Max float64
}

// Match reports whether v falls within f's bounds.
func (f *NumericFilter) Match(v float64) bool {
	if f == nil {
		return true
	}
	return v >= f.Min && v <= f.Max
}

// MaskFilter restricts field-tagged decoding to records that intersect Mask.
// A nil filter matches everything.
type MaskFilter struct {
	Mask FieldMask128
}

// Match reports whether m shares any bit with f's mask.
func (f *MaskFilter) Match(m FieldMask128) bool {
	if f == nil {
		return true
	}
	return !f.Mask.And(m).IsZero()
}

// byteWidth returns the number of bytes needed to hold v in big-endian form,
// with the convention that v == 0 needs zero bytes. The numeric codec's
// header stores its delta byte count this way (see numeric.go), distinct
// from byteWidthAtLeast1 below, which is used
// wherever the wire format always reserves at least one byte even for a
// zero value.
func byteWidth(v uint64) int {
	n := 0
	for v > 0 {
		n++
		v >>= 8
	}
	return n
}

// byteWidthAtLeast1 is byteWidth but never returns less than 1, matching
// codecs whose byte-count header field cannot represent "zero bytes."
func byteWidthAtLeast1(v uint64) int {
	if n := byteWidth(v); n > 0 {
		return n
	}
	return 1
}

// putUintBE writes the low n bytes of v to dst in big-endian order, where n
// == byteWidth(v) or byteWidthAtLeast1(v) as appropriate to the caller's
// header field. dst must have length >= n.
func putUintBE(dst []byte, v uint64, n int) {
	for i := n - 1; i >= 0; i-- {
		dst[i] = byte(v)
		v >>= 8
	}
}

// getUintBE reads n big-endian bytes from src as an unsigned integer.
func getUintBE(src []byte) uint64 {
	var v uint64
	for _, b := range src {
		v = v<<8 | uint64(b)
	}
	return v
}

// putUintLE writes the low n bytes of v to dst in little-endian order.
// Every codec's fixed-width fields (delta, frequency, narrow field mask,
// numeric value) use this byte order, unlike the big-endian group order of
// the varints.
func putUintLE(dst []byte, v uint64, n int) {
	for i := 0; i < n; i++ {
		dst[i] = byte(v)
		v >>= 8
	}
}

// getUintLE reads n little-endian bytes from src as an unsigned integer.
func getUintLE(src []byte) uint64 {
	var v uint64
	for i := len(src) - 1; i >= 0; i-- {
		v = v<<8 | uint64(src[i])
	}
	return v
}

// readFixedLE reads n little-endian bytes from r as an unsigned integer,
// where n == 0 is a valid request meaning "the value is implicitly zero."
// It returns the number of bytes consumed alongside any error.
func readFixedLE(r ByteReader, n int) (uint64, int, error) {
	if n == 0 {
		return 0, 0, nil
	}
	buf := make([]byte, n)
	if _, err := readFull(r, buf); err != nil {
		return 0, 0, fmt.Errorf("%w: fixed-width field", ErrTruncated)
	}
	return getUintLE(buf), n, nil
}

// readFull reads exactly len(buf) bytes from r one at a time, since
// ByteReader does not guarantee io.Reader honors a single bulk read (a
// bufio.Reader does, but callers are not required to wrap in one).
func readFull(r ByteReader, buf []byte) (int, error) {
	for i := range buf {
		b, err := r.ReadByte()
		if err != nil {
			return i, err
		}
		buf[i] = b
	}
	return len(buf), nil
}
