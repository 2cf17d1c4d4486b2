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
	"math"
)

// numPayload is the numeric codec's header bits 4:3.
const (
	numPayloadTinyInt byte = 0
	numPayloadFloat   byte = 1
	numPayloadPosInt  byte = 2
	numPayloadNegInt  byte = 3
)

// Header bits 7:5 carry different things depending on numPayload: a literal
// 0..7 for tinyInt, a (byte-count - 1) for pos/negInt, and one of the six
// codes below for float. Three bits is exactly enough for either an integer
// magnitude's byte count (1..8 bytes) or a tiny literal (0..7).
const (
	numSelPosSmallFloat byte = 0b000
	numSelPosInfinity   byte = 0b001
	numSelNegSmallFloat byte = 0b010
	numSelNegInfinity   byte = 0b011
	numSelPosBigFloat   byte = 0b100
	numSelNegBigFloat   byte = 0b110
)

// NumericCodec encodes a delta plus an IEEE-754 float64 value, classified at
// encode time into the narrowest representation that round-trips exactly:
// tiny int, minimum-width signed int, signed infinity, 4-byte float32, or
// 8-byte float64, tried in that order.
type NumericCodec struct {
	Filter *NumericFilter
}

// Encode appends one Numeric record to buf.
func (c NumericCodec) Encode(buf []byte, delta uint64, rec *IndexResult) ([]byte, int, error) {
	start := len(buf)
	deltaBytes := byteWidth(delta)
	v := rec.Numeric

	var selector, payload byte
	var valueBytes []byte

	switch {
	case isTinyInt(v):
		payload = numPayloadTinyInt
		selector = byte(v)

	case v == math.Trunc(v) && !math.IsInf(v, 0) && math.Abs(v) < 1<<64:
		neg := v < 0
		mag := v
		if neg {
			mag = -mag
		}
		n := byteWidthAtLeast1(uint64(mag))
		if n > 8 {
			return buf, 0, fmt.Errorf("%w: numeric value", ErrValueTooLarge)
		}
		if neg {
			payload = numPayloadNegInt
		} else {
			payload = numPayloadPosInt
		}
		selector = byte(n - 1)
		valueBytes = make([]byte, n)
		putUintLE(valueBytes, uint64(mag), n)

	case math.IsInf(v, 1):
		payload, selector = numPayloadFloat, numSelPosInfinity

	case math.IsInf(v, -1):
		payload, selector = numPayloadFloat, numSelNegInfinity

	case float64(float32(v)) == v:
		payload = numPayloadFloat
		mag, neg := math.Abs(v), math.Signbit(v)
		if neg {
			selector = numSelNegSmallFloat
		} else {
			selector = numSelPosSmallFloat
		}
		valueBytes = make([]byte, 4)
		putUintLE(valueBytes, uint64(math.Float32bits(float32(mag))), 4)

	default:
		payload = numPayloadFloat
		mag, neg := math.Abs(v), math.Signbit(v)
		if neg {
			selector = numSelNegBigFloat
		} else {
			selector = numSelPosBigFloat
		}
		valueBytes = make([]byte, 8)
		putUintLE(valueBytes, math.Float64bits(mag), 8)
	}

	if deltaBytes > 7 {
		return buf, 0, fmt.Errorf("%w: numeric delta", ErrValueTooLarge)
	}
	header := selector<<5 | payload<<3 | byte(deltaBytes)
	buf = append(buf, header)
	if deltaBytes > 0 {
		deltaLE := make([]byte, deltaBytes)
		putUintLE(deltaLE, delta, deltaBytes)
		buf = append(buf, deltaLE...)
	}
	buf = append(buf, valueBytes...)
	return buf, len(buf) - start, nil
}

// Decode reads one Numeric record. The returned bool reports whether the
// decoded value matches c.Filter.
func (c NumericCodec) Decode(r ByteReader, baseID uint64, rec *IndexResult) (int, bool, error) {
	n := 0
	header, err := r.ReadByte()
	if err != nil {
		return n, false, fmt.Errorf("%w: numeric header", ErrTruncated)
	}
	n++

	selector := header >> 5
	payload := (header >> 3) & 0b11
	deltaBytes := int(header & 0b111)

	delta, consumed, err := readFixedLE(r, deltaBytes)
	n += consumed
	if err != nil {
		return n, false, err
	}

	var value float64
	switch payload {
	case numPayloadTinyInt:
		value = float64(selector)

	case numPayloadPosInt, numPayloadNegInt:
		magBytes := int(selector) + 1
		mag, consumed, err := readFixedLE(r, magBytes)
		n += consumed
		if err != nil {
			return n, false, err
		}
		value = float64(mag)
		if payload == numPayloadNegInt {
			value = -value
		}

	case numPayloadFloat:
		switch selector {
		case numSelPosInfinity:
			value = math.Inf(1)
		case numSelNegInfinity:
			value = math.Inf(-1)
		case numSelPosSmallFloat, numSelNegSmallFloat:
			raw, consumed, err := readFixedLE(r, 4)
			n += consumed
			if err != nil {
				return n, false, err
			}
			value = float64(math.Float32frombits(uint32(raw)))
			if selector == numSelNegSmallFloat {
				value = -value
			}
		case numSelPosBigFloat, numSelNegBigFloat:
			raw, consumed, err := readFixedLE(r, 8)
			n += consumed
			if err != nil {
				return n, false, err
			}
			value = math.Float64frombits(raw)
			if selector == numSelNegBigFloat {
				value = -value
			}
		default:
			return n, false, ErrMalformedHeader
		}

	default:
		return n, false, ErrMalformedHeader
	}

	*rec = IndexResult{Kind: KindNumeric, DocID: baseID + delta, Numeric: value}
	return n, c.Filter.Match(value), nil
}

// isTinyInt reports whether v is one of the literal integers 0..7 that the
// header's selector bits can carry directly with no value bytes.
func isTinyInt(v float64) bool {
	return v == math.Trunc(v) && v >= 0 && v <= 7
}
