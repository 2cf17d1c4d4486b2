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

// FreqsOnlyCodec encodes a delta and a term frequency, each stored as a
// minimum-width little-endian integer whose byte count is packed into a
// single header byte as two 2-bit fields: bits 1:0 hold (delta_bytes - 1),
// bits 3:2 hold (freq_bytes - 1), bits 7:4 are unused. Both fields therefore
// range 1..4 bytes; see DESIGN.md for how this layout was chosen.
type FreqsOnlyCodec struct{}

func (c FreqsOnlyCodec) Encode(buf []byte, delta uint64, rec *IndexResult) ([]byte, int, error) {
	start := len(buf)
	deltaBytes := byteWidthAtLeast1(delta)
	freqBytes := byteWidthAtLeast1(uint64(rec.Frequency))
	if deltaBytes > 4 || freqBytes > 4 {
		return buf, 0, fmt.Errorf("%w: freqs-only field", ErrValueTooLarge)
	}

	header := byte(freqBytes-1)<<2 | byte(deltaBytes-1)
	buf = append(buf, header)

	deltaLE := make([]byte, deltaBytes)
	putUintLE(deltaLE, delta, deltaBytes)
	buf = append(buf, deltaLE...)

	freqLE := make([]byte, freqBytes)
	putUintLE(freqLE, uint64(rec.Frequency), freqBytes)
	buf = append(buf, freqLE...)

	return buf, len(buf) - start, nil
}

func (c FreqsOnlyCodec) Decode(r ByteReader, baseID uint64, rec *IndexResult) (int, bool, error) {
	n := 0
	header, err := r.ReadByte()
	if err != nil {
		return n, false, fmt.Errorf("%w: freqs-only header", ErrTruncated)
	}
	n++

	deltaBytes := int(header&0b11) + 1
	freqBytes := int((header>>2)&0b11) + 1

	delta, consumed, err := readFixedLE(r, deltaBytes)
	n += consumed
	if err != nil {
		return n, false, err
	}
	freq, consumed, err := readFixedLE(r, freqBytes)
	n += consumed
	if err != nil {
		return n, false, err
	}

	*rec = IndexResult{Kind: KindVirtual, DocID: baseID + delta, Frequency: uint32(freq)}
	return n, true, nil
}
