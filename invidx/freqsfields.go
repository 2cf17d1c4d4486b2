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

// FreqsFieldsCodec is the narrow Freqs+Fields codec: delta, frequency, and
// a narrow (<=32-bit) field mask, packed as three 2-bit (bytes-1) fields in
// one header byte: bits 1:0 delta, bits 3:2 freq, bits 5:4 field mask; bits
// 7:6 unused (header 48 == 0b00110000 means delta_bytes=1, freq_bytes=1,
// mask_bytes=4). See DESIGN.md for the reasoning behind this particular
// layout choice.
type FreqsFieldsCodec struct {
	Filter *MaskFilter
}

func (c FreqsFieldsCodec) Encode(buf []byte, delta uint64, rec *IndexResult) ([]byte, int, error) {
	start := len(buf)
	deltaBytes := byteWidthAtLeast1(delta)
	freqBytes := byteWidthAtLeast1(uint64(rec.Frequency))
	maskBytes := byteWidthAtLeast1(rec.FieldMask.Lo)
	if deltaBytes > 4 || freqBytes > 4 || maskBytes > 4 || rec.FieldMask.Hi != 0 {
		return buf, 0, fmt.Errorf("%w: freqs+fields field", ErrValueTooLarge)
	}

	header := byte(maskBytes-1)<<4 | byte(freqBytes-1)<<2 | byte(deltaBytes-1)
	buf = append(buf, header)

	deltaLE := make([]byte, deltaBytes)
	putUintLE(deltaLE, delta, deltaBytes)
	buf = append(buf, deltaLE...)

	freqLE := make([]byte, freqBytes)
	putUintLE(freqLE, uint64(rec.Frequency), freqBytes)
	buf = append(buf, freqLE...)

	maskLE := make([]byte, maskBytes)
	putUintLE(maskLE, rec.FieldMask.Lo, maskBytes)
	buf = append(buf, maskLE...)

	return buf, len(buf) - start, nil
}

func (c FreqsFieldsCodec) Decode(r ByteReader, baseID uint64, rec *IndexResult) (int, bool, error) {
	n := 0
	header, err := r.ReadByte()
	if err != nil {
		return n, false, fmt.Errorf("%w: freqs+fields header", ErrTruncated)
	}
	n++

	deltaBytes := int(header&0b11) + 1
	freqBytes := int((header>>2)&0b11) + 1
	maskBytes := int((header>>4)&0b11) + 1

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
	mask, consumed, err := readFixedLE(r, maskBytes)
	n += consumed
	if err != nil {
		return n, false, err
	}

	fieldMask := FieldMaskFromUint64(mask)
	*rec = IndexResult{
		Kind:      KindTerm,
		DocID:     baseID + delta,
		Frequency: uint32(freq),
		FieldMask: fieldMask,
	}
	return n, c.Filter.Match(fieldMask), nil
}

// FreqsFieldsWideCodec is the wide variant: delta and frequency share the
// same narrow header as FreqsOnlyCodec (bits 1:0 delta, bits 3:2 freq), and
// the field mask -- up to 128 bits -- follows as a field-mask varint
// instead of a fixed-width field, since a fixed 2-bit byte-count selector
// cannot address 128 bits.
type FreqsFieldsWideCodec struct {
	Filter *MaskFilter
}

func (c FreqsFieldsWideCodec) Encode(buf []byte, delta uint64, rec *IndexResult) ([]byte, int, error) {
	start := len(buf)
	deltaBytes := byteWidthAtLeast1(delta)
	freqBytes := byteWidthAtLeast1(uint64(rec.Frequency))
	if deltaBytes > 4 || freqBytes > 4 {
		return buf, 0, fmt.Errorf("%w: freqs+fields wide field", ErrValueTooLarge)
	}

	header := byte(freqBytes-1)<<2 | byte(deltaBytes-1)
	buf = append(buf, header)

	deltaLE := make([]byte, deltaBytes)
	putUintLE(deltaLE, delta, deltaBytes)
	buf = append(buf, deltaLE...)

	freqLE := make([]byte, freqBytes)
	putUintLE(freqLE, uint64(rec.Frequency), freqBytes)
	buf = append(buf, freqLE...)

	buf = appendFieldMaskVarint(buf, rec.FieldMask)

	return buf, len(buf) - start, nil
}

func (c FreqsFieldsWideCodec) Decode(r ByteReader, baseID uint64, rec *IndexResult) (int, bool, error) {
	n := 0
	header, err := r.ReadByte()
	if err != nil {
		return n, false, fmt.Errorf("%w: freqs+fields wide header", ErrTruncated)
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

	mask, err := readFieldMaskVarint(r)
	if err != nil {
		return n, false, err
	}
	n += fieldMaskVarintSize(mask)

	*rec = IndexResult{
		Kind:      KindTerm,
		DocID:     baseID + delta,
		Frequency: uint32(freq),
		FieldMask: mask,
	}
	return n, c.Filter.Match(mask), nil
}
