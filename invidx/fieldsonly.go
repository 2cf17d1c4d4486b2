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

// FieldsOnlyCodec is the narrow Fields-Only codec: header =
// (fieldmask_bytes-1)<<2 | (delta_bytes-1), following the same (bytes-1),
// 2-bit-field convention used by the sibling narrow codecs in this package.
type FieldsOnlyCodec struct {
	Filter *MaskFilter
}

func (c FieldsOnlyCodec) Encode(buf []byte, delta uint64, rec *IndexResult) ([]byte, int, error) {
	start := len(buf)
	deltaBytes := byteWidthAtLeast1(delta)
	maskBytes := byteWidthAtLeast1(rec.FieldMask.Lo)
	if deltaBytes > 4 || maskBytes > 4 || rec.FieldMask.Hi != 0 {
		return buf, 0, fmt.Errorf("%w: fields-only field", ErrValueTooLarge)
	}

	header := byte(maskBytes-1)<<2 | byte(deltaBytes-1)
	buf = append(buf, header)

	deltaLE := make([]byte, deltaBytes)
	putUintLE(deltaLE, delta, deltaBytes)
	buf = append(buf, deltaLE...)

	maskLE := make([]byte, maskBytes)
	putUintLE(maskLE, rec.FieldMask.Lo, maskBytes)
	buf = append(buf, maskLE...)

	return buf, len(buf) - start, nil
}

func (c FieldsOnlyCodec) Decode(r ByteReader, baseID uint64, rec *IndexResult) (int, bool, error) {
	n := 0
	header, err := r.ReadByte()
	if err != nil {
		return n, false, fmt.Errorf("%w: fields-only header", ErrTruncated)
	}
	n++

	deltaBytes := int(header&0b11) + 1
	maskBytes := int((header>>2)&0b11) + 1

	delta, consumed, err := readFixedLE(r, deltaBytes)
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
	*rec = IndexResult{Kind: KindTerm, DocID: baseID + delta, FieldMask: fieldMask}
	return n, c.Filter.Match(fieldMask), nil
}

// FieldsOnlyWideCodec is the wide variant: no header byte at all -- the
// whole record is a standard delta varint followed by a field-mask varint.
// Example: delta=0, mask=1 encodes as [0, 1].
type FieldsOnlyWideCodec struct {
	Filter *MaskFilter
}

func (c FieldsOnlyWideCodec) Encode(buf []byte, delta uint64, rec *IndexResult) ([]byte, int, error) {
	start := len(buf)
	buf = appendVarint(buf, delta)
	buf = appendFieldMaskVarint(buf, rec.FieldMask)
	return buf, len(buf) - start, nil
}

func (c FieldsOnlyWideCodec) Decode(r ByteReader, baseID uint64, rec *IndexResult) (int, bool, error) {
	delta, err := readVarint(r)
	if err != nil {
		return 0, false, err
	}
	n := varintSize(delta)

	mask, err := readFieldMaskVarint(r)
	if err != nil {
		return n, false, err
	}
	n += fieldMaskVarintSize(mask)

	*rec = IndexResult{Kind: KindTerm, DocID: baseID + delta, FieldMask: mask}
	return n, c.Filter.Match(mask), nil
}
