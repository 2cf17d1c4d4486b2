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

// DocIDsOnlyCodec is the simplest of the five codecs: each record is just a
// delta, written as a standard base-128 continuation varint. There is no
// header and nothing to filter on, so Decode's match result is always true.
type DocIDsOnlyCodec struct{}

func (c DocIDsOnlyCodec) Encode(buf []byte, delta uint64, rec *IndexResult) ([]byte, int, error) {
	start := len(buf)
	buf = appendVarint(buf, delta)
	return buf, len(buf) - start, nil
}

func (c DocIDsOnlyCodec) Decode(r ByteReader, baseID uint64, rec *IndexResult) (int, bool, error) {
	delta, err := readVarint(r)
	if err != nil {
		return 0, false, err
	}
	*rec = IndexResult{Kind: KindVirtual, DocID: baseID + delta}
	return varintSize(delta), true, nil
}
