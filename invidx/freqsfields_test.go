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
	"bytes"
	"testing"
)

func TestFreqsFieldsNarrowEncodeGolden(t *testing.T) {
	codec := FreqsFieldsCodec{}
	rec := &IndexResult{Frequency: 5, FieldMask: FieldMaskFromUint32(0xFFFFFFFF)}
	got, n, err := codec.Encode(nil, 10, rec)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := []byte{48, 10, 5, 255, 255, 255, 255}
	if n != len(want) || !bytes.Equal(got, want) {
		t.Fatalf("Encode = %v, want %v", got, want)
	}

	var out IndexResult
	consumed, match, err := codec.Decode(bytes.NewReader(got), 0, &out)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if consumed != len(want) || !match {
		t.Fatalf("consumed=%d match=%v", consumed, match)
	}
	if out.DocID != 10 || out.Frequency != 5 || out.FieldMask.Lo != 0xFFFFFFFF {
		t.Fatalf("decoded %+v", out)
	}
}

func TestFreqsFieldsNarrowRoundTrip(t *testing.T) {
	codec := FreqsFieldsCodec{}
	cases := []struct {
		delta uint64
		freq  uint32
		mask  uint32
	}{
		{0, 0, 0},
		{1, 1, 1},
		{65536, 70000, 0xFFFFFFFF},
		{255, 256, 0x01020304},
	}
	for _, c := range cases {
		rec := &IndexResult{Frequency: c.freq, FieldMask: FieldMaskFromUint32(c.mask)}
		buf, _, err := codec.Encode(nil, c.delta, rec)
		if err != nil {
			t.Fatalf("Encode(%+v): %v", c, err)
		}
		var out IndexResult
		n, _, err := codec.Decode(bytes.NewReader(buf), 9, &out)
		if err != nil {
			t.Fatalf("Decode(%+v): %v", c, err)
		}
		if n != len(buf) || out.DocID != 9+c.delta || out.Frequency != c.freq || out.FieldMask.Lo != uint64(c.mask) {
			t.Fatalf("round-trip(%+v) = %+v", c, out)
		}
	}
}

func TestFreqsFieldsWideRoundTrip(t *testing.T) {
	codec := FreqsFieldsWideCodec{}
	mask := FieldMask128{Hi: 0xDEADBEEF, Lo: 0xFFFFFFFFFFFFFFFF}
	rec := &IndexResult{Frequency: 99, FieldMask: mask}
	buf, _, err := codec.Encode(nil, 70000, rec)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var out IndexResult
	n, match, err := codec.Decode(bytes.NewReader(buf), 1, &out)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n != len(buf) || !match {
		t.Fatalf("n=%d match=%v", n, match)
	}
	if out.DocID != 70001 || out.Frequency != 99 || out.FieldMask != mask {
		t.Fatalf("decoded %+v, want mask %+v", out, mask)
	}
}

func TestFreqsFieldsMaskFilter(t *testing.T) {
	filter := &MaskFilter{Mask: FieldMaskFromUint64(0b0001)}
	codec := FreqsFieldsCodec{Filter: filter}
	rec := &IndexResult{Frequency: 1, FieldMask: FieldMaskFromUint64(0b0010)}
	buf, _, _ := codec.Encode(nil, 0, rec)
	var out IndexResult
	_, match, err := codec.Decode(bytes.NewReader(buf), 0, &out)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if match {
		t.Fatal("expected filter miss for disjoint field mask")
	}
}
