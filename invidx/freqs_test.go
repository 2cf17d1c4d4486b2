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

// TestFreqsOnlyEncodeKnownBytes pins the wire bytes for a delta and
// frequency that both need 3 bytes to store (see DESIGN.md for how this
// exact case settled the header layout).
func TestFreqsOnlyEncodeKnownBytes(t *testing.T) {
	codec := FreqsOnlyCodec{}
	rec := &IndexResult{Frequency: 65536}
	got, n, err := codec.Encode(nil, 65536, rec)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := []byte{10, 0, 0, 1, 0, 0, 1}
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
	if out.DocID != 65536 || out.Frequency != 65536 {
		t.Fatalf("decoded %+v", out)
	}
}

func TestFreqsOnlyRoundTripTable(t *testing.T) {
	codec := FreqsOnlyCodec{}
	deltas := []uint64{0, 1, 255, 256, 65535, 65536, 1 << 30}
	freqs := []uint32{0, 1, 255, 65535, 1 << 31}
	for _, d := range deltas {
		for _, f := range freqs {
			rec := &IndexResult{Frequency: f}
			buf, _, err := codec.Encode(nil, d, rec)
			if err != nil {
				t.Fatalf("Encode(delta=%d, freq=%d): %v", d, f, err)
			}
			var out IndexResult
			n, _, err := codec.Decode(bytes.NewReader(buf), 100, &out)
			if err != nil {
				t.Fatalf("Decode(delta=%d, freq=%d): %v", d, f, err)
			}
			if n != len(buf) || out.DocID != 100+d || out.Frequency != f {
				t.Fatalf("round-trip(delta=%d, freq=%d) = %+v (n=%d)", d, f, out, n)
			}
		}
	}
}
