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

import "errors"

// ErrTruncated is returned when a decoder runs out of input before it has
// read a complete record. It is always wrapped with the name of the field
// that was being read.
var ErrTruncated = errors.New("invidx: truncated record")

// ErrOverflow is returned by the varint decoders when a value would not fit
// in the target integer width.
var ErrOverflow = errors.New("invidx: varint overflow")

// ErrMalformedHeader is returned when a header byte encodes a reserved bit
// pattern that no encoder in this package ever produces.
var ErrMalformedHeader = errors.New("invidx: malformed header byte")

// ErrValueTooLarge is returned by an encoder when a field needs more bytes
// than its header's byte-count field can announce: more than 7 bytes for
// the numeric codec's delta, or more than 4 bytes for a fixed-width delta,
// frequency, or field mask in the other header-based codecs.
var ErrValueTooLarge = errors.New("invidx: value exceeds codec's byte-count field")
