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

// Package invidx implements the posting-list delta codecs and the result
// graph used to represent inverted-index matches during query evaluation.
//
// A posting list is a sequence of records sharing a base document id; each
// record stores the gap from the previous record's document id to its own,
// plus whatever payload its
// codec specializes in (frequency, field mask, numeric value, or nothing at
// all). The five codec pairs in this package (Numeric, FreqsOnly,
// FreqsFields/FreqsFieldsWide, FieldsOnly/FieldsOnlyWide, DocIDsOnly) read
// and write that wire format byte-for-byte against a fixed, external
// on-disk representation: none of their output bytes are free to change.
//
// IndexResult is the in-memory counterpart: a single tagged record that is
// either a leaf match (term, numeric, virtual, or metric) or an aggregate
// node owning a borrowed list of child matches (AggregateResult). Decoders
// populate a caller-owned IndexResult; encoders read one.
package invidx
