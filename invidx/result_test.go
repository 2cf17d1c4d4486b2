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

import "testing"

// TestAggregatePushAccumulatesChildrenAndTypeMask creates an aggregate with
// capacity 2, pushes a term child (mask bit 0) then a numeric child, and
// checks that the child count, type mask, bounds-checked lookups, and
// iteration order all come out right.
func TestAggregatePushAccumulatesChildrenAndTypeMask(t *testing.T) {
	a := NewTerm()
	a.FieldMask = FieldMaskFromUint64(1 << 0)
	b := NewNumeric(42)

	agg := NewAggregate(Intersection, 2)
	agg.Push(&a)
	agg.Push(&b)

	if got := agg.Agg.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
	wantMask := KindTerm.leafBit() | KindNumeric.leafBit()
	if got := agg.TypeMask(); got != wantMask {
		t.Fatalf("TypeMask() = %b, want %b", got, wantMask)
	}
	if got := agg.Agg.Get(2); got != nil {
		t.Fatalf("Get(2) = %v, want nil", got)
	}
	if got := agg.Agg.Get(0); got != &a {
		t.Fatalf("Get(0) = %v, want %v", got, &a)
	}
	if got := agg.Agg.Get(1); got != &b {
		t.Fatalf("Get(1) = %v, want %v", got, &b)
	}

	it := agg.Agg.Iter()
	if first := it.Next(); first != &a {
		t.Fatalf("iter first = %v, want %v", first, &a)
	}
	if second := it.Next(); second != &b {
		t.Fatalf("iter second = %v, want %v", second, &b)
	}
	if third := it.Next(); third != nil {
		t.Fatalf("iter third = %v, want nil", third)
	}
	it.Close()

	if agg.FieldMask.Lo&1 == 0 {
		t.Fatalf("parent field mask did not fold in child's bit")
	}
}

func TestPushOnNonAggregateIsNoOp(t *testing.T) {
	term := NewTerm()
	term.DocID = 7
	child := NewNumeric(1)
	term.Push(&child)
	if term.DocID != 7 || term.Agg.Len() != 0 {
		t.Fatalf("Push on non-aggregate mutated the result: %+v", term)
	}
}

func TestIsAggregate(t *testing.T) {
	if (&IndexResult{Kind: KindTerm}).IsAggregate() {
		t.Fatal("term result reported as aggregate")
	}
	if !(&IndexResult{Kind: KindAggregate}).IsAggregate() {
		t.Fatal("aggregate result not reported as aggregate")
	}
}

func TestPushLastWriteWinsDocID(t *testing.T) {
	agg := NewAggregate(Union, 2)
	first := IndexResult{Kind: KindTerm, DocID: 100}
	second := IndexResult{Kind: KindTerm, DocID: 50}
	agg.Push(&first)
	agg.Push(&second)
	if agg.DocID != 50 {
		t.Fatalf("DocID = %d, want 50 (last write wins)", agg.DocID)
	}
}
