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

func TestAggregateResetKeepsCapacity(t *testing.T) {
	a := NewAggregateResult(4)
	c1 := IndexResult{Kind: KindTerm}
	c2 := IndexResult{Kind: KindNumeric}
	a.append(&c1)
	a.append(&c2)
	a.typeMask = KindTerm.leafBit() | KindNumeric.leafBit()

	capBefore := a.Cap()
	a.Reset()

	if a.Len() != 0 {
		t.Fatalf("Len() after Reset = %d, want 0", a.Len())
	}
	if a.TypeMask() != 0 {
		t.Fatalf("TypeMask() after Reset = %b, want 0", a.TypeMask())
	}
	if a.Cap() != capBefore {
		t.Fatalf("Cap() after Reset = %d, want %d (capacity preserved)", a.Cap(), capBefore)
	}
}

func TestAggregateResetThenRebuildMatches(t *testing.T) {
	build := func() *AggregateResult {
		a := NewAggregateResult(2)
		c1 := IndexResult{Kind: KindTerm}
		c2 := IndexResult{Kind: KindMetric}
		a.append(&c1)
		a.typeMask |= KindTerm.leafBit()
		a.append(&c2)
		a.typeMask |= KindMetric.leafBit()
		return &a
	}

	first := build()
	first.Reset()
	c1 := IndexResult{Kind: KindTerm}
	c2 := IndexResult{Kind: KindMetric}
	first.append(&c1)
	first.typeMask |= KindTerm.leafBit()
	first.append(&c2)
	first.typeMask |= KindMetric.leafBit()

	second := build()

	if first.Len() != second.Len() || first.TypeMask() != second.TypeMask() {
		t.Fatalf("reset-then-rebuild diverged: %+v vs %+v", first, second)
	}
}

func TestAggregateFree(t *testing.T) {
	a := NewAggregateResult(2)
	c := IndexResult{Kind: KindTerm}
	a.append(&c)
	a.typeMask = KindTerm.leafBit()

	a.Free()
	if a.Len() != 0 || a.Cap() != 0 || a.TypeMask() != 0 {
		t.Fatalf("after Free: len=%d cap=%d mask=%b", a.Len(), a.Cap(), a.TypeMask())
	}
}

func TestAggregateIteratorExhausted(t *testing.T) {
	a := NewAggregateResult(0)
	it := a.Iter()
	if it.Next() != nil {
		t.Fatal("Next() on empty aggregate should return nil")
	}
}
