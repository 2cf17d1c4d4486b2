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

// AggregateResult is an intersection/union node's child list: a slice of
// borrowed pointers plus the running OR of the leaf kinds reachable beneath
// it. "Borrowed" means AggregateResult owns the backing array the pointers
// live in, but never the *IndexResult values the pointers refer to -- freeing
// the children array and freeing each child are two separate operations.
type AggregateResult struct {
	children []*IndexResult
	typeMask uint8
}

// NewAggregateResult allocates a child list with room for capacity entries
// before the first reallocation. capacity may be zero.
func NewAggregateResult(capacity int) AggregateResult {
	if capacity <= 0 {
		return AggregateResult{}
	}
	return AggregateResult{children: make([]*IndexResult, 0, capacity)}
}

// Len returns the number of children currently held.
func (a *AggregateResult) Len() int {
	return len(a.children)
}

// Cap returns the child list's current capacity.
func (a *AggregateResult) Cap() int {
	return cap(a.children)
}

// TypeMask returns the OR of every child's leaf-kind bit seen so far (or, for
// a child that was itself an aggregate, that child's own type mask).
func (a *AggregateResult) TypeMask() uint8 {
	return a.typeMask
}

// Get returns the child at index i, or nil if i is out of range: a
// bounds-checked, non-panicking lookup rather than Go's usual
// panic-on-out-of-range slice indexing, since callers crossing a result tree
// boundary should get a sentinel back, not a crash.
func (a *AggregateResult) Get(i int) *IndexResult {
	if i < 0 || i >= len(a.children) {
		return nil
	}
	return a.children[i]
}

// append adds child to the list, growing the backing array if needed. It is
// unexported: callers add children through IndexResult.Push, which also
// maintains the doc id and field mask folds that must stay in lockstep with
// the child list.
func (a *AggregateResult) append(child *IndexResult) {
	a.children = append(a.children, child)
}

// Reset empties the child list and type mask while keeping the backing
// array's capacity, so a node can be reused across queries without
// reallocating.
func (a *AggregateResult) Reset() {
	a.children = a.children[:0]
	a.typeMask = 0
}

// Free releases the child list's backing array. It never touches the
// children themselves: ownership of each *IndexResult always lies elsewhere,
// since the child list is only ever a borrowed view over them.
func (a *AggregateResult) Free() {
	a.children = nil
	a.typeMask = 0
}

// Iter returns a single-pass iterator over a's children.
func (a *AggregateResult) Iter() *AggregateIterator {
	return &AggregateIterator{children: a.children}
}

// AggregateIterator walks an AggregateResult's children once, in order.
type AggregateIterator struct {
	children []*IndexResult
	pos      int
}

// Next returns the next child, or nil once the iterator is exhausted.
func (it *AggregateIterator) Next() *IndexResult {
	if it == nil || it.pos >= len(it.children) {
		return nil
	}
	c := it.children[it.pos]
	it.pos++
	return c
}

// Close releases the iterator's state. It never touches the children it
// walked.
func (it *AggregateIterator) Close() {
	it.children = nil
}
